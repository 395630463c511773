package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/fulfillment-service/docs"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/app"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/events"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/gateway"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/migrate"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/postgres"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Корзины, оформление заказов, отправления, складские остатки и подарочные сертификаты
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	st, txManager, closeStore := newStorage(ctx, logger, conf)

	var card service.PaymentGateway = gateway.NewSimulator()
	if conf.Payment.GatewayURL != "" {
		card = gateway.NewClient(logger, conf.Payment.GatewayURL, conf.Payment.Timeout)
	} else {
		logger.Warn("payment gateway url is not set, using simulator")
	}

	var publisher eventPublisher = events.NewLogPublisher(logger)
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(conf.Kafka.Brokers, conf.Kafka.EventsTopic, conf.Kafka.BatchTimeout)
	}

	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	inventoryService := service.NewInventoryService(logger, txManager, st, utils.RetryConfig{
		MaxAttempts:  conf.Inventory.RetryAttempts,
		InitialDelay: conf.Inventory.RetryInitialDelay,
		MaxDelay:     conf.Inventory.RetryMaxDelay,
		Multiplier:   2,
	})
	giftCertificateService := service.NewGiftCertificateService(logger, txManager, st)
	paymentService := service.NewPaymentService(logger, card, giftCertificateService)
	totals := service.FlatTaxCalculator{Rate: conf.Checkout.TaxRate}
	orderService := service.NewOrderService(logger, txManager, st, orderCache, inventoryService, paymentService, totals, publisher)
	cartService := service.NewCartService(logger, txManager, st, service.NewCartDirector(st), giftCertificateService)
	checkoutService := service.NewCheckoutService(
		logger, txManager, st, orderService, publisher, conf.Checkout.ActionTimeout,
		service.DefaultCheckoutActions(
			st,
			inventoryService,
			totals,
			giftCertificateService,
			paymentService,
		)...,
	)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewCartHandler(logger, cartService, checkoutService),
		handler.NewOrderHandler(logger, orderService),
		handler.NewInventoryHandler(logger, inventoryService),
		handler.NewGiftCertificateHandler(logger, giftCertificateService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewStockConsumer(logger, conf.Kafka, inventoryService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.OnStop(publisher.Close, closeStore)

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("application component stopped unexpectedly")
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

type store interface {
	service.OrderRepo
	service.InventoryRepo
	service.GiftCertificateRepo
	service.CartRepo
	service.Catalog
}

type eventPublisher interface {
	service.EventPublisher
	Close() error
}

func newStorage(ctx context.Context, logger *slog.Logger, conf config.Config) (store, trm.Manager, func() error) {
	if conf.Storage == config.StorageMemory {
		mem := repo.NewMemoryStore()
		panicIfErr("failed to seed memory store", mem.SeedDemoCatalog(ctx))
		logger.Warn("using in-memory storage, data is lost on restart")
		return mem, mem, func() error { return nil }
	}

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", migrate.Up(db))
		logger.Info("migrations applied")
	}

	return repo.NewPostgresRepo(db), trm.NewManager(db), db.Close
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
