package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	mw "github.com/SergeyBogomolovv/fulfillment-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

const gracefulShutdownTimeout = 5 * time.Second

type HttpHandler interface {
	Init(r chi.Router)
}

type KafkaHandler interface {
	Consume(ctx context.Context)
	Close() error
}

// Starter is run once before the application starts serving.
type Starter interface {
	Start(ctx context.Context) error
}

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []KafkaHandler
	starters  []Starter
	closers   []func() error

	group *errgroup.Group
	done  <-chan struct{}
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(mw.Logger(logger))
	router.Use(mw.Metrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger.With(slog.String("component", "app")),
		httpSrv: httpSrv,
		router:  router,
	}
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

func (a *application) SetConsumers(handlers ...KafkaHandler) {
	a.consumers = handlers
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// OnStop registers resources closed after the server and consumers stopped.
func (a *application) OnStop(closers ...func() error) {
	a.closers = append(a.closers, closers...)
}

// Start runs the starters, then the consumers and the HTTP server in the
// background. It returns once everything is launched.
func (a *application) Start(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to run starter: %w", err)
		}
	}

	group, gctx := errgroup.WithContext(ctx)
	a.group = group
	a.done = gctx.Done()

	for _, c := range a.consumers {
		group.Go(func() error {
			c.Consume(gctx)
			return nil
		})
	}

	group.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

// Done is closed when a background component failed or the start context ended.
func (a *application) Done() <-chan struct{} {
	return a.done
}

// Stop shuts the server down, closes consumers and waits for the background
// goroutines. Every error is reported.
func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka consumer: %w", err))
		}
	}

	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
