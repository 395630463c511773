package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixture wires the real services over the seeded memory store. Only the
// card gateway and the event publisher are mocked.
type fixture struct {
	store     *repo.MemoryStore
	card      *mocks.MockPaymentGateway
	inventory *service.InventoryService
	giftCerts *service.GiftCertificateService
	payments  *service.PaymentService
	orders    *service.OrderService
	carts     *service.CartService
	checkout  *service.CheckoutService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newTaxedFixture(t, decimal.Zero)
}

// newTaxedFixture charges taxRate on every shipment subtotal.
func newTaxedFixture(t *testing.T, taxRate decimal.Decimal) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repo.NewMemoryStore()
	require.NoError(t, store.SeedDemoCatalog(context.Background()))

	card := mocks.NewMockPaymentGateway(t)
	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	inventory := service.NewInventoryService(logger, store, store, utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond})
	giftCerts := service.NewGiftCertificateService(logger, store, store)
	payments := service.NewPaymentService(logger, card, giftCerts)
	totals := service.FlatTaxCalculator{Rate: taxRate}
	orders := service.NewOrderService(logger, store, store, cache.NewLRUCache(100, time.Minute), inventory, payments, totals, events)
	carts := service.NewCartService(logger, store, store, service.NewCartDirector(store), giftCerts)
	checkout := service.NewCheckoutService(logger, store, store, orders, events, time.Second,
		service.DefaultCheckoutActions(store, inventory, totals, giftCerts, payments)...,
	)

	return &fixture{
		store:     store,
		card:      card,
		inventory: inventory,
		giftCerts: giftCerts,
		payments:  payments,
		orders:    orders,
		carts:     carts,
		checkout:  checkout,
	}
}

// newCart creates a WEB cart in USD shipping from MAIN for 5.00.
func (f *fixture) newCart(t *testing.T, items ...service.ItemRequest) *entities.ShoppingCart {
	t.Helper()
	ctx := context.Background()

	cart, err := f.carts.CreateCart(ctx, service.NewCart{
		ShopperID:    "shopper-1",
		StoreCode:    "WEB",
		Currency:     "USD",
		Warehouse:    "MAIN",
		ShippingCost: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)

	for _, item := range items {
		cart, err = f.carts.AddItem(ctx, cart.GUID, item)
		require.NoError(t, err)
	}
	return cart
}

// placeOrder checks the cart out with an approved card.
func (f *fixture) placeOrder(t *testing.T, items ...service.ItemRequest) *entities.Order {
	t.Helper()
	f.approveCard(1)

	cart := f.newCart(t, items...)
	order, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), false)
	require.NoError(t, err)
	return order
}

func (f *fixture) approveCard(times int) {
	f.card.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		RunAndReturn(approved).Times(times)
}

func (f *fixture) record(t *testing.T, sku string) entities.InventoryRecord {
	t.Helper()
	rec, err := f.inventory.GetInventory(context.Background(), sku, "MAIN")
	require.NoError(t, err)
	return rec
}

func (f *fixture) storedOrder(t *testing.T, number string) *entities.Order {
	t.Helper()
	order, err := f.store.GetOrder(context.Background(), number)
	require.NoError(t, err)
	return order
}

func approved(_ context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return entities.TransactionResponse{AuthorizationCode: uuid.NewString(), ReferenceID: req.Reference}, nil
}

func cardTemplate() *entities.OrderPayment {
	return &entities.OrderPayment{Method: entities.PaymentCreditCard, CardToken: "tok_visa"}
}

func item(sku string, qty int) service.ItemRequest {
	return service.ItemRequest{SkuCode: sku, Quantity: qty}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func hasAmount(want string) func(entities.PaymentRequest) bool {
	return func(req entities.PaymentRequest) bool { return req.Amount.Equal(amount(want)) }
}

// authorized sums the open authorizations of a shipment.
func authorized(order *entities.Order, shipment string) decimal.Decimal {
	return service.AuthorizedAmount(order, shipment)
}
