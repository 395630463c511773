package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/fulfillment-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_PhysicalOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.card.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(func(req entities.PaymentRequest) bool {
			return req.Amount.Equal(amount("44.98")) && req.CardToken == "tok_visa" && req.Currency == "USD"
		})).
		RunAndReturn(approved).Once()

	cart := f.newCart(t, item("TSHIRT-RED-M", 2))
	order, err := f.checkout.Checkout(ctx, cart, cardTemplate(), false)
	require.NoError(t, err)

	assert.Equal(t, entities.OrderInProgress, order.Status)
	assert.Len(t, order.Number, 12)
	require.Len(t, order.Shipments, 1)

	sh := order.Shipments[0]
	assert.Equal(t, order.Number+"-1", sh.Number)
	assert.Equal(t, entities.ShipmentPhysical, sh.Kind)
	assert.Equal(t, 2, sh.Items[0].AllocatedQuantity)
	assert.True(t, amount("44.98").Equal(order.Total()))
	assert.True(t, authorized(order, sh.Number).Equal(sh.Payable()))

	assert.Equal(t, 2, f.record(t, "TSHIRT-RED-M").Allocated)

	stored, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)
	assert.Equal(t, order.Number, stored.CompletedOrderNumber)
	assert.Equal(t, entities.OrderInProgress, f.storedOrder(t, order.Number).Status)

	_, err = f.checkout.Checkout(ctx, stored, cardTemplate(), false)
	assert.ErrorIs(t, err, entities.ErrCartAlreadyCheckedOut)
}

func TestCheckoutService_DeclinedPaymentRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.giftCerts.CreateGiftCertificate(ctx, entities.GiftCertificate{
		Code:            "GIFT-20",
		OriginalBalance: amount("20"),
		Currency:        "USD",
	})
	require.NoError(t, err)

	cart := f.newCart(t, item("TSHIRT-RED-M", 2))
	cart, err = f.carts.ApplyGiftCertificate(ctx, cart.GUID, "GIFT-20")
	require.NoError(t, err)

	f.card.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(hasAmount("24.98"))).
		Return(entities.TransactionResponse{}, entities.ErrPaymentDeclined).Once()

	order, err := f.checkout.Checkout(ctx, cart, cardTemplate(), false)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, entities.ErrPaymentDeclined)

	var cerr *service.CheckoutError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "authorize-payment", cerr.Action)
	assert.NoError(t, cerr.RollbackErr)
	require.NotEmpty(t, cerr.OrderNumber)

	failed := f.storedOrder(t, cerr.OrderNumber)
	assert.Equal(t, entities.OrderFailed, failed.Status)
	assert.Equal(t, entities.ShipmentFailedOrder, failed.Shipments[0].Status)
	assert.Equal(t, 0, failed.Shipments[0].Items[0].AllocatedQuantity)
	assert.Empty(t, failed.OpenAuthorizations(""))

	var types []entities.TransactionType
	for _, p := range failed.Payments {
		types = append(types, p.TransactionType)
	}
	assert.Equal(t, []entities.TransactionType{
		entities.TransactionAuthorization,
		entities.TransactionAuthorization,
		entities.TransactionReverseAuthorization,
	}, types)
	assert.Equal(t, entities.PaymentFailed, failed.Payments[1].Status)

	rec := f.record(t, "TSHIRT-RED-M")
	assert.Equal(t, 100, rec.OnHand)
	assert.Equal(t, 0, rec.Allocated)

	balance, err := f.giftCerts.GetBalance(ctx, "GIFT-20")
	require.NoError(t, err)
	assert.True(t, amount("20").Equal(balance))

	audit, err := f.inventory.AuditTrail(ctx, "TSHIRT-RED-M", "MAIN", 10)
	require.NoError(t, err)
	var events []entities.InventoryEventType
	for _, a := range audit {
		events = append(events, a.Event)
	}
	assert.Contains(t, events, entities.EventAllocation)
	assert.Contains(t, events, entities.EventDeallocation)

	stored, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)
	assert.Empty(t, stored.CompletedOrderNumber)
}

func TestCheckoutService_Rejections(t *testing.T) {
	testCases := []struct {
		name       string
		items      []service.ItemRequest
		template   *entities.OrderPayment
		mock       func(f *fixture)
		wantAction string
		wantErr    error
		wantOrder  bool
	}{
		{
			name:       "insufficient stock",
			items:      []service.ItemRequest{item("TSHIRT-RED-M", 101)},
			template:   cardTemplate(),
			mock:       func(f *fixture) {},
			wantAction: "validate-cart",
			wantErr:    entities.ErrInsufficientInventory,
		},
		{
			name:       "two lines of one sku are checked together",
			items:      []service.ItemRequest{item("TSHIRT-RED-M", 60), {SkuCode: "TSHIRT-RED-M", Quantity: 60, Fields: map[string]string{"print": "logo"}}},
			template:   cardTemplate(),
			mock:       func(f *fixture) {},
			wantAction: "validate-cart",
			wantErr:    entities.ErrInsufficientInventory,
		},
		{
			name:       "empty cart",
			template:   cardTemplate(),
			mock:       func(f *fixture) {},
			wantAction: "validate-cart",
			wantErr:    entities.ErrEmptyCart,
		},
		{
			name:       "nothing pays for the order",
			items:      []service.ItemRequest{item("MUG-WHITE", 1)},
			mock:       func(f *fixture) {},
			wantAction: "authorize-payment",
			wantErr:    entities.ErrPaymentRequired,
			wantOrder:  true,
		},
		{
			name:     "gateway error",
			items:    []service.ItemRequest{item("MUG-WHITE", 1)},
			template: cardTemplate(),
			mock: func(f *fixture) {
				f.card.EXPECT().Authorize(mock.Anything, mock.Anything).Return(entities.TransactionResponse{}, errors.New("connection reset")).Once()
			},
			wantAction: "authorize-payment",
			wantOrder:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.mock(f)

			cart := f.newCart(t, tc.items...)
			_, err := f.checkout.Checkout(context.Background(), cart, tc.template, false)

			var cerr *service.CheckoutError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tc.wantAction, cerr.Action)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}

			orders, err := f.orders.FindOrders(context.Background(), entities.OrderCriteria{})
			require.NoError(t, err)
			if !tc.wantOrder {
				assert.Empty(t, cerr.OrderNumber)
				assert.Empty(t, orders)
				return
			}
			require.Len(t, orders, 1)
			assert.Equal(t, entities.OrderFailed, orders[0].Status)
			assert.Equal(t, 0, f.record(t, "MUG-WHITE").Allocated)
		})
	}
}

func TestCheckoutService_DigitalOrderCompletes(t *testing.T) {
	f := newFixture(t)

	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()
	f.card.EXPECT().Capture(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()

	cart := f.newCart(t, item("EBOOK-GO", 1))
	order, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), false)
	require.NoError(t, err)

	assert.Equal(t, entities.OrderCompleted, order.Status)
	require.Len(t, order.Shipments, 1)
	assert.Equal(t, entities.ShipmentElectronic, order.Shipments[0].Kind)
	assert.Equal(t, entities.ShipmentShipped, order.Shipments[0].Status)
	assert.True(t, order.Shipments[0].ShippingCost.IsZero())
	assert.Equal(t, entities.OrderCompleted, f.storedOrder(t, order.Number).Status)
}

func TestCheckoutService_DigitalCaptureFailureUnwinds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()
	f.card.EXPECT().Capture(mock.Anything, mock.MatchedBy(hasAmount("30"))).Return(entities.TransactionResponse{}, errors.New("connection reset")).Once()
	f.card.EXPECT().ReverseAuthorization(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()

	cart := f.newCart(t, item("EBOOK-GO", 1))
	order, err := f.checkout.Checkout(ctx, cart, cardTemplate(), false)
	assert.Nil(t, order)

	var cerr *service.CheckoutError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "persist-order", cerr.Action)
	assert.NoError(t, cerr.RollbackErr)

	failed := f.storedOrder(t, cerr.OrderNumber)
	assert.Equal(t, entities.OrderFailed, failed.Status)
	assert.Empty(t, failed.OpenAuthorizations(""))
	for _, p := range failed.Payments {
		assert.NotEqual(t, entities.TransactionCapture, p.TransactionType)
	}

	stored, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)
	assert.Empty(t, stored.CompletedOrderNumber)
}

func TestCheckoutService_StaleCartCopies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := f.newCart(t, item("TSHIRT-RED-M", 2))
	first, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)
	second, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)

	f.approveCard(2)
	f.card.EXPECT().ReverseAuthorization(mock.Anything, mock.MatchedBy(hasAmount("44.98"))).RunAndReturn(approved).Once()

	order, err := f.checkout.Checkout(ctx, first, cardTemplate(), false)
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, second, cardTemplate(), false)
	assert.ErrorIs(t, err, entities.ErrCartAlreadyCheckedOut)

	var cerr *service.CheckoutError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "persist-order", cerr.Action)
	assert.NoError(t, cerr.RollbackErr)
	assert.Equal(t, entities.OrderFailed, f.storedOrder(t, cerr.OrderNumber).Status)
	assert.Empty(t, second.CompletedOrderNumber)

	assert.Equal(t, 2, f.record(t, "TSHIRT-RED-M").Allocated)

	placed, err := f.orders.FindOrders(ctx, entities.OrderCriteria{Status: entities.OrderInProgress})
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, order.Number, placed[0].Number)

	stored, err := f.store.GetCart(ctx, cart.GUID)
	require.NoError(t, err)
	assert.Equal(t, order.Number, stored.CompletedOrderNumber)
}

func TestCheckoutService_MixedCartSplitsShipments(t *testing.T) {
	f := newFixture(t)

	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("17.50"))).RunAndReturn(approved).Once()
	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()
	f.card.EXPECT().Capture(mock.Anything, mock.MatchedBy(hasAmount("30"))).RunAndReturn(approved).Once()

	cart := f.newCart(t, item("MUG-WHITE", 1), item("EBOOK-GO", 1))
	order, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), false)
	require.NoError(t, err)

	require.Len(t, order.Shipments, 2)
	assert.Equal(t, entities.ShipmentPhysical, order.Shipments[0].Kind)
	assert.Equal(t, entities.ShipmentInventoryAssigned, order.Shipments[0].Status)
	assert.Equal(t, entities.ShipmentElectronic, order.Shipments[1].Kind)
	assert.Equal(t, entities.ShipmentShipped, order.Shipments[1].Status)
	assert.Equal(t, entities.OrderPartiallyShipped, order.Status)
}

func TestCheckoutService_GiftCertificatePurchase(t *testing.T) {
	fields := map[string]string{
		entities.FieldRecipientName:  "Ann",
		entities.FieldRecipientEmail: "ann@example.com",
		entities.FieldSenderEmail:    "bob@example.com",
	}

	t.Run("issued on success", func(t *testing.T) {
		f := newFixture(t)
		f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("50"))).RunAndReturn(approved).Once()
		f.card.EXPECT().Capture(mock.Anything, mock.Anything).RunAndReturn(approved).Once()

		cart := f.newCart(t, service.ItemRequest{SkuCode: "GC-50", Quantity: 1, Fields: fields})
		order, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), false)
		require.NoError(t, err)

		code := order.Skus()[0].Field(entities.FieldGiftCertificateCode)
		require.NotEmpty(t, code)

		gc, err := f.giftCerts.GetGiftCertificate(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", gc.RecipientEmail)
		assert.Equal(t, order.Number, gc.OrderNumber)

		balance, err := f.giftCerts.GetBalance(context.Background(), code)
		require.NoError(t, err)
		assert.True(t, amount("50").Equal(balance))
	})

	t.Run("removed when payment fails", func(t *testing.T) {
		f := newFixture(t)
		f.card.EXPECT().Authorize(mock.Anything, mock.Anything).Return(entities.TransactionResponse{}, entities.ErrPaymentDeclined).Once()

		cart := f.newCart(t, service.ItemRequest{SkuCode: "GC-50", Quantity: 1, Fields: fields})
		_, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), false)

		var cerr *service.CheckoutError
		require.ErrorAs(t, err, &cerr)
		failed := f.storedOrder(t, cerr.OrderNumber)
		assert.Empty(t, failed.Skus()[0].Field(entities.FieldGiftCertificateCode))
	})
}

func TestCheckoutService_ExchangeOrderWaits(t *testing.T) {
	f := newFixture(t)
	f.approveCard(1)

	cart := f.newCart(t, item("EBOOK-GO", 1))
	order, err := f.checkout.Checkout(context.Background(), cart, cardTemplate(), true)
	require.NoError(t, err)

	assert.Equal(t, entities.OrderAwaitingExchange, order.Status)
	assert.True(t, order.Exchange)
	assert.Equal(t, entities.ShipmentInventoryAssigned, order.Shipments[0].Status)
}

// recordingAction logs its calls into a shared journal.
type recordingAction struct {
	name    string
	journal *[]string
	execute func(ctx context.Context) error
	ctxErrs *[]error
}

func (a recordingAction) Name() string { return a.name }

func (a recordingAction) Execute(ctx context.Context, _ *service.CheckoutContext) error {
	*a.journal = append(*a.journal, "execute "+a.name)
	if a.execute != nil {
		return a.execute(ctx)
	}
	return nil
}

func (a recordingAction) Rollback(ctx context.Context, _ *service.CheckoutContext) error {
	*a.journal = append(*a.journal, "rollback "+a.name)
	if a.ctxErrs != nil {
		*a.ctxErrs = append(*a.ctxErrs, ctx.Err())
	}
	return nil
}

func TestCheckoutService_RollbackOrder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	boom := errors.New("boom")

	var (
		journal []string
		ctxErrs []error
	)
	ctx, cancel := context.WithCancel(context.Background())

	actions := []service.CheckoutAction{
		recordingAction{name: "a", journal: &journal, ctxErrs: &ctxErrs},
		recordingAction{name: "b", journal: &journal, ctxErrs: &ctxErrs},
		recordingAction{name: "c", journal: &journal, ctxErrs: &ctxErrs, execute: func(context.Context) error {
			cancel()
			return boom
		}},
		recordingAction{name: "d", journal: &journal},
	}

	svc := service.NewCheckoutService(logger, txMocks.NewMockManager(t), nil, nil, mocks.NewMockEventPublisher(t), 0, actions...)
	order, err := svc.Checkout(ctx, &entities.ShoppingCart{GUID: "cart-1"}, nil, false)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, boom)

	var cerr *service.CheckoutError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "c", cerr.Action)
	assert.Empty(t, cerr.OrderNumber)

	assert.Equal(t, []string{
		"execute a", "execute b", "execute c",
		"rollback c", "rollback b", "rollback a",
	}, journal)
	assert.Equal(t, []error{nil, nil, nil}, ctxErrs)
}

func TestCheckoutService_ActionTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var journal []string

	slow := recordingAction{name: "authorize-payment", journal: &journal, execute: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	svc := service.NewCheckoutService(logger, txMocks.NewMockManager(t), nil, nil, mocks.NewMockEventPublisher(t), 10*time.Millisecond, slow)
	_, err := svc.Checkout(context.Background(), &entities.ShoppingCart{GUID: "cart-1"}, nil, false)

	assert.ErrorIs(t, err, entities.ErrGatewayTimeout)
	assert.Equal(t, entities.KindPayment, entities.KindOf(err))
	assert.Equal(t, []string{"execute authorize-payment", "rollback authorize-payment"}, journal)
}
