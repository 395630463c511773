package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testShipmentOrder() (*entities.Order, *entities.OrderShipment) {
	sh := &entities.OrderShipment{
		Number:       "B1-1",
		Kind:         entities.ShipmentPhysical,
		Status:       entities.ShipmentInventoryAssigned,
		ShippingCost: amount("5"),
		Items: []*entities.OrderSku{{
			GUID:      "line-1",
			SkuCode:   "MUG-WHITE",
			Quantity:  2,
			UnitPrice: amount("12.50"),
		}},
	}
	return &entities.Order{Number: "B1", Status: entities.OrderInProgress, Currency: "USD", Shipments: []*entities.OrderShipment{sh}}, sh
}

func TestPaymentService_AuthorizeShipment(t *testing.T) {
	testCases := []struct {
		name      string
		balances  map[string]string
		codes     []string
		template  *entities.OrderPayment
		mock      func(f *fixture)
		wantErr   error
		wantAuths map[entities.PaymentMethod]string
	}{
		{
			name:     "gift certificate first, card for the rest",
			balances: map[string]string{"GC-10": "10"},
			codes:    []string{"GC-10"},
			template: cardTemplate(),
			mock: func(f *fixture) {
				f.card.EXPECT().
					Authorize(mock.Anything, mock.MatchedBy(func(req entities.PaymentRequest) bool {
						return req.Amount.Equal(amount("20")) && req.Reference == "B1-1" && req.CardToken == "tok_visa"
					})).
					RunAndReturn(approved).Once()
			},
			wantAuths: map[entities.PaymentMethod]string{
				entities.PaymentGiftCertificate: "10",
				entities.PaymentCreditCard:      "20",
			},
		},
		{
			name:     "certificates cover everything",
			balances: map[string]string{"GC-10": "10", "GC-40": "40"},
			codes:    []string{"GC-10", "GC-40"},
			template: cardTemplate(),
			mock:     func(f *fixture) {},
			wantAuths: map[entities.PaymentMethod]string{
				entities.PaymentGiftCertificate: "30",
			},
		},
		{
			name:     "spent certificate is skipped",
			balances: map[string]string{"GC-10": "10"},
			codes:    []string{"GC-10", "GC-10"},
			template: cardTemplate(),
			mock: func(f *fixture) {
				f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("20"))).RunAndReturn(approved).Once()
			},
			wantAuths: map[entities.PaymentMethod]string{
				entities.PaymentGiftCertificate: "10",
				entities.PaymentCreditCard:      "20",
			},
		},
		{
			name:    "nothing covers the remainder",
			mock:    func(f *fixture) {},
			wantErr: entities.ErrPaymentRequired,
		},
		{
			name:     "unsupported method",
			template: &entities.OrderPayment{Method: "PAYPAL"},
			mock:     func(f *fixture) {},
			wantErr:  entities.ErrUnsupportedPayment,
		},
		{
			name:     "declined card is recorded",
			template: cardTemplate(),
			mock: func(f *fixture) {
				f.card.EXPECT().Authorize(mock.Anything, mock.Anything).Return(entities.TransactionResponse{}, entities.ErrPaymentDeclined).Once()
			},
			wantErr: entities.ErrPaymentDeclined,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			for code, balance := range tc.balances {
				_, err := f.giftCerts.CreateGiftCertificate(ctx, entities.GiftCertificate{Code: code, OriginalBalance: amount(balance), Currency: "USD"})
				require.NoError(t, err)
			}
			tc.mock(f)

			order, sh := testShipmentOrder()
			err := f.payments.AuthorizeShipment(ctx, order, sh, tc.codes, tc.template)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantErr == entities.ErrPaymentDeclined {
					require.Len(t, order.Payments, 1)
					assert.Equal(t, entities.PaymentFailed, order.Payments[0].Status)
					assert.NotEmpty(t, order.Payments[0].Message)
				}
				return
			}
			require.NoError(t, err)

			got := make(map[entities.PaymentMethod]string)
			for _, p := range order.OpenAuthorizations(sh.Number) {
				sum := amount("0")
				if prev, ok := got[p.Method]; ok {
					sum = amount(prev)
				}
				got[p.Method] = sum.Add(p.Amount).String()
			}
			assert.Equal(t, tc.wantAuths, got)
			assert.True(t, service.AuthorizedAmount(order, sh.Number).Equal(sh.Payable()))
		})
	}
}

func TestPaymentService_ReauthorizeShipment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.giftCerts.CreateGiftCertificate(ctx, entities.GiftCertificate{Code: "GC-10", OriginalBalance: amount("10"), Currency: "USD"})
	require.NoError(t, err)

	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("20"))).RunAndReturn(approved).Once()

	order, sh := testShipmentOrder()
	require.NoError(t, f.payments.AuthorizeShipment(ctx, order, sh, []string{"GC-10"}, cardTemplate()))

	codes, template := service.PaymentSources(order, sh.Number)
	assert.Equal(t, []string{"GC-10"}, codes)
	require.NotNil(t, template)
	assert.Equal(t, "tok_visa", template.CardToken)

	sh.Items[0].Quantity = 4

	f.card.EXPECT().ReverseAuthorization(mock.Anything, mock.MatchedBy(hasAmount("20"))).RunAndReturn(approved).Once()
	f.card.EXPECT().Authorize(mock.Anything, mock.MatchedBy(hasAmount("45"))).RunAndReturn(approved).Once()

	require.NoError(t, f.payments.ReauthorizeShipment(ctx, order, sh))
	assert.True(t, service.AuthorizedAmount(order, sh.Number).Equal(amount("55")))

	balance, err := f.giftCerts.GetBalance(ctx, "GC-10")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	f.card.EXPECT().Capture(mock.Anything, mock.MatchedBy(hasAmount("45"))).RunAndReturn(approved).Once()
	require.NoError(t, f.payments.CaptureShipment(ctx, order, sh.Number))
	assert.Empty(t, order.OpenAuthorizations(sh.Number))

	balance, err = f.giftCerts.GetBalance(ctx, "GC-10")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
