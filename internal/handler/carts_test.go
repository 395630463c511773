package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCart() *entities.ShoppingCart {
	return &entities.ShoppingCart{
		GUID:      "cart-1",
		ShopperID: "shopper-1",
		StoreCode: "WEB",
		Currency:  "USD",
		Warehouse: "MAIN",
		Items: []*entities.CartItem{{
			GUID:      "item-1",
			SkuCode:   "MUG-WHITE",
			Quantity:  2,
			ListPrice: decimal.RequireFromString("12.50"),
			Shippable: true,
			Ordering:  1,
		}},
	}
}

func newCartRouter(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewCartHandler(logger, carts, checkout)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestCartHandler_CreateCart(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(carts *mocks.MockCartManager)
		wantStatus   int
	}{
		{
			name: "created",
			body: `{"shopper_id":"shopper-1","store_code":"WEB","currency":"USD","warehouse":"MAIN","shipping_cost":"4.99"}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().
					CreateCart(mock.Anything, mock.MatchedBy(func(in service.NewCart) bool {
						return in.ShopperID == "shopper-1" && in.ShippingCost.Equal(decimal.RequireFromString("4.99"))
					})).
					Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "bad currency",
			body:         `{"shopper_id":"shopper-1","store_code":"WEB","currency":"dollars","warehouse":"MAIN"}`,
			mockBehavior: func(carts *mocks.MockCartManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"shopper_id":`,
			mockBehavior: func(carts *mocks.MockCartManager) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartManager(t)
			tc.mockBehavior(carts)

			status, _ := serve(newCartRouter(carts, mocks.NewMockCheckouter(t)), http.MethodPost, "/carts", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(carts *mocks.MockCartManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "bundle with constituents",
			body: `{"sku_code":"STARTER-KIT","quantity":1,"constituents":[{"sku_code":"MUG-WHITE","quantity":2}]}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().
					AddItem(mock.Anything, "cart-1", mock.MatchedBy(func(req service.ItemRequest) bool {
						return req.SkuCode == "STARTER-KIT" && len(req.Constituents) == 1 && req.Constituents[0].Quantity == 2
					})).
					Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"subtotal":"25.00"`,
		},
		{
			name:         "constituent without quantity",
			body:         `{"sku_code":"STARTER-KIT","quantity":1,"constituents":[{"sku_code":"MUG-WHITE"}]}`,
			mockBehavior: func(carts *mocks.MockCartManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "sku not purchasable",
			body: `{"sku_code":"HIDDEN","quantity":1}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().AddItem(mock.Anything, "cart-1", mock.Anything).Return(nil, entities.ErrProductNotPurchasable).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product is not purchasable"`,
		},
		{
			name: "cart checked out",
			body: `{"sku_code":"MUG-WHITE","quantity":1}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().AddItem(mock.Anything, "cart-1", mock.Anything).Return(nil, entities.ErrCartAlreadyCheckedOut).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartManager(t)
			tc.mockBehavior(carts)

			status, body := serve(newCartRouter(carts, mocks.NewMockCheckouter(t)), http.MethodPost, "/carts/cart-1/items", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCartHandler_Lines(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(carts *mocks.MockCartManager)
		wantStatus   int
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/carts/cart-1",
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update quantity",
			method: http.MethodPatch,
			target: "/carts/cart-1/items/item-1",
			body:   `{"quantity":0}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().UpdateItem(mock.Anything, "cart-1", "item-1", 0, map[string]string(nil)).Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove missing line",
			method: http.MethodDelete,
			target: "/carts/cart-1/items/nope",
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().RemoveItem(mock.Anything, "cart-1", "nope").Return(nil, entities.ErrCartItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			target: "/carts/cart-1/refresh",
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().Refresh(mock.Anything, "cart-1").Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "merge",
			method: http.MethodPost,
			target: "/carts/cart-1/merge",
			body:   `{"previous_cart_guid":"cart-0"}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().Merge(mock.Anything, "cart-1", "cart-0").Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "promo code",
			method: http.MethodPost,
			target: "/carts/cart-1/promo-codes",
			body:   `{"code":"SUMMER"}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().ApplyPromoCode(mock.Anything, "cart-1", "SUMMER").Return(testCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "empty gift certificate",
			method: http.MethodPost,
			target: "/carts/cart-1/gift-certificates",
			body:   `{"code":"GC-1"}`,
			mockBehavior: func(carts *mocks.MockCartManager) {
				carts.EXPECT().ApplyGiftCertificate(mock.Anything, "cart-1", "GC-1").Return(nil, entities.ErrInsufficientBalance).Once()
			},
			wantStatus: http.StatusPaymentRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartManager(t)
			tc.mockBehavior(carts)

			status, _ := serve(newCartRouter(carts, mocks.NewMockCheckouter(t)), tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "card payment",
			body: `{"payment":{"method":"CREDIT_CARD","card_token":"tok_1"}}`,
			mockBehavior: func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) {
				cart := testCart()
				carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(cart, nil).Once()
				checkout.EXPECT().
					Checkout(mock.Anything, cart, mock.MatchedBy(func(p *entities.OrderPayment) bool {
						return p != nil && p.Method == entities.PaymentCreditCard && p.CardToken == "tok_1"
					}), false).
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"number":"A1"`,
		},
		{
			name: "no body means no template payment",
			mockBehavior: func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) {
				cart := testCart()
				carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(cart, nil).Once()
				checkout.EXPECT().Checkout(mock.Anything, cart, (*entities.OrderPayment)(nil), false).Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "card without token",
			body:         `{"payment":{"method":"CREDIT_CARD"}}`,
			mockBehavior: func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "declined payment reports the failed action",
			body: `{"payment":{"method":"CREDIT_CARD","card_token":"decline-1"}}`,
			mockBehavior: func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) {
				carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(testCart(), nil).Once()
				checkout.EXPECT().Checkout(mock.Anything, mock.Anything, mock.Anything, false).Return(nil, &service.CheckoutError{
					Action:      "authorize-payment",
					OrderNumber: "A2",
					Err:         entities.ErrPaymentDeclined,
				}).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `"action":"authorize-payment"`,
		},
		{
			name: "empty cart",
			mockBehavior: func(carts *mocks.MockCartManager, checkout *mocks.MockCheckouter) {
				carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(testCart(), nil).Once()
				checkout.EXPECT().Checkout(mock.Anything, mock.Anything, mock.Anything, false).Return(nil, &service.CheckoutError{
					Action: "validate-cart",
					Err:    entities.ErrEmptyCart,
				}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"validate-cart"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartManager(t)
			checkout := mocks.NewMockCheckouter(t)
			tc.mockBehavior(carts, checkout)

			status, body := serve(newCartRouter(carts, checkout), http.MethodPost, "/carts/cart-1/checkout", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusPaymentRequired {
				var resp handler.CheckoutErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "A2", resp.OrderNumber)
			}
		})
	}
}
