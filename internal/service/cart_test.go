package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tshirt = entities.SKU{Code: "TSHIRT-RED-M", ProductType: "Apparel", StoreCodes: []string{"WEB"}, Shippable: true, Enabled: true}
	mug    = entities.SKU{Code: "MUG-WHITE", ProductType: "Homeware", StoreCodes: []string{"WEB"}, Shippable: true, Enabled: true}
	kit    = entities.SKU{Code: "STARTER-KIT", ProductType: "Bundle", StoreCodes: []string{"WEB"}, Shippable: true, Bundle: true, Enabled: true}
	outlet = entities.SKU{Code: "OUTLET-ONLY", StoreCodes: []string{"OUTLET"}, Enabled: true}

	webUSD = entities.PriceContext{StoreCode: "WEB", ShopperID: "shopper-1", Currency: "USD"}
)

func emptyCart() *entities.ShoppingCart {
	return &entities.ShoppingCart{GUID: "cart-1", ShopperID: "shopper-1", StoreCode: "WEB", Currency: "USD", Warehouse: "MAIN"}
}

func TestCartDirector_AddItemToCart(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockCatalog)

	tshirtPrice := entities.Price{List: amount("25"), Sale: decimal.NewNullDecimal(amount("19.99"))}

	testCases := []struct {
		name         string
		cart         func() *entities.ShoppingCart
		req          service.ItemRequest
		mockBehavior MockBehavior
		wantErr      error
		check        func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem)
	}{
		{
			name: "new line is priced",
			cart: emptyCart,
			req:  item("TSHIRT-RED-M", 2),
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(tshirtPrice, nil).Once()
			},
			check: func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem) {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, 1, item.Ordering)
				assert.True(t, item.Shippable)
				assert.Equal(t, "39.98", item.Total().StringFixed(2))
			},
		},
		{
			name: "same configuration bumps the quantity",
			cart: func() *entities.ShoppingCart {
				c := emptyCart()
				c.AddItem(&entities.CartItem{GUID: "line-1", SkuCode: "TSHIRT-RED-M", Quantity: 1, ListPrice: amount("25")})
				return c
			},
			req: item("TSHIRT-RED-M", 2),
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
			},
			check: func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem) {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, "line-1", item.GUID)
				assert.Equal(t, 3, item.Quantity)
			},
		},
		{
			name: "different configuration is a new line",
			cart: func() *entities.ShoppingCart {
				c := emptyCart()
				c.AddItem(&entities.CartItem{GUID: "line-1", SkuCode: "TSHIRT-RED-M", Quantity: 1, ListPrice: amount("25")})
				return c
			},
			req: service.ItemRequest{SkuCode: "TSHIRT-RED-M", Quantity: 1, Fields: map[string]string{"print": "logo"}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(tshirtPrice, nil).Once()
			},
			check: func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem) {
				require.Len(t, cart.Items, 2)
				assert.Equal(t, 2, item.Ordering)
				assert.Equal(t, "logo", item.Fields["print"])
			},
		},
		{
			name: "field value with separators is its own line",
			cart: func() *entities.ShoppingCart {
				c := emptyCart()
				c.AddItem(&entities.CartItem{GUID: "line-1", SkuCode: "TSHIRT-RED-M", Quantity: 1, Fields: map[string]string{"msg": "hi", "to": "bob"}})
				return c
			},
			req: service.ItemRequest{SkuCode: "TSHIRT-RED-M", Quantity: 1, Fields: map[string]string{"msg": "hi|to=bob"}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(tshirtPrice, nil).Once()
			},
			check: func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem) {
				require.Len(t, cart.Items, 2)
				assert.NotEqual(t, "line-1", item.GUID)
				assert.Equal(t, 1, cart.Items[0].Quantity)
			},
		},
		{
			name: "bundle gets one child per constituent",
			cart: emptyCart,
			req: service.ItemRequest{SkuCode: "STARTER-KIT", Quantity: 1, Constituents: []service.ItemRequest{
				item("TSHIRT-RED-M", 1),
				item("MUG-WHITE", 2),
			}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "STARTER-KIT").Return(kit, nil).Once()
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
				catalog.EXPECT().ResolveSku(mock.Anything, "MUG-WHITE").Return(mug, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(tshirtPrice, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, mug, "USD", webUSD).Return(entities.Price{List: amount("12.50")}, nil).Once()
			},
			check: func(t *testing.T, cart *entities.ShoppingCart, item *entities.CartItem) {
				assert.True(t, item.Bundle)
				require.Len(t, item.Children, 2)
				assert.Equal(t, 2, item.Children[1].Quantity)
				assert.Equal(t, "44.99", item.Total().StringFixed(2))
				assert.Len(t, cart.LeafLines(), 2)
			},
		},
		{
			name:         "zero quantity",
			cart:         emptyCart,
			req:          item("TSHIRT-RED-M", 0),
			mockBehavior: func(catalog *mocks.MockCatalog) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "unknown sku",
			cart: emptyCart,
			req:  item("NOPE", 1),
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "NOPE").Return(entities.SKU{}, entities.ErrSkuNotFound).Once()
			},
			wantErr: entities.ErrSkuNotFound,
		},
		{
			name: "sku of another store",
			cart: emptyCart,
			req:  item("OUTLET-ONLY", 1),
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "OUTLET-ONLY").Return(outlet, nil).Once()
			},
			wantErr: entities.ErrProductNotPurchasable,
		},
		{
			name: "no price in the cart currency",
			cart: emptyCart,
			req:  item("TSHIRT-RED-M", 1),
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
				catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(entities.Price{}, entities.ErrPriceNotFound).Once()
			},
			wantErr: entities.ErrPriceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalog(t)
			tc.mockBehavior(catalog)

			cart := tc.cart()
			got, err := service.NewCartDirector(catalog).AddItemToCart(context.Background(), cart, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			tc.check(t, cart, got)
		})
	}
}

func TestCartDirector_Refresh(t *testing.T) {
	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(tshirt, nil).Once()
	catalog.EXPECT().PriceFor(mock.Anything, tshirt, "USD", webUSD).Return(entities.Price{List: amount("21")}, nil).Once()
	catalog.EXPECT().ResolveSku(mock.Anything, "RETIRED").Return(entities.SKU{}, entities.ErrSkuNotFound).Once()
	catalog.EXPECT().ResolveSku(mock.Anything, "MUG-WHITE").Return(mug, nil).Once()
	catalog.EXPECT().PriceFor(mock.Anything, mug, "USD", webUSD).Return(entities.Price{}, entities.ErrPriceNotFound).Once()

	cart := emptyCart()
	cart.AddItem(&entities.CartItem{GUID: "a", SkuCode: "TSHIRT-RED-M", Quantity: 1, ListPrice: amount("25")})
	cart.AddItem(&entities.CartItem{GUID: "b", SkuCode: "RETIRED", Quantity: 1, ListPrice: amount("5")})
	cart.AddItem(&entities.CartItem{GUID: "c", SkuCode: "MUG-WHITE", Quantity: 1, ListPrice: amount("12.50")})

	dropped, err := service.NewCartDirector(catalog).Refresh(context.Background(), cart)
	require.NoError(t, err)

	require.Len(t, dropped, 2)
	assert.Equal(t, "b", dropped[0].GUID)
	assert.Equal(t, "c", dropped[1].GUID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "21.00", cart.Items[0].UnitPrice().StringFixed(2))
}

func TestCartDirector_RefreshStopsOnCatalogFailure(t *testing.T) {
	dbError := errors.New("db error")
	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().ResolveSku(mock.Anything, "TSHIRT-RED-M").Return(entities.SKU{}, dbError).Once()

	cart := emptyCart()
	cart.AddItem(&entities.CartItem{GUID: "a", SkuCode: "TSHIRT-RED-M", Quantity: 1})

	_, err := service.NewCartDirector(catalog).Refresh(context.Background(), cart)
	assert.ErrorIs(t, err, dbError)
	assert.Len(t, cart.Items, 1)
}

func TestCartDirector_UpdateCartItem(t *testing.T) {
	director := service.NewCartDirector(mocks.NewMockCatalog(t))

	cart := emptyCart()
	cart.AddItem(&entities.CartItem{GUID: "a", SkuCode: "TSHIRT-RED-M", Quantity: 1})
	cart.AddItem(&entities.CartItem{GUID: "b", SkuCode: "MUG-WHITE", Quantity: 1})

	updated, err := director.UpdateCartItem(cart, "a", 4, map[string]string{"print": "logo"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, entities.NewItemKey("TSHIRT-RED-M", map[string]string{"print": "logo"}), updated.Key())

	_, err = director.UpdateCartItem(cart, "a", -1, nil)
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)

	_, err = director.UpdateCartItem(cart, "missing", 1, nil)
	assert.ErrorIs(t, err, entities.ErrCartItemNotFound)

	removed, err := director.UpdateCartItem(cart, "b", 0, nil)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Len(t, cart.Items, 1)

	assert.ErrorIs(t, director.RemoveItem(cart, "b"), entities.ErrCartItemNotFound)
	assert.NoError(t, director.RemoveItem(cart, "a"))
	assert.Empty(t, cart.Items)
}

func TestCartDirector_UpdateCartItemMergesMatchingLine(t *testing.T) {
	director := service.NewCartDirector(mocks.NewMockCatalog(t))

	cart := emptyCart()
	cart.AddItem(&entities.CartItem{GUID: "plain", SkuCode: "TSHIRT-RED-M", Quantity: 2})
	cart.AddItem(&entities.CartItem{GUID: "logo", SkuCode: "TSHIRT-RED-M", Quantity: 1, Fields: map[string]string{"print": "logo"}})

	merged, err := director.UpdateCartItem(cart, "logo", 3, map[string]string{})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "plain", merged.GUID)
	assert.Equal(t, 5, merged.Quantity)
	assert.Nil(t, cart.FindByGUID("logo"))

	same, err := director.UpdateCartItem(cart, "plain", 1, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "plain", same.GUID)
	assert.Equal(t, 1, same.Quantity)
}

func TestCartService_Operations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := f.newCart(t, item("TSHIRT-RED-M", 1), item("MUG-WHITE", 1), item("TSHIRT-RED-M", 1))
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err := f.carts.RemoveItem(ctx, cart.GUID, cart.Items[0].GUID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Ordering)

	cart, err = f.carts.UpdateItem(ctx, cart.GUID, cart.Items[0].GUID, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart, err = f.carts.ApplyPromoCode(ctx, cart.GUID, "SPRING")
	require.NoError(t, err)
	cart, err = f.carts.ApplyPromoCode(ctx, cart.GUID, "SPRING")
	require.NoError(t, err)
	assert.Equal(t, []string{"SPRING"}, cart.PromoCodes)

	_, err = f.giftCerts.CreateGiftCertificate(ctx, entities.GiftCertificate{Code: "GC-5", OriginalBalance: amount("5"), Currency: "USD"})
	require.NoError(t, err)

	cart, err = f.carts.ApplyGiftCertificate(ctx, cart.GUID, "GC-5")
	require.NoError(t, err)
	assert.Equal(t, []string{"GC-5"}, cart.GiftCertificateCodes)

	_, err = f.carts.ApplyGiftCertificate(ctx, cart.GUID, "GC-NOPE")
	assert.ErrorIs(t, err, entities.ErrGiftCertificateNotFound)

	_, err = f.giftCerts.PreAuthorize(ctx, entities.PaymentRequest{Amount: amount("5"), Currency: "USD", GiftCertificateCode: "GC-5"})
	require.NoError(t, err)
	_, err = f.carts.ApplyGiftCertificate(ctx, cart.GUID, "GC-5")
	assert.ErrorIs(t, err, entities.ErrInsufficientBalance)

	f.store.AddSku(entities.SKU{Code: "MUG-WHITE", StoreCodes: []string{"WEB"}, Shippable: true}, nil)
	cart, err = f.carts.Refresh(ctx, cart.GUID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.carts.GetCart(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrCartNotFound)
}

func TestCartService_CheckedOutCartIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := f.newCart(t, item("TSHIRT-RED-M", 1))
	cart.CompletedOrderNumber = "A1"
	require.NoError(t, f.store.SaveCart(ctx, cart))

	_, err := f.carts.AddItem(ctx, cart.GUID, item("MUG-WHITE", 1))
	assert.ErrorIs(t, err, entities.ErrCartAlreadyCheckedOut)

	_, err = f.carts.ApplyPromoCode(ctx, cart.GUID, "SPRING")
	assert.ErrorIs(t, err, entities.ErrCartAlreadyCheckedOut)

	other := f.newCart(t)
	_, err = f.carts.Merge(ctx, cart.GUID, other.GUID)
	assert.ErrorIs(t, err, entities.ErrCartAlreadyCheckedOut)
}

func TestCartService_Merge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	current := f.newCart(t, item("TSHIRT-RED-M", 1))
	previous := f.newCart(t, item("TSHIRT-RED-M", 4), item("MUG-WHITE", 2))
	previous, err := f.carts.ApplyPromoCode(ctx, previous.GUID, "WELCOME")
	require.NoError(t, err)

	merged, err := f.carts.Merge(ctx, current.GUID, previous.GUID)
	require.NoError(t, err)

	assert.Equal(t, current.GUID, merged.GUID)
	require.Len(t, merged.Items, 2)
	assert.Equal(t, "TSHIRT-RED-M", merged.Items[0].SkuCode)
	assert.Equal(t, 1, merged.Items[0].Quantity)
	assert.Equal(t, "MUG-WHITE", merged.Items[1].SkuCode)
	assert.Equal(t, 2, merged.Items[1].Ordering)
	assert.Equal(t, []string{"WELCOME"}, merged.PromoCodes)

	_, err = f.carts.GetCart(ctx, previous.GUID)
	assert.ErrorIs(t, err, entities.ErrCartNotFound)

	stored, err := f.carts.GetCart(ctx, current.GUID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)

	_, err = f.carts.Merge(ctx, current.GUID, previous.GUID)
	assert.ErrorIs(t, err, entities.ErrCartNotFound)
}
