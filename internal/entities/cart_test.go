package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewItemKey(t *testing.T) {
	a := entities.NewItemKey("X", map[string]string{"size": "L", "color": "red"})
	b := entities.NewItemKey("X", map[string]string{"color": "red", "size": "L"})
	c := entities.NewItemKey("X", map[string]string{"color": "blue", "size": "L"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, entities.ItemKey("X"), entities.NewItemKey("X", nil))

	forged := entities.NewItemKey("X", map[string]string{"msg": "hi|to=bob"})
	split := entities.NewItemKey("X", map[string]string{"msg": "hi", "to": "bob"})
	assert.NotEqual(t, forged, split)
	assert.NotEqual(t,
		entities.NewItemKey("X", map[string]string{"a": "1:b"}),
		entities.NewItemKey("X", map[string]string{"a:1": "b"}),
	)
}

func TestShoppingCart_LeafLinesAndTotals(t *testing.T) {
	cart := &entities.ShoppingCart{}
	cart.AddItem(&entities.CartItem{GUID: "1", SkuCode: "A", Quantity: 2, ListPrice: decimal.NewFromInt(10)})
	cart.AddItem(&entities.CartItem{
		GUID: "2", SkuCode: "BUNDLE", Quantity: 3, Bundle: true,
		Children: []*entities.CartItem{
			{GUID: "2a", SkuCode: "B", Quantity: 1, ListPrice: decimal.NewFromInt(4)},
			{GUID: "2b", SkuCode: "C", Quantity: 2, ListPrice: decimal.NewFromInt(1), SalePrice: decimal.NewNullDecimal(decimal.RequireFromString("0.5"))},
		},
	})

	lines := cart.LeafLines()
	assert.Len(t, lines, 3)
	assert.Equal(t, 3, lines[1].Quantity)
	assert.Equal(t, 6, lines[2].Quantity)

	// 2*10 + 3*(4 + 2*0.5)
	assert.True(t, decimal.NewFromInt(35).Equal(cart.Subtotal()))
	assert.Equal(t, 2, cart.Items[1].Ordering)
}

func TestShoppingCart_Renumber(t *testing.T) {
	cart := &entities.ShoppingCart{Items: []*entities.CartItem{
		{GUID: "b", Ordering: 7},
		{GUID: "a", Ordering: 3},
	}}
	cart.Renumber()

	assert.Equal(t, "a", cart.Items[0].GUID)
	assert.Equal(t, 1, cart.Items[0].Ordering)
	assert.Equal(t, 2, cart.Items[1].Ordering)
}

func TestShoppingCart_CodesAreSets(t *testing.T) {
	cart := &entities.ShoppingCart{}
	cart.AddPromoCode("SPRING")
	cart.AddPromoCode("SPRING")
	cart.AddGiftCertificate("GC1")
	cart.AddGiftCertificate("GC1")
	cart.AddGiftCertificate("")

	assert.Equal(t, []string{"SPRING"}, cart.PromoCodes)
	assert.Equal(t, []string{"GC1"}, cart.GiftCertificateCodes)
}
