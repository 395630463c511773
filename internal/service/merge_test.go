package service_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundle(guid string, ordering int) *entities.CartItem {
	return &entities.CartItem{
		GUID:     guid,
		SkuCode:  "STARTER-KIT",
		Quantity: 1,
		Bundle:   true,
		Ordering: ordering,
		Children: []*entities.CartItem{{GUID: guid + "-1", SkuCode: "MUG-WHITE", Quantity: 1, Ordering: 1}},
	}
}

func TestMergeCarts(t *testing.T) {
	current := &entities.ShoppingCart{
		GUID:      "current",
		ShopperID: "shopper-1",
		Currency:  "USD",
		Items: []*entities.CartItem{
			bundle("c-kit", 2),
			{GUID: "c-tshirt", SkuCode: "TSHIRT-RED-M", Quantity: 1, Ordering: 1},
		},
		PromoCodes: []string{"SPRING"},
	}
	previous := &entities.ShoppingCart{
		GUID: "previous",
		Items: []*entities.CartItem{
			{GUID: "p-mug", SkuCode: "MUG-WHITE", Quantity: 2, Ordering: 2},
			{GUID: "p-tshirt", SkuCode: "TSHIRT-RED-M", Quantity: 5, Ordering: 1},
			{GUID: "p-tshirt-logo", SkuCode: "TSHIRT-RED-M", Quantity: 1, Ordering: 3, Fields: map[string]string{"print": "logo"}},
			bundle("p-kit", 4),
		},
		PromoCodes:           []string{"SPRING", "WELCOME"},
		GiftCertificateCodes: []string{"GC-1"},
	}

	merged := service.MergeCarts(current, previous)

	var guids []string
	for n, it := range merged.Items {
		guids = append(guids, it.GUID)
		assert.Equal(t, n+1, it.Ordering)
	}
	assert.Equal(t, []string{"c-tshirt", "c-kit", "p-mug", "p-tshirt-logo", "p-kit"}, guids)
	assert.Equal(t, 1, merged.Items[0].Quantity)

	assert.Equal(t, "current", merged.GUID)
	assert.Equal(t, "shopper-1", merged.ShopperID)
	assert.Equal(t, []string{"SPRING", "WELCOME"}, merged.PromoCodes)
	assert.Equal(t, []string{"GC-1"}, merged.GiftCertificateCodes)

	merged.Items[0].Quantity = 9
	merged.Items[3].Fields["print"] = "plain"
	merged.Items[4].Children[0].Quantity = 7

	require.Len(t, current.Items, 2)
	assert.Equal(t, 1, current.Items[1].Quantity)
	assert.Equal(t, 2, current.Items[0].Ordering)
	assert.Equal(t, 2, previous.Items[0].Ordering)
	assert.Equal(t, "logo", previous.Items[2].Fields["print"])
	assert.Equal(t, 1, previous.Items[3].Children[0].Quantity)
	assert.Equal(t, []string{"SPRING"}, current.PromoCodes)
}

func TestMergeCarts_EmptyPrevious(t *testing.T) {
	current := &entities.ShoppingCart{
		GUID:  "current",
		Items: []*entities.CartItem{{GUID: "a", SkuCode: "MUG-WHITE", Quantity: 1, Ordering: 1}},
	}

	merged := service.MergeCarts(current, &entities.ShoppingCart{GUID: "previous"})
	require.Len(t, merged.Items, 1)
	assert.Equal(t, "a", merged.Items[0].GUID)
	assert.Empty(t, merged.PromoCodes)
}
