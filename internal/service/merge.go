package service

import (
	"sort"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
)

// MergeCarts combines the previous cart into the current one. Non-bundle
// lines are deduplicated by ItemKey and the current cart's quantity wins;
// bundles are copied as independent lines. Inputs are not modified.
func MergeCarts(current, previous *entities.ShoppingCart) *entities.ShoppingCart {
	merged := &entities.ShoppingCart{
		GUID:         current.GUID,
		ShopperID:    current.ShopperID,
		StoreCode:    current.StoreCode,
		Currency:     current.Currency,
		Warehouse:    current.Warehouse,
		ShippingCost: current.ShippingCost,
		UpdatedAt:    current.UpdatedAt,
	}

	seen := make(map[entities.ItemKey]bool)
	for _, item := range byOrdering(current.Items) {
		if !item.Bundle {
			seen[item.Key()] = true
		}
		merged.Items = append(merged.Items, cloneAt(item, len(merged.Items)+1))
	}

	for _, item := range byOrdering(previous.Items) {
		if !item.Bundle {
			key := item.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		merged.Items = append(merged.Items, cloneAt(item, len(merged.Items)+1))
	}

	for _, cart := range []*entities.ShoppingCart{current, previous} {
		for _, code := range cart.PromoCodes {
			merged.AddPromoCode(code)
		}
		for _, code := range cart.GiftCertificateCodes {
			merged.AddGiftCertificate(code)
		}
	}
	return merged
}

func cloneAt(item *entities.CartItem, ordering int) *entities.CartItem {
	clone := item.Clone()
	clone.Ordering = ordering
	return clone
}

func byOrdering(items []*entities.CartItem) []*entities.CartItem {
	sorted := make([]*entities.CartItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Ordering < sorted[j].Ordering })
	return sorted
}
