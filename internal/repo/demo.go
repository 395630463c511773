package repo

import (
	"context"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
)

// SeedDemoCatalog loads the same catalog and stock the demo migration
// inserts into postgres.
func (m *MemoryStore) SeedDemoCatalog(ctx context.Context) error {
	usd := func(list string, sale ...string) map[string]entities.Price {
		p := entities.Price{List: decimal.RequireFromString(list)}
		if len(sale) > 0 {
			p.Sale = decimal.NewNullDecimal(decimal.RequireFromString(sale[0]))
		}
		return map[string]entities.Price{"USD": p}
	}
	web := []string{"WEB"}

	m.AddSku(entities.SKU{Code: "TSHIRT-RED-M", ProductCode: "TSHIRT", ProductType: "Apparel", StoreCodes: web, Shippable: true, Enabled: true}, usd("25.00", "19.99"))
	m.AddSku(entities.SKU{Code: "MUG-WHITE", ProductCode: "MUG", ProductType: "Homeware", StoreCodes: web, Shippable: true, Enabled: true}, usd("12.50"))
	m.AddSku(entities.SKU{Code: "EBOOK-GO", ProductCode: "EBOOK", ProductType: "Digital", StoreCodes: web, Enabled: true}, usd("30.00"))
	m.AddSku(entities.SKU{Code: "GC-50", ProductCode: "GC", ProductType: entities.ProductTypeGiftCertificate, StoreCodes: web, Enabled: true}, usd("50.00"))
	m.AddSku(entities.SKU{Code: "STARTER-KIT", ProductCode: "KIT", ProductType: "Bundle", StoreCodes: web, Shippable: true, Bundle: true, Enabled: true}, nil)

	for _, rec := range []entities.InventoryRecord{
		{SkuCode: "TSHIRT-RED-M", Warehouse: "MAIN", OnHand: 100, Criteria: entities.AvailableWhenInStock, Version: 1},
		{SkuCode: "MUG-WHITE", Warehouse: "MAIN", Criteria: entities.Backorder, Version: 1},
	} {
		if err := m.CreateInventory(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
