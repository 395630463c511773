package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = entities.InventoryKey{SkuCode: "TSHIRT-RED-M", Warehouse: "MAIN"}

func seeded(t *testing.T) *repo.MemoryStore {
	t.Helper()
	m := repo.NewMemoryStore()
	require.NoError(t, m.SeedDemoCatalog(context.Background()))
	return m
}

func TestMemoryStore_Transactions(t *testing.T) {
	ctx := context.Background()
	errAbort := errors.New("abort")

	testCases := []struct {
		name       string
		callback   func(m *repo.MemoryStore) func(ctx context.Context) error
		wantErr    error
		wantOnHand int
	}{
		{
			name: "commit keeps writes",
			callback: func(m *repo.MemoryStore) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return m.UpdateInventory(ctx, entities.InventoryRecord{SkuCode: key.SkuCode, Warehouse: key.Warehouse, OnHand: 90, Version: 2}, 1)
				}
			},
			wantOnHand: 90,
		},
		{
			name: "error restores the snapshot",
			callback: func(m *repo.MemoryStore) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					if err := m.UpdateInventory(ctx, entities.InventoryRecord{SkuCode: key.SkuCode, Warehouse: key.Warehouse, OnHand: 90, Version: 2}, 1); err != nil {
						return err
					}
					return errAbort
				}
			},
			wantErr:    errAbort,
			wantOnHand: 100,
		},
		{
			name: "nested call joins the outer transaction",
			callback: func(m *repo.MemoryStore) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					err := m.Do(ctx, func(ctx context.Context) error {
						return m.UpdateInventory(ctx, entities.InventoryRecord{SkuCode: key.SkuCode, Warehouse: key.Warehouse, OnHand: 90, Version: 2}, 1)
					})
					if err != nil {
						return err
					}
					return errAbort
				}
			},
			wantErr:    errAbort,
			wantOnHand: 100,
		},
		{
			name: "stale version",
			callback: func(m *repo.MemoryStore) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return m.UpdateInventory(ctx, entities.InventoryRecord{SkuCode: key.SkuCode, Warehouse: key.Warehouse, OnHand: 1, Version: 8}, 7)
				}
			},
			wantErr:    entities.ErrConcurrentModification,
			wantOnHand: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := seeded(t)

			err := m.Do(ctx, tc.callback(m))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			rec, err := m.GetInventory(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOnHand, rec.OnHand)
		})
	}
}

func TestMemoryStore_Orders(t *testing.T) {
	ctx := context.Background()
	m := seeded(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, number := range []string{"A1", "A2", "A3"} {
		status := entities.OrderInProgress
		if i == 1 {
			status = entities.OrderCompleted
		}
		require.NoError(t, m.SaveOrder(ctx, &entities.Order{
			Number:     number,
			Status:     status,
			CustomerID: "shopper-1",
			Currency:   "USD",
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Shipments: []*entities.OrderShipment{{
				Number:       number + "-1",
				Kind:         entities.ShipmentPhysical,
				ShippingCost: decimal.RequireFromString("5"),
			}},
		}))
	}

	o, err := m.GetOrderByShipment(ctx, "A2-1")
	require.NoError(t, err)
	assert.Equal(t, "A2", o.Number)

	o.Status = entities.OrderCancelled
	stored, err := m.GetOrder(ctx, "A2")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderCompleted, stored.Status, "stored order is not shared with callers")

	found, err := m.FindOrders(ctx, entities.OrderCriteria{Status: entities.OrderInProgress})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "A3", found[0].Number)
	assert.Equal(t, "A1", found[1].Number)

	found, err = m.FindOrders(ctx, entities.OrderCriteria{CreatedAfter: base, Limit: 1})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "A3", found[0].Number)

	_, err = m.GetOrder(ctx, "NOPE")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	_, err = m.GetOrderByShipment(ctx, "NOPE-1")
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
}

func TestMemoryStore_Catalog(t *testing.T) {
	ctx := context.Background()
	m := seeded(t)

	sku, err := m.ResolveSku(ctx, "TSHIRT-RED-M")
	require.NoError(t, err)
	assert.True(t, sku.Shippable)

	price, err := m.PriceFor(ctx, sku, "USD", entities.PriceContext{})
	require.NoError(t, err)
	assert.True(t, price.List.Equal(decimal.RequireFromString("25")))
	require.True(t, price.Sale.Valid)
	assert.True(t, price.Sale.Decimal.Equal(decimal.RequireFromString("19.99")))

	_, err = m.PriceFor(ctx, sku, "EUR", entities.PriceContext{})
	assert.ErrorIs(t, err, entities.ErrPriceNotFound)

	err = m.CreateInventory(ctx, entities.InventoryRecord{SkuCode: key.SkuCode, Warehouse: key.Warehouse})
	assert.ErrorIs(t, err, entities.ErrInventoryExists)
}
