package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var inventoryColumns = []string{"sku_code", "warehouse", "on_hand", "allocated", "criteria", "version"}

func (r *postgresRepo) GetInventory(ctx context.Context, key entities.InventoryKey) (entities.InventoryRecord, error) {
	query, args := r.qb.Select(inventoryColumns...).
		From("inventory").
		Where(sq.Eq{"sku_code": key.SkuCode, "warehouse": key.Warehouse}).
		MustSql()

	var rec Inventory
	err := r.getContext(ctx, &rec, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.InventoryRecord{}, entities.ErrInventoryNotFound
	}
	if err != nil {
		return entities.InventoryRecord{}, fmt.Errorf("failed to get inventory: %w", err)
	}
	return InventoryToEntity(rec), nil
}

func (r *postgresRepo) CreateInventory(ctx context.Context, rec entities.InventoryRecord) error {
	query, args := r.qb.Insert("inventory").
		Columns(inventoryColumns...).
		Values(rec.SkuCode, rec.Warehouse, rec.OnHand, rec.Allocated, string(rec.Criteria), rec.Version).
		Suffix("ON CONFLICT (sku_code, warehouse) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create inventory: %w", err)
	}
	if ok, err := affected(res); err == nil && !ok {
		return entities.ErrInventoryExists
	}
	return nil
}

// UpdateInventory is a compare-and-swap on the version column.
func (r *postgresRepo) UpdateInventory(ctx context.Context, rec entities.InventoryRecord, expectedVersion int64) error {
	query, args := r.qb.Update("inventory").
		Set("on_hand", rec.OnHand).
		Set("allocated", rec.Allocated).
		Set("criteria", string(rec.Criteria)).
		Set("version", rec.Version).
		Where(sq.Eq{"sku_code": rec.SkuCode, "warehouse": rec.Warehouse, "version": expectedVersion}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	if !ok {
		return entities.ErrConcurrentModification
	}
	return nil
}

func (r *postgresRepo) SaveAudit(ctx context.Context, a entities.InventoryAudit) error {
	query, args := r.qb.Insert("inventory_audits").
		Columns("sku_code", "warehouse", "event", "on_hand_delta", "allocated_delta", "reference", "created_at").
		Values(a.SkuCode, a.Warehouse, string(a.Event), a.OnHandDelta, a.AllocatedDelta, nullString(a.Reference), a.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save inventory audit: %w", err)
	}
	return nil
}

func (r *postgresRepo) AuditTrail(ctx context.Context, key entities.InventoryKey, limit int) ([]entities.InventoryAudit, error) {
	q := r.qb.Select("id", "sku_code", "warehouse", "event", "on_hand_delta", "allocated_delta", "reference", "created_at").
		From("inventory_audits").
		Where(sq.Eq{"sku_code": key.SkuCode, "warehouse": key.Warehouse}).
		OrderBy("id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args := q.MustSql()
	var rows []InventoryAudit
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select inventory audits: %w", err)
	}

	result := make([]entities.InventoryAudit, 0, len(rows))
	for _, row := range rows {
		result = append(result, InventoryAuditToEntity(row))
	}
	return result, nil
}
