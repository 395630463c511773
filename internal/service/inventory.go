package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
)

type InventoryRepo interface {
	GetInventory(ctx context.Context, key entities.InventoryKey) (entities.InventoryRecord, error)
	CreateInventory(ctx context.Context, rec entities.InventoryRecord) error
	// UpdateInventory writes rec only if the stored version still equals
	// expectedVersion, otherwise it returns ErrConcurrentModification.
	UpdateInventory(ctx context.Context, rec entities.InventoryRecord, expectedVersion int64) error
	SaveAudit(ctx context.Context, audit entities.InventoryAudit) error
	AuditTrail(ctx context.Context, key entities.InventoryKey, limit int) ([]entities.InventoryAudit, error)
}

type InventoryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      InventoryRepo
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewInventoryService(logger *slog.Logger, txManager trm.Manager, repo InventoryRepo, retry utils.RetryConfig) *InventoryService {
	return &InventoryService{
		logger:    logger.With(slog.String("service", "inventory")),
		txManager: txManager,
		repo:      repo,
		retry:     retry,
		now:       time.Now,
	}
}

func (s *InventoryService) GetInventory(ctx context.Context, skuCode, warehouse string) (entities.InventoryRecord, error) {
	return s.repo.GetInventory(ctx, entities.InventoryKey{SkuCode: skuCode, Warehouse: warehouse})
}

func (s *InventoryService) CreateInventory(ctx context.Context, rec entities.InventoryRecord) (entities.InventoryRecord, error) {
	if rec.Allocated != 0 || (rec.OnHand < 0 && rec.Criteria != entities.Backorder) {
		return entities.InventoryRecord{}, entities.ErrNegativeInventory
	}
	rec.Version = 1

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateInventory(ctx, rec); err != nil {
			return fmt.Errorf("failed to create inventory: %w", err)
		}
		if rec.OnHand == 0 {
			return nil
		}
		audit := entities.NewInventoryAudit(entities.InventoryCommand{
			Event:     entities.EventStockAdjustment,
			SkuCode:   rec.SkuCode,
			Warehouse: rec.Warehouse,
			Quantity:  rec.OnHand,
			Reference: "initial stock",
		}, s.now())
		if err := s.repo.SaveAudit(ctx, audit); err != nil {
			return fmt.Errorf("failed to save inventory audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.InventoryRecord{}, err
	}
	return rec, nil
}

// AdjustInventory applies a signed stock adjustment.
func (s *InventoryService) AdjustInventory(ctx context.Context, cmd entities.InventoryCommand) (entities.InventoryRecord, error) {
	cmd.Event = entities.EventStockAdjustment
	rec, _, err := s.apply(ctx, cmd)
	return rec, err
}

// Allocate reserves qty for a pending order line and returns the quantity
// actually allocated, which is zero for always-available stock.
func (s *InventoryService) Allocate(ctx context.Context, skuCode, warehouse string, qty int, ref string) (int, error) {
	_, applied, err := s.apply(ctx, entities.InventoryCommand{
		Event:     entities.EventAllocation,
		SkuCode:   skuCode,
		Warehouse: warehouse,
		Quantity:  qty,
		Reference: ref,
	})
	if err != nil {
		return 0, err
	}
	if !applied {
		return 0, nil
	}
	return qty, nil
}

func (s *InventoryService) Deallocate(ctx context.Context, skuCode, warehouse string, qty int, ref string) error {
	_, _, err := s.apply(ctx, entities.InventoryCommand{
		Event:     entities.EventDeallocation,
		SkuCode:   skuCode,
		Warehouse: warehouse,
		Quantity:  qty,
		Reference: ref,
	})
	return err
}

// CompleteAllocation turns an allocation into an on-hand decrement.
func (s *InventoryService) CompleteAllocation(ctx context.Context, skuCode, warehouse string, qty int, ref string) error {
	_, _, err := s.apply(ctx, entities.InventoryCommand{
		Event:     entities.EventShipmentCompleted,
		SkuCode:   skuCode,
		Warehouse: warehouse,
		Quantity:  qty,
		Reference: ref,
	})
	return err
}

// Restock puts returned goods back on hand.
func (s *InventoryService) Restock(ctx context.Context, skuCode, warehouse string, qty int, ref string) error {
	_, _, err := s.apply(ctx, entities.InventoryCommand{
		Event:     entities.EventReturn,
		SkuCode:   skuCode,
		Warehouse: warehouse,
		Quantity:  qty,
		Reference: ref,
	})
	return err
}

func (s *InventoryService) AuditTrail(ctx context.Context, skuCode, warehouse string, limit int) ([]entities.InventoryAudit, error) {
	return s.repo.AuditTrail(ctx, entities.InventoryKey{SkuCode: skuCode, Warehouse: warehouse}, limit)
}

// apply runs read, Apply, conditional update and audit in one transaction
// and retries the whole attempt when another writer got there first.
func (s *InventoryService) apply(ctx context.Context, cmd entities.InventoryCommand) (entities.InventoryRecord, bool, error) {
	var (
		out     entities.InventoryRecord
		applied bool
	)

	attempt := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			rec, err := s.repo.GetInventory(ctx, cmd.Key())
			if err != nil {
				return err
			}
			if cmd.Event != entities.EventStockAdjustment && !rec.Tracked() {
				out, applied = rec, false
				return nil
			}

			next, err := rec.Apply(cmd)
			if err != nil {
				return fmt.Errorf("%s of %d %s at %s: %w", cmd.Event, cmd.Quantity, cmd.SkuCode, cmd.Warehouse, err)
			}
			if err := s.repo.UpdateInventory(ctx, next, rec.Version); err != nil {
				return err
			}
			if err := s.repo.SaveAudit(ctx, entities.NewInventoryAudit(cmd, s.now())); err != nil {
				return fmt.Errorf("failed to save inventory audit: %w", err)
			}
			out, applied = next, true
			return nil
		})
	}

	err := utils.RetryOn(ctx, s.retry, func() error {
		err := attempt()
		if entities.KindOf(err) == entities.KindConflict {
			inventoryConflicts.Inc()
			s.logger.DebugContext(ctx, "inventory version conflict", slog.String("sku", cmd.SkuCode), slog.String("warehouse", cmd.Warehouse))
		}
		return err
	}, entities.ErrConcurrentModification)
	if err != nil {
		return entities.InventoryRecord{}, false, err
	}
	return out, applied, nil
}
