package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/fulfillment-service/pkg/trm/mocks"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Allocate(t *testing.T) {
	type MockBehavior func(repo *mocks.MockInventoryRepo)

	key := entities.InventoryKey{SkuCode: "TSHIRT-RED-M", Warehouse: "MAIN"}
	inStock := entities.InventoryRecord{SkuCode: "TSHIRT-RED-M", Warehouse: "MAIN", OnHand: 10, Allocated: 2, Criteria: entities.AvailableWhenInStock, Version: 3}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		qty          int
		mockBehavior MockBehavior
		want         int
		wantErr      error
	}{
		{
			name: "OK",
			qty:  3,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(inStock, nil).Once()
				repo.EXPECT().
					UpdateInventory(mock.Anything, mock.MatchedBy(func(r entities.InventoryRecord) bool {
						return r.Allocated == 5 && r.OnHand == 10 && r.Version == 4
					}), int64(3)).
					Return(nil).Once()
				repo.EXPECT().
					SaveAudit(mock.Anything, mock.MatchedBy(func(a entities.InventoryAudit) bool {
						return a.Event == entities.EventAllocation && a.AllocatedDelta == 3 && a.OnHandDelta == 0 && a.Reference == "A1-1"
					})).
					Return(nil).Once()
			},
			want: 3,
		},
		{
			name: "always available stock is not allocated",
			qty:  50,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(entities.InventoryRecord{Criteria: entities.AlwaysAvailable}, nil).Once()
			},
			want: 0,
		},
		{
			name: "insufficient stock",
			qty:  9,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(inStock, nil).Once()
			},
			wantErr: entities.ErrInsufficientInventory,
		},
		{
			name: "retried after a concurrent update",
			qty:  1,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				newer := inStock
				newer.Allocated, newer.Version = 3, 4

				repo.EXPECT().GetInventory(mock.Anything, key).Return(inStock, nil).Once()
				repo.EXPECT().UpdateInventory(mock.Anything, mock.Anything, int64(3)).Return(entities.ErrConcurrentModification).Once()
				repo.EXPECT().GetInventory(mock.Anything, key).Return(newer, nil).Once()
				repo.EXPECT().
					UpdateInventory(mock.Anything, mock.MatchedBy(func(r entities.InventoryRecord) bool { return r.Allocated == 4 }), int64(4)).
					Return(nil).Once()
				repo.EXPECT().SaveAudit(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: 1,
		},
		{
			name: "gives up after the last attempt",
			qty:  1,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(inStock, nil).Times(3)
				repo.EXPECT().UpdateInventory(mock.Anything, mock.Anything, int64(3)).Return(entities.ErrConcurrentModification).Times(3)
			},
			wantErr: entities.ErrConcurrentModification,
		},
		{
			name: "audit fails",
			qty:  1,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(inStock, nil).Once()
				repo.EXPECT().UpdateInventory(mock.Anything, mock.Anything, int64(3)).Return(nil).Once()
				repo.EXPECT().SaveAudit(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "unknown record",
			qty:  1,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().GetInventory(mock.Anything, key).Return(entities.InventoryRecord{}, entities.ErrInventoryNotFound).Once()
			},
			wantErr: entities.ErrInventoryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockInventoryRepo(t)
			txManager := txMocks.NewMockManager(t)
			txManager.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(context.Context) error) error {
					return cb(ctx)
				})
			tc.mockBehavior(repo)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewInventoryService(logger, txManager, repo, utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond})

			got, err := svc.Allocate(context.Background(), "TSHIRT-RED-M", "MAIN", tc.qty, "A1-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInventoryService_StockAdjustments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, err := f.inventory.CreateInventory(ctx, entities.InventoryRecord{
		SkuCode:   "POSTER",
		Warehouse: "MAIN",
		OnHand:    5,
		Criteria:  entities.AvailableWhenInStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)

	_, err = f.inventory.CreateInventory(ctx, entities.InventoryRecord{SkuCode: "POSTER", Warehouse: "MAIN", Criteria: entities.AvailableWhenInStock})
	assert.ErrorIs(t, err, entities.ErrInventoryExists)

	_, err = f.inventory.CreateInventory(ctx, entities.InventoryRecord{SkuCode: "FLAG", Warehouse: "MAIN", OnHand: -1, Criteria: entities.AvailableWhenInStock})
	assert.ErrorIs(t, err, entities.ErrNegativeInventory)

	allocated, err := f.inventory.Allocate(ctx, "POSTER", "MAIN", 4, "A1-1")
	require.NoError(t, err)
	assert.Equal(t, 4, allocated)

	_, err = f.inventory.AdjustInventory(ctx, entities.InventoryCommand{SkuCode: "POSTER", Warehouse: "MAIN", Quantity: -2, Reference: "damaged"})
	assert.ErrorIs(t, err, entities.ErrInsufficientInventory)

	rec, err = f.inventory.AdjustInventory(ctx, entities.InventoryCommand{SkuCode: "POSTER", Warehouse: "MAIN", Quantity: 10, Reference: "po-7"})
	require.NoError(t, err)
	assert.Equal(t, 15, rec.OnHand)
	assert.Equal(t, 4, rec.Allocated)
	assert.Equal(t, 11, rec.Available())

	require.NoError(t, f.inventory.CompleteAllocation(ctx, "POSTER", "MAIN", 4, "A1-1"))
	assert.ErrorIs(t, f.inventory.Deallocate(ctx, "POSTER", "MAIN", 0, "A1-1"), entities.ErrInvalidQuantity)

	audit, err := f.inventory.AuditTrail(ctx, "POSTER", "MAIN", 10)
	require.NoError(t, err)
	require.Len(t, audit, 4)

	onHand, allocatedTotal := 0, 0
	for _, a := range audit {
		onHand += a.OnHandDelta
		allocatedTotal += a.AllocatedDelta
	}
	rec = f.record(t, "POSTER")
	assert.Equal(t, rec.OnHand, onHand)
	assert.Equal(t, rec.Allocated, allocatedTotal)
}

func TestInventoryService_ConcurrentAllocations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.inventory.Allocate(ctx, "TSHIRT-RED-M", "MAIN", 8, "race")
			if err == nil {
				success.Add(1)
				return
			}
			assert.ErrorIs(t, err, entities.ErrInsufficientInventory)
		}()
	}
	wg.Wait()

	rec := f.record(t, "TSHIRT-RED-M")
	assert.Equal(t, int32(12), success.Load())
	assert.Equal(t, 96, rec.Allocated)
	assert.LessOrEqual(t, rec.Allocated, rec.OnHand)
}
