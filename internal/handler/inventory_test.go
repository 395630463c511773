package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInventoryHandler(t *testing.T) {
	rec := entities.InventoryRecord{
		SkuCode:   "TSHIRT-RED-M",
		Warehouse: "MAIN",
		OnHand:    10,
		Allocated: 3,
		Criteria:  entities.AvailableWhenInStock,
		Version:   4,
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockInventoryManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/inventory/TSHIRT-RED-M/MAIN",
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().GetInventory(mock.Anything, "TSHIRT-RED-M", "MAIN").Return(rec, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"available":7`,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/inventory/NOPE/MAIN",
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().GetInventory(mock.Anything, "NOPE", "MAIN").Return(entities.InventoryRecord{}, entities.ErrInventoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/inventory",
			body:   `{"sku_code":"TSHIRT-RED-M","warehouse":"MAIN","on_hand":10,"criteria":"AVAILABLE_WHEN_IN_STOCK"}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().
					CreateInventory(mock.Anything, entities.InventoryRecord{
						SkuCode:   "TSHIRT-RED-M",
						Warehouse: "MAIN",
						OnHand:    10,
						Criteria:  entities.AvailableWhenInStock,
					}).
					Return(rec, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "create with unknown criteria",
			method:       http.MethodPost,
			target:       "/inventory",
			body:         `{"sku_code":"TSHIRT-RED-M","warehouse":"MAIN","criteria":"SOMETIMES"}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "adjust takes sku and warehouse from the path",
			method: http.MethodPost,
			target: "/inventory/TSHIRT-RED-M/MAIN/adjustments",
			body:   `{"quantity":-2,"reference":"count-7"}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().
					AdjustInventory(mock.Anything, entities.InventoryCommand{
						Event:     entities.EventStockAdjustment,
						SkuCode:   "TSHIRT-RED-M",
						Warehouse: "MAIN",
						Quantity:  -2,
						Reference: "count-7",
					}).
					Return(rec, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "adjust by zero",
			method:       http.MethodPost,
			target:       "/inventory/TSHIRT-RED-M/MAIN/adjustments",
			body:         `{"quantity":0}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "adjust below allocation",
			method: http.MethodPost,
			target: "/inventory/TSHIRT-RED-M/MAIN/adjustments",
			body:   `{"quantity":-9}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().AdjustInventory(mock.Anything, mock.Anything).Return(entities.InventoryRecord{}, entities.ErrInsufficientInventory).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "adjust conflict",
			method: http.MethodPost,
			target: "/inventory/TSHIRT-RED-M/MAIN/adjustments",
			body:   `{"quantity":1}`,
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().AdjustInventory(mock.Anything, mock.Anything).Return(entities.InventoryRecord{}, entities.ErrConcurrentModification).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "audit trail",
			method: http.MethodGet,
			target: "/inventory/TSHIRT-RED-M/MAIN/audit?limit=5",
			mockBehavior: func(svc *mocks.MockInventoryManager) {
				svc.EXPECT().AuditTrail(mock.Anything, "TSHIRT-RED-M", "MAIN", 5).Return([]entities.InventoryAudit{{
					ID:          1,
					Event:       entities.EventAllocation,
					OnHandDelta: 0,
					CreatedAt:   time.Now(),
				}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"event":"ALLOCATION"`,
		},
		{
			name:         "audit trail with bad limit",
			method:       http.MethodGet,
			target:       "/inventory/TSHIRT-RED-M/MAIN/audit?limit=-1",
			mockBehavior: func(svc *mocks.MockInventoryManager) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockInventoryManager(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			r := chi.NewRouter()
			handler.NewInventoryHandler(logger, svc).Init(r)

			status, body := serve(r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestGiftCertificateHandler(t *testing.T) {
	gc := entities.GiftCertificate{
		Code:            "GC-1",
		OriginalBalance: decimal.NewFromInt(50),
		Currency:        "USD",
	}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockGiftCertificateReader)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "balance is reported next to the original value",
			mockBehavior: func(svc *mocks.MockGiftCertificateReader) {
				svc.EXPECT().GetGiftCertificate(mock.Anything, "GC-1").Return(gc, nil).Once()
				svc.EXPECT().GetBalance(mock.Anything, "GC-1").Return(decimal.RequireFromString("12.5"), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"balance":"12.50"`,
		},
		{
			name: "unknown code",
			mockBehavior: func(svc *mocks.MockGiftCertificateReader) {
				svc.EXPECT().GetGiftCertificate(mock.Anything, "GC-1").Return(entities.GiftCertificate{}, entities.ErrGiftCertificateNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "ledger failure",
			mockBehavior: func(svc *mocks.MockGiftCertificateReader) {
				svc.EXPECT().GetGiftCertificate(mock.Anything, "GC-1").Return(gc, nil).Once()
				svc.EXPECT().GetBalance(mock.Anything, "GC-1").Return(decimal.Zero, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockGiftCertificateReader(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			r := chi.NewRouter()
			handler.NewGiftCertificateHandler(logger, svc).Init(r)

			status, body := serve(r, http.MethodGet, "/gift-certificates/GC-1", "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
