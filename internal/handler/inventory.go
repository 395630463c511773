package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const defaultAuditLimit = 100

type InventoryManager interface {
	GetInventory(ctx context.Context, skuCode, warehouse string) (entities.InventoryRecord, error)
	CreateInventory(ctx context.Context, rec entities.InventoryRecord) (entities.InventoryRecord, error)
	AdjustInventory(ctx context.Context, cmd entities.InventoryCommand) (entities.InventoryRecord, error)
	AuditTrail(ctx context.Context, skuCode, warehouse string, limit int) ([]entities.InventoryAudit, error)
}

type InventoryHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	inventory InventoryManager
}

func NewInventoryHandler(logger *slog.Logger, inventory InventoryManager) *InventoryHandler {
	return &InventoryHandler{
		logger:    logger.With(slog.String("handler", "inventory")),
		validate:  validator.New(),
		inventory: inventory,
	}
}

func (h *InventoryHandler) Init(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Post("/", h.CreateInventory)
		r.Get("/{sku}/{warehouse}", h.GetInventory)
		r.Post("/{sku}/{warehouse}/adjustments", h.AdjustInventory)
		r.Get("/{sku}/{warehouse}/audit", h.AuditTrail)
	})
}

// GetInventory возвращает остаток SKU на складе.
// @Summary      Получить остаток
// @Tags         inventory
// @Produce      json
// @Param        sku        path      string  true  "Код SKU"
// @Param        warehouse  path      string  true  "Склад"
// @Success      200  {object}  Inventory
// @Failure      404  {object}  utils.ErrorResponse "Остаток не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /inventory/{sku}/{warehouse} [get]
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku, warehouse := chi.URLParam(r, "sku"), chi.URLParam(r, "warehouse")

	rec, err := h.inventory.GetInventory(ctx, sku, warehouse)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to get inventory", err, slog.String("sku", sku), slog.String("warehouse", warehouse))
		return
	}

	utils.WriteJSON(w, InventoryEntityToJSON(rec), http.StatusOK)
}

// CreateInventory заводит складской учёт для SKU.
// @Summary      Создать остаток
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      CreateInventoryRequest  true  "Остаток"
// @Success      201  {object}  Inventory
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /inventory [post]
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInventoryRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	rec, err := h.inventory.CreateInventory(ctx, entities.InventoryRecord{
		SkuCode:   req.SkuCode,
		Warehouse: req.Warehouse,
		OnHand:    req.OnHand,
		Criteria:  entities.AvailabilityCriteria(req.Criteria),
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to create inventory", err, slog.String("sku", req.SkuCode))
		return
	}

	utils.WriteJSON(w, InventoryEntityToJSON(rec), http.StatusCreated)
}

// AdjustInventory меняет остаток на складе.
// @Summary      Скорректировать остаток
// @Description  Положительное количество приход, отрицательное списание
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        sku        path      string           true  "Код SKU"
// @Param        warehouse  path      string           true  "Склад"
// @Param        request    body      StockAdjustment  true  "Изменение"
// @Success      200  {object}  Inventory
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Остаток не найден"
// @Failure      409  {object}  utils.ErrorResponse "Конфликт версий"
// @Router       /inventory/{sku}/{warehouse}/adjustments [post]
func (h *InventoryHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StockAdjustment
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.SkuCode, req.Warehouse = chi.URLParam(r, "sku"), chi.URLParam(r, "warehouse")
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	rec, err := h.inventory.AdjustInventory(ctx, req.toCommand())
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to adjust inventory", err, slog.String("sku", req.SkuCode))
		return
	}

	utils.WriteJSON(w, InventoryEntityToJSON(rec), http.StatusOK)
}

// AuditTrail
// @Summary      История изменений остатка
// @Tags         inventory
// @Produce      json
// @Param        sku        path      string  true   "Код SKU"
// @Param        warehouse  path      string  true   "Склад"
// @Param        limit      query     int     false  "Максимум записей"
// @Success      200  {array}   InventoryAudit
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Router       /inventory/{sku}/{warehouse}/audit [get]
func (h *InventoryHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku, warehouse := chi.URLParam(r, "sku"), chi.URLParam(r, "warehouse")

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			utils.WriteError(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = n
	}

	audits, err := h.inventory.AuditTrail(ctx, sku, warehouse, limit)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to load inventory audit", err, slog.String("sku", sku))
		return
	}

	res := make([]InventoryAudit, 0, len(audits))
	for _, a := range audits {
		res = append(res, InventoryAuditEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
