package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultOrdersLimit = 50
	maxOrdersLimit     = 500
)

type OrderManager interface {
	GetOrder(ctx context.Context, number string) (*entities.Order, error)
	FindOrders(ctx context.Context, criteria entities.OrderCriteria) ([]*entities.Order, error)
	HoldOrder(ctx context.Context, number string) (*entities.Order, error)
	ReleaseHoldOnOrder(ctx context.Context, number string) (*entities.Order, error)
	CancelOrder(ctx context.Context, number string) (*entities.Order, error)
	CancelOrderShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error)
	ReleaseShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error)
	CompleteShipment(ctx context.Context, shipmentNumber, trackingCode string) (*entities.Order, error)
	SplitShipment(ctx context.Context, shipmentNumber string, skuGUIDs []string) (*entities.Order, error)
	UpdateShipmentItemQuantity(ctx context.Context, shipmentNumber, skuGUID string, quantity int) (*entities.Order, error)
	AddOrderReturn(ctx context.Context, shipmentNumber string, items []entities.ReturnItem) (*entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderManager
}

func NewOrderHandler(logger *slog.Logger, orders OrderManager) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		orders:   orders,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.FindOrders)
		r.Get("/{number}", h.GetOrder)
		r.Post("/{number}/hold", h.HoldOrder)
		r.Post("/{number}/release-hold", h.ReleaseHold)
		r.Post("/{number}/cancel", h.CancelOrder)
	})
	r.Route("/shipments/{number}", func(r chi.Router) {
		r.Post("/release", h.ReleaseShipment)
		r.Post("/complete", h.CompleteShipment)
		r.Post("/cancel", h.CancelShipment)
		r.Post("/split", h.SplitShipment)
		r.Patch("/items/{sku_guid}", h.UpdateShipmentItem)
		r.Post("/returns", h.AddReturn)
	})
}

// GetOrder возвращает заказ по номеру.
// @Summary      Получить заказ
// @Description  Возвращает заказ со всеми отправлениями и платежами
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{number} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.GetOrder(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to get order", number)
}

// FindOrders ищет заказы по фильтрам.
// @Summary      Поиск заказов
// @Description  Заказы отсортированы от новых к старым
// @Tags         orders
// @Produce      json
// @Param        status         query     string  false  "Статус заказа"
// @Param        customer_id    query     string  false  "Покупатель"
// @Param        store_code     query     string  false  "Магазин"
// @Param        created_after  query     string  false  "Нижняя граница даты создания, RFC3339"
// @Param        limit          query     int     false  "Максимум заказов"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) FindOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	criteria := entities.OrderCriteria{
		Status:     entities.OrderStatus(q.Get("status")),
		CustomerID: q.Get("customer_id"),
		StoreCode:  q.Get("store_code"),
		Limit:      defaultOrdersLimit,
	}

	if v := q.Get("created_after"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.WriteError(w, "created_after must be an RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		criteria.CreatedAfter = ts
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteError(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		criteria.Limit = limit
	}
	if err := h.validate.Var(criteria.Limit, fmt.Sprintf("gt=0,lte=%d", maxOrdersLimit)); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if criteria.Status != "" {
		if err := h.validate.Var(string(criteria.Status), "oneof=IN_PROGRESS ONHOLD AWAITING_EXCHANGE PARTIALLY_SHIPPED CANCELLED COMPLETED FAILED"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}

	orders, err := h.orders.FindOrders(ctx, criteria)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to find orders", err)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// HoldOrder
// @Summary      Приостановить заказ
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /orders/{number}/hold [post]
func (h *OrderHandler) HoldOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.HoldOrder(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to hold order", number)
}

// ReleaseHold
// @Summary      Снять заказ с удержания
// @Description  Также завершает ожидание обмена
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /orders/{number}/release-hold [post]
func (h *OrderHandler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.ReleaseHoldOnOrder(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to release order hold", number)
}

// CancelOrder отменяет заказ целиком.
// @Summary      Отменить заказ
// @Description  Освобождает резервы и отменяет авторизации платежей
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ нельзя отменить"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{number}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.CancelOrder(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to cancel order", number)
}

// ReleaseShipment передаёт отправление на склад.
// @Summary      Передать отправление на склад
// @Tags         shipments
// @Produce      json
// @Param        number  path      string  true  "Номер отправления"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /shipments/{number}/release [post]
func (h *OrderHandler) ReleaseShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.ReleaseShipment(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to release shipment", number)
}

// CompleteShipment отмечает отправление отгруженным и списывает оплату.
// @Summary      Завершить отправление
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        number   path      string                   true   "Номер отправления"
// @Param        request  body      CompleteShipmentRequest  false  "Трек-номер"
// @Success      200  {object}  Order
// @Failure      402  {object}  utils.ErrorResponse "Ошибка списания"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /shipments/{number}/complete [post]
func (h *OrderHandler) CompleteShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	var req CompleteShipmentRequest
	if r.ContentLength != 0 && !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.CompleteShipment(ctx, number, req.TrackingCode)
	h.writeOrder(ctx, w, order, err, "failed to complete shipment", number)
}

// CancelShipment
// @Summary      Отменить отправление
// @Tags         shipments
// @Produce      json
// @Param        number  path      string  true  "Номер отправления"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      409  {object}  utils.ErrorResponse "Отправление нельзя отменить"
// @Router       /shipments/{number}/cancel [post]
func (h *OrderHandler) CancelShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	order, err := h.orders.CancelOrderShipment(ctx, number)
	h.writeOrder(ctx, w, order, err, "failed to cancel shipment", number)
}

// SplitShipment переносит строки в новое отправление.
// @Summary      Разделить отправление
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        number   path      string                true  "Номер отправления"
// @Param        request  body      SplitShipmentRequest  true  "Строки для переноса"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      409  {object}  utils.ErrorResponse "Отправление нельзя изменить"
// @Router       /shipments/{number}/split [post]
func (h *OrderHandler) SplitShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	var req SplitShipmentRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.SplitShipment(ctx, number, req.SkuGUIDs)
	h.writeOrder(ctx, w, order, err, "failed to split shipment", number)
}

// UpdateShipmentItem
// @Summary      Изменить количество в отправлении
// @Description  Резерв и авторизация оплаты пересчитываются
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        number    path      string                     true  "Номер отправления"
// @Param        sku_guid  path      string                     true  "Идентификатор строки"
// @Param        request   body      UpdateShipmentItemRequest  true  "Новое количество"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Строка не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Отправление нельзя изменить"
// @Router       /shipments/{number}/items/{sku_guid} [patch]
func (h *OrderHandler) UpdateShipmentItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	var req UpdateShipmentItemRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.UpdateShipmentItemQuantity(ctx, number, chi.URLParam(r, "sku_guid"), req.Quantity)
	h.writeOrder(ctx, w, order, err, "failed to update shipment item", number)
}

// AddReturn принимает возврат товаров из отгруженного отправления.
// @Summary      Оформить возврат
// @Description  Товары возвращаются на склад, оплата возмещается на исходные платёжные средства
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        number   path      string         true  "Номер отправления"
// @Param        request  body      ReturnRequest  true  "Возвращаемые строки"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      402  {object}  utils.ErrorResponse "Ошибка возмещения"
// @Failure      404  {object}  utils.ErrorResponse "Отправление или строка не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Отправление ещё не отгружено"
// @Router       /shipments/{number}/returns [post]
func (h *OrderHandler) AddReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	var req ReturnRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	order, err := h.orders.AddOrderReturn(ctx, number, req.toEntities())
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to add return", err, slog.String("number", number))
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *OrderHandler) writeOrder(ctx context.Context, w http.ResponseWriter, order *entities.Order, err error, msg, number string) {
	if err != nil {
		writeServiceError(ctx, h.logger, w, msg, err, slog.String("number", number))
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
