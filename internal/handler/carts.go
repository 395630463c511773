package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartManager interface {
	CreateCart(ctx context.Context, in service.NewCart) (*entities.ShoppingCart, error)
	GetCart(ctx context.Context, guid string) (*entities.ShoppingCart, error)
	AddItem(ctx context.Context, guid string, req service.ItemRequest) (*entities.ShoppingCart, error)
	UpdateItem(ctx context.Context, guid, itemGUID string, quantity int, fields map[string]string) (*entities.ShoppingCart, error)
	RemoveItem(ctx context.Context, guid, itemGUID string) (*entities.ShoppingCart, error)
	Refresh(ctx context.Context, guid string) (*entities.ShoppingCart, error)
	Merge(ctx context.Context, currentGUID, previousGUID string) (*entities.ShoppingCart, error)
	ApplyPromoCode(ctx context.Context, guid, code string) (*entities.ShoppingCart, error)
	ApplyGiftCertificate(ctx context.Context, guid, code string) (*entities.ShoppingCart, error)
}

type Checkouter interface {
	Checkout(ctx context.Context, cart *entities.ShoppingCart, template *entities.OrderPayment, exchange bool) (*entities.Order, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	carts    CartManager
	checkout Checkouter
}

func NewCartHandler(logger *slog.Logger, carts CartManager, checkout Checkouter) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "carts")),
		validate: validator.New(),
		carts:    carts,
		checkout: checkout,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.CreateCart)
		r.Route("/{guid}", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Post("/items", h.AddItem)
			r.Patch("/items/{item_guid}", h.UpdateItem)
			r.Delete("/items/{item_guid}", h.RemoveItem)
			r.Post("/refresh", h.Refresh)
			r.Post("/merge", h.Merge)
			r.Post("/promo-codes", h.ApplyPromoCode)
			r.Post("/gift-certificates", h.ApplyGiftCertificate)
			r.Post("/checkout", h.Checkout)
		})
	})
}

// CreateCart создаёт пустую корзину.
// @Summary      Создать корзину
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        request  body      CreateCartRequest  true  "Параметры корзины"
// @Success      201  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts [post]
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCartRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.CreateCart(ctx, service.NewCart{
		ShopperID:    req.ShopperID,
		StoreCode:    req.StoreCode,
		Currency:     req.Currency,
		Warehouse:    req.Warehouse,
		ShippingCost: req.ShippingCost,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to create cart", err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusCreated)
}

// GetCart возвращает корзину.
// @Summary      Получить корзину
// @Tags         carts
// @Produce      json
// @Param        guid  path      string  true  "Идентификатор корзины"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Корзина не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid} [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	cart, err := h.carts.GetCart(ctx, guid)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to get cart", err, slog.String("cart", guid))
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddItem добавляет товар или набор в корзину.
// @Summary      Добавить товар
// @Description  Повторное добавление того же SKU с той же конфигурацией увеличивает количество
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid     path      string       true  "Идентификатор корзины"
// @Param        request  body      ItemRequest  true  "Товар"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Корзина или SKU не найдены"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req ItemRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.AddItem(ctx, guid, req.toService())
	h.writeCart(ctx, w, cart, err, "failed to add cart item", guid)
}

// UpdateItem меняет количество и поля строки.
// @Summary      Изменить строку корзины
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid       path      string             true  "Идентификатор корзины"
// @Param        item_guid  path      string             true  "Идентификатор строки"
// @Param        request    body      UpdateItemRequest  true  "Новые значения"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Строка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/items/{item_guid} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req UpdateItemRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.UpdateItem(ctx, guid, chi.URLParam(r, "item_guid"), req.Quantity, req.Fields)
	h.writeCart(ctx, w, cart, err, "failed to update cart item", guid)
}

// RemoveItem удаляет строку из корзины.
// @Summary      Удалить строку корзины
// @Tags         carts
// @Produce      json
// @Param        guid       path      string  true  "Идентификатор корзины"
// @Param        item_guid  path      string  true  "Идентификатор строки"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Строка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/items/{item_guid} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	cart, err := h.carts.RemoveItem(ctx, guid, chi.URLParam(r, "item_guid"))
	h.writeCart(ctx, w, cart, err, "failed to remove cart item", guid)
}

// Refresh пересчитывает цены и убирает недоступные товары.
// @Summary      Обновить корзину
// @Tags         carts
// @Produce      json
// @Param        guid  path      string  true  "Идентификатор корзины"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Корзина не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/refresh [post]
func (h *CartHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	cart, err := h.carts.Refresh(ctx, guid)
	h.writeCart(ctx, w, cart, err, "failed to refresh cart", guid)
}

// Merge переносит содержимое предыдущей корзины в текущую.
// @Summary      Объединить корзины
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid     path      string            true  "Текущая корзина"
// @Param        request  body      MergeCartRequest  true  "Предыдущая корзина"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Корзина не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/merge [post]
func (h *CartHandler) Merge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req MergeCartRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.Merge(ctx, guid, req.PreviousCartGUID)
	h.writeCart(ctx, w, cart, err, "failed to merge carts", guid)
}

// ApplyPromoCode
// @Summary      Применить промокод
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid     path      string       true  "Идентификатор корзины"
// @Param        request  body      CodeRequest  true  "Промокод"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Корзина не найдена"
// @Router       /carts/{guid}/promo-codes [post]
func (h *CartHandler) ApplyPromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req CodeRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.ApplyPromoCode(ctx, guid, req.Code)
	h.writeCart(ctx, w, cart, err, "failed to apply promo code", guid)
}

// ApplyGiftCertificate
// @Summary      Применить подарочный сертификат
// @Description  Сертификат должен существовать и иметь положительный баланс
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid     path      string       true  "Идентификатор корзины"
// @Param        request  body      CodeRequest  true  "Код сертификата"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      402  {object}  utils.ErrorResponse "Недостаточный баланс"
// @Failure      404  {object}  utils.ErrorResponse "Сертификат не найден"
// @Router       /carts/{guid}/gift-certificates [post]
func (h *CartHandler) ApplyGiftCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req CodeRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	cart, err := h.carts.ApplyGiftCertificate(ctx, guid, req.Code)
	h.writeCart(ctx, w, cart, err, "failed to apply gift certificate", guid)
}

// Checkout оформляет заказ по корзине.
// @Summary      Оформить заказ
// @Description  При ошибке все выполненные шаги откатываются, в ответе указан шаг и номер неудачного заказа
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        guid     path      string           true  "Идентификатор корзины"
// @Param        request  body      CheckoutRequest  false "Способ оплаты"
// @Success      201  {object}  Order
// @Failure      400  {object}  CheckoutErrorResponse "Корзина не прошла проверку"
// @Failure      402  {object}  CheckoutErrorResponse "Оплата отклонена"
// @Failure      404  {object}  utils.ErrorResponse "Корзина не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /carts/{guid}/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checkoutRequestsInProgress.Inc()
	defer func() {
		checkoutRequestsInProgress.Dec()
		checkoutRequestDuration.Observe(time.Since(start).Seconds())
	}()

	ctx := r.Context()
	guid := chi.URLParam(r, "guid")

	var req CheckoutRequest
	if r.ContentLength != 0 && !decodeRequest(w, r, h.validate, &req) {
		checkoutRequestTotal.WithLabelValues("invalid").Inc()
		return
	}

	cart, err := h.carts.GetCart(ctx, guid)
	if err != nil {
		checkoutRequestTotal.WithLabelValues("error").Inc()
		writeServiceError(ctx, h.logger, w, "failed to get cart", err, slog.String("cart", guid))
		return
	}

	order, err := h.checkout.Checkout(ctx, cart, req.Payment.toEntity(), req.Exchange)
	if err != nil {
		checkoutRequestTotal.WithLabelValues("error").Inc()
		writeServiceError(ctx, h.logger, w, "checkout failed", err, slog.String("cart", guid))
		return
	}

	checkoutRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *CartHandler) writeCart(ctx context.Context, w http.ResponseWriter, cart *entities.ShoppingCart, err error, msg, guid string) {
	if err != nil {
		writeServiceError(ctx, h.logger, w, msg, err, slog.String("cart", guid))
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}
