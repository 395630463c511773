package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type GiftCertificateReader interface {
	GetGiftCertificate(ctx context.Context, code string) (entities.GiftCertificate, error)
	GetBalance(ctx context.Context, code string) (decimal.Decimal, error)
}

type GiftCertificateHandler struct {
	logger *slog.Logger
	certs  GiftCertificateReader
}

func NewGiftCertificateHandler(logger *slog.Logger, certs GiftCertificateReader) *GiftCertificateHandler {
	return &GiftCertificateHandler{
		logger: logger.With(slog.String("handler", "gift-certificates")),
		certs:  certs,
	}
}

func (h *GiftCertificateHandler) Init(r chi.Router) {
	r.Get("/gift-certificates/{code}", h.GetGiftCertificate)
}

// GetGiftCertificate возвращает сертификат и его текущий баланс.
// @Summary      Получить подарочный сертификат
// @Tags         gift-certificates
// @Produce      json
// @Param        code  path      string  true  "Код сертификата"
// @Success      200  {object}  GiftCertificate
// @Failure      404  {object}  utils.ErrorResponse "Сертификат не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /gift-certificates/{code} [get]
func (h *GiftCertificateHandler) GetGiftCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	gc, err := h.certs.GetGiftCertificate(ctx, code)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to get gift certificate", err, slog.String("code", code))
		return
	}
	balance, err := h.certs.GetBalance(ctx, code)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to get gift certificate balance", err, slog.String("code", code))
		return
	}

	utils.WriteJSON(w, GiftCertificate{
		Code:            gc.Code,
		OriginalBalance: money(gc.OriginalBalance),
		Balance:         money(balance),
		Currency:        gc.Currency,
		RecipientName:   gc.RecipientName,
		OrderNumber:     gc.OrderNumber,
		CreatedAt:       gc.CreatedAt,
	}, http.StatusOK)
}
