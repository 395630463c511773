package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "internal server error"

// statusFor maps a classified domain error to an HTTP status.
func statusFor(err error) int {
	switch entities.KindOf(err) {
	case entities.KindNotFound:
		return http.StatusNotFound
	case entities.KindValidation:
		return http.StatusBadRequest
	case entities.KindIllegalTransition, entities.KindConflict:
		return http.StatusConflict
	case entities.KindPayment:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err to the client. Unclassified errors are
// logged and hidden behind a generic message.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, msg string, err error, attrs ...any) {
	var checkoutErr *service.CheckoutError
	if errors.As(err, &checkoutErr) {
		code := statusFor(checkoutErr.Err)
		res := CheckoutErrorResponse{
			Message:     checkoutErr.Err.Error(),
			Action:      checkoutErr.Action,
			OrderNumber: checkoutErr.OrderNumber,
		}
		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)
			res.Message = internalErrorMessage
		}
		utils.WriteJSON(w, res, code)
		return
	}

	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, internalErrorMessage, code)
		return
	}
	utils.WriteError(w, err.Error(), code)
}

// decodeRequest decodes and validates a JSON body. It writes the error
// response itself and reports whether the handler may continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dst any) bool {
	if err := utils.DecodeBody(w, r, dst); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
