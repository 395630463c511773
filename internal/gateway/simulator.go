package gateway

import (
	"context"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/google/uuid"
)

// DeclinePrefix marks card tokens the simulator refuses.
const DeclinePrefix = "decline"

// Simulator approves every card transaction except authorizations for
// tokens starting with DeclinePrefix. It is used when no gateway URL is configured.
type Simulator struct{}

func NewSimulator() Simulator {
	return Simulator{}
}

func (Simulator) Authorize(_ context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	if strings.HasPrefix(req.CardToken, DeclinePrefix) {
		return entities.TransactionResponse{}, entities.ErrPaymentDeclined
	}
	return entities.TransactionResponse{AuthorizationCode: uuid.NewString(), ReferenceID: uuid.NewString()}, nil
}

func (Simulator) Capture(_ context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return entities.TransactionResponse{AuthorizationCode: req.AuthorizationCode, ReferenceID: uuid.NewString()}, nil
}

func (Simulator) ReverseAuthorization(_ context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return entities.TransactionResponse{AuthorizationCode: req.AuthorizationCode, ReferenceID: uuid.NewString()}, nil
}

func (Simulator) Refund(_ context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return entities.TransactionResponse{AuthorizationCode: req.AuthorizationCode, ReferenceID: uuid.NewString()}, nil
}
