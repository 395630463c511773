package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GiftCertificateRepo interface {
	CreateGiftCertificate(ctx context.Context, gc entities.GiftCertificate) error
	// GetGiftCertificate locks the certificate row when called inside a transaction.
	GetGiftCertificate(ctx context.Context, code string) (entities.GiftCertificate, error)
	// DeleteGiftCertificate removes the certificate and its ledger.
	DeleteGiftCertificate(ctx context.Context, code string) error
	Transactions(ctx context.Context, code string) ([]entities.GiftCertificateTransaction, error)
	AppendTransaction(ctx context.Context, tx entities.GiftCertificateTransaction) error
}

// GiftCertificateService is the stored-value payment gateway. Balances are
// derived from the transaction ledger on every call.
type GiftCertificateService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      GiftCertificateRepo
	newCode   func() string
	now       func() time.Time
}

func NewGiftCertificateService(logger *slog.Logger, txManager trm.Manager, repo GiftCertificateRepo) *GiftCertificateService {
	return &GiftCertificateService{
		logger:    logger.With(slog.String("service", "gift_certificate")),
		txManager: txManager,
		repo:      repo,
		newCode:   uuid.NewString,
		now:       time.Now,
	}
}

func (s *GiftCertificateService) CreateGiftCertificate(ctx context.Context, gc entities.GiftCertificate) (entities.GiftCertificate, error) {
	if !gc.OriginalBalance.IsPositive() {
		return entities.GiftCertificate{}, entities.ErrInvalidAmount
	}
	if gc.Code == "" {
		gc.Code = s.newCode()
	}
	if gc.GUID == "" {
		gc.GUID = uuid.NewString()
	}
	gc.CreatedAt = s.now()

	if err := s.repo.CreateGiftCertificate(ctx, gc); err != nil {
		return entities.GiftCertificate{}, fmt.Errorf("failed to create gift certificate: %w", err)
	}
	s.logger.DebugContext(ctx, "gift certificate created", slog.String("code", gc.Code), slog.String("order", gc.OrderNumber))
	return gc, nil
}

func (s *GiftCertificateService) GetGiftCertificate(ctx context.Context, code string) (entities.GiftCertificate, error) {
	return s.repo.GetGiftCertificate(ctx, code)
}

// RemoveGiftCertificate deletes the certificate. Removing an unknown code is not an error.
func (s *GiftCertificateService) RemoveGiftCertificate(ctx context.Context, code string) error {
	err := s.repo.DeleteGiftCertificate(ctx, code)
	if err != nil && !errors.Is(err, entities.ErrGiftCertificateNotFound) {
		return fmt.Errorf("failed to remove gift certificate: %w", err)
	}
	return nil
}

func (s *GiftCertificateService) GetBalance(ctx context.Context, code string) (decimal.Decimal, error) {
	gc, err := s.repo.GetGiftCertificate(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	txs, err := s.repo.Transactions(ctx, code)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load gift certificate ledger: %w", err)
	}
	return entities.GiftCertificateBalance(gc.OriginalBalance, txs), nil
}

func (s *GiftCertificateService) PreAuthorize(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return entities.TransactionResponse{}, entities.ErrInvalidAmount
	}

	var resp entities.TransactionResponse
	err := s.withLedger(ctx, req, func(ctx context.Context, gc entities.GiftCertificate, txs []entities.GiftCertificateTransaction) error {
		balance := entities.GiftCertificateBalance(gc.OriginalBalance, txs)
		if balance.LessThan(req.Amount) {
			return fmt.Errorf("gift certificate %s has %s, requested %s: %w", gc.Code, balance, req.Amount, entities.ErrInsufficientBalance)
		}

		authCode := s.newCode()
		if err := s.append(ctx, gc.Code, entities.TransactionAuthorization, req.Amount, authCode); err != nil {
			return err
		}
		resp = entities.TransactionResponse{AuthorizationCode: authCode, ReferenceID: gc.Code}
		return nil
	})
	return resp, err
}

// Capture collects a prior authorization. A zero amount captures the full
// authorized amount; an authorization can be captured once.
func (s *GiftCertificateService) Capture(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	var resp entities.TransactionResponse
	err := s.withLedger(ctx, req, func(ctx context.Context, gc entities.GiftCertificate, txs []entities.GiftCertificateTransaction) error {
		auth, state := entities.FindAuthorization(txs, req.AuthorizationCode)
		switch {
		case auth == nil:
			return entities.ErrAuthorizationNotFound
		case state.Captured:
			return entities.ErrAlreadyCaptured
		case state.Reversed:
			return entities.ErrAlreadyReversed
		}

		amount := req.Amount
		if amount.IsZero() {
			amount = auth.Amount
		}
		if amount.IsNegative() || amount.GreaterThan(auth.Amount) {
			return entities.ErrAmountMismatch
		}

		if err := s.append(ctx, gc.Code, entities.TransactionCapture, amount, auth.AuthorizationCode); err != nil {
			return err
		}
		resp = entities.TransactionResponse{AuthorizationCode: auth.AuthorizationCode, ReferenceID: gc.Code}
		return nil
	})
	return resp, err
}

// ReversePreAuthorization releases an authorization. Only the exact
// authorized amount can be reversed.
func (s *GiftCertificateService) ReversePreAuthorization(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	var resp entities.TransactionResponse
	err := s.withLedger(ctx, req, func(ctx context.Context, gc entities.GiftCertificate, txs []entities.GiftCertificateTransaction) error {
		auth, state := entities.FindAuthorization(txs, req.AuthorizationCode)
		switch {
		case auth == nil:
			return entities.ErrAuthorizationNotFound
		case state.Captured:
			return entities.ErrAlreadyCaptured
		case state.Reversed:
			return entities.ErrAlreadyReversed
		case !auth.Amount.Equal(req.Amount):
			return fmt.Errorf("reversal of %s against authorization of %s: %w", req.Amount, auth.Amount, entities.ErrAmountMismatch)
		}

		if err := s.append(ctx, gc.Code, entities.TransactionReverseAuthorization, auth.Amount, auth.AuthorizationCode); err != nil {
			return err
		}
		resp = entities.TransactionResponse{AuthorizationCode: auth.AuthorizationCode, ReferenceID: gc.Code}
		return nil
	})
	return resp, err
}

// Refund credits captured money back to the certificate. The refunds of one
// authorization never exceed what it captured.
func (s *GiftCertificateService) Refund(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return entities.TransactionResponse{}, entities.ErrInvalidAmount
	}

	var resp entities.TransactionResponse
	err := s.withLedger(ctx, req, func(ctx context.Context, gc entities.GiftCertificate, txs []entities.GiftCertificateTransaction) error {
		auth, state := entities.FindAuthorization(txs, req.AuthorizationCode)
		switch {
		case auth == nil:
			return entities.ErrAuthorizationNotFound
		case !state.Captured:
			return entities.ErrNotCaptured
		}

		captured, refunded := decimal.Zero, decimal.Zero
		for _, tx := range txs {
			if tx.AuthorizationCode != auth.AuthorizationCode || tx.Status != entities.PaymentApproved {
				continue
			}
			switch tx.Type {
			case entities.TransactionCapture:
				captured = captured.Add(tx.Amount)
			case entities.TransactionRefund:
				refunded = refunded.Add(tx.Amount)
			}
		}
		if refunded.Add(req.Amount).GreaterThan(captured) {
			return fmt.Errorf("refund of %s with %s of %s already refunded: %w", req.Amount, refunded, captured, entities.ErrRefundExceedsCapture)
		}

		if err := s.append(ctx, gc.Code, entities.TransactionRefund, req.Amount, auth.AuthorizationCode); err != nil {
			return err
		}
		resp = entities.TransactionResponse{AuthorizationCode: auth.AuthorizationCode, ReferenceID: gc.Code}
		return nil
	})
	return resp, err
}

func (s *GiftCertificateService) Authorize(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return s.PreAuthorize(ctx, req)
}

func (s *GiftCertificateService) ReverseAuthorization(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return s.ReversePreAuthorization(ctx, req)
}

func (s *GiftCertificateService) withLedger(
	ctx context.Context,
	req entities.PaymentRequest,
	fn func(ctx context.Context, gc entities.GiftCertificate, txs []entities.GiftCertificateTransaction) error,
) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		gc, err := s.repo.GetGiftCertificate(ctx, req.GiftCertificateCode)
		if err != nil {
			return err
		}
		if req.Currency != "" && req.Currency != gc.Currency {
			return entities.ErrCurrencyMismatch
		}
		txs, err := s.repo.Transactions(ctx, gc.Code)
		if err != nil {
			return fmt.Errorf("failed to load gift certificate ledger: %w", err)
		}
		return fn(ctx, gc, txs)
	})
}

func (s *GiftCertificateService) append(ctx context.Context, code string, t entities.TransactionType, amount decimal.Decimal, authCode string) error {
	tx := entities.GiftCertificateTransaction{
		GUID:              uuid.NewString(),
		Code:              code,
		Type:              t,
		Amount:            amount,
		AuthorizationCode: authCode,
		Status:            entities.PaymentApproved,
		CreatedAt:         s.now(),
	}
	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to append gift certificate transaction: %w", err)
	}
	s.logger.DebugContext(ctx, "gift certificate transaction",
		slog.String("code", code),
		slog.String("type", string(t)),
		slog.String("amount", amount.String()),
		slog.String("auth_code", authCode),
	)
	return nil
}
