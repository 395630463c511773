package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway is the contract shared by the card gateway client and the
// gift certificate ledger.
type PaymentGateway interface {
	Authorize(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error)
	Capture(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error)
	ReverseAuthorization(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error)
	Refund(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error)
}

type BalanceChecker interface {
	GetBalance(ctx context.Context, code string) (decimal.Decimal, error)
}

// PaymentService records every gateway call as an OrderPayment on the order.
// Recorded payments are never modified afterwards.
type PaymentService struct {
	logger   *slog.Logger
	gateways map[entities.PaymentMethod]PaymentGateway
	balances BalanceChecker
	now      func() time.Time
}

func NewPaymentService(logger *slog.Logger, card PaymentGateway, giftCertificates interface {
	PaymentGateway
	BalanceChecker
}) *PaymentService {
	return &PaymentService{
		logger: logger.With(slog.String("service", "payment")),
		gateways: map[entities.PaymentMethod]PaymentGateway{
			entities.PaymentCreditCard:      card,
			entities.PaymentGiftCertificate: giftCertificates,
		},
		balances: giftCertificates,
		now:      time.Now,
	}
}

// AuthorizeShipment authorizes the shipment's payable amount, drawing from
// the gift certificates first and the template payment for the remainder.
func (s *PaymentService) AuthorizeShipment(
	ctx context.Context,
	order *entities.Order,
	shipment *entities.OrderShipment,
	giftCertificateCodes []string,
	template *entities.OrderPayment,
) error {
	remaining := shipment.Payable()

	for _, code := range giftCertificateCodes {
		if !remaining.IsPositive() {
			break
		}
		balance, err := s.balances.GetBalance(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to get gift certificate balance: %w", err)
		}
		if !balance.IsPositive() {
			continue
		}

		amount := decimal.Min(balance, remaining)
		p := entities.OrderPayment{
			Method:              entities.PaymentGiftCertificate,
			GiftCertificateCode: code,
			Amount:              amount,
		}
		if err := s.authorize(ctx, order, shipment, p); err != nil {
			return err
		}
		remaining = remaining.Sub(amount)
	}

	if !remaining.IsPositive() {
		return nil
	}
	if template == nil {
		return fmt.Errorf("shipment %s has %s left to authorize: %w", shipment.Number, remaining, entities.ErrPaymentRequired)
	}

	p := entities.OrderPayment{
		Method:              template.Method,
		CardToken:           template.CardToken,
		GiftCertificateCode: template.GiftCertificateCode,
		Amount:              remaining,
	}
	return s.authorize(ctx, order, shipment, p)
}

func (s *PaymentService) authorize(ctx context.Context, order *entities.Order, shipment *entities.OrderShipment, p entities.OrderPayment) error {
	p.TransactionType = entities.TransactionAuthorization
	p.Currency = order.Currency
	p.ShipmentNumber = shipment.Number

	_, err := s.execute(ctx, order, p, func(gw PaymentGateway, req entities.PaymentRequest) (entities.TransactionResponse, error) {
		return gw.Authorize(ctx, req)
	})
	return err
}

// CaptureShipment captures every open authorization of the shipment.
func (s *PaymentService) CaptureShipment(ctx context.Context, order *entities.Order, shipmentNumber string) error {
	for _, auth := range order.OpenAuthorizations(shipmentNumber) {
		p := auth.FollowOn(entities.TransactionCapture)
		if _, err := s.execute(ctx, order, p, func(gw PaymentGateway, req entities.PaymentRequest) (entities.TransactionResponse, error) {
			return gw.Capture(ctx, req)
		}); err != nil {
			return err
		}
	}
	return nil
}

// ReverseAuthorizations issues one reversal per open authorization. An
// empty shipmentNumber reverses every open authorization of the order.
// Failed reversals are recorded and reported together.
func (s *PaymentService) ReverseAuthorizations(ctx context.Context, order *entities.Order, shipmentNumber string) error {
	return s.reverse(ctx, order, order.OpenAuthorizations(shipmentNumber))
}

func (s *PaymentService) reverse(ctx context.Context, order *entities.Order, auths []*entities.OrderPayment) error {
	var errs []error
	for _, auth := range auths {
		p := auth.FollowOn(entities.TransactionReverseAuthorization)
		if _, err := s.execute(ctx, order, p, func(gw PaymentGateway, req entities.PaymentRequest) (entities.TransactionResponse, error) {
			return gw.ReverseAuthorization(ctx, req)
		}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReauthorizeShipment replaces the shipment's open authorizations with new
// ones for the current payable amount, reusing the same payment sources.
//
// Gift certificate holds are released first so their balance can back the
// new authorization; the ledger rolls back with the enclosing transaction.
// Other holds are reversed only after the new authorization succeeded, so a
// declined renewal leaves the existing hold in place.
func (s *PaymentService) ReauthorizeShipment(ctx context.Context, order *entities.Order, shipment *entities.OrderShipment) error {
	codes, template := PaymentSources(order, shipment.Number)

	var ledgerHolds, externalHolds []*entities.OrderPayment
	for _, auth := range order.OpenAuthorizations(shipment.Number) {
		if auth.Method == entities.PaymentGiftCertificate {
			ledgerHolds = append(ledgerHolds, auth)
		} else {
			externalHolds = append(externalHolds, auth)
		}
	}

	if err := s.reverse(ctx, order, ledgerHolds); err != nil {
		return fmt.Errorf("failed to reverse gift certificate authorizations of shipment %s: %w", shipment.Number, err)
	}
	if err := s.AuthorizeShipment(ctx, order, shipment, codes, template); err != nil {
		return err
	}
	if err := s.reverse(ctx, order, externalHolds); err != nil {
		renewed := slices.DeleteFunc(order.OpenAuthorizations(shipment.Number), func(auth *entities.OrderPayment) bool {
			return slices.Contains(externalHolds, auth)
		})
		if rerr := s.reverse(context.WithoutCancel(ctx), order, renewed); rerr != nil {
			s.logger.ErrorContext(ctx, "failed to reverse renewed authorizations",
				slog.String("order", order.Number),
				slog.String("shipment", shipment.Number),
				slog.Any("error", rerr),
			)
		}
		return fmt.Errorf("failed to reverse authorizations of shipment %s: %w", shipment.Number, err)
	}
	return nil
}

// RefundShipment returns amount to the sources captured for the shipment,
// newest capture first, so card payments are refunded before gift
// certificates.
func (s *PaymentService) RefundShipment(ctx context.Context, order *entities.Order, shipmentNumber string, amount decimal.Decimal) error {
	remaining := amount
	captures := order.Captures(shipmentNumber)
	for i := len(captures) - 1; i >= 0 && remaining.IsPositive(); i-- {
		capture := captures[i]
		left := capture.Amount.Sub(order.Refunded(capture.AuthorizationCode))
		if !left.IsPositive() {
			continue
		}

		p := capture.FollowOn(entities.TransactionRefund)
		p.Amount = decimal.Min(left, remaining)
		if _, err := s.execute(ctx, order, p, func(gw PaymentGateway, req entities.PaymentRequest) (entities.TransactionResponse, error) {
			return gw.Refund(ctx, req)
		}); err != nil {
			return err
		}
		remaining = remaining.Sub(p.Amount)
	}

	if remaining.IsPositive() {
		return fmt.Errorf("%s of shipment %s is not covered by captures: %w", remaining, shipmentNumber, entities.ErrRefundExceedsCapture)
	}
	return nil
}

// PaymentSources returns the gift certificate codes and the first other
// payment behind the shipment's open authorizations.
func PaymentSources(order *entities.Order, shipmentNumber string) (codes []string, template *entities.OrderPayment) {
	for _, auth := range order.OpenAuthorizations(shipmentNumber) {
		switch auth.Method {
		case entities.PaymentGiftCertificate:
			if !slices.Contains(codes, auth.GiftCertificateCode) {
				codes = append(codes, auth.GiftCertificateCode)
			}
		default:
			if template == nil {
				template = auth
			}
		}
	}
	return codes, template
}

// AuthorizedAmount sums the open authorizations of a shipment.
func AuthorizedAmount(order *entities.Order, shipmentNumber string) decimal.Decimal {
	total := decimal.Zero
	for _, auth := range order.OpenAuthorizations(shipmentNumber) {
		total = total.Add(auth.Amount)
	}
	return total
}

type gatewayCall func(gw PaymentGateway, req entities.PaymentRequest) (entities.TransactionResponse, error)

func (s *PaymentService) execute(ctx context.Context, order *entities.Order, p entities.OrderPayment, call gatewayCall) (*entities.OrderPayment, error) {
	gw, ok := s.gateways[p.Method]
	if !ok || gw == nil {
		return nil, fmt.Errorf("%s: %w", p.Method, entities.ErrUnsupportedPayment)
	}

	p.GUID = uuid.NewString()
	p.CreatedAt = s.now()

	resp, err := call(gw, p.Request())
	if err != nil {
		p.Status = entities.PaymentFailed
		p.Message = err.Error()
		order.AddPayment(p)
		paymentTransactions.WithLabelValues(string(p.Method), string(p.TransactionType), string(p.Status)).Inc()
		s.logger.WarnContext(ctx, "payment transaction failed",
			slog.String("order", order.Number),
			slog.String("shipment", p.ShipmentNumber),
			slog.String("type", string(p.TransactionType)),
			slog.String("method", string(p.Method)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to %s %s payment for shipment %s: %w",
			transactionVerb(p.TransactionType), p.Method, p.ShipmentNumber, err)
	}

	p.Status = entities.PaymentApproved
	// follow-on transactions stay keyed by the authorization they settle
	if p.TransactionType == entities.TransactionAuthorization && resp.AuthorizationCode != "" {
		p.AuthorizationCode = resp.AuthorizationCode
	}
	if resp.ReferenceID != "" {
		p.ReferenceID = resp.ReferenceID
	}
	paymentTransactions.WithLabelValues(string(p.Method), string(p.TransactionType), string(p.Status)).Inc()
	return order.AddPayment(p), nil
}

func transactionVerb(t entities.TransactionType) string {
	switch t {
	case entities.TransactionCapture:
		return "capture"
	case entities.TransactionReverseAuthorization:
		return "reverse"
	case entities.TransactionRefund:
		return "refund"
	default:
		return "authorize"
	}
}
