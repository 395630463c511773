package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCreditCard      PaymentMethod = "CREDIT_CARD"
	PaymentGiftCertificate PaymentMethod = "GIFT_CERTIFICATE"
)

type TransactionType string

const (
	TransactionAuthorization        TransactionType = "AUTHORIZATION"
	TransactionCapture              TransactionType = "CAPTURE"
	TransactionReverseAuthorization TransactionType = "REVERSE_AUTHORIZATION"
	TransactionRefund               TransactionType = "REFUND"
)

type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentFailed   PaymentStatus = "FAILED"
)

type OrderPayment struct {
	GUID                string
	Method              PaymentMethod
	TransactionType     TransactionType
	Status              PaymentStatus
	Amount              decimal.Decimal
	Currency            string
	ShipmentNumber      string
	AuthorizationCode   string
	ReferenceID         string
	GiftCertificateCode string
	CardToken           string
	Message             string
	CreatedAt           time.Time
}

func (p *OrderPayment) IsApproved(t TransactionType) bool {
	return p.TransactionType == t && p.Status == PaymentApproved
}

// FollowOn builds a payment of the given type that refers to the same
// authorization and payment source as p.
func (p *OrderPayment) FollowOn(t TransactionType) OrderPayment {
	return OrderPayment{
		Method:              p.Method,
		TransactionType:     t,
		Amount:              p.Amount,
		Currency:            p.Currency,
		ShipmentNumber:      p.ShipmentNumber,
		AuthorizationCode:   p.AuthorizationCode,
		ReferenceID:         p.ReferenceID,
		GiftCertificateCode: p.GiftCertificateCode,
		CardToken:           p.CardToken,
	}
}

// PaymentRequest is what a payment gateway receives. AuthorizationCode is
// set for capture and reversal; Reference carries the shipment number.
type PaymentRequest struct {
	Amount              decimal.Decimal
	Currency            string
	AuthorizationCode   string
	CardToken           string
	GiftCertificateCode string
	Reference           string
}

type TransactionResponse struct {
	AuthorizationCode string
	ReferenceID       string
}

func (p *OrderPayment) Request() PaymentRequest {
	return PaymentRequest{
		Amount:              p.Amount,
		Currency:            p.Currency,
		AuthorizationCode:   p.AuthorizationCode,
		CardToken:           p.CardToken,
		GiftCertificateCode: p.GiftCertificateCode,
		Reference:           p.ShipmentNumber,
	}
}
