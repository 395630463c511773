package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type GiftCertificate struct {
	Code            string
	GUID            string
	OriginalBalance decimal.Decimal
	Currency        string
	PurchaserEmail  string
	RecipientName   string
	RecipientEmail  string
	OrderNumber     string
	CreatedAt       time.Time
}

// GiftCertificateTransaction is an append-only ledger entry. Rows are never
// updated; captures and reversals refer to an authorization by its code.
type GiftCertificateTransaction struct {
	GUID              string
	Code              string
	Type              TransactionType
	Amount            decimal.Decimal
	AuthorizationCode string
	Status            PaymentStatus
	CreatedAt         time.Time
}

// FindAuthorization returns the approved authorization with the given code
// together with what happened to it afterwards.
func FindAuthorization(txs []GiftCertificateTransaction, authCode string) (*GiftCertificateTransaction, AuthorizationState) {
	var (
		auth  *GiftCertificateTransaction
		state AuthorizationState
	)
	for n := range txs {
		tx := &txs[n]
		if tx.AuthorizationCode != authCode || tx.Status != PaymentApproved {
			continue
		}
		switch tx.Type {
		case TransactionAuthorization:
			auth = tx
		case TransactionCapture:
			state.Captured = true
		case TransactionReverseAuthorization:
			state.Reversed = true
		}
	}
	return auth, state
}

// GiftCertificateBalance derives the spendable balance: the original value
// minus open authorizations minus captures plus refunds.
func GiftCertificateBalance(original decimal.Decimal, txs []GiftCertificateTransaction) decimal.Decimal {
	closed := make(map[string]bool)
	for _, tx := range txs {
		if tx.Status == PaymentApproved && tx.Type != TransactionAuthorization {
			closed[tx.AuthorizationCode] = true
		}
	}

	balance := original
	for _, tx := range txs {
		if tx.Status != PaymentApproved {
			continue
		}
		switch tx.Type {
		case TransactionAuthorization:
			if !closed[tx.AuthorizationCode] {
				balance = balance.Sub(tx.Amount)
			}
		case TransactionCapture:
			balance = balance.Sub(tx.Amount)
		case TransactionRefund:
			balance = balance.Add(tx.Amount)
		}
	}
	return balance
}
