package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func gcTx(t entities.TransactionType, amount int64, code string) entities.GiftCertificateTransaction {
	return entities.GiftCertificateTransaction{
		Code:              "GC",
		Type:              t,
		Amount:            decimal.NewFromInt(amount),
		AuthorizationCode: code,
		Status:            entities.PaymentApproved,
		CreatedAt:         fixedTime,
	}
}

func TestGiftCertificateBalance(t *testing.T) {
	original := decimal.NewFromInt(100)

	testCases := []struct {
		name string
		txs  []entities.GiftCertificateTransaction
		want int64
	}{
		{"no transactions", nil, 100},
		{"open authorization", []entities.GiftCertificateTransaction{gcTx(entities.TransactionAuthorization, 30, "A")}, 70},
		{
			"captured authorization",
			[]entities.GiftCertificateTransaction{
				gcTx(entities.TransactionAuthorization, 30, "A"),
				gcTx(entities.TransactionCapture, 30, "A"),
			},
			70,
		},
		{
			"reversed authorization",
			[]entities.GiftCertificateTransaction{
				gcTx(entities.TransactionAuthorization, 30, "A"),
				gcTx(entities.TransactionReverseAuthorization, 30, "A"),
			},
			100,
		},
		{
			"partly refunded capture",
			[]entities.GiftCertificateTransaction{
				gcTx(entities.TransactionAuthorization, 30, "A"),
				gcTx(entities.TransactionCapture, 30, "A"),
				gcTx(entities.TransactionRefund, 12, "A"),
			},
			82,
		},
		{
			"failed entries ignored",
			[]entities.GiftCertificateTransaction{
				{Type: entities.TransactionAuthorization, Amount: decimal.NewFromInt(50), AuthorizationCode: "B", Status: entities.PaymentFailed},
			},
			100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := entities.GiftCertificateBalance(original, tc.txs)
			assert.True(t, decimal.NewFromInt(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestFindAuthorization(t *testing.T) {
	txs := []entities.GiftCertificateTransaction{
		gcTx(entities.TransactionAuthorization, 30, "A"),
		gcTx(entities.TransactionCapture, 30, "A"),
		gcTx(entities.TransactionAuthorization, 10, "B"),
	}

	auth, state := entities.FindAuthorization(txs, "A")
	if assert.NotNil(t, auth) {
		assert.True(t, auth.Amount.Equal(decimal.NewFromInt(30)))
	}
	assert.True(t, state.Captured)

	auth, state = entities.FindAuthorization(txs, "B")
	assert.NotNil(t, auth)
	assert.False(t, state.Captured || state.Reversed)

	auth, _ = entities.FindAuthorization(txs, "missing")
	assert.Nil(t, auth)
}
