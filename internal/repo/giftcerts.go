package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateGiftCertificate(ctx context.Context, gc entities.GiftCertificate) error {
	query, args := r.qb.Insert("gift_certificates").
		Columns("code", "guid", "original_balance", "currency", "purchaser_email",
			"recipient_name", "recipient_email", "order_number", "created_at").
		Values(gc.Code, gc.GUID, gc.OriginalBalance, gc.Currency, nullString(gc.PurchaserEmail),
			nullString(gc.RecipientName), nullString(gc.RecipientEmail), nullString(gc.OrderNumber), gc.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create gift certificate: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetGiftCertificate(ctx context.Context, code string) (entities.GiftCertificate, error) {
	query, args := forUpdate(ctx, r.qb.Select("code", "guid", "original_balance", "currency", "purchaser_email",
		"recipient_name", "recipient_email", "order_number", "created_at").
		From("gift_certificates").
		Where(sq.Eq{"code": code})).
		MustSql()

	var gc GiftCertificate
	err := r.getContext(ctx, &gc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.GiftCertificate{}, entities.ErrGiftCertificateNotFound
	}
	if err != nil {
		return entities.GiftCertificate{}, fmt.Errorf("failed to get gift certificate: %w", err)
	}
	return GiftCertificateToEntity(gc), nil
}

// DeleteGiftCertificate removes the certificate; the ledger goes with it by cascade.
func (r *postgresRepo) DeleteGiftCertificate(ctx context.Context, code string) error {
	query, args := r.qb.Delete("gift_certificates").
		Where(sq.Eq{"code": code}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete gift certificate: %w", err)
	}
	if ok, err := affected(res); err == nil && !ok {
		return entities.ErrGiftCertificateNotFound
	}
	return nil
}

func (r *postgresRepo) Transactions(ctx context.Context, code string) ([]entities.GiftCertificateTransaction, error) {
	query, args := r.qb.Select("guid", "code", "type", "amount", "authorization_code", "status", "created_at").
		From("gift_certificate_transactions").
		Where(sq.Eq{"code": code}).
		OrderBy("created_at", "guid").
		MustSql()

	var rows []GiftCertificateTransaction
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select gift certificate transactions: %w", err)
	}

	result := make([]entities.GiftCertificateTransaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, GiftCertificateTransactionToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) AppendTransaction(ctx context.Context, t entities.GiftCertificateTransaction) error {
	query, args := r.qb.Insert("gift_certificate_transactions").
		Columns("guid", "code", "type", "amount", "authorization_code", "status", "created_at").
		Values(t.GUID, t.Code, string(t.Type), t.Amount, t.AuthorizationCode, string(t.Status), t.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append gift certificate transaction: %w", err)
	}
	return nil
}
