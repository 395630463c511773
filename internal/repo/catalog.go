package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ResolveSku(ctx context.Context, code string) (entities.SKU, error) {
	query, args := r.qb.Select("code", "product_code", "product_type", "store_codes", "shippable", "bundle", "min_order_qty", "enabled").
		From("skus").
		Where(sq.Eq{"code": code}).
		MustSql()

	var sku Sku
	err := r.getContext(ctx, &sku, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SKU{}, entities.ErrSkuNotFound
	}
	if err != nil {
		return entities.SKU{}, fmt.Errorf("failed to get sku: %w", err)
	}
	return SkuToEntity(sku), nil
}

// PriceFor looks prices up per currency. The store and shopper of the
// price context do not change the price.
func (r *postgresRepo) PriceFor(ctx context.Context, sku entities.SKU, currency string, _ entities.PriceContext) (entities.Price, error) {
	query, args := r.qb.Select("list_price", "sale_price").
		From("prices").
		Where(sq.Eq{"sku_code": sku.Code, "currency": currency}).
		MustSql()

	var price Price
	err := r.getContext(ctx, &price, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Price{}, entities.ErrPriceNotFound
	}
	if err != nil {
		return entities.Price{}, fmt.Errorf("failed to get price: %w", err)
	}
	return entities.Price{List: price.ListPrice, Sale: price.SalePrice}, nil
}
