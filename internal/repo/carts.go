package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var cartItemColumns = []string{
	"guid", "cart_guid", "parent_guid", "sku_code", "product_type", "quantity",
	"list_price", "sale_price", "fields", "bundle", "shippable", "ordering",
}

// SaveCart upserts the cart row and rewrites its lines.
func (r *postgresRepo) SaveCart(ctx context.Context, c *entities.ShoppingCart) error {
	query, args := r.qb.Insert("carts").
		Columns("guid", "shopper_id", "store_code", "currency", "warehouse", "shipping_cost",
			"promo_codes", "gift_certificate_codes", "completed_order_number", "updated_at").
		Values(c.GUID, c.ShopperID, c.StoreCode, c.Currency, c.Warehouse, c.ShippingCost,
			pq.StringArray(c.PromoCodes), pq.StringArray(c.GiftCertificateCodes), nullString(c.CompletedOrderNumber), c.UpdatedAt).
		Suffix(`ON CONFLICT (guid) DO UPDATE SET
			shipping_cost = EXCLUDED.shipping_cost,
			promo_codes = EXCLUDED.promo_codes,
			gift_certificate_codes = EXCLUDED.gift_certificate_codes,
			completed_order_number = EXCLUDED.completed_order_number,
			updated_at = EXCLUDED.updated_at`).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	query, args = r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_guid": c.GUID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	if len(c.Items) == 0 {
		return nil
	}
	q := r.qb.Insert("cart_items").Columns(cartItemColumns...)
	for _, item := range c.Items {
		q = cartItemValues(q, c.GUID, "", item)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save cart items: %w", err)
	}
	return nil
}

func cartItemValues(q sq.InsertBuilder, cartGUID, parentGUID string, item *entities.CartItem) sq.InsertBuilder {
	q = q.Values(item.GUID, cartGUID, nullString(parentGUID), item.SkuCode, item.ProductType, item.Quantity,
		item.ListPrice, item.SalePrice, Fields(item.Fields), item.Bundle, item.Shippable, item.Ordering)
	for _, child := range item.Children {
		q = cartItemValues(q, cartGUID, item.GUID, child)
	}
	return q
}

func (r *postgresRepo) GetCart(ctx context.Context, guid string) (*entities.ShoppingCart, error) {
	query, args := forUpdate(ctx, r.qb.Select("guid", "shopper_id", "store_code", "currency", "warehouse", "shipping_cost",
		"promo_codes", "gift_certificate_codes", "completed_order_number", "updated_at").
		From("carts").
		Where(sq.Eq{"guid": guid})).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select(cartItemColumns...).
		From("cart_items").
		Where(sq.Eq{"cart_guid": guid}).
		OrderBy("ordering").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	return CartToEntity(cart, items), nil
}

func (r *postgresRepo) DeleteCart(ctx context.Context, guid string) error {
	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"guid": guid}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
