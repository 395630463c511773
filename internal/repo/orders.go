package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var (
	orderColumns    = []string{"number", "status", "customer_id", "store_code", "currency", "cart_order_guid", "exchange", "created_at", "updated_at"}
	shipmentColumns = []string{"number", "order_number", "kind", "status", "shipping_cost", "discount", "tax", "warehouse", "tracking_code", "shipped_at", "ordering", "created_at"}
	orderSkuColumns = []string{"guid", "shipment_number", "order_number", "sku_code", "product_type", "quantity", "allocated_quantity", "unit_price", "fields", "ordering"}
	paymentColumns  = []string{
		"guid", "order_number", "shipment_number", "method", "transaction_type", "status", "amount", "currency",
		"authorization_code", "reference_id", "gift_certificate_code", "card_token", "message", "created_at",
	}

	returnColumns     = []string{"guid", "order_number", "shipment_number", "refund_amount", "created_at"}
	returnItemColumns = []string{"return_guid", "order_number", "sku_guid", "sku_code", "quantity", "ordering"}
)

func (r *postgresRepo) GetOrder(ctx context.Context, number string) (*entities.Order, error) {
	query, args := forUpdate(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"number": number})).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.loadOrders(ctx, []Order{order})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

func (r *postgresRepo) GetOrderByShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error) {
	query, args := r.qb.Select("order_number").
		From("order_shipments").
		Where(sq.Eq{"number": shipmentNumber}).
		MustSql()

	var number string
	err := r.getContext(ctx, &number, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return r.GetOrder(ctx, number)
}

func (r *postgresRepo) FindOrders(ctx context.Context, criteria entities.OrderCriteria) ([]*entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if criteria.Status != "" {
		q = q.Where(sq.Eq{"status": string(criteria.Status)})
	}
	if criteria.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": criteria.CustomerID})
	}
	if criteria.StoreCode != "" {
		q = q.Where(sq.Eq{"store_code": criteria.StoreCode})
	}
	if !criteria.CreatedAfter.IsZero() {
		q = q.Where(sq.Gt{"created_at": criteria.CreatedAfter})
	}
	if criteria.Limit > 0 {
		q = q.Limit(uint64(criteria.Limit))
	}

	query, args := q.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []*entities.Order{}, nil
	}
	return r.loadOrders(ctx, orders)
}

// loadOrders fetches shipments, lines, payments and returns of all orders in five queries.
func (r *postgresRepo) loadOrders(ctx context.Context, orders []Order) ([]*entities.Order, error) {
	numbers := make([]string, len(orders))
	for i, o := range orders {
		numbers[i] = o.Number
	}

	query, args := r.qb.Select(shipmentColumns...).
		From("order_shipments").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("ordering").
		MustSql()
	var shipments []Shipment
	if err := r.selectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipments: %w", err)
	}
	shipmentMap := make(map[string][]Shipment, len(orders))
	for _, s := range shipments {
		shipmentMap[s.OrderNumber] = append(shipmentMap[s.OrderNumber], s)
	}

	query, args = r.qb.Select(orderSkuColumns...).
		From("order_skus").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("ordering").
		MustSql()
	var skus []OrderSku
	if err := r.selectContext(ctx, &skus, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order skus: %w", err)
	}
	skuMap := make(map[string][]OrderSku, len(orders))
	for _, s := range skus {
		skuMap[s.OrderNumber] = append(skuMap[s.OrderNumber], s)
	}

	query, args = r.qb.Select(paymentColumns...).
		From("order_payments").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("created_at", "guid").
		MustSql()
	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	paymentMap := make(map[string][]Payment, len(orders))
	for _, p := range payments {
		paymentMap[p.OrderNumber] = append(paymentMap[p.OrderNumber], p)
	}

	query, args = r.qb.Select(returnColumns...).
		From("order_returns").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("created_at", "guid").
		MustSql()
	var returns []OrderReturn
	if err := r.selectContext(ctx, &returns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select returns: %w", err)
	}
	returnMap := make(map[string][]OrderReturn, len(orders))
	for _, ret := range returns {
		returnMap[ret.OrderNumber] = append(returnMap[ret.OrderNumber], ret)
	}

	query, args = r.qb.Select(returnItemColumns...).
		From("order_return_items").
		Where(sq.Eq{"order_number": numbers}).
		OrderBy("return_guid", "ordering").
		MustSql()
	var returnItems []OrderReturnItem
	if err := r.selectContext(ctx, &returnItems, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select return items: %w", err)
	}
	returnItemMap := make(map[string][]OrderReturnItem, len(orders))
	for _, it := range returnItems {
		returnItemMap[it.OrderNumber] = append(returnItemMap[it.OrderNumber], it)
	}

	result := make([]*entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, shipmentMap[o.Number], skuMap[o.Number], paymentMap[o.Number],
			returnMap[o.Number], returnItemMap[o.Number]))
	}
	return result, nil
}

// SaveOrder upserts the order graph. Lines are rewritten because a split
// moves them between shipments; payments are append-only.
func (r *postgresRepo) SaveOrder(ctx context.Context, o *entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.Number, string(o.Status), o.CustomerID, o.StoreCode, o.Currency,
			nullString(o.CartOrderGUID), o.Exchange, o.CreatedAt, o.UpdatedAt).
		Suffix("ON CONFLICT (number) DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at").
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if err := r.saveShipments(ctx, o); err != nil {
		return err
	}
	if err := r.saveOrderSkus(ctx, o); err != nil {
		return err
	}
	if err := r.savePayments(ctx, o); err != nil {
		return err
	}
	return r.saveReturns(ctx, o)
}

func (r *postgresRepo) saveShipments(ctx context.Context, o *entities.Order) error {
	if len(o.Shipments) == 0 {
		return nil
	}
	q := r.qb.Insert("order_shipments").
		Columns(shipmentColumns...).
		Suffix(`ON CONFLICT (number) DO UPDATE SET
			status = EXCLUDED.status,
			shipping_cost = EXCLUDED.shipping_cost,
			discount = EXCLUDED.discount,
			tax = EXCLUDED.tax,
			tracking_code = EXCLUDED.tracking_code,
			shipped_at = EXCLUDED.shipped_at`)
	for _, sh := range o.Shipments {
		q = q.Values(sh.Number, o.Number, string(sh.Kind), string(sh.Status), sh.ShippingCost, sh.Discount, sh.Tax,
			sh.Warehouse, nullString(sh.TrackingCode), nullTime(sh.ShippedAt), sh.Ordering, sh.CreatedAt)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shipments: %w", err)
	}
	return nil
}

func (r *postgresRepo) saveOrderSkus(ctx context.Context, o *entities.Order) error {
	query, args := r.qb.Delete("order_skus").
		Where(sq.Eq{"order_number": o.Number}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear order skus: %w", err)
	}

	skus := o.Skus()
	if len(skus) == 0 {
		return nil
	}
	q := r.qb.Insert("order_skus").Columns(orderSkuColumns...)
	for _, sh := range o.Shipments {
		for _, it := range sh.Items {
			q = q.Values(it.GUID, sh.Number, o.Number, it.SkuCode, it.ProductType, it.Quantity,
				it.AllocatedQuantity, it.UnitPrice, Fields(it.Fields), it.Ordering)
		}
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order skus: %w", err)
	}
	return nil
}

func (r *postgresRepo) savePayments(ctx context.Context, o *entities.Order) error {
	if len(o.Payments) == 0 {
		return nil
	}
	q := r.qb.Insert("order_payments").
		Columns(paymentColumns...).
		Suffix("ON CONFLICT (guid) DO NOTHING")
	for _, p := range o.Payments {
		q = q.Values(p.GUID, o.Number, nullString(p.ShipmentNumber), string(p.Method), string(p.TransactionType),
			string(p.Status), p.Amount, p.Currency, nullString(p.AuthorizationCode), nullString(p.ReferenceID),
			nullString(p.GiftCertificateCode), nullString(p.CardToken), nullString(p.Message), p.CreatedAt)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payments: %w", err)
	}
	return nil
}

// saveReturns inserts returns not stored yet; returns are append-only.
func (r *postgresRepo) saveReturns(ctx context.Context, o *entities.Order) error {
	if len(o.Returns) == 0 {
		return nil
	}

	q := r.qb.Insert("order_returns").
		Columns(returnColumns...).
		Suffix("ON CONFLICT (guid) DO NOTHING")
	items := r.qb.Insert("order_return_items").
		Columns(returnItemColumns...).
		Suffix("ON CONFLICT (return_guid, ordering) DO NOTHING")
	for _, ret := range o.Returns {
		q = q.Values(ret.GUID, o.Number, ret.ShipmentNumber, ret.RefundAmount, ret.CreatedAt)
		for n, it := range ret.Items {
			items = items.Values(ret.GUID, o.Number, it.SkuGUID, it.SkuCode, it.Quantity, n+1)
		}
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save returns: %w", err)
	}
	query, args = items.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save return items: %w", err)
	}
	return nil
}
