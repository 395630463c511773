package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Fields is a JSONB column holding line configuration.
type Fields map[string]string

func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

func (f *Fields) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported fields type %T", src)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) == 0 {
		m = nil
	}
	*f = m
	return nil
}

type Order struct {
	Number        string         `db:"number"`
	Status        string         `db:"status"`
	CustomerID    string         `db:"customer_id"`
	StoreCode     string         `db:"store_code"`
	Currency      string         `db:"currency"`
	CartOrderGUID sql.NullString `db:"cart_order_guid"`
	Exchange      bool           `db:"exchange"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Shipment struct {
	Number       string          `db:"number"`
	OrderNumber  string          `db:"order_number"`
	Kind         string          `db:"kind"`
	Status       string          `db:"status"`
	ShippingCost decimal.Decimal `db:"shipping_cost"`
	Discount     decimal.Decimal `db:"discount"`
	Tax          decimal.Decimal `db:"tax"`
	Warehouse    string          `db:"warehouse"`
	TrackingCode sql.NullString  `db:"tracking_code"`
	ShippedAt    sql.NullTime    `db:"shipped_at"`
	Ordering     int             `db:"ordering"`
	CreatedAt    time.Time       `db:"created_at"`
}

type OrderSku struct {
	GUID              string          `db:"guid"`
	ShipmentNumber    string          `db:"shipment_number"`
	OrderNumber       string          `db:"order_number"`
	SkuCode           string          `db:"sku_code"`
	ProductType       string          `db:"product_type"`
	Quantity          int             `db:"quantity"`
	AllocatedQuantity int             `db:"allocated_quantity"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	Fields            Fields          `db:"fields"`
	Ordering          int             `db:"ordering"`
}

type Payment struct {
	GUID                string          `db:"guid"`
	OrderNumber         string          `db:"order_number"`
	ShipmentNumber      sql.NullString  `db:"shipment_number"`
	Method              string          `db:"method"`
	TransactionType     string          `db:"transaction_type"`
	Status              string          `db:"status"`
	Amount              decimal.Decimal `db:"amount"`
	Currency            string          `db:"currency"`
	AuthorizationCode   sql.NullString  `db:"authorization_code"`
	ReferenceID         sql.NullString  `db:"reference_id"`
	GiftCertificateCode sql.NullString  `db:"gift_certificate_code"`
	CardToken           sql.NullString  `db:"card_token"`
	Message             sql.NullString  `db:"message"`
	CreatedAt           time.Time       `db:"created_at"`
}

type OrderReturn struct {
	GUID           string          `db:"guid"`
	OrderNumber    string          `db:"order_number"`
	ShipmentNumber string          `db:"shipment_number"`
	RefundAmount   decimal.Decimal `db:"refund_amount"`
	CreatedAt      time.Time       `db:"created_at"`
}

type OrderReturnItem struct {
	ReturnGUID  string `db:"return_guid"`
	OrderNumber string `db:"order_number"`
	SkuGUID     string `db:"sku_guid"`
	SkuCode     string `db:"sku_code"`
	Quantity    int    `db:"quantity"`
	Ordering    int    `db:"ordering"`
}

type Inventory struct {
	SkuCode   string `db:"sku_code"`
	Warehouse string `db:"warehouse"`
	OnHand    int    `db:"on_hand"`
	Allocated int    `db:"allocated"`
	Criteria  string `db:"criteria"`
	Version   int64  `db:"version"`
}

type InventoryAudit struct {
	ID             int64          `db:"id"`
	SkuCode        string         `db:"sku_code"`
	Warehouse      string         `db:"warehouse"`
	Event          string         `db:"event"`
	OnHandDelta    int            `db:"on_hand_delta"`
	AllocatedDelta int            `db:"allocated_delta"`
	Reference      sql.NullString `db:"reference"`
	CreatedAt      time.Time      `db:"created_at"`
}

type GiftCertificate struct {
	Code            string          `db:"code"`
	GUID            string          `db:"guid"`
	OriginalBalance decimal.Decimal `db:"original_balance"`
	Currency        string          `db:"currency"`
	PurchaserEmail  sql.NullString  `db:"purchaser_email"`
	RecipientName   sql.NullString  `db:"recipient_name"`
	RecipientEmail  sql.NullString  `db:"recipient_email"`
	OrderNumber     sql.NullString  `db:"order_number"`
	CreatedAt       time.Time       `db:"created_at"`
}

type GiftCertificateTransaction struct {
	GUID              string          `db:"guid"`
	Code              string          `db:"code"`
	Type              string          `db:"type"`
	Amount            decimal.Decimal `db:"amount"`
	AuthorizationCode string          `db:"authorization_code"`
	Status            string          `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
}

type Cart struct {
	GUID                 string          `db:"guid"`
	ShopperID            string          `db:"shopper_id"`
	StoreCode            string          `db:"store_code"`
	Currency             string          `db:"currency"`
	Warehouse            string          `db:"warehouse"`
	ShippingCost         decimal.Decimal `db:"shipping_cost"`
	PromoCodes           pq.StringArray  `db:"promo_codes"`
	GiftCertificateCodes pq.StringArray  `db:"gift_certificate_codes"`
	CompletedOrderNumber sql.NullString  `db:"completed_order_number"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

type CartItem struct {
	GUID        string              `db:"guid"`
	CartGUID    string              `db:"cart_guid"`
	ParentGUID  sql.NullString      `db:"parent_guid"`
	SkuCode     string              `db:"sku_code"`
	ProductType string              `db:"product_type"`
	Quantity    int                 `db:"quantity"`
	ListPrice   decimal.Decimal     `db:"list_price"`
	SalePrice   decimal.NullDecimal `db:"sale_price"`
	Fields      Fields              `db:"fields"`
	Bundle      bool                `db:"bundle"`
	Shippable   bool                `db:"shippable"`
	Ordering    int                 `db:"ordering"`
}

type Sku struct {
	Code        string         `db:"code"`
	ProductCode string         `db:"product_code"`
	ProductType string         `db:"product_type"`
	StoreCodes  pq.StringArray `db:"store_codes"`
	Shippable   bool           `db:"shippable"`
	Bundle      bool           `db:"bundle"`
	MinOrderQty int            `db:"min_order_qty"`
	Enabled     bool           `db:"enabled"`
}

type Price struct {
	ListPrice decimal.Decimal     `db:"list_price"`
	SalePrice decimal.NullDecimal `db:"sale_price"`
}

// OrderToEntity assembles the order graph. Rows must already be sorted by ordering.
func OrderToEntity(o Order, shipments []Shipment, skus []OrderSku, payments []Payment, returns []OrderReturn, returnItems []OrderReturnItem) *entities.Order {
	order := &entities.Order{
		Number:        o.Number,
		Status:        entities.OrderStatus(o.Status),
		CustomerID:    o.CustomerID,
		StoreCode:     o.StoreCode,
		Currency:      o.Currency,
		CartOrderGUID: nullStringToString(o.CartOrderGUID),
		Exchange:      o.Exchange,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	byNumber := make(map[string]*entities.OrderShipment, len(shipments))
	for _, s := range shipments {
		sh := ShipmentToEntity(s)
		byNumber[s.Number] = sh
		order.Shipments = append(order.Shipments, sh)
	}
	for _, it := range skus {
		if sh, ok := byNumber[it.ShipmentNumber]; ok {
			sh.Items = append(sh.Items, OrderSkuToEntity(it))
		}
	}
	for _, p := range payments {
		order.Payments = append(order.Payments, PaymentToEntity(p))
	}

	byGUID := make(map[string]*entities.OrderReturn, len(returns))
	for _, r := range returns {
		ret := &entities.OrderReturn{
			GUID:           r.GUID,
			ShipmentNumber: r.ShipmentNumber,
			RefundAmount:   r.RefundAmount,
			CreatedAt:      r.CreatedAt,
		}
		byGUID[r.GUID] = ret
		order.Returns = append(order.Returns, ret)
	}
	for _, it := range returnItems {
		if ret, ok := byGUID[it.ReturnGUID]; ok {
			ret.Items = append(ret.Items, entities.ReturnItem{SkuGUID: it.SkuGUID, SkuCode: it.SkuCode, Quantity: it.Quantity})
		}
	}
	return order
}

func ShipmentToEntity(s Shipment) *entities.OrderShipment {
	sh := &entities.OrderShipment{
		Number:       s.Number,
		Kind:         entities.ShipmentKind(s.Kind),
		Status:       entities.ShipmentStatus(s.Status),
		ShippingCost: s.ShippingCost,
		Discount:     s.Discount,
		Tax:          s.Tax,
		Warehouse:    s.Warehouse,
		TrackingCode: nullStringToString(s.TrackingCode),
		Ordering:     s.Ordering,
		CreatedAt:    s.CreatedAt,
	}
	if s.ShippedAt.Valid {
		at := s.ShippedAt.Time
		sh.ShippedAt = &at
	}
	return sh
}

func OrderSkuToEntity(s OrderSku) *entities.OrderSku {
	return &entities.OrderSku{
		GUID:              s.GUID,
		SkuCode:           s.SkuCode,
		ProductType:       s.ProductType,
		Quantity:          s.Quantity,
		AllocatedQuantity: s.AllocatedQuantity,
		UnitPrice:         s.UnitPrice,
		Fields:            s.Fields,
		Ordering:          s.Ordering,
	}
}

func PaymentToEntity(p Payment) *entities.OrderPayment {
	return &entities.OrderPayment{
		GUID:                p.GUID,
		Method:              entities.PaymentMethod(p.Method),
		TransactionType:     entities.TransactionType(p.TransactionType),
		Status:              entities.PaymentStatus(p.Status),
		Amount:              p.Amount,
		Currency:            p.Currency,
		ShipmentNumber:      nullStringToString(p.ShipmentNumber),
		AuthorizationCode:   nullStringToString(p.AuthorizationCode),
		ReferenceID:         nullStringToString(p.ReferenceID),
		GiftCertificateCode: nullStringToString(p.GiftCertificateCode),
		CardToken:           nullStringToString(p.CardToken),
		Message:             nullStringToString(p.Message),
		CreatedAt:           p.CreatedAt,
	}
}

func InventoryToEntity(i Inventory) entities.InventoryRecord {
	return entities.InventoryRecord{
		SkuCode:   i.SkuCode,
		Warehouse: i.Warehouse,
		OnHand:    i.OnHand,
		Allocated: i.Allocated,
		Criteria:  entities.AvailabilityCriteria(i.Criteria),
		Version:   i.Version,
	}
}

func InventoryAuditToEntity(a InventoryAudit) entities.InventoryAudit {
	return entities.InventoryAudit{
		ID:             a.ID,
		SkuCode:        a.SkuCode,
		Warehouse:      a.Warehouse,
		Event:          entities.InventoryEventType(a.Event),
		OnHandDelta:    a.OnHandDelta,
		AllocatedDelta: a.AllocatedDelta,
		Reference:      nullStringToString(a.Reference),
		CreatedAt:      a.CreatedAt,
	}
}

func GiftCertificateToEntity(g GiftCertificate) entities.GiftCertificate {
	return entities.GiftCertificate{
		Code:            g.Code,
		GUID:            g.GUID,
		OriginalBalance: g.OriginalBalance,
		Currency:        g.Currency,
		PurchaserEmail:  nullStringToString(g.PurchaserEmail),
		RecipientName:   nullStringToString(g.RecipientName),
		RecipientEmail:  nullStringToString(g.RecipientEmail),
		OrderNumber:     nullStringToString(g.OrderNumber),
		CreatedAt:       g.CreatedAt,
	}
}

func GiftCertificateTransactionToEntity(t GiftCertificateTransaction) entities.GiftCertificateTransaction {
	return entities.GiftCertificateTransaction{
		GUID:              t.GUID,
		Code:              t.Code,
		Type:              entities.TransactionType(t.Type),
		Amount:            t.Amount,
		AuthorizationCode: t.AuthorizationCode,
		Status:            entities.PaymentStatus(t.Status),
		CreatedAt:         t.CreatedAt,
	}
}

// CartToEntity rebuilds the item tree from flat rows sorted by ordering.
func CartToEntity(c Cart, items []CartItem) *entities.ShoppingCart {
	cart := &entities.ShoppingCart{
		GUID:                 c.GUID,
		ShopperID:            c.ShopperID,
		StoreCode:            c.StoreCode,
		Currency:             c.Currency,
		Warehouse:            c.Warehouse,
		ShippingCost:         c.ShippingCost,
		PromoCodes:           []string(c.PromoCodes),
		GiftCertificateCodes: []string(c.GiftCertificateCodes),
		CompletedOrderNumber: nullStringToString(c.CompletedOrderNumber),
		UpdatedAt:            c.UpdatedAt,
	}

	byGUID := make(map[string]*entities.CartItem, len(items))
	for _, it := range items {
		byGUID[it.GUID] = CartItemToEntity(it)
	}
	for _, it := range items {
		item := byGUID[it.GUID]
		if !it.ParentGUID.Valid {
			cart.Items = append(cart.Items, item)
			continue
		}
		if parent, ok := byGUID[it.ParentGUID.String]; ok {
			parent.Children = append(parent.Children, item)
		}
	}
	return cart
}

func CartItemToEntity(i CartItem) *entities.CartItem {
	return &entities.CartItem{
		GUID:        i.GUID,
		SkuCode:     i.SkuCode,
		ProductType: i.ProductType,
		Quantity:    i.Quantity,
		ListPrice:   i.ListPrice,
		SalePrice:   i.SalePrice,
		Fields:      i.Fields,
		Bundle:      i.Bundle,
		Shippable:   i.Shippable,
		Ordering:    i.Ordering,
	}
}

func SkuToEntity(s Sku) entities.SKU {
	return entities.SKU{
		Code:        s.Code,
		ProductCode: s.ProductCode,
		ProductType: s.ProductType,
		StoreCodes:  []string(s.StoreCodes),
		Shippable:   s.Shippable,
		Bundle:      s.Bundle,
		MinOrderQty: s.MinOrderQty,
		Enabled:     s.Enabled,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
