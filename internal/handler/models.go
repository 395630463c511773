package handler

import (
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/shopspring/decimal"
)

// CreateCartRequest создание корзины
type CreateCartRequest struct {
	ShopperID    string          `json:"shopper_id" validate:"required"`
	StoreCode    string          `json:"store_code" validate:"required"`
	Currency     string          `json:"currency" validate:"required,len=3"`
	Warehouse    string          `json:"warehouse" validate:"required"`
	ShippingCost decimal.Decimal `json:"shipping_cost" swaggertype:"string"`
}

// ItemRequest добавление товара; constituents задаёт состав набора
type ItemRequest struct {
	SkuCode      string            `json:"sku_code" validate:"required"`
	Quantity     int               `json:"quantity" validate:"required,gt=0"`
	Fields       map[string]string `json:"fields,omitempty"`
	Constituents []ItemRequest     `json:"constituents,omitempty" validate:"dive"`
}

// UpdateItemRequest изменение строки корзины; quantity 0 удаляет строку
type UpdateItemRequest struct {
	Quantity int               `json:"quantity" validate:"gte=0"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type MergeCartRequest struct {
	PreviousCartGUID string `json:"previous_cart_guid" validate:"required"`
}

type CodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// PaymentTemplate способ оплаты остатка после подарочных сертификатов
type PaymentTemplate struct {
	Method              string `json:"method" validate:"required,oneof=CREDIT_CARD GIFT_CERTIFICATE"`
	CardToken           string `json:"card_token,omitempty" validate:"required_if=Method CREDIT_CARD"`
	GiftCertificateCode string `json:"gift_certificate_code,omitempty" validate:"required_if=Method GIFT_CERTIFICATE"`
}

type CheckoutRequest struct {
	Payment  *PaymentTemplate `json:"payment,omitempty"`
	Exchange bool             `json:"exchange"`
}

type CompleteShipmentRequest struct {
	TrackingCode string `json:"tracking_code"`
}

type SplitShipmentRequest struct {
	SkuGUIDs []string `json:"sku_guids" validate:"required,min=1,dive,required"`
}

type UpdateShipmentItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ReturnRequest возврат товаров из отгруженного отправления
type ReturnRequest struct {
	Items []ReturnItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ReturnItemRequest struct {
	SkuGUID  string `json:"sku_guid" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type CreateInventoryRequest struct {
	SkuCode   string `json:"sku_code" validate:"required"`
	Warehouse string `json:"warehouse" validate:"required"`
	OnHand    int    `json:"on_hand" validate:"gte=0"`
	Criteria  string `json:"criteria" validate:"required,oneof=ALWAYS_AVAILABLE AVAILABLE_WHEN_IN_STOCK BACKORDER"`
}

// StockAdjustment изменение остатка; приходит по HTTP и из Kafka
type StockAdjustment struct {
	SkuCode   string `json:"sku_code" validate:"required"`
	Warehouse string `json:"warehouse" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,ne=0"`
	Reference string `json:"reference,omitempty"`
}

// Cart корзина покупателя
type Cart struct {
	GUID                 string     `json:"guid"`
	ShopperID            string     `json:"shopper_id"`
	StoreCode            string     `json:"store_code"`
	Currency             string     `json:"currency"`
	Warehouse            string     `json:"warehouse"`
	ShippingCost         string     `json:"shipping_cost"`
	Subtotal             string     `json:"subtotal"`
	NumItems             int        `json:"num_items"`
	Items                []CartItem `json:"items"`
	PromoCodes           []string   `json:"promo_codes"`
	GiftCertificateCodes []string   `json:"gift_certificate_codes"`
	CompletedOrderNumber string     `json:"completed_order_number,omitempty"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CartItem строка корзины
type CartItem struct {
	GUID      string            `json:"guid"`
	SkuCode   string            `json:"sku_code"`
	Quantity  int               `json:"quantity"`
	ListPrice string            `json:"list_price"`
	SalePrice string            `json:"sale_price,omitempty"`
	Total     string            `json:"total"`
	Fields    map[string]string `json:"fields,omitempty"`
	Bundle    bool              `json:"bundle"`
	Children  []CartItem        `json:"children,omitempty"`
	Ordering  int               `json:"ordering"`
}

// Order заказ
type Order struct {
	Number     string     `json:"number"`
	Status     string     `json:"status"`
	CustomerID string     `json:"customer_id"`
	StoreCode  string     `json:"store_code"`
	Currency   string     `json:"currency"`
	Exchange   bool       `json:"exchange"`
	Total      string     `json:"total"`
	Shipments  []Shipment `json:"shipments"`
	Payments   []Payment  `json:"payments"`
	Returns    []Return   `json:"returns"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Return возврат товаров с суммой возмещения
type Return struct {
	GUID           string       `json:"guid"`
	ShipmentNumber string       `json:"shipment_number"`
	RefundAmount   string       `json:"refund_amount"`
	Items          []ReturnItem `json:"items"`
	CreatedAt      time.Time    `json:"created_at"`
}

type ReturnItem struct {
	SkuGUID  string `json:"sku_guid"`
	SkuCode  string `json:"sku_code"`
	Quantity int    `json:"quantity"`
}

// Shipment отправление заказа
type Shipment struct {
	Number       string     `json:"number"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	Warehouse    string     `json:"warehouse"`
	ShippingCost string     `json:"shipping_cost"`
	Discount     string     `json:"discount"`
	Tax          string     `json:"tax"`
	Total        string     `json:"total"`
	TrackingCode string     `json:"tracking_code,omitempty"`
	ShippedAt    *time.Time `json:"shipped_at,omitempty"`
	Items        []OrderSku `json:"items"`
}

type OrderSku struct {
	GUID              string            `json:"guid"`
	SkuCode           string            `json:"sku_code"`
	Quantity          int               `json:"quantity"`
	AllocatedQuantity int               `json:"allocated_quantity"`
	UnitPrice         string            `json:"unit_price"`
	Total             string            `json:"total"`
	Fields            map[string]string `json:"fields,omitempty"`
}

// Payment платёжная транзакция заказа
type Payment struct {
	GUID                string    `json:"guid"`
	ShipmentNumber      string    `json:"shipment_number,omitempty"`
	Method              string    `json:"method"`
	TransactionType     string    `json:"transaction_type"`
	Status              string    `json:"status"`
	Amount              string    `json:"amount"`
	AuthorizationCode   string    `json:"authorization_code,omitempty"`
	GiftCertificateCode string    `json:"gift_certificate_code,omitempty"`
	Message             string    `json:"message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type Inventory struct {
	SkuCode   string `json:"sku_code"`
	Warehouse string `json:"warehouse"`
	OnHand    int    `json:"on_hand"`
	Allocated int    `json:"allocated"`
	Available int    `json:"available"`
	Criteria  string `json:"criteria"`
	Version   int64  `json:"version"`
}

type InventoryAudit struct {
	ID             int64     `json:"id"`
	Event          string    `json:"event"`
	OnHandDelta    int       `json:"on_hand_delta"`
	AllocatedDelta int       `json:"allocated_delta"`
	Reference      string    `json:"reference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// GiftCertificate подарочный сертификат с текущим балансом
type GiftCertificate struct {
	Code            string    `json:"code"`
	OriginalBalance string    `json:"original_balance"`
	Balance         string    `json:"balance"`
	Currency        string    `json:"currency"`
	RecipientName   string    `json:"recipient_name,omitempty"`
	OrderNumber     string    `json:"order_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CheckoutErrorResponse ошибка оформления заказа
type CheckoutErrorResponse struct {
	Message     string `json:"message"`
	Action      string `json:"action"`
	OrderNumber string `json:"order_number,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (r ItemRequest) toService() service.ItemRequest {
	out := service.ItemRequest{
		SkuCode:  r.SkuCode,
		Quantity: r.Quantity,
		Fields:   r.Fields,
	}
	for _, c := range r.Constituents {
		out.Constituents = append(out.Constituents, c.toService())
	}
	return out
}

func (p *PaymentTemplate) toEntity() *entities.OrderPayment {
	if p == nil {
		return nil
	}
	return &entities.OrderPayment{
		Method:              entities.PaymentMethod(p.Method),
		CardToken:           p.CardToken,
		GiftCertificateCode: p.GiftCertificateCode,
	}
}

func CartEntityToJSON(c *entities.ShoppingCart) Cart {
	out := Cart{
		GUID:                 c.GUID,
		ShopperID:            c.ShopperID,
		StoreCode:            c.StoreCode,
		Currency:             c.Currency,
		Warehouse:            c.Warehouse,
		ShippingCost:         money(c.ShippingCost),
		Subtotal:             money(c.Subtotal()),
		NumItems:             c.NumItems(),
		Items:                make([]CartItem, 0, len(c.Items)),
		PromoCodes:           nonNil(c.PromoCodes),
		GiftCertificateCodes: nonNil(c.GiftCertificateCodes),
		CompletedOrderNumber: c.CompletedOrderNumber,
		UpdatedAt:            c.UpdatedAt,
	}
	for _, item := range c.Items {
		out.Items = append(out.Items, CartItemEntityToJSON(item))
	}
	return out
}

func CartItemEntityToJSON(i *entities.CartItem) CartItem {
	out := CartItem{
		GUID:      i.GUID,
		SkuCode:   i.SkuCode,
		Quantity:  i.Quantity,
		ListPrice: money(i.ListPrice),
		Total:     money(i.Total()),
		Fields:    i.Fields,
		Bundle:    i.Bundle,
		Ordering:  i.Ordering,
	}
	if i.SalePrice.Valid {
		out.SalePrice = money(i.SalePrice.Decimal)
	}
	for _, child := range i.Children {
		out.Children = append(out.Children, CartItemEntityToJSON(child))
	}
	return out
}

func OrderEntityToJSON(o *entities.Order) Order {
	out := Order{
		Number:     o.Number,
		Status:     string(o.Status),
		CustomerID: o.CustomerID,
		StoreCode:  o.StoreCode,
		Currency:   o.Currency,
		Exchange:   o.Exchange,
		Total:      money(o.Total()),
		Shipments:  make([]Shipment, 0, len(o.Shipments)),
		Payments:   make([]Payment, 0, len(o.Payments)),
		Returns:    make([]Return, 0, len(o.Returns)),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, sh := range o.Shipments {
		out.Shipments = append(out.Shipments, ShipmentEntityToJSON(sh))
	}
	for _, p := range o.Payments {
		out.Payments = append(out.Payments, Payment{
			GUID:                p.GUID,
			ShipmentNumber:      p.ShipmentNumber,
			Method:              string(p.Method),
			TransactionType:     string(p.TransactionType),
			Status:              string(p.Status),
			Amount:              money(p.Amount),
			AuthorizationCode:   p.AuthorizationCode,
			GiftCertificateCode: p.GiftCertificateCode,
			Message:             p.Message,
			CreatedAt:           p.CreatedAt,
		})
	}
	for _, r := range o.Returns {
		ret := Return{
			GUID:           r.GUID,
			ShipmentNumber: r.ShipmentNumber,
			RefundAmount:   money(r.RefundAmount),
			Items:          make([]ReturnItem, 0, len(r.Items)),
			CreatedAt:      r.CreatedAt,
		}
		for _, it := range r.Items {
			ret.Items = append(ret.Items, ReturnItem{SkuGUID: it.SkuGUID, SkuCode: it.SkuCode, Quantity: it.Quantity})
		}
		out.Returns = append(out.Returns, ret)
	}
	return out
}

func (r ReturnRequest) toEntities() []entities.ReturnItem {
	items := make([]entities.ReturnItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.ReturnItem{SkuGUID: it.SkuGUID, Quantity: it.Quantity})
	}
	return items
}

func ShipmentEntityToJSON(sh *entities.OrderShipment) Shipment {
	out := Shipment{
		Number:       sh.Number,
		Kind:         string(sh.Kind),
		Status:       string(sh.Status),
		Warehouse:    sh.Warehouse,
		ShippingCost: money(sh.ShippingCost),
		Discount:     money(sh.Discount),
		Tax:          money(sh.Tax),
		Total:        money(sh.Payable()),
		TrackingCode: sh.TrackingCode,
		ShippedAt:    sh.ShippedAt,
		Items:        make([]OrderSku, 0, len(sh.Items)),
	}
	for _, it := range sh.Items {
		out.Items = append(out.Items, OrderSku{
			GUID:              it.GUID,
			SkuCode:           it.SkuCode,
			Quantity:          it.Quantity,
			AllocatedQuantity: it.AllocatedQuantity,
			UnitPrice:         money(it.UnitPrice),
			Total:             money(it.Total()),
			Fields:            it.Fields,
		})
	}
	return out
}

func InventoryEntityToJSON(r entities.InventoryRecord) Inventory {
	return Inventory{
		SkuCode:   r.SkuCode,
		Warehouse: r.Warehouse,
		OnHand:    r.OnHand,
		Allocated: r.Allocated,
		Available: r.Available(),
		Criteria:  string(r.Criteria),
		Version:   r.Version,
	}
}

func InventoryAuditEntityToJSON(a entities.InventoryAudit) InventoryAudit {
	return InventoryAudit{
		ID:             a.ID,
		Event:          string(a.Event),
		OnHandDelta:    a.OnHandDelta,
		AllocatedDelta: a.AllocatedDelta,
		Reference:      a.Reference,
		CreatedAt:      a.CreatedAt,
	}
}

func (a StockAdjustment) toCommand() entities.InventoryCommand {
	return entities.InventoryCommand{
		Event:     entities.EventStockAdjustment,
		SkuCode:   a.SkuCode,
		Warehouse: a.Warehouse,
		Quantity:  a.Quantity,
		Reference: a.Reference,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
