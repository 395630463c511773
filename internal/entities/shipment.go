package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentKind string

const (
	ShipmentPhysical   ShipmentKind = "PHYSICAL"
	ShipmentElectronic ShipmentKind = "ELECTRONIC"
)

type ShipmentStatus string

const (
	ShipmentInventoryAssigned ShipmentStatus = "INVENTORY_ASSIGNED"
	ShipmentReleased          ShipmentStatus = "RELEASED"
	ShipmentShipped           ShipmentStatus = "SHIPPED"
	ShipmentCancelled         ShipmentStatus = "CANCELLED"
	ShipmentFailedOrder       ShipmentStatus = "FAILED_ORDER"
)

func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentShipped || s == ShipmentCancelled || s == ShipmentFailedOrder
}

type OrderSku struct {
	GUID              string
	SkuCode           string
	ProductType       string
	Quantity          int
	AllocatedQuantity int
	UnitPrice         decimal.Decimal
	Fields            map[string]string
	Ordering          int
}

func (s *OrderSku) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

func (s *OrderSku) IsGiftCertificate() bool {
	return s.ProductType == ProductTypeGiftCertificate
}

func (s *OrderSku) Field(name string) string {
	if s.Fields == nil {
		return ""
	}
	return s.Fields[name]
}

func (s *OrderSku) SetField(name, value string) {
	if value == "" {
		delete(s.Fields, name)
		return
	}
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[name] = value
}

type OrderShipment struct {
	Number       string
	Kind         ShipmentKind
	Status       ShipmentStatus
	Items        []*OrderSku
	ShippingCost decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	Warehouse    string
	TrackingCode string
	ShippedAt    *time.Time
	Ordering     int
	CreatedAt    time.Time
}

func (s *OrderShipment) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Total())
	}
	return total
}

// Total is always derived from the current lines plus shipping cost.
func (s *OrderShipment) Total() decimal.Decimal {
	return s.Subtotal().Add(s.ShippingCost)
}

// Payable is the amount that has to be authorized for the shipment.
func (s *OrderShipment) Payable() decimal.Decimal {
	return s.Total().Sub(s.Discount).Add(s.Tax)
}

func (s *OrderShipment) FindItem(guid string) *OrderSku {
	for _, item := range s.Items {
		if item.GUID == guid {
			return item
		}
	}
	return nil
}

func (s *OrderShipment) AddItem(item *OrderSku) {
	last := 0
	for _, it := range s.Items {
		last = max(last, it.Ordering)
	}
	item.Ordering = last + 1
	s.Items = append(s.Items, item)
}

func (s *OrderShipment) RemoveItem(guid string) *OrderSku {
	for n, item := range s.Items {
		if item.GUID == guid {
			s.Items = append(s.Items[:n], s.Items[n+1:]...)
			return item
		}
	}
	return nil
}

// IsModifiable reports whether lines may still be changed.
func (s *OrderShipment) IsModifiable() bool {
	return s.Kind == ShipmentPhysical && s.Status == ShipmentInventoryAssigned
}

// CheckModifiable returns a transition error when lines may not change.
func (s *OrderShipment) CheckModifiable() error {
	if !s.IsModifiable() {
		return s.transitionError("modify", ErrNotModifiable)
	}
	return nil
}

func (s *OrderShipment) IsCancellable() bool {
	return s.Status == ShipmentInventoryAssigned || s.Status == ShipmentReleased
}

func (s *OrderShipment) IsActive() bool {
	return s.Status != ShipmentCancelled && s.Status != ShipmentFailedOrder
}

func (s *OrderShipment) transitionError(op string, err error) error {
	return &TransitionError{Entity: "shipment", ID: s.Number, Op: op, From: string(s.Status), Err: err}
}

func (s *OrderShipment) Release() error {
	if s.Kind != ShipmentPhysical || s.Status != ShipmentInventoryAssigned {
		return s.transitionError("release", ErrIllegalTransition)
	}
	s.Status = ShipmentReleased
	return nil
}

// Ship completes the shipment. Physical shipments must be released first;
// electronic shipments ship straight from INVENTORY_ASSIGNED.
func (s *OrderShipment) Ship(trackingCode string, at time.Time) error {
	switch {
	case s.Kind == ShipmentPhysical && s.Status == ShipmentReleased:
	case s.Kind == ShipmentElectronic && s.Status == ShipmentInventoryAssigned:
	default:
		return s.transitionError("complete", ErrIllegalTransition)
	}
	s.Status = ShipmentShipped
	s.TrackingCode = trackingCode
	s.ShippedAt = &at
	return nil
}

func (s *OrderShipment) Cancel() error {
	if !s.IsCancellable() {
		return s.transitionError("cancel", ErrNotCancellable)
	}
	s.Status = ShipmentCancelled
	return nil
}

func (s *OrderShipment) failOrder() {
	if s.Status != ShipmentShipped {
		s.Status = ShipmentFailedOrder
	}
}
