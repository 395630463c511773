package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderEventPlaced       OrderEventType = "order.placed"
	OrderEventFailed       OrderEventType = "order.failed"
	OrderEventCancelled    OrderEventType = "order.cancelled"
	OrderEventOnHold       OrderEventType = "order.onhold"
	OrderEventReleased     OrderEventType = "order.released"
	ShipmentEventReleased  OrderEventType = "shipment.released"
	ShipmentEventCompleted OrderEventType = "shipment.completed"
	ShipmentEventCancelled OrderEventType = "shipment.cancelled"
	ShipmentEventReturned  OrderEventType = "shipment.returned"
)

// OrderEvent is published after a lifecycle change has been committed.
type OrderEvent struct {
	Type           OrderEventType
	OrderNumber    string
	ShipmentNumber string
	Status         string
	CustomerID     string
	StoreCode      string
	Total          decimal.Decimal
	Currency       string
	OccurredAt     time.Time
}

func NewOrderEvent(t OrderEventType, o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:        t,
		OrderNumber: o.Number,
		Status:      string(o.Status),
		CustomerID:  o.CustomerID,
		StoreCode:   o.StoreCode,
		Total:       o.Total(),
		Currency:    o.Currency,
		OccurredAt:  at,
	}
}

func NewShipmentEvent(t OrderEventType, o *Order, s *OrderShipment, at time.Time) OrderEvent {
	e := NewOrderEvent(t, o, at)
	e.ShipmentNumber = s.Number
	e.Status = string(s.Status)
	e.Total = s.Payable()
	return e
}
