package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderInProgress       OrderStatus = "IN_PROGRESS"
	OrderOnHold           OrderStatus = "ONHOLD"
	OrderAwaitingExchange OrderStatus = "AWAITING_EXCHANGE"
	OrderPartiallyShipped OrderStatus = "PARTIALLY_SHIPPED"
	OrderCancelled        OrderStatus = "CANCELLED"
	OrderCompleted        OrderStatus = "COMPLETED"
	OrderFailed           OrderStatus = "FAILED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCancelled || s == OrderCompleted || s == OrderFailed
}

type Order struct {
	Number        string
	Status        OrderStatus
	CustomerID    string
	StoreCode     string
	Currency      string
	CartOrderGUID string
	Exchange      bool

	Shipments []*OrderShipment
	Payments  []*OrderPayment
	Returns   []*OrderReturn

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderCriteria struct {
	Status       OrderStatus
	CustomerID   string
	StoreCode    string
	CreatedAfter time.Time
	Limit        int
}

func (o *Order) transitionError(op string, err error) error {
	return &TransitionError{Entity: "order", ID: o.Number, Op: op, From: string(o.Status), Err: err}
}

func (o *Order) Shipment(number string) *OrderShipment {
	for _, s := range o.Shipments {
		if s.Number == number {
			return s
		}
	}
	return nil
}

func (o *Order) ActiveShipments() []*OrderShipment {
	var out []*OrderShipment
	for _, s := range o.Shipments {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, s := range o.Shipments {
		total = total.Add(s.Payable())
	}
	return total
}

func (o *Order) Skus() []*OrderSku {
	var out []*OrderSku
	for _, s := range o.Shipments {
		out = append(out, s.Items...)
	}
	return out
}

// CheckFulfillable rejects shipment operations on held or closed orders.
func (o *Order) CheckFulfillable(op string) error {
	if o.Status != OrderInProgress && o.Status != OrderPartiallyShipped {
		return o.transitionError(op, ErrIllegalTransition)
	}
	return nil
}

func (o *Order) CheckCancellable() error {
	if !o.IsCancellable() {
		return o.transitionError("cancel", ErrNotCancellable)
	}
	return nil
}

func (o *Order) NextShipmentOrdering() int {
	last := 0
	for _, s := range o.Shipments {
		last = max(last, s.Ordering)
	}
	return last + 1
}

func (o *Order) IsHoldable() bool {
	return o.Status == OrderInProgress
}

// IsCancellable is true while the order is open and nothing has shipped yet.
func (o *Order) IsCancellable() bool {
	switch o.Status {
	case OrderInProgress, OrderOnHold, OrderAwaitingExchange:
	default:
		return false
	}
	for _, s := range o.Shipments {
		if s.Status == ShipmentShipped {
			return false
		}
	}
	return true
}

func (o *Order) Hold() error {
	if !o.IsHoldable() {
		return o.transitionError("hold", ErrIllegalTransition)
	}
	o.Status = OrderOnHold
	return nil
}

func (o *Order) ReleaseHold() error {
	if o.Status != OrderOnHold && o.Status != OrderAwaitingExchange {
		return o.transitionError("release hold", ErrIllegalTransition)
	}
	o.Status = OrderInProgress
	o.RecomputeStatus()
	return nil
}

func (o *Order) AwaitExchange() error {
	if o.Status != OrderInProgress {
		return o.transitionError("await exchange", ErrIllegalTransition)
	}
	o.Status = OrderAwaitingExchange
	return nil
}

// Cancel cancels every cancellable shipment and the order itself.
func (o *Order) Cancel() error {
	if err := o.CheckCancellable(); err != nil {
		return err
	}
	for _, s := range o.Shipments {
		if s.IsCancellable() {
			s.Status = ShipmentCancelled
		}
	}
	o.Status = OrderCancelled
	return nil
}

// Fail marks an order that never completed checkout.
func (o *Order) Fail() error {
	if o.Status != OrderInProgress && o.Status != OrderAwaitingExchange {
		return o.transitionError("fail", ErrIllegalTransition)
	}
	for _, s := range o.Shipments {
		s.failOrder()
	}
	o.Status = OrderFailed
	return nil
}

// RecomputeStatus derives the order status from its shipments. Held,
// awaiting-exchange and terminal orders keep their status.
func (o *Order) RecomputeStatus() {
	switch o.Status {
	case OrderInProgress, OrderPartiallyShipped:
	default:
		return
	}

	active := o.ActiveShipments()
	if len(active) == 0 {
		if len(o.Shipments) > 0 {
			o.Status = OrderCancelled
		}
		return
	}

	shipped := 0
	for _, s := range active {
		if s.Status == ShipmentShipped {
			shipped++
		}
	}
	switch {
	case shipped == len(active):
		o.Status = OrderCompleted
	case shipped > 0:
		o.Status = OrderPartiallyShipped
	default:
		o.Status = OrderInProgress
	}
}

// AuthorizationState summarises the ledger entries that follow an authorization.
type AuthorizationState struct {
	Captured bool
	Reversed bool
}

func (o *Order) authorizationStates() map[string]AuthorizationState {
	states := make(map[string]AuthorizationState)
	for _, p := range o.Payments {
		if p.Status != PaymentApproved || p.AuthorizationCode == "" {
			continue
		}
		st := states[p.AuthorizationCode]
		switch p.TransactionType {
		case TransactionCapture:
			st.Captured = true
		case TransactionReverseAuthorization:
			st.Reversed = true
		}
		states[p.AuthorizationCode] = st
	}
	return states
}

// OpenAuthorizations returns approved authorizations that were neither
// captured nor reversed. An empty shipmentNumber matches every payment.
func (o *Order) OpenAuthorizations(shipmentNumber string) []*OrderPayment {
	states := o.authorizationStates()
	var out []*OrderPayment
	for _, p := range o.Payments {
		if !p.IsApproved(TransactionAuthorization) {
			continue
		}
		if shipmentNumber != "" && p.ShipmentNumber != shipmentNumber {
			continue
		}
		st := states[p.AuthorizationCode]
		if st.Captured || st.Reversed {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (o *Order) AuthorizationState(code string) AuthorizationState {
	return o.authorizationStates()[code]
}

func (o *Order) AddPayment(p OrderPayment) *OrderPayment {
	o.Payments = append(o.Payments, &p)
	return &p
}
