package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderReturn records goods sent back from a shipped shipment and the
// amount refunded for them.
type OrderReturn struct {
	GUID           string
	ShipmentNumber string
	Items          []ReturnItem
	RefundAmount   decimal.Decimal
	CreatedAt      time.Time
}

type ReturnItem struct {
	SkuGUID  string
	SkuCode  string
	Quantity int
}

// ReturnedQuantity sums what all returns took back of one order line.
func (o *Order) ReturnedQuantity(skuGUID string) int {
	n := 0
	for _, r := range o.Returns {
		for _, it := range r.Items {
			if it.SkuGUID == skuGUID {
				n += it.Quantity
			}
		}
	}
	return n
}

// Captures returns the approved captures of a shipment in the order they were taken.
func (o *Order) Captures(shipmentNumber string) []*OrderPayment {
	var out []*OrderPayment
	for _, p := range o.Payments {
		if p.IsApproved(TransactionCapture) && p.ShipmentNumber == shipmentNumber {
			out = append(out, p)
		}
	}
	return out
}

// Refunded sums the approved refunds against one authorization.
func (o *Order) Refunded(authCode string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Payments {
		if p.IsApproved(TransactionRefund) && p.AuthorizationCode == authCode {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// RefundableAmount is what was captured for the shipment and not refunded yet.
func (o *Order) RefundableAmount(shipmentNumber string) decimal.Decimal {
	total := decimal.Zero
	for _, c := range o.Captures(shipmentNumber) {
		total = total.Add(c.Amount).Sub(o.Refunded(c.AuthorizationCode))
	}
	return total
}

// NewReturn validates a return against a shipped shipment and prices it.
// A line can be returned up to its shipped quantity over all returns.
// The refund is the value of the returned lines plus their share of the
// shipment's tax net of discount, capped by what is still refundable.
// Shipping is not refunded.
func (o *Order) NewReturn(sh *OrderShipment, items []ReturnItem, at time.Time) (*OrderReturn, error) {
	if sh.Status != ShipmentShipped {
		return nil, sh.transitionError("return goods", ErrReturnNotAllowed)
	}
	if len(items) == 0 {
		return nil, ErrInvalidQuantity
	}

	r := &OrderReturn{ShipmentNumber: sh.Number, CreatedAt: at}
	requested := make(map[string]int, len(items))
	value := decimal.Zero

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		line := sh.FindItem(it.SkuGUID)
		if line == nil {
			return nil, fmt.Errorf("%s in shipment %s: %w", it.SkuGUID, sh.Number, ErrOrderSkuNotFound)
		}
		if line.IsGiftCertificate() {
			return nil, fmt.Errorf("gift certificate %s was already issued: %w", line.SkuCode, ErrReturnNotAllowed)
		}

		requested[it.SkuGUID] += it.Quantity
		if returned := o.ReturnedQuantity(it.SkuGUID) + requested[it.SkuGUID]; returned > line.Quantity {
			return nil, fmt.Errorf("%d of %s shipped, %d returned: %w", line.Quantity, line.SkuCode, returned, ErrReturnQuantityExceeded)
		}

		r.Items = append(r.Items, ReturnItem{SkuGUID: line.GUID, SkuCode: line.SkuCode, Quantity: it.Quantity})
		value = value.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	refund := value
	if subtotal := sh.Subtotal(); subtotal.IsPositive() {
		refund = refund.Add(sh.Tax.Sub(sh.Discount).Mul(value).Div(subtotal))
	}
	r.RefundAmount = decimal.Min(refund.Round(2), o.RefundableAmount(sh.Number))
	if r.RefundAmount.IsNegative() {
		r.RefundAmount = decimal.Zero
	}
	return r, nil
}
