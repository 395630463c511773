package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedOrder(captured string) (*entities.Order, *entities.OrderShipment) {
	o := newTestOrder(entities.ShipmentShipped)
	sh := o.Shipments[0]
	sh.AddItem(&entities.OrderSku{GUID: "a", SkuCode: "A", Quantity: 2, UnitPrice: decimal.NewFromInt(10)})
	sh.AddItem(&entities.OrderSku{GUID: "b", SkuCode: "B", Quantity: 1, UnitPrice: decimal.NewFromInt(5)})
	sh.AddItem(&entities.OrderSku{GUID: "gc", SkuCode: "GC-50", Quantity: 1, UnitPrice: decimal.Zero, ProductType: entities.ProductTypeGiftCertificate})
	sh.ShippingCost = decimal.NewFromInt(5)
	sh.Tax = decimal.RequireFromString("2.50")

	o.Payments = append(o.Payments, &entities.OrderPayment{
		TransactionType:   entities.TransactionCapture,
		Status:            entities.PaymentApproved,
		Amount:            decimal.RequireFromString(captured),
		ShipmentNumber:    sh.Number,
		AuthorizationCode: "A",
	})
	return o, sh
}

func refund(o *entities.Order, r *entities.OrderReturn) {
	o.Returns = append(o.Returns, r)
	o.Payments = append(o.Payments, &entities.OrderPayment{
		TransactionType:   entities.TransactionRefund,
		Status:            entities.PaymentApproved,
		Amount:            r.RefundAmount,
		ShipmentNumber:    r.ShipmentNumber,
		AuthorizationCode: "A",
	})
}

func TestOrder_NewReturn(t *testing.T) {
	o, sh := shippedOrder("32.50")

	first, err := o.NewReturn(sh, []entities.ReturnItem{{SkuGUID: "a", Quantity: 1}}, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, "11.00", first.RefundAmount.StringFixed(2))
	assert.Equal(t, []entities.ReturnItem{{SkuGUID: "a", SkuCode: "A", Quantity: 1}}, first.Items)
	refund(o, first)
	assert.Equal(t, "21.50", o.RefundableAmount(sh.Number).StringFixed(2))

	second, err := o.NewReturn(sh, []entities.ReturnItem{{SkuGUID: "a", Quantity: 1}, {SkuGUID: "b", Quantity: 1}}, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, "16.50", second.RefundAmount.StringFixed(2))
	refund(o, second)
	assert.Equal(t, 2, o.ReturnedQuantity("a"))
	assert.Equal(t, "5.00", o.RefundableAmount(sh.Number).StringFixed(2))

	_, err = o.NewReturn(sh, []entities.ReturnItem{{SkuGUID: "a", Quantity: 1}}, fixedTime)
	assert.ErrorIs(t, err, entities.ErrReturnQuantityExceeded)
}

func TestOrder_NewReturnRejections(t *testing.T) {
	testCases := []struct {
		name    string
		status  entities.ShipmentStatus
		items   []entities.ReturnItem
		wantErr error
	}{
		{"not shipped", entities.ShipmentInventoryAssigned, []entities.ReturnItem{{SkuGUID: "a", Quantity: 1}}, entities.ErrReturnNotAllowed},
		{"no items", entities.ShipmentShipped, nil, entities.ErrInvalidQuantity},
		{"zero quantity", entities.ShipmentShipped, []entities.ReturnItem{{SkuGUID: "a"}}, entities.ErrInvalidQuantity},
		{"unknown line", entities.ShipmentShipped, []entities.ReturnItem{{SkuGUID: "z", Quantity: 1}}, entities.ErrOrderSkuNotFound},
		{"gift certificate", entities.ShipmentShipped, []entities.ReturnItem{{SkuGUID: "gc", Quantity: 1}}, entities.ErrReturnNotAllowed},
		{
			"same line twice over shipped",
			entities.ShipmentShipped,
			[]entities.ReturnItem{{SkuGUID: "a", Quantity: 1}, {SkuGUID: "a", Quantity: 2}},
			entities.ErrReturnQuantityExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, sh := shippedOrder("32.50")
			sh.Status = tc.status

			_, err := o.NewReturn(sh, tc.items, fixedTime)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrder_NewReturnCappedByCapture(t *testing.T) {
	o, sh := shippedOrder("8")

	r, err := o.NewReturn(sh, []entities.ReturnItem{{SkuGUID: "a", Quantity: 1}}, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, "8.00", r.RefundAmount.StringFixed(2))
}
