package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(statuses ...entities.ShipmentStatus) *entities.Order {
	o := &entities.Order{Number: "o-1", Status: entities.OrderInProgress}
	for n, st := range statuses {
		o.Shipments = append(o.Shipments, &entities.OrderShipment{
			Number:   "o-1-" + string(rune('1'+n)),
			Kind:     entities.ShipmentPhysical,
			Status:   st,
			Ordering: n + 1,
		})
	}
	return o
}

func TestOrder_Transitions(t *testing.T) {
	testCases := []struct {
		name       string
		status     entities.OrderStatus
		shipments  []entities.ShipmentStatus
		op         func(o *entities.Order) error
		wantErr    error
		wantStatus entities.OrderStatus
	}{
		{
			name:       "hold in progress",
			status:     entities.OrderInProgress,
			op:         (*entities.Order).Hold,
			wantStatus: entities.OrderOnHold,
		},
		{
			name:       "hold on hold",
			status:     entities.OrderOnHold,
			op:         (*entities.Order).Hold,
			wantErr:    entities.ErrIllegalTransition,
			wantStatus: entities.OrderOnHold,
		},
		{
			name:       "release hold",
			status:     entities.OrderOnHold,
			shipments:  []entities.ShipmentStatus{entities.ShipmentInventoryAssigned},
			op:         (*entities.Order).ReleaseHold,
			wantStatus: entities.OrderInProgress,
		},
		{
			name:       "release exchange",
			status:     entities.OrderAwaitingExchange,
			shipments:  []entities.ShipmentStatus{entities.ShipmentInventoryAssigned},
			op:         (*entities.Order).ReleaseHold,
			wantStatus: entities.OrderInProgress,
		},
		{
			name:       "release in progress",
			status:     entities.OrderInProgress,
			op:         (*entities.Order).ReleaseHold,
			wantErr:    entities.ErrIllegalTransition,
			wantStatus: entities.OrderInProgress,
		},
		{
			name:       "cancel with shipped shipment",
			status:     entities.OrderPartiallyShipped,
			shipments:  []entities.ShipmentStatus{entities.ShipmentShipped, entities.ShipmentReleased},
			op:         (*entities.Order).Cancel,
			wantErr:    entities.ErrNotCancellable,
			wantStatus: entities.OrderPartiallyShipped,
		},
		{
			name:       "cancel on hold",
			status:     entities.OrderOnHold,
			shipments:  []entities.ShipmentStatus{entities.ShipmentInventoryAssigned},
			op:         (*entities.Order).Cancel,
			wantStatus: entities.OrderCancelled,
		},
		{
			name:       "cancel completed",
			status:     entities.OrderCompleted,
			op:         (*entities.Order).Cancel,
			wantErr:    entities.ErrNotCancellable,
			wantStatus: entities.OrderCompleted,
		},
		{
			name:       "fail in progress",
			status:     entities.OrderInProgress,
			shipments:  []entities.ShipmentStatus{entities.ShipmentInventoryAssigned},
			op:         (*entities.Order).Fail,
			wantStatus: entities.OrderFailed,
		},
		{
			name:       "fail cancelled",
			status:     entities.OrderCancelled,
			op:         (*entities.Order).Fail,
			wantErr:    entities.ErrIllegalTransition,
			wantStatus: entities.OrderCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder(tc.shipments...)
			o.Status = tc.status

			err := tc.op(o)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var te *entities.TransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, "o-1", te.ID)
				assert.Equal(t, string(tc.status), te.From)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, o.Status)
		})
	}
}

func TestOrder_CancelLeavesShipmentsUntouchedOnError(t *testing.T) {
	o := newTestOrder(entities.ShipmentShipped, entities.ShipmentReleased)
	o.Status = entities.OrderPartiallyShipped

	require.Error(t, o.Cancel())
	assert.Equal(t, entities.ShipmentReleased, o.Shipments[1].Status)
}

func TestOrder_FailMarksShipments(t *testing.T) {
	o := newTestOrder(entities.ShipmentInventoryAssigned, entities.ShipmentInventoryAssigned)

	require.NoError(t, o.Fail())
	for _, s := range o.Shipments {
		assert.Equal(t, entities.ShipmentFailedOrder, s.Status)
	}
}

func TestOrder_RecomputeStatus(t *testing.T) {
	testCases := []struct {
		name      string
		status    entities.OrderStatus
		shipments []entities.ShipmentStatus
		want      entities.OrderStatus
	}{
		{"all shipped", entities.OrderInProgress, []entities.ShipmentStatus{entities.ShipmentShipped, entities.ShipmentShipped}, entities.OrderCompleted},
		{"shipped and cancelled", entities.OrderInProgress, []entities.ShipmentStatus{entities.ShipmentShipped, entities.ShipmentCancelled}, entities.OrderCompleted},
		{"one of two shipped", entities.OrderInProgress, []entities.ShipmentStatus{entities.ShipmentShipped, entities.ShipmentReleased}, entities.OrderPartiallyShipped},
		{"one of two cancelled", entities.OrderInProgress, []entities.ShipmentStatus{entities.ShipmentCancelled, entities.ShipmentReleased}, entities.OrderInProgress},
		{"all cancelled", entities.OrderInProgress, []entities.ShipmentStatus{entities.ShipmentCancelled, entities.ShipmentCancelled}, entities.OrderCancelled},
		{"held order keeps status", entities.OrderOnHold, []entities.ShipmentStatus{entities.ShipmentShipped}, entities.OrderOnHold},
		{"failed order keeps status", entities.OrderFailed, []entities.ShipmentStatus{entities.ShipmentFailedOrder}, entities.OrderFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder(tc.shipments...)
			o.Status = tc.status
			o.RecomputeStatus()
			assert.Equal(t, tc.want, o.Status)
		})
	}
}

func TestOrder_OpenAuthorizations(t *testing.T) {
	o := newTestOrder(entities.ShipmentInventoryAssigned, entities.ShipmentInventoryAssigned)
	ten := decimal.NewFromInt(10)

	a1 := o.AddPayment(entities.OrderPayment{GUID: "p1", TransactionType: entities.TransactionAuthorization, Status: entities.PaymentApproved, Amount: ten, ShipmentNumber: "o-1-1", AuthorizationCode: "A1"})
	o.AddPayment(entities.OrderPayment{GUID: "p2", TransactionType: entities.TransactionAuthorization, Status: entities.PaymentApproved, Amount: ten, ShipmentNumber: "o-1-2", AuthorizationCode: "A2"})
	o.AddPayment(entities.OrderPayment{GUID: "p3", TransactionType: entities.TransactionAuthorization, Status: entities.PaymentFailed, Amount: ten, ShipmentNumber: "o-1-2", AuthorizationCode: ""})

	assert.Len(t, o.OpenAuthorizations(""), 2)
	assert.Len(t, o.OpenAuthorizations("o-1-2"), 1)

	o.AddPayment(a1.FollowOn(entities.TransactionReverseAuthorization))
	o.Payments[len(o.Payments)-1].Status = entities.PaymentApproved

	open := o.OpenAuthorizations("")
	require.Len(t, open, 1)
	assert.Equal(t, "A2", open[0].AuthorizationCode)
	assert.True(t, o.AuthorizationState("A1").Reversed)
	assert.False(t, o.AuthorizationState("A2").Captured)
}

func TestShipment_Transitions(t *testing.T) {
	now := time.Now()

	physical := &entities.OrderShipment{Number: "s", Kind: entities.ShipmentPhysical, Status: entities.ShipmentInventoryAssigned}
	require.ErrorIs(t, physical.Ship("trk", now), entities.ErrIllegalTransition)
	assert.Equal(t, entities.ShipmentInventoryAssigned, physical.Status)

	require.NoError(t, physical.Release())
	require.ErrorIs(t, physical.Release(), entities.ErrIllegalTransition)
	require.NoError(t, physical.Ship("trk", now))
	assert.Equal(t, "trk", physical.TrackingCode)
	require.ErrorIs(t, physical.Cancel(), entities.ErrNotCancellable)
	assert.Equal(t, entities.ShipmentShipped, physical.Status)

	electronic := &entities.OrderShipment{Number: "e", Kind: entities.ShipmentElectronic, Status: entities.ShipmentInventoryAssigned}
	require.ErrorIs(t, electronic.Release(), entities.ErrIllegalTransition)
	require.NoError(t, electronic.Ship("", now))
	assert.Equal(t, entities.ShipmentShipped, electronic.Status)
}

func TestShipment_Total(t *testing.T) {
	s := &entities.OrderShipment{ShippingCost: decimal.NewFromInt(5)}
	s.AddItem(&entities.OrderSku{GUID: "a", Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")})
	s.AddItem(&entities.OrderSku{GUID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(3)})

	assert.True(t, decimal.RequireFromString("29").Equal(s.Total()))
	assert.Equal(t, 2, s.Items[1].Ordering)

	s.RemoveItem("a")
	assert.True(t, decimal.NewFromInt(8).Equal(s.Total()))

	s.Discount = decimal.NewFromInt(1)
	s.Tax = decimal.RequireFromString("0.5")
	assert.True(t, decimal.RequireFromString("7.5").Equal(s.Payable()))
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	o := newTestOrder(entities.ShipmentInventoryAssigned)
	o.Shipments[0].AddItem(&entities.OrderSku{GUID: "a", SkuCode: "X", Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")})

	clone, err := o.Clone()
	require.NoError(t, err)
	clone.Shipments[0].Items[0].Quantity = 5

	assert.Equal(t, 1, o.Shipments[0].Items[0].Quantity)
	assert.True(t, o.Total().Equal(decimal.RequireFromString("9.99")))
}
