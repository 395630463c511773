package entities

import "time"

type AvailabilityCriteria string

const (
	AlwaysAvailable      AvailabilityCriteria = "ALWAYS_AVAILABLE"
	AvailableWhenInStock AvailabilityCriteria = "AVAILABLE_WHEN_IN_STOCK"
	Backorder            AvailabilityCriteria = "BACKORDER"
)

type InventoryEventType string

const (
	EventStockAdjustment   InventoryEventType = "STOCK_ADJUSTMENT"
	EventAllocation        InventoryEventType = "ALLOCATION"
	EventDeallocation      InventoryEventType = "DEALLOCATION"
	EventShipmentCompleted InventoryEventType = "ORDER_SHIPMENT_COMPLETED"
	EventReturn            InventoryEventType = "ORDER_RETURN"
)

type InventoryKey struct {
	SkuCode   string
	Warehouse string
}

type InventoryRecord struct {
	SkuCode   string
	Warehouse string
	OnHand    int
	Allocated int
	Criteria  AvailabilityCriteria
	Version   int64
}

func (r InventoryRecord) Key() InventoryKey {
	return InventoryKey{SkuCode: r.SkuCode, Warehouse: r.Warehouse}
}

func (r InventoryRecord) Available() int {
	return r.OnHand - r.Allocated
}

// Tracked reports whether allocations touch the record at all.
func (r InventoryRecord) Tracked() bool {
	return r.Criteria != AlwaysAvailable
}

// InventoryCommand is a signed change to a record. Quantity is a signed
// on-hand delta for STOCK_ADJUSTMENT and a positive amount otherwise.
type InventoryCommand struct {
	Event     InventoryEventType
	SkuCode   string
	Warehouse string
	Quantity  int
	Reference string
}

func (c InventoryCommand) Key() InventoryKey {
	return InventoryKey{SkuCode: c.SkuCode, Warehouse: c.Warehouse}
}

// Deltas returns the on-hand and allocated changes the command produces.
func (c InventoryCommand) Deltas() (onHand, allocated int) {
	switch c.Event {
	case EventStockAdjustment:
		return c.Quantity, 0
	case EventAllocation:
		return 0, c.Quantity
	case EventDeallocation:
		return 0, -c.Quantity
	case EventShipmentCompleted:
		return -c.Quantity, -c.Quantity
	case EventReturn:
		return c.Quantity, 0
	}
	return 0, 0
}

// Apply returns the record produced by cmd. The receiver is never modified.
func (r InventoryRecord) Apply(cmd InventoryCommand) (InventoryRecord, error) {
	if cmd.Event != EventStockAdjustment && cmd.Quantity <= 0 {
		return r, ErrInvalidQuantity
	}

	onHand, allocated := cmd.Deltas()
	next := r
	next.OnHand += onHand
	next.Allocated += allocated

	switch cmd.Event {
	case EventStockAdjustment:
		if cmd.Quantity == 0 {
			return r, ErrInvalidQuantity
		}
		if next.OnHand < 0 && r.Criteria != Backorder {
			return r, ErrNegativeInventory
		}
		if r.Criteria == AvailableWhenInStock && next.Allocated > next.OnHand {
			return r, ErrInsufficientInventory
		}
	case EventAllocation:
		if r.Criteria == AvailableWhenInStock && r.Available() < cmd.Quantity {
			return r, ErrInsufficientInventory
		}
	case EventDeallocation, EventShipmentCompleted:
		if next.Allocated < 0 {
			return r, ErrNegativeInventory
		}
	case EventReturn:
	default:
		return r, newError(KindValidation, "unknown inventory event "+string(cmd.Event))
	}

	next.Version++
	return next, nil
}

type InventoryAudit struct {
	ID             int64
	SkuCode        string
	Warehouse      string
	Event          InventoryEventType
	OnHandDelta    int
	AllocatedDelta int
	Reference      string
	CreatedAt      time.Time
}

func NewInventoryAudit(cmd InventoryCommand, at time.Time) InventoryAudit {
	onHand, allocated := cmd.Deltas()
	return InventoryAudit{
		SkuCode:        cmd.SkuCode,
		Warehouse:      cmd.Warehouse,
		Event:          cmd.Event,
		OnHandDelta:    onHand,
		AllocatedDelta: allocated,
		Reference:      cmd.Reference,
		CreatedAt:      at,
	}
}
