package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	// SaveOrder upserts the whole order graph.
	SaveOrder(ctx context.Context, o *entities.Order) error
	// Inside a transaction both getters lock the order row.
	GetOrder(ctx context.Context, number string) (*entities.Order, error)
	GetOrderByShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error)
	FindOrders(ctx context.Context, criteria entities.OrderCriteria) ([]*entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	inventory *InventoryService
	payments  *PaymentService
	totals    TotalsCalculator
	events    EventPublisher
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cache Cache,
	inventory *InventoryService,
	payments *PaymentService,
	totals TotalsCalculator,
	events EventPublisher,
) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		inventory: inventory,
		payments:  payments,
		totals:    totals,
		events:    events,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		now: time.Now,
	}
}

func (s *OrderService) GetOrder(ctx context.Context, number string) (*entities.Order, error) {
	if data, ok := s.cache.Get(number); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return &order, nil
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached order", slog.String("order", number), slog.Any("error", err))
	}

	var order *entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, number)
		return err
	}
	if err := utils.Retry(s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return nil, err
	}

	s.store(ctx, order)
	return order, nil
}

func (s *OrderService) FindOrders(ctx context.Context, criteria entities.OrderCriteria) ([]*entities.Order, error) {
	orders, err := s.repo.FindOrders(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// WarmUpCache loads the latest orders into the cache.
func (s *OrderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.FindOrders(ctx, entities.OrderCriteria{Limit: count})
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, o := range orders {
		s.store(ctx, o)
	}
	s.logger.InfoContext(ctx, "order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// PlaceOrder persists a freshly checked out order.
func (s *OrderService) PlaceOrder(ctx context.Context, order *entities.Order) error {
	order.UpdatedAt = s.now()
	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	s.cache.Delete(order.Number)
	return nil
}

func (s *OrderService) HoldOrder(ctx context.Context, number string) (*entities.Order, error) {
	order, err := s.update(ctx, "hold", s.byNumber(number), func(ctx context.Context, o *entities.Order) error {
		return o.Hold()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewOrderEvent(entities.OrderEventOnHold, order, s.now()))
	return order, nil
}

func (s *OrderService) ReleaseHoldOnOrder(ctx context.Context, number string) (*entities.Order, error) {
	order, err := s.update(ctx, "release_hold", s.byNumber(number), func(ctx context.Context, o *entities.Order) error {
		return o.ReleaseHold()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewOrderEvent(entities.OrderEventReleased, order, s.now()))
	return order, nil
}

// CancelOrder deallocates every open shipment and reverses every open
// authorization before marking the order cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, number string) (*entities.Order, error) {
	order, err := s.update(ctx, "cancel", s.byNumber(number), s.cancelOrder)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewOrderEvent(entities.OrderEventCancelled, order, s.now()))
	return order, nil
}

func (s *OrderService) cancelOrder(ctx context.Context, o *entities.Order) error {
	if err := o.CheckCancellable(); err != nil {
		return err
	}
	for _, sh := range o.Shipments {
		if !sh.IsCancellable() {
			continue
		}
		if err := s.deallocate(ctx, sh); err != nil {
			return err
		}
	}
	if err := s.payments.ReverseAuthorizations(ctx, o, ""); err != nil {
		return err
	}
	return o.Cancel()
}

// CancelOrderShipment cancels one shipment. Cancelling the last active
// shipment cancels the whole order.
func (s *OrderService) CancelOrderShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error) {
	var cascaded bool
	order, err := s.update(ctx, "cancel_shipment", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		sh := o.Shipment(shipmentNumber)
		if !sh.IsCancellable() {
			return sh.Cancel()
		}
		if len(o.ActiveShipments()) == 1 {
			cascaded = true
			return s.cancelOrder(ctx, o)
		}

		if err := s.deallocate(ctx, sh); err != nil {
			return err
		}
		if err := s.payments.ReverseAuthorizations(ctx, o, sh.Number); err != nil {
			return err
		}
		if err := sh.Cancel(); err != nil {
			return err
		}
		o.RecomputeStatus()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewShipmentEvent(entities.ShipmentEventCancelled, order, order.Shipment(shipmentNumber), s.now()))
	if cascaded {
		s.publish(ctx, entities.NewOrderEvent(entities.OrderEventCancelled, order, s.now()))
	}
	return order, nil
}

// ReleaseShipment hands a shipment to the warehouse. Inventory is not
// touched; the authorization is renewed if the payable amount drifted.
func (s *OrderService) ReleaseShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error) {
	order, err := s.update(ctx, "release_shipment", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		if err := o.CheckFulfillable("release shipment"); err != nil {
			return err
		}
		sh := o.Shipment(shipmentNumber)
		if err := sh.Release(); err != nil {
			return err
		}
		if AuthorizedAmount(o, sh.Number).Equal(sh.Payable()) {
			return nil
		}
		return s.payments.ReauthorizeShipment(ctx, o, sh)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewShipmentEvent(entities.ShipmentEventReleased, order, order.Shipment(shipmentNumber), s.now()))
	return order, nil
}

// CompleteShipment ships the shipment, captures its payment and converts
// its allocations into on-hand decrements.
func (s *OrderService) CompleteShipment(ctx context.Context, shipmentNumber, trackingCode string) (*entities.Order, error) {
	order, err := s.update(ctx, "complete_shipment", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		return s.ship(ctx, o, shipmentNumber, trackingCode)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewShipmentEvent(entities.ShipmentEventCompleted, order, order.Shipment(shipmentNumber), s.now()))
	return order, nil
}

func (s *OrderService) ship(ctx context.Context, o *entities.Order, shipmentNumber, trackingCode string) error {
	if err := o.CheckFulfillable("complete shipment"); err != nil {
		return err
	}
	sh := o.Shipment(shipmentNumber)
	if err := sh.Ship(trackingCode, s.now()); err != nil {
		return err
	}
	if err := s.payments.CaptureShipment(ctx, o, sh.Number); err != nil {
		return err
	}
	for _, item := range sh.Items {
		if item.AllocatedQuantity == 0 {
			continue
		}
		if err := s.inventory.CompleteAllocation(ctx, item.SkuCode, sh.Warehouse, item.AllocatedQuantity, sh.Number); err != nil {
			return err
		}
		item.AllocatedQuantity = 0
	}
	o.RecomputeStatus()
	return nil
}

// shipElectronic completes the electronic shipments of a freshly placed
// order within the caller's transaction. It works on a copy: order stays as
// checked out so a failed checkout can still unwind it.
func (s *OrderService) shipElectronic(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if order.Status != entities.OrderInProgress {
		return order, nil
	}
	var electronic []string
	for _, sh := range order.Shipments {
		if sh.Kind == entities.ShipmentElectronic {
			electronic = append(electronic, sh.Number)
		}
	}
	if len(electronic) == 0 {
		return order, nil
	}

	o, err := order.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to copy order: %w", err)
	}
	for _, number := range electronic {
		if err := s.ship(ctx, o, number, ""); err != nil {
			return nil, fmt.Errorf("failed to complete electronic shipment %s: %w", number, err)
		}
	}
	if err := s.PlaceOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// AddOrderReturn takes goods back from a shipped shipment. Physical goods
// go back on hand and their share of the captured payment is refunded.
func (s *OrderService) AddOrderReturn(ctx context.Context, shipmentNumber string, items []entities.ReturnItem) (*entities.Order, error) {
	order, err := s.update(ctx, "add_return", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		sh := o.Shipment(shipmentNumber)
		ret, err := o.NewReturn(sh, items, s.now())
		if err != nil {
			return err
		}
		ret.GUID = uuid.NewString()

		if sh.Kind == entities.ShipmentPhysical {
			for _, it := range ret.Items {
				if err := s.inventory.Restock(ctx, it.SkuCode, sh.Warehouse, it.Quantity, sh.Number); err != nil {
					return err
				}
			}
		}
		if ret.RefundAmount.IsPositive() {
			if err := s.payments.RefundShipment(ctx, o, sh.Number, ret.RefundAmount); err != nil {
				return err
			}
		}
		o.Returns = append(o.Returns, ret)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, entities.NewShipmentEvent(entities.ShipmentEventReturned, order, order.Shipment(shipmentNumber), s.now()))
	return order, nil
}

// SplitShipment moves the given lines into a new shipment and
// re-authorizes both shipments.
func (s *OrderService) SplitShipment(ctx context.Context, shipmentNumber string, skuGUIDs []string) (*entities.Order, error) {
	return s.update(ctx, "split_shipment", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		if err := o.CheckFulfillable("split shipment"); err != nil {
			return err
		}
		src := o.Shipment(shipmentNumber)
		if err := src.CheckModifiable(); err != nil {
			return err
		}
		if len(skuGUIDs) == 0 || len(skuGUIDs) >= len(src.Items) {
			return entities.ErrInvalidSplit
		}

		ordering := o.NextShipmentOrdering()
		dst := &entities.OrderShipment{
			Number:       fmt.Sprintf("%s-%d", o.Number, ordering),
			Kind:         src.Kind,
			Status:       entities.ShipmentInventoryAssigned,
			Warehouse:    src.Warehouse,
			ShippingCost: decimal.Zero,
			Ordering:     ordering,
			CreatedAt:    s.now(),
		}
		for _, guid := range skuGUIDs {
			item := src.RemoveItem(guid)
			if item == nil {
				return fmt.Errorf("%s in shipment %s: %w", guid, src.Number, entities.ErrOrderSkuNotFound)
			}
			dst.AddItem(item)
		}
		o.Shipments = append(o.Shipments, dst)
		if err := s.retotal(ctx, o, src, dst); err != nil {
			return err
		}

		codes, template := PaymentSources(o, src.Number)
		if err := s.payments.ReauthorizeShipment(ctx, o, src); err != nil {
			return err
		}
		return s.payments.AuthorizeShipment(ctx, o, dst, codes, template)
	})
}

// UpdateShipmentItemQuantity changes a line on an unreleased shipment,
// adjusts its allocation and re-authorizes the shipment.
func (s *OrderService) UpdateShipmentItemQuantity(ctx context.Context, shipmentNumber, skuGUID string, quantity int) (*entities.Order, error) {
	if quantity <= 0 {
		return nil, entities.ErrInvalidQuantity
	}
	return s.update(ctx, "update_shipment_item", s.byShipment(shipmentNumber), func(ctx context.Context, o *entities.Order) error {
		if err := o.CheckFulfillable("modify shipment"); err != nil {
			return err
		}
		sh := o.Shipment(shipmentNumber)
		if err := sh.CheckModifiable(); err != nil {
			return err
		}
		item := sh.FindItem(skuGUID)
		if item == nil {
			return entities.ErrOrderSkuNotFound
		}

		delta := quantity - item.Quantity
		switch {
		case delta > 0:
			allocated, err := s.inventory.Allocate(ctx, item.SkuCode, sh.Warehouse, delta, sh.Number)
			if err != nil {
				return err
			}
			item.AllocatedQuantity += allocated
		case delta < 0 && item.AllocatedQuantity > 0:
			release := min(-delta, item.AllocatedQuantity)
			if err := s.inventory.Deallocate(ctx, item.SkuCode, sh.Warehouse, release, sh.Number); err != nil {
				return err
			}
			item.AllocatedQuantity -= release
		}
		item.Quantity = quantity
		if err := s.retotal(ctx, o, sh); err != nil {
			return err
		}

		return s.payments.ReauthorizeShipment(ctx, o, sh)
	})
}

// retotal recomputes discount and tax of the given shipments only; the
// totals of other shipments are left as they were charged.
func (s *OrderService) retotal(ctx context.Context, o *entities.Order, shipments ...*entities.OrderShipment) error {
	view := *o
	view.Shipments = shipments
	if err := s.totals.Calculate(ctx, &view, nil); err != nil {
		return fmt.Errorf("failed to calculate totals: %w", err)
	}
	return nil
}

func (s *OrderService) deallocate(ctx context.Context, sh *entities.OrderShipment) error {
	for _, item := range sh.Items {
		if item.AllocatedQuantity == 0 {
			continue
		}
		if err := s.inventory.Deallocate(ctx, item.SkuCode, sh.Warehouse, item.AllocatedQuantity, sh.Number); err != nil {
			return err
		}
		item.AllocatedQuantity = 0
	}
	return nil
}

type orderLoader func(ctx context.Context) (*entities.Order, error)

func (s *OrderService) byNumber(number string) orderLoader {
	return func(ctx context.Context) (*entities.Order, error) {
		return s.repo.GetOrder(ctx, number)
	}
}

func (s *OrderService) byShipment(shipmentNumber string) orderLoader {
	return func(ctx context.Context) (*entities.Order, error) {
		o, err := s.repo.GetOrderByShipment(ctx, shipmentNumber)
		if err != nil {
			return nil, err
		}
		if o.Shipment(shipmentNumber) == nil {
			return nil, entities.ErrShipmentNotFound
		}
		return o, nil
	}
}

// update re-reads the order inside one transaction, applies fn and saves
// the result. The cached copy is dropped once the transaction commits.
func (s *OrderService) update(ctx context.Context, op string, load orderLoader, fn func(ctx context.Context, o *entities.Order) error) (*entities.Order, error) {
	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := load(ctx)
		if err != nil {
			return err
		}
		if err := fn(ctx, o); err != nil {
			return err
		}
		o.UpdatedAt = s.now()
		if err := s.repo.SaveOrder(ctx, o); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		order = o
		return nil
	})
	if err != nil {
		orderTransitions.WithLabelValues(op, entities.KindOf(err).String()).Inc()
		s.logger.DebugContext(ctx, "order operation rejected", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	orderTransitions.WithLabelValues(op, "ok").Inc()
	s.cache.Delete(order.Number)
	s.logger.InfoContext(ctx, "order updated", slog.String("op", op), slog.String("order", order.Number), slog.String("status", string(order.Status)))
	return order, nil
}

func (s *OrderService) store(ctx context.Context, order *entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order", slog.String("order", order.Number), slog.Any("error", err))
		return
	}
	s.cache.Set(order.Number, data)
}

// publish is best effort: the change is already committed.
func (s *OrderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order", event.OrderNumber),
			slog.Any("error", err),
		)
	}
}
