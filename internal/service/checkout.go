package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
)

// CheckoutContext is the state shared by the actions of one checkout.
type CheckoutContext struct {
	Cart            *entities.ShoppingCart
	TemplatePayment *entities.OrderPayment
	Exchange        bool

	// Skus holds the catalog entries resolved during validation.
	Skus  map[string]entities.SKU
	Order *entities.Order
}

// CheckoutAction is one reversible step. Rollback must be idempotent and
// must also undo a partially applied Execute.
type CheckoutAction interface {
	Name() string
	Execute(ctx context.Context, cc *CheckoutContext) error
	Rollback(ctx context.Context, cc *CheckoutContext) error
}

// CheckoutError is returned when an action failed and the pipeline was unwound.
type CheckoutError struct {
	Action      string
	OrderNumber string
	Err         error
	RollbackErr error
}

func (e *CheckoutError) Error() string {
	msg := fmt.Sprintf("checkout failed at %s: %s", e.Action, e.Err)
	if e.OrderNumber != "" {
		msg = fmt.Sprintf("checkout of order %s failed at %s: %s", e.OrderNumber, e.Action, e.Err)
	}
	if e.RollbackErr != nil {
		msg += fmt.Sprintf(" (rollback: %s)", e.RollbackErr)
	}
	return msg
}

func (e *CheckoutError) Unwrap() error { return e.Err }

type CheckoutService struct {
	logger        *slog.Logger
	txManager     trm.Manager
	carts         CartRepo
	orders        *OrderService
	events        EventPublisher
	actions       []CheckoutAction
	actionTimeout time.Duration
	now           func() time.Time
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	orders *OrderService,
	events EventPublisher,
	actionTimeout time.Duration,
	actions ...CheckoutAction,
) *CheckoutService {
	return &CheckoutService{
		logger:        logger.With(slog.String("service", "checkout")),
		txManager:     txManager,
		carts:         carts,
		orders:        orders,
		events:        events,
		actions:       actions,
		actionTimeout: actionTimeout,
		now:           time.Now,
	}
}

// Checkout runs the actions in order. When one fails, every action that
// ran, the failing one included, is rolled back in reverse order and the
// order built so far is persisted as FAILED.
func (s *CheckoutService) Checkout(
	ctx context.Context,
	cart *entities.ShoppingCart,
	template *entities.OrderPayment,
	exchange bool,
) (*entities.Order, error) {
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	cc := &CheckoutContext{
		Cart:            cart,
		TemplatePayment: template,
		Exchange:        exchange,
		Skus:            make(map[string]entities.SKU),
	}

	for n, action := range s.actions {
		if err := s.execute(ctx, action, cc); err != nil {
			return nil, s.fail(ctx, cc, s.actions[:n+1], action, err)
		}
	}

	order := cc.Order
	placed := order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.claimCart(ctx, cart, order.Number); err != nil {
			return err
		}
		if err := s.orders.PlaceOrder(ctx, order); err != nil {
			return err
		}
		completed, err := s.orders.shipElectronic(ctx, order)
		if err != nil {
			return err
		}
		placed = completed
		return nil
	})
	if err != nil {
		cart.CompletedOrderNumber = ""
		return nil, s.fail(ctx, cc, s.actions, persistStep{}, err)
	}

	checkoutsTotal.WithLabelValues("ok").Inc()
	s.logger.InfoContext(ctx, "order placed",
		slog.String("order", placed.Number),
		slog.String("cart", cart.GUID),
		slog.String("status", string(placed.Status)),
		slog.String("total", placed.Total().String()),
	)
	s.publish(ctx, entities.NewOrderEvent(entities.OrderEventPlaced, placed, s.now()))
	for _, sh := range placed.Shipments {
		if sh.Kind == entities.ShipmentElectronic && sh.Status == entities.ShipmentShipped {
			s.publish(ctx, entities.NewShipmentEvent(entities.ShipmentEventCompleted, placed, sh, s.now()))
		}
	}
	return placed, nil
}

// claimCart re-reads the cart under lock and marks it as checked out. A
// stale copy of a cart that already produced an order is rejected here.
func (s *CheckoutService) claimCart(ctx context.Context, cart *entities.ShoppingCart, orderNumber string) error {
	stored, err := s.carts.GetCart(ctx, cart.GUID)
	if err != nil {
		return fmt.Errorf("failed to lock cart: %w", err)
	}
	if stored.CompletedOrderNumber != "" {
		return fmt.Errorf("cart %s placed order %s: %w", cart.GUID, stored.CompletedOrderNumber, entities.ErrCartAlreadyCheckedOut)
	}
	cart.CompletedOrderNumber = orderNumber
	cart.UpdatedAt = s.now()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *CheckoutService) execute(ctx context.Context, action CheckoutAction, cc *CheckoutContext) error {
	if s.actionTimeout <= 0 {
		return action.Execute(ctx, cc)
	}
	ctx, cancel := context.WithTimeout(ctx, s.actionTimeout)
	defer cancel()

	err := action.Execute(ctx, cc)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && entities.KindOf(err) == entities.KindInternal {
		return fmt.Errorf("%s timed out: %w", action.Name(), errors.Join(err, entities.ErrGatewayTimeout))
	}
	return err
}

// fail unwinds executed in reverse order on a context that ignores the
// caller's cancellation, then records the order as FAILED.
func (s *CheckoutService) fail(ctx context.Context, cc *CheckoutContext, executed []CheckoutAction, failed CheckoutAction, cause error) error {
	checkoutsTotal.WithLabelValues("failed").Inc()
	checkoutRollbacks.WithLabelValues(failed.Name()).Inc()

	ctx = context.WithoutCancel(ctx)
	var rollbackErrs []error
	for i := len(executed) - 1; i >= 0; i-- {
		if err := executed[i].Rollback(ctx, cc); err != nil {
			s.logger.ErrorContext(ctx, "checkout rollback failed", slog.String("action", executed[i].Name()), slog.Any("error", err))
			rollbackErrs = append(rollbackErrs, fmt.Errorf("%s: %w", executed[i].Name(), err))
		}
	}

	cerr := &CheckoutError{Action: failed.Name(), Err: cause, RollbackErr: errors.Join(rollbackErrs...)}

	order := cc.Order
	if order == nil || len(order.Shipments) == 0 {
		s.logger.InfoContext(ctx, "checkout rejected", slog.String("cart", cc.Cart.GUID), slog.String("action", failed.Name()), slog.Any("error", cause))
		return cerr
	}

	cerr.OrderNumber = order.Number
	if err := order.Fail(); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark order failed", slog.String("order", order.Number), slog.Any("error", err))
		return cerr
	}
	if err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.orders.PlaceOrder(ctx, order)
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist failed order", slog.String("order", order.Number), slog.Any("error", err))
		return cerr
	}

	s.logger.WarnContext(ctx, "checkout failed",
		slog.String("order", order.Number),
		slog.String("action", failed.Name()),
		slog.Any("error", cause),
	)
	s.publish(ctx, entities.NewOrderEvent(entities.OrderEventFailed, order, s.now()))
	return cerr
}

func (s *CheckoutService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}
}

// persistStep names the final save in a CheckoutError; it has nothing to undo.
type persistStep struct{}

func (persistStep) Name() string                                     { return "persist-order" }
func (persistStep) Execute(context.Context, *CheckoutContext) error  { return nil }
func (persistStep) Rollback(context.Context, *CheckoutContext) error { return nil }
