package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalsCalculator applies promotions and tax to the shipments of an order.
// cart is nil when shipments of a placed order are re-totalled.
type TotalsCalculator interface {
	Calculate(ctx context.Context, order *entities.Order, cart *entities.ShoppingCart) error
}

// FlatTaxCalculator charges one tax rate on each shipment and grants no discounts.
type FlatTaxCalculator struct {
	Rate decimal.Decimal
}

func (c FlatTaxCalculator) Calculate(_ context.Context, order *entities.Order, _ *entities.ShoppingCart) error {
	for _, sh := range order.Shipments {
		sh.Discount = decimal.Zero
		sh.Tax = sh.Subtotal().Mul(c.Rate).Round(2)
	}
	return nil
}

// newOrderNumber returns 12 upper-case hex digits.
func newOrderNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// DefaultCheckoutActions returns the standard pipeline.
func DefaultCheckoutActions(
	catalog Catalog,
	inventory *InventoryService,
	totals TotalsCalculator,
	giftCertificates *GiftCertificateService,
	payments *PaymentService,
) []CheckoutAction {
	return []CheckoutAction{
		NewValidateCartAction(catalog, inventory),
		NewPopulateOrderAction(newOrderNumber, time.Now),
		NewAdjustTotalsAction(totals),
		NewAllocateInventoryAction(inventory),
		NewCreateGiftCertificatesAction(giftCertificates),
		NewAuthorizePaymentAction(payments),
	}
}

// ValidateCartAction checks the cart can be ordered. It has no side effects.
type ValidateCartAction struct {
	catalog   Catalog
	inventory *InventoryService
}

func NewValidateCartAction(catalog Catalog, inventory *InventoryService) *ValidateCartAction {
	return &ValidateCartAction{catalog: catalog, inventory: inventory}
}

func (a *ValidateCartAction) Name() string { return "validate-cart" }

func (a *ValidateCartAction) Execute(ctx context.Context, cc *CheckoutContext) error {
	cart := cc.Cart
	if len(cart.Items) == 0 {
		return entities.ErrEmptyCart
	}
	if cart.CompletedOrderNumber != "" {
		return entities.ErrCartAlreadyCheckedOut
	}

	// Running totals per SKU so two lines of the same SKU are checked together.
	requested := make(map[string]int)
	for _, line := range cart.LeafLines() {
		sku, err := a.catalog.ResolveSku(ctx, line.Item.SkuCode)
		if err != nil {
			return fmt.Errorf("failed to resolve sku %s: %w", line.Item.SkuCode, err)
		}
		if !sku.PurchasableIn(cart.StoreCode) {
			return fmt.Errorf("sku %s: %w", sku.Code, entities.ErrProductNotPurchasable)
		}
		if line.Quantity <= 0 {
			return entities.ErrInvalidQuantity
		}
		if sku.MinOrderQty > 0 && line.Quantity < sku.MinOrderQty {
			return fmt.Errorf("sku %s needs at least %d: %w", sku.Code, sku.MinOrderQty, entities.ErrMinOrderQty)
		}
		cc.Skus[sku.Code] = sku

		if !sku.Shippable {
			continue
		}
		requested[sku.Code] += line.Quantity

		rec, err := a.inventory.GetInventory(ctx, sku.Code, cart.Warehouse)
		if err != nil {
			if errors.Is(err, entities.ErrInventoryNotFound) {
				return fmt.Errorf("sku %s at %s: %w", sku.Code, cart.Warehouse, entities.ErrInsufficientInventory)
			}
			return err
		}
		if rec.Criteria == entities.AvailableWhenInStock && rec.Available() < requested[sku.Code] {
			return fmt.Errorf("sku %s at %s has %d available, %d requested: %w",
				sku.Code, cart.Warehouse, rec.Available(), requested[sku.Code], entities.ErrInsufficientInventory)
		}
	}
	return nil
}

func (a *ValidateCartAction) Rollback(context.Context, *CheckoutContext) error { return nil }

// PopulateOrderAction builds the order: one physical shipment for shippable
// lines and one electronic shipment for everything else.
type PopulateOrderAction struct {
	newNumber func() string
	now       func() time.Time
}

func NewPopulateOrderAction(newNumber func() string, now func() time.Time) *PopulateOrderAction {
	return &PopulateOrderAction{newNumber: newNumber, now: now}
}

func (a *PopulateOrderAction) Name() string { return "populate-order" }

func (a *PopulateOrderAction) Execute(_ context.Context, cc *CheckoutContext) error {
	cart := cc.Cart
	now := a.now()
	order := &entities.Order{
		Number:        a.newNumber(),
		Status:        entities.OrderInProgress,
		CustomerID:    cart.ShopperID,
		StoreCode:     cart.StoreCode,
		Currency:      cart.Currency,
		CartOrderGUID: cart.GUID,
		Exchange:      cc.Exchange,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var physical, electronic *entities.OrderShipment
	newShipment := func(kind entities.ShipmentKind) *entities.OrderShipment {
		ordering := order.NextShipmentOrdering()
		sh := &entities.OrderShipment{
			Number:    fmt.Sprintf("%s-%d", order.Number, ordering),
			Kind:      kind,
			Status:    entities.ShipmentInventoryAssigned,
			Warehouse: cart.Warehouse,
			Ordering:  ordering,
			CreatedAt: now,
		}
		order.Shipments = append(order.Shipments, sh)
		return sh
	}

	for _, line := range cart.LeafLines() {
		shippable := line.Item.Shippable
		if sku, ok := cc.Skus[line.Item.SkuCode]; ok {
			shippable = sku.Shippable
		}

		var sh *entities.OrderShipment
		if shippable {
			if physical == nil {
				physical = newShipment(entities.ShipmentPhysical)
				physical.ShippingCost = cart.ShippingCost
			}
			sh = physical
		} else {
			if electronic == nil {
				electronic = newShipment(entities.ShipmentElectronic)
			}
			sh = electronic
		}

		sh.AddItem(&entities.OrderSku{
			GUID:        uuid.NewString(),
			SkuCode:     line.Item.SkuCode,
			ProductType: line.Item.ProductType,
			Quantity:    line.Quantity,
			UnitPrice:   line.Item.UnitPrice(),
			Fields:      maps.Clone(line.Item.Fields),
		})
	}

	if len(order.Shipments) == 0 {
		return entities.ErrEmptyCart
	}
	if cc.Exchange {
		if err := order.AwaitExchange(); err != nil {
			return err
		}
	}
	cc.Order = order
	return nil
}

// Rollback keeps the order so that it can be recorded as FAILED.
func (a *PopulateOrderAction) Rollback(context.Context, *CheckoutContext) error { return nil }

type AdjustTotalsAction struct {
	calculator TotalsCalculator
}

func NewAdjustTotalsAction(calculator TotalsCalculator) *AdjustTotalsAction {
	return &AdjustTotalsAction{calculator: calculator}
}

func (a *AdjustTotalsAction) Name() string { return "adjust-totals" }

func (a *AdjustTotalsAction) Execute(ctx context.Context, cc *CheckoutContext) error {
	if err := a.calculator.Calculate(ctx, cc.Order, cc.Cart); err != nil {
		return fmt.Errorf("failed to calculate totals: %w", err)
	}
	return nil
}

func (a *AdjustTotalsAction) Rollback(_ context.Context, cc *CheckoutContext) error {
	if cc.Order == nil {
		return nil
	}
	for _, sh := range cc.Order.Shipments {
		sh.Discount = decimal.Zero
		sh.Tax = decimal.Zero
	}
	return nil
}

// AllocateInventoryAction reserves stock for every physical line. Lines
// record what they allocated so rollback releases exactly that.
type AllocateInventoryAction struct {
	inventory *InventoryService
}

func NewAllocateInventoryAction(inventory *InventoryService) *AllocateInventoryAction {
	return &AllocateInventoryAction{inventory: inventory}
}

func (a *AllocateInventoryAction) Name() string { return "allocate-inventory" }

func (a *AllocateInventoryAction) Execute(ctx context.Context, cc *CheckoutContext) error {
	for _, sh := range cc.Order.Shipments {
		if sh.Kind != entities.ShipmentPhysical {
			continue
		}
		for _, item := range sh.Items {
			allocated, err := a.inventory.Allocate(ctx, item.SkuCode, sh.Warehouse, item.Quantity, sh.Number)
			if err != nil {
				return err
			}
			item.AllocatedQuantity = allocated
		}
	}
	return nil
}

func (a *AllocateInventoryAction) Rollback(ctx context.Context, cc *CheckoutContext) error {
	if cc.Order == nil {
		return nil
	}
	var errs []error
	for _, sh := range cc.Order.Shipments {
		for _, item := range sh.Items {
			if item.AllocatedQuantity == 0 {
				continue
			}
			if err := a.inventory.Deallocate(ctx, item.SkuCode, sh.Warehouse, item.AllocatedQuantity, sh.Number); err != nil {
				errs = append(errs, err)
				continue
			}
			item.AllocatedQuantity = 0
		}
	}
	return errors.Join(errs...)
}

// CreateGiftCertificatesAction issues a certificate for every purchased
// gift certificate line and stores its code on the line.
type CreateGiftCertificatesAction struct {
	giftCertificates *GiftCertificateService
}

func NewCreateGiftCertificatesAction(giftCertificates *GiftCertificateService) *CreateGiftCertificatesAction {
	return &CreateGiftCertificatesAction{giftCertificates: giftCertificates}
}

func (a *CreateGiftCertificatesAction) Name() string { return "create-gift-certificates" }

func (a *CreateGiftCertificatesAction) Execute(ctx context.Context, cc *CheckoutContext) error {
	for _, item := range cc.Order.Skus() {
		if !item.IsGiftCertificate() || item.Field(entities.FieldGiftCertificateCode) != "" {
			continue
		}
		gc, err := a.giftCertificates.CreateGiftCertificate(ctx, entities.GiftCertificate{
			OriginalBalance: item.Total(),
			Currency:        cc.Order.Currency,
			PurchaserEmail:  item.Field(entities.FieldSenderEmail),
			RecipientName:   item.Field(entities.FieldRecipientName),
			RecipientEmail:  item.Field(entities.FieldRecipientEmail),
			OrderNumber:     cc.Order.Number,
		})
		if err != nil {
			return err
		}
		item.SetField(entities.FieldGiftCertificateCode, gc.Code)
	}
	return nil
}

func (a *CreateGiftCertificatesAction) Rollback(ctx context.Context, cc *CheckoutContext) error {
	if cc.Order == nil {
		return nil
	}
	var errs []error
	for _, item := range cc.Order.Skus() {
		code := item.Field(entities.FieldGiftCertificateCode)
		if !item.IsGiftCertificate() || code == "" {
			continue
		}
		if err := a.giftCertificates.RemoveGiftCertificate(ctx, code); err != nil {
			errs = append(errs, err)
			continue
		}
		item.SetField(entities.FieldGiftCertificateCode, "")
	}
	return errors.Join(errs...)
}

// AuthorizePaymentAction authorizes every shipment. Rollback reverses
// every approved authorization the order holds.
type AuthorizePaymentAction struct {
	payments *PaymentService
}

func NewAuthorizePaymentAction(payments *PaymentService) *AuthorizePaymentAction {
	return &AuthorizePaymentAction{payments: payments}
}

func (a *AuthorizePaymentAction) Name() string { return "authorize-payment" }

func (a *AuthorizePaymentAction) Execute(ctx context.Context, cc *CheckoutContext) error {
	for _, sh := range cc.Order.Shipments {
		if err := a.payments.AuthorizeShipment(ctx, cc.Order, sh, cc.Cart.GiftCertificateCodes, cc.TemplatePayment); err != nil {
			return err
		}
	}
	return nil
}

func (a *AuthorizePaymentAction) Rollback(ctx context.Context, cc *CheckoutContext) error {
	if cc.Order == nil {
		return nil
	}
	return a.payments.ReverseAuthorizations(ctx, cc.Order, "")
}
