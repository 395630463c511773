package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog resolves SKUs and prices. Pricing always receives an explicit context.
type Catalog interface {
	ResolveSku(ctx context.Context, code string) (entities.SKU, error)
	PriceFor(ctx context.Context, sku entities.SKU, currency string, pc entities.PriceContext) (entities.Price, error)
}

type ItemRequest struct {
	SkuCode      string
	Quantity     int
	Fields       map[string]string
	Constituents []ItemRequest
}

type CartDirector struct {
	catalog Catalog
	newGUID func() string
}

func NewCartDirector(catalog Catalog) *CartDirector {
	return &CartDirector{catalog: catalog, newGUID: uuid.NewString}
}

// AddItemToCart adds the requested SKU. Re-adding a non-bundle SKU with the
// same configuration bumps the quantity of the existing line in place.
func (d *CartDirector) AddItemToCart(ctx context.Context, cart *entities.ShoppingCart, req ItemRequest) (*entities.CartItem, error) {
	if req.Quantity <= 0 {
		return nil, entities.ErrInvalidQuantity
	}

	sku, err := d.resolve(ctx, cart, req.SkuCode)
	if err != nil {
		return nil, err
	}

	if sku.Bundle || len(req.Constituents) > 0 {
		root, err := d.newBundle(ctx, cart, sku, req)
		if err != nil {
			return nil, err
		}
		cart.AddItem(root)
		return root, nil
	}

	if existing := cart.FindByKey(entities.NewItemKey(sku.Code, req.Fields)); existing != nil {
		existing.Quantity += req.Quantity
		return existing, nil
	}

	item, err := d.newItem(ctx, cart, sku, req)
	if err != nil {
		return nil, err
	}
	cart.AddItem(item)
	return item, nil
}

// UpdateCartItem changes quantity and, when fields is not nil, the
// configuration of a line. Quantity zero removes the line. A line whose new
// configuration matches another line is merged into that line, which is
// returned instead.
func (d *CartDirector) UpdateCartItem(cart *entities.ShoppingCart, guid string, quantity int, fields map[string]string) (*entities.CartItem, error) {
	item := cart.FindByGUID(guid)
	if item == nil {
		return nil, entities.ErrCartItemNotFound
	}
	switch {
	case quantity < 0:
		return nil, entities.ErrInvalidQuantity
	case quantity == 0:
		cart.RemoveItem(guid)
		return nil, nil
	}

	if fields != nil && !item.Bundle {
		target := cart.FindByKey(entities.NewItemKey(item.SkuCode, fields))
		if target != nil && target.GUID != item.GUID {
			target.Quantity += quantity
			cart.RemoveItem(guid)
			return target, nil
		}
	}

	item.Quantity = quantity
	if fields != nil {
		item.Fields = maps.Clone(fields)
	}
	return item, nil
}

func (d *CartDirector) RemoveItem(cart *entities.ShoppingCart, guid string) error {
	if !cart.RemoveItem(guid) {
		return entities.ErrCartItemNotFound
	}
	return nil
}

// Refresh re-prices every line from the catalog. Lines whose SKU is gone,
// unpriced or no longer sellable are dropped and returned.
func (d *CartDirector) Refresh(ctx context.Context, cart *entities.ShoppingCart) ([]*entities.CartItem, error) {
	var dropped []*entities.CartItem
	kept := cart.Items[:0:0]

	for _, item := range cart.Items {
		err := d.reprice(ctx, cart, item)
		switch {
		case err == nil:
			kept = append(kept, item)
		case errors.Is(err, entities.ErrSkuNotFound),
			errors.Is(err, entities.ErrPriceNotFound),
			errors.Is(err, entities.ErrProductNotPurchasable):
			dropped = append(dropped, item)
		default:
			return nil, err
		}
	}

	cart.Items = kept
	return dropped, nil
}

func (d *CartDirector) reprice(ctx context.Context, cart *entities.ShoppingCart, item *entities.CartItem) error {
	sku, err := d.resolve(ctx, cart, item.SkuCode)
	if err != nil {
		return err
	}
	if item.Bundle {
		for _, child := range item.Children {
			if err := d.reprice(ctx, cart, child); err != nil {
				return err
			}
		}
		return nil
	}

	price, err := d.catalog.PriceFor(ctx, sku, cart.Currency, cart.PriceContext())
	if err != nil {
		return fmt.Errorf("failed to price %s: %w", sku.Code, err)
	}
	item.ListPrice = price.List
	item.SalePrice = price.Sale
	return nil
}

func (d *CartDirector) resolve(ctx context.Context, cart *entities.ShoppingCart, code string) (entities.SKU, error) {
	sku, err := d.catalog.ResolveSku(ctx, code)
	if err != nil {
		return entities.SKU{}, fmt.Errorf("failed to resolve sku %s: %w", code, err)
	}
	if !sku.PurchasableIn(cart.StoreCode) {
		return entities.SKU{}, fmt.Errorf("sku %s in store %s: %w", code, cart.StoreCode, entities.ErrProductNotPurchasable)
	}
	return sku, nil
}

func (d *CartDirector) newItem(ctx context.Context, cart *entities.ShoppingCart, sku entities.SKU, req ItemRequest) (*entities.CartItem, error) {
	price, err := d.catalog.PriceFor(ctx, sku, cart.Currency, cart.PriceContext())
	if err != nil {
		return nil, fmt.Errorf("failed to price %s: %w", sku.Code, err)
	}
	return &entities.CartItem{
		GUID:        d.newGUID(),
		SkuCode:     sku.Code,
		ProductType: sku.ProductType,
		Quantity:    req.Quantity,
		ListPrice:   price.List,
		SalePrice:   price.Sale,
		Fields:      maps.Clone(req.Fields),
		Shippable:   sku.Shippable,
	}, nil
}

func (d *CartDirector) newBundle(ctx context.Context, cart *entities.ShoppingCart, sku entities.SKU, req ItemRequest) (*entities.CartItem, error) {
	if len(req.Constituents) == 0 {
		return nil, fmt.Errorf("bundle %s has no constituents: %w", sku.Code, entities.ErrInvalidQuantity)
	}

	root := &entities.CartItem{
		GUID:        d.newGUID(),
		SkuCode:     sku.Code,
		ProductType: sku.ProductType,
		Quantity:    req.Quantity,
		ListPrice:   decimal.Zero,
		Fields:      maps.Clone(req.Fields),
		Bundle:      true,
	}

	for n, c := range req.Constituents {
		if c.Quantity <= 0 {
			return nil, entities.ErrInvalidQuantity
		}
		childSku, err := d.resolve(ctx, cart, c.SkuCode)
		if err != nil {
			return nil, err
		}
		child, err := d.newItem(ctx, cart, childSku, c)
		if err != nil {
			return nil, err
		}
		child.Ordering = n + 1
		root.Children = append(root.Children, child)
	}
	return root, nil
}

type CartRepo interface {
	SaveCart(ctx context.Context, cart *entities.ShoppingCart) error
	GetCart(ctx context.Context, guid string) (*entities.ShoppingCart, error)
	DeleteCart(ctx context.Context, guid string) error
}

type NewCart struct {
	ShopperID    string
	StoreCode    string
	Currency     string
	Warehouse    string
	ShippingCost decimal.Decimal
}

// CartService persists every director operation in its own transaction.
type CartService struct {
	logger           *slog.Logger
	txManager        trm.Manager
	repo             CartRepo
	director         *CartDirector
	giftCertificates BalanceChecker
	now              func() time.Time
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, repo CartRepo, director *CartDirector, giftCertificates BalanceChecker) *CartService {
	return &CartService{
		logger:           logger.With(slog.String("service", "cart")),
		txManager:        txManager,
		repo:             repo,
		director:         director,
		giftCertificates: giftCertificates,
		now:              time.Now,
	}
}

func (s *CartService) CreateCart(ctx context.Context, in NewCart) (*entities.ShoppingCart, error) {
	cart := &entities.ShoppingCart{
		GUID:         uuid.NewString(),
		ShopperID:    in.ShopperID,
		StoreCode:    in.StoreCode,
		Currency:     in.Currency,
		Warehouse:    in.Warehouse,
		ShippingCost: in.ShippingCost,
		UpdatedAt:    s.now(),
	}
	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, guid string) (*entities.ShoppingCart, error) {
	return s.repo.GetCart(ctx, guid)
}

func (s *CartService) AddItem(ctx context.Context, guid string, req ItemRequest) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		_, err := s.director.AddItemToCart(ctx, cart, req)
		return err
	})
}

func (s *CartService) UpdateItem(ctx context.Context, guid, itemGUID string, quantity int, fields map[string]string) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		_, err := s.director.UpdateCartItem(cart, itemGUID, quantity, fields)
		return err
	})
}

func (s *CartService) RemoveItem(ctx context.Context, guid, itemGUID string) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		return s.director.RemoveItem(cart, itemGUID)
	})
}

func (s *CartService) Refresh(ctx context.Context, guid string) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		dropped, err := s.director.Refresh(ctx, cart)
		for _, item := range dropped {
			s.logger.InfoContext(ctx, "dropped unavailable cart item", slog.String("cart", guid), slog.String("sku", item.SkuCode))
		}
		return err
	})
}

// Merge folds the previous cart into the current one and deletes the previous cart.
func (s *CartService) Merge(ctx context.Context, currentGUID, previousGUID string) (*entities.ShoppingCart, error) {
	var merged *entities.ShoppingCart
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.loadOpen(ctx, currentGUID)
		if err != nil {
			return err
		}
		previous, err := s.repo.GetCart(ctx, previousGUID)
		if err != nil {
			return err
		}

		merged = MergeCarts(current, previous)
		merged.UpdatedAt = s.now()
		// Lines copied from previous keep their GUIDs, so it goes first.
		if err := s.repo.DeleteCart(ctx, previous.GUID); err != nil {
			return fmt.Errorf("failed to delete merged cart: %w", err)
		}
		if err := s.repo.SaveCart(ctx, merged); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *CartService) ApplyPromoCode(ctx context.Context, guid, code string) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		cart.AddPromoCode(code)
		return nil
	})
}

func (s *CartService) ApplyGiftCertificate(ctx context.Context, guid, code string) (*entities.ShoppingCart, error) {
	return s.update(ctx, guid, func(ctx context.Context, cart *entities.ShoppingCart) error {
		balance, err := s.giftCertificates.GetBalance(ctx, code)
		if err != nil {
			return err
		}
		if !balance.IsPositive() {
			return entities.ErrInsufficientBalance
		}
		cart.AddGiftCertificate(code)
		return nil
	})
}

func (s *CartService) update(ctx context.Context, guid string, fn func(ctx context.Context, cart *entities.ShoppingCart) error) (*entities.ShoppingCart, error) {
	var out *entities.ShoppingCart
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.loadOpen(ctx, guid)
		if err != nil {
			return err
		}
		if err := fn(ctx, cart); err != nil {
			return err
		}
		cart.Renumber()
		cart.UpdatedAt = s.now()
		if err := s.repo.SaveCart(ctx, cart); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) loadOpen(ctx context.Context, guid string) (*entities.ShoppingCart, error) {
	cart, err := s.repo.GetCart(ctx, guid)
	if err != nil {
		return nil, err
	}
	if cart.CompletedOrderNumber != "" {
		return nil, entities.ErrCartAlreadyCheckedOut
	}
	return cart, nil
}
