package entities

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ItemKey identifies a cart line for dedup and merge: SKU code plus configuration fields.
// Field names and values are length-prefixed so no value can forge a separator.
type ItemKey string

func NewItemKey(skuCode string, fields map[string]string) ItemKey {
	if len(fields) == 0 {
		return ItemKey(skuCode)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(skuCode)
	for _, name := range names {
		b.WriteByte('|')
		writeLenPrefixed(&b, name)
		writeLenPrefixed(&b, fields[name])
	}
	return ItemKey(b.String())
}

func writeLenPrefixed(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

type CartItem struct {
	GUID        string
	SkuCode     string
	ProductType string
	Quantity    int
	ListPrice   decimal.Decimal
	SalePrice   decimal.NullDecimal
	Fields      map[string]string
	Bundle      bool
	Shippable   bool
	Children    []*CartItem
	Ordering    int
}

func (i *CartItem) Key() ItemKey {
	return NewItemKey(i.SkuCode, i.Fields)
}

func (i *CartItem) UnitPrice() decimal.Decimal {
	return Price{List: i.ListPrice, Sale: i.SalePrice}.Lowest()
}

func (i *CartItem) Total() decimal.Decimal {
	if i.Bundle {
		total := decimal.Zero
		for _, child := range i.Children {
			total = total.Add(child.Total())
		}
		return total.Mul(decimal.NewFromInt(int64(i.Quantity)))
	}
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LeafLine is a purchasable line with its effective quantity; bundle
// constituent quantities are per bundle unit.
type LeafLine struct {
	Item     *CartItem
	Quantity int
}

func (i *CartItem) leafLines(multiplier int) []LeafLine {
	qty := i.Quantity * multiplier
	if !i.Bundle {
		return []LeafLine{{Item: i, Quantity: qty}}
	}
	var out []LeafLine
	for _, child := range i.Children {
		out = append(out, child.leafLines(qty)...)
	}
	return out
}

func (i *CartItem) Clone() *CartItem {
	c := *i
	if i.Fields != nil {
		c.Fields = make(map[string]string, len(i.Fields))
		for k, v := range i.Fields {
			c.Fields[k] = v
		}
	}
	if i.Children != nil {
		c.Children = make([]*CartItem, len(i.Children))
		for n, child := range i.Children {
			c.Children[n] = child.Clone()
		}
	}
	return &c
}

type ShoppingCart struct {
	GUID                 string
	ShopperID            string
	StoreCode            string
	Currency             string
	Warehouse            string
	ShippingCost         decimal.Decimal
	Items                []*CartItem
	PromoCodes           []string
	GiftCertificateCodes []string
	CompletedOrderNumber string
	UpdatedAt            time.Time
}

func (c *ShoppingCart) PriceContext() PriceContext {
	return PriceContext{StoreCode: c.StoreCode, ShopperID: c.ShopperID, Currency: c.Currency}
}

// FindByKey returns the root non-bundle line with the given identity.
func (c *ShoppingCart) FindByKey(key ItemKey) *CartItem {
	for _, item := range c.Items {
		if !item.Bundle && item.Key() == key {
			return item
		}
	}
	return nil
}

func (c *ShoppingCart) FindByGUID(guid string) *CartItem {
	for _, item := range c.Items {
		if item.GUID == guid {
			return item
		}
	}
	return nil
}

func (c *ShoppingCart) AddItem(item *CartItem) {
	item.Ordering = c.nextOrdering()
	c.Items = append(c.Items, item)
}

func (c *ShoppingCart) RemoveItem(guid string) bool {
	for n, item := range c.Items {
		if item.GUID == guid {
			c.Items = append(c.Items[:n], c.Items[n+1:]...)
			return true
		}
	}
	return false
}

func (c *ShoppingCart) nextOrdering() int {
	last := 0
	for _, item := range c.Items {
		last = max(last, item.Ordering)
	}
	return last + 1
}

// Renumber sorts lines by Ordering and renumbers them from 1.
func (c *ShoppingCart) Renumber() {
	sort.SliceStable(c.Items, func(i, j int) bool { return c.Items[i].Ordering < c.Items[j].Ordering })
	for n, item := range c.Items {
		item.Ordering = n + 1
	}
}

func (c *ShoppingCart) LeafLines() []LeafLine {
	var out []LeafLine
	for _, item := range c.Items {
		out = append(out, item.leafLines(1)...)
	}
	return out
}

func (c *ShoppingCart) NumItems() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *ShoppingCart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Total())
	}
	return total
}

func (c *ShoppingCart) AddPromoCode(code string) {
	if code != "" && !slices.Contains(c.PromoCodes, code) {
		c.PromoCodes = append(c.PromoCodes, code)
	}
}

func (c *ShoppingCart) AddGiftCertificate(code string) {
	if code != "" && !slices.Contains(c.GiftCertificateCodes, code) {
		c.GiftCertificateCodes = append(c.GiftCertificateCodes, code)
	}
}
