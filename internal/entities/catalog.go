package entities

import "github.com/shopspring/decimal"

const ProductTypeGiftCertificate = "GiftCertificate"

// Gift certificate line configuration fields.
const (
	FieldGiftCertificateCode = "giftCertificateCode"
	FieldRecipientName       = "recipientName"
	FieldRecipientEmail      = "recipientEmail"
	FieldSenderEmail         = "senderEmail"
)

type SKU struct {
	Code        string
	ProductCode string
	ProductType string
	StoreCodes  []string
	Shippable   bool
	Bundle      bool
	MinOrderQty int
	Enabled     bool
}

// PurchasableIn reports whether the SKU is sellable in the given store.
func (s SKU) PurchasableIn(storeCode string) bool {
	if !s.Enabled {
		return false
	}
	for _, code := range s.StoreCodes {
		if code == storeCode {
			return true
		}
	}
	return false
}

type Price struct {
	List decimal.Decimal
	Sale decimal.NullDecimal
}

// Lowest returns the sale price when it is set and lower than the list price.
func (p Price) Lowest() decimal.Decimal {
	if p.Sale.Valid && p.Sale.Decimal.LessThan(p.List) {
		return p.Sale.Decimal
	}
	return p.List
}

// PriceContext is passed explicitly into every pricing call.
type PriceContext struct {
	StoreCode string
	ShopperID string
	Currency  string
}
