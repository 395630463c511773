package entities

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindIllegalTransition
	KindConflict
	KindPayment
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindIllegalTransition:
		return "illegal_transition"
	case KindConflict:
		return "conflict"
	case KindPayment:
		return "payment"
	default:
		return "internal"
	}
}

// Error is a classified domain error. Sentinels below are compared with errors.Is.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

var (
	ErrOrderNotFound           = newError(KindNotFound, "order not found")
	ErrShipmentNotFound        = newError(KindNotFound, "shipment not found")
	ErrOrderSkuNotFound        = newError(KindNotFound, "order sku not found")
	ErrCartNotFound            = newError(KindNotFound, "cart not found")
	ErrCartItemNotFound        = newError(KindNotFound, "cart item not found")
	ErrSkuNotFound             = newError(KindNotFound, "sku not found")
	ErrPriceNotFound           = newError(KindNotFound, "price not found")
	ErrInventoryNotFound       = newError(KindNotFound, "inventory record not found")
	ErrGiftCertificateNotFound = newError(KindNotFound, "gift certificate not found")

	ErrInvalidOrder          = newError(KindValidation, "invalid order data")
	ErrInvalidQuantity       = newError(KindValidation, "quantity must be positive")
	ErrProductNotPurchasable = newError(KindValidation, "product is not purchasable")
	ErrEmptyCart             = newError(KindValidation, "shopping cart must not be empty during checkout")
	ErrCartAlreadyCheckedOut = newError(KindValidation, "shopping cart already has a completed order")
	ErrMinOrderQty           = newError(KindValidation, "quantity is below the minimum order quantity")
	ErrInsufficientInventory = newError(KindValidation, "insufficient inventory")
	ErrNegativeInventory     = newError(KindValidation, "inventory quantity cannot become negative")
	ErrInventoryExists       = newError(KindValidation, "inventory record already exists")
	ErrPaymentRequired       = newError(KindValidation, "no payment method covers the remaining amount")
	ErrCurrencyMismatch      = newError(KindValidation, "currency does not match")
	ErrInvalidSplit          = newError(KindValidation, "shipment split must move some but not all lines")
	ErrInvalidAmount         = newError(KindValidation, "amount must be positive")
	ErrUnsupportedPayment    = newError(KindValidation, "unsupported payment method")

	ErrReturnQuantityExceeded = newError(KindValidation, "returned quantity exceeds shipped quantity")

	ErrInsufficientBalance   = newError(KindPayment, "insufficient gift certificate balance")
	ErrAuthorizationNotFound = newError(KindPayment, "authorization code not found")
	ErrAlreadyCaptured       = newError(KindPayment, "authorization already captured")
	ErrAlreadyReversed       = newError(KindPayment, "authorization already reversed")
	ErrAmountMismatch        = newError(KindPayment, "amount does not match the authorized amount")
	ErrPaymentDeclined       = newError(KindPayment, "payment declined by gateway")
	ErrGatewayTimeout        = newError(KindPayment, "payment gateway timed out")
	ErrNotCaptured           = newError(KindPayment, "authorization was not captured")
	ErrRefundExceedsCapture  = newError(KindPayment, "refund exceeds the captured amount")

	ErrIllegalTransition = newError(KindIllegalTransition, "illegal status transition")
	ErrNotCancellable    = newError(KindIllegalTransition, "not cancellable")
	ErrNotModifiable     = newError(KindIllegalTransition, "shipment not modifiable")
	ErrReturnNotAllowed  = newError(KindIllegalTransition, "goods cannot be returned")

	ErrConcurrentModification = newError(KindConflict, "concurrent modification")
)

// TransitionError reports which state machine rule rejected an operation.
type TransitionError struct {
	Entity string
	ID     string
	Op     string
	From   string
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s: cannot %s from status %s: %s", e.Entity, e.ID, e.Op, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}
