package order

import (
	"errors"
	"fmt"
)

// Order-specific failure kinds. Each is a flat error kind the caller can
// dispatch on with errors.Is; the ones that carry context wrap a payload
// struct that unwraps to its sentinel.
var (
	// ErrOrderNotValid is returned when payment validation runs against an
	// order that is not in Ordered status.
	ErrOrderNotValid = errors.New("order is not valid")

	// ErrAlreadyCanceled is returned by the redundant-cancellation check on a
	// canceled order.
	ErrAlreadyCanceled = errors.New("order is already canceled")

	// ErrPriceMismatch is the sentinel for payment amounts that differ from
	// the order's recorded total.
	ErrPriceMismatch = errors.New("price does not match order total")

	// ErrInvalidAmount is the sentinel for purchases where the reward applied
	// exceeds the total purchase price.
	ErrInvalidAmount = errors.New("pay amount is less than zero")
)

// PriceMismatchError reports a payment-confirmation amount that differs from
// the order's recorded total pay amount.
type PriceMismatchError struct {
	Expected int // the order's totalPayAmount
	Actual   int // the amount the caller tried to confirm
}

// NewPriceMismatchError creates a PriceMismatchError with the order's total
// and the amount that was offered.
func NewPriceMismatchError(expected, actual int) *PriceMismatchError {
	return &PriceMismatchError{Expected: expected, Actual: actual}
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrPriceMismatch, e.Expected, e.Actual)
}

func (e *PriceMismatchError) Unwrap() error {
	return ErrPriceMismatch
}

// InvalidAmountError reports an order creation where the reward to apply
// exceeds the sum of the item prices, which would make the cash portion
// negative.
type InvalidAmountError struct {
	TotalPrice int // sum of the item prices
	Reward     int // reward the buyer tried to apply
}

// NewInvalidAmountError creates an InvalidAmountError with the purchase total
// and the reward that exceeded it.
func NewInvalidAmountError(totalPrice, reward int) *InvalidAmountError {
	return &InvalidAmountError{TotalPrice: totalPrice, Reward: reward}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: total price %d, reward %d", ErrInvalidAmount, e.TotalPrice, e.Reward)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
