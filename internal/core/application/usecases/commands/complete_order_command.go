package commands

import (
	"errors"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrPaymentReferenceIsRequired = errors.New("payment reference is required")
	ErrAmountIsNegative           = errors.New("amount must not be negative")
)

// CompleteOrderCommand represents a payment confirmation for an order.
// Carries the gateway's payment reference and the amount the gateway charged,
// which must match the order's recorded total.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	paymentReference string
	amount           int

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command confirming an order's payment.
// Validates that the order ID is valid, the payment reference is present,
// and the charged amount is not negative.
func NewCompleteOrderCommand(orderID kernel.UUID, paymentReference string, amount int) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setPaymentReference(paymentReference),
		completeCommand.setAmount(amount),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentReference returns the gateway's payment identifier.
func (c CompleteOrderCommand) PaymentReference() string {
	return c.paymentReference
}

// Amount returns the cash amount the gateway charged.
func (c CompleteOrderCommand) Amount() int {
	return c.amount
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setPaymentReference(paymentReference string) error {
	if paymentReference == "" {
		return ErrPaymentReferenceIsRequired
	}

	c.paymentReference = paymentReference
	return nil
}

func (c *CompleteOrderCommand) setAmount(amount int) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	c.amount = amount
	return nil
}
