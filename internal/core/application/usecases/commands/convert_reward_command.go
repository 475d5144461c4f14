package commands

import (
	"errors"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var (
	ErrConvertRewardCommandIsNotConstructed = errors.New(
		"ConvertRewardCommand must be created via NewConvertRewardCommand constructor",
	)
	ErrConvertAmountIsInvalid = errors.New("convert amount must be greater than 0")
)

// ConvertRewardCommand represents a request to move part of an order's
// outstanding cash refund into the member's reward balance instead of an
// external payout.
type ConvertRewardCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  int

	guard guard.ConstructorGuard
}

// NewConvertRewardCommand creates a command to convert refundable money to reward.
// Validates that the order ID is valid and the amount is positive.
func NewConvertRewardCommand(orderID kernel.UUID, amount int) (ConvertRewardCommand, error) {
	convertCommand := ConvertRewardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		convertCommand.setOrderID(orderID),
		convertCommand.setAmount(amount),
	); err != nil {
		return ConvertRewardCommand{}, err
	}

	return convertCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConvertRewardCommandIsNotConstructed if validation fails.
func (c ConvertRewardCommand) Validate() error {
	return c.guard.Validate(ErrConvertRewardCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose refund is converted.
func (c ConvertRewardCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns how much refundable money to convert into reward.
func (c ConvertRewardCommand) Amount() int {
	return c.amount
}

func (c *ConvertRewardCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConvertRewardCommand) setAmount(amount int) error {
	if amount <= 0 {
		return ErrConvertAmountIsInvalid
	}

	c.amount = amount
	return nil
}
