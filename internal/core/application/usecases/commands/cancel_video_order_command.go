package commands

import (
	"errors"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var ErrCancelVideoOrderCommandIsNotConstructed = errors.New(
	"CancelVideoOrderCommand must be created via NewCancelVideoOrderCommand constructor",
)

// CancelVideoOrderCommand represents a request to cancel a single purchased
// video within an order, refunding its price share.
type CancelVideoOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	videoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelVideoOrderCommand creates a command to cancel one video of an order.
// Validates both identifiers.
func NewCancelVideoOrderCommand(orderID, videoID kernel.UUID) (CancelVideoOrderCommand, error) {
	cancelCommand := CancelVideoOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setVideoID(videoID),
	); err != nil {
		return CancelVideoOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelVideoOrderCommandIsNotConstructed if validation fails.
func (c CancelVideoOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelVideoOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the video.
func (c CancelVideoOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VideoID returns the identifier of the video being canceled.
func (c CancelVideoOrderCommand) VideoID() kernel.UUID {
	return c.videoID
}

func (c *CancelVideoOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelVideoOrderCommand) setVideoID(videoID kernel.UUID) error {
	if err := videoID.Validate(); err != nil {
		return err
	}

	c.videoID = videoID
	return nil
}
