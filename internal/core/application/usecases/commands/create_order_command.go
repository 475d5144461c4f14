package commands

import (
	"errors"
	"fmt"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrVideosAreRequired = errors.New("at least one video is required")
	ErrRewardIsNegative  = errors.New("reward must not be negative")
)

// CreateOrderCommand represents a request to purchase a set of videos,
// applying part of the member's reward balance toward the price.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, memberID, videoIDs, 500)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	videoIDs []kernel.UUID
	reward   int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase.
// Validates that both identifiers are valid, at least one video is requested,
// and the reward to apply is not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	memberID kernel.UUID,
	videoIDs []kernel.UUID,
	reward int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setMemberID(memberID),
		orderCommand.setVideoIDs(videoIDs),
		orderCommand.setReward(reward),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MemberID returns the identifier of the purchasing member.
func (c CreateOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// VideoIDs returns the identifiers of the videos being purchased.
func (c CreateOrderCommand) VideoIDs() []kernel.UUID {
	return c.videoIDs
}

// Reward returns the reward credit to apply toward the purchase.
func (c CreateOrderCommand) Reward() int {
	return c.reward
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *CreateOrderCommand) setVideoIDs(videoIDs []kernel.UUID) error {
	if len(videoIDs) == 0 {
		return ErrVideosAreRequired
	}
	for i, id := range videoIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("video %d: %w", i, err)
		}
	}

	c.videoIDs = videoIDs
	return nil
}

func (c *CreateOrderCommand) setReward(reward int) error {
	if reward < 0 {
		return ErrRewardIsNegative
	}

	c.reward = reward
	return nil
}
