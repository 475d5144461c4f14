package commands

import (
	"errors"
	"time"

	"vidstore/internal/pkg/errs"
	"vidstore/internal/pkg/guard"
)

// CancelUnpaidOrdersCommand triggers cancellation of orders that were created
// but never paid within the given time-to-live. This batch operation releases
// the reward held at order creation back into the order's cancellation flow.
//
// Example:
//
//	cmd, err := NewCancelUnpaidOrdersCommand(30 * time.Minute)
//	handler := NewCancelUnpaidOrdersCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Unpaid order sweep failed: %v", err)
//	}
type CancelUnpaidOrdersCommand struct {
	ttl   time.Duration
	guard guard.ConstructorGuard
}

var (
	ErrCancelUnpaidOrdersCommandIsNotConstructed = errors.New(
		"CancelUnpaidOrdersCommand must be created via NewCancelUnpaidOrdersCommand constructor",
	)
)

// NewCancelUnpaidOrdersCommand creates a command that cancels orders older
// than the given time-to-live that never received payment.
//
// Parameters:
//   - ttl: how long an unpaid order may stay open before the sweep cancels it
//
// Returns an error if ttl is not positive.
func NewCancelUnpaidOrdersCommand(ttl time.Duration) (CancelUnpaidOrdersCommand, error) {
	command := CancelUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTTL(ttl); err != nil {
		return CancelUnpaidOrdersCommand{}, err
	}

	return command, nil
}

// TTL returns how long unpaid orders may stay open before cancellation.
func (c *CancelUnpaidOrdersCommand) TTL() time.Duration {
	return c.ttl
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelUnpaidOrdersCommandIsNotConstructed if validation fails.
func (c *CancelUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelUnpaidOrdersCommandIsNotConstructed)
}

func (c *CancelUnpaidOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidError("ttl")
	}

	c.ttl = ttl

	return nil
}
