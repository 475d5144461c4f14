package order

import (
	"errors"
	"fmt"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the order factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewOrder or RestoreLine")

// Line is one purchased video within an order. It keeps its own copy of the
// price taken from the catalog at purchase time, so later catalog price
// changes never affect the refund math, and its own sub-state within the
// order's lifecycle.
//
// A line is owned exclusively by its parent order: the order's collection is
// the source of truth, and the line's back pointer to the order is set once
// at construction and used for lookup only, never for lifecycle control.
// All invariant checking lives in the Order aggregate.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// videoID references the purchased catalog item (lookup only, not owned)
	videoID kernel.UUID

	// price is this line's price share, fixed at purchase time
	price int

	// status is the line's own lifecycle state
	status Status

	// order points back to the owning order, set once at construction
	order *Order

	// isConstructed ensures the line was created via a factory method
	isConstructed bool
}

// newLine creates a line for a purchased video at the given price.
// Only the order factories call this; the parent back pointer is wired by
// the order when the line is attached.
func newLine(videoID kernel.UUID, price int) *Line {
	return &Line{
		id:            kernel.NewUUID(),
		videoID:       videoID,
		price:         price,
		status:        Ordered,
		isConstructed: true,
	}
}

// RestoreLine reconstructs a line from persisted state. It is intended for
// use by repositories only; the parent back pointer is wired by RestoreOrder
// when the line is attached to its order.
func RestoreLine(id, videoID kernel.UUID, price int, status Status) (*Line, error) {
	if err := errors.Join(
		id.Validate(),
		videoID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}

	return &Line{
		id:            id,
		videoID:       videoID,
		price:         price,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line instance was properly constructed through a factory method.
// Returns ErrLineIsNotConstructed otherwise.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// VideoID returns the identifier of the purchased video.
func (l *Line) VideoID() kernel.UUID {
	return l.videoID
}

// Price returns this line's price share, fixed at purchase time.
func (l *Line) Price() int {
	return l.price
}

// Status returns the line's current lifecycle state.
func (l *Line) Status() Status {
	return l.status
}

// Order returns the owning order. The back pointer exists so callers holding
// a line can find its order; it carries no lifecycle authority.
func (l *Line) Order() *Order {
	return l.order
}

// IsCanceled reports whether the line has been canceled.
func (l *Line) IsCanceled() bool {
	return l.status == Canceled
}

// complete moves the line to Completed when the payment is confirmed.
// Called by Order.Complete for every line of the order.
func (l *Line) complete() {
	if l.status == Ordered {
		l.status = Completed
	}
}

// cancel moves the line to Canceled. Canceling an already canceled line
// leaves it unchanged; callers never need to check first.
func (l *Line) cancel() {
	l.status = l.status.Cancel()
}
