package video

import (
	"errors"
	"fmt"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/errs"
)

// ErrVideoIsNotConstructed is returned when a Video instance was not created through
// the NewVideo or RestoreVideo factory methods.
var ErrVideoIsNotConstructed = errors.New("Video must be created via NewVideo constructor")

// Video represents a purchasable catalog item. Its price is read at
// order-creation time only; each order line stores its own copy of the price,
// so later price changes never affect existing orders.
type Video struct {
	// id is the unique identifier for the video
	id kernel.UUID

	// title is the video's display title
	title string

	// price is the current sale price (never negative)
	price int

	// isConstructed ensures the video was created via a factory method
	isConstructed bool
}

// NewVideo creates a new Video instance with validation.
//
// Parameters:
//   - id: Unique identifier for the video (must be valid UUID)
//   - title: Display title (must not be empty)
//   - price: Sale price (must not be negative)
//
// Returns:
//   - *Video: The created video if all validations pass
//   - error: Validation error if any parameter is invalid
func NewVideo(id kernel.UUID, title string, price int) (*Video, error) {
	v := &Video{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setTitle(title),
		v.setPrice(price),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVideo reconstructs a Video from persisted state. It applies the same
// validation as NewVideo and is intended for use by repositories only.
func RestoreVideo(id kernel.UUID, title string, price int) (*Video, error) {
	return NewVideo(id, title, price)
}

// Validate ensures the Video instance was properly constructed through a factory method.
// Returns ErrVideoIsNotConstructed otherwise.
func (v *Video) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVideoIsNotConstructed
	}

	return nil
}

// IsEqual compares two videos by their unique identifiers.
func (v *Video) IsEqual(other *Video) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the video's unique identifier.
func (v *Video) ID() kernel.UUID {
	return v.id
}

// Title returns the video's display title.
func (v *Video) Title() string {
	return v.title
}

// Price returns the video's current sale price.
func (v *Video) Price() int {
	return v.price
}

// setID validates and sets the video's unique identifier.
// This is a private method used only during construction.
func (v *Video) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// setTitle validates and sets the video's title.
// This is a private method used only during construction.
func (v *Video) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	v.title = title
	return nil
}

// setPrice validates and sets the video's price.
// This is a private method used only during construction.
func (v *Video) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	v.price = price
	return nil
}
