package order

import (
	"errors"
	"fmt"
	"time"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"
	"vidstore/internal/core/domain/model/video"
	"vidstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// RefundWindow is how long after payment completion an order stays refundable.
// IsExpired reports true once this window has elapsed.
const RefundWindow = 14 * 24 * time.Hour

// Order is the aggregate root of a paid-content purchase: a member buys a set
// of videos using a mix of cash and reward credit. The aggregate owns the
// lifecycle state machine, the per-line price allocation, and the refund math
// for whole-order cancellation, per-line cancellation, and refund-to-reward
// conversion.
//
// Order maintains these invariants after every operation:
//   - 0 <= remainRefundAmount <= totalPayAmount
//   - 0 <= remainRefundReward <= rewardUsed
//   - the line prices sum to totalPayAmount + rewardUsed
//   - the order is Canceled iff every line is Canceled
//   - every unit removed from a remainder in an operation is credited to the
//     member or surfaced in that operation's Refund result, never dropped
//
// All failures are raised before any state changes, so a returned error means
// nothing was mutated. The member reference is shared, not owned: reward
// credits and debits must be persisted in the same transaction as the order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// paymentReference identifies the confirmed payment, set on completion
	paymentReference string

	// totalPayAmount is the cash portion charged: sum of line prices minus rewardUsed
	totalPayAmount int

	// rewardUsed is the reward credit consumed at purchase time, fixed for the order's life
	rewardUsed int

	// remainRefundAmount is the cash still refundable
	remainRefundAmount int

	// remainRefundReward is the reward still refundable
	remainRefundReward int

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the purchase was placed
	createdAt time.Time

	// completedAt is when the payment was confirmed (nil until completion)
	completedAt *time.Time

	// buyer is the purchasing member (shared reference, not owned)
	buyer *member.Member

	// lines are the purchased items, owned exclusively by this order
	lines []*Line

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an order for a member purchasing the given videos, applying
// rewardToUse from the member's reward balance toward the total price. The
// cash portion is the sum of the video prices minus the reward applied.
//
// The reward is debited from the member immediately; until the payment is
// confirmed via Complete, nothing is refundable.
//
// Parameters:
//   - id: Unique identifier for the order. A zero UUID is replaced with a
//     freshly generated one.
//   - buyer: The purchasing member (must be constructed)
//   - videos: The items being purchased (at least one, each constructed)
//   - rewardToUse: Reward credit to apply (must not be negative)
//
// Returns:
//   - *Order: The created order in Ordered status, one line per video at that
//     video's current price
//   - error: InvalidAmountError if the reward exceeds the purchase total,
//     RewardNotEnoughError if the member's balance cannot cover it, or a
//     validation error for invalid inputs. On error the member is untouched.
func NewOrder(id kernel.UUID, buyer *member.Member, videos []*video.Video, rewardToUse int) (*Order, error) {
	if id.Validate() != nil {
		id = kernel.NewUUID()
	}

	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, errs.NewValueIsRequiredError("videos")
	}
	totalPrice := 0
	for _, v := range videos {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		totalPrice += v.Price()
	}
	if rewardToUse < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("reward", fmt.Errorf("%d is negative", rewardToUse))
	}

	totalPayAmount := totalPrice - rewardToUse
	if totalPayAmount < 0 {
		return nil, NewInvalidAmountError(totalPrice, rewardToUse)
	}

	if err := buyer.DebitReward(rewardToUse); err != nil {
		return nil, err
	}

	o := &Order{
		id:             id,
		totalPayAmount: totalPayAmount,
		rewardUsed:     rewardToUse,
		status:         Ordered,
		createdAt:      time.Now(),
		buyer:          buyer,
		isConstructed:  true,
	}

	for _, v := range videos {
		o.appendLine(newLine(v.ID(), v.Price()))
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state. It wires the lines'
// back pointers and applies structural validation, but does not re-run the
// purchase-time checks; it is intended for use by repositories only.
func RestoreOrder(
	id kernel.UUID,
	paymentReference string,
	totalPayAmount int,
	rewardUsed int,
	remainRefundAmount int,
	remainRefundReward int,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
	buyer *member.Member,
	lines []*Line,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		buyer.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:                 id,
		paymentReference:   paymentReference,
		totalPayAmount:     totalPayAmount,
		rewardUsed:         rewardUsed,
		remainRefundAmount: remainRefundAmount,
		remainRefundReward: remainRefundReward,
		status:             status,
		createdAt:          createdAt,
		completedAt:        completedAt,
		buyer:              buyer,
		isConstructed:      true,
	}

	for _, l := range lines {
		o.appendLine(l)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PaymentReference returns the payment identifier recorded at completion.
// Empty until the order is completed.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// TotalPayAmount returns the cash portion charged for the purchase.
func (o *Order) TotalPayAmount() int {
	return o.totalPayAmount
}

// RewardUsed returns the reward credit consumed at purchase time.
func (o *Order) RewardUsed() int {
	return o.rewardUsed
}

// RemainRefundAmount returns the cash still refundable.
func (o *Order) RemainRefundAmount() int {
	return o.remainRefundAmount
}

// RemainRefundReward returns the reward still refundable.
func (o *Order) RemainRefundReward() int {
	return o.remainRefundReward
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the purchase was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns when the payment was confirmed, or nil if it never was.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Member returns the purchasing member.
func (o *Order) Member() *member.Member {
	return o.buyer
}

// Lines returns the order's lines. The returned slice is a copy; the lines
// themselves still belong to the order.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Videos returns the identifiers of the purchased videos, in line order.
func (o *Order) Videos() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.lines))
	for i, l := range o.lines {
		ids[i] = l.VideoID()
	}
	return ids
}

// LineForVideo finds the order's line for the given video.
// Returns ObjectNotFoundError if the video is not part of this order.
func (o *Order) LineForVideo(videoID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.VideoID().IsEqual(videoID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("videoId", videoID.String())
}

// CheckValid verifies that the order can accept a payment of the given
// amount. It is called by the payment-confirmation flow before Complete and
// performs pure validation, no mutation.
//
// Returns:
//   - ErrOrderNotValid if the order is not in Ordered status
//   - PriceMismatchError if amount differs from the order's total pay amount
//   - nil otherwise
func (o *Order) CheckValid(amount int) error {
	if o.status != Ordered {
		return ErrOrderNotValid
	}
	if o.totalPayAmount != amount {
		return NewPriceMismatchError(o.totalPayAmount, amount)
	}
	return nil
}

// CheckAlreadyCanceled fails with ErrAlreadyCanceled iff the order is
// canceled. For every other status it is a no-op, so cancellation flows can
// call it up front to reject redundant requests.
func (o *Order) CheckAlreadyCanceled() error {
	if o.status == Canceled {
		return ErrAlreadyCanceled
	}
	return nil
}

// Complete records a confirmed payment. It sets the completion time and
// payment reference, moves the order and every line to Completed, and makes
// the full purchase refundable: remainRefundAmount becomes the total pay
// amount and remainRefundReward the reward used.
//
// The amount itself is not re-checked here; callers run CheckValid first.
// No member-reward mutation occurs: the reward was already debited at
// creation.
//
// Returns an error if the payment reference is empty or the order is not in
// Ordered status; nothing is mutated in that case.
func (o *Order) Complete(completedAt time.Time, paymentReference string) error {
	if paymentReference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.completedAt = &completedAt
	o.paymentReference = paymentReference
	o.status = newStatus
	for _, l := range o.lines {
		l.complete()
	}
	o.remainRefundAmount = o.totalPayAmount
	o.remainRefundReward = o.rewardUsed

	return nil
}

// CancelAll cancels the whole order. Every line is canceled regardless of its
// current state, the order moves to Canceled, and both remainders drop to
// zero.
//
// If the order had reached Completed, the remaining refundable reward is
// credited back to the member here. An order canceled before completion never
// refunds reward: the creation-time debit stays with the platform (the
// reward "hold" behavior of unconfirmed orders).
//
// The returned Refund carries the remainders exactly as they stood before
// zeroing, so the operation conserves money: cash goes to the caller for
// gateway reversal, reward goes to the member.
func (o *Order) CancelAll() Refund {
	for _, l := range o.lines {
		l.cancel()
	}

	if o.IsComplete() {
		o.buyer.CreditReward(o.remainRefundReward)
	}

	o.status = o.status.Cancel()

	refund := NewRefund(o.remainRefundAmount, o.remainRefundReward)

	o.remainRefundAmount = 0
	o.remainRefundReward = 0

	return refund
}

// CancelVideoOrder cancels a single line and refunds its price share.
//
// If the target is the last line still alive, the call converges to CancelAll
// and returns its Refund: per-line and whole-order cancellation end in the
// same state.
//
// Otherwise the line's price is refunded cash-first: the cash portion is
// capped by the remaining refundable amount, and only the part of the price
// not covered by cash (the part originally paid with reward) comes out of the
// remaining refundable reward. Both remainders floor at zero and a line never
// refunds more than its own price. The reward portion is credited to the
// member immediately; the cash portion is returned to the caller for
// out-of-band gateway reversal.
//
// Returns a ValueIsInvalidError if the line does not belong to this order.
func (o *Order) CancelVideoOrder(line *Line) (Refund, error) {
	if !o.owns(line) {
		return Refund{}, errs.NewValueIsInvalidError("line does not belong to order")
	}

	line.cancel()

	if o.allLinesCanceled() {
		return o.CancelAll(), nil
	}

	refundAmount := o.takeRefundAmount(line.Price())
	refundReward := o.takeRefundReward(line.Price() - refundAmount)

	o.buyer.CreditReward(refundReward)

	return NewRefund(refundAmount, refundReward), nil
}

// ConvertAmountToReward moves the given amount of the order's outstanding
// refund into the member's reward balance instead of an external payout.
//
// The reward remainder is drained first, then the cash remainder covers any
// shortfall. Note this is the opposite draining order from cancellation,
// which refunds cash before reward: conversion prefers to consume the
// remainder that would have gone back to the balance anyway.
//
// The operation is atomic: if the two remainders together cannot cover the
// amount it fails with RewardNotEnoughError and nothing changes. On success
// the member is credited the full amount.
func (o *Order) ConvertAmountToReward(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}

	fromReward := min(amount, o.remainRefundReward)
	fromAmount := amount - fromReward
	if fromAmount > o.remainRefundAmount {
		return member.NewRewardNotEnoughError(amount, o.remainRefundReward+o.remainRefundAmount)
	}

	o.remainRefundReward -= fromReward
	o.remainRefundAmount -= fromAmount
	o.buyer.CreditReward(amount)

	return nil
}

// IsComplete reports whether the payment has been confirmed.
func (o *Order) IsComplete() bool {
	return o.status == Completed
}

// IsExpired reports whether the refund window has elapsed since payment
// completion. An order that was never completed does not expire.
func (o *Order) IsExpired() bool {
	if o.completedAt == nil {
		return false
	}
	return time.Now().After(o.completedAt.Add(RefundWindow))
}

// appendLine attaches a line to the order and wires its back pointer.
// The order's collection is the single source of truth for ownership.
func (o *Order) appendLine(l *Line) {
	l.order = o
	o.lines = append(o.lines, l)
}

// owns reports whether the line instance belongs to this order's collection.
func (o *Order) owns(line *Line) bool {
	for _, l := range o.lines {
		if l == line {
			return true
		}
	}
	return false
}

// allLinesCanceled reports whether every line has been canceled.
func (o *Order) allLinesCanceled() bool {
	for _, l := range o.lines {
		if !l.IsCanceled() {
			return false
		}
	}
	return true
}

// takeRefundAmount removes up to price from the cash remainder and returns
// how much was actually taken.
func (o *Order) takeRefundAmount(price int) int {
	taken := min(price, o.remainRefundAmount)
	o.remainRefundAmount -= taken
	return taken
}

// takeRefundReward removes up to candidate from the reward remainder and
// returns how much was actually taken.
func (o *Order) takeRefundReward(candidate int) int {
	taken := min(candidate, o.remainRefundReward)
	o.remainRefundReward -= taken
	return taken
}
