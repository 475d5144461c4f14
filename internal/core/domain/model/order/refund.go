package order

// Refund is the result of a cancellation: the cash amount to reverse through
// the payment gateway and the reward amount credited back to the member.
// Together with the order's remainder decrements of the same operation it
// accounts for every unit of money removed from the order, so nothing is
// silently dropped.
//
// Refund is an immutable value object.
type Refund struct {
	amount int
	reward int
}

// NewRefund creates a Refund from the cash and reward portions of a
// cancellation result.
func NewRefund(amount, reward int) Refund {
	return Refund{amount: amount, reward: reward}
}

// Amount returns the cash portion of the refund. It is paid back out-of-band
// through the payment gateway, never credited to the reward balance.
func (r Refund) Amount() int {
	return r.amount
}

// Reward returns the reward portion of the refund. It was credited to the
// member's reward balance in the operation that produced this Refund.
func (r Refund) Reward() int {
	return r.reward
}

// IsZero reports whether the refund carries no money at all.
func (r Refund) IsZero() bool {
	return r.amount == 0 && r.reward == 0
}
