package member

import (
	"errors"
	"fmt"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/errs"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member instance was not created through
	// the NewMember or RestoreMember factory methods.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

	// ErrRewardNotEnough is the sentinel for reward balance shortfalls.
	// RewardNotEnoughError unwraps to it, so callers can classify the failure
	// with errors.Is without depending on the concrete type.
	ErrRewardNotEnough = errors.New("reward is not enough")
)

// RewardNotEnoughError indicates that a reward debit or reservation asked for
// more reward than is available. Requested carries the amount that was asked
// for, Available the balance or remainder it was checked against.
type RewardNotEnoughError struct {
	Requested int
	Available int
}

// NewRewardNotEnoughError creates a RewardNotEnoughError with the requested
// amount and the available balance it exceeded.
func NewRewardNotEnoughError(requested, available int) *RewardNotEnoughError {
	return &RewardNotEnoughError{Requested: requested, Available: available}
}

func (e *RewardNotEnoughError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrRewardNotEnough, e.Requested, e.Available)
}

func (e *RewardNotEnoughError) Unwrap() error {
	return ErrRewardNotEnough
}

// Member represents a customer of the platform. It is an aggregate that owns
// the reward balance: an internal, non-cash credit usable toward purchases and
// replenished by refunds and refund-to-reward conversions.
//
// Member follows these invariants:
//   - Must have a valid unique identifier
//   - Reward balance is never negative
//   - Can only be created through NewMember or RestoreMember
//
// The reward balance is mutated exclusively through DebitReward and
// CreditReward so that every change is validated.
type Member struct {
	// id is the unique identifier for the member
	id kernel.UUID

	// name is the member's display name
	name string

	// reward is the member's current reward balance (never negative)
	reward int

	// isConstructed ensures the member was created via a factory method
	isConstructed bool
}

// NewMember creates a new Member instance with validation. This is the only way
// to create a valid Member with an initial reward balance.
//
// Parameters:
//   - id: Unique identifier for the member (must be valid UUID)
//   - name: Display name (must not be empty)
//   - reward: Initial reward balance (must not be negative)
//
// Returns:
//   - *Member: The created member if all validations pass
//   - error: Validation error if any parameter is invalid
func NewMember(id kernel.UUID, name string, reward int) (*Member, error) {
	m := &Member{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setReward(reward),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persisted state. It applies the same
// validation as NewMember and is intended for use by repositories only.
func RestoreMember(id kernel.UUID, name string, reward int) (*Member, error) {
	return NewMember(id, name, reward)
}

// Validate ensures the Member instance was properly constructed through a factory method.
// Returns ErrMemberIsNotConstructed otherwise.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}

	return nil
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Reward returns the member's current reward balance.
func (m *Member) Reward() int {
	return m.reward
}

// CheckReward verifies that the member holds at least the given amount of
// reward without mutating the balance.
//
// Returns:
//   - nil if the balance covers the amount
//   - RewardNotEnoughError if the balance is insufficient
func (m *Member) CheckReward(amount int) error {
	if m.reward < amount {
		return NewRewardNotEnoughError(amount, m.reward)
	}
	return nil
}

// DebitReward removes the given amount from the member's reward balance.
// The debit is all-or-nothing: on a shortfall the balance is left untouched.
//
// Returns:
//   - nil on success
//   - error if the amount is negative or exceeds the balance
func (m *Member) DebitReward(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reward amount", fmt.Errorf("%d is negative", amount))
	}
	if err := m.CheckReward(amount); err != nil {
		return err
	}

	m.reward -= amount
	return nil
}

// CreditReward adds the given amount to the member's reward balance.
// Callers pass amounts computed from refund remainders, which are never
// negative, so crediting cannot fail. Crediting zero is a no-op.
func (m *Member) CreditReward(amount int) {
	m.reward += amount
}

// setID validates and sets the member's unique identifier.
// This is a private method used only during construction.
func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setName validates and sets the member's display name.
// This is a private method used only during construction.
func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

// setReward validates and sets the initial reward balance.
// This is a private method used only during construction.
func (m *Member) setReward(reward int) error {
	if reward < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reward", fmt.Errorf("%d is negative", reward))
	}
	m.reward = reward
	return nil
}
