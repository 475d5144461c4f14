// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var (
	ErrGetMemberOrdersQueryIsNotConstructed = errors.New(
		"GetMemberOrdersQuery must be created via NewGetMemberOrdersQuery constructor",
	)
)

// GetMemberOrdersQuery retrieves the purchase history of a single member.
// Returns order summaries for account pages and support tooling.
//
// Example:
//
//	query, err := NewGetMemberOrdersQuery(memberID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetMemberOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s: %d paid, %d reward used\n",
//	        o.ID, o.TotalPayAmount, o.RewardUsed)
//	}
type GetMemberOrdersQuery struct {
	memberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMemberOrdersQuery creates a query for a member's orders.
// Validates the member identifier.
func NewGetMemberOrdersQuery(memberID kernel.UUID) (GetMemberOrdersQuery, error) {
	if err := memberID.Validate(); err != nil {
		return GetMemberOrdersQuery{}, err
	}

	return GetMemberOrdersQuery{
		memberID: memberID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MemberID returns the identifier of the member whose orders are requested.
func (q GetMemberOrdersQuery) MemberID() kernel.UUID {
	return q.memberID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMemberOrdersQueryIsNotConstructed if validation fails.
func (q GetMemberOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMemberOrdersQueryIsNotConstructed)
}

// GetMemberOrdersQueryResponse represents one order in the member's history.
// Carries the amounts a support agent needs to reason about refunds without
// loading the full aggregate.
type GetMemberOrdersQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	TotalPayAmount     int
	RewardUsed         int
	RemainRefundAmount int
	RemainRefundReward int
	CreatedAt          time.Time
}
