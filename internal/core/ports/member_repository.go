package ports

import (
	"context"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
// Reward balance changes caused by order operations must be persisted through
// Update in the same transaction as the order itself.
type MemberRepository interface {
	// Add persists a new member aggregate to storage.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update persists changes to an existing member aggregate,
	// in particular its reward balance.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
}
