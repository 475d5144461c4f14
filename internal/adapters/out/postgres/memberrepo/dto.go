// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// This package implements the repository pattern for the member domain aggregate, handling
// the conversion between domain entities and database representations.
package memberrepo

import (
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting member aggregates.
// The reward column is the member's spendable credit balance and is updated
// inside the same transaction as the orders that move it.
type MemberDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Reward int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

// fromDomain converts a member domain aggregate to its database representation.
func fromDomain(member *member.Member) MemberDTO {
	return MemberDTO{
		ID:     member.ID().Bytes(),
		Name:   member.Name(),
		Reward: member.Reward(),
	}
}

// ToDomain converts a database DTO to a member domain aggregate.
// Exported because the order repository rehydrates the buyer from the same
// row when loading an order.
func ToDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, dto.Reward)
}
