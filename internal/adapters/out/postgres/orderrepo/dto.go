// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"vidstore/internal/adapters/out/postgres/memberrepo"
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/order"
	"vidstore/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for querying by member and by payment status.
//
// The Member association is read-only from this package's point of view: it is
// preloaded to rehydrate the buyer, but reward balance changes are persisted
// through the member repository.
type OrderDTO struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey"`
	MemberID           uuid.UUID             `gorm:"type:uuid;not null;index"`
	Member             *memberrepo.MemberDTO `gorm:"foreignKey:MemberID"`
	PaymentReference   string                `gorm:"type:varchar(255)"`
	TotalPayAmount     int                   `gorm:"type:int;not null"`
	RewardUsed         int                   `gorm:"type:int;not null"`
	RemainRefundAmount int                   `gorm:"type:int;not null"`
	RemainRefundReward int                   `gorm:"type:int;not null"`
	Status             int                   `gorm:"type:int;not null;index"`
	CreatedAt          time.Time             `gorm:"not null"`
	CompletedAt        *time.Time
	Lines              []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents the database structure for persisting order lines.
// Each line records one purchased video at its price at purchase time.
type OrderLineDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Price   int       `gorm:"type:int;not null"`
	Status  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// The buyer is referenced by ID only; its row is owned by the member repository.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(order.Lines()))

	for _, l := range order.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:      l.ID().Bytes(),
			OrderID: orderID,
			VideoID: l.VideoID().Bytes(),
			Price:   l.Price(),
			Status:  int(l.Status()),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		MemberID:           order.Member().ID().Bytes(),
		PaymentReference:   order.PaymentReference(),
		TotalPayAmount:     order.TotalPayAmount(),
		RewardUsed:         order.RewardUsed(),
		RemainRefundAmount: order.RemainRefundAmount(),
		RemainRefundReward: order.RemainRefundReward(),
		Status:             int(order.Status()),
		CreatedAt:          order.CreatedAt(),
		CompletedAt:        order.CompletedAt(),
		Lines:              lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Requires the Member association to be preloaded; reconstructs the complete
// aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	if dto.Member == nil {
		return nil, errs.NewValueIsRequiredError("order member")
	}

	buyer, err := memberrepo.ToDomain(*dto.Member)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.PaymentReference,
		dto.TotalPayAmount,
		dto.RewardUsed,
		dto.RemainRefundAmount,
		dto.RemainRefundReward,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.CompletedAt,
		buyer,
		lines,
	)
}

// lineToDomain converts an order line DTO to its domain entity.
func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	videoID, err := kernel.UUIDFromBytes(dto.VideoID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, videoID, dto.Price, order.Status(dto.Status))
}
