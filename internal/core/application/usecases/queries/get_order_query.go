package queries

import (
	"errors"
	"time"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with all its lines.
// Returns the detailed read model used by order detail pages.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	for _, line := range detail.Lines {
//	    fmt.Printf("video %s: %d (%s)\n", line.VideoID, line.Price, line.Status)
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
// Validates the order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse represents the full order read model.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	MemberID           kernel.UUID
	PaymentReference   string
	Status             string
	TotalPayAmount     int
	RewardUsed         int
	RemainRefundAmount int
	RemainRefundReward int
	CreatedAt          time.Time
	CompletedAt        *time.Time
	Lines              []GetOrderLineResponse
}

// GetOrderLineResponse represents one purchased video within the order.
type GetOrderLineResponse struct {
	ID      kernel.UUID
	VideoID kernel.UUID
	Price   int
	Status  string
}
