package queries

import (
	"context"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMemberOrdersQueryHandler retrieves a member's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetMemberOrdersQueryHandler(db)
//	query, _ := NewGetMemberOrdersQuery(memberID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetMemberOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMemberOrdersQueryHandler creates a handler for member order history queries.
// Requires a GORM database connection for query execution.
func NewGetMemberOrdersQueryHandler(db *gorm.DB) GetMemberOrdersQueryHandler {
	return GetMemberOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the member's orders.
// Returns order summaries sorted newest first.
func (h GetMemberOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMemberOrdersQuery,
) ([]GetMemberOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMemberOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_pay_amount,
			reward_used,
			remain_refund_amount,
			remain_refund_reward,
			created_at
		FROM orders
		WHERE member_id = ?
		ORDER BY created_at DESC
	`, query.MemberID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetMemberOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&orderResp.TotalPayAmount,
			&orderResp.RewardUsed,
			&orderResp.RemainRefundAmount,
			&orderResp.RemainRefundReward,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
