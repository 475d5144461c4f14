package queries

import (
	"context"
	"database/sql"
	"errors"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/order"
	"vidstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and its lines from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Order %s has %d lines\n", detail.ID, len(detail.Lines))
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order and its lines.
// Returns an ObjectNotFoundError if the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse
	var id, memberID uuid.UUID
	var status int
	var completedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			member_id,
			payment_reference,
			status,
			total_pay_amount,
			reward_used,
			remain_refund_amount,
			remain_refund_reward,
			created_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&memberID,
		&response.PaymentReference,
		&status,
		&response.TotalPayAmount,
		&response.RewardUsed,
		&response.RemainRefundAmount,
		&response.RemainRefundReward,
		&response.CreatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = respID

	respMemberID, err := kernel.UUIDFromBytes(memberID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.MemberID = respMemberID

	response.Status = order.Status(status).String()
	if completedAt.Valid {
		completed := completedAt.Time
		response.CompletedAt = &completed
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]GetOrderLineResponse, error) {
	lines := make([]GetOrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			video_id,
			price,
			status
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderLineResponse
		var id, videoID uuid.UUID
		var status int

		if err = rows.Scan(&id, &videoID, &line.Price, &status); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		lineVideoID, idErr := kernel.UUIDFromBytes(videoID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.VideoID = lineVideoID

		line.Status = order.Status(status).String()
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
