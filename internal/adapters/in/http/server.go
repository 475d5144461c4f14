package http

import (
	"errors"
	"net/http"
	"time"

	"vidstore/internal/core/application/usecases/commands"
	"vidstore/internal/core/application/usecases/queries"
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"
	"vidstore/internal/core/domain/model/order"
	"vidstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for the video store.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	cancelVideoOrderHandler commands.CancelVideoOrderCommandHandler
	convertRewardHandler    commands.ConvertRewardCommandHandler

	// Query handlers
	getMemberOrdersHandler queries.GetMemberOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelVideoOrderHandler commands.CancelVideoOrderCommandHandler,
	convertRewardHandler commands.ConvertRewardCommandHandler,
	getMemberOrdersHandler queries.GetMemberOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		cancelVideoOrderHandler: cancelVideoOrderHandler,
		convertRewardHandler:    convertRewardHandler,
		getMemberOrdersHandler:  getMemberOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/payment", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/videos/:videoId/cancel", s.CancelVideoOrder)
	api.POST("/orders/:orderId/convert-reward", s.ConvertReward)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/members/:memberId/orders", s.GetMemberOrders)
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body for POST /orders.
type NewOrderRequest struct {
	MemberID string   `json:"member_id"`
	VideoIDs []string `json:"video_ids"`
	Reward   int      `json:"reward"`
}

// NewOrderResponse returns the identifier assigned to the created order.
type NewOrderResponse struct {
	OrderID string `json:"order_id"`
}

// PaymentRequest is the body for POST /orders/:orderId/payment.
type PaymentRequest struct {
	PaymentReference string `json:"payment_reference"`
	Amount           int    `json:"amount"`
}

// ConvertRewardRequest is the body for POST /orders/:orderId/convert-reward.
type ConvertRewardRequest struct {
	Amount int `json:"amount"`
}

// RefundResponse reports how a cancellation was split between cash and reward.
type RefundResponse struct {
	RefundAmount int `json:"refund_amount"`
	RefundReward int `json:"refund_reward"`
}

// CreateOrder handles POST /api/v1/orders - registers a new purchase.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	memberID, err := kernel.UUIDFromString(request.MemberID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid member id: " + request.MemberID,
		})
	}

	videoIDs := make([]kernel.UUID, 0, len(request.VideoIDs))
	for _, rawID := range request.VideoIDs {
		videoID, idErr := kernel.UUIDFromString(rawID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid video id: " + rawID,
			})
		}
		videoIDs = append(videoIDs, videoID)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, memberID, videoIDs, request.Reward)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, NewOrderResponse{OrderID: orderID.String()})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/payment - confirms payment.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request PaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, request.PaymentReference, request.Amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment data: " + err.Error(),
		})
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels the whole order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	refund, handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, RefundResponse{
		RefundAmount: refund.Amount(),
		RefundReward: refund.Reward(),
	})
}

// CancelVideoOrder handles POST /api/v1/orders/:orderId/videos/:videoId/cancel -
// cancels a single video within the order.
func (s *Server) CancelVideoOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	videoID, err := kernel.UUIDFromString(ctx.Param("videoId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid video id",
		})
	}

	cmd, err := commands.NewCancelVideoOrderCommand(orderID, videoID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	refund, handleErr := s.cancelVideoOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, RefundResponse{
		RefundAmount: refund.Amount(),
		RefundReward: refund.Reward(),
	})
}

// ConvertReward handles POST /api/v1/orders/:orderId/convert-reward -
// moves part of the refundable remainder onto the member's reward balance.
func (s *Server) ConvertReward(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request ConvertRewardRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConvertRewardCommand(orderID, request.Amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid conversion data: " + err.Error(),
		})
	}

	if handleErr := s.convertRewardHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderSummary is a single row in the member order listing.
type OrderSummary struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	TotalPayAmount     int    `json:"total_pay_amount"`
	RewardUsed         int    `json:"reward_used"`
	RemainRefundAmount int    `json:"remain_refund_amount"`
	RemainRefundReward int    `json:"remain_refund_reward"`
	CreatedAt          string `json:"created_at"`
}

// OrderLine is one purchased video within an order detail response.
type OrderLine struct {
	ID      string `json:"id"`
	VideoID string `json:"video_id"`
	Price   int    `json:"price"`
	Status  string `json:"status"`
}

// OrderDetail is the full order view returned by GET /orders/:orderId.
type OrderDetail struct {
	ID                 string      `json:"id"`
	MemberID           string      `json:"member_id"`
	PaymentReference   string      `json:"payment_reference,omitempty"`
	Status             string      `json:"status"`
	TotalPayAmount     int         `json:"total_pay_amount"`
	RewardUsed         int         `json:"reward_used"`
	RemainRefundAmount int         `json:"remain_refund_amount"`
	RemainRefundReward int         `json:"remain_refund_reward"`
	CreatedAt          string      `json:"created_at"`
	CompletedAt        *string     `json:"completed_at,omitempty"`
	Lines              []OrderLine `json:"lines"`
}

// GetMemberOrders handles GET /api/v1/members/:memberId/orders -
// lists a member's orders, newest first.
func (s *Server) GetMemberOrders(ctx echo.Context) error {
	memberID, err := kernel.UUIDFromString(ctx.Param("memberId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid member id",
		})
	}

	query, err := queries.NewGetMemberOrdersQuery(memberID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getMemberOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, row := range orders {
		response[i] = OrderSummary{
			ID:                 row.ID.String(),
			Status:             row.Status,
			TotalPayAmount:     row.TotalPayAmount,
			RewardUsed:         row.RewardUsed,
			RemainRefundAmount: row.RemainRefundAmount,
			RemainRefundReward: row.RemainRefundReward,
			CreatedAt:          row.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	lines := make([]OrderLine, len(detail.Lines))
	for i, line := range detail.Lines {
		lines[i] = OrderLine{
			ID:      line.ID.String(),
			VideoID: line.VideoID.String(),
			Price:   line.Price,
			Status:  line.Status,
		}
	}

	response := OrderDetail{
		ID:                 detail.ID.String(),
		MemberID:           detail.MemberID.String(),
		PaymentReference:   detail.PaymentReference,
		Status:             detail.Status,
		TotalPayAmount:     detail.TotalPayAmount,
		RewardUsed:         detail.RewardUsed,
		RemainRefundAmount: detail.RemainRefundAmount,
		RemainRefundReward: detail.RemainRefundReward,
		CreatedAt:          detail.CreatedAt.Format(time.RFC3339),
		Lines:              lines,
	}
	if detail.CompletedAt != nil {
		completed := detail.CompletedAt.Format(time.RFC3339)
		response.CompletedAt = &completed
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorResponse maps use case errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrAlreadyCanceled),
		errors.Is(err, order.ErrOrderNotValid),
		errors.Is(err, member.ErrRewardNotEnough):
		code = http.StatusConflict
	case errors.Is(err, order.ErrPriceMismatch),
		errors.Is(err, order.ErrInvalidAmount),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
