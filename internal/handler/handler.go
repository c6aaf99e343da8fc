package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/soyj0/GroomPay/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type PaymentSvc interface {
	Confirm(ctx context.Context, input domain.ConfirmPaymentInput) (*domain.PaymentReceipt, error)
	Cancel(ctx context.Context, paymentKey, cancelReason string) (*domain.CancelReceipt, error)
	GetDetail(ctx context.Context, paymentKey string) (*domain.PaymentReceipt, error)
	Delete(ctx context.Context, paymentKey string) error
}

type NotificationSvc interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}

type Handler struct {
	paymentService      PaymentSvc
	notificationService NotificationSvc
}

func NewHandler(paymentService PaymentSvc, notificationService NotificationSvc) *Handler {
	return &Handler{
		paymentService:      paymentService,
		notificationService: notificationService,
	}
}

// Payments

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	receipt, err := h.paymentService.Confirm(c.Request.Context(), domain.ConfirmPaymentInput{
		QuoteID:    req.QuoteID,
		CustomerID: req.CustomerID,
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(receipt))
}

func (h *Handler) CancelPayment(c *ginext.Context) {
	paymentKey := c.Param("paymentKey")
	if paymentKey == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment key is required"})
		return
	}

	var req dto.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	receipt, err := h.paymentService.Cancel(c.Request.Context(), paymentKey, req.CancelReason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancelResponse(receipt))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	paymentKey := c.Param("paymentKey")
	if paymentKey == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment key is required"})
		return
	}

	receipt, err := h.paymentService.GetDetail(c.Request.Context(), paymentKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(receipt))
}

func (h *Handler) DeletePayment(c *ginext.Context) {
	paymentKey := c.Param("paymentKey")
	if paymentKey == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment key is required"})
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), paymentKey); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Notifications

func (h *Handler) GetUserNotifications(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	notifications, err := h.notificationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrQuoteNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrShopNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyReserved),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
