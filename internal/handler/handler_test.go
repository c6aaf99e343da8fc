package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/soyj0/GroomPay/internal/handler/dto"
	hmocks "github.com/soyj0/GroomPay/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockPaymentSvc, *hmocks.MockNotificationSvc, http.Handler) {
	t.Helper()
	paymentSvc := hmocks.NewMockPaymentSvc(t)
	notificationSvc := hmocks.NewMockNotificationSvc(t)

	h := NewHandler(paymentSvc, notificationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/payments/confirm", h.ConfirmPayment)
		api.POST("/payments/:paymentKey/cancel", h.CancelPayment)
		api.GET("/payments/:paymentKey", h.GetPayment)
		api.DELETE("/payments/:paymentKey", h.DeletePayment)
		api.GET("/users/:id/notifications", h.GetUserNotifications)
	}

	return paymentSvc, notificationSvc, r
}

func confirmBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.ConfirmPaymentRequest{
		QuoteID:    uuid.New().String(),
		CustomerID: uuid.New().String(),
		PaymentKey: "pk_1",
		OrderID:    "order_1",
		Amount:     50000,
	})
	require.NoError(t, err)
	return body
}

// --- Confirm ---

func TestHandler_ConfirmPayment_Success(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	receipt := &domain.PaymentReceipt{
		PaymentKey:      "pk_1",
		OrderID:         "order_1",
		Status:          "결제 완료",
		Method:          "카드",
		ApprovedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Amount:          50000,
		SelectedQuoteID: "sq1",
		PaymentTitle:    "퍼피살롱 강남점",
		Message:         "결제 승인 성공",
	}
	paymentSvc.EXPECT().Confirm(mock.Anything, mock.Anything).Return(receipt, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", bytes.NewReader(confirmBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pk_1", resp.PaymentKey)
	assert.Equal(t, "결제 완료", resp.Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", resp.ApprovedAt)
	assert.Equal(t, "결제 승인 성공", resp.Message)
}

func TestHandler_ConfirmPayment_InvalidBody(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	body := `{"quote_id":"not-a-uuid","customer_id":"x","payment_key":"","order_id":"","amount":0}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	paymentSvc.AssertNotCalled(t, "Confirm")
}

func TestHandler_ConfirmPayment_QuoteNotFound(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Confirm(mock.Anything, mock.Anything).Return(nil, domain.ErrQuoteNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", bytes.NewReader(confirmBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ConfirmPayment_AlreadyReserved(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Confirm(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyReserved)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", bytes.NewReader(confirmBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmPayment_InternalErrorIsOpaque(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Confirm(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", bytes.NewReader(confirmBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// --- Cancel ---

func TestHandler_CancelPayment_Success(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	receipt := &domain.CancelReceipt{
		PaymentKey:      "pk_1",
		Status:          "결제 취소",
		Method:          "카드",
		CancelReason:    "고객 요청",
		SelectedQuoteID: "sq1",
		Message:         "결제 취소 성공",
	}
	paymentSvc.EXPECT().Cancel(mock.Anything, "pk_1", "고객 요청").Return(receipt, nil)

	body, _ := json.Marshal(dto.CancelPaymentRequest{CancelReason: "고객 요청"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/pk_1/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "결제 취소", resp.Status)
	assert.Equal(t, "고객 요청", resp.CancelReason)
	assert.Equal(t, "결제 취소 성공", resp.Message)
}

func TestHandler_CancelPayment_MissingReason(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/pk_1/cancel", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	paymentSvc.AssertNotCalled(t, "Cancel")
}

func TestHandler_CancelPayment_NotFound(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Cancel(mock.Anything, "missing", "고객 요청").
		Return(nil, domain.ErrPaymentNotFound)

	body, _ := json.Marshal(dto.CancelPaymentRequest{CancelReason: "고객 요청"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/missing/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Detail / delete ---

func TestHandler_GetPayment_Success(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().GetDetail(mock.Anything, "pk_1").Return(&domain.PaymentReceipt{
		PaymentKey: "pk_1",
		Status:     "결제 완료",
		Message:    "결제 내역 조회 성공",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/pk_1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "결제 내역 조회 성공", resp.Message)
}

func TestHandler_GetPayment_NotFound(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().GetDetail(mock.Anything, "missing").Return(nil, domain.ErrPaymentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeletePayment_Success(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Delete(mock.Anything, "pk_1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/payments/pk_1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())
}

func TestHandler_DeletePayment_NotFound(t *testing.T) {
	paymentSvc, _, r := setupRouter(t)

	paymentSvc.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrPaymentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/payments/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Notifications ---

func TestHandler_GetUserNotifications_Success(t *testing.T) {
	_, notificationSvc, r := setupRouter(t)

	userID := uuid.New().String()
	notificationSvc.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Notification{
		{
			ID:        uuid.New().String(),
			UserID:    userID,
			Role:      domain.RoleCustomer,
			Type:      domain.NotificationTypeReservation,
			Message:   "예약이 완료되었습니다.",
			CreatedAt: time.Now().UTC(),
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, userID, resp[0].UserID)
	assert.Equal(t, "예약 알림", resp[0].Type)
}

func TestHandler_GetUserNotifications_Empty(t *testing.T) {
	_, notificationSvc, r := setupRouter(t)

	userID := uuid.New().String()
	notificationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetUserNotifications_InvalidID(t *testing.T) {
	_, notificationSvc, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	notificationSvc.AssertNotCalled(t, "ListByUser")
}
