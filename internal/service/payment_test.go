package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/soyj0/GroomPay/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type paymentMocks struct {
	quoteRepo       *mocks.MockQuoteRepo
	reservationRepo *mocks.MockReservationRepo
	paymentRepo     *mocks.MockPaymentRepo
	shopRepo        *mocks.MockShopRepo
	codeRepo        *mocks.MockCommonCodeRepo
	gateway         *mocks.MockPaymentGateway
	events          *mocks.MockReservationEvents
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		quoteRepo:       mocks.NewMockQuoteRepo(t),
		reservationRepo: mocks.NewMockReservationRepo(t),
		paymentRepo:     mocks.NewMockPaymentRepo(t),
		shopRepo:        mocks.NewMockShopRepo(t),
		codeRepo:        mocks.NewMockCommonCodeRepo(t),
		gateway:         mocks.NewMockPaymentGateway(t),
		events:          mocks.NewMockReservationEvents(t),
	}

	svc := NewPaymentService(
		m.quoteRepo,
		m.reservationRepo,
		m.paymentRepo,
		m.shopRepo,
		m.codeRepo,
		m.gateway,
		m.events,
		newTestLogger(t),
	)
	return svc, m
}

func chatID(v int64) *int64 { return &v }

func testPaymentView() *domain.QuotePaymentView {
	return &domain.QuotePaymentView{
		QuoteID:         "q1",
		RequestID:       "r1",
		RequestType:     domain.RequestTypeAll,
		QuoteStatus:     domain.QuoteStatusPending,
		Cost:            50000,
		BeautyDate:      time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
		DogName:         "초코",
		CustomerID:      "c1",
		CustomerUserID:  "cu1",
		CustomerName:    "김민지",
		CustomerChatID:  chatID(111),
		GroomerID:       "g1",
		GroomerUserID:   "gu1",
		GroomerNickname: "퍼피살롱",
		GroomerChatID:   chatID(222),
	}
}

func testConfirmInput() domain.ConfirmPaymentInput {
	return domain.ConfirmPaymentInput{
		QuoteID:    "q1",
		CustomerID: "c1",
		PaymentKey: "pk_1",
		OrderID:    "order_1",
		Amount:     50000,
	}
}

func TestPaymentService_Confirm_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	view := testPaymentView()
	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(view, nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("퍼피살롱 강남점", nil)
	m.gateway.EXPECT().Confirm(mock.Anything, "pk_1", "order_1", int64(50000)).Return(map[string]any{
		"approvedAt": "2025-06-01T12:00:00Z",
		"method":     "카드",
	}, nil)

	var gotParams domain.CreateReservationParams
	m.reservationRepo.EXPECT().CreateReservation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, params domain.CreateReservationParams) {
			gotParams = params
		}).
		Return("sq1", nil)

	m.codeRepo.EXPECT().FindName(mock.Anything, "020", "300").Return("결제 완료", nil)
	m.events.EXPECT().ReservationConfirmed(domain.ReservationConfirmedEvent{
		CustomerUserID:  "cu1",
		CustomerName:    "김민지",
		CustomerChatID:  view.CustomerChatID,
		GroomerUserID:   "gu1",
		GroomerNickname: "퍼피살롱",
		GroomerChatID:   view.GroomerChatID,
		DogName:         "초코",
		Amount:          50000,
		BeautyDate:      "2025-06-10 14:30",
	}).Return()

	receipt, err := svc.Confirm(context.Background(), testConfirmInput())

	require.NoError(t, err)
	assert.Equal(t, "pk_1", receipt.PaymentKey)
	assert.Equal(t, "order_1", receipt.OrderID)
	assert.Equal(t, "결제 완료", receipt.Status)
	assert.Equal(t, "카드", receipt.Method)
	assert.Equal(t, "sq1", receipt.SelectedQuoteID)
	assert.Equal(t, "퍼피살롱 강남점", receipt.PaymentTitle)
	assert.Equal(t, "결제 승인 성공", receipt.Message)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), receipt.ApprovedAt.UTC())

	assert.True(t, gotParams.CloseRequest, "open-call request must be closed")
	assert.Equal(t, "r1", gotParams.RequestID)
	assert.Equal(t, "퍼피살롱 강남점", gotParams.PaymentTitle)
}

func TestPaymentService_Confirm_TargetedRequestStaysOpen(t *testing.T) {
	svc, m := newPaymentService(t)

	view := testPaymentView()
	view.RequestType = domain.RequestTypeTargeted
	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(view, nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("퍼피살롱 강남점", nil)
	m.gateway.EXPECT().Confirm(mock.Anything, "pk_1", "order_1", int64(50000)).Return(map[string]any{
		"approvedAt": "2025-06-01T12:00:00Z",
	}, nil)

	var gotParams domain.CreateReservationParams
	m.reservationRepo.EXPECT().CreateReservation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, params domain.CreateReservationParams) {
			gotParams = params
		}).
		Return("sq1", nil)
	m.codeRepo.EXPECT().FindName(mock.Anything, "020", "300").Return("결제 완료", nil)
	m.events.EXPECT().ReservationConfirmed(mock.Anything).Return()

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.NoError(t, err)
	assert.False(t, gotParams.CloseRequest)
}

func TestPaymentService_Confirm_QuoteNotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(nil, domain.ErrQuoteNotFound)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestPaymentService_Confirm_CustomerMismatch(t *testing.T) {
	svc, m := newPaymentService(t)

	view := testPaymentView()
	view.CustomerID = "someone-else"
	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(view, nil)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestPaymentService_Confirm_AlreadyReserved(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(testPaymentView(), nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(true, nil)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyReserved)
}

func TestPaymentService_Confirm_ShopNotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(testPaymentView(), nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("", domain.ErrShopNotFound)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestPaymentService_Confirm_GatewayFailure(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(testPaymentView(), nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("퍼피살롱 강남점", nil)
	m.gateway.EXPECT().Confirm(mock.Anything, "pk_1", "order_1", int64(50000)).
		Return(nil, fmt.Errorf("confirm pk_1: %w", domain.ErrPaymentGateway))

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
}

func TestPaymentService_Confirm_MissingApprovedAt(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(testPaymentView(), nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("퍼피살롱 강남점", nil)
	m.gateway.EXPECT().Confirm(mock.Anything, "pk_1", "order_1", int64(50000)).Return(map[string]any{
		"method": "카드",
	}, nil)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayResponse)
	m.reservationRepo.AssertNotCalled(t, "CreateReservation")
	m.events.AssertNotCalled(t, "ReservationConfirmed")
}

func TestPaymentService_Confirm_NoEventOnReservationFailure(t *testing.T) {
	svc, m := newPaymentService(t)

	m.quoteRepo.EXPECT().GetPaymentView(mock.Anything, "q1").Return(testPaymentView(), nil)
	m.reservationRepo.EXPECT().ExistsByQuote(mock.Anything, "q1").Return(false, nil)
	m.shopRepo.EXPECT().GetShopName(mock.Anything, "g1").Return("퍼피살롱 강남점", nil)
	m.gateway.EXPECT().Confirm(mock.Anything, "pk_1", "order_1", int64(50000)).Return(map[string]any{
		"approvedAt": "2025-06-01T12:00:00Z",
	}, nil)
	m.reservationRepo.EXPECT().CreateReservation(mock.Anything, mock.Anything).
		Return("", domain.ErrAlreadyPaid)

	_, err := svc.Confirm(context.Background(), testConfirmInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	m.events.AssertNotCalled(t, "ReservationConfirmed")
}

func TestPaymentService_Cancel_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().Cancel(mock.Anything, "pk_1", "고객 요청").Return(map[string]any{
		"status": "CANCELED",
	}, nil)
	m.reservationRepo.EXPECT().CancelReservation(mock.Anything, "pk_1", "고객 요청").Return(&domain.CancelledReservation{
		PaymentKey:      "pk_1",
		Method:          "카드",
		SelectedQuoteID: "sq1",
		Cost:            50000,
		DogName:         "초코",
		CustomerUserID:  "cu1",
		CustomerName:    "김민지",
		GroomerUserID:   "gu1",
		GroomerNickname: "퍼피살롱",
	}, nil)
	m.codeRepo.EXPECT().FindName(mock.Anything, "030", "300").Return("결제 취소", nil)
	m.events.EXPECT().ReservationCancelled(domain.ReservationCancelledEvent{
		CustomerUserID:  "cu1",
		CustomerName:    "김민지",
		GroomerUserID:   "gu1",
		GroomerNickname: "퍼피살롱",
		DogName:         "초코",
		Cost:            50000,
		CancelReason:    "고객 요청",
	}).Return()

	receipt, err := svc.Cancel(context.Background(), "pk_1", "고객 요청")

	require.NoError(t, err)
	assert.Equal(t, "pk_1", receipt.PaymentKey)
	assert.Equal(t, "결제 취소", receipt.Status)
	assert.Equal(t, "카드", receipt.Method)
	assert.Equal(t, "고객 요청", receipt.CancelReason)
	assert.Equal(t, "sq1", receipt.SelectedQuoteID)
	assert.Equal(t, "결제 취소 성공", receipt.Message)
}

func TestPaymentService_Cancel_PaymentNotFoundPassesThrough(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().Cancel(mock.Anything, "pk_1", "고객 요청").Return(map[string]any{}, nil)
	m.reservationRepo.EXPECT().CancelReservation(mock.Anything, "pk_1", "고객 요청").
		Return(nil, domain.ErrPaymentNotFound)

	_, err := svc.Cancel(context.Background(), "pk_1", "고객 요청")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	assert.NotErrorIs(t, err, domain.ErrInternal)
}

func TestPaymentService_Cancel_WrapsUnknownErrors(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().Cancel(mock.Anything, "pk_1", "고객 요청").Return(map[string]any{}, nil)
	m.reservationRepo.EXPECT().CancelReservation(mock.Anything, "pk_1", "고객 요청").
		Return(nil, errors.New("connection reset"))

	_, err := svc.Cancel(context.Background(), "pk_1", "고객 요청")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPaymentService_Cancel_EmptyGatewayResponse(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().Cancel(mock.Anything, "pk_1", "고객 요청").Return(nil, nil)

	_, err := svc.Cancel(context.Background(), "pk_1", "고객 요청")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayResponse)
	m.reservationRepo.AssertNotCalled(t, "CancelReservation")
}

func TestPaymentService_GetDetail_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	approvedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.paymentRepo.EXPECT().GetByPaymentKey(mock.Anything, "pk_1").Return(&domain.Payment{
		PaymentKey:      "pk_1",
		OrderID:         "order_1",
		Amount:          50000,
		Method:          "카드",
		Status:          domain.PaymentStatusCompleted,
		ApprovedAt:      approvedAt,
		PaymentTitle:    "퍼피살롱 강남점",
		SelectedQuoteID: "sq1",
	}, nil)
	m.codeRepo.EXPECT().FindName(mock.Anything, "020", "300").Return("결제 완료", nil)

	receipt, err := svc.GetDetail(context.Background(), "pk_1")

	require.NoError(t, err)
	assert.Equal(t, "결제 완료", receipt.Status)
	assert.Equal(t, "결제 내역 조회 성공", receipt.Message)
	assert.Equal(t, approvedAt, receipt.ApprovedAt)
}

func TestPaymentService_GetDetail_UnknownStatusName(t *testing.T) {
	svc, m := newPaymentService(t)

	m.paymentRepo.EXPECT().GetByPaymentKey(mock.Anything, "pk_1").Return(&domain.Payment{
		PaymentKey: "pk_1",
		Status:     domain.PaymentStatus("099"),
	}, nil)
	m.codeRepo.EXPECT().FindName(mock.Anything, "099", "300").Return("", errors.New("no rows"))

	receipt, err := svc.GetDetail(context.Background(), "pk_1")

	require.NoError(t, err)
	assert.Equal(t, "알 수 없는 상태", receipt.Status)
}

func TestPaymentService_GetDetail_NotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.paymentRepo.EXPECT().GetByPaymentKey(mock.Anything, "missing").Return(nil, domain.ErrPaymentNotFound)

	_, err := svc.GetDetail(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_Delete(t *testing.T) {
	svc, m := newPaymentService(t)

	m.paymentRepo.EXPECT().MarkDeleted(mock.Anything, "pk_1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "pk_1"))
}

func TestPaymentService_PurgeExpired(t *testing.T) {
	svc, m := newPaymentService(t)

	var gotCutoff time.Time
	m.paymentRepo.EXPECT().DeleteExpired(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, deletedBefore time.Time) {
			gotCutoff = deletedBefore
		}).
		Return(int64(4), nil)

	purged, err := svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)

	wantCutoff := time.Now().UTC().AddDate(0, 0, -30)
	assert.WithinDuration(t, wantCutoff, gotCutoff, time.Minute)
}
