package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/soyj0/GroomPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	beautyDateLayout = "2006-01-02 15:04"
	retentionDays    = 30

	unknownStatusName     = "알 수 없는 상태"
	confirmSuccessMessage = "결제 승인 성공"
	cancelSuccessMessage  = "결제 취소 성공"
	detailSuccessMessage  = "결제 내역 조회 성공"
)

type PaymentService struct {
	quoteRepo       ports.QuoteRepo
	reservationRepo ports.ReservationRepo
	paymentRepo     ports.PaymentRepo
	shopRepo        ports.ShopRepo
	codeRepo        ports.CommonCodeRepo
	gateway         ports.PaymentGateway
	events          ports.ReservationEvents
	logger          logger.Logger
}

func NewPaymentService(
	quoteRepo ports.QuoteRepo,
	reservationRepo ports.ReservationRepo,
	paymentRepo ports.PaymentRepo,
	shopRepo ports.ShopRepo,
	codeRepo ports.CommonCodeRepo,
	gateway ports.PaymentGateway,
	events ports.ReservationEvents,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		quoteRepo:       quoteRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		shopRepo:        shopRepo,
		codeRepo:        codeRepo,
		gateway:         gateway,
		events:          events,
		logger:          logger,
	}
}

// Confirm runs the payment confirmation workflow: domain preconditions,
// the resilient gateway call, then the atomic reservation transaction.
// The confirmation event fires only after that transaction has committed.
func (s *PaymentService) Confirm(ctx context.Context, input domain.ConfirmPaymentInput) (*domain.PaymentReceipt, error) {
	view, err := s.quoteRepo.GetPaymentView(ctx, input.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if view.CustomerID != input.CustomerID {
		return nil, domain.ErrCustomerNotFound
	}

	// Pre-check only: the unique keys inside CreateReservation decide
	// concurrent duplicates.
	reserved, err := s.reservationRepo.ExistsByQuote(ctx, input.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("check reservation: %w", err)
	}
	if reserved {
		return nil, domain.ErrAlreadyReserved
	}

	shopName, err := s.shopRepo.GetShopName(ctx, view.GroomerID)
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}

	res, err := s.gateway.Confirm(ctx, input.PaymentKey, input.OrderID, input.Amount)
	if err != nil {
		return nil, err
	}

	approvedAtRaw, _ := res["approvedAt"].(string)
	if approvedAtRaw == "" {
		return nil, fmt.Errorf("%w: confirmation response missing approvedAt", domain.ErrGatewayResponse)
	}
	approvedAt, err := time.Parse(time.RFC3339, approvedAtRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: bad approvedAt %q", domain.ErrGatewayResponse, approvedAtRaw)
	}
	method, _ := res["method"].(string)

	selectedQuoteID, err := s.reservationRepo.CreateReservation(ctx, domain.CreateReservationParams{
		QuoteID:      input.QuoteID,
		RequestID:    view.RequestID,
		CustomerID:   view.CustomerID,
		PaymentKey:   input.PaymentKey,
		OrderID:      input.OrderID,
		Amount:       input.Amount,
		Method:       method,
		ApprovedAt:   approvedAt,
		PaymentTitle: shopName,
		CloseRequest: view.RequestType == domain.RequestTypeAll,
	})
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("payment confirmed",
		logger.String("payment_key", input.PaymentKey),
		logger.String("quote_id", input.QuoteID),
		logger.String("selected_quote_id", selectedQuoteID),
		logger.Int64("amount", input.Amount),
	)

	s.events.ReservationConfirmed(domain.ReservationConfirmedEvent{
		CustomerUserID:  view.CustomerUserID,
		CustomerName:    view.CustomerName,
		CustomerChatID:  view.CustomerChatID,
		GroomerUserID:   view.GroomerUserID,
		GroomerNickname: view.GroomerNickname,
		GroomerChatID:   view.GroomerChatID,
		DogName:         view.DogName,
		Amount:          input.Amount,
		BeautyDate:      view.BeautyDate.Format(beautyDateLayout),
	})

	return &domain.PaymentReceipt{
		PaymentKey:      input.PaymentKey,
		OrderID:         input.OrderID,
		Status:          s.statusName(ctx, domain.PaymentStatusCompleted),
		Method:          method,
		ApprovedAt:      approvedAt,
		Amount:          input.Amount,
		SelectedQuoteID: selectedQuoteID,
		PaymentTitle:    shopName,
		Message:         confirmSuccessMessage,
	}, nil
}

// Cancel runs the cancellation workflow. NotFound and precondition errors
// pass through unchanged; anything else surfaces as an internal error with
// the original message preserved.
func (s *PaymentService) Cancel(ctx context.Context, paymentKey, cancelReason string) (*domain.CancelReceipt, error) {
	receipt, err := s.cancel(ctx, paymentKey, cancelReason)
	if err != nil && !isDomainError(err) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	return receipt, err
}

func (s *PaymentService) cancel(ctx context.Context, paymentKey, cancelReason string) (*domain.CancelReceipt, error) {
	res, err := s.gateway.Cancel(ctx, paymentKey, cancelReason)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty cancellation response", domain.ErrGatewayResponse)
	}

	cancelled, err := s.reservationRepo.CancelReservation(ctx, paymentKey, cancelReason)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("payment cancelled",
		logger.String("payment_key", paymentKey),
		logger.String("selected_quote_id", cancelled.SelectedQuoteID),
		logger.String("reason", cancelReason),
	)

	s.events.ReservationCancelled(domain.ReservationCancelledEvent{
		CustomerUserID:  cancelled.CustomerUserID,
		CustomerName:    cancelled.CustomerName,
		CustomerChatID:  cancelled.CustomerChatID,
		GroomerUserID:   cancelled.GroomerUserID,
		GroomerNickname: cancelled.GroomerNickname,
		GroomerChatID:   cancelled.GroomerChatID,
		DogName:         cancelled.DogName,
		Cost:            cancelled.Cost,
		CancelReason:    cancelReason,
	})

	return &domain.CancelReceipt{
		PaymentKey:      paymentKey,
		Status:          s.statusName(ctx, domain.PaymentStatusCancelled),
		Method:          cancelled.Method,
		CancelReason:    cancelReason,
		SelectedQuoteID: cancelled.SelectedQuoteID,
		Message:         cancelSuccessMessage,
	}, nil
}

func (s *PaymentService) GetDetail(ctx context.Context, paymentKey string) (*domain.PaymentReceipt, error) {
	payment, err := s.paymentRepo.GetByPaymentKey(ctx, paymentKey)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &domain.PaymentReceipt{
		PaymentKey:      payment.PaymentKey,
		OrderID:         payment.OrderID,
		Status:          s.statusName(ctx, payment.Status),
		Method:          payment.Method,
		ApprovedAt:      payment.ApprovedAt,
		Amount:          payment.Amount,
		SelectedQuoteID: payment.SelectedQuoteID,
		PaymentTitle:    payment.PaymentTitle,
		CancelReason:    payment.CancelReason,
		Message:         detailSuccessMessage,
	}, nil
}

// Delete is a logical delete; the retention sweep purges the row for real
// after the retention window.
func (s *PaymentService) Delete(ctx context.Context, paymentKey string) error {
	if err := s.paymentRepo.MarkDeleted(ctx, paymentKey); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	s.logger.Info("payment logically deleted",
		logger.String("payment_key", paymentKey),
	)

	return nil
}

// PurgeExpired physically removes payments logically deleted more than the
// retention window ago.
func (s *PaymentService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	purged, err := s.paymentRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge expired payments: %w", err)
	}

	return purged, nil
}

func (s *PaymentService) statusName(ctx context.Context, status domain.PaymentStatus) string {
	name, err := s.codeRepo.FindName(ctx, string(status), domain.PaymentStatusGroup)
	if err != nil {
		return unknownStatusName
	}

	return name
}

// isDomainError reports whether err is already user-actionable or typed and
// must not be re-wrapped as internal.
func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrQuoteNotFound) ||
		errors.Is(err, domain.ErrCustomerNotFound) ||
		errors.Is(err, domain.ErrShopNotFound) ||
		errors.Is(err, domain.ErrPaymentNotFound) ||
		errors.Is(err, domain.ErrAlreadyReserved) ||
		errors.Is(err, domain.ErrAlreadyPaid) ||
		errors.Is(err, domain.ErrPaymentGateway) ||
		errors.Is(err, domain.ErrGatewayResponse) ||
		errors.Is(err, domain.ErrValidation)
}
