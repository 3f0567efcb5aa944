package remove_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	bookingRepo "github.com/easy-tripzy/Tripzy-BookingService/internal/infra/storage/booking"
)

// defaultCancelReason причина отмены по умолчанию
const defaultCancelReason = "Cancelled by user"

// UseCase use case удаления бронирования.
// Исход зависит от временного положения бронирования:
// предстоящее отменяется (soft delete) при соблюдении правила 7 дней,
// прошедшее удаляется из хранилища без проверки заблаговременности
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case удаления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RemoveBooking: kind=%s, booking=%s, user=%s, admin=%t",
		req.Kind, req.BookingID, req.UserID, req.IsAdmin)

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("RemoveBooking: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.Kind, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RemoveBooking: %s booking id=%s not found", req.Kind, req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RemoveBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Проверка принадлежности: администратор может удалять чужие бронирования
	if booking.UserID != req.UserID && !req.IsAdmin {
		uc.logger.Warn("RemoveBooking: user=%s has no access to booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// Cancelled - терминальное состояние
	if booking.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	now := uc.timeProvider.Now()

	// Прошедшее бронирование удаляется без проверки заблаговременности
	if booking.View(now) == domain.ViewPast {
		return uc.deletePast(ctx, req)
	}

	return uc.cancelUpcoming(ctx, req, booking, now)
}

// deletePast удаляет прошедшее бронирование из хранилища
func (uc *UseCase) deletePast(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.bookingRepo.Delete(ctx, req.Kind, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RemoveBooking: failed to delete booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("RemoveBooking: deleted past %s booking id=%s", req.Kind, req.BookingID)

	return &Response{BookingID: req.BookingID, Kind: req.Kind, Outcome: OutcomeDeleted}, nil
}

// cancelUpcoming отменяет предстоящее бронирование с проверкой правила 7 дней.
// Администратор может отменять без ограничения по сроку
func (uc *UseCase) cancelUpcoming(ctx context.Context, req *Request, booking *domain.Booking, now time.Time) (*Response, error) {
	if !req.IsAdmin && !domain.IsCancellable(booking.ServiceDate, now) {
		uc.logger.Info("RemoveBooking: booking id=%s is too close to service date %s to cancel",
			req.BookingID, booking.ServiceDate.Format(domain.DateFormat))
		return nil, ErrTooLateToCancel
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultCancelReason
	}

	if err := uc.bookingRepo.Cancel(ctx, req.Kind, req.BookingID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RemoveBooking: failed to cancel booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.logger.Info("RemoveBooking: cancelled upcoming %s booking id=%s", req.Kind, req.BookingID)

	return &Response{BookingID: req.BookingID, Kind: req.Kind, Outcome: OutcomeCancelled}, nil
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	return nil
}
