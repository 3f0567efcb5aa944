package remove_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/middleware"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	removeBooking "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/remove_booking"
)

const (
	msgInvalidKind      = "неизвестный вид бронирования"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgAlreadyCancelled = "бронирование уже отменено"
	msgTooLateToCancel  = "отмена возможна не позднее чем за 7 дней до даты услуги"
	msgUnauthorized     = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase RemoveBookingUseCase
	logger  Logger
}

func NewHandler(useCase RemoveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{kind}/{bookingId}
// Причина отмены передается опциональным query-параметром reason
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	kind, err := domain.ParseKind(vars["kind"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{kind}/{id} - Invalid kind: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{kind}/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{kind}/{id} - Missing user identity")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &removeBooking.Request{
		Kind:      kind,
		BookingID: bookingID,
		UserID:    userID,
		IsAdmin:   middleware.IsAdmin(r.Context()),
		Reason:    r.URL.Query().Get("reason"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, removeBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{kind}/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, removeBooking.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{kind}/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, removeBooking.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /bookings/{kind}/{id} - Already cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, removeBooking.ErrTooLateToCancel):
			h.logger.Info("DELETE /bookings/{kind}/{id} - Too late to cancel: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgTooLateToCancel)

		case errors.Is(err, removeBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{kind}/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /bookings/{kind}/{id} - Failed to remove booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{kind}/{id} - Booking removed: booking_id=%s, outcome=%s", bookingID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
