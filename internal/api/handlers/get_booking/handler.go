package get_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/middleware"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings"
)

const (
	msgInvalidKind      = "неизвестный вид бронирования"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgUnauthorized     = "пользователь не аутентифицирован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{kind}/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	kind, err := domain.ParseKind(vars["kind"])
	if err != nil {
		h.logger.Warn("GET /bookings/{kind}/{id} - Invalid kind: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{kind}/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{kind}/{id} - Missing user identity")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	booking, err := h.service.GetByID(r.Context(), kind, bookingID, userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{kind}/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{kind}/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{kind}/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{kind}/{id} - Booking fetched: booking_id=%s, user_id=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
