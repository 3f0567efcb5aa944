package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings"
)

const (
	msgInvalidKind  = "неизвестный вид бронирования"
	msgInvalidInput = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/bookings/{kind}
//
// Query-параметры фильтрации: userId, startDate, endDate, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{kind} - Invalid kind: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	req, err := ParseQuery(kind, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{kind} - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.service.GetAdminBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/{kind} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/bookings/{kind} - Failed to get bookings: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{kind} - Fetched %d bookings: kind=%s", len(result.Bookings), kind)
	handlers.RespondJSON(w, http.StatusOK, result)
}
