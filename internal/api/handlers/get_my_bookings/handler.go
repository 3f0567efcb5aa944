package get_my_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/middleware"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	myBookings "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/my_bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidView   = "некорректный view, ожидается upcoming или past"
	msgForbidden     = "доступ запрещен"
	msgInvalidInput  = "некорректные параметры запроса"
	msgUnauthorized  = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase MyBookingsUseCase
	logger  Logger
}

func NewHandler(useCase MyBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
//
// Query-параметры:
//   - view: upcoming (по умолчанию) или past
//   - carPage, flightPage, hotelPage, restaurantPage: текущая страница
//     соответствующего вида (1-indexed, по умолчанию 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user identity")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Чужие бронирования видит только администратор
	if authUserID != userID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%s, requested=%s", authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()

	view := domain.ViewUpcoming
	if viewStr := query.Get("view"); viewStr != "" {
		view, err = domain.ParseView(viewStr)
		if err != nil {
			h.logger.Warn("GET /users/{id}/bookings - Invalid view: %v", err)
			handlers.RespondBadRequest(w, msgInvalidView)
			return
		}
	}

	pages := make(map[domain.Kind]int, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		param := string(kind) + "Page"
		if pageStr := query.Get(param); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page < 1 {
				h.logger.Warn("GET /users/{id}/bookings - Invalid %s: %q", param, pageStr)
				handlers.RespondBadRequest(w, msgInvalidInput)
				return
			}
			pages[kind] = page
		}
	}

	result, err := h.useCase.Execute(r.Context(), &myBookings.Request{
		UserID: userID,
		View:   view,
		Pages:  pages,
	})
	if err != nil {
		switch {
		case errors.Is(err, myBookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to aggregate bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Aggregated bookings: user_id=%s, view=%s", userID, view)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
