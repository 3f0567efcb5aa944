package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/middleware"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	createBooking "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidKind        = "неизвестный вид бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSubjectNotFound    = "объект каталога не найден"
	msgDateInPast         = "дата услуги не может быть в прошлом"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		h.logger.Warn("POST /bookings/{kind} - Invalid kind: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{kind} - Missing user identity")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{kind} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID, kind)
	if err != nil {
		h.logger.Warn("POST /bookings/{kind} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSubjectNotFound):
			h.logger.Warn("POST /bookings/{kind} - Subject not found: kind=%s, subject_id=%s", kind, req.SubjectID)
			handlers.RespondNotFound(w, msgSubjectNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings/{kind} - Service date in the past: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{kind} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{kind} - Failed to create booking: user_id=%s, kind=%s, error=%v",
				userID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{kind} - Booking created: id=%s, user_id=%s, kind=%s", result.ID, userID, kind)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
