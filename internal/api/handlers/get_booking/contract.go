package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
