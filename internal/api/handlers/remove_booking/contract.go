package remove_booking

import (
	"context"

	removeBooking "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/remove_booking"
)

type RemoveBookingUseCase interface {
	Execute(ctx context.Context, req *removeBooking.Request) (*removeBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
