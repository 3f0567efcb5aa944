package get_my_bookings

import (
	"context"

	myBookings "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/my_bookings"
)

type MyBookingsUseCase interface {
	Execute(ctx context.Context, req *myBookings.Request) (*myBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
