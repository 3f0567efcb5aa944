package remove_booking

import (
	"github.com/google/uuid"

	removeBooking "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/remove_booking"
)

// RemoveBookingResponse HTTP response model
// Outcome сообщает, что именно произошло: предстоящее бронирование
// отменяется, прошедшее - удаляется
type RemoveBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Kind      string    `json:"kind"`
	Outcome   string    `json:"outcome"` // "cancelled" | "deleted"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *removeBooking.Response) *RemoveBookingResponse {
	return &RemoveBookingResponse{
		BookingID: resp.BookingID,
		Kind:      string(resp.Kind),
		Outcome:   string(resp.Outcome),
	}
}
