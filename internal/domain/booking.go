package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a booking of one of the four kinds.
// ServiceDate is the date the service occurs: the booking date for
// car/flight/hotel, the meal date for restaurant.
type Booking struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        Kind
	SubjectID   uuid.UUID
	ServiceDate time.Time
	Status      string

	// Denormalized subject data for history
	SubjectName     string
	SubjectImage    *string
	SubjectLocation *string

	// Flight details
	Adults *int
	Kids   *int

	// Hotel details
	RoomType     *string
	NoOfPeople   *int
	CheckinDate  *time.Time
	CheckoutDate *time.Time

	// Restaurant details
	MealTime    *string
	TotalPeople *int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// View returns the partition the booking falls into at the given instant
func (b *Booking) View(now time.Time) View {
	return ViewOf(b.ServiceDate, now)
}

// IsCancellable reports whether a booking with the given service date may
// still be cancelled at the instant now. The lead-time rule: the difference
// in days must be at least CancellationNoticeDays. The quotient is
// intentionally not floored or rounded - a shortfall of even one
// millisecond before the 7-day mark makes the booking non-cancellable,
// while exactly 7.0 days is still cancellable.
func IsCancellable(serviceDate, now time.Time) bool {
	diffDays := float64(serviceDate.Sub(now).Milliseconds()) / float64(millisPerDay)
	return diffDays >= CancellationNoticeDays
}

// AdminBookingsFilter фильтр для выборки бронирований в админке
type AdminBookingsFilter struct {
	Kind      Kind       // Обязательный параметр
	UserID    *uuid.UUID // Фильтр по пользователю (опционально)
	StartDate *time.Time // Начало периода по service_date (опционально)
	EndDate   *time.Time // Конец периода по service_date (опционально)
	Status    *string    // Фильтр по статусу (опционально)
}
