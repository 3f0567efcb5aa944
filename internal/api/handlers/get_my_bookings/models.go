package get_my_bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	myBookings "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/my_bookings"
)

// SubjectResponse данные объекта каталога
type SubjectResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Location string    `json:"location,omitempty"`
	Price    *float64  `json:"price,omitempty"`
	Rating   *float64  `json:"rating,omitempty"`
}

// BookingItemResponse бронирование со встроенным объектом каталога.
// Subject == null, если объект не удалось зарезолвить
type BookingItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate string    `json:"serviceDate"`
	Status      string    `json:"status"`

	SubjectName string           `json:"subjectName"`
	Subject     *SubjectResponse `json:"subject,omitempty"`

	Adults       *int    `json:"adults,omitempty"`
	Kids         *int    `json:"kids,omitempty"`
	RoomType     *string `json:"roomType,omitempty"`
	NoOfPeople   *int    `json:"noofPeople,omitempty"`
	CheckinDate  *string `json:"checkinDate,omitempty"`
	CheckoutDate *string `json:"checkoutDate,omitempty"`
	MealTime     *string `json:"mealTime,omitempty"`
	TotalPeople  *int    `json:"totalPeople,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
}

// SectionResponse агрегированная секция одного вида
type SectionResponse struct {
	Kind        string                `json:"kind"`
	Bookings    []BookingItemResponse `json:"bookings"`
	Page        int                   `json:"page"`
	TotalPages  int                   `json:"totalPages"`
	TotalCount  int                   `json:"totalCount"`
	Unavailable bool                  `json:"unavailable,omitempty"`
}

// MyBookingsResponse агрегированный ответ по всем видам
type MyBookingsResponse struct {
	View     string            `json:"view"`
	Sections []SectionResponse `json:"sections"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *myBookings.Response) *MyBookingsResponse {
	out := &MyBookingsResponse{
		View:     string(resp.View),
		Sections: make([]SectionResponse, len(resp.Sections)),
	}

	for i, section := range resp.Sections {
		out.Sections[i] = fromSection(section)
	}

	return out
}

func fromSection(section myBookings.Section) SectionResponse {
	resp := SectionResponse{
		Kind:        string(section.Kind),
		Bookings:    make([]BookingItemResponse, len(section.Bookings)),
		Page:        section.Page,
		TotalPages:  section.TotalPages,
		TotalCount:  section.TotalCount,
		Unavailable: section.Unavailable,
	}

	for i, item := range section.Bookings {
		resp.Bookings[i] = fromBookingWithSubject(item)
	}

	return resp
}

func fromBookingWithSubject(item myBookings.BookingWithSubject) BookingItemResponse {
	b := item.Booking

	resp := BookingItemResponse{
		ID:                 b.ID,
		Kind:               string(b.Kind),
		SubjectID:          b.SubjectID,
		ServiceDate:        b.ServiceDate.Format(domain.DateFormat),
		Status:             b.Status,
		SubjectName:        b.SubjectName,
		Adults:             b.Adults,
		Kids:               b.Kids,
		RoomType:           b.RoomType,
		NoOfPeople:         b.NoOfPeople,
		MealTime:           b.MealTime,
		TotalPeople:        b.TotalPeople,
		CancellationReason: b.CancellationReason,
	}

	if b.CheckinDate != nil {
		checkin := b.CheckinDate.Format(domain.DateFormat)
		resp.CheckinDate = &checkin
	}
	if b.CheckoutDate != nil {
		checkout := b.CheckoutDate.Format(domain.DateFormat)
		resp.CheckoutDate = &checkout
	}
	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	if item.Subject != nil {
		resp.Subject = &SubjectResponse{
			ID:       item.Subject.ID,
			Name:     item.Subject.Name,
			Image:    item.Subject.Image,
			Location: item.Subject.Location,
			Price:    item.Subject.Price,
			Rating:   item.Subject.Rating,
		}
	}

	return resp
}
