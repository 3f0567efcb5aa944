package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	createBooking "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Даты передаются строками в формате "2006-01-02"
type CreateBookingRequest struct {
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate string    `json:"serviceDate"`
	Status      string    `json:"status,omitempty"`

	Adults       *int    `json:"adults,omitempty"`
	Kids         *int    `json:"kids,omitempty"`
	RoomType     *string `json:"roomType,omitempty"`
	NoOfPeople   *int    `json:"noofPeople,omitempty"`
	CheckinDate  *string `json:"checkinDate,omitempty"`
	CheckoutDate *string `json:"checkoutDate,omitempty"`
	MealTime     *string `json:"mealTime,omitempty"`
	TotalPeople  *int    `json:"totalPeople,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID, kind domain.Kind) (*createBooking.Request, error) {
	serviceDate, err := time.Parse(domain.DateFormat, r.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid serviceDate: %w", err)
	}

	req := &createBooking.Request{
		UserID:      userID,
		Kind:        kind,
		SubjectID:   r.SubjectID,
		ServiceDate: serviceDate,
		Status:      r.Status,
		Adults:      r.Adults,
		Kids:        r.Kids,
		RoomType:    r.RoomType,
		NoOfPeople:  r.NoOfPeople,
		MealTime:    r.MealTime,
		TotalPeople: r.TotalPeople,
	}

	if r.CheckinDate != nil {
		checkin, err := time.Parse(domain.DateFormat, *r.CheckinDate)
		if err != nil {
			return nil, fmt.Errorf("invalid checkinDate: %w", err)
		}
		req.CheckinDate = &checkin
	}

	if r.CheckoutDate != nil {
		checkout, err := time.Parse(domain.DateFormat, *r.CheckoutDate)
		if err != nil {
			return nil, fmt.Errorf("invalid checkoutDate: %w", err)
		}
		req.CheckoutDate = &checkout
	}

	return req, nil
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Kind        string    `json:"kind"`
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate string    `json:"serviceDate"`
	Status      string    `json:"status"`

	SubjectName     string  `json:"subjectName"`
	SubjectImage    *string `json:"subjectImage,omitempty"`
	SubjectLocation *string `json:"subjectLocation,omitempty"`

	Adults       *int    `json:"adults,omitempty"`
	Kids         *int    `json:"kids,omitempty"`
	RoomType     *string `json:"roomType,omitempty"`
	NoOfPeople   *int    `json:"noofPeople,omitempty"`
	CheckinDate  *string `json:"checkinDate,omitempty"`
	CheckoutDate *string `json:"checkoutDate,omitempty"`
	MealTime     *string `json:"mealTime,omitempty"`
	TotalPeople  *int    `json:"totalPeople,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		Kind:            string(resp.Kind),
		SubjectID:       resp.SubjectID,
		ServiceDate:     resp.ServiceDate.Format(domain.DateFormat),
		Status:          resp.Status,
		SubjectName:     resp.SubjectName,
		SubjectImage:    resp.SubjectImage,
		SubjectLocation: resp.SubjectLocation,
		Adults:          resp.Adults,
		Kids:            resp.Kids,
		RoomType:        resp.RoomType,
		NoOfPeople:      resp.NoOfPeople,
		MealTime:        resp.MealTime,
		TotalPeople:     resp.TotalPeople,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}

	if resp.CheckinDate != nil {
		checkin := resp.CheckinDate.Format(domain.DateFormat)
		out.CheckinDate = &checkin
	}
	if resp.CheckoutDate != nil {
		checkout := resp.CheckoutDate.Format(domain.DateFormat)
		out.CheckoutDate = &checkout
	}

	return out
}
