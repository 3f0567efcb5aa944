package update_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Даты передаются строками в формате "2006-01-02"
type UpdateBookingRequest struct {
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate string    `json:"serviceDate"`
	Status      string    `json:"status"`

	Adults       *int    `json:"adults,omitempty"`
	Kids         *int    `json:"kids,omitempty"`
	RoomType     *string `json:"roomType,omitempty"`
	NoOfPeople   *int    `json:"noofPeople,omitempty"`
	CheckinDate  *string `json:"checkinDate,omitempty"`
	CheckoutDate *string `json:"checkoutDate,omitempty"`
	MealTime     *string `json:"mealTime,omitempty"`
	TotalPeople  *int    `json:"totalPeople,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() (*models.UpdateBookingRequest, error) {
	serviceDate, err := time.Parse(domain.DateFormat, r.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid serviceDate: %w", err)
	}

	req := &models.UpdateBookingRequest{
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
