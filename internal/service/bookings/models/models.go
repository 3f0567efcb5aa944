package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetAdminBookingsRequest запрос на получение бронирований с фильтрацией (админ)
type GetAdminBookingsRequest struct {
	Kind      domain.Kind `json:"kind"`
	UserID    *uuid.UUID  `json:"userId,omitempty"`    // Фильтр по пользователю (опционально)
	StartDate *time.Time  `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time  `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string     `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAdminBookingsRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{
		Kind:      r.Kind,
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на полную замену бронирования (админ)
type UpdateBookingRequest struct {
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate time.Time `json:"serviceDate"`
	Status      string    `json:"status"`

	Adults       *int       `json:"adults,omitempty"`
	Kids         *int       `json:"kids,omitempty"`
	RoomType     *string    `json:"roomType,omitempty"`
	NoOfPeople   *int       `json:"noofPeople,omitempty"`
	CheckinDate  *time.Time `json:"checkinDate,omitempty"`
	CheckoutDate *time.Time `json:"checkoutDate,omitempty"`
	MealTime     *string    `json:"mealTime,omitempty"`
	TotalPeople  *int       `json:"totalPeople,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Kind        string    `json:"kind"`
	SubjectID   uuid.UUID `json:"subjectId"`
	ServiceDate string    `json:"serviceDate"` // "2026-08-30"
	Status      string    `json:"status"`

	// Денормализованные данные объекта каталога
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

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		Kind:               string(b.Kind),
		SubjectID:          b.SubjectID,
		ServiceDate:        b.ServiceDate.Format(domain.DateFormat),
		Status:             b.Status,
		SubjectName:        b.SubjectName,
		SubjectImage:       b.SubjectImage,
		SubjectLocation:    b.SubjectLocation,
		Adults:             b.Adults,
		Kids:               b.Kids,
		RoomType:           b.RoomType,
		NoOfPeople:         b.NoOfPeople,
		MealTime:           b.MealTime,
		TotalPeople:        b.TotalPeople,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CheckinDate != nil {
		checkin := b.CheckinDate.Format(domain.DateFormat)
		resp.CheckinDate = &checkin
	}
	if b.CheckoutDate != nil {
		checkout := b.CheckoutDate.Format(domain.DateFormat)
		resp.CheckoutDate = &checkout
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку статуса с валидацией
func ToDomainStatus(status string) (string, error) {
	validStatuses := []string{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if status == valid {
			return status, nil
		}
	}

	return "", ErrInvalidStatus
}
