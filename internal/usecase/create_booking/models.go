package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
// Поля деталей обязательны только для соответствующего вида:
// flight - Adults/Kids, hotel - RoomType/NoOfPeople/Checkin/Checkout,
// restaurant - MealTime/TotalPeople; для car деталей нет
type Request struct {
	UserID      uuid.UUID   // ID пользователя
	Kind        domain.Kind // Вид бронирования
	SubjectID   uuid.UUID   // ID объекта каталога
	ServiceDate time.Time   // Дата услуги (mealDate для ресторана)
	Status      string      // Статус, пустой = Confirmed

	// Flight
	Adults *int
	Kids   *int

	// Hotel
	RoomType     *string
	NoOfPeople   *int
	CheckinDate  *time.Time
	CheckoutDate *time.Time

	// Restaurant
	MealTime    *string
	TotalPeople *int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        domain.Kind
	SubjectID   uuid.UUID
	ServiceDate time.Time
	Status      string

	// Денормализованные данные объекта каталога
	SubjectName     string
	SubjectImage    *string
	SubjectLocation *string

	Adults       *int
	Kids         *int
	RoomType     *string
	NoOfPeople   *int
	CheckinDate  *time.Time
	CheckoutDate *time.Time
	MealTime     *string
	TotalPeople  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainBooking конвертирует созданное бронирование в response
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		UserID:          b.UserID,
		Kind:            b.Kind,
		SubjectID:       b.SubjectID,
		ServiceDate:     b.ServiceDate,
		Status:          b.Status,
		SubjectName:     b.SubjectName,
		SubjectImage:    b.SubjectImage,
		SubjectLocation: b.SubjectLocation,
		Adults:          b.Adults,
		Kids:            b.Kids,
		RoomType:        b.RoomType,
		NoOfPeople:      b.NoOfPeople,
		CheckinDate:     b.CheckinDate,
		CheckoutDate:    b.CheckoutDate,
		MealTime:        b.MealTime,
		TotalPeople:     b.TotalPeople,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
