package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// kindValidators таблица валидаторов деталей по виду бронирования
// Одна точка диспетчеризации вместо повторяющихся switch по виду
var kindValidators = map[domain.Kind]func(req *Request) error{
	domain.KindCar:        validateCarDetails,
	domain.KindFlight:     validateFlightDetails,
	domain.KindHotel:      validateHotelDetails,
	domain.KindRestaurant: validateRestaurantDetails,
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	if req.SubjectID == uuid.Nil {
		return fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}

	if req.ServiceDate.IsZero() {
		return fmt.Errorf("%w: serviceDate is required", ErrInvalidInput)
	}

	// Дата услуги не должна быть в прошлом
	if req.ServiceDate.Before(now) {
		return ErrInvalidDate
	}

	return kindValidators[req.Kind](req)
}

// validateCarDetails у автомобильных бронирований дополнительных деталей нет
func validateCarDetails(req *Request) error {
	return nil
}

// validateFlightDetails валидирует детали авиабронирования
func validateFlightDetails(req *Request) error {
	if req.Adults == nil || *req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	kids := 0
	if req.Kids != nil {
		kids = *req.Kids
	}
	if kids < 0 {
		return fmt.Errorf("%w: kids must not be negative", ErrInvalidInput)
	}

	if *req.Adults+kids > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}

// validateHotelDetails валидирует детали отельного бронирования
func validateHotelDetails(req *Request) error {
	if req.RoomType == nil || *req.RoomType == "" {
		return fmt.Errorf("%w: roomType is required", ErrInvalidInput)
	}

	if req.NoOfPeople == nil || *req.NoOfPeople < domain.MinNoOfPeople {
		return fmt.Errorf("%w: at least %d guest is required", ErrInvalidInput, domain.MinNoOfPeople)
	}

	if *req.NoOfPeople > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.CheckinDate == nil || req.CheckoutDate == nil {
		return fmt.Errorf("%w: checkinDate and checkoutDate are required", ErrInvalidInput)
	}

	if !req.CheckinDate.Before(*req.CheckoutDate) {
		return fmt.Errorf("%w: checkinDate must be before checkoutDate", ErrInvalidInput)
	}

	return nil
}

// validateRestaurantDetails валидирует детали ресторанного бронирования
func validateRestaurantDetails(req *Request) error {
	if req.MealTime == nil || !domain.IsValidMealTime(*req.MealTime) {
		return fmt.Errorf("%w: mealTime must be one of %v", ErrInvalidInput, domain.MealTimes)
	}

	if req.TotalPeople == nil || *req.TotalPeople < domain.MinTotalPeople {
		return fmt.Errorf("%w: at least %d person is required", ErrInvalidInput, domain.MinTotalPeople)
	}

	if *req.TotalPeople > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}
