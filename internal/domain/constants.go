package domain

// Lead-time rule constants
const (
	// CancellationNoticeDays минимальное количество дней до даты услуги,
	// при котором ещё допустима отмена бронирования
	CancellationNoticeDays = 7

	millisPerDay = 24 * 60 * 60 * 1000
)

// Booking statuses.
// Status is a free-form string; these are the values the service writes itself.
const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// Business validation constants
const (
	MinAdults      = 1
	MinTotalPeople = 1
	MinNoOfPeople  = 1
	MaxPartySize   = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MealTimes допустимые значения времени приёма пищи для ресторанных бронирований
var MealTimes = []string{"Breakfast", "Lunch", "Dinner"}

// IsValidMealTime проверяет, что время приёма пищи из списка допустимых
func IsValidMealTime(mealTime string) bool {
	for _, mt := range MealTimes {
		if mt == mealTime {
			return true
		}
	}
	return false
}
