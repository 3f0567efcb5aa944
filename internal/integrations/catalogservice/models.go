package catalogservice

import "github.com/google/uuid"

// Subject модель бронируемого объекта из CatalogService
// (автомобиль, рейс, отель или ресторан)
type Subject struct {
	ID       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Location string    `json:"location"`
	Price    *float64  `json:"price,omitempty"`
	Rating   *float64  `json:"rating,omitempty"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
