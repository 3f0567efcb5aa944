package my_bookings

import (
	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
)

// Request модель запроса на агрегацию бронирований пользователя
type Request struct {
	UserID   uuid.UUID           // ID пользователя
	View     domain.View         // upcoming или past
	Pages    map[domain.Kind]int // Текущая страница по каждому виду (1-indexed), отсутствующий вид = 1
	PageSize int                 // Размер страницы, 0 = значение из конфигурации
}

// PageFor возвращает запрошенную страницу для вида (минимум 1)
func (r *Request) PageFor(kind domain.Kind) int {
	page, ok := r.Pages[kind]
	if !ok || page < 1 {
		return 1
	}
	return page
}

// BookingWithSubject бронирование вместе с зарезолвленным объектом каталога
// Subject == nil, если объект не удалось зарезолвить - такое бронирование
// отдается без деталей, фильтрация происходит на стороне рендера
type BookingWithSubject struct {
	Booking *domain.Booking
	Subject *catalogservice.Subject
}

// Section агрегированный результат по одному виду бронирований
type Section struct {
	Kind       domain.Kind
	Bookings   []BookingWithSubject
	Page       int // Фактическая страница после клампинга
	TotalPages int
	TotalCount int // Количество бронирований вида в выбранном view

	// Unavailable выставляется, когда выборка этого вида из хранилища
	// не удалась; остальные виды при этом отдаются как обычно
	Unavailable bool
}

// Response агрегированный результат по всем четырем видам
type Response struct {
	View     domain.View
	Sections []Section // В порядке domain.Kinds()
}

// HasUnavailableSections возвращает true, если хотя бы один вид не удалось получить
func (r *Response) HasUnavailableSections() bool {
	for _, s := range r.Sections {
		if s.Unavailable {
			return true
		}
	}
	return false
}
