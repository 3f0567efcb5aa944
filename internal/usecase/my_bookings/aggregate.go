package my_bookings

import (
	"sort"
	"time"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// Partition разбивает бронирования на предстоящие и прошедшие по дате услуги
// Граница строгая: serviceDate >= now - upcoming, иначе past
// Вычисляется на момент запроса, поэтому бронирование может перейти
// из upcoming в past между двумя запросами без какой-либо записи
func Partition(bookings []*domain.Booking, now time.Time) (upcoming, past []*domain.Booking) {
	upcoming = make([]*domain.Booking, 0, len(bookings))
	past = make([]*domain.Booking, 0, len(bookings))

	for _, b := range bookings {
		if domain.ViewOf(b.ServiceDate, now) == domain.ViewUpcoming {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	return upcoming, past
}

// SortForView сортирует бронирования для отображения
// upcoming: по возрастанию даты услуги (ближайшие первыми)
// past: по убыванию (недавние первыми)
// Сортировка стабильная - при равных датах сохраняется исходный порядок
func SortForView(bookings []*domain.Booking, view domain.View) []*domain.Booking {
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		if view == domain.ViewPast {
			return sorted[i].ServiceDate.After(sorted[j].ServiceDate)
		}
		return sorted[i].ServiceDate.Before(sorted[j].ServiceDate)
	})

	return sorted
}

// Paginate возвращает страницу списка бронирований
// page 1-indexed; страница за пределами списка дает пустой слайс,
// клампинг страницы после сжатия списка - ответственность вызывающего
func Paginate(bookings []*domain.Booking, page, pageSize int) []*domain.Booking {
	if page < 1 || pageSize < 1 {
		return []*domain.Booking{}
	}

	start := (page - 1) * pageSize
	if start >= len(bookings) {
		return []*domain.Booking{}
	}

	end := start + pageSize
	if end > len(bookings) {
		end = len(bookings)
	}

	return bookings[start:end]
}

// TotalPages возвращает количество страниц для списка указанной длины
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage возвращает страницу, приведенную к допустимому диапазону
// После удаления бронирования текущая страница может оказаться за последней -
// в этом случае возвращается последняя страница
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}
