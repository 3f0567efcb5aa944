package my_bookings

import (
	"context"
	"sync"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// resolveSubjects резолвит объекты каталога для батча бронирований
// Все запросы выполняются параллельно; исходный порядок бронирований
// в результате сохраняется (не порядок завершения запросов).
// Ошибка резолва одного объекта не валит батч - такое бронирование
// отдается с Subject == nil. Весь батч ограничен таймаутом ctx.
func (uc *UseCase) resolveSubjects(ctx context.Context, bookings []*domain.Booking) []BookingWithSubject {
	result := make([]BookingWithSubject, len(bookings))

	var wg sync.WaitGroup
	for i, b := range bookings {
		result[i].Booking = b

		wg.Add(1)
		go func(idx int, b *domain.Booking) {
			defer wg.Done()

			subject, err := uc.catalogClient.GetSubject(ctx, b.Kind, b.SubjectID)
			if err != nil {
				// Изолируем сбой: логируем и отдаем бронирование без объекта
				uc.logger.Warn("resolveSubjects: failed to resolve %s subject id=%s for booking id=%s: %v",
					b.Kind, b.SubjectID, b.ID, err)
				return
			}

			result[idx].Subject = subject
		}(i, b)
	}

	wg.Wait()

	return result
}
