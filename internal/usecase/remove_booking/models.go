package remove_booking

import (
	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// Outcome результат удаления бронирования
type Outcome string

const (
	// OutcomeCancelled предстоящее бронирование отменено (soft delete)
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeDeleted прошедшее бронирование удалено из хранилища
	OutcomeDeleted Outcome = "deleted"
)

// Request модель запроса на удаление бронирования
type Request struct {
	Kind      domain.Kind // Вид бронирования
	BookingID uuid.UUID   // ID бронирования
	UserID    uuid.UUID   // ID пользователя, выполняющего операцию
	IsAdmin   bool        // Администратор может удалять чужие бронирования
	Reason    string      // Причина отмены, пустая = причина по умолчанию
}

// Response модель ответа с исходом операции
type Response struct {
	BookingID uuid.UUID
	Kind      domain.Kind
	Outcome   Outcome
}
