package remove_booking

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("remove_booking: invalid input")

	// ErrBookingNotFound возвращается, когда бронирование не найдено или уже удалено
	ErrBookingNotFound = errors.New("remove_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("remove_booking: access denied")

	// ErrAlreadyCancelled возвращается при повторной попытке отменить бронирование
	// Cancelled - терминальное состояние, дальнейших переходов нет
	ErrAlreadyCancelled = errors.New("remove_booking: booking is already cancelled")

	// ErrTooLateToCancel возвращается при нарушении правила заблаговременности:
	// предстоящее бронирование можно отменить не позднее чем за 7 дней до даты услуги.
	// Это policy rejection, а не ошибка - состояние бронирования не меняется
	ErrTooLateToCancel = errors.New("remove_booking: too late to cancel this booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("remove_booking: internal error")
)
