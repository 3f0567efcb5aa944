package create_booking

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда бронируемый объект не найден в каталоге
	ErrSubjectNotFound = errors.New("create_booking: catalog subject not found")

	// ErrInvalidDate возвращается при дате услуги в прошлом
	ErrInvalidDate = errors.New("create_booking: service date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
