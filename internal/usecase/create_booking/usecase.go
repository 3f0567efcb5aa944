package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	catalogClient "github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, kind=%s, subject=%s, date=%s",
		req.UserID, req.Kind, req.SubjectID, req.ServiceDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование объекта в каталоге
	subject, err := uc.catalog.GetSubject(ctx, req.Kind, req.SubjectID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrSubjectNotFound) {
			uc.logger.Warn("CreateBooking: %s subject id=%s not found", req.Kind, req.SubjectID)
			return nil, ErrSubjectNotFound
		}
		uc.logger.Error("CreateBooking: failed to get %s subject id=%s: %v", req.Kind, req.SubjectID, err)
		return nil, fmt.Errorf("%w: failed to get subject: %v", ErrInternal, err)
	}

	// 3. Собираем бронирование с денормализацией данных объекта
	status := req.Status
	if status == "" {
		status = domain.StatusConfirmed
	}

	booking := &domain.Booking{
		UserID:      req.UserID,
		Kind:        req.Kind,
		SubjectID:   req.SubjectID,
		ServiceDate: req.ServiceDate,
		Status:      status,
		// Денормализация данных объекта каталога
		SubjectName:     subject.Name,
		SubjectImage:    optional(subject.Image),
		SubjectLocation: optional(subject.Location),
		// Детали вида
		Adults:       req.Adults,
		Kids:         req.Kids,
		RoomType:     req.RoomType,
		NoOfPeople:   req.NoOfPeople,
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		MealTime:     req.MealTime,
		TotalPeople:  req.TotalPeople,
	}

	// 4. Сохраняем бронирование в транзакции
	var result *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %s booking id=%s", result.Kind, result.ID)

	return fromDomainBooking(result), nil
}

// optional конвертирует строку в указатель, пустая строка - nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
