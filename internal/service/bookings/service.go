package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	bookingRepo "github.com/easy-tripzy/Tripzy-BookingService/internal/infra/storage/booking"
	catalogClient "github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching %s booking id=%s for user=%s", kind, id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: %s booking id=%s not found", kind, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetAdminBookings получает бронирования вида с гибкой фильтрацией.
// Поддерживает фильтрацию по пользователю, периоду дат услуги и статусу.
// Доступно только администраторам
//
// Примеры использования:
// - Все бронирования вида: GetAdminBookings(ctx, &GetAdminBookingsRequest{Kind: "hotel"})
// - Бронирования пользователя: указать UserID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только отменённые: указать Status = "Cancelled"
func (s *Service) GetAdminBookings(ctx context.Context, req *models.GetAdminBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetAdminBookings: fetching %s bookings", req.Kind)
	if req.UserID != nil {
		logMsg += fmt.Sprintf(", user=%s", *req.UserID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAdminBookings: invalid filter for kind=%s: %v", req.Kind, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBookings: repository error for kind=%s: %v", req.Kind, err)
		return nil, fmt.Errorf("%w: GetAdminBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminBookings: successfully fetched %d %s bookings", len(bookings), req.Kind)
	return models.FromDomainBookingList(bookings), nil
}

// Update полностью заменяет изменяемые поля бронирования.
// При смене объекта каталога данные объекта перечитываются и денормализуются заново.
// Доступно только администраторам
func (s *Service) Update(ctx context.Context, kind domain.Kind, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating %s booking id=%s", kind, id)

	booking, err := s.bookingRepo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: %s booking id=%s not found", kind, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.SubjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}
	if req.ServiceDate.IsZero() {
		return nil, fmt.Errorf("%w: serviceDate is required", ErrInvalidInput)
	}

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// При смене объекта каталога перечитываем его данные
	if req.SubjectID != booking.SubjectID {
		subject, err := s.catalogClient.GetSubject(ctx, kind, req.SubjectID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrSubjectNotFound) {
				s.logger.Warn("Update: %s subject id=%s not found", kind, req.SubjectID)
				return nil, ErrSubjectNotFound
			}
			s.logger.Error("Update: failed to get %s subject id=%s: %v", kind, req.SubjectID, err)
			return nil, fmt.Errorf("%w: Update - failed to get subject: %v", ErrInternal, err)
		}

		booking.SubjectID = subject.ID
		booking.SubjectName = subject.Name
		booking.SubjectImage = optional(subject.Image)
		booking.SubjectLocation = optional(subject.Location)
	}

	booking.ServiceDate = req.ServiceDate
	booking.Status = status
	booking.Adults = req.Adults
	booking.Kids = req.Kids
	booking.RoomType = req.RoomType
	booking.NoOfPeople = req.NoOfPeople
	booking.CheckinDate = req.CheckinDate
	booking.CheckoutDate = req.CheckoutDate
	booking.MealTime = req.MealTime
	booking.TotalPeople = req.TotalPeople

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		result, err := s.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated %s booking id=%s", kind, id)
	return models.FromDomainBooking(updated), nil
}

// optional конвертирует строку в указатель, пустая строка - nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
