package my_bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

// UseCase use case агрегации "Мои бронирования"
// Собирает по каждому из четырех видов бронирований пользователя:
// выборка из хранилища, разбиение на upcoming/past, сортировка,
// постраничная выдача и резолв объектов каталога
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	timeProvider  TimeProvider
	pageSize      int
	lookupTimeout time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	pageSize int,
	lookupTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		pageSize:      pageSize,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Execute выполняет агрегацию бронирований пользователя
// Четыре выборки по видам выполняются параллельно; сбой выборки одного вида
// помечает только его секцию как недоступную, остальные виды отдаются как обычно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MyBookings: validation failed: %v", err)
		return nil, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = uc.pageSize
	}

	// Единый момент времени для всех секций, чтобы граница upcoming/past
	// была согласованной в пределах одного ответа
	now := uc.timeProvider.Now()

	uc.logger.Info("MyBookings: aggregating for user=%s, view=%s, pageSize=%d", req.UserID, req.View, pageSize)

	kinds := domain.Kinds()
	sections := make([]Section, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(idx int, kind domain.Kind) {
			defer wg.Done()
			sections[idx] = uc.buildSection(ctx, req, kind, now, pageSize)
		}(i, kind)
	}
	wg.Wait()

	resp := &Response{
		View:     req.View,
		Sections: sections,
	}

	if resp.HasUnavailableSections() {
		uc.logger.Warn("MyBookings: some sections unavailable for user=%s", req.UserID)
	}

	return resp, nil
}

// buildSection строит агрегированную секцию по одному виду бронирований
func (uc *UseCase) buildSection(ctx context.Context, req *Request, kind domain.Kind, now time.Time, pageSize int) Section {
	section := Section{
		Kind:     kind,
		Bookings: []BookingWithSubject{},
		Page:     1,
	}

	bookings, err := uc.bookingRepo.GetByUser(ctx, kind, req.UserID)
	if err != nil {
		// Сбой одного вида не должен прятать остальные
		uc.logger.Error("MyBookings: failed to fetch %s bookings for user=%s: %v", kind, req.UserID, err)
		section.Unavailable = true
		return section
	}

	upcoming, past := Partition(bookings, now)

	viewList := upcoming
	if req.View == domain.ViewPast {
		viewList = past
	}

	sorted := SortForView(viewList, req.View)

	section.TotalCount = len(sorted)
	section.TotalPages = TotalPages(len(sorted), pageSize)
	section.Page = ClampPage(req.PageFor(kind), section.TotalPages)

	pageItems := Paginate(sorted, section.Page, pageSize)
	if len(pageItems) == 0 {
		return section
	}

	// Резолвим объекты каталога только для отдаваемой страницы,
	// батч ограничен таймаутом
	resolveCtx, cancel := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancel()

	section.Bookings = uc.resolveSubjects(resolveCtx, pageItems)

	return section
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.View != domain.ViewUpcoming && req.View != domain.ViewPast {
		return fmt.Errorf("%w: view must be %q or %q", ErrInvalidInput, domain.ViewUpcoming, domain.ViewPast)
	}

	return nil
}
