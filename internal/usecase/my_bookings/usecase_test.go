package my_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
)

type fakeBookingRepo struct {
	bookings map[domain.Kind][]*domain.Booking
	failFor  map[domain.Kind]error
}

func (f *fakeBookingRepo) GetByUser(_ context.Context, kind domain.Kind, _ uuid.UUID) ([]*domain.Booking, error) {
	if err, ok := f.failFor[kind]; ok {
		return nil, err
	}
	return f.bookings[kind], nil
}

type fakeCatalogClient struct {
	failFor map[uuid.UUID]error
}

func (f *fakeCatalogClient) GetSubject(_ context.Context, kind domain.Kind, id uuid.UUID) (*catalogservice.Subject, error) {
	if err, ok := f.failFor[id]; ok {
		return nil, err
	}
	return &catalogservice.Subject{ID: id, Kind: string(kind), Name: "subject-" + id.String()[:8]}, nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo BookingRepository, catalog CatalogClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, 3, time.Second, nopLogger{})
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

func userBooking(userID uuid.UUID, kind domain.Kind, serviceDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		SubjectID:   uuid.New(),
		ServiceDate: serviceDate,
		Status:      domain.StatusConfirmed,
	}
}

func TestExecuteAggregatesAllKinds(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	repo := &fakeBookingRepo{bookings: map[domain.Kind][]*domain.Booking{
		domain.KindCar:    {userBooking(userID, domain.KindCar, now.AddDate(0, 0, 2))},
		domain.KindFlight: {userBooking(userID, domain.KindFlight, now.AddDate(0, 0, 5))},
		domain.KindHotel: {
			userBooking(userID, domain.KindHotel, now.AddDate(0, 0, 1)),
			userBooking(userID, domain.KindHotel, now.AddDate(0, 0, -1)), // past, не попадает в upcoming
		},
		domain.KindRestaurant: {},
	}}

	uc := newTestUseCase(repo, &fakeCatalogClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, View: domain.ViewUpcoming})
	require.NoError(t, err)

	// Секции всегда в фиксированном порядке видов
	require.Len(t, resp.Sections, 4)
	assert.Equal(t, domain.KindCar, resp.Sections[0].Kind)
	assert.Equal(t, domain.KindFlight, resp.Sections[1].Kind)
	assert.Equal(t, domain.KindHotel, resp.Sections[2].Kind)
	assert.Equal(t, domain.KindRestaurant, resp.Sections[3].Kind)

	assert.Equal(t, 1, resp.Sections[0].TotalCount)
	assert.Equal(t, 1, resp.Sections[1].TotalCount)
	assert.Equal(t, 1, resp.Sections[2].TotalCount)
	assert.Equal(t, 0, resp.Sections[3].TotalCount)

	// Пустой вид - пустая секция, а не ошибка
	assert.Empty(t, resp.Sections[3].Bookings)
	assert.False(t, resp.HasUnavailableSections())

	// Объекты каталога зарезолвлены
	require.Len(t, resp.Sections[0].Bookings, 1)
	assert.NotNil(t, resp.Sections[0].Bookings[0].Subject)
}

func TestExecuteSectionFailureIsIsolated(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	repo := &fakeBookingRepo{
		bookings: map[domain.Kind][]*domain.Booking{
			domain.KindCar: {userBooking(userID, domain.KindCar, now.AddDate(0, 0, 2))},
		},
		failFor: map[domain.Kind]error{
			domain.KindFlight: errors.New("storage down"),
		},
	}

	uc := newTestUseCase(repo, &fakeCatalogClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, View: domain.ViewUpcoming})
	require.NoError(t, err)

	// Сбой одного вида помечает только его секцию
	assert.True(t, resp.Sections[1].Unavailable)
	assert.Empty(t, resp.Sections[1].Bookings)

	assert.False(t, resp.Sections[0].Unavailable)
	assert.Equal(t, 1, resp.Sections[0].TotalCount)
	assert.True(t, resp.HasUnavailableSections())
}

func TestExecuteSubjectResolveFailureKeepsBooking(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	first := userBooking(userID, domain.KindHotel, now.AddDate(0, 0, 1))
	second := userBooking(userID, domain.KindHotel, now.AddDate(0, 0, 2))
	third := userBooking(userID, domain.KindHotel, now.AddDate(0, 0, 3))

	repo := &fakeBookingRepo{bookings: map[domain.Kind][]*domain.Booking{
		domain.KindHotel: {first, second, third},
	}}
	catalog := &fakeCatalogClient{failFor: map[uuid.UUID]error{
		second.SubjectID: errors.New("catalog timeout"),
	}}

	uc := newTestUseCase(repo, catalog, now)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, View: domain.ViewUpcoming})
	require.NoError(t, err)

	hotel := resp.Sections[2]
	require.Len(t, hotel.Bookings, 3)

	// Порядок сохранен, сбойное бронирование отдается без объекта
	assert.Equal(t, first.ID, hotel.Bookings[0].Booking.ID)
	assert.Equal(t, second.ID, hotel.Bookings[1].Booking.ID)
	assert.Equal(t, third.ID, hotel.Bookings[2].Booking.ID)

	assert.NotNil(t, hotel.Bookings[0].Subject)
	assert.Nil(t, hotel.Bookings[1].Subject)
	assert.NotNil(t, hotel.Bookings[2].Subject)
}

func TestExecutePagination(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	bookings := make([]*domain.Booking, 7)
	for i := range bookings {
		bookings[i] = userBooking(userID, domain.KindCar, now.AddDate(0, 0, i+1))
	}

	repo := &fakeBookingRepo{bookings: map[domain.Kind][]*domain.Booking{
		domain.KindCar: bookings,
	}}

	uc := newTestUseCase(repo, &fakeCatalogClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: userID,
		View:   domain.ViewUpcoming,
		Pages:  map[domain.Kind]int{domain.KindCar: 2},
	})
	require.NoError(t, err)

	car := resp.Sections[0]
	assert.Equal(t, 7, car.TotalCount)
	assert.Equal(t, 3, car.TotalPages)
	assert.Equal(t, 2, car.Page)
	require.Len(t, car.Bookings, 3)
	assert.Equal(t, bookings[3].ID, car.Bookings[0].Booking.ID)
}

func TestExecuteClampsPageBeyondLast(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	repo := &fakeBookingRepo{bookings: map[domain.Kind][]*domain.Booking{
		domain.KindCar: {
			userBooking(userID, domain.KindCar, now.AddDate(0, 0, 1)),
			userBooking(userID, domain.KindCar, now.AddDate(0, 0, 2)),
		},
	}}

	uc := newTestUseCase(repo, &fakeCatalogClient{}, now)

	// Запрошена страница 5, но всего одна - отдается последняя, не пустая
	resp, err := uc.Execute(context.Background(), &Request{
		UserID: userID,
		View:   domain.ViewUpcoming,
		Pages:  map[domain.Kind]int{domain.KindCar: 5},
	})
	require.NoError(t, err)

	car := resp.Sections[0]
	assert.Equal(t, 1, car.Page)
	assert.Len(t, car.Bookings, 2)
}

func TestExecuteValidation(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{View: domain.ViewUpcoming})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: uuid.New(), View: domain.View("all")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
