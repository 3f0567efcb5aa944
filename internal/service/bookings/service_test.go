package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	bookingRepo "github.com/easy-tripzy/Tripzy-BookingService/internal/infra/storage/booking"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings/models"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/ptr"
)

type fakeRepo struct {
	booking  *domain.Booking
	getErr   error
	filtered []*domain.Booking

	updated *domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, _ domain.Kind, _ uuid.UUID) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	return f.filtered, nil
}

func (f *fakeRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.updated = booking
	return booking, nil
}

type fakeCatalog struct {
	subject *catalogservice.Subject
	err     error
	calls   int
}

func (f *fakeCatalog) GetSubject(_ context.Context, _ domain.Kind, _ uuid.UUID) (*catalogservice.Subject, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.subject, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(userID uuid.UUID) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        domain.KindHotel,
		SubjectID:   uuid.New(),
		ServiceDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusConfirmed,
		SubjectName: "Grand Hotel",
	}
}

func TestGetByIDOwner(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{booking: testBooking(userID)}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), domain.KindHotel, repo.booking.ID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, repo.booking.ID, resp.ID)
	assert.Equal(t, "2026-09-15", resp.ServiceDate)
}

func TestGetByIDAccessDenied(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(uuid.New())}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), domain.KindHotel, repo.booking.ID, uuid.New(), false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDAdminSeesAnyBooking(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(uuid.New())}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), domain.KindHotel, repo.booking.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, repo.booking.ID, resp.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), domain.KindHotel, uuid.New(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAdminBookings(t *testing.T) {
	repo := &fakeRepo{filtered: []*domain.Booking{
		testBooking(uuid.New()),
		testBooking(uuid.New()),
	}}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetAdminBookings(context.Background(), &models.GetAdminBookingsRequest{
		Kind: domain.KindHotel,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetAdminBookingsInvalidKind(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetAdminBookings(context.Background(), &models.GetAdminBookingsRequest{
		Kind: domain.Kind("train"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAdminBookingsInvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetAdminBookings(context.Background(), &models.GetAdminBookingsRequest{
		Kind:   domain.KindHotel,
		Status: ptr.Ptr("Archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateKeepsSubjectWhenUnchanged(t *testing.T) {
	booking := testBooking(uuid.New())
	repo := &fakeRepo{booking: booking}
	catalog := &fakeCatalog{}
	svc := NewService(repo, catalog, fakeTxManager{}, nopLogger{})

	resp, err := svc.Update(context.Background(), domain.KindHotel, booking.ID, &models.UpdateBookingRequest{
		SubjectID:   booking.SubjectID,
		ServiceDate: booking.ServiceDate.AddDate(0, 0, 5),
		Status:      domain.StatusConfirmed,
		RoomType:    ptr.Ptr("Suite"),
		NoOfPeople:  ptr.Ptr(3),
	})
	require.NoError(t, err)

	// Объект не менялся - каталог не дергаем
	assert.Equal(t, 0, catalog.calls)
	assert.Equal(t, "Grand Hotel", resp.SubjectName)
	require.NotNil(t, repo.updated.RoomType)
	assert.Equal(t, "Suite", *repo.updated.RoomType)
}

func TestUpdateRefreshesSubjectWhenChanged(t *testing.T) {
	booking := testBooking(uuid.New())
	newSubjectID := uuid.New()
	repo := &fakeRepo{booking: booking}
	catalog := &fakeCatalog{subject: &catalogservice.Subject{
		ID:       newSubjectID,
		Kind:     string(domain.KindHotel),
		Name:     "Palace Hotel",
		Location: "Vienna",
	}}
	svc := NewService(repo, catalog, fakeTxManager{}, nopLogger{})

	resp, err := svc.Update(context.Background(), domain.KindHotel, booking.ID, &models.UpdateBookingRequest{
		SubjectID:   newSubjectID,
		ServiceDate: booking.ServiceDate,
		Status:      domain.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, newSubjectID, resp.SubjectID)
	assert.Equal(t, "Palace Hotel", resp.SubjectName)
	require.NotNil(t, resp.SubjectLocation)
	assert.Equal(t, "Vienna", *resp.SubjectLocation)
}

func TestUpdateSubjectNotFound(t *testing.T) {
	booking := testBooking(uuid.New())
	repo := &fakeRepo{booking: booking}
	catalog := &fakeCatalog{err: catalogservice.ErrSubjectNotFound}
	svc := NewService(repo, catalog, fakeTxManager{}, nopLogger{})

	_, err := svc.Update(context.Background(), domain.KindHotel, booking.ID, &models.UpdateBookingRequest{
		SubjectID:   uuid.New(),
		ServiceDate: booking.ServiceDate,
		Status:      domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestUpdateInvalidStatus(t *testing.T) {
	booking := testBooking(uuid.New())
	repo := &fakeRepo{booking: booking}
	svc := NewService(repo, &fakeCatalog{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Update(context.Background(), domain.KindHotel, booking.ID, &models.UpdateBookingRequest{
		SubjectID:   booking.SubjectID,
		ServiceDate: booking.ServiceDate,
		Status:      "Archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
