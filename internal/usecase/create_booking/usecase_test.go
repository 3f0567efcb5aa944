package create_booking

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
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/ptr"
)

type fakeRepo struct {
	created   *domain.Booking
	createErr error
}

func (f *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *booking
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeCatalog struct {
	subject *catalogservice.Subject
	err     error
}

func (f *fakeCatalog) GetSubject(_ context.Context, _ domain.Kind, _ uuid.UUID) (*catalogservice.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subject, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func TestExecuteCreatesBooking(t *testing.T) {
	subjectID := uuid.New()
	catalog := &fakeCatalog{subject: &catalogservice.Subject{
		ID:       subjectID,
		Kind:     string(domain.KindRestaurant),
		Name:     "La Piazza",
		Image:    "https://cdn.example.com/la-piazza.jpg",
		Location: "Rome",
	}}
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, catalog)

	req := validRestaurantRequest()
	req.SubjectID = subjectID

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, domain.KindRestaurant, resp.Kind)
	assert.Equal(t, subjectID, resp.SubjectID)

	// Статус по умолчанию и денормализация данных объекта
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, "La Piazza", resp.SubjectName)
	require.NotNil(t, resp.SubjectLocation)
	assert.Equal(t, "Rome", *resp.SubjectLocation)

	require.NotNil(t, repo.created)
	assert.Equal(t, req.UserID, repo.created.UserID)
}

func TestExecuteKeepsExplicitStatus(t *testing.T) {
	catalog := &fakeCatalog{subject: &catalogservice.Subject{ID: uuid.New(), Name: "Grand Hotel"}}
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, catalog)

	req := validHotelRequest()
	req.Status = domain.StatusPending

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
}

func TestExecuteSubjectNotFound(t *testing.T) {
	catalog := &fakeCatalog{err: catalogservice.ErrSubjectNotFound}
	uc := newTestUseCase(&fakeRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validFlightRequest())
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestExecuteRepositoryFailure(t *testing.T) {
	catalog := &fakeCatalog{subject: &catalogservice.Subject{ID: uuid.New(), Name: "Avis"}}
	repo := &fakeRepo{createErr: errors.New("unique violation")}
	uc := newTestUseCase(repo, catalog)

	req := &Request{
		UserID:      uuid.New(),
		Kind:        domain.KindCar,
		SubjectID:   uuid.New(),
		ServiceDate: testNow.AddDate(0, 0, 2),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteValidationFailureSkipsCatalog(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("must not be called")}
	uc := newTestUseCase(&fakeRepo{}, catalog)

	req := validFlightRequest()
	req.Adults = ptr.Ptr(0)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
