package my_bookings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
)

func bookingAt(serviceDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Kind:        domain.KindHotel,
		SubjectID:   uuid.New(),
		ServiceDate: serviceDate,
		Status:      domain.StatusConfirmed,
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	future1 := bookingAt(now.AddDate(0, 0, 1))
	future2 := bookingAt(now.AddDate(0, 0, 10))
	boundary := bookingAt(now) // ровно сейчас - еще upcoming
	past1 := bookingAt(now.AddDate(0, 0, -1))
	past2 := bookingAt(now.AddDate(0, -1, 0))

	all := []*domain.Booking{past1, future1, boundary, past2, future2}

	upcoming, past := Partition(all, now)

	// Разбиение полное и непересекающееся
	assert.Len(t, upcoming, 3)
	assert.Len(t, past, 2)
	assert.Equal(t, len(all), len(upcoming)+len(past))

	assert.Contains(t, upcoming, future1)
	assert.Contains(t, upcoming, future2)
	assert.Contains(t, upcoming, boundary)
	assert.Contains(t, past, past1)
	assert.Contains(t, past, past2)
}

func TestPartitionEmpty(t *testing.T) {
	now := time.Now()

	upcoming, past := Partition(nil, now)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestSortForViewUpcoming(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	later := bookingAt(base.AddDate(0, 0, 5))
	sooner := bookingAt(base.AddDate(0, 0, 1))
	middle := bookingAt(base.AddDate(0, 0, 3))

	sorted := SortForView([]*domain.Booking{later, sooner, middle}, domain.ViewUpcoming)

	require.Len(t, sorted, 3)
	assert.Equal(t, sooner, sorted[0])
	assert.Equal(t, middle, sorted[1])
	assert.Equal(t, later, sorted[2])
}

func TestSortForViewPast(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	oldest := bookingAt(base.AddDate(0, 0, -20))
	recent := bookingAt(base.AddDate(0, 0, -1))
	middle := bookingAt(base.AddDate(0, 0, -10))

	sorted := SortForView([]*domain.Booking{oldest, recent, middle}, domain.ViewPast)

	require.Len(t, sorted, 3)
	assert.Equal(t, recent, sorted[0])
	assert.Equal(t, middle, sorted[1])
	assert.Equal(t, oldest, sorted[2])
}

func TestSortForViewStable(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// A с поздней датой, B и C с одинаковой ранней датой
	a := bookingAt(base.AddDate(0, 0, 5))
	b := bookingAt(base.AddDate(0, 0, 1))
	c := bookingAt(base.AddDate(0, 0, 1))

	sorted := SortForView([]*domain.Booking{a, b, c}, domain.ViewUpcoming)

	// При равных датах исходный порядок сохраняется
	require.Len(t, sorted, 3)
	assert.Equal(t, b, sorted[0])
	assert.Equal(t, c, sorted[1])
	assert.Equal(t, a, sorted[2])
}

func TestSortForViewDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	first := bookingAt(base.AddDate(0, 0, 5))
	second := bookingAt(base.AddDate(0, 0, 1))
	input := []*domain.Booking{first, second}

	SortForView(input, domain.ViewUpcoming)

	assert.Equal(t, first, input[0])
	assert.Equal(t, second, input[1])
}

func TestPaginate(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	bookings := make([]*domain.Booking, 7)
	for i := range bookings {
		bookings[i] = bookingAt(base.AddDate(0, 0, i))
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []*domain.Booking
	}{
		{"first page", 1, 3, bookings[0:3]},
		{"second page", 2, 3, bookings[3:6]},
		{"last partial page", 3, 3, bookings[6:7]},
		{"page beyond range", 4, 3, []*domain.Booking{}},
		{"zero page", 0, 3, []*domain.Booking{}},
		{"negative page", -1, 3, []*domain.Booking{}},
		{"zero page size", 1, 0, []*domain.Booking{}},
		{"page size larger than list", 1, 100, bookings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(bookings, tt.page, tt.pageSize))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty list", 0, 3, 0},
		{"less than one page", 2, 3, 1},
		{"exactly one page", 3, 3, 1},
		{"one item over", 4, 3, 2},
		{"seven items by three", 7, 3, 3},
		{"invalid page size", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"page within range", 2, 3, 2},
		{"page beyond last after shrink", 5, 3, 3},
		{"zero page", 0, 3, 1},
		{"no pages at all", 2, 0, 2},
		{"last page", 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.totalPages))
		})
	}
}
