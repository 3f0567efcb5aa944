package create_booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func validFlightRequest() *Request {
	return &Request{
		UserID:      uuid.New(),
		Kind:        domain.KindFlight,
		SubjectID:   uuid.New(),
		ServiceDate: testNow.AddDate(0, 0, 10),
		Adults:      ptr.Ptr(2),
		Kids:        ptr.Ptr(1),
	}
}

func validHotelRequest() *Request {
	checkin := testNow.AddDate(0, 0, 10)
	checkout := testNow.AddDate(0, 0, 12)
	return &Request{
		UserID:       uuid.New(),
		Kind:         domain.KindHotel,
		SubjectID:    uuid.New(),
		ServiceDate:  checkin,
		RoomType:     ptr.Ptr("Deluxe"),
		NoOfPeople:   ptr.Ptr(2),
		CheckinDate:  &checkin,
		CheckoutDate: &checkout,
	}
}

func validRestaurantRequest() *Request {
	return &Request{
		UserID:      uuid.New(),
		Kind:        domain.KindRestaurant,
		SubjectID:   uuid.New(),
		ServiceDate: testNow.AddDate(0, 0, 3),
		MealTime:    ptr.Ptr("Dinner"),
		TotalPeople: ptr.Ptr(4),
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
		req    *Request
		errIs  error
	}{
		{
			name: "valid car booking without details",
			req: &Request{
				UserID:      uuid.New(),
				Kind:        domain.KindCar,
				SubjectID:   uuid.New(),
				ServiceDate: testNow.AddDate(0, 0, 1),
			},
		},
		{
			name: "valid flight booking",
			req:  validFlightRequest(),
		},
		{
			name: "valid hotel booking",
			req:  validHotelRequest(),
		},
		{
			name: "valid restaurant booking",
			req:  validRestaurantRequest(),
		},
		{
			name:   "missing user",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.UserID = uuid.Nil },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "unknown kind",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.Kind = domain.Kind("train") },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "missing subject",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.SubjectID = uuid.Nil },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "service date in the past",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.ServiceDate = testNow.AddDate(0, 0, -1) },
			errIs:  ErrInvalidDate,
		},
		{
			name:   "flight without adults",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.Adults = nil },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "flight with negative kids",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.Kids = ptr.Ptr(-1) },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "flight party too large",
			req:    validFlightRequest(),
			mutate: func(req *Request) { req.Adults = ptr.Ptr(60) },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "hotel without room type",
			req:    validHotelRequest(),
			mutate: func(req *Request) { req.RoomType = nil },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "hotel checkout before checkin",
			req:    validHotelRequest(),
			mutate: func(req *Request) { req.CheckoutDate = ptr.Ptr(testNow.AddDate(0, 0, 9)) },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "hotel checkout equals checkin",
			req:    validHotelRequest(),
			mutate: func(req *Request) { req.CheckoutDate = req.CheckinDate },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "restaurant with invalid meal time",
			req:    validRestaurantRequest(),
			mutate: func(req *Request) { req.MealTime = ptr.Ptr("Brunch") },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "restaurant without people count",
			req:    validRestaurantRequest(),
			mutate: func(req *Request) { req.TotalPeople = nil },
			errIs:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.req)
			}

			err := validateRequest(tt.req, testNow)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
