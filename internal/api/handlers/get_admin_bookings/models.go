package get_admin_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings/models"
)

// ParseQuery собирает запрос сервиса из query-параметров:
// userId, startDate, endDate ("2006-01-02"), status
func ParseQuery(kind domain.Kind, query url.Values) (*models.GetAdminBookingsRequest, error) {
	req := &models.GetAdminBookingsRequest{Kind: kind}

	if userIDStr := query.Get("userId"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid userId: %w", err)
		}
		req.UserID = &userID
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
