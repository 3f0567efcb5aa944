package list_subjects

import (
	"context"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/domain"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
)

type CatalogServiceClient interface {
	ListSubjects(ctx context.Context, kind domain.Kind) ([]catalogservice.Subject, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
