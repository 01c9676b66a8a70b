package month_availability

import (
	"context"

	monthAvailability "github.com/clarasbuffet/CBF-BookingService/internal/usecase/month_availability"
)

type MonthAvailabilityUseCase interface {
	Execute(ctx context.Context, req *monthAvailability.Request) (*monthAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
