package schedule_booking

import (
	"fmt"
	"strings"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Services) == "" {
		return fmt.Errorf("%w: services are required", ErrInvalidInput)
	}

	if len(req.Services) > domain.MaxServicesLength {
		return fmt.Errorf("%w: services string is too long", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.DurationHours <= 0 || req.DurationHours > domain.MaxEventDurationHours {
		return fmt.Errorf("%w: duration must be in (0, %d] hours", ErrInvalidInput, domain.MaxEventDurationHours)
	}

	if req.Guests < 0 {
		return fmt.Errorf("%w: guests must not be negative", ErrInvalidInput)
	}

	return nil
}
