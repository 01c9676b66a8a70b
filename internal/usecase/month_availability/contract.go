package month_availability

import (
	"context"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// CalendarClient интерфейс внешнего календаря-хранилища.
type CalendarClient interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error)
}

// SummaryEngine интерфейс сводки месяца.
type SummaryEngine interface {
	FullDays(events []*domain.BookedEvent, year int, month time.Month) []int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
