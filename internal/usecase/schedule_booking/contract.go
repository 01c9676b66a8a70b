package schedule_booking

import (
	"context"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/availability"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// CalendarClient интерфейс внешнего календаря-хранилища.
type CalendarClient interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error)
	InsertEvent(ctx context.Context, evt *domain.BookedEvent) error
}

// AdmissionEngine интерфейс движка проверки доступности.
type AdmissionEngine interface {
	Admit(dayEvents []*domain.BookedEvent, req *domain.BookingRequest) availability.Decision
}

// DayLocker сериализует работу с одним календарным днём.
// Закрывает окно гонки между чтением списка событий и записью нового.
type DayLocker interface {
	DoExclusive(ctx context.Context, day string, fn func() error) error
}

// AdmissionMetrics интерфейс счётчика исходов проверок допуска
type AdmissionMetrics interface {
	ObserveAdmission(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
