package month_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarasbuffet/CBF-BookingService/internal/availability"
	"github.com/clarasbuffet/CBF-BookingService/internal/classifier"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
	"github.com/clarasbuffet/CBF-BookingService/internal/eventparser"
)

type mockCalendar struct {
	events  []*domain.BookedEvent
	listErr error

	listedFrom time.Time
	listedTo   time.Time
}

func (m *mockCalendar) ListEvents(_ context.Context, from, to time.Time) ([]*domain.BookedEvent, error) {
	m.listedFrom = from
	m.listedTo = to
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(calendar *mockCalendar) *UseCase {
	engine := availability.NewEngine(
		classifier.New(),
		eventparser.New(),
		domain.DefaultMaxMainPerDay,
		domain.DefaultMaxRentalPerDay,
	)
	return NewUseCase(calendar, engine, &mockLogger{})
}

func fullDayEvents(year int, month time.Month, day int) []*domain.BookedEvent {
	base := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	mk := func(title, services string, startHour, endHour int) *domain.BookedEvent {
		return &domain.BookedEvent{
			Title:       title,
			Description: "Serviços: " + services + "\nConvidados: 30\nTotal: R$ 1.000,00\nLocal: Salão",
			Start:       base.Add(time.Duration(startHour) * time.Hour),
			End:         base.Add(time.Duration(endHour) * time.Hour),
		}
	}
	return []*domain.BookedEvent{
		mk("Festa: A", "Buffet Essencial", 10, 14),
		mk("Festa: B", "Buffet Especial", 16, 20),
		mk("Locação: C", "Cama Elástica", 10, 14),
		mk("Locação: D", "Festbar", 16, 20),
	}
}

func TestExecute_FullDays(t *testing.T) {
	var events []*domain.BookedEvent
	events = append(events, fullDayEvents(2026, time.September, 5)...)
	events = append(events, fullDayEvents(2026, time.September, 19)...)

	calendar := &mockCalendar{events: events}
	uc := newTestUseCase(calendar)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})

	require.NoError(t, err)
	assert.Equal(t, []int{5, 19}, resp.FullDays)
}

func TestExecute_EmptyMonth(t *testing.T) {
	calendar := &mockCalendar{}
	uc := newTestUseCase(calendar)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})

	require.NoError(t, err)
	assert.Empty(t, resp.FullDays)
}

func TestExecute_RequestsWholeMonthRange(t *testing.T) {
	calendar := &mockCalendar{}
	uc := newTestUseCase(calendar)

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local), calendar.listedFrom)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), calendar.listedTo)
}

func TestExecute_CalendarFailureDegradesToEmpty(t *testing.T) {
	calendar := &mockCalendar{listErr: errors.New("calendar is down")}
	uc := newTestUseCase(calendar)

	// Недоступный календарь не валит запрос: сводка деградирует до
	// пустого списка
	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})

	require.NoError(t, err)
	assert.Equal(t, []int{}, resp.FullDays)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "month zero", req: &Request{Year: 2026, Month: 0}},
		{name: "month thirteen", req: &Request{Year: 2026, Month: 13}},
		{name: "year zero", req: &Request{Year: 0, Month: time.September}},
		{name: "negative year", req: &Request{Year: -1, Month: time.September}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockCalendar{})

			resp, err := uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}
