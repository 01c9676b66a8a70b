package googlecalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// toDomainEvent конвертирует событие Google Calendar в доменную модель.
// У событий "на весь день" заполнено Date вместо DateTime.
func toDomainEvent(item *calendar.Event) (*domain.BookedEvent, error) {
	start, err := parseEventTime(item.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	end, err := parseEventTime(item.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	return &domain.BookedEvent{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		End:         end,
	}, nil
}

// fromDomainEvent конвертирует доменную модель в событие Google Calendar.
func fromDomainEvent(evt *domain.BookedEvent) *calendar.Event {
	return &calendar.Event{
		Summary:     evt.Title,
		Description: evt.Description,
		Location:    evt.Location,
		Start:       &calendar.EventDateTime{DateTime: evt.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: evt.End.Format(time.RFC3339)},
	}
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	return time.ParseInLocation(domain.DateFormat, edt.Date, time.Local)
}
