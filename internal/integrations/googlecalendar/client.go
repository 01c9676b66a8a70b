package googlecalendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Google Calendar. Авторизация — сервисный аккаунт,
// календарь должен быть расшарен на его email.
type Client struct {
	service    *calendar.Service
	calendarID string
	log        Logger
}

// NewClient создает клиент по файлу сервисного аккаунта.
func NewClient(ctx context.Context, credentialsFile, calendarID string, timeout time.Duration, log Logger) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read credentials file: %v", ErrInvalidCredentials, err)
	}

	conf, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse service account JSON: %v", ErrInvalidCredentials, err)
	}

	httpClient := conf.Client(ctx)
	httpClient.Timeout = timeout

	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrUnavailable, err)
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		log:        log,
	}, nil
}

// ListEvents возвращает события календаря, пересекающиеся с [from, to).
// SingleEvents разворачивает повторяющиеся события в отдельные экземпляры.
func (c *Client) ListEvents(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error) {
	list, err := c.service.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events: %v", ErrUnavailable, err)
	}

	events := make([]*domain.BookedEvent, 0, len(list.Items))
	for _, item := range list.Items {
		evt, err := toDomainEvent(item)
		if err != nil {
			// Событие с нечитаемыми датами в подсчёты не попадает
			c.log.Warn("ListEvents: skipping event %s: %v", item.Id, err)
			continue
		}
		events = append(events, evt)
	}

	return events, nil
}

// InsertEvent записывает новое событие в календарь.
func (c *Client) InsertEvent(ctx context.Context, evt *domain.BookedEvent) error {
	_, err := c.service.Events.Insert(c.calendarID, fromDomainEvent(evt)).
		SendUpdates("none").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: failed to insert event: %v", ErrUnavailable, err)
	}

	c.log.Info("InsertEvent: created %q (%s - %s)",
		evt.Title, evt.Start.Format(time.RFC3339), evt.End.Format(time.RFC3339))
	return nil
}
