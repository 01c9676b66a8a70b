package schedule_booking

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/api/handlers"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
	scheduleBooking "github.com/clarasbuffet/CBF-BookingService/internal/usecase/schedule_booking"
)

// ScheduleRequest HTTP модель запроса на бронирование. Клиентская часть
// исторически шлёт form-data, поэтому поддерживаются и JSON, и формы.
type ScheduleRequest struct {
	ClientName      string `json:"clientName"`
	SelectedDateISO string `json:"selectedDateISO"` // "2025-10-15"
	EventTime       string `json:"eventTime"`       // "10:00"
	EventDuration   string `json:"eventDuration"`   // часы; пустое/мусор = дефолт
	Guests          string `json:"guests"`
	EventLocation   string `json:"eventLocation"`
	Services        string `json:"services"` // через запятую
	Total           string `json:"total"`
}

// ParseRequest читает тело запроса: JSON при Content-Type application/json,
// иначе url-encoded или multipart форма.
func ParseRequest(r *http.Request) (*ScheduleRequest, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "application/json" {
		var req ScheduleRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, fmt.Errorf("failed to parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	return &ScheduleRequest{
		ClientName:      r.PostFormValue("clientName"),
		SelectedDateISO: r.PostFormValue("selectedDateISO"),
		EventTime:       r.PostFormValue("eventTime"),
		EventDuration:   r.PostFormValue("eventDuration"),
		Guests:          r.PostFormValue("guests"),
		EventLocation:   r.PostFormValue("eventLocation"),
		Services:        r.PostFormValue("services"),
		Total:           r.PostFormValue("total"),
	}, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени).
func (r *ScheduleRequest) ToUseCaseRequest(defaultDurationHours int) (*scheduleBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.SelectedDateISO, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.SelectedDateISO, err)
	}

	startTime, err := time.Parse(domain.TimeFormat, r.EventTime)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", r.EventTime, err)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startTime.Hour(), startTime.Minute(), 0, 0, time.Local)

	// Нечисловая или отсутствующая длительность деградирует до дефолта
	duration, err := strconv.Atoi(strings.TrimSpace(r.EventDuration))
	if err != nil || duration <= 0 {
		duration = defaultDurationHours
	}

	// Количество гостей не участвует в проверке допуска, мусор не фатален
	guests, err := strconv.Atoi(strings.TrimSpace(r.Guests))
	if err != nil || guests < 0 {
		guests = 0
	}

	return &scheduleBooking.Request{
		ClientName:    strings.TrimSpace(r.ClientName),
		Services:      r.Services,
		Start:         start,
		DurationHours: duration,
		Guests:        guests,
		Location:      strings.TrimSpace(r.EventLocation),
		Total:         strings.TrimSpace(r.Total),
	}, nil
}
