package schedule_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/availability"
	"github.com/clarasbuffet/CBF-BookingService/internal/classifier"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
	"github.com/clarasbuffet/CBF-BookingService/internal/eventparser"
)

// UseCase use case обработки запроса на бронирование: предусловия,
// проверка доступности дня и запись события в календарь.
type UseCase struct {
	calendar     CalendarClient
	engine       AdmissionEngine
	classifier   *classifier.Classifier
	dayLocker    DayLocker
	metrics      AdmissionMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil,
// если метрики выключены.
func NewUseCase(
	calendar CalendarClient,
	engine AdmissionEngine,
	cls *classifier.Classifier,
	dayLocker DayLocker,
	metrics AdmissionMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		engine:       engine,
		classifier:   cls,
		dayLocker:    dayLocker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) observeAdmission(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAdmission(outcome)
	}
}

// Execute выполняет use case бронирования.
// Последовательность "прочитать день → решить → записать" выполняется под
// блокировкой дня: внешний календарь не даёт транзакций, и без сериализации
// две параллельные заявки могли бы обе пройти проверку вместимости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleBooking: client=%q, start=%s, duration=%dh, services=%q",
		req.ClientName, req.Start.Format(time.RFC3339), req.DurationHours, req.Services)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Предусловие: начало не в прошлом. Это проверка вызывающего слоя,
	// а не правило движка доступности.
	now := uc.timeProvider.Now()
	if req.Start.Before(now) {
		uc.logger.Warn("ScheduleBooking: start %s is in the past", req.Start.Format(time.RFC3339))
		return nil, ErrPastDateTime
	}

	end := req.Start.Add(time.Duration(req.DurationHours) * time.Hour)

	booking := &domain.BookingRequest{
		ClientName: req.ClientName,
		Services:   req.Services,
		Start:      req.Start,
		End:        end,
		Guests:     req.Guests,
		Location:   req.Location,
		Total:      req.Total,
	}

	var result *Response

	// 3. Читаем день, решаем и записываем под блокировкой дня
	dayKey := req.Start.Format(domain.DateFormat)
	err := uc.dayLocker.DoExclusive(ctx, dayKey, func() error {
		// 3.1. Все события запрошенного дня
		dayStart := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		dayEvents, err := uc.calendar.ListEvents(ctx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("ScheduleBooking: failed to list events for %s: %v", dayKey, err)
			return fmt.Errorf("%w: list events: %v", ErrCalendarUnavailable, err)
		}

		// 3.2. Проверка доступности
		decision := uc.engine.Admit(dayEvents, booking)
		if !decision.Admitted {
			uc.logger.Warn("ScheduleBooking: rejected for %s: reason=%s equipment=%s",
				dayKey, decision.Reason, decision.Equipment)
			uc.observeAdmission(string(decision.Reason))
			return decisionError(decision)
		}
		uc.observeAdmission("admitted")

		// 3.3. Записываем событие в формате, который парсер читает обратно
		evt := uc.buildEvent(booking)
		if err := uc.calendar.InsertEvent(ctx, evt); err != nil {
			uc.logger.Error("ScheduleBooking: failed to insert event for %s: %v", dayKey, err)
			return fmt.Errorf("%w: insert event: %v", ErrCalendarUnavailable, err)
		}

		result = &Response{
			Title: evt.Title,
			Start: evt.Start,
			End:   evt.End,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleBooking: successfully booked %q for %s", result.Title, dayKey)
	return result, nil
}

// buildEvent собирает календарное событие для записи. Заголовок зависит от
// состава заявки: праздник с основным пакетом — "Festa", чистая аренда —
// "Locação".
func (uc *UseCase) buildEvent(booking *domain.BookingRequest) *domain.BookedEvent {
	tokens := eventparser.SplitTokens(booking.Services)

	hasMain := false
	for _, token := range tokens {
		if uc.classifier.Classify(token) == domain.CategoryMain {
			hasMain = true
			break
		}
	}

	title := "Locação: " + booking.ClientName
	if hasMain {
		title = "Festa: " + booking.ClientName
	}

	return &domain.BookedEvent{
		Title:       title,
		Description: eventparser.BuildDescription(tokens, booking.Guests, booking.Total, booking.Location),
		Location:    booking.Location,
		Start:       booking.Start,
		End:         booking.End,
	}
}

// decisionError переводит отказ движка в ошибку use case.
func decisionError(decision availability.Decision) error {
	switch decision.Reason {
	case availability.ReasonMainCapacityExceeded:
		return ErrMainCapacityExceeded
	case availability.ReasonRentalCapacityExceeded:
		return ErrRentalCapacityExceeded
	case availability.ReasonEquipmentConflict:
		return fmt.Errorf("%w: %s", ErrEquipmentConflict, decision.Equipment)
	default:
		return fmt.Errorf("%w: unknown rejection reason %q", ErrInternal, decision.Reason)
	}
}
