package month_availability

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case сводки доступности месяца: какие дни полностью заняты.
// Read-only проекция тех же правил, что и проверка допуска одного дня.
type UseCase struct {
	calendar CalendarClient
	engine   SummaryEngine
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, engine SummaryEngine, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		engine:   engine,
		logger:   logger,
	}
}

// Execute выполняет use case сводки месяца.
//
// При недоступности календаря сводка деградирует до пустого списка
// (fail open): календарная сетка остаётся рабочей, ни один день не
// блокируется визуально. Итоговую защиту всё равно даёт проверка допуска
// при записи, которая на ошибках fail closed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MonthAvailability: year=%d, month=%d", req.Year, int(req.Month))

	if req.Month < time.January || req.Month > time.December {
		uc.logger.Warn("MonthAvailability: invalid month %d", int(req.Month))
		return nil, fmt.Errorf("%w: month must be in [1, 12]", ErrInvalidInput)
	}
	if req.Year <= 0 {
		uc.logger.Warn("MonthAvailability: invalid year %d", req.Year)
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	monthStart := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	events, err := uc.calendar.ListEvents(ctx, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("MonthAvailability: calendar unavailable for %d-%02d, degrading to empty summary: %v",
			req.Year, int(req.Month), err)
		return &Response{FullDays: []int{}}, nil
	}

	fullDays := uc.engine.FullDays(events, req.Year, req.Month)

	uc.logger.Info("MonthAvailability: %d-%02d has %d full day(s)", req.Year, int(req.Month), len(fullDays))
	return &Response{FullDays: fullDays}, nil
}
