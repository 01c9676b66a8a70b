package availability

import (
	"sort"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// FullDays возвращает отсортированный список чисел месяца, в которые
// больше ничего не помещается: заполнены и лимит основных пакетов,
// и лимит аренды. День, забитый только в одной категории, открыт для
// другой и не помечается.
//
// Сводка — read-only проекция тех же правил, что и Admit: события
// проходят через тот же конвейер парсер → классификатор → счётчики.
func (e *Engine) FullDays(events []*domain.BookedEvent, year int, month time.Month) []int {
	byDay := make(map[int]DayCounts)

	for _, evt := range events {
		// События за пределами запрошенного месяца (upstream может вернуть
		// хвосты диапазона) в сводку не входят.
		if evt.Start.Year() != year || evt.Start.Month() != month {
			continue
		}
		day := evt.Start.Day()
		c := e.countTokens(e.parser.ExtractTokens(evt))
		counts := byDay[day]
		counts.Main += c.Main
		counts.Rental += c.Rental
		byDay[day] = counts
	}

	fullDays := make([]int, 0, len(byDay))
	for day, counts := range byDay {
		if counts.Main >= e.maxMainPerDay && counts.Rental >= e.maxRentalPerDay {
			fullDays = append(fullDays, day)
		}
	}
	sort.Ints(fullDays)

	return fullDays
}
