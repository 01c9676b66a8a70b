package availability

import (
	"github.com/clarasbuffet/CBF-BookingService/internal/classifier"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
	"github.com/clarasbuffet/CBF-BookingService/internal/eventparser"
)

// Engine движок проверки доступности. Единственный владелец правил
// допуска: и проверка одного дня (Admit), и сводка по месяцу (FullDays)
// проходят через один и тот же конвейер парсер → классификатор → счётчики.
//
// Движок без состояния: агрегаты пересчитываются из переданного списка
// событий при каждом вызове, ничего не кешируется и не блокируется.
// Сериализация конкурирующих проверок одного дня — забота вызывающего слоя.
type Engine struct {
	classifier      *classifier.Classifier
	parser          *eventparser.Parser
	maxMainPerDay   int
	maxRentalPerDay int
}

// DayCounts агрегат одного календарного дня. Считается каждый подошедший
// токен, а не каждое событие: одно описание может перечислять несколько услуг.
type DayCounts struct {
	Main   int
	Rental int
}

// NewEngine создает движок с заданными дневными лимитами.
func NewEngine(c *classifier.Classifier, p *eventparser.Parser, maxMainPerDay, maxRentalPerDay int) *Engine {
	return &Engine{
		classifier:      c,
		parser:          p,
		maxMainPerDay:   maxMainPerDay,
		maxRentalPerDay: maxRentalPerDay,
	}
}

// Admit решает, можно ли допустить запрос с учётом всего, что уже
// забронировано в этот день.
//
// Порядок проверок — контракт, а не случайность реализации: лимиты
// вместимости проверяются раньше конфликтов оборудования, потому что
// переполнение дня не лечится выбором другого времени, и клиент должен
// увидеть именно это сообщение первым.
func (e *Engine) Admit(dayEvents []*domain.BookedEvent, req *domain.BookingRequest) Decision {
	existing := e.countEvents(dayEvents)

	requestTokens := eventparser.SplitTokens(req.Services)
	requested := e.countTokens(requestTokens)

	// 1. Лимит основных пакетов.
	if existing.Main+requested.Main > e.maxMainPerDay {
		return rejected(ReasonMainCapacityExceeded)
	}

	// 2. Лимит аренды.
	if existing.Rental+requested.Rental > e.maxRentalPerDay {
		return rejected(ReasonRentalCapacityExceeded)
	}

	// 3. Конфликт физического оборудования на пересекающихся интервалах.
	// Основные пакеты по времени не блокируются — только считаются.
	requestKinds := e.equipmentKinds(requestTokens)
	if len(requestKinds) > 0 {
		for _, evt := range dayEvents {
			if !evt.Overlaps(req.Start, req.End) {
				continue
			}
			eventKinds := e.equipmentKinds(e.parser.ExtractTokens(evt))
			for _, kind := range domain.EquipmentKinds {
				if requestKinds[kind] && eventKinds[kind] {
					return rejectedEquipment(kind)
				}
			}
		}
	}

	return admitted()
}

// countEvents суммирует токены всех событий дня по категориям.
func (e *Engine) countEvents(events []*domain.BookedEvent) DayCounts {
	var counts DayCounts
	for _, evt := range events {
		c := e.countTokens(e.parser.ExtractTokens(evt))
		counts.Main += c.Main
		counts.Rental += c.Rental
	}
	return counts
}

// countTokens классифицирует токены и считает их по категориям.
// Токены категории None не попадают ни в один счётчик.
func (e *Engine) countTokens(tokens []string) DayCounts {
	var counts DayCounts
	for _, token := range tokens {
		switch e.classifier.Classify(token) {
		case domain.CategoryMain:
			counts.Main++
		case domain.CategoryRental:
			counts.Rental++
		}
	}
	return counts
}

// equipmentKinds возвращает множество видов оборудования, встречающихся
// в списке токенов.
func (e *Engine) equipmentKinds(tokens []string) map[domain.EquipmentKind]bool {
	kinds := make(map[domain.EquipmentKind]bool)
	for _, token := range tokens {
		if kind := e.classifier.EquipmentKind(token); kind != domain.EquipmentNone {
			kinds[kind] = true
		}
	}
	return kinds
}
