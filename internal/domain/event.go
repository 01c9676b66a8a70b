package domain

import "time"

// BookedEvent одно уже записанное событие календаря. Сервис хранимые
// события не изменяет, только читает их для подсчёта дневных агрегатов.
type BookedEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Overlaps сообщает, пересекается ли окно события с интервалом [start, end).
// Границы полуоткрытые: событие, заканчивающееся ровно в start (или
// начинающееся ровно в end), не пересекается.
func (e *BookedEvent) Overlaps(start, end time.Time) bool {
	return start.Before(e.End) && end.After(e.Start)
}

// BookingRequest модель одного запроса на бронирование.
// Живёт только на время одной проверки допуска, нигде не сохраняется.
type BookingRequest struct {
	ClientName string
	Services   string // сырая строка услуг через запятую, как прислал клиент
	Start      time.Time
	End        time.Time
	Guests     int
	Location   string
	Total      string // итоговая сумма, посчитанная клиентской частью; движок её не интерпретирует
}
