package schedule_booking

import "time"

// Request модель запроса на бронирование
type Request struct {
	ClientName    string    // Имя клиента
	Services      string    // Услуги через запятую, как прислал клиент
	Start         time.Time // Начало мероприятия
	DurationHours int       // Длительность в часах
	Guests        int       // Количество гостей
	Location      string    // Адрес проведения
	Total         string    // Итог, посчитанный клиентской частью (не интерпретируется)
}

// Response модель ответа на успешное бронирование
type Response struct {
	Title string    // Заголовок созданного события
	Start time.Time // Начало
	End   time.Time // Конец
}
