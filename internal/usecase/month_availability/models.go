package month_availability

import "time"

// Request модель запроса сводки месяца
type Request struct {
	Year  int
	Month time.Month
}

// Response модель ответа со списком полностью занятых дней
type Response struct {
	FullDays []int // числа месяца, в которые больше ничего не помещается
}
