package schedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_booking: invalid input data")

	// ErrPastDateTime возвращается, когда запрошенное начало уже в прошлом
	ErrPastDateTime = errors.New("schedule_booking: requested start is in the past")

	// ErrMainCapacityExceeded возвращается, когда дневной лимит основных
	// пакетов не вмещает запрос
	ErrMainCapacityExceeded = errors.New("schedule_booking: main capacity exceeded")

	// ErrRentalCapacityExceeded возвращается, когда дневной лимит аренды
	// не вмещает запрос
	ErrRentalCapacityExceeded = errors.New("schedule_booking: rental capacity exceeded")

	// ErrEquipmentConflict возвращается, когда запрошенное оборудование уже
	// занято в пересекающееся время
	ErrEquipmentConflict = errors.New("schedule_booking: equipment already booked for this time")

	// ErrCalendarUnavailable возвращается, когда внешний календарь недоступен.
	// Запись не выполняется: на записи сервис fail closed.
	ErrCalendarUnavailable = errors.New("schedule_booking: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_booking: internal error")
)
