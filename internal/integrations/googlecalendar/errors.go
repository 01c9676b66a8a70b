package googlecalendar

import "errors"

var (
	// ErrUnavailable возвращается, когда Google Calendar API недоступен
	// или ответил ошибкой
	ErrUnavailable = errors.New("googlecalendar client: calendar unavailable")

	// ErrInvalidCredentials возвращается при некорректном файле сервисного
	// аккаунта
	ErrInvalidCredentials = errors.New("googlecalendar client: invalid credentials")
)
