package schedule_booking

import (
	"errors"
	"net/http"

	"github.com/clarasbuffet/CBF-BookingService/internal/api/handlers"
	scheduleBooking "github.com/clarasbuffet/CBF-BookingService/internal/usecase/schedule_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgInvalidInput       = "dados da reserva inválidos"
	msgPastDateTime       = "Não é possível agendar em datas ou horários passados."
	msgMainCapacityFull   = "Dia lotado para Festas Principais."
	msgRentalCapacityFull = "Dia lotado para Alugueis."
	msgEquipmentConflict  = "Item já reservado neste horário."
	msgCalendarDown       = "Agenda temporariamente indisponível, tente novamente."
)

type Handler struct {
	useCase              ScheduleBookingUseCase
	defaultDurationHours int
	logger               Logger
}

func NewHandler(useCase ScheduleBookingUseCase, defaultDurationHours int, logger Logger) *Handler {
	return &Handler{
		useCase:              useCase,
		defaultDurationHours: defaultDurationHours,
		logger:               logger,
	}
}

// Handle POST /api/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.defaultDurationHours)
	if err != nil {
		h.logger.Warn("POST /schedule - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Бизнес-отказы уходят конвертом {"status":"error"} с HTTP 200:
		// клиентская часть различает исходы по полю status.
		switch {
		case errors.Is(err, scheduleBooking.ErrPastDateTime):
			h.logger.Warn("POST /schedule - Past date/time: client=%q, date=%s %s",
				req.ClientName, req.SelectedDateISO, req.EventTime)
			handlers.RespondRejection(w, msgPastDateTime)

		case errors.Is(err, scheduleBooking.ErrMainCapacityExceeded):
			h.logger.Warn("POST /schedule - Main capacity exceeded: client=%q, date=%s",
				req.ClientName, req.SelectedDateISO)
			handlers.RespondRejection(w, msgMainCapacityFull)

		case errors.Is(err, scheduleBooking.ErrRentalCapacityExceeded):
			h.logger.Warn("POST /schedule - Rental capacity exceeded: client=%q, date=%s",
				req.ClientName, req.SelectedDateISO)
			handlers.RespondRejection(w, msgRentalCapacityFull)

		case errors.Is(err, scheduleBooking.ErrEquipmentConflict):
			h.logger.Warn("POST /schedule - Equipment conflict: client=%q, date=%s, error=%v",
				req.ClientName, req.SelectedDateISO, err)
			handlers.RespondRejection(w, msgEquipmentConflict)

		case errors.Is(err, scheduleBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /schedule - Calendar unavailable: client=%q, date=%s, error=%v",
				req.ClientName, req.SelectedDateISO, err)
			handlers.RespondRejection(w, msgCalendarDown)

		case errors.Is(err, scheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /schedule - Invalid input: client=%q, error=%v", req.ClientName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedule - Failed to schedule booking: client=%q, date=%s, error=%v",
				req.ClientName, req.SelectedDateISO, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule - Booking created: title=%q, start=%s",
		result.Title, result.Start)
	handlers.RespondSuccess(w)
}
