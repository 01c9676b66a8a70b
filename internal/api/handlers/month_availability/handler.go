package month_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clarasbuffet/CBF-BookingService/internal/api/handlers"
	monthAvailability "github.com/clarasbuffet/CBF-BookingService/internal/usecase/month_availability"
)

const (
	msgInvalidMonth = "mês inválido, esperado um número de 1 a 12"
	msgInvalidYear  = "ano inválido"
)

type Handler struct {
	useCase MonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase MonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// MonthAvailabilityResponse HTTP модель сводки месяца
type MonthAvailabilityResponse struct {
	FullDays []int `json:"fullDays"`
}

// Handle GET /api/month-availability
// Query params: month (1-12), year
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /month-availability - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		h.logger.Warn("GET /month-availability - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &monthAvailability.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		// Use case сам деградирует при недоступном календаре; сюда попадает
		// только некорректный ввод и неожиданные сбои. Сетка календаря не
		// блокируется в любом случае.
		h.logger.Error("GET /month-availability - Failed to summarize %d-%02d: %v", year, month, err)
		handlers.RespondJSON(w, http.StatusOK, MonthAvailabilityResponse{FullDays: []int{}})
		return
	}

	h.logger.Info("GET /month-availability - %d-%02d: %d full day(s)", year, month, len(result.FullDays))
	handlers.RespondJSON(w, http.StatusOK, MonthAvailabilityResponse{FullDays: result.FullDays})
}
