package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Конверт ответа — контракт с существующей клиентской частью: она смотрит
// на поле status, а не на HTTP код.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const msgInternalError = "erro interno do servidor"

// StatusResponse конверт ответа API.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DecodeJSON декодирует JSON тело запроса в v.
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет произвольный payload с указанным HTTP статусом.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess пишет успешный конверт {"status":"success"}.
func RespondSuccess(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: StatusSuccess})
}

// RespondRejection пишет бизнес-отказ: HTTP 200 + {"status":"error",...}.
// Отказ по правилам бронирования — не сбой транспорта.
func RespondRejection(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: StatusError, Message: message})
}

// RespondBadRequest пишет ошибку разбора запроса.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, StatusResponse{Status: StatusError, Message: message})
}

// RespondInternalError пишет общий ответ о внутренней ошибке.
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, StatusResponse{Status: StatusError, Message: msgInternalError})
}
