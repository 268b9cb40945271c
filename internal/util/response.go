package util

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
)

const internalErrorText = "internal server error"

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("ошибка кодирования ответа", slog.Any("error", err))
	}
}

// WriteError переводит ошибку в ответ. Текст внутренних ошибок клиенту не отдаётся
func WriteError(w http.ResponseWriter, err error) {
	statusCode := apperror.StatusCode(err)
	detail := requestresponse.ErrorDetail{Code: statusCode, Text: internalErrorText}

	if appErr, ok := apperror.From(err); ok {
		detail.Kind = string(appErr.Kind)
		detail.Text = appErr.Message
		detail.Fields = appErr.Fields
	} else {
		slog.Error("внутренняя ошибка сервера", slog.Any("error", err))
	}

	WriteJSON(w, statusCode, requestresponse.ErrorResponse{Error: detail})
}
