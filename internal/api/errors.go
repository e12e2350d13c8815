package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/repository/backend"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/resp"
)

// WriteError переводит ошибку сервиса в HTTP-статус. Неизвестные ошибки логируются и скрываются.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var apiErr *backend.APIError

	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, backend.ErrNotFound):
		resp.WriteError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSpinInProgress):
		resp.WriteError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidPrize),
		errors.Is(err, service.ErrEmptyImport),
		errors.Is(err, service.ErrInvalidImportFile):
		resp.WriteError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, backend.ErrUnauthorized):
		resp.WriteError(w, r, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		resp.WriteError(w, r, apiErr.Status, apiErr.Message)
	case errors.As(err, &apiErr):
		log.Error("backend request failed", sl.Err(err))
		resp.WriteError(w, r, http.StatusBadGateway, "backend unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("backend request timed out", sl.Err(err))
		resp.WriteError(w, r, http.StatusGatewayTimeout, "backend timeout")
	default:
		log.Error("request failed", sl.Err(err))
		resp.WriteError(w, r, http.StatusInternalServerError, "internal error")
	}
}
