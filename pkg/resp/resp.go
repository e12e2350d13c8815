package resp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSONResponse(w, r, status, ErrorResponse{Status: status, Error: msg})
}

// WriteDecodeError отвечает 400: ошибки валидации перечисляются по полям
func WriteDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		WriteError(w, r, http.StatusBadRequest, validationMessage(errs))
		return
	}
	WriteError(w, r, http.StatusBadRequest, "invalid request")
}

func validationMessage(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min", "max", "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("field %s is out of range", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", err.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteFile отдаёт файл как вложение
func WriteFile(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
