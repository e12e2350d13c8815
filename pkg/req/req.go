package req

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode читает JSON из тела запроса и проверяет теги validate
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}

	if err := validate.Struct(payload); err != nil {
		return payload, err
	}

	return payload, nil
}

// Validate проверяет уже заполненную структуру (например, из query-параметров)
func Validate(v any) error {
	return validate.Struct(v)
}
