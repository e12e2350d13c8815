package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrNotFound     = errors.New("backend: not found")
)

// APIError - ответ бэкенда с success=false или неуспешным статусом
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

type tokenKey struct{}

// WithToken кладёт bearer-токен бэкенда в контекст запроса
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Envelope - общая обёртка ответов бэкенда
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Count      int             `json:"count,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Token      string          `json:"token,omitempty"`
	// Проверка кода сотрудника отвечает без success
	Exists   *bool           `json:"exists,omitempty"`
	Employee json.RawMessage `json:"employee,omitempty"`
	Admin    json.RawMessage `json:"admin,omitempty"`
	Results  json.RawMessage `json:"results,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Client - REST-клиент бэкенда колеса
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{http: c}
}

// R готовит запрос с токеном из контекста
func (c *Client) R(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token := TokenFromContext(ctx); token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// Do выполняет запрос и разбирает обёртку. Если out != nil, в него декодируется data.
func (c *Client) Do(r *resty.Request, method, path string, out any) (*Envelope, error) {
	res, err := r.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}

	return decode(res.StatusCode(), res.Body(), out)
}

// Raw выполняет запрос и возвращает тело как есть (выгрузки файлов)
func (c *Client) Raw(ctx context.Context, path string) ([]byte, error) {
	res, err := c.R(ctx).SetDoNotParseResponse(true).Get(path)
	if err != nil {
		return nil, fmt.Errorf("backend: GET %s: %w", path, err)
	}
	body := res.RawBody()
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("backend: GET %s: %w", path, err)
	}

	if res.StatusCode() >= http.StatusBadRequest {
		_, err = decode(res.StatusCode(), data, nil)
		return nil, err
	}

	return data, nil
}

func decode(status int, body []byte, out any) (*Envelope, error) {
	var env Envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil && status < http.StatusBadRequest {
			return nil, fmt.Errorf("backend: decode envelope: %w", err)
		}
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, ErrUnauthorized
	case status == http.StatusNotFound:
		return nil, ErrNotFound
	case status >= http.StatusBadRequest:
		return nil, &APIError{Status: status, Message: messageOr(env.Message, http.StatusText(status))}
	case !env.Success && env.Exists == nil:
		return nil, &APIError{Status: status, Message: messageOr(env.Message, "request failed")}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("backend: decode data: %w", err)
		}
	}

	return &env, nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
