package auth

import (
	"log/slog"
	"net/http"
	"time"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/middleware"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv         service.AuthService
	TokenTTL     time.Duration
	SecureCookie bool
	Log          *slog.Logger
}

type Handler struct {
	serv         service.AuthService
	tokenTTL     time.Duration
	secureCookie bool
	log          *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:         deps.Serv,
		tokenTTL:     deps.TokenTTL,
		secureCookie: deps.SecureCookie,
		log:          deps.Log,
	}
}

// Register создаёт администратора на бэкенде
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	admin, err := h.serv.Register(r.Context(), converter.ToRegistration(requestBody))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusCreated, converter.ToAdminResponse(admin))
}

// Login возвращает access_token в теле и в cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	data, err := h.serv.Login(r.Context(), converter.ToCredentials(requestBody))
	if err != nil {
		h.log.Info("login failed", slog.String("email", requestBody.Email))
		api.WriteError(w, r, h.log, err)
		return
	}

	h.setAccessTokenCookie(w, data.AccessToken)

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToLoginResponse(*data))
}

// Logout удаляет cookie. Токен бэкенда живёт до своего истечения.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.deleteAccessTokenCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// Me - профиль текущего администратора
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := h.serv.Profile(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToAdminResponse(admin))
}

// setAccessTokenCookie устанавливает cookie с access_token
func (h *Handler) setAccessTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokenTTL.Seconds()),
	})
}

// deleteAccessTokenCookie удаляет cookie с access_token
func (h *Handler) deleteAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
