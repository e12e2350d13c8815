package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/user"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.UserService
	Log  *slog.Logger
}

type Handler struct {
	serv service.UserService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Check - есть ли уже посетитель с такими контактами
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UserRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	check, err := h.serv.Check(r.Context(), converter.ToUserForm(payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToCheckResponse(check))
}

// Enter находит или создаёт посетителя и сообщает остаток вращений на сегодня
func (h *Handler) Enter(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UserRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	entry, err := h.serv.Enter(r.Context(), converter.ToUserForm(payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if entry.Created {
		status = http.StatusCreated
	}

	resp.WriteJSONResponse(w, r, status, converter.ToEntryResponse(*entry))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, count, err := h.serv.List(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, dto.ListResponse{Count: count, Items: converter.ToUserResponses(users)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToUserResponse(user))
}

// Spins - история вращений посетителя и остаток на сегодня
func (h *Handler) Spins(w http.ResponseWriter, r *http.Request) {
	spins, err := h.serv.Spins(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToUserSpinsResponse(spins))
}
