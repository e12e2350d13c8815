package wheel

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PlayService
	Log  *slog.Logger
}

type Handler struct {
	serv service.PlayService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// NewSession открывает колесо для нового зрителя
func (h *Handler) NewSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.serv.NewSession(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusCreated, converter.ToSnapshotResponse(snapshot))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.serv.Snapshot(chi.URLParam(r, "session"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToSnapshotResponse(snapshot))
}

// Image - PNG колеса в текущем положении
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.serv.Image(chi.URLParam(r, "session"), &buf); err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) SpinUser(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinUserRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	play, err := h.serv.SpinForUser(r.Context(), chi.URLParam(r, "session"), payload.UserID)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToPlayResponse(*play))
}

func (h *Handler) SpinEmployee(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinEmployeeRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	play, err := h.serv.SpinForEmployee(r.Context(), chi.URLParam(r, "session"), payload.EmployeeCode)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToPlayResponse(*play))
}
