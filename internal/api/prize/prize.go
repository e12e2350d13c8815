package prize

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/prize"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PrizeService
	Log  *slog.Logger
}

type Handler struct {
	serv service.PrizeService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Public - призы колеса в порядке секторов
func (h *Handler) Public(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.serv.Public(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	items := converter.ToPublicPrizes(prizes)
	resp.WriteJSONResponse(w, r, http.StatusOK, dto.ListResponse[dto.PublicPrizeResponse]{Count: len(items), Items: items})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.serv.List(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	items := converter.ToPrizeResponses(prizes)
	resp.WriteJSONResponse(w, r, http.StatusOK, dto.ListResponse[dto.PrizeResponse]{Count: len(items), Items: items})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	prize, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToPrizeResponse(prize))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PrizeRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	prize, err := h.serv.Create(r.Context(), converter.ToPrize("", payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusCreated, converter.ToPrizeResponse(prize))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PrizeRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	prize, err := h.serv.Update(r.Context(), converter.ToPrize(chi.URLParam(r, "id"), payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToPrizeResponse(prize))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
