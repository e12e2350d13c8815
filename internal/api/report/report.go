package report

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/report"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ReportService
	Log  *slog.Logger
}

type Handler struct {
	serv service.ReportService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Spins(w http.ResponseWriter, r *http.Request) {
	query, ok := h.query(w, r)
	if !ok {
		return
	}

	page, err := h.serv.Spins(r.Context(), converter.ToSpinFilter(query))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToSpinPageResponse(page))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	query, ok := h.query(w, r)
	if !ok {
		return
	}

	stats, err := h.serv.Stats(r.Context(), converter.ToSpinFilter(query))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToStatsResponse(stats))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.serv.Dashboard(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToDashboardResponse(dashboard))
}

func (h *Handler) ExportSpins(w http.ResponseWriter, r *http.Request) {
	query, ok := h.query(w, r)
	if !ok {
		return
	}

	data, err := h.serv.ExportSpins(r.Context(), converter.ToSpinFilter(query))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteFile(w, "lich-su-quay.xlsx", resp.XLSXContentType, data)
}

func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.ExportUsers(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteFile(w, "danh-sach-nguoi-dung.xlsx", resp.XLSXContentType, data)
}

func (h *Handler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.ExportEmployees(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteFile(w, "danh-sach-nhan-vien.xlsx", resp.XLSXContentType, data)
}

// query разбирает startDate, endDate, page и limit из строки запроса
func (h *Handler) query(w http.ResponseWriter, r *http.Request) (dto.SpinQuery, bool) {
	values := r.URL.Query()

	page, err := intParam(values, "page")
	if err != nil {
		resp.WriteError(w, r, http.StatusBadRequest, "page must be a number")
		return dto.SpinQuery{}, false
	}
	limit, err := intParam(values, "limit")
	if err != nil {
		resp.WriteError(w, r, http.StatusBadRequest, "limit must be a number")
		return dto.SpinQuery{}, false
	}

	query := dto.SpinQuery{
		StartDate: values.Get("startDate"),
		EndDate:   values.Get("endDate"),
		Page:      page,
		Limit:     limit,
	}
	if err = req.Validate(query); err != nil {
		resp.WriteDecodeError(w, r, err)
		return dto.SpinQuery{}, false
	}

	return query, true
}

func intParam(values url.Values, key string) (int, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
