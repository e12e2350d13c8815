package employee

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"lucky_wheel/internal/api"
	dto "lucky_wheel/internal/api/dto/employee"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

const maxImportSize = 10 << 20

type HandlerDeps struct {
	Serv service.EmployeeService
	Log  *slog.Logger
}

type Handler struct {
	serv service.EmployeeService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Verify - проверка кода сотрудника перед вращением
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	employee, err := h.serv.Verify(r.Context(), payload.EmployeeCode)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToEmployeeResponse(employee))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.serv.List(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	items := converter.ToEmployeeResponses(employees)
	resp.WriteJSONResponse(w, r, http.StatusOK, dto.ListResponse{Count: len(items), Items: items})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToEmployeeResponse(employee))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EmployeeRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	employee, err := h.serv.Create(r.Context(), converter.ToEmployee("", payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusCreated, converter.ToEmployeeResponse(employee))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EmployeeRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	employee, err := h.serv.Update(r.Context(), converter.ToEmployee(chi.URLParam(r, "id"), payload))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToEmployeeResponse(employee))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import принимает Excel-файл в поле формы "file"
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		resp.WriteError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		resp.WriteError(w, r, http.StatusBadRequest, "only .xlsx files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		resp.WriteError(w, r, http.StatusBadRequest, "failed to read file")
		return
	}

	res, err := h.serv.Import(r.Context(), header.Filename, data)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToImportResponse(res))
}

// Template - файл-образец для импорта
func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Template()
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteFile(w, "employee-import-template.xlsx", resp.XLSXContentType, data)
}
