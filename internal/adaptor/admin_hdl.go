package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves all back-office screens through one registry-driven
// set of endpoints; the screens are structurally identical per entity.
type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// List handles GET /api/admin/{resource}
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	resource := chi.URLParam(r, "resource")

	data, err := h.service.List(r.Context(), sess, resource)
	if err != nil {
		handleServiceError(w, h.log, err, "list "+resource)
		return
	}

	utils.ResponseSuccess(w, "success", data)
}

// Get handles GET /api/admin/{resource}/{id}
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	data, err := h.service.Get(r.Context(), sess, resource, id)
	if err != nil {
		handleServiceError(w, h.log, err, "get "+resource)
		return
	}

	utils.ResponseSuccess(w, "success", data)
}

// Create handles POST /api/admin/{resource}
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	resource := chi.URLParam(r, "resource")

	payload, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	data, err := h.service.Create(r.Context(), sess, resource, payload)
	if err != nil {
		handleServiceError(w, h.log, err, "create "+resource)
		return
	}

	utils.ResponseCreated(w, "Created", data)
}

// Update handles PUT /api/admin/{resource}/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	payload, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	data, err := h.service.Update(r.Context(), sess, resource, id, payload)
	if err != nil {
		handleServiceError(w, h.log, err, "update "+resource)
		return
	}

	utils.ResponseSuccess(w, "Updated", data)
}

// Delete handles DELETE /api/admin/{resource}/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), sess, resource, id); err != nil {
		handleServiceError(w, h.log, err, "delete "+resource)
		return
	}

	utils.ResponseSuccess(w, "Deleted", nil)
}

func (h *AdminHandler) readPayload(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 || !json.Valid(raw) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return raw, true
}
