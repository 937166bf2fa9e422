package http

import (
	"net/http"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc domain.Service
	if err := decodeBody(r, &svc); err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalog.CreateService(r.Context(), roleFrom(r), &svc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var svc domain.Service
	if err := decodeBody(r, &svc); err != nil {
		writeError(w, err)
		return
	}
	svc.ID = id
	if err := h.catalog.UpdateService(r.Context(), roleFrom(r), &svc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}
