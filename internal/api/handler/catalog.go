package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chhavipande/museumyatra/internal/api/response"
	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/services/catalog"
)

// CatalogHandler handles read-only museum catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalogService,
	}
}

// List handles GET /api/v1/museums with an optional ?q= search filter
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	museums := h.catalog.Search(r.URL.Query().Get("q"))
	response.JSON(w, http.StatusOK, response.MuseumListFromModels(museums))
}

// Get handles GET /api/v1/museums/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.catalog.Get(model.MuseumID(mux.Vars(r)["id"]))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MuseumFromModel(m))
}
