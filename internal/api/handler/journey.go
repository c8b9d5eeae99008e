package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chhavipande/museumyatra/internal/api/request"
	"github.com/chhavipande/museumyatra/internal/api/response"
	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/services/journey"
)

// JourneyHandler handles visit recording, collection toggles and the
// dashboard/badge read surfaces
type JourneyHandler struct {
	journey *journey.Service
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(journeyService *journey.Service) *JourneyHandler {
	return &JourneyHandler{
		journey: journeyService,
	}
}

// RecordVisit handles POST /api/v1/visits
func (h *JourneyHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	var req request.RecordVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.MuseumID == "" {
		WriteError(w, NewInvalidRequestError("museum_id is required"))
		return
	}

	result, err := h.journey.RecordVisit(r.Context(), model.MuseumID(req.MuseumID), req.Rating, req.Note)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VisitResultFromService(result))
}

// ToggleWishlist handles POST /api/v1/wishlist/{id}/toggle
func (h *JourneyHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	id := model.MuseumID(mux.Vars(r)["id"])

	member, err := h.journey.ToggleWishlist(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ToggleResult{
		MuseumID: string(id),
		Member:   member,
	})
}

// ToggleFavorite handles POST /api/v1/favorites/{id}/toggle
func (h *JourneyHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := model.MuseumID(mux.Vars(r)["id"])

	member, err := h.journey.ToggleFavorite(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ToggleResult{
		MuseumID: string(id),
		Member:   member,
	})
}

// GetProgress handles GET /api/v1/me/progress
func (h *JourneyHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.ProgressFromCollections(h.journey.Collections()))
}

// GetBadges handles GET /api/v1/badges
func (h *JourneyHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.BadgeBoardFromService(h.journey.BadgeBoard()))
}
