package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chhavipande/museumyatra/internal/api/request"
	"github.com/chhavipande/museumyatra/internal/api/response"
	"github.com/chhavipande/museumyatra/internal/services/accounts"
)

// AccountsHandler handles registration, sign-in and account lifecycle
type AccountsHandler struct {
	accounts *accounts.Service
}

// NewAccountsHandler creates a new accounts handler
func NewAccountsHandler(accountsService *accounts.Service) *AccountsHandler {
	return &AccountsHandler{
		accounts: accountsService,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	if err := h.accounts.Register(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	// Registration does not sign the user in; the client logs in next
	response.JSON(w, http.StatusCreated, h.me())
}

// Login handles POST /api/v1/auth/login
func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	if err := h.accounts.Login(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.me())
}

// Logout handles POST /api/v1/auth/logout
func (h *AccountsHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.accounts.Logout(r.Context())
	response.NoContent(w)
}

// GetMe handles GET /api/v1/me
func (h *AccountsHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.me())
}

// DeleteMe handles DELETE /api/v1/me
func (h *AccountsHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteCurrent(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Reset handles POST /api/v1/me/reset
func (h *AccountsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.accounts.ResetJourney(r.Context())
	response.JSON(w, http.StatusOK, h.me())
}

func (h *AccountsHandler) me() response.Me {
	username, signedIn := h.accounts.CurrentUser()
	return response.Me{
		Username:  username,
		Anonymous: !signedIn,
		Points:    h.accounts.CurrentProgress().Points,
	}
}
