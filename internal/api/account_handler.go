package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "modelarena/internal/errors"
	"modelarena/internal/interfaces"
)

// CreateAccountRequest is the DTO for account creation. Profile is an opaque
// JSON document that is stored as-is.
type CreateAccountRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=32" example:"player-one"`
	Profile  json.RawMessage `json:"profile,omitempty"`
}

// AccountHandler handles HTTP requests for the account store.
type AccountHandler struct {
	service interfaces.AccountService
}

func NewAccountHandler(svc interfaces.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// HandleCreateAccount godoc
// @Summary      Create an account
// @Description  Stores a new account. The username is the unique lookup key.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        accountRequest  body  CreateAccountRequest  true  "Username and opaque profile"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /accounts [post]
func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: malformed JSON body", apperrors.ErrInvalidRequest))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	account, err := h.service.Create(r.Context(), req.Username, req.Profile)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, account)
}

// HandleGetAccount godoc
// @Summary      Get an account
// @Tags         Accounts
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  ErrorResponse
// @Router       /accounts/{username} [get]
func (h *AccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	account, err := h.service.Get(r.Context(), username)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

// HandleDeleteAccount godoc
// @Summary      Delete an account
// @Tags         Accounts
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /accounts/{username} [delete]
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.service.Delete(r.Context(), username); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
