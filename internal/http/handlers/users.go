package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dreambody/internal/account"
	"dreambody/internal/domain"
)

// ListUsers returns every client account.
func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.Accounts.List()
	if err != nil {
		a.Logger.Error().Err(err).Msg("list users failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list users")
		return
	}
	a.json(w, http.StatusOK, users)
}

// CreateUser materializes a new account from a partial input.
func (a *App) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in account.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	u, err := a.Accounts.Create(in)
	if err != nil {
		var dup *domain.DuplicateFieldError
		if errors.As(err, &dup) {
			a.error(w, http.StatusConflict, "duplicate_"+dup.Field, dup.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("create user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create user")
		return
	}
	a.json(w, http.StatusCreated, u)
}

// GetUser returns one account by id.
func (a *App) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.Accounts.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Msg("get user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load user")
		return
	}
	a.json(w, http.StatusOK, u)
}

// UpdateUser fully replaces the account. When the body carries a new
// id, the record found under the path id is rewritten with it. Either
// way a missing record is a silent no-op.
func (a *App) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	pathID := chi.URLParam(r, "id")
	var err error
	if u.ID != pathID {
		err = a.Accounts.UpdateWithIDChange(pathID, u)
	} else {
		err = a.Accounts.Update(u)
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("update user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser hard-deletes the account; absent ids are a no-op.
func (a *App) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.Accounts.Delete(chi.URLParam(r, "id")); err != nil {
		a.Logger.Error().Err(err).Msg("delete user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkOfferSeen bumps the per-user view counter for an offer.
func (a *App) MarkOfferSeen(w http.ResponseWriter, r *http.Request) {
	if err := a.Accounts.MarkOfferSeen(chi.URLParam(r, "id"), chi.URLParam(r, "offerID")); err != nil {
		a.Logger.Error().Err(err).Msg("mark offer seen failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record offer view")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type walletRequest struct {
	Amount float64 `json:"amount"`
}

// CreditWallet adds the given amount (possibly negative) to the wallet.
func (a *App) CreditWallet(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Accounts.UpdateWalletBalance(chi.URLParam(r, "id"), req.Amount); err != nil {
		a.Logger.Error().Err(err).Msg("wallet update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update wallet")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type weightRequest struct {
	Weight float64 `json:"weight"`
}

// AddWeightEntry appends a weight measurement to the user's history.
func (a *App) AddWeightEntry(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Accounts.AddWeightEntry(chi.URLParam(r, "id"), req.Weight); err != nil {
		a.Logger.Error().Err(err).Msg("weight entry failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record weight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
