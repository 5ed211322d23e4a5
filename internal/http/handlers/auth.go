package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dreambody/internal/domain"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login resolves credentials and stores the session. Failures are a
// single generic message regardless of which field was wrong.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	res, err := a.Auth.Login(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "Invalid credentials.")
			return
		}
		a.Logger.Error().Err(err).Msg("login failed")
		a.error(w, http.StatusInternalServerError, "internal", "login failed")
		return
	}
	a.json(w, http.StatusOK, res)
}

// Logout clears the session.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Auth.Logout(); err != nil {
		a.Logger.Error().Err(err).Msg("logout failed")
		a.error(w, http.StatusInternalServerError, "internal", "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session returns the active session, null when nobody is logged in.
func (a *App) Session(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Auth.CurrentSession()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read session failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read session")
		return
	}
	a.json(w, http.StatusOK, map[string]*domain.Session{"session": sess})
}
