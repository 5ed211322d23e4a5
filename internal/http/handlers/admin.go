package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dreambody/internal/domain"
)

// GetAdminProfile returns the coach's profile.
func (a *App) GetAdminProfile(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := a.Store.Config()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read config failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read profile")
		return
	}
	a.json(w, http.StatusOK, cfg.Admin)
}

// UpdateAdminProfile replaces the profile wholesale. Fields are never
// merged: what arrives is what gets stored.
func (a *App) UpdateAdminProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.AdminProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	_, version, err := a.Store.Config()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read config failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read profile")
		return
	}
	if err := a.Store.ReplaceConfig(domain.AppConfig{Admin: profile}, version); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			a.error(w, http.StatusConflict, "conflict", "profile changed concurrently, retry")
			return
		}
		a.Logger.Error().Err(err).Msg("replace config failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save profile")
		return
	}
	a.json(w, http.StatusOK, profile)
}
