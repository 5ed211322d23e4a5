package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dreambody/internal/domain"
)

// ListPackages returns the pricing packages.
func (a *App) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, _, err := a.Store.Packages()
	if err != nil {
		a.Logger.Error().Err(err).Msg("list packages failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list packages")
		return
	}
	a.json(w, http.StatusOK, packages)
}

// ReplacePackages overwrites the whole package collection, which is how
// the admin pricing screen saves its edits. There is no per-record
// patch at this layer.
func (a *App) ReplacePackages(w http.ResponseWriter, r *http.Request) {
	var packages []domain.PricingPackage
	if err := json.NewDecoder(r.Body).Decode(&packages); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	_, version, err := a.Store.Packages()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read packages failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read packages")
		return
	}
	if err := a.Store.ReplacePackages(packages, version); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			a.error(w, http.StatusConflict, "conflict", "packages changed concurrently, retry")
			return
		}
		a.Logger.Error().Err(err).Msg("replace packages failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save packages")
		return
	}
	a.json(w, http.StatusOK, packages)
}
