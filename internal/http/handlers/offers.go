package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dreambody/internal/domain"
)

// ListOffers returns all offers.
func (a *App) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, _, err := a.Store.Offers()
	if err != nil {
		a.Logger.Error().Err(err).Msg("list offers failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list offers")
		return
	}
	a.json(w, http.StatusOK, offers)
}

// CreateOffer appends an offer, minting an id when absent.
func (a *App) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var o domain.Offer
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	offers, version, err := a.Store.Offers()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read offers failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read offers")
		return
	}
	offers = append(offers, o)
	if err := a.Store.ReplaceOffers(offers, version); err != nil {
		a.Logger.Error().Err(err).Msg("save offer failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save offer")
		return
	}
	a.json(w, http.StatusCreated, o)
}

// DeleteOffer removes an offer by id; absent ids are a no-op.
func (a *App) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	offers, version, err := a.Store.Offers()
	if err != nil {
		a.Logger.Error().Err(err).Msg("read offers failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read offers")
		return
	}
	out := make([]domain.Offer, 0, len(offers))
	removed := false
	for _, o := range offers {
		if o.ID == id {
			removed = true
			continue
		}
		out = append(out, o)
	}
	if removed {
		if err := a.Store.ReplaceOffers(out, version); err != nil {
			a.Logger.Error().Err(err).Msg("delete offer failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to delete offer")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
