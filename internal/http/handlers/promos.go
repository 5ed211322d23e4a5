package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dreambody/internal/domain"
)

// ListPromoCodes returns all promo codes.
func (a *App) ListPromoCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := a.Promos.List()
	if err != nil {
		a.Logger.Error().Err(err).Msg("list promos failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list promo codes")
		return
	}
	a.json(w, http.StatusOK, codes)
}

// CreatePromoCode appends a code, minting an id when the admin screen
// did not supply one. Legacy fields are backfilled by the engine.
func (a *App) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	var c domain.PromoCode
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	saved, err := a.Promos.Save(c)
	if err != nil {
		a.Logger.Error().Err(err).Msg("save promo failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save promo code")
		return
	}
	a.json(w, http.StatusCreated, saved)
}

// DeletePromoCode removes a code by id; absent ids are a no-op.
func (a *App) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	if err := a.Promos.Delete(chi.URLParam(r, "id")); err != nil {
		a.Logger.Error().Err(err).Msg("delete promo failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete promo code")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type redeemRequest struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}

// RedeemPromoCode runs a credit redemption. The engine's structured
// result goes back verbatim; clients branch on success.
func (a *App) RedeemPromoCode(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	res, err := a.Promos.RedeemCreditPromo(req.UserID, req.Code)
	if err != nil {
		a.Logger.Error().Err(err).Msg("redeem promo failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to redeem promo code")
		return
	}
	a.json(w, http.StatusOK, res)
}

type incrementUsageRequest struct {
	Code string `json:"code"`
}

// IncrementPromoUsage bumps a code's usage counter for the purchase
// flow, which validates limits before calling this.
func (a *App) IncrementPromoUsage(w http.ResponseWriter, r *http.Request) {
	var req incrementUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Promos.IncrementUsage(req.Code); err != nil {
		a.Logger.Error().Err(err).Msg("increment promo usage failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to increment usage")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
