package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dreambody/internal/domain"
)

type adviceRequest struct {
	UserID string `json:"userId"`
	Query  string `json:"query"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// GetAdvice builds a profile context for the user and forwards the
// question to the advisor. Advice generation happens before any domain
// mutation and performs none itself.
func (a *App) GetAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "query required")
		return
	}
	u, err := a.Accounts.Get(req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load user for advice failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load user")
		return
	}
	text, err := a.Advisor.Advise(r.Context(), req.Query, profileContext(u))
	if err != nil {
		a.Logger.Error().Err(err).Msg("advice generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to generate advice")
		return
	}
	a.json(w, http.StatusOK, adviceResponse{Advice: text})
}

// profileContext summarizes the client for the model in one line.
func profileContext(u *domain.User) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Name: %s, Gender: %s, DOB: %s", cases.Title(language.English).String(u.Name), u.Gender, u.DOB)
	if u.Height != nil {
		fmt.Fprintf(sb, ", Height: %.0f cm", *u.Height)
	}
	if u.CurrentWeight != nil {
		fmt.Fprintf(sb, ", Current Weight: %.1f kg", *u.CurrentWeight)
	}
	if n := len(u.WeightHistory); n > 1 {
		first := u.WeightHistory[0]
		fmt.Fprintf(sb, ", Starting Weight: %.1f kg on %s", first.Weight, first.Date)
	}
	return sb.String()
}
