// Package handlers exposes the record store's operations to the view
// layer. Handlers are pass-throughs: they decode, delegate to the core
// packages and encode, and hold no business rules of their own.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"dreambody/internal/account"
	"dreambody/internal/advice"
	"dreambody/internal/auth"
	"dreambody/internal/promo"
	"dreambody/internal/store"
)

// App is the handler container holding the core collaborators.
type App struct {
	Store    *store.Store
	Accounts *account.Manager
	Promos   *promo.Engine
	Auth     *auth.Resolver
	Advisor  advice.Advisor
	Logger   zerolog.Logger
}

// NewApp wires the core packages over a shared store.
func NewApp(st *store.Store, advisor advice.Advisor, logger zerolog.Logger) *App {
	accounts := account.NewManager(st)
	return &App{
		Store:    st,
		Accounts: accounts,
		Promos:   promo.NewEngine(st, accounts),
		Auth:     auth.NewResolver(st),
		Advisor:  advisor,
		Logger:   logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, msg string) {
	a.json(w, code, map[string]string{"error": slug, "message": msg})
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
