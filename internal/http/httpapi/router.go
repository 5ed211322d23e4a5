// Package httpapi assembles the chi router over the handler container.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"dreambody/internal/http/handlers"
	"dreambody/internal/middleware"
)

// Options carries the router's environment-driven knobs.
type Options struct {
	// CORSOrigins lists frontend origins; see middleware.CORS.
	CORSOrigins []string

	// LoginRateLimit caps login attempts per IP per minute. Zero
	// disables the limiter.
	LoginRateLimit int
}

// NewRouter wires every store operation onto the API surface.
func NewRouter(app *handlers.App, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
		middleware.Logger(logger),
	)

	r.Get("/v1/healthz", app.Health)

	r.With(middleware.RateLimit(opts.LoginRateLimit, time.Minute)).
		Post("/v1/auth/login", app.Login)
	r.Post("/v1/auth/logout", app.Logout)
	r.Get("/v1/auth/session", app.Session)

	r.Route("/v1/users", func(r chi.Router) {
		r.Get("/", app.ListUsers)
		r.Post("/", app.CreateUser)
		r.Get("/{id}", app.GetUser)
		r.Put("/{id}", app.UpdateUser)
		r.Delete("/{id}", app.DeleteUser)
		r.Post("/{id}/offers/{offerID}/seen", app.MarkOfferSeen)
		r.Post("/{id}/wallet", app.CreditWallet)
		r.Post("/{id}/weights", app.AddWeightEntry)
	})

	r.Route("/v1/packages", func(r chi.Router) {
		r.Get("/", app.ListPackages)
		r.Put("/", app.ReplacePackages)
	})

	r.Route("/v1/promos", func(r chi.Router) {
		r.Get("/", app.ListPromoCodes)
		r.Post("/", app.CreatePromoCode)
		r.Delete("/{id}", app.DeletePromoCode)
		r.Post("/redeem", app.RedeemPromoCode)
		r.Post("/usage", app.IncrementPromoUsage)
	})

	r.Route("/v1/offers", func(r chi.Router) {
		r.Get("/", app.ListOffers)
		r.Post("/", app.CreateOffer)
		r.Delete("/{id}", app.DeleteOffer)
	})

	r.Get("/v1/admin/profile", app.GetAdminProfile)
	r.Put("/v1/admin/profile", app.UpdateAdminProfile)

	r.Post("/v1/advice", app.GetAdvice)

	return r
}
