package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/villafrance/frontend/internal/handler"
	"github.com/villafrance/frontend/internal/middleware"
	"github.com/villafrance/frontend/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// Frontend CSP: self-hosted assets plus remote property/press images
	frontendCSP := "default-src 'self'; img-src 'self' https: data:; style-src 'self' 'unsafe-inline'"
	r.Use(middleware.SecurityHeadersWithCSP(deps.Public.SecureCookies, frontendCSP))

	r.Use(middleware.Metrics)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/favicon.ico", handler.FaviconHandler)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))),
	)

	h := deps.Handler

	// Marketing pages
	r.HandleFunc("/", h.HomeGetHandler).Methods("GET")
	r.HandleFunc("/search", h.SearchGetHandler).Methods("GET")
	r.HandleFunc("/destinations/{slug}", h.DestinationGetHandler).Methods("GET")
	r.HandleFunc("/properties/{id}", h.PropertyGetHandler).Methods("GET")
	r.HandleFunc("/blog", h.BlogGetHandler).Methods("GET")
	r.HandleFunc("/blog/{slug}", h.BlogPostGetHandler).Methods("GET")

	// Auth pages
	r.HandleFunc("/login", h.LoginGetHandler).Methods("GET")
	r.HandleFunc("/register", h.RegisterGetHandler).Methods("GET")
	r.HandleFunc("/account", h.AccountGetHandler).Methods("GET")
	r.HandleFunc("/account/bookings", h.BookingsGetHandler).Methods("GET")

	// Form submissions carry the CSRF token
	formRouter := r.NewRoute().Subrouter()
	formRouter.Use(middleware.ValidateCSRFToken())
	formRouter.HandleFunc("/login", h.LoginPostHandler).Methods("POST")
	formRouter.HandleFunc("/register", h.RegisterPostHandler).Methods("POST")
	formRouter.HandleFunc("/logout", h.LogoutHandler).Methods("POST")
	formRouter.HandleFunc("/account", h.ProfilePostHandler).Methods("POST")
	formRouter.HandleFunc("/account/bookings/{id}/cancel", h.BookingCancelHandler).Methods("POST")
	formRouter.HandleFunc("/account/bookings/{id}/pay", h.BookingPayHandler).Methods("POST")
	formRouter.HandleFunc("/properties/{id}/book", h.BookingPostHandler).Methods("POST")
	formRouter.HandleFunc("/properties/{id}/reviews", h.ReviewPostHandler).Methods("POST")

	return r
}
