package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/popeskul/crm-comms/internal/api"
)

func setupRouter(handler api.ServerInterface, chain func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// Scrapes bypass the API middleware
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(chain)
		api.HandlerFromMux(handler, r)
	})

	return r
}
