package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/httpserver/handlers"
	"github.com/pmlaogao/portal/internal/httpserver/mw"
)

func init() { Register(registerOpen) }

func registerOpen(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/api/open", handlers.Open(d))
}
