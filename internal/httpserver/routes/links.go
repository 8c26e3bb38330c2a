package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/httpserver/handlers"
	"github.com/pmlaogao/portal/internal/httpserver/mw"
)

func init() { Register(registerLinks) }

func registerLinks(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/links", handlers.Links(d))
}
