package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/httpserver/handlers"
	"github.com/pmlaogao/portal/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	sub := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)
	sub.Get("/api/admin/links", handlers.AdminLinks(d))
	sub.Put("/api/admin/links", handlers.AdminEditLinks(d))
	sub.Get("/api/admin/members", handlers.AdminMembers(d))
	sub.Put("/api/admin/members", handlers.AdminEditMembers(d))
	sub.Get("/api/admin/logs", handlers.AdminLogs(d))
	sub.Delete("/api/admin/logs", handlers.AdminResetLogs(d))
}
