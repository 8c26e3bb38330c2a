package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/httpserver/handlers"
	"github.com/pmlaogao/portal/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)

	// Credential endpoints are rate limited per IP to slow down guessing.
	limited := r.With(host, mw.RateLimit(mw.RateLimitConfig{
		Burst:             5,
		RefillPerIPPerMin: 10,
		MaxEntries:        10_000,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	}))
	limited.Post("/api/login", handlers.Login(d))
	limited.Post("/api/login/verify", handlers.Verify(d))
	limited.Post("/api/login/unlock", handlers.Unlock(d))

	r.With(host).Get("/api/login/qr", handlers.LoginQR(d))
	r.With(host).Post("/api/logout", handlers.Logout(d))
}
