package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Store string `json:"store"`
}

// Readyz reports readiness. With a Redis-backed store it pings the server;
// the in-memory store is always ready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.RedisClient == nil {
			writeJSON(w, http.StatusOK, readyzResponse{Ready: true, Store: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := d.RedisClient.Ping(ctx).Err(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false, Store: "redis"})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true, Store: "redis"})
	}
}
