package handlers

import (
	"net/http"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/utils"
)

type openRequest struct {
	URL string `json:"url"`
}

type openResponse struct {
	Allowed      bool   `json:"allowed"`
	URL          string `json:"url,omitempty"`
	Reason       string `json:"reason,omitempty"`
	RequireLogin bool   `json:"require_login,omitempty"`
	GuestCount   int    `json:"guest_count,omitempty"`
}

// Open evaluates the caller's access to a resource and records the outcome
// in the access log. Denials get a 403 with the reason and, when the caller
// should be prompted to log in, require_login set.
func Open(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openRequest
		if err := readJSON(w, r, &req); err != nil || req.URL == "" {
			writeError(w, http.StatusBadRequest, "missing url")
			return
		}

		ip := utils.ClientIP(r, d.TrustProxy)
		res, err := d.Portal.OpenResource(r.Context(), sessionToken(r), req.URL, ip)
		if err != nil {
			d.Logger.Error("open evaluation failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "evaluation failed")
			return
		}

		status := http.StatusOK
		if !res.Decision.Allowed {
			status = http.StatusForbidden
		}
		writeJSON(w, status, openResponse{
			Allowed:      res.Decision.Allowed,
			URL:          res.URL,
			Reason:       string(res.Decision.Reason),
			RequireLogin: res.Decision.RequireLogin,
			GuestCount:   res.Decision.GuestCount,
		})
	}
}
