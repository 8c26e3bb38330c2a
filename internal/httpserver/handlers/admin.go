package handlers

import (
	"errors"
	"net/http"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/portal"
)

type memberItem struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type membersResponse struct {
	Members []memberItem `json:"members"`
}

type membersRequest struct {
	Members []memberItem `json:"members"`
}

type rawResponse struct {
	Raw string `json:"raw"`
}

type rawRequest struct {
	Raw string `json:"raw"`
}

// adminOnly rejects any request whose session does not belong to an admin.
func adminOnly(d deps.Deps, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := d.Portal.IdentityOf(sessionToken(r))
		if !ok || !id.Admin() {
			writeError(w, http.StatusForbidden, "admin session required")
			return
		}
		next(w, r)
	}
}

// AdminMembers returns the full member set for the admin editor.
func AdminMembers(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		members, err := d.Portal.AdminMembers(r.Context())
		if err != nil {
			d.Logger.Error("failed to load members", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load members")
			return
		}

		out := make([]memberItem, 0, len(members))
		for _, m := range members {
			out = append(out, memberItem{
				Username:  m.Username,
				Password:  m.Password,
				StartDate: m.StartDate,
				EndDate:   m.EndDate,
			})
		}
		writeJSON(w, http.StatusOK, membersResponse{Members: out})
	})
}

// AdminEditMembers replaces the member set wholesale.
func AdminEditMembers(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		var req membersRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}

		members := make([]domain.Member, 0, len(req.Members))
		for _, m := range req.Members {
			members = append(members, domain.Member{
				Username:  m.Username,
				Password:  m.Password,
				StartDate: m.StartDate,
				EndDate:   m.EndDate,
			})
		}

		if err := d.Portal.AdminEditMembers(r.Context(), members); err != nil {
			if errors.Is(err, portal.ErrPasswordCleared) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			d.Logger.Error("failed to save members", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save members")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// AdminLinks returns the raw links table for the admin editor.
func AdminLinks(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		raw, err := d.Portal.AdminLinksRaw(r.Context())
		if err != nil {
			d.Logger.Error("failed to load links table", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load links table")
			return
		}
		writeJSON(w, http.StatusOK, rawResponse{Raw: raw})
	})
}

// AdminEditLinks replaces the raw links table verbatim.
func AdminEditLinks(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		var req rawRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}
		if err := d.Portal.AdminEditLinks(r.Context(), req.Raw); err != nil {
			d.Logger.Error("failed to save links table", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save links table")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// AdminLogs returns the raw access log for the admin view.
func AdminLogs(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		raw, err := d.Portal.AdminLogsRaw(r.Context())
		if err != nil {
			d.Logger.Error("failed to load access log", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load access log")
			return
		}
		writeJSON(w, http.StatusOK, rawResponse{Raw: raw})
	})
}

// AdminResetLogs discards all access-log rows.
func AdminResetLogs(d deps.Deps) http.HandlerFunc {
	return adminOnly(d, func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.AdminResetLogs(r.Context()); err != nil {
			d.Logger.Error("failed to reset access log", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to reset access log")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
