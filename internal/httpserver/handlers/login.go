package handlers

import (
	"errors"
	"net/http"

	"github.com/pmlaogao/portal/internal/access"
	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Username string `json:"username"`
}

type unlockRequest struct {
	Code string `json:"code"`
}

type sessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login runs the password path and sets the session cookie on success.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}

		token, id, err := d.Portal.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondLoginErr(w, d, err)
			return
		}
		setSessionCookie(w, token)
		writeJSON(w, http.StatusOK, sessionResponse{Username: id.Username, Role: string(id.Role)})
	}
}

// Verify runs the alternate-channel path: the account must exist and carry
// no password. Identity confirmation happens out of band, so the endpoint
// only checks eligibility.
func Verify(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}

		token, id, err := d.Portal.VerifyIdentity(r.Context(), req.Username)
		if err != nil {
			respondLoginErr(w, d, err)
			return
		}
		setSessionCookie(w, token)
		writeJSON(w, http.StatusOK, sessionResponse{Username: id.Username, Role: string(id.Role)})
	}
}

// Unlock runs the hidden admin entrance.
func Unlock(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unlockRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}

		token, id, err := d.Portal.QuickUnlock(req.Code)
		if err != nil {
			respondLoginErr(w, d, err)
			return
		}
		setSessionCookie(w, token)
		writeJSON(w, http.StatusOK, sessionResponse{Username: id.Username, Role: string(id.Role)})
	}
}

// Logout ends the session and clears the cookie. Stale tokens are a no-op.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := sessionToken(r); token != "" {
			d.Portal.Logout(token)
		}
		clearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func respondLoginErr(w http.ResponseWriter, d deps.Deps, err error) {
	if errors.Is(err, access.ErrBadCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	d.Logger.Error("login failed", logger.Error(err))
	writeError(w, http.StatusInternalServerError, "login failed")
}
