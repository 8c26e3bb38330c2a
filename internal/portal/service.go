// Package portal exposes the caller-facing operations the UI layer consumes:
// resource opening, the login paths, and the admin workspace.
package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmlaogao/portal/internal/access"
	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/ipinfo"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/store"
)

// TimestampLayout formats the access-log timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrPasswordCleared rejects a member edit that would blank an existing
// non-empty password. Blanking would silently convert a password-protected
// account into an alternate-channel one.
var ErrPasswordCleared = errors.New("portal: refusing to clear a member password")

// Service orchestrates the stores, the access policy, and the session
// registry on behalf of the UI layer.
type Service struct {
	store      *store.Store
	controller *access.Controller
	auth       *access.Authenticator
	sessions   *access.Sessions
	resolver   ipinfo.Resolver
	log        logger.Logger
	now        func() time.Time
}

// NewService wires the caller-facing operations. now may be nil.
func NewService(
	s *store.Store,
	controller *access.Controller,
	auth *access.Authenticator,
	sessions *access.Sessions,
	resolver ipinfo.Resolver,
	log logger.Logger,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:      s,
		controller: controller,
		auth:       auth,
		sessions:   sessions,
		resolver:   resolver,
		log:        log,
		now:        now,
	}
}

// OpenResult reports the outcome of an open request.
type OpenResult struct {
	Decision domain.Decision
	URL      string // set when admitted
}

// OpenResource evaluates access for the session's identity (guest when the
// token is unknown), records the outcome in the access log, and reports
// whether the resource may open. The log row is appended on denial too.
func (s *Service) OpenResource(ctx context.Context, token, rawURL, clientIP string) (OpenResult, error) {
	id, ok := s.sessions.Lookup(token)
	if !ok {
		id = domain.Guest(clientIP)
	} else {
		id.IP = clientIP
	}

	decision, err := s.controller.Evaluate(ctx, id)
	if err != nil {
		return OpenResult{}, err
	}

	entry := domain.LogEntry{
		Actor:     id.Actor(),
		IP:        clientIP,
		Location:  s.resolver.Locate(ctx, clientIP),
		Timestamp: s.now().Format(TimestampLayout),
		Count:     decision.GuestCount,
	}
	if err := s.store.Logs.Append(ctx, entry); err != nil {
		// Logging is best effort; the decision stands.
		s.log.Warn("failed to record access log", logger.Error(err))
	}

	res := OpenResult{Decision: decision}
	if decision.Allowed {
		res.URL = rawURL
	}
	return res, nil
}

// Links returns the parsed resource table for the public listing.
func (s *Service) Links(ctx context.Context) ([]domain.LinkItem, error) {
	return s.store.Links.LoadAll(ctx)
}

// Login runs the password path and opens a session on success.
func (s *Service) Login(ctx context.Context, username, password string) (string, domain.Identity, error) {
	id, err := s.auth.LoginPassword(ctx, username, password)
	if err != nil {
		return "", domain.Identity{}, err
	}
	return s.sessions.Start(id), id, nil
}

// VerifyIdentity runs the alternate-channel path and opens a session on
// success.
func (s *Service) VerifyIdentity(ctx context.Context, username string) (string, domain.Identity, error) {
	id, err := s.auth.VerifyIdentity(ctx, username)
	if err != nil {
		return "", domain.Identity{}, err
	}
	return s.sessions.Start(id), id, nil
}

// QuickUnlock runs the hidden admin entrance and opens a session on success.
func (s *Service) QuickUnlock(code string) (string, domain.Identity, error) {
	id, err := s.auth.QuickUnlock(code)
	if err != nil {
		return "", domain.Identity{}, err
	}
	return s.sessions.Start(id), id, nil
}

// Logout ends the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.sessions.End(token)
}

// IdentityOf resolves a session token, reporting whether it is live.
func (s *Service) IdentityOf(token string) (domain.Identity, bool) {
	return s.sessions.Lookup(token)
}

// AdminMembers returns the full member set for the admin editor.
func (s *Service) AdminMembers(ctx context.Context) ([]domain.Member, error) {
	return s.store.Members.LoadAll(ctx)
}

// AdminEditMembers replaces the member set wholesale. An edit that blanks
// an existing member's non-empty password is rejected.
func (s *Service) AdminEditMembers(ctx context.Context, members []domain.Member) error {
	current, err := s.store.Members.LoadAll(ctx)
	if err != nil {
		return err
	}

	stored := make(map[string]string, len(current))
	for _, m := range current {
		stored[m.Username] = m.Password
	}
	for _, m := range members {
		if prev, ok := stored[m.Username]; ok && prev != "" && m.Password == "" {
			return fmt.Errorf("%w: %s", ErrPasswordCleared, m.Username)
		}
	}

	return s.store.Members.ReplaceAll(ctx, members)
}

// AdminLinksRaw returns the raw links blob for the admin editor.
func (s *Service) AdminLinksRaw(ctx context.Context) (string, error) {
	return s.store.Links.LoadRaw(ctx)
}

// AdminEditLinks replaces the raw links blob verbatim.
func (s *Service) AdminEditLinks(ctx context.Context, raw string) error {
	return s.store.Links.ReplaceRaw(ctx, raw)
}

// AdminLogsRaw returns the raw access log for the admin view.
func (s *Service) AdminLogsRaw(ctx context.Context) (string, error) {
	return s.store.Logs.LoadRaw(ctx)
}

// AdminResetLogs discards all log rows.
func (s *Service) AdminResetLogs(ctx context.Context) error {
	return s.store.Logs.ResetToDefault(ctx)
}
