// Package access implements the portal's authorization policy: membership
// validity windows, guest quotas, the login paths, and the in-memory
// browsing-session registry.
package access

import (
	"context"
	"time"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/quota"
	"github.com/pmlaogao/portal/internal/store"
)

// DefaultGuestQuota is the number of admitted guest requests per identity
// per calendar day. The check is strictly greater-than: exactly this many
// requests are admitted, the next one is the first denial.
const DefaultGuestQuota = 5

// Controller evaluates admit/deny decisions. It never writes member or log
// state itself; the only side effect of an evaluation is the guest counter
// increment.
type Controller struct {
	members *store.MemberRepo
	counter *quota.Counter
	quota   int
	now     func() time.Time
	log     logger.Logger
}

// NewController wires the policy over the member store and usage counter.
// threshold <= 0 falls back to DefaultGuestQuota; now may be nil.
func NewController(members *store.MemberRepo, counter *quota.Counter, threshold int, now func() time.Time, log logger.Logger) *Controller {
	if threshold <= 0 {
		threshold = DefaultGuestQuota
	}
	if now == nil {
		now = time.Now
	}
	return &Controller{
		members: members,
		counter: counter,
		quota:   threshold,
		now:     now,
		log:     log,
	}
}

// Evaluate answers "may this identity open a resource now". Guests consume
// one quota unit per call; authenticated identities are checked against
// their stored validity window. Admins always pass.
func (c *Controller) Evaluate(ctx context.Context, id domain.Identity) (domain.Decision, error) {
	if id.Authenticated() {
		return c.evaluateMember(ctx, id)
	}
	return c.evaluateGuest(ctx, id.IP)
}

func (c *Controller) evaluateMember(ctx context.Context, id domain.Identity) (domain.Decision, error) {
	if id.Admin() {
		return domain.Admit(), nil
	}

	member, err := c.members.Find(ctx, id.Username)
	if err != nil {
		return domain.Decision{}, err
	}
	if member == nil {
		// Session names an account that is gone from the store.
		c.log.Warn("authenticated session for unknown member",
			logger.String("username", id.Username))
		return domain.RequireLogin(domain.DenyNotFound), nil
	}
	if !member.WithinWindow(c.now()) {
		return domain.Deny(domain.DenyWindowExpired), nil
	}
	return domain.Admit(), nil
}

func (c *Controller) evaluateGuest(ctx context.Context, ip string) (domain.Decision, error) {
	count, err := c.counter.Increment(ctx, ip)
	if err != nil {
		return domain.Decision{}, err
	}

	if count > c.quota {
		c.log.Info("guest quota exceeded",
			logger.String("ip", ip),
			logger.Int("count", count))
		d := domain.RequireLogin(domain.DenyQuotaExceeded)
		d.GuestCount = count
		return d, nil
	}

	d := domain.Admit()
	d.GuestCount = count
	return d, nil
}
