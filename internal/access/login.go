package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/store"
)

// ErrBadCredentials is the only login failure surfaced to the end user.
var ErrBadCredentials = errors.New("access: invalid username or password")

// Authenticator validates login attempts against the member store and the
// configured admin account. A successful login yields an Identity; the
// membership window is NOT checked here, only on the next Evaluate.
type Authenticator struct {
	members    *store.MemberRepo
	adminUser  string
	adminPass  string
	unlockCode string
	log        logger.Logger
}

// NewAuthenticator wires the login paths. unlockCode may be empty to
// disable the quick-unlock path.
func NewAuthenticator(members *store.MemberRepo, adminUser, adminPass, unlockCode string, log logger.Logger) *Authenticator {
	return &Authenticator{
		members:    members,
		adminUser:  adminUser,
		adminPass:  adminPass,
		unlockCode: unlockCode,
		log:        log,
	}
}

// LoginPassword is the password path. The admin credentials always win,
// regardless of the members table. For members, the stored password must be
// non-empty and equal to the attempt: an account with an empty stored
// password belongs to the alternate channel and never matches here, not
// even against an empty attempt.
func (a *Authenticator) LoginPassword(ctx context.Context, username, password string) (domain.Identity, error) {
	if username == a.adminUser && password == a.adminPass {
		a.log.Info("admin login", logger.String("username", username))
		return domain.Identity{Username: username, Role: domain.RoleAdmin}, nil
	}

	member, err := a.members.Find(ctx, username)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to look up member: %w", err)
	}
	if member == nil || member.Passwordless() || member.Password != password {
		return domain.Identity{}, ErrBadCredentials
	}
	return domain.Identity{Username: username, Role: domain.RoleMember}, nil
}

// VerifyIdentity is the alternate-channel path: it matches a username whose
// stored password is strictly the empty string.
func (a *Authenticator) VerifyIdentity(ctx context.Context, username string) (domain.Identity, error) {
	member, err := a.members.Find(ctx, username)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to look up member: %w", err)
	}
	if member == nil || !member.Passwordless() {
		return domain.Identity{}, ErrBadCredentials
	}
	return domain.Identity{Username: username, Role: domain.RoleMember}, nil
}

// QuickUnlock grants an admin identity for the configured unlock code.
// This is the hidden maintenance entrance; an empty configured code keeps
// it disabled.
func (a *Authenticator) QuickUnlock(code string) (domain.Identity, error) {
	if a.unlockCode == "" || code != a.unlockCode {
		return domain.Identity{}, ErrBadCredentials
	}
	a.log.Info("quick-unlock admin session opened")
	return domain.Identity{Username: a.adminUser, Role: domain.RoleAdmin}, nil
}
