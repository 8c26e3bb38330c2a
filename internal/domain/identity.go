package domain

// Role of an authenticated identity.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Identity is the subject of an access evaluation: an anonymous guest keyed
// by IP, or an authenticated account.
type Identity struct {
	// Username is set for authenticated identities.
	Username string

	// Role is empty for guests.
	Role Role

	// IP is the client address, used to key guest quotas and log rows.
	IP string
}

// Guest builds an anonymous identity for the given client address.
func Guest(ip string) Identity { return Identity{IP: ip} }

// Authenticated reports whether the identity carries a logged-in account.
func (id Identity) Authenticated() bool { return id.Role != "" }

// Admin reports whether the identity bypasses membership checks.
func (id Identity) Admin() bool { return id.Role == RoleAdmin }

// Actor is the name recorded in access-log rows for this identity.
func (id Identity) Actor() string {
	if id.Authenticated() {
		return id.Username
	}
	return GuestActor
}
