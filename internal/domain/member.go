package domain

import "time"

// DateTimeLayout is the layout of membership window bounds as they appear
// in the members table.
const DateTimeLayout = "2006-01-02 15:04:05"

// Member is one account row of the members table.
type Member struct {
	// Username is unique within the active set.
	Username string

	// Password is compared verbatim on the password login path.
	// The empty string is meaningful: it marks an alternate-channel
	// account that can only be verified through the identity-only path,
	// never through the password path.
	Password string

	// StartDate and EndDate bound the validity window, formatted with
	// DateTimeLayout. The store does not enforce StartDate <= EndDate.
	StartDate string
	EndDate   string
}

// Passwordless reports whether the account uses the alternate login channel.
func (m *Member) Passwordless() bool { return m.Password == "" }

// WithinWindow reports whether now falls inside [StartDate, EndDate].
// A bound that fails to parse makes the window unsatisfiable: a member
// with a broken date is never valid, the check does not error.
func (m *Member) WithinWindow(now time.Time) bool {
	start, err := time.ParseInLocation(DateTimeLayout, m.StartDate, now.Location())
	if err != nil {
		return false
	}
	end, err := time.ParseInLocation(DateTimeLayout, m.EndDate, now.Location())
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}
