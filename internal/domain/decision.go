package domain

// DenyReason explains why access was not granted.
type DenyReason string

const (
	// DenyNotFound: the session names a member that no longer exists in
	// the store. Should not occur if session state is consistent.
	DenyNotFound DenyReason = "not_found"

	// DenyWindowExpired: now is outside the member's validity window,
	// or the stored window bounds do not parse.
	DenyWindowExpired DenyReason = "window_expired"

	// DenyQuotaExceeded: the guest has used up today's free requests.
	DenyQuotaExceeded DenyReason = "quota_exceeded"
)

// Decision is the outcome of an access evaluation.
type Decision struct {
	// Allowed reports whether the resource may open.
	Allowed bool

	// Reason is set when Allowed is false.
	Reason DenyReason

	// RequireLogin tells the caller to surface a login/upgrade prompt.
	RequireLogin bool

	// GuestCount is the request ordinal returned by the usage counter
	// when the evaluation tracked a guest, 0 otherwise.
	GuestCount int
}

// Admit grants access.
func Admit() Decision { return Decision{Allowed: true} }

// Deny refuses access for the given reason.
func Deny(reason DenyReason) Decision { return Decision{Reason: reason} }

// RequireLogin refuses access and asks the caller to prompt for a login.
func RequireLogin(reason DenyReason) Decision {
	return Decision{Reason: reason, RequireLogin: true}
}
