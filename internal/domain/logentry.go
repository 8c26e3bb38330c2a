package domain

// GuestActor is the actor recorded for unauthenticated visitors.
const GuestActor = "Guest"

// UnknownValue is the sentinel recorded when a field could not be resolved
// (failed location lookups, pre-migration log rows missing the actor column).
const UnknownValue = "Unknown"

// LogEntry is one row of the append-only access log. Rows are only ever
// appended or bulk-reset, never mutated or reordered.
type LogEntry struct {
	// Actor is GuestActor or an authenticated username.
	Actor string

	// IP is the client address the request was evaluated for.
	IP string

	// Location is the resolved coarse location, or UnknownValue.
	Location string

	// Timestamp is a locale-formatted string frozen at append time.
	Timestamp string

	// Count is the guest request ordinal for the day. Authenticated
	// actors record 0, meaning "not quota-tracked".
	Count int
}
