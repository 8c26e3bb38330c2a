package store

// Storage keys follow the layout the original portal persisted under; the
// record stores own these keys exclusively.
const (
	// KeyLinks holds the pipe-delimited LinkItem table.
	KeyLinks = "links"
	// KeyMembers holds the pipe-delimited Member table.
	KeyMembers = "members"
	// KeyLogs holds the append-only LogEntry table.
	KeyLogs = "logs"
)
