package domain

// LinkType categorizes a portal link into one of the three sections
// rendered by the front end.
type LinkType string

const (
	LinkTypeTools    LinkType = "tools"
	LinkTypeInternal LinkType = "internal"
	LinkTypeExternal LinkType = "external"
)

// Known reports whether t is one of the recognized link categories.
// Unknown categories are kept as-is; the front end decides what to do
// with them.
func (t LinkType) Known() bool {
	switch t {
	case LinkTypeTools, LinkTypeInternal, LinkTypeExternal:
		return true
	}
	return false
}

// LinkItem represents one entry of the portal's resource table.
type LinkItem struct {
	// ─────────────────────────────
	// Identity (synthetic)
	// ─────────────────────────────

	// ID is assigned when the source blob is parsed. It is unique within
	// one parse but not stable across parses: replacing the blob
	// regenerates every ID.
	ID string

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the display name of the resource.
	Title string

	// URL is the resource to open on click.
	URL string

	// Description is the card body text shown under the title.
	Description string

	// Type selects the section the link is rendered in.
	Type LinkType

	// IconKey names the icon the front end renders for this link.
	// Example: "FileText", "Globe"
	IconKey string
}
