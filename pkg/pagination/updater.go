package pagination

import "fmt"

// UpdaterType is the navigation action an updater performs.
type UpdaterType int

const (
	First UpdaterType = iota
	Previous
	Current
	Next
	Last
)

func (t UpdaterType) String() string {
	switch t {
	case First:
		return "FIRST"
	case Previous:
		return "PREVIOUS"
	case Current:
		return "CURRENT"
	case Next:
		return "NEXT"
	case Last:
		return "LAST"
	default:
		return fmt.Sprintf("UpdaterType(%d)", int(t))
	}
}

// Translate maps the current page to the page this action leads to.
func (t UpdaterType) Translate(page, maxPages int) int {
	switch t {
	case First:
		return 1
	case Previous:
		return max(1, page-1)
	case Next:
		return min(maxPages, page+1)
	case Last:
		return maxPages
	default:
		return page
	}
}

// leadsBackward reports whether the action points toward page 1.
func (t UpdaterType) leadsBackward() bool { return t == First || t == Previous }

// leadsForward reports whether the action points toward the last page.
func (t UpdaterType) leadsForward() bool { return t == Next || t == Last }

// Updater is a navigation control fixed to one surface slot.
type Updater struct {
	Type UpdaterType
	Slot int
}

// NewUpdater creates an updater of type t at slot.
func NewUpdater(t UpdaterType, slot int) Updater {
	return Updater{Type: t, Slot: slot}
}

// Translate maps the current page to this updater's target page.
func (u Updater) Translate(page, maxPages int) int {
	return u.Type.Translate(page, maxPages)
}

// UpdaterStyle controls how updaters render on the first and last page.
type UpdaterStyle int

const (
	// ShowAlways places every updater on every page.
	ShowAlways UpdaterStyle = iota
	// HideAtBoundary leaves backward updaters off page 1 and forward updaters off the last page.
	HideAtBoundary
	// DisableAtBoundary renders boundary updaters through the factory as disabled icons.
	DisableAtBoundary
)

func (s UpdaterStyle) String() string {
	switch s {
	case ShowAlways:
		return "show-always"
	case HideAtBoundary:
		return "hide-at-boundary"
	case DisableAtBoundary:
		return "disable-at-boundary"
	default:
		return fmt.Sprintf("UpdaterStyle(%d)", int(s))
	}
}

// atBoundary reports whether u points past the edge of the page range.
func atBoundary(u Updater, page, maxPages int) bool {
	return (u.Type.leadsBackward() && page == 1) || (u.Type.leadsForward() && page == maxPages)
}
