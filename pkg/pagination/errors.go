package pagination

import "errors"

var (
	// ErrOutOfRange is returned when a page or section index is outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	ErrMissingPlatform = errors.New("no platform set")
	ErrMissingProvider = errors.New("platform has no surface provider")

	// ErrMissingScheduler is returned when async content has no owning goroutine to be applied on.
	ErrMissingScheduler = errors.New("platform has no scheduler")
	ErrMissingViewer   = errors.New("no viewer set")
	ErrMissingLayout   = errors.New("no layout set")
	ErrInvalidZone     = errors.New("zone must have at least one column and one row")

	// ErrRulesetInUse is returned when a ruleset already rebuilds another manager or section.
	ErrRulesetInUse = errors.New("ruleset is already attached to another owner")

	// ErrDetached is returned by section operations that need the owning pagination.
	ErrDetached = errors.New("section is not attached to a pagination")
	ErrClosed   = errors.New("pagination is closed")

	// ErrTimedOut is reported by AsyncPagination.Wait when content did not resolve in time.
	ErrTimedOut = errors.New("content resolution timed out")
)
