package display

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// ByLabel sorts icons by label using the collation rules of tag, ignoring case.
func ByLabel(tag language.Tag) pagination.Sorter {
	c := collate.New(tag, collate.IgnoreCase)
	return func(a, b *pagination.Icon) int {
		return c.CompareString(a.Label(), b.Label())
	}
}

// ByCount sorts item stacks by descending count. Non-stack icons sort last.
func ByCount() pagination.Sorter {
	return func(a, b *pagination.Icon) int {
		return cmp.Compare(countOf(b), countOf(a))
	}
}

func countOf(icon *pagination.Icon) int {
	if s, ok := icon.Display().(Stack); ok {
		return s.Count()
	}
	return -1
}

// LabelContains keeps icons whose label contains query, ignoring case.
// An empty query keeps everything.
func LabelContains(query string) pagination.Filter {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(icon *pagination.Icon) bool {
		return query == "" || strings.Contains(strings.ToLower(icon.Label()), query)
	}
}

// OfItems keeps item stacks whose registry id is one of ids.
func OfItems(ids ...int32) pagination.Filter {
	return func(icon *pagination.Icon) bool {
		s, ok := icon.Display().(Stack)
		return ok && slices.Contains(ids, s.ID())
	}
}

// AtLeast keeps item stacks holding at least n items.
func AtLeast(n int) pagination.Filter {
	return func(icon *pagination.Icon) bool {
		return countOf(icon) >= n
	}
}
