package pagination

import "slices"

// Filter decides whether an icon is kept.
type Filter func(icon *Icon) bool

// Sorter orders two icons, returning a negative number when a sorts first.
type Sorter func(a, b *Icon) int

// updatable is implemented by anything a ruleset can rebuild.
type updatable interface {
	update() error
}

// Ruleset is an optional filter and sort applied to content before it is sliced into pages.
// Changing either rule rebuilds the attached owner immediately.
type Ruleset struct {
	filter Filter
	sorter Sorter
	owner  updatable
}

// NewRuleset creates a ruleset with no filter and no sorter.
func NewRuleset() *Ruleset { return &Ruleset{} }

// Filter replaces the filter and rebuilds the owner, if any. nil clears it.
// If the rebuild panics the previous filter is put back before the panic continues.
func (r *Ruleset) Filter(f Filter) error {
	prev := r.filter
	r.filter = f
	defer func() {
		if rec := recover(); rec != nil {
			r.filter = prev
			panic(rec)
		}
	}()
	return r.rebuild()
}

// Sorter replaces the sorter and rebuilds the owner, if any. nil clears it.
// If the rebuild panics the previous sorter is put back before the panic continues.
func (r *Ruleset) Sorter(s Sorter) error {
	prev := r.sorter
	r.sorter = s
	defer func() {
		if rec := recover(); rec != nil {
			r.sorter = prev
			panic(rec)
		}
	}()
	return r.rebuild()
}

// Apply filters then stably sorts icons. The input slice is not modified.
func (r *Ruleset) Apply(icons []*Icon) []*Icon {
	out := slices.Clone(icons)
	if r == nil {
		return out
	}
	if r.filter != nil {
		filter := r.filter
		out = slices.DeleteFunc(out, func(i *Icon) bool { return !filter(i) })
	}
	if r.sorter != nil {
		slices.SortStableFunc(out, r.sorter)
	}
	return out
}

// attach makes owner the one thing r rebuilds. A ruleset serves a single owner.
func (r *Ruleset) attach(owner updatable) error {
	if r.owner != nil && r.owner != owner {
		return ErrRulesetInUse
	}
	r.owner = owner
	return nil
}

// handOver moves ownership from one owner to the one wrapping it.
func (r *Ruleset) handOver(from, to updatable) {
	if r.owner == from {
		r.owner = to
	}
}

func (r *Ruleset) rebuild() error {
	if r.owner == nil {
		return nil
	}
	return r.owner.update()
}
