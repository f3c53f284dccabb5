package pagination

// Locator resolves which icon occupies a slot. Precedence is: explicit
// override, then status placeholder, then background layout, then the
// current page of the first section (in attachment order) containing the slot.
type Locator struct {
	layout       *Layout
	sections     []*Section
	overrides    map[int]*Icon
	placeholders map[int]*Icon
}

// NewLocator creates a locator over layout and sections.
func NewLocator(layout *Layout, sections ...*Section) *Locator {
	return &Locator{
		layout:       layout,
		sections:     sections,
		overrides:    make(map[int]*Icon),
		placeholders: make(map[int]*Icon),
	}
}

// Locate returns the icon at slot, or nil.
func (l *Locator) Locate(slot int) *Icon {
	icon, _ := l.resolve(slot)
	return icon
}

// Owner returns the section that slot resolves through, or nil when an
// override or layout element claims it first.
func (l *Locator) Owner(slot int) *Section {
	_, sec := l.resolve(slot)
	return sec
}

func (l *Locator) resolve(slot int) (*Icon, *Section) {
	if icon, ok := l.overrides[slot]; ok {
		return icon, nil
	}
	if icon, ok := l.placeholders[slot]; ok {
		return icon, nil
	}
	if icon, ok := l.layout.Get(slot); ok {
		return icon, nil
	}
	for _, s := range l.sections {
		if !s.Within(slot) {
			continue
		}
		if page := s.Current(); page != nil {
			icon, _ := page.Icon(slot)
			return icon, s
		}
		return nil, s
	}
	return nil, nil
}

// Override pins icon to slot above everything else.
func (l *Locator) Override(slot int, icon *Icon) {
	l.overrides[slot] = icon
}

// ClearOverride removes the override at slot.
func (l *Locator) ClearOverride(slot int) {
	delete(l.overrides, slot)
}

// Overridden reports whether slot has an override.
func (l *Locator) Overridden(slot int) bool {
	_, ok := l.overrides[slot]
	return ok
}

// Placeholder shows icon at slot until cleared. Overrides still win over it.
func (l *Locator) Placeholder(slot int, icon *Icon) {
	l.placeholders[slot] = icon
}

// ClearPlaceholder removes the placeholder at slot.
func (l *Locator) ClearPlaceholder(slot int) {
	delete(l.placeholders, slot)
}
