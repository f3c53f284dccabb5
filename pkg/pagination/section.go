package pagination

import (
	"fmt"
	"slices"
)

// Section is an independently paginated sub-region of a SectionedPagination.
// It only reaches its surface once attached; the owner keeps it exclusively.
type Section struct {
	zone    Dimension
	offset  Offset
	width   int
	manager *PageManager

	// parent is a non-owning back-reference set by attach.
	parent *SectionedPagination
	index  int
}

// SectionBuilder assembles a Section.
type SectionBuilder struct {
	zone     Dimension
	offset   Offset
	updaters []Updater
	style    UpdaterStyle
	ruleset  *Ruleset
	contents []*Icon
	icons    IconFactory
}

// NewSection starts a section builder.
func NewSection() *SectionBuilder {
	return &SectionBuilder{}
}

// Zone sets the visible extent of the section.
func (b *SectionBuilder) Zone(columns, rows int) *SectionBuilder {
	b.zone = Dimension{Columns: columns, Rows: rows}
	return b
}

// Offset sets the top-left origin of the zone on the surface.
func (b *SectionBuilder) Offset(column, row int) *SectionBuilder {
	b.offset = Offset{Column: column, Row: row}
	return b
}

// Updater adds a navigation updater at slot.
func (b *SectionBuilder) Updater(t UpdaterType, slot int) *SectionBuilder {
	b.updaters = append(b.updaters, NewUpdater(t, slot))
	return b
}

// Style sets how updaters render on boundary pages.
func (b *SectionBuilder) Style(s UpdaterStyle) *SectionBuilder {
	b.style = s
	return b
}

// Ruleset sets the content filter and sorter.
func (b *SectionBuilder) Ruleset(r *Ruleset) *SectionBuilder {
	b.ruleset = r
	return b
}

// Contents sets the unfiltered content.
func (b *SectionBuilder) Contents(icons ...*Icon) *SectionBuilder {
	b.contents = slices.Clone(icons)
	return b
}

// Icons overrides the platform icon factory for this section.
func (b *SectionBuilder) Icons(f IconFactory) *SectionBuilder {
	b.icons = f
	return b
}

// Build validates the zone and generates the first page set.
func (b *SectionBuilder) Build() (*Section, error) {
	m, err := NewPageManager(ManagerConfig{
		Zone:     b.zone,
		Offset:   b.offset,
		Width:    DefaultColumns,
		Updaters: b.updaters,
		Style:    b.style,
		Ruleset:  b.ruleset,
		Icons:    b.icons,
	}, b.contents)
	if err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	s := &Section{
		zone:    b.zone,
		offset:  b.offset,
		width:   DefaultColumns,
		manager: m,
		index:   -1,
	}
	m.Ruleset().handOver(m, s)
	return s, nil
}

// attach binds the section to its owner and redraws its pages for the owner's surface.
func (s *Section) attach(parent *SectionedPagination, index int) {
	if s.parent != nil {
		panic(fmt.Sprintf("section already attached at index %d", s.index))
	}
	s.parent = parent
	s.index = index
	s.width = parent.dims.Columns

	s.manager.setWidth(s.width)
	s.manager.setLogger(parent.platform.logger())
	if s.manager.draw.factory == nil {
		s.manager.setIcons(parent.platform.Icons)
	}
	s.manager.setNavigate(func(target int) {
		if err := s.Page(target); err != nil {
			parent.platform.logger().Printf("pagination: section %d: navigate to page %d: %v", index, target, err)
		}
	})
	s.manager.Update()
}

// Within reports whether slot falls inside the section. Both bounds are
// inclusive, so the row and column directly after the zone belong to it.
func (s *Section) Within(slot int) bool {
	if slot < 0 {
		return false
	}
	col, row := Coordinates(slot, s.width)
	return col >= s.offset.Column && col <= s.offset.Column+s.zone.Columns &&
		row >= s.offset.Row && row <= s.offset.Row+s.zone.Rows
}

// Page moves the section to target and writes its slots through to the surface.
func (s *Section) Page(target int) error {
	if s.parent == nil {
		return ErrDetached
	}
	if s.parent.closed {
		return ErrClosed
	}
	if err := s.manager.Page(target); err != nil {
		return err
	}
	s.parent.refresh(s)
	return nil
}

// SetContents replaces the section's content and rebuilds it.
func (s *Section) SetContents(icons []*Icon) error {
	s.manager.contents = slices.Clone(icons)
	return s.update()
}

func (s *Section) update() error {
	s.manager.Update()
	if s.parent != nil && !s.parent.closed {
		s.parent.refresh(s)
	}
	return nil
}

// Parent returns the owning pagination.
func (s *Section) Parent() (*SectionedPagination, error) {
	if s.parent == nil {
		return nil, ErrDetached
	}
	return s.parent, nil
}

// Index returns the attachment index, or -1 when detached.
func (s *Section) Index() int { return s.index }

// Ruleset returns the section's content ruleset.
func (s *Section) Ruleset() *Ruleset { return s.manager.Ruleset() }

// Current returns the current page.
func (s *Section) Current() *Page { return s.manager.Current() }

// CurrentPage returns the 1-based current page number.
func (s *Section) CurrentPage() int { return s.manager.CurrentPage() }

// MaxPages returns the number of pages.
func (s *Section) MaxPages() int { return s.manager.MaxPages() }

// Zone returns the visible extent.
func (s *Section) Zone() Dimension { return s.zone }

// Offset returns the zone origin.
func (s *Section) Offset() Offset { return s.offset }

// Slots returns the content slots of the zone.
func (s *Section) Slots() []int { return s.manager.Slots() }

// Contents returns a copy of the unfiltered content.
func (s *Section) Contents() []*Icon { return s.manager.Contents() }
