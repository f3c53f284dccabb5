package pagination

import (
	"fmt"

	"github.com/google/uuid"
)

// SectionedPagination composes a background layout with independently paginated
// sections on one surface.
type SectionedPagination struct {
	platform *Platform
	viewer   uuid.UUID
	title    string
	readonly bool
	dims     Dimension

	layout   *Layout
	sections []*Section
	locator  *Locator

	surface Surface
	closed  bool
}

// SectionedBuilder assembles a SectionedPagination.
type SectionedBuilder struct {
	platform *Platform
	viewer   uuid.UUID
	title    string
	readonly bool
	layout   *Layout
	sections []*Section
}

// NewSectionedPagination starts a builder bound to platform.
func NewSectionedPagination(platform *Platform) *SectionedBuilder {
	return &SectionedBuilder{platform: platform, readonly: true}
}

// Viewer sets who the surface is opened for.
func (b *SectionedBuilder) Viewer(id uuid.UUID) *SectionedBuilder {
	b.viewer = id
	return b
}

// Title sets the surface title.
func (b *SectionedBuilder) Title(title string) *SectionedBuilder {
	b.title = title
	return b
}

// Readonly controls whether clicks are cancelled by default. Defaults to true.
func (b *SectionedBuilder) Readonly(readonly bool) *SectionedBuilder {
	b.readonly = readonly
	return b
}

// Layout sets the background layout. Its dimension is the surface size.
func (b *SectionedBuilder) Layout(l *Layout) *SectionedBuilder {
	b.layout = l
	return b
}

// Section appends sections in attachment order.
func (b *SectionedBuilder) Section(sections ...*Section) *SectionedBuilder {
	b.sections = append(b.sections, sections...)
	return b
}

// Build validates required fields and attaches every section.
func (b *SectionedBuilder) Build() (*SectionedPagination, error) {
	if err := b.platform.validate(); err != nil {
		return nil, err
	}
	if b.viewer == uuid.Nil {
		return nil, ErrMissingViewer
	}
	if b.layout == nil {
		return nil, ErrMissingLayout
	}
	dims := b.layout.Dimension()
	if !dims.valid() {
		return nil, fmt.Errorf("layout: %w", ErrInvalidZone)
	}

	p := &SectionedPagination{
		platform: b.platform,
		viewer:   b.viewer,
		title:    b.title,
		readonly: b.readonly,
		dims:     dims,
		layout:   b.layout,
		sections: append([]*Section(nil), b.sections...),
	}
	for i, s := range p.sections {
		s.attach(p, i)
	}
	p.locator = NewLocator(p.layout, p.sections...)
	p.warnOverlaps()
	return p, nil
}

// warnOverlaps logs every pair of sections sharing a slot. The first attached
// section wins such slots.
func (p *SectionedPagination) warnOverlaps() {
	for i, a := range p.sections {
		for j := i + 1; j < len(p.sections); j++ {
			b := p.sections[j]
			for slot := range p.dims.Area() {
				if a.Within(slot) && b.Within(slot) {
					p.platform.logger().Printf("pagination: sections %d and %d overlap at slot %d, section %d wins", i, j, slot, i)
					break
				}
			}
		}
	}
}

// At returns the section at index in attachment order.
func (p *SectionedPagination) At(index int) (*Section, error) {
	if index < 0 || index >= len(p.sections) {
		return nil, fmt.Errorf("%w: section %d not in [0, %d)", ErrOutOfRange, index, len(p.sections))
	}
	return p.sections[index], nil
}

// Sections returns the number of attached sections.
func (p *SectionedPagination) Sections() int { return len(p.sections) }

// Locate returns the icon currently occupying slot, or nil.
func (p *SectionedPagination) Locate(slot int) *Icon {
	return p.locator.Locate(slot)
}

// Open asks the platform for a surface and draws every slot.
func (p *SectionedPagination) Open() error {
	if p.closed {
		return ErrClosed
	}
	if p.surface != nil {
		return nil
	}
	surface, err := p.platform.Surfaces.Open(p.viewer, p.title, p.dims)
	if err != nil {
		return fmt.Errorf("open surface for %s: %w", p.viewer, err)
	}
	p.surface = surface
	p.Redraw()
	return nil
}

// Close closes the surface. The instance cannot be reopened.
func (p *SectionedPagination) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.surface == nil {
		return nil
	}
	surface := p.surface
	p.surface = nil
	return surface.Close()
}

// Closed reports whether Close was called.
func (p *SectionedPagination) Closed() bool { return p.closed }

// Redraw writes every slot of the surface.
func (p *SectionedPagination) Redraw() {
	if p.surface == nil {
		return
	}
	for slot := range p.dims.Area() {
		p.surface.Set(slot, p.locator.Locate(slot))
	}
}

// refresh writes through only the slots that resolve through s.
func (p *SectionedPagination) refresh(s *Section) {
	if p.surface == nil {
		return
	}
	for slot := range p.dims.Area() {
		icon, owner := p.locator.resolve(slot)
		if owner == s {
			p.surface.Set(slot, icon)
		}
	}
}

// Override pins icon to slot above the layout and every section.
func (p *SectionedPagination) Override(slot int, icon *Icon) error {
	if p.closed {
		return ErrClosed
	}
	p.locator.Override(slot, icon)
	p.writeSlot(slot)
	return nil
}

// ClearOverride removes the override at slot, revealing what lies beneath.
func (p *SectionedPagination) ClearOverride(slot int) error {
	if p.closed {
		return ErrClosed
	}
	p.locator.ClearOverride(slot)
	p.writeSlot(slot)
	return nil
}

func (p *SectionedPagination) writeSlot(slot int) {
	if p.surface != nil {
		p.surface.Set(slot, p.locator.Locate(slot))
	}
}

// Click runs the listeners of the icon at slot and reports whether the
// interaction should be cancelled on the surface.
func (p *SectionedPagination) Click(slot int, t ClickType) (bool, error) {
	if p.closed {
		return true, ErrClosed
	}
	ctx := &ClickContext{
		Viewer:    p.viewer,
		Slot:      slot,
		Type:      t,
		Cancelled: p.readonly,
	}
	if icon := p.locator.Locate(slot); icon != nil {
		icon.Click(ctx)
	}
	return ctx.Cancelled, nil
}

// Viewer returns who the pagination is shown to.
func (p *SectionedPagination) Viewer() uuid.UUID { return p.viewer }

// Title returns the surface title.
func (p *SectionedPagination) Title() string { return p.title }

// Readonly reports whether clicks are cancelled by default.
func (p *SectionedPagination) Readonly() bool { return p.readonly }

// Dimension returns the surface size.
func (p *SectionedPagination) Dimension() Dimension { return p.dims }

// Layout returns the background layout.
func (p *SectionedPagination) Layout() *Layout { return p.layout }

// Platform returns the platform the pagination was built against.
func (p *SectionedPagination) Platform() *Platform { return p.platform }
