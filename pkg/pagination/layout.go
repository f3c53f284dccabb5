package pagination

import "maps"

// Layout is an immutable background of fixed icons addressed by slot.
type Layout struct {
	dims     Dimension
	elements map[int]*Icon
}

// Get returns the icon at slot, if any.
func (l *Layout) Get(slot int) (*Icon, bool) {
	if l == nil {
		return nil, false
	}
	icon, ok := l.elements[slot]
	return icon, ok
}

// Dimension returns the surface size the layout was built for.
func (l *Layout) Dimension() Dimension { return l.dims }

// Elements returns a copy of the slot to icon mapping.
func (l *Layout) Elements() map[int]*Icon {
	return maps.Clone(l.elements)
}

// Len returns the number of occupied slots.
func (l *Layout) Len() int { return len(l.elements) }

// LayoutBuilder assembles a Layout. Later placements overwrite earlier ones.
type LayoutBuilder struct {
	dims     Dimension
	elements map[int]*Icon
}

// NewLayout starts a layout for a surface of the given size.
func NewLayout(dims Dimension) *LayoutBuilder {
	return &LayoutBuilder{dims: dims, elements: make(map[int]*Icon)}
}

// Slot places icon at a single slot. Slots outside the surface are ignored.
func (b *LayoutBuilder) Slot(icon *Icon, slot int) *LayoutBuilder {
	if slot >= 0 && slot < b.dims.Area() {
		b.elements[slot] = icon
	}
	return b
}

// Slots places icon at every given slot.
func (b *LayoutBuilder) Slots(icon *Icon, slots ...int) *LayoutBuilder {
	for _, s := range slots {
		b.Slot(icon, s)
	}
	return b
}

// Row fills a whole row.
func (b *LayoutBuilder) Row(icon *Icon, row int) *LayoutBuilder {
	for col := range b.dims.Columns {
		b.Slot(icon, SlotAt(col, row, b.dims.Columns))
	}
	return b
}

// Column fills a whole column.
func (b *LayoutBuilder) Column(icon *Icon, column int) *LayoutBuilder {
	for row := range b.dims.Rows {
		b.Slot(icon, SlotAt(column, row, b.dims.Columns))
	}
	return b
}

// Border fills the outermost rows and columns.
func (b *LayoutBuilder) Border(icon *Icon) *LayoutBuilder {
	b.Row(icon, 0).Row(icon, b.dims.Rows-1)
	return b.Column(icon, 0).Column(icon, b.dims.Columns-1)
}

// Fill places icon in every slot that is still empty.
func (b *LayoutBuilder) Fill(icon *Icon) *LayoutBuilder {
	for s := range b.dims.Area() {
		if _, ok := b.elements[s]; !ok {
			b.elements[s] = icon
		}
	}
	return b
}

// Build returns the immutable layout.
func (b *LayoutBuilder) Build() *Layout {
	return &Layout{dims: b.dims, elements: maps.Clone(b.elements)}
}
