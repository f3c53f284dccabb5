package pagination

import (
	"slices"

	"github.com/google/uuid"
)

// Pagination is a single paginated zone over a background layout.
type Pagination struct {
	*SectionedPagination
	section *Section
}

// PaginationBuilder assembles a Pagination.
type PaginationBuilder struct {
	base     *SectionedBuilder
	section  *SectionBuilder
	contents []*Icon
}

// NewPagination starts a builder bound to platform. Zone is required.
func NewPagination(platform *Platform) *PaginationBuilder {
	return &PaginationBuilder{
		base:    NewSectionedPagination(platform),
		section: NewSection(),
	}
}

func (b *PaginationBuilder) Viewer(id uuid.UUID) *PaginationBuilder {
	b.base.Viewer(id)
	return b
}

func (b *PaginationBuilder) Title(title string) *PaginationBuilder {
	b.base.Title(title)
	return b
}

func (b *PaginationBuilder) Readonly(readonly bool) *PaginationBuilder {
	b.base.Readonly(readonly)
	return b
}

func (b *PaginationBuilder) Layout(l *Layout) *PaginationBuilder {
	b.base.Layout(l)
	return b
}

func (b *PaginationBuilder) Zone(columns, rows int) *PaginationBuilder {
	b.section.Zone(columns, rows)
	return b
}

func (b *PaginationBuilder) Offset(column, row int) *PaginationBuilder {
	b.section.Offset(column, row)
	return b
}

func (b *PaginationBuilder) Updater(t UpdaterType, slot int) *PaginationBuilder {
	b.section.Updater(t, slot)
	return b
}

func (b *PaginationBuilder) Style(s UpdaterStyle) *PaginationBuilder {
	b.section.Style(s)
	return b
}

func (b *PaginationBuilder) Ruleset(r *Ruleset) *PaginationBuilder {
	b.section.Ruleset(r)
	return b
}

func (b *PaginationBuilder) Contents(icons ...*Icon) *PaginationBuilder {
	b.contents = slices.Clone(icons)
	return b
}

// Build validates every required field and attaches the single section.
func (b *PaginationBuilder) Build() (*Pagination, error) {
	section, err := b.section.Contents(b.contents...).Build()
	if err != nil {
		return nil, err
	}
	sp, err := b.base.Section(section).Build()
	if err != nil {
		return nil, err
	}
	return &Pagination{SectionedPagination: sp, section: section}, nil
}

// Page moves to the 1-based target page.
func (p *Pagination) Page(target int) error { return p.section.Page(target) }

// SetContents replaces the content and rebuilds while keeping the current page where possible.
func (p *Pagination) SetContents(icons []*Icon) error { return p.section.SetContents(icons) }

// Ruleset returns the content ruleset; changing it rebuilds the pages.
func (p *Pagination) Ruleset() *Ruleset { return p.section.Ruleset() }

// CurrentPage returns the 1-based current page.
func (p *Pagination) CurrentPage() int { return p.section.CurrentPage() }

// MaxPages returns the page count.
func (p *Pagination) MaxPages() int { return p.section.MaxPages() }

// Section returns the underlying section.
func (p *Pagination) Section() *Section { return p.section }
