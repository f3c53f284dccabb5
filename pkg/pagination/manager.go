package pagination

import (
	"fmt"
	"log"
	"slices"
)

// ManagerConfig configures a PageManager.
type ManagerConfig struct {
	Zone   Dimension
	Offset Offset
	// Width is the column count of the surface the zone lives on.
	Width    int
	Updaters []Updater
	Style    UpdaterStyle
	Ruleset  *Ruleset
	Icons    IconFactory
	Logger   *log.Logger
}

// PageManager slices content into zone-sized pages and tracks the current one.
type PageManager struct {
	zone     Dimension
	offset   Offset
	width    int
	ruleset  *Ruleset
	contents []*Icon
	draw     pageDraw

	pages   *CyclicList[*Page]
	current int
}

// NewPageManager creates a manager over contents and generates its first page set.
// The manager owns cfg.Ruleset unless a caller re-attaches it.
func NewPageManager(cfg ManagerConfig, contents []*Icon) (*PageManager, error) {
	if !cfg.Zone.valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidZone, cfg.Zone.Columns, cfg.Zone.Rows)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultColumns
	}
	if cfg.Ruleset == nil {
		cfg.Ruleset = NewRuleset()
	}
	m := &PageManager{
		zone:     cfg.Zone,
		offset:   cfg.Offset,
		width:    cfg.Width,
		ruleset:  cfg.Ruleset,
		contents: slices.Clone(contents),
		draw: pageDraw{
			updaters: slices.Clone(cfg.Updaters),
			style:    cfg.Style,
			factory:  cfg.Icons,
			logger:   cfg.Logger,
		},
		current: 1,
	}
	if err := m.ruleset.attach(m); err != nil {
		return nil, err
	}
	m.Update()
	return m, nil
}

func (m *PageManager) update() error {
	m.Update()
	return nil
}

// slotFor maps the i-th content icon of a page to its surface slot.
func (m *PageManager) slotFor(i int) int {
	col := m.offset.Column + i%m.zone.Columns
	row := m.offset.Row + i/m.zone.Columns
	return SlotAt(col, row, m.width)
}

// Generate builds a fresh page set from the current contents and ruleset.
// There is always at least one page, so navigation stays visible on an empty view.
func (m *PageManager) Generate() []*Page {
	area := m.zone.Area()
	filtered := m.ruleset.Apply(m.contents)
	count := max(1, (len(filtered)+area-1)/area)

	pages := make([]*Page, 0, count)
	for i := range count {
		start := i * area
		end := min(len(filtered), start+area)
		content := make(map[int]*Icon, end-start)
		for j, icon := range filtered[start:end] {
			content[m.slotFor(j)] = icon
		}
		pages = append(pages, newPage(content, i+1, count, m.draw))
	}
	return pages
}

// Update regenerates every page and swaps them in wholesale. The current page
// is clamped into the new range rather than reset.
func (m *PageManager) Update() {
	pages := CyclicListOf(m.Generate()...)
	current := min(max(m.current, 1), pages.Len())

	m.pages = pages
	m.current = current
	_ = m.pages.AdvanceTo(current - 1)
}

// Page moves to the 1-based target page.
func (m *PageManager) Page(target int) error {
	if err := m.pages.AdvanceTo(target - 1); err != nil {
		return fmt.Errorf("page %d of %d: %w", target, m.pages.Len(), err)
	}
	m.current = target
	return nil
}

// Current returns the page under the cursor.
func (m *PageManager) Current() *Page {
	p, _ := m.pages.Current()
	return p
}

// At returns the 1-based page without moving to it.
func (m *PageManager) At(page int) (*Page, error) {
	return m.pages.At(page - 1)
}

// CurrentPage returns the 1-based index of the current page.
func (m *PageManager) CurrentPage() int { return m.current }

// MaxPages returns the number of pages.
func (m *PageManager) MaxPages() int { return m.pages.Len() }

// Ruleset returns the content ruleset.
func (m *PageManager) Ruleset() *Ruleset { return m.ruleset }

// Contents returns a copy of the unfiltered contents.
func (m *PageManager) Contents() []*Icon { return slices.Clone(m.contents) }

// SetContents replaces the unfiltered contents and rebuilds.
func (m *PageManager) SetContents(icons []*Icon) {
	m.contents = slices.Clone(icons)
	m.Update()
}

// Slots returns every surface slot of the zone in content order.
func (m *PageManager) Slots() []int {
	slots := make([]int, m.zone.Area())
	for i := range slots {
		slots[i] = m.slotFor(i)
	}
	return slots
}

// Updaters returns the configured navigation updaters.
func (m *PageManager) Updaters() []Updater { return slices.Clone(m.draw.updaters) }

func (m *PageManager) setWidth(width int) {
	m.width = width
}

func (m *PageManager) setNavigate(fn func(target int)) {
	m.draw.navigate = fn
}

func (m *PageManager) setLogger(l *log.Logger) {
	m.draw.logger = l
}

func (m *PageManager) setIcons(f IconFactory) {
	m.draw.factory = f
}
