package pagination

import (
	"log"
	"maps"
	"slices"
)

// Page is one immutable slice of content plus its rendered navigation icons.
type Page struct {
	index    int
	maxPages int
	content  map[int]*Icon
	drawn    map[int]*Icon
}

// pageDraw carries everything needed to render the navigation icons of a page.
type pageDraw struct {
	updaters []Updater
	style    UpdaterStyle
	factory  IconFactory
	navigate func(target int)
	logger   *log.Logger
}

func newPage(content map[int]*Icon, index, maxPages int, d pageDraw) *Page {
	p := &Page{
		index:    index,
		maxPages: maxPages,
		content:  content,
	}
	p.drawn = p.draw(d)
	return p
}

func (p *Page) draw(d pageDraw) map[int]*Icon {
	drawn := make(map[int]*Icon, len(p.content)+len(d.updaters))
	placed := make(map[int]UpdaterType, len(d.updaters))

	for _, u := range d.updaters {
		boundary := atBoundary(u, p.index, p.maxPages)
		if boundary && d.style == HideAtBoundary {
			continue
		}
		if d.factory == nil {
			continue
		}

		target := u.Translate(p.index, p.maxPages)
		disabled := boundary && d.style == DisableAtBoundary
		icon := d.factory.NavigationIcon(NavigationRequest{
			Updater:  u,
			Page:     p.index,
			Target:   target,
			MaxPages: p.maxPages,
			Disabled: disabled,
		})
		if icon == nil {
			continue
		}
		if !disabled && d.navigate != nil {
			navigate := d.navigate
			icon = withListener(icon, func(ctx *ClickContext) {
				ctx.Cancelled = true
				navigate(target)
			})
		}

		if prev, ok := placed[u.Slot]; ok && d.logger != nil {
			d.logger.Printf("pagination: updater %s overwrites %s at slot %d", u.Type, prev, u.Slot)
		}
		placed[u.Slot] = u.Type
		drawn[u.Slot] = icon
	}

	// content always wins over navigation icons sharing a slot
	maps.Copy(drawn, p.content)
	return drawn
}

// withListener returns a copy of icon with l appended, leaving the original untouched.
func withListener(icon *Icon, l ClickListener) *Icon {
	listeners := append(slices.Clone(icon.listeners), l)
	return &Icon{display: icon.display, listeners: listeners}
}

// Index returns the 1-based page number.
func (p *Page) Index() int { return p.index }

// MaxPages returns the page count this page was drawn against.
func (p *Page) MaxPages() int { return p.maxPages }

// Content returns the page's own icons keyed by surface slot.
func (p *Page) Content() map[int]*Icon { return maps.Clone(p.content) }

// Drawn returns content merged over the rendered navigation icons.
func (p *Page) Drawn() map[int]*Icon { return maps.Clone(p.drawn) }

// Icon returns the drawn icon at slot.
func (p *Page) Icon(slot int) (*Icon, bool) {
	icon, ok := p.drawn[slot]
	return icon, ok
}
