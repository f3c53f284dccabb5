package tui

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

var ErrGridOpen = errors.New("grid: a surface is already open")

// Grid is an in-memory surface rendered by the terminal preview. It acts as its
// own provider and holds at most one open surface.
type Grid struct {
	mu     sync.Mutex
	viewer uuid.UUID
	title  string
	dims   pagination.Dimension
	cells  []*pagination.Icon
	open   bool
	writes int
}

func NewGrid() *Grid {
	return &Grid{}
}

// Open resets the grid to dims and marks it open.
func (g *Grid) Open(viewer uuid.UUID, title string, dims pagination.Dimension) (pagination.Surface, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.open {
		return nil, ErrGridOpen
	}
	g.viewer = viewer
	g.title = title
	g.dims = dims
	g.cells = make([]*pagination.Icon, dims.Area())
	g.open = true
	return g, nil
}

func (g *Grid) Set(slot int, icon *pagination.Icon) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.open || slot < 0 || slot >= len(g.cells) {
		return
	}
	g.cells[slot] = icon
	g.writes++
}

func (g *Grid) Close() error {
	g.mu.Lock()
	g.open = false
	g.mu.Unlock()
	return nil
}

// Cell returns the icon last written to slot.
func (g *Grid) Cell(slot int) *pagination.Icon {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slot < 0 || slot >= len(g.cells) {
		return nil
	}
	return g.cells[slot]
}

func (g *Grid) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

func (g *Grid) Title() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.title
}

func (g *Grid) Dimension() pagination.Dimension {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dims
}

// Writes counts slot writes since the grid was created.
func (g *Grid) Writes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes
}
