package pagination

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
)

// gridSurface records the last icon written to every slot.
type gridSurface struct {
	mu     sync.Mutex
	slots  map[int]*Icon
	writes int
	closed bool
}

func newGridSurface() *gridSurface {
	return &gridSurface{slots: make(map[int]*Icon)}
}

func (s *gridSurface) Set(slot int, icon *Icon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if icon == nil {
		delete(s.slots, slot)
		return
	}
	s.slots[slot] = icon
}

func (s *gridSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *gridSurface) label(slot int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[slot].Label()
}

type gridProvider struct {
	surface *gridSurface
	dims    Dimension
}

func (p *gridProvider) Open(_ uuid.UUID, _ string, dims Dimension) (Surface, error) {
	p.dims = dims
	return p.surface, nil
}

// labelFactory renders navigation icons as "<TYPE>:<target>", or "<TYPE>:off" when disabled.
var labelFactory = IconFactoryFunc(func(req NavigationRequest) *Icon {
	if req.Disabled {
		return NewIcon(Text(fmt.Sprintf("%s:off", req.Updater.Type)))
	}
	return NewIcon(Text(fmt.Sprintf("%s:%d", req.Updater.Type, req.Target)))
})

func testPlatform(surface *gridSurface) *Platform {
	return &Platform{
		Key:      "test",
		Icons:    labelFactory,
		Surfaces: &gridProvider{surface: surface},
		Logger:   log.New(io.Discard, "", 0),
	}
}

func textIcons(n int) []*Icon {
	icons := make([]*Icon, n)
	for i := range icons {
		icons[i] = NewIcon(Text(fmt.Sprintf("item-%02d", i)))
	}
	return icons
}

var testViewer = uuid.MustParse("8667ba71-b85a-4004-af54-457a9734eed7")
