package packet

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
	"github.com/google/uuid"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

const ModuleName = "menu"

// PacketWriter sends packets to one connected client.
type PacketWriter interface {
	WritePacket(pkt jp.Packet) error
}

// Screens opens and closes container screens on the client. The host server
// owns the open-screen packet since it carries its own text component format.
type Screens interface {
	OpenScreen(viewer uuid.UUID, windowID int32, menu MenuType, title string) error
	CloseScreen(viewer uuid.UUID, windowID int32) error
}

// SlotSource is implemented by displays that carry a raw protocol slot.
type SlotSource interface {
	Slot() ns.Slot
}

// ClickHandler receives clicks on a pagination slot and reports whether the
// client's view of the container must be restored.
type ClickHandler func(viewer uuid.UUID, slot int, t pagination.ClickType) (cancelled bool)

// Provider opens packet backed surfaces for the player on one connection.
type Provider struct {
	conn    PacketWriter
	screens Screens
	Logger  *log.Logger

	// Fallback renders displays that carry no protocol slot. Nil leaves the slot empty.
	Fallback func(d pagination.Display) ns.Slot

	// Scheduler receives click and close handling, so handlers run on the
	// goroutine that owns the paginations. Nil runs them on the connection
	// goroutine; handlers must then hand work over themselves.
	Scheduler pagination.Scheduler

	mu       sync.Mutex
	windowID int32
	open     *Surface

	onClick []ClickHandler
	onClose []func(viewer uuid.UUID)
}

// NewProvider creates a provider writing to conn.
func NewProvider(conn PacketWriter, screens Screens) *Provider {
	return &Provider{
		conn:    conn,
		screens: screens,
		Logger:  log.New(os.Stdout, "", log.LstdFlags),
	}
}

func (p *Provider) Name() string { return ModuleName }

// Reset forgets the open surface, e.g. after the connection was re-established.
func (p *Provider) Reset() {
	p.mu.Lock()
	p.open = nil
	p.mu.Unlock()
}

// events

func (p *Provider) OnClick(cb ClickHandler) {
	p.onClick = append(p.onClick, cb)
}

func (p *Provider) OnClose(cb func(viewer uuid.UUID)) {
	p.onClose = append(p.onClose, cb)
}

// Open allocates a window, opens a generic menu of dims.Rows rows and returns its surface.
func (p *Provider) Open(viewer uuid.UUID, title string, dims pagination.Dimension) (pagination.Surface, error) {
	if dims.Columns != Columns {
		return nil, fmt.Errorf("menus are %d columns wide, got %d", Columns, dims.Columns)
	}
	menu, err := MenuForRows(dims.Rows)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.windowID = p.windowID%maxWindowID + 1
	windowID := p.windowID
	p.mu.Unlock()

	if err := p.screens.OpenScreen(viewer, windowID, menu, title); err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	s := &Surface{
		provider: p,
		viewer:   viewer,
		windowID: windowID,
		menu:     menu,
		slots:    make([]ns.Slot, dims.Area()),
	}
	p.mu.Lock()
	p.open = s
	p.mu.Unlock()
	return s, nil
}

// Current returns the open surface, or nil.
func (p *Provider) Current() *Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Provider) slotFor(icon *pagination.Icon) ns.Slot {
	if icon == nil || icon.Display() == nil {
		return ns.Slot{}
	}
	if src, ok := icon.Display().(SlotSource); ok {
		return src.Slot()
	}
	if p.Fallback != nil {
		return p.Fallback(icon.Display())
	}
	return ns.Slot{}
}

// Surface mirrors one open container window and writes slot changes to the client.
type Surface struct {
	provider *Provider
	viewer   uuid.UUID
	windowID int32
	menu     MenuType

	mu      sync.Mutex
	stateID int32
	slots   []ns.Slot
	closed  bool
}

// Set writes a single slot.
func (s *Surface) Set(slot int, icon *pagination.Icon) {
	if slot < 0 || slot >= len(s.slots) {
		return
	}
	raw := s.provider.slotFor(icon)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.slots[slot] = raw
	s.stateID++
	stateID := s.stateID
	s.mu.Unlock()

	err := s.provider.conn.WritePacket(&packets.S2CContainerSetSlot{
		WindowId: ns.VarInt(s.windowID),
		StateId:  ns.VarInt(stateID),
		Slot:     ns.Int16(slot),
		SlotData: raw,
	})
	if err != nil {
		s.provider.Logger.Println("menu: failed to write slot:", err)
	}
}

// Resync resends every slot and clears the cursor, undoing a client-side prediction.
func (s *Surface) Resync() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return pagination.ErrClosed
	}
	s.stateID++
	stateID := s.stateID
	slots := make([]ns.Slot, len(s.slots))
	copy(slots, s.slots)
	s.mu.Unlock()

	return s.provider.conn.WritePacket(&packets.S2CContainerSetContent{
		WindowId:    ns.VarInt(s.windowID),
		StateId:     ns.VarInt(stateID),
		Slots:       slots,
		CarriedItem: ns.Slot{},
	})
}

// Close closes the screen on the client.
func (s *Surface) Close() error {
	if !s.markClosed() {
		return nil
	}
	return s.provider.screens.CloseScreen(s.viewer, s.windowID)
}

// markClosed flips the surface to closed and reports whether it was open.
func (s *Surface) markClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true

	p := s.provider
	p.mu.Lock()
	if p.open == s {
		p.open = nil
	}
	p.mu.Unlock()
	return true
}

// WindowID returns the container id the surface writes to.
func (s *Surface) WindowID() int32 { return s.windowID }

// Menu returns the menu type of the window.
func (s *Surface) Menu() MenuType { return s.menu }

// SlotAt returns the last raw slot written to index.
func (s *Surface) SlotAt(index int) ns.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.slots) {
		return ns.Slot{}
	}
	return s.slots[index]
}

// StateID returns the current container state id.
func (s *Surface) StateID() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateID
}
