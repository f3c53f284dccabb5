package packet

import (
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"
	"github.com/google/uuid"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

type recordingConn struct {
	mu      sync.Mutex
	packets []jp.Packet
	err     error
}

func (c *recordingConn) WritePacket(pkt jp.Packet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.packets = append(c.packets, pkt)
	return c.err
}

func (c *recordingConn) setSlots() []*packets.S2CContainerSetSlot {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*packets.S2CContainerSetSlot
	for _, p := range c.packets {
		if s, ok := p.(*packets.S2CContainerSetSlot); ok {
			out = append(out, s)
		}
	}
	return out
}

func (c *recordingConn) contents() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, p := range c.packets {
		if _, ok := p.(*packets.S2CContainerSetContent); ok {
			n++
		}
	}
	return n
}

type screenCall struct {
	windowID int32
	menu     MenuType
	title    string
}

type fakeScreens struct {
	opened []screenCall
	closed []int32
	err    error
}

func (f *fakeScreens) OpenScreen(_ uuid.UUID, windowID int32, menu MenuType, title string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, screenCall{windowID, menu, title})
	return nil
}

func (f *fakeScreens) CloseScreen(_ uuid.UUID, windowID int32) error {
	f.closed = append(f.closed, windowID)
	return nil
}

var viewer = uuid.MustParse("0f3a3bc1-7d6e-4c55-9b1d-3f0e6a0a7c11")

func newTestProvider() (*Provider, *recordingConn, *fakeScreens) {
	conn := &recordingConn{}
	screens := &fakeScreens{}
	p := NewProvider(conn, screens)
	p.Logger = log.New(io.Discard, "", 0)
	return p, conn, screens
}

func TestMenuForRows(t *testing.T) {
	tests := []struct {
		rows    int
		want    MenuType
		wantErr bool
	}{
		{1, MenuGeneric9x1, false},
		{3, MenuGeneric9x3, false},
		{6, MenuGeneric9x6, false},
		{0, 0, true},
		{7, 0, true},
	}
	for _, tt := range tests {
		got, err := MenuForRows(tt.rows)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("MenuForRows(%d) = (%d, %v), want %d", tt.rows, got, err, tt.want)
		}
		if !tt.wantErr && got.Rows() != tt.rows {
			t.Errorf("%d.Rows() = %d, want %d", got, got.Rows(), tt.rows)
		}
	}
}

func TestProviderOpen(t *testing.T) {
	p, _, screens := newTestProvider()

	s, err := p.Open(viewer, "Shop", pagination.Dimension{Columns: 9, Rows: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(screens.opened) != 1 || screens.opened[0] != (screenCall{1, MenuGeneric9x3, "Shop"}) {
		t.Errorf("opened = %+v", screens.opened)
	}
	if p.Current() != s {
		t.Error("Current() is not the opened surface")
	}

	if _, err := p.Open(viewer, "", pagination.Dimension{Columns: 5, Rows: 1}); err == nil {
		t.Error("Open() with 5 columns succeeded")
	}
	if _, err := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 7}); err == nil {
		t.Error("Open() with 7 rows succeeded")
	}

	screens.err = errors.New("player offline")
	if _, err := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1}); !errors.Is(err, screens.err) {
		t.Errorf("Open() error = %v, want %v", err, screens.err)
	}
}

func TestProviderWindowIDsCycle(t *testing.T) {
	p, _, _ := newTestProvider()
	p.windowID = maxWindowID - 1

	a, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	b, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	if a.(*Surface).WindowID() != maxWindowID || b.(*Surface).WindowID() != 1 {
		t.Errorf("window ids = %d, %d; want %d, 1", a.(*Surface).WindowID(), b.(*Surface).WindowID(), maxWindowID)
	}
}

func TestSurfaceSet(t *testing.T) {
	p, conn, _ := newTestProvider()
	opened, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 2})
	s := opened.(*Surface)

	s.Set(4, pagination.NewIcon(pagination.Text("no item")))
	s.Set(99, nil)

	sent := conn.setSlots()
	if len(sent) != 1 {
		t.Fatalf("sent %d set-slot packets, want 1", len(sent))
	}
	if int(sent[0].Slot) != 4 || int32(sent[0].WindowId) != s.WindowID() || int32(sent[0].StateId) != 1 {
		t.Errorf("packet = slot %d window %d state %d", sent[0].Slot, sent[0].WindowId, sent[0].StateId)
	}
	if !sent[0].SlotData.IsEmpty() {
		t.Error("text display without fallback was not sent as an empty slot")
	}
	if s.StateID() != 1 {
		t.Errorf("StateID() = %d, want 1", s.StateID())
	}
}

func TestSurfaceClose(t *testing.T) {
	p, conn, screens := newTestProvider()
	opened, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	s := opened.(*Surface)

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if len(screens.closed) != 1 {
		t.Errorf("CloseScreen called %d times, want 1", len(screens.closed))
	}
	if p.Current() != nil {
		t.Error("Current() after Close() is not nil")
	}

	s.Set(0, nil)
	if len(conn.setSlots()) != 0 {
		t.Error("closed surface wrote a slot")
	}
	if err := s.Resync(); !errors.Is(err, pagination.ErrClosed) {
		t.Errorf("Resync() error = %v, want ErrClosed", err)
	}
}

func TestClickType(t *testing.T) {
	tests := []struct {
		mode, button int
		want         pagination.ClickType
		ok           bool
	}{
		{modePickup, 0, pagination.ClickLeft, true},
		{modePickup, 1, pagination.ClickRight, true},
		{modeQuickMove, 0, pagination.ClickShiftLeft, true},
		{modeQuickMove, 1, pagination.ClickShiftRight, true},
		{modeClone, 2, pagination.ClickMiddle, true},
		{modeThrow, 0, pagination.ClickDrop, true},
		{2, 0, 0, false},
		{6, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := clickType(tt.mode, tt.button)
		if got != tt.want || ok != tt.ok {
			t.Errorf("clickType(%d, %d) = (%d, %v), want (%d, %v)", tt.mode, tt.button, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHandleClick(t *testing.T) {
	p, conn, _ := newTestProvider()
	opened, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	s := opened.(*Surface)

	var got []pagination.ClickType
	cancel := false
	p.OnClick(func(v uuid.UUID, slot int, ct pagination.ClickType) bool {
		got = append(got, ct)
		return cancel
	})

	p.handleClick(s.WindowID(), 3, 1, modePickup)
	if len(got) != 1 || got[0] != pagination.ClickRight || conn.contents() != 0 {
		t.Errorf("allowed click: got %v, %d resyncs", got, conn.contents())
	}

	cancel = true
	p.handleClick(s.WindowID(), 3, 0, modePickup)
	if conn.contents() != 1 {
		t.Errorf("cancelled click sent %d resyncs, want 1", conn.contents())
	}

	// other windows and outside slots are ignored or rejected
	p.handleClick(s.WindowID()+1, 3, 0, modePickup)
	p.handleClick(s.WindowID(), 40, 0, modePickup)
	if len(got) != 2 {
		t.Errorf("handler ran %d times, want 2", len(got))
	}
	if conn.contents() != 2 {
		t.Errorf("outside slot sent %d resyncs, want 2", conn.contents())
	}
}

func TestClickHandlersRunOnScheduler(t *testing.T) {
	p, conn, _ := newTestProvider()
	sched := pagination.NewLoopScheduler(4)
	p.Scheduler = sched
	opened, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	s := opened.(*Surface)

	clicks, closes := 0, 0
	p.OnClick(func(uuid.UUID, int, pagination.ClickType) bool {
		clicks++
		return true
	})
	p.OnClose(func(uuid.UUID) { closes++ })

	p.handleClick(s.WindowID(), 3, 0, modePickup)
	if clicks != 0 || conn.contents() != 0 {
		t.Fatalf("click ran before the scheduler: %d clicks, %d resyncs", clicks, conn.contents())
	}
	if n := sched.Drain(); n != 1 || clicks != 1 || conn.contents() != 1 {
		t.Errorf("after Drain: %d tasks, %d clicks, %d resyncs; want 1, 1, 1", n, clicks, conn.contents())
	}

	p.handleClose(s.WindowID())
	if closes != 0 {
		t.Fatal("close handler ran before the scheduler")
	}
	sched.Drain()
	if closes != 1 {
		t.Errorf("close handler ran %d times, want 1", closes)
	}
}

func TestHandleClose(t *testing.T) {
	p, _, screens := newTestProvider()
	p.Scheduler = pagination.ImmediateScheduler{}
	opened, _ := p.Open(viewer, "", pagination.Dimension{Columns: 9, Rows: 1})
	s := opened.(*Surface)

	var closed []uuid.UUID
	p.OnClose(func(v uuid.UUID) { closed = append(closed, v) })

	p.handleClose(s.WindowID() + 1)
	p.handleClose(s.WindowID())
	p.handleClose(s.WindowID())

	if len(closed) != 1 || closed[0] != viewer {
		t.Errorf("OnClose ran for %v, want once for viewer", closed)
	}
	// the client closed the screen itself, so no close is sent back
	if len(screens.closed) != 0 {
		t.Errorf("CloseScreen called %d times, want 0", len(screens.closed))
	}
}

func TestPaginationOverPackets(t *testing.T) {
	p, conn, _ := newTestProvider()
	platform := &pagination.Platform{
		Key:      "protocol",
		Icons:    DefaultNavigationIcons,
		Surfaces: p,
		Logger:   log.New(io.Discard, "", 0),
	}

	contents := make([]*pagination.Icon, 12)
	for i := range contents {
		contents[i] = pagination.NewIcon(pagination.Text("entry"))
	}
	pg, err := pagination.NewPagination(platform).
		Viewer(viewer).
		Layout(pagination.NewLayout(pagination.Dimension{Columns: 9, Rows: 2}).Build()).
		Zone(9, 1).
		Updater(pagination.Next, 17).
		Contents(contents...).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	p.OnClick(func(_ uuid.UUID, slot int, ct pagination.ClickType) bool {
		cancelled, _ := pg.Click(slot, ct)
		return cancelled
	})
	if err := pg.Open(); err != nil {
		t.Fatal(err)
	}
	if n := len(conn.setSlots()); n != 18 {
		t.Errorf("full redraw sent %d slots, want 18", n)
	}

	s := p.Current()
	p.handleClick(s.WindowID(), 17, 0, modePickup)
	if pg.CurrentPage() != 2 {
		t.Errorf("CurrentPage() after clicking NEXT = %d, want 2", pg.CurrentPage())
	}
	if conn.contents() != 1 {
		t.Errorf("navigation click sent %d resyncs, want 1", conn.contents())
	}
}
