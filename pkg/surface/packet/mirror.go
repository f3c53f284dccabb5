package packet

import (
	"log"
	"os"
	"sync"

	"github.com/go-mclib/data/pkg/data/packet_ids"
	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"

	"github.com/NickImpact/Impactor-sub004/pkg/display"
)

const MirrorModuleName = "mirror"

// Mirror rebuilds the contents of open menu windows from the packets a client
// receives. It is the viewer side of a Surface, used by bots and tests.
type Mirror struct {
	Logger *log.Logger

	mu       sync.RWMutex
	windowID int32
	stateID  int32
	slots    []display.Stack

	onSlotUpdate []func(index int, stack display.Stack)
}

func NewMirror() *Mirror {
	return &Mirror{Logger: log.New(os.Stdout, "", log.LstdFlags)}
}

func (m *Mirror) Name() string { return MirrorModuleName }

func (m *Mirror) Reset() {
	m.mu.Lock()
	m.windowID = 0
	m.stateID = 0
	m.slots = nil
	m.mu.Unlock()
}

// events

func (m *Mirror) OnSlotUpdate(cb func(index int, stack display.Stack)) {
	m.onSlotUpdate = append(m.onSlotUpdate, cb)
}

func (m *Mirror) HandlePacket(pkt *jp.WirePacket) {
	switch pkt.PacketID {
	case packet_ids.S2CContainerSetContentID:
		var d packets.S2CContainerSetContent
		if err := pkt.ReadInto(&d); err != nil {
			m.Logger.Println("mirror: failed to parse container set content:", err)
			return
		}
		m.Apply(&d)
	case packet_ids.S2CContainerSetSlotID:
		var d packets.S2CContainerSetSlot
		if err := pkt.ReadInto(&d); err != nil {
			m.Logger.Println("mirror: failed to parse container set slot:", err)
			return
		}
		m.Apply(&d)
	}
}

// Apply updates the mirror from a decoded container packet. Packets for the
// player inventory (window 0) and cursor-only updates are ignored.
func (m *Mirror) Apply(pkt jp.Packet) {
	switch d := pkt.(type) {
	case *packets.S2CContainerSetContent:
		windowID := int32(d.WindowId)
		if windowID <= 0 {
			return
		}
		stacks := make([]display.Stack, len(d.Slots))
		for i, raw := range d.Slots {
			stacks[i] = display.FromSlot(raw)
		}

		m.mu.Lock()
		m.windowID = windowID
		m.stateID = int32(d.StateId)
		m.slots = stacks
		m.mu.Unlock()

		for i, s := range stacks {
			for _, cb := range m.onSlotUpdate {
				cb(i, s)
			}
		}

	case *packets.S2CContainerSetSlot:
		windowID := int32(d.WindowId)
		idx := int(d.Slot)
		if windowID <= 0 || idx < 0 {
			return
		}
		stack := display.FromSlot(d.SlotData)

		m.mu.Lock()
		if windowID != m.windowID {
			// a new window; its size is only known from the slots seen so far
			m.windowID = windowID
			m.slots = nil
		}
		if idx >= len(m.slots) {
			m.slots = append(m.slots, make([]display.Stack, idx+1-len(m.slots))...)
		}
		m.stateID = int32(d.StateId)
		m.slots[idx] = stack
		m.mu.Unlock()

		for _, cb := range m.onSlotUpdate {
			cb(idx, stack)
		}
	}
}

// WindowID returns the window last updated.
func (m *Mirror) WindowID() int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.windowID
}

// StateID returns the last state id received.
func (m *Mirror) StateID() int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateID
}

// Slot returns the stack at index; out of range slots are empty.
func (m *Mirror) Slot(index int) display.Stack {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.slots) {
		return display.Stack{}
	}
	return m.slots[index]
}

// Len returns the number of slots seen in the current window.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slots)
}
