package packet

import (
	"github.com/go-mclib/data/pkg/data/packet_ids"
	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// click modes of C2SContainerClick
const (
	modePickup    = 0
	modeQuickMove = 1
	modeClone     = 3
	modeThrow     = 4
)

// HandlePacket routes container clicks and closes coming from the client.
func (p *Provider) HandlePacket(pkt *jp.WirePacket) {
	switch pkt.PacketID {
	case packet_ids.C2SContainerClickID:
		var d packets.C2SContainerClick
		if err := pkt.ReadInto(&d); err != nil {
			p.Logger.Println("menu: failed to parse container click:", err)
			return
		}
		p.handleClick(int32(d.WindowId), int(d.Slot), int(d.Button), int(d.Mode))
	case packet_ids.C2SContainerCloseID:
		var d packets.C2SContainerClose
		if err := pkt.ReadInto(&d); err != nil {
			p.Logger.Println("menu: failed to parse container close:", err)
			return
		}
		p.handleClose(int32(d.WindowId))
	}
}

func (p *Provider) handleClick(windowID int32, slot, button, mode int) {
	s := p.Current()
	if s == nil || s.windowID != windowID {
		return
	}
	t, ok := clickType(mode, button)
	valid := ok && slot >= 0 && slot < len(s.slots)

	p.dispatch(func() {
		cancelled := true
		if valid {
			cancelled = false
			for _, cb := range p.onClick {
				if cb(s.viewer, slot, t) {
					cancelled = true
				}
			}
		}

		// the client already applied its prediction; put everything back
		if cancelled {
			if err := s.Resync(); err != nil {
				p.Logger.Println("menu: failed to resync container:", err)
			}
		}
	})
}

func (p *Provider) handleClose(windowID int32) {
	s := p.Current()
	if s == nil || s.windowID != windowID {
		return
	}
	if !s.markClosed() {
		return
	}
	p.dispatch(func() {
		for _, cb := range p.onClose {
			cb(s.viewer)
		}
	})
}

func (p *Provider) dispatch(fn func()) {
	if p.Scheduler == nil {
		fn()
		return
	}
	p.Scheduler.Execute(fn)
}

// clickType maps a protocol click mode and button to a pagination click.
func clickType(mode, button int) (pagination.ClickType, bool) {
	switch mode {
	case modePickup:
		if button == 1 {
			return pagination.ClickRight, true
		}
		return pagination.ClickLeft, true
	case modeQuickMove:
		if button == 1 {
			return pagination.ClickShiftRight, true
		}
		return pagination.ClickShiftLeft, true
	case modeClone:
		return pagination.ClickMiddle, true
	case modeThrow:
		return pagination.ClickDrop, true
	default:
		return 0, false
	}
}
