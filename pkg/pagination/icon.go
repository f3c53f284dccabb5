package pagination

import "github.com/google/uuid"

// Display is the platform value an icon renders as.
type Display interface {
	Label() string
}

// Text is a plain label display, used where no item representation is needed.
type Text string

func (t Text) Label() string { return string(t) }

// ClickType describes how the viewer interacted with a slot.
type ClickType int

const (
	ClickLeft ClickType = iota
	ClickRight
	ClickShiftLeft
	ClickShiftRight
	ClickMiddle
	ClickDrop
)

// ClickContext is handed to every listener of a clicked icon.
// Listeners may set Cancelled to reject the interaction on the surface.
type ClickContext struct {
	Viewer    uuid.UUID
	Slot      int
	Type      ClickType
	Cancelled bool
}

// ClickListener reacts to a click on an icon.
type ClickListener func(ctx *ClickContext)

// Icon is a display value plus the listeners that run when it is clicked.
// The engine never mutates the display, only where the icon is placed.
type Icon struct {
	display   Display
	listeners []ClickListener
}

// NewIcon creates an icon rendering as d.
func NewIcon(d Display, listeners ...ClickListener) *Icon {
	return &Icon{display: d, listeners: listeners}
}

// Display returns the icon's display value.
func (i *Icon) Display() Display { return i.display }

// Listen appends a click listener and returns the icon for chaining.
func (i *Icon) Listen(l ClickListener) *Icon {
	i.listeners = append(i.listeners, l)
	return i
}

// Listeners returns the number of registered listeners.
func (i *Icon) Listeners() int { return len(i.listeners) }

// Click runs every listener in registration order.
func (i *Icon) Click(ctx *ClickContext) {
	for _, l := range i.listeners {
		l(ctx)
	}
}

// Label returns the display label, or "" for a nil icon.
func (i *Icon) Label() string {
	if i == nil || i.display == nil {
		return ""
	}
	return i.display.Label()
}
