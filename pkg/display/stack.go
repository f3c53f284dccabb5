package display

import (
	"fmt"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// Stack is an item stack display. It keeps the raw protocol slot next to the
// decoded stack so surfaces can send it back unchanged.
type Stack struct {
	raw   ns.Slot
	item  *items.ItemStack
	label string
}

// FromSlot decodes a raw protocol slot. Undecodable slots become empty stacks.
func FromSlot(raw ns.Slot) Stack {
	item, err := items.FromSlot(raw)
	if err != nil {
		item = items.EmptyStack()
	}
	return Stack{raw: raw, item: item}
}

// Of builds a stack of count items named like "minecraft:diamond".
func Of(name string, count int) (Stack, error) {
	id := items.ItemID(name)
	if id < 0 {
		return Stack{}, fmt.Errorf("unknown item %q", name)
	}
	return FromSlot(ns.Slot{ItemID: ns.VarInt(id), Count: ns.VarInt(count)}), nil
}

// WithLabel returns a copy of the stack shown under a custom label.
func (s Stack) WithLabel(label string) Stack {
	s.label = label
	return s
}

// Label returns the custom label, or else the item name without its namespace
// with the count when above one.
func (s Stack) Label() string {
	if s.Empty() {
		return ""
	}
	if s.label != "" {
		return s.label
	}
	name := strings.TrimPrefix(items.ItemName(s.item.ID), "minecraft:")
	if s.item.Count > 1 {
		return fmt.Sprintf("%s x%d", name, s.item.Count)
	}
	return name
}

// Slot returns the raw protocol slot.
func (s Stack) Slot() ns.Slot { return s.raw }

// Item returns the decoded stack.
func (s Stack) Item() *items.ItemStack { return s.item }

// Empty reports whether the stack holds nothing.
func (s Stack) Empty() bool { return s.item == nil || s.item.IsEmpty() }

// ID returns the item registry id, or -1 when empty.
func (s Stack) ID() int32 {
	if s.Empty() {
		return -1
	}
	return s.item.ID
}

// Count returns the number of items in the stack.
func (s Stack) Count() int {
	if s.Empty() {
		return 0
	}
	return int(s.item.Count)
}

// Icon wraps the stack in an icon.
func (s Stack) Icon(listeners ...pagination.ClickListener) *pagination.Icon {
	return pagination.NewIcon(s, listeners...)
}

// Icons wraps every stack in an icon.
func Icons(stacks ...Stack) []*pagination.Icon {
	icons := make([]*pagination.Icon, len(stacks))
	for i, s := range stacks {
		icons[i] = s.Icon()
	}
	return icons
}
