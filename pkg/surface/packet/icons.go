package packet

import (
	"github.com/NickImpact/Impactor-sub004/pkg/display"
	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// NavigationIcons renders updaters as item stacks whose count is the target page.
type NavigationIcons struct {
	Backward string
	Forward  string
	Current  string
	Disabled string
}

// DefaultNavigationIcons uses arrows for movement and paper for the current page.
var DefaultNavigationIcons = NavigationIcons{
	Backward: "minecraft:arrow",
	Forward:  "minecraft:spectral_arrow",
	Current:  "minecraft:paper",
	Disabled: "minecraft:gray_stained_glass_pane",
}

func (n NavigationIcons) NavigationIcon(req pagination.NavigationRequest) *pagination.Icon {
	name := n.Current
	switch req.Updater.Type {
	case pagination.First, pagination.Previous:
		name = n.Backward
	case pagination.Next, pagination.Last:
		name = n.Forward
	}
	if req.Disabled {
		name = n.Disabled
	}

	// stack counts top out at 99 on the client
	count := min(max(req.Target, 1), 99)
	stack, err := display.Of(name, count)
	if err != nil {
		return nil
	}
	return stack.Icon()
}
