package tui

import (
	"fmt"

	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// Nav is the display of a navigation icon in the preview.
type Nav struct {
	Type     pagination.UpdaterType
	Target   int
	Max      int
	Disabled bool
}

func (n Nav) Label() string {
	switch n.Type {
	case pagination.First:
		return fmt.Sprintf("« %d", n.Target)
	case pagination.Previous:
		return fmt.Sprintf("‹ %d", n.Target)
	case pagination.Next:
		return fmt.Sprintf("%d ›", n.Target)
	case pagination.Last:
		return fmt.Sprintf("%d »", n.Target)
	default:
		return fmt.Sprintf("[%d/%d]", n.Target, n.Max)
	}
}

// NavigationIcons renders updaters as Nav displays.
var NavigationIcons = pagination.IconFactoryFunc(func(req pagination.NavigationRequest) *pagination.Icon {
	return pagination.NewIcon(Nav{
		Type:     req.Updater.Type,
		Target:   req.Target,
		Max:      req.MaxPages,
		Disabled: req.Disabled,
	})
})
