package packet

import "fmt"

// MenuType is a container menu type from the minecraft:menu registry.
type MenuType int32

const (
	MenuGeneric9x1 MenuType = 0
	MenuGeneric9x2 MenuType = 1
	MenuGeneric9x3 MenuType = 2 // single chest, barrel
	MenuGeneric9x4 MenuType = 3
	MenuGeneric9x5 MenuType = 4
	MenuGeneric9x6 MenuType = 5 // double chest
)

const (
	Columns = 9
	MaxRows = 6

	// window ids cycle through 1..100 like the vanilla server; 0 is the player inventory
	maxWindowID = 100
)

// MenuForRows returns the generic menu holding the given number of 9-wide rows.
func MenuForRows(rows int) (MenuType, error) {
	if rows < 1 || rows > MaxRows {
		return 0, fmt.Errorf("no generic menu with %d rows", rows)
	}
	return MenuGeneric9x1 + MenuType(rows-1), nil
}

// Rows returns the row count of a generic menu, or 0 for other menus.
func (m MenuType) Rows() int {
	if m < MenuGeneric9x1 || m > MenuGeneric9x6 {
		return 0
	}
	return int(m-MenuGeneric9x1) + 1
}
