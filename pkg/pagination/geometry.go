package pagination

// DefaultColumns is the width of every generic container menu.
const DefaultColumns = 9

// Dimension is a rectangular extent measured in slots.
type Dimension struct {
	Columns int
	Rows    int
}

// Area returns the number of slots covered by the dimension.
func (d Dimension) Area() int { return d.Columns * d.Rows }

func (d Dimension) valid() bool { return d.Columns > 0 && d.Rows > 0 }

// Offset is the top-left origin of a zone within a surface.
type Offset struct {
	Column int
	Row    int
}

// SlotAt converts grid coordinates to a linear slot index on a surface of the given width.
func SlotAt(column, row, width int) int {
	return row*width + column
}

// Coordinates converts a linear slot index to (column, row) on a surface of the given width.
func Coordinates(slot, width int) (column, row int) {
	return slot % width, slot / width
}
