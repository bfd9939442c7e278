package rqr

// cellKind is the tag of a single matrix cell's placement state.
type cellKind uint8

const (
	cellUnknown cellKind = iota
	cellReserved
	cellFunction
	cellData
)

// cell is one module's complete state: its placement tag and its
// dark/light value. Keeping both in a single tagged value, rather than
// parallel "Modules"/"IsFunction"-style grids, makes it impossible for
// a cell's kind and its bit to desynchronize — there is only ever one
// place either can be written.
type cell struct {
	kind cellKind
	dark bool
}

// matrix is a size x size grid of cells under construction. Cells
// start Unknown; the layout engine fills them in dependency order
// (function patterns, then data, then mask, then format/version info)
// until only Function and Data cells remain.
type matrix struct {
	size  int
	cells [][]cell
}

func newMatrix(size int) *matrix {
	m := &matrix{
		size:  size,
		cells: make([][]cell, size),
	}
	for i := range m.cells {
		m.cells[i] = make([]cell, size)
	}
	return m
}

// Size returns the matrix's side length in modules.
func (m *matrix) Size() int {
	return m.size
}

// IsDark reports whether the module at (x, y) is dark. Panics if the
// coordinates are out of bounds.
func (m *matrix) IsDark(x, y int) bool {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		panic("matrix index out of range")
	}
	return m.cells[y][x].dark
}

// reserve marks a cell as earmarked for format/version information,
// to be filled in later. It must currently be Unknown.
func (m *matrix) reserve(x, y int) {
	if m.cells[y][x].kind != cellUnknown {
		panic("cannot reserve a non-unknown cell")
	}
	m.cells[y][x].kind = cellReserved
}

// setFunction writes a function-pattern module. It may overwrite an
// Unknown or Reserved cell, but never a Data cell.
func (m *matrix) setFunction(x, y int, dark bool) {
	if m.cells[y][x].kind == cellData {
		panic("cannot overwrite a data cell with a function module")
	}
	m.cells[y][x] = cell{kind: cellFunction, dark: dark}
}

// setData writes a data module. The target cell must currently be
// Unknown.
func (m *matrix) setData(x, y int, dark bool) {
	if m.cells[y][x].kind != cellUnknown {
		panic("cannot write a data bit to a non-unknown cell")
	}
	m.cells[y][x] = cell{kind: cellData, dark: dark}
}

// isFunction reports whether the cell at (x, y) holds a function
// module (as opposed to data).
func (m *matrix) isFunction(x, y int) bool {
	return m.cells[y][x].kind == cellFunction
}

// isUnknown reports whether the cell at (x, y) has not yet been
// written by anything (function, reserved, or data).
func (m *matrix) isUnknown(x, y int) bool {
	return m.cells[y][x].kind == cellUnknown
}

// flip toggles the dark/light state of a data cell. Used by mask
// application, which only ever touches Data cells.
func (m *matrix) flip(x, y int) {
	m.cells[y][x].dark = !m.cells[y][x].dark
}
