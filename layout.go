package rqr

// alignmentPatternPositions[version] holds the ascending list of
// alignment-pattern center coordinates (used on both axes) for that
// version, computed once at init time rather than stored as a table,
// matching the teacher's own derivation.
var alignmentPatternPositions [41][]int

func init() {
	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(Version(v))
	}
}

func computeAlignmentPatternPositions(version Version) []int {
	if version == 1 {
		return nil
	}

	numAlign := int(version)/7 + 2
	var step int
	if version == 32 { // Special snowflake.
		step = 26
	} else {
		step = (int(version)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(version)*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

// drawFunctionPatterns places every function pattern on a freshly
// allocated matrix, in the order the format demands: timing, finders,
// alignment, dark module, then the reserved format/version areas.
func drawFunctionPatterns(m *matrix, version Version) {
	drawTimingPatterns(m)
	drawFinderPattern(m, 3, 3)
	drawFinderPattern(m, m.size-4, 3)
	drawFinderPattern(m, 3, m.size-4)
	drawAlignmentPatterns(m, version)
	drawDarkModule(m, version)
	reserveFormatAndVersionAreas(m, version)
}

// drawFinderPattern draws a 7x7 finder plus its one-module light
// separator ring (a 9x9 area, clipped at the symbol edge) centered at
// (cx, cy); cx,cy here are
// the top-left corner plus 3, matching the teacher's center-at-(x,y)
// convention.
func drawFinderPattern(m *matrix, cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= m.size || y < 0 || y >= m.size {
				continue
			}
			dist := maxInt(absInt(dx), absInt(dy))
			m.setFunction(x, y, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (cx, cy).
func drawAlignmentPattern(m *matrix, cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setFunction(cx+dx, cy+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

func drawAlignmentPatterns(m *matrix, version Version) {
	positions := alignmentPatternPositions[version]
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Skip the three corners, which already hold finders.
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			drawAlignmentPattern(m, positions[i], positions[j])
		}
	}
}

func drawTimingPatterns(m *matrix) {
	for i := 0; i < m.size; i++ {
		dark := i%2 == 0
		m.setFunction(6, i, dark)
		m.setFunction(i, 6, dark)
	}
}

func drawDarkModule(m *matrix, version Version) {
	x, y := version.darkModulePos()
	m.setFunction(x, y, true)
}

// reserveFormatAndVersionAreas marks the cells that will later hold
// format information (and, for version >= 7, version information) as
// Reserved, so the layout's data walker skips over them even before
// the actual bits are known.
func reserveFormatAndVersionAreas(m *matrix, version Version) {
	size := m.size

	for x := 0; x <= 8; x++ {
		if x == 6 {
			continue
		}
		m.reserve(x, 8)
	}
	// (8, 8) is already reserved by the row loop above.
	for y := 0; y < 8; y++ {
		if y == 6 {
			continue
		}
		m.reserve(8, y)
	}
	for x := size - 8; x < size; x++ {
		m.reserve(x, 8)
	}
	for y := size - 7; y < size; y++ {
		m.reserve(8, y)
	}

	if version.hasVersionInfo() {
		for x := 0; x < 6; x++ {
			for y := size - 11; y < size-8; y++ {
				m.reserve(x, y)
			}
		}
		for y := 0; y < 6; y++ {
			for x := size - 11; x < size-8; x++ {
				m.reserve(x, y)
			}
		}
	}
}

// zigZagWalk visits every data-eligible coordinate in the order the QR
// standard requires: starting at the bottom-right corner, moving in
// two-module-wide vertical strips that alternate up and down, skipping
// the vertical timing column entirely. write is called once per
// coordinate that is still Unknown (not a function or reserved cell),
// in walk order, until the walk leaves the leftmost column.
func zigZagWalk(m *matrix, write func(x, y int)) {
	x, y := m.size-1, m.size-1
	horizontalNext := true
	upwards := true

	for x >= 0 {
		if !m.isFunction(x, y) && m.isUnknown(x, y) {
			write(x, y)
		}

		if horizontalNext {
			switch x {
			case 0:
				return
			case 6:
				x -= 2
			default:
				x--
			}
			horizontalNext = false
			continue
		}

		if (upwards && y == 0) || (!upwards && y == m.size-1) {
			upwards = !upwards
			switch x {
			case 0:
				return
			case 6:
				x -= 2
			default:
				x--
			}
			horizontalNext = true
			continue
		}

		if upwards {
			y--
		} else {
			y++
		}
		x++
		horizontalNext = true
	}
}

// drawCodewords writes the given codeword sequence onto the matrix's
// data cells via the zig-zag walk. The walk visits remainder_bits[version]
// (0 to 7, depending on version) trailing cells beyond the codeword
// stream; those still become Data cells, default light, so every
// non-function cell ends up Data and eligible for masking like the
// standard requires.
func drawCodewords(m *matrix, data []byte) {
	i := 0
	total := len(data) * 8
	zigZagWalk(m, func(x, y int) {
		if i >= total {
			m.setData(x, y, false)
			return
		}
		bit := data[i>>3] >> (7 - uint(i&7)) & 1
		m.setData(x, y, bit == 1)
		i++
	})
	if i != total {
		panic("zig-zag walk did not consume the full codeword stream")
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
