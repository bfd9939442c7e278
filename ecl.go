package rqr

// ECLevel is the error correction level of a QR code. Higher levels
// recover more of the symbol at the cost of capacity.
type ECLevel int8

// Error correction levels, ordered by increasing recovery strength.
// The enum index intentionally does not match the wire encoding used
// in the format information bits; see formatBits.
const (
	Low      ECLevel = iota // Recovers ~7% of data.
	Medium                  // Recovers ~15% of data.
	Quartile                // Recovers ~25% of data.
	High                    // Recovers ~30% of data.
)

func (e ECLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// formatBits returns the 2-bit wire encoding used in the format
// information string. Not the same as the enum's iota ordering.
func (e ECLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown error correction level")
	}
}
