package rqr

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Builder is a fluent configuration surface for producing a Qr from a
// string. Use NewBuilder for the defaults: the zero value picks version
// and mode automatically at ECL Low, but forces mask 0 and leaves ECL
// boosting off.
type Builder struct {
	ecl      ECLevel
	version  Version // 0 means "choose automatically".
	mask     Mask    // -1 means "choose automatically".
	mode     Mode
	modeSet  bool
	boostECL bool
	logger   zerolog.Logger
}

// NewBuilder returns a Builder with the standard defaults: ECL Low,
// automatic version selection, automatic mask selection, automatic
// mode detection, ECL boosting enabled, and a no-op logger.
func NewBuilder() *Builder {
	return &Builder{
		ecl:      Low,
		mask:     -1,
		boostECL: true,
		logger:   zerolog.Nop(),
	}
}

// ECL overrides the error correction level to use. Default is Low.
func (b *Builder) ECL(level ECLevel) *Builder {
	b.ecl = level
	return b
}

// BoostECL controls whether the error correction level is raised
// automatically when the chosen version has spare capacity. Default
// true.
func (b *Builder) BoostECL(boost bool) *Builder {
	b.boostECL = boost
	return b
}

// WithVersion forces a specific version instead of computing the
// minimal one.
func (b *Builder) WithVersion(v Version) *Builder {
	b.version = v
	return b
}

// WithMask forces a specific mask instead of running the selector.
func (b *Builder) WithMask(mask Mask) *Builder {
	b.mask = mask
	return b
}

// WithMode forces a specific mode instead of running the analyzer.
func (b *Builder) WithMode(mode Mode) *Builder {
	b.mode = mode
	b.modeSet = true
	return b
}

// Logger attaches a structured logger that receives one debug event
// per pipeline stage (mode/version/ECL/mask decisions). Purely an
// observability hook; never required for correct encoding.
func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build encodes text into a complete QR code symbol, resolving
// whichever of mode/version/mask were not explicitly set.
func (b *Builder) Build(text string) (*Qr, error) {
	mode := b.mode
	if !b.modeSet {
		mode = analyzeMode(text)
	} else if !modeCanRepresent(mode, text) {
		return nil, fmt.Errorf("%w: %q cannot be represented in %s mode", ErrInvalidMode, text, mode)
	}
	b.logger.Debug().Str("mode", mode.String()).Msg("mode resolved")

	length := sourceLength(text, mode)

	ecl := b.ecl
	version := b.version
	if version == 0 {
		var err error
		version, err = minimalVersion(length, mode, ecl)
		if err != nil {
			return nil, err
		}
	} else if version < MinVersion || version > MaxVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	} else if length > version.Capacity(mode, ecl) {
		return nil, fmt.Errorf("%w: version %d cannot hold %d characters at ECL %s", ErrCapacityExceeded, version, length, ecl)
	}
	b.logger.Debug().Int("version", int(version)).Msg("version resolved")

	if b.boostECL {
		// Raise to the strongest level that still fits the chosen
		// version; checking in ascending order and never stopping
		// early means this can only end at or above ecl, never below
		// it, even if ecl was already Medium or higher.
		for candidate := Medium; candidate <= High; candidate++ {
			if length <= version.Capacity(mode, candidate) {
				ecl = candidate
			}
		}
		if ecl != b.ecl {
			b.logger.Debug().Str("ecl", ecl.String()).Msg("error correction level boosted")
		}
	}

	if b.mask != -1 && (b.mask < 0 || b.mask > 7) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMask, b.mask)
	}

	seg, err := makeSegment(text, mode)
	if err != nil {
		return nil, err
	}

	q, err := encode(seg, version, ecl, b.mask)
	if err != nil {
		return nil, err
	}
	b.logger.Debug().Int("mask", int(q.mask)).Msg("mask resolved")

	return q, nil
}

// modeCanRepresent reports whether mode can encode text without loss.
func modeCanRepresent(mode Mode, text string) bool {
	switch mode {
	case Numeric:
		return numericRegexp.MatchString(text)
	case Alphanumeric:
		return alphanumericRegexp.MatchString(text)
	case Byte:
		return true
	default:
		return false
	}
}

// sourceLength returns the input length in the unit the mode's
// char-count field counts in: digits/characters for Numeric and
// Alphanumeric, bytes for Byte.
func sourceLength(text string, mode Mode) int {
	if mode == Byte {
		return len([]byte(text))
	}
	return len(text)
}

// EncodeText is a convenience wrapper around Builder for the common
// case: automatic mode/version/mask with the given error correction
// level.
func EncodeText(text string, ecl ECLevel) (*Qr, error) {
	return NewBuilder().ECL(ecl).Build(text)
}
