package rqr

// Qr is a completed, immutable QR code symbol.
type Qr struct {
	version Version
	ecl     ECLevel
	mode    Mode
	mask    Mask
	matrix  *matrix
}

// Size returns the symbol's width and height in modules.
func (q *Qr) Size() int {
	return q.matrix.Size()
}

// IsDark reports whether the module at (x, y) is dark. Panics if the
// coordinates are out of [0, Size()).
func (q *Qr) IsDark(x, y int) bool {
	return q.matrix.IsDark(x, y)
}

// Version returns the QR code version used, in [1, 40].
func (q *Qr) Version() Version {
	return q.version
}

// ECLevel returns the error correction level used.
func (q *Qr) ECLevel() ECLevel {
	return q.ecl
}

// Mode returns the encoding mode used for the (sole) data segment.
func (q *Qr) Mode() Mode {
	return q.mode
}

// Mask returns the mask pattern index, in [0, 7], used.
func (q *Qr) Mask() Mask {
	return q.mask
}

// encode runs the full pipeline — segment encoding, EC generation and
// interleaving, function pattern placement, data placement, mask
// selection, and format/version info — and returns the finished
// symbol. version, ecl, and mode (carried by seg) are already resolved
// by the caller (see Builder.Build); forcedMask is a mask in [0, 7], or
// -1 to have encode pick the lowest-penalty mask.
func encode(seg *segment, version Version, ecl ECLevel, forcedMask Mask) (*Qr, error) {
	dataCodewords, err := buildBitStream(seg, version, ecl)
	if err != nil {
		return nil, err
	}

	allCodewords := addECAndInterleave(dataCodewords, version, ecl)

	m := newMatrix(version.Size())
	drawFunctionPatterns(m, version)
	drawCodewords(m, allCodewords)

	var mask Mask
	if forcedMask == -1 {
		mask = chooseMask(m)
	} else {
		mask = forcedMask
	}

	applyMask(m, mask)
	drawFormatBits(m, ecl, int(mask))
	drawVersionBits(m, version)

	return &Qr{
		version: version,
		ecl:     ecl,
		mode:    seg.mode,
		mask:    mask,
		matrix:  m,
	}, nil
}
