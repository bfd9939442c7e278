package rqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBitStreamHelloWorldV1Q(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD", Alphanumeric)
	require.NoError(t, err)

	data, err := buildBitStream(seg, 1, Quartile)
	require.NoError(t, err)

	want := []byte{0x20, 0x5B, 0x0B, 0x78, 0xD1, 0x72, 0xDC, 0x4D, 0x43, 0x40, 0xEC, 0x11, 0xEC}
	assert.Equal(t, want, data)
}

func TestECCodewordsHelloWorldV1M(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD", Alphanumeric)
	require.NoError(t, err)

	data, err := buildBitStream(seg, 1, Medium)
	require.NoError(t, err)

	ecCount := eccCodewordsPerBlock[Medium][1]
	ec := rsGenerateECCodewords(data, ecCount)

	want := []int{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	got := make([]int, len(ec))
	for i, b := range ec {
		got[i] = int(b)
	}
	assert.Equal(t, want, got)
}

func TestChosenMaskHelloWorldV1Q(t *testing.T) {
	q, err := NewBuilder().ECL(Quartile).WithVersion(1).Build("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, Mask(6), q.Mask())
}

func TestFinalMatrixHasNoUnknownOrReservedModules(t *testing.T) {
	q, err := EncodeText("HELLO WORLD", Quartile)
	require.NoError(t, err)
	assertNoUnknownOrReserved(t, q)
}

// TestFinalMatrixHasNoUnknownOrReservedModulesWithRemainderBits covers
// versions whose raw module count leaves nonzero remainder bits after
// interleaving (e.g. 2-6 leave 7, 14-20 leave 3, 21-27 leave 4, 28-34
// leave 3); those trailing cells must still end up Data, not stuck
// Unknown.
func TestFinalMatrixHasNoUnknownOrReservedModulesWithRemainderBits(t *testing.T) {
	for _, v := range []Version{2, 6, 14, 20, 21, 27, 28, 34} {
		q, err := NewBuilder().ECL(Low).WithVersion(v).Build("HELLO WORLD")
		require.NoError(t, err)
		assertNoUnknownOrReserved(t, q)
	}
}

func assertNoUnknownOrReserved(t *testing.T, q *Qr) {
	t.Helper()
	for y := 0; y < q.Size(); y++ {
		for x := 0; x < q.Size(); x++ {
			kind := q.matrix.cells[y][x].kind
			assert.NotEqual(t, cellUnknown, kind)
			assert.NotEqual(t, cellReserved, kind)
		}
	}
}

func TestMaskingOnlyTouchesDataModules(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD", Alphanumeric)
	require.NoError(t, err)
	data, err := buildBitStream(seg, 1, Quartile)
	require.NoError(t, err)
	allCodewords := addECAndInterleave(data, 1, Quartile)

	m := newMatrix(Version(1).Size())
	drawFunctionPatterns(m, 1)
	drawCodewords(m, allCodewords)

	before := make([][]cell, m.size)
	dataCells := 0
	for y := range before {
		before[y] = append([]cell(nil), m.cells[y]...)
		for x := 0; x < m.size; x++ {
			if m.cells[y][x].kind == cellData {
				dataCells++
			}
		}
	}
	require.Greater(t, dataCells, 0)

	applyMask(m, Mask(0))

	changed := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.cells[y][x].kind != cellData {
				assert.Equal(t, before[y][x], m.cells[y][x])
			} else if m.cells[y][x].dark != before[y][x].dark {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 0)
}

func TestReEncodingWithExplicitParamsIsDeterministic(t *testing.T) {
	auto, err := EncodeText("HELLO WORLD", Quartile)
	require.NoError(t, err)

	explicit, err := NewBuilder().
		ECL(auto.ECLevel()).
		WithVersion(auto.Version()).
		WithMask(auto.Mask()).
		WithMode(auto.Mode()).
		Build("HELLO WORLD")
	require.NoError(t, err)

	assert.Equal(t, auto.matrix.cells, explicit.matrix.cells)
}

func TestAlignmentPatternsNeverOverlapFinders(t *testing.T) {
	for v := Version(2); v <= MaxVersion; v++ {
		positions := alignmentPatternPositions[v]
		n := len(positions)
		size := v.Size()
		for i, px := range positions {
			for j, py := range positions {
				// drawAlignmentPatterns skips the three corner
				// candidates, which sit on the finders.
				if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
					continue
				}
				inTopLeft := px <= 10 && py <= 10
				inTopRight := px >= size-11 && py <= 10
				inBottomLeft := px <= 10 && py >= size-11
				if inTopLeft || inTopRight || inBottomLeft {
					t.Fatalf("version %d: alignment center (%d,%d) overlaps a finder", v, px, py)
				}
			}
		}
	}
}
