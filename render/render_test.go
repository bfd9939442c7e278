package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSymbol is a minimal 3x3 checkerboard standing in for *rqr.Qr, so
// these tests don't need a full encode pipeline.
type fakeSymbol struct{}

func (fakeSymbol) Size() int { return 3 }

func (fakeSymbol) IsDark(x, y int) bool {
	return (x+y)%2 == 0
}

func TestStringRendersDarkAndLightCells(t *testing.T) {
	out := String(fakeSymbol{}, 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "██"))
}

func TestStringAddsBorder(t *testing.T) {
	bordered := String(fakeSymbol{}, 2)
	lines := strings.Split(strings.TrimRight(bordered, "\n"), "\n")
	assert.Len(t, lines, 7) // 3 + 2*2
}

func TestSVGRejectsNegativeBorder(t *testing.T) {
	_, err := SVG(fakeSymbol{}, -1)
	assert.Error(t, err)
}

func TestSVGContainsOnePathCommandPerDarkModule(t *testing.T) {
	svg, err := SVG(fakeSymbol{}, 1)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Equal(t, 5, strings.Count(svg, "h1v1h-1z")) // (0,0)(2,0)(1,1)(0,2)(2,2)
}

func TestPNGEncodesValidImage(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(fakeSymbol{}, 4, 1, &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx()) // (3+1*2)*4
}

func TestPNGRejectsNonPositiveScale(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(fakeSymbol{}, 0, 1, &buf)
	assert.Error(t, err)
}
