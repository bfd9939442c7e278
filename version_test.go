package rqr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalVersionHelloWorld(t *testing.T) {
	v, err := minimalVersion(len("HELLO WORLD"), Alphanumeric, Quartile)
	require.NoError(t, err)
	assert.Equal(t, Version(1), v)

	v, err = minimalVersion(len("HELLO THERE WORLD"), Alphanumeric, Quartile)
	require.NoError(t, err)
	assert.Equal(t, Version(2), v)
}

func TestCapacityBoundaryVersion40(t *testing.T) {
	assert.Equal(t, 2953, MaxVersion.Capacity(Byte, Low))

	v, err := minimalVersion(2953, Byte, Low)
	require.NoError(t, err)
	assert.Equal(t, MaxVersion, v)

	_, err = minimalVersion(2954, Byte, Low)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}

func TestVersionInfoPresenceBoundary(t *testing.T) {
	assert.False(t, Version(6).hasVersionInfo())
	assert.True(t, Version(7).hasVersionInfo())
}

func TestBuildRejectsOutOfRangeForcedVersion(t *testing.T) {
	_, err := NewBuilder().WithVersion(41).Build("hi")
	assert.True(t, errors.Is(err, ErrInvalidVersion))
}

func TestEncodeTextFailsPastCapacity(t *testing.T) {
	// Lowercase letters are outside the alphanumeric set, so the
	// analyzer picks Byte mode, whose version-40 Low capacity is 2953.
	_, err := EncodeText(strings.Repeat("x", 2954), Low)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}
