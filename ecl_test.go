package rqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestECLevelFormatBits(t *testing.T) {
	assert.Equal(t, 1, Low.formatBits())
	assert.Equal(t, 0, Medium.formatBits())
	assert.Equal(t, 3, Quartile.formatBits())
	assert.Equal(t, 2, High.formatBits())
}

func TestECLevelString(t *testing.T) {
	assert.Equal(t, "L", Low.String())
	assert.Equal(t, "M", Medium.String())
	assert.Equal(t, "Q", Quartile.String())
	assert.Equal(t, "H", High.String())
}
