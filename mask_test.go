package rqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenaltyComponentsBreakdownHelloWorldV1Q(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD", Alphanumeric)
	require.NoError(t, err)

	data, err := buildBitStream(seg, 1, Quartile)
	require.NoError(t, err)

	allCodewords := addECAndInterleave(data, 1, Quartile)

	m := newMatrix(Version(1).Size())
	drawFunctionPatterns(m, 1)
	drawCodewords(m, allCodewords)
	applyMask(m, Mask(6))

	n1 := penaltyN1Runs(m)
	n2 := penaltyN2Blocks(m)
	n3 := penaltyN3Patterns(m)
	n4 := penaltyN4Balance(m)

	// Exact per-component breakdown, not just the total: a bug that
	// shuffled points between components while keeping the sum fixed
	// would otherwise pass.
	assert.Equal(t, 211, n1)
	assert.Equal(t, 135, n2)
	assert.Equal(t, 80, n3)
	assert.Equal(t, 10, n4)

	assert.Equal(t, n1+n2+n3+n4, penaltyScore(m))
	assert.Equal(t, 436, n1+n2+n3+n4)
}

func TestChooseMaskPicksLowestPenalty(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD", Alphanumeric)
	require.NoError(t, err)
	data, err := buildBitStream(seg, 1, Quartile)
	require.NoError(t, err)
	allCodewords := addECAndInterleave(data, 1, Quartile)

	m := newMatrix(Version(1).Size())
	drawFunctionPatterns(m, 1)
	drawCodewords(m, allCodewords)

	best := chooseMask(m)

	bestScore := -1
	for mask := Mask(0); mask < 8; mask++ {
		applyMask(m, mask)
		score := penaltyScore(m)
		applyMask(m, mask)
		if bestScore == -1 || score < bestScore {
			bestScore = score
		}
	}

	applyMask(m, best)
	assert.Equal(t, bestScore, penaltyScore(m))
}

func TestMaskPredicateCoversAllEightFormulas(t *testing.T) {
	for mask := Mask(0); mask < 8; mask++ {
		assert.NotPanics(t, func() {
			maskPredicate(mask, 3, 5)
		})
	}
}

func TestMaskPredicatePanicsOnUnknownMask(t *testing.T) {
	assert.Panics(t, func() {
		maskPredicate(Mask(8), 0, 0)
	})
}
