package rqr

// Per-version, per-error-correction-level block layout and derived
// codeword counts. Tables are keyed [ecl][version], with index 0
// unused (versions are 1-based) to keep version indexing direct.
var (
	eccCodewordsPerBlock = [4][41]int{
		// Version:   0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		Low:      {-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		Medium:   {-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		Quartile: {-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		High:     {-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	numErrorCorrectionBlocks = [4][41]int{
		Low:      {-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		Medium:   {-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		Quartile: {-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		High:     {-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	// numRawDataModules[version] is the total number of bits available
	// for codewords (data + EC + remainder) after function modules are
	// excluded.
	numRawDataModules [41]int

	// numDataCodewords[ecl][version] is the number of 8-bit data (not
	// EC) codewords, remainder bits discarded.
	numDataCodewords [4][41]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}
}

// addECAndInterleave splits data into its version/ECL blocks, appends
// Reed-Solomon EC codewords to each, and interleaves data codewords
// column-first followed by EC codewords column-first. The version's
// remainder bits are not part of the returned codewords; drawCodewords
// fills the trailing cells the walk visits beyond them with light Data
// modules.
func addECAndInterleave(data []byte, version Version, ecl ECLevel) []byte {
	if len(data) != numDataCodewords[ecl][version] {
		panic("data is not the correct length for this version/ECL")
	}

	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECLen := eccCodewordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	dataBlocks := make([][]byte, numBlocks)
	ecBlocks := make([][]byte, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		blockDataLen := shortBlockLen - blockECLen
		if i >= numShortBlocks {
			blockDataLen++
		}
		block := data[k : k+blockDataLen]
		k += blockDataLen
		dataBlocks[i] = block
		ecBlocks[i] = rsGenerateECCodewords(block, blockECLen)
	}

	result := make([]byte, 0, rawCodewords)
	maxDataLen := shortBlockLen - blockECLen + 1
	for i := 0; i < maxDataLen; i++ {
		for j := 0; j < numBlocks; j++ {
			if i != maxDataLen-1 || j >= numShortBlocks {
				result = append(result, dataBlocks[j][i])
			}
		}
	}
	for i := 0; i < blockECLen; i++ {
		for j := 0; j < numBlocks; j++ {
			result = append(result, ecBlocks[j][i])
		}
	}

	if len(result) != rawCodewords {
		panic("interleaving produced the wrong number of codewords")
	}

	return result
}
