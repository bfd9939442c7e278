package rqr

// Reed-Solomon codec over GF(256) with primitive polynomial 0x11D
// (x^8 + x^4 + x^3 + x^2 + 1). Tables are built once in init() rather
// than stored as source literals, following the teacher's own
// init()-computed style.
var (
	rsExp [256]byte // rsExp[i] = 2^i in GF(256).
	rsLog [256]int  // rsLog[v] = i such that 2^i = v; rsLog[0] is unused.

	// rsGenerators[ecCount] holds the log-domain coefficients of the
	// degree-ecCount generator polynomial, lead term implicit, indexed
	// 0..ecCount-1.
	rsGenerators = make(map[int][]int)
)

func init() {
	// Build exp/log tables by walking the multiplicative group
	// generated by 0x02.
	x := 1
	for i := 0; i < 255; i++ {
		rsExp[i] = byte(x)
		rsLog[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= 0x11D
		}
	}
	rsExp[255] = rsExp[0]

	for ecCount := 1; ecCount <= 30; ecCount++ {
		rsGenerators[ecCount] = rsComputeGenerator(ecCount)
	}
}

// rsComputeGenerator returns the log-domain coefficients of the
// generator polynomial prod_{i=0}^{degree-1} (x - 2^i), stored highest
// power first, lead coefficient (always 1) implicit: coeffs[0] is the
// x^(degree-1) term, coeffs[degree-1] is the x^0 term.
func rsComputeGenerator(degree int) []int {
	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = rsMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = rsMultiply(root, 2)
	}

	logCoeffs := make([]int, degree)
	for j, b := range result {
		logCoeffs[j] = rsLog[b]
	}

	return logCoeffs
}

// rsMultiply returns the product of two GF(256) elements.
func rsMultiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return rsExp[(int(rsLog[a])+int(rsLog[b]))%255]
}

// rsGenerateECCodewords computes the ecCount error correction
// codewords for a single block of data codewords, following the
// log-domain generator-coefficient algorithm: res starts as data
// followed by ecCount zero bytes; for each nonzero leading term, the
// shifted, scaled generator polynomial is XORed in.
func rsGenerateECCodewords(data []byte, ecCount int) []byte {
	gen := rsGenerators[ecCount]
	res := make([]byte, len(data)+ecCount)
	copy(res, data)

	for i := 0; i < len(data); i++ {
		if res[i] == 0 {
			continue
		}
		a := int(rsLog[res[i]])
		for j := 0; j < ecCount; j++ {
			res[i+1+j] ^= rsExp[(gen[j]+a)%255]
		}
	}

	return res[len(data):]
}
