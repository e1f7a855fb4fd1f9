//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// selectTier on arm64 has exactly two outcomes: NEON (Advanced SIMD),
// which is mandatory on every arm64 implementation Go supports, or the
// scalar fallback if feature detection somehow reports otherwise.
func selectTier() (Tier, scanFunc) {
	if cpu.ARM64.HasASIMD {
		return TierNEON, skipWhitespaceNEON
	}
	return TierScalar, skipWhitespaceScalar
}
