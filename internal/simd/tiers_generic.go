//go:build !amd64 && !arm64

package simd

// selectTier on architectures with no SIMD dispatch path implemented here
// always reports the scalar scanner. This mirrors the teacher's
// simd_other.go fallback for unsupported architectures.
func selectTier() (Tier, scanFunc) {
	return TierScalar, skipWhitespaceScalar
}
