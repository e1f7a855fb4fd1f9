//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// selectTier probes x86 feature bits (via golang.org/x/sys/cpu, the same
// dependency the example pack's simdjson-go teacher uses for this exact
// purpose) and picks the highest tier the running CPU supports.
func selectTier() (Tier, scanFunc) {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return TierAVX512, skipWhitespaceAVX512
	case cpu.X86.HasAVX2:
		return TierAVX2, skipWhitespaceAVX2
	case cpu.X86.HasSSE42:
		return TierSSE42, skipWhitespaceSSE42
	case cpu.X86.HasSSSE3:
		return TierSSSE3, skipWhitespaceSSSE3
	case cpu.X86.HasSSE2:
		return TierSSE2, skipWhitespaceSSE2
	default:
		return TierScalar, skipWhitespaceScalar
	}
}
