// Package simd implements the SIMD whitespace scanner (C3) and its
// runtime dispatcher (C4). Construction probes CPU capability exactly
// once per process and selects the highest tier available; every
// Dispatcher instance thereafter routes through a plain function pointer,
// so there is no per-call branching beyond an indirect call, matching
// spec.md §4.4.
//
// Every tier implements the same contract — skip_whitespace(data) -> n —
// and must be byte-for-byte equivalent to the scalar fallback (spec.md
// §4.3, invariant 5 in §8). See swar.go for why "tier" here means "lane
// width", not "distinct instruction set": true vector intrinsics require
// per-architecture assembly this package does not carry, so tiers are
// distinguished by how many words they process per step while sharing one
// classification core.
package simd

import (
	"sync"

	"github.com/destrex271/DB25-sql-tokenizer/internal/classify"
)

// Tier identifies which whitespace-scanning strategy a Dispatcher has
// selected.
type Tier int

const (
	TierScalar Tier = iota
	TierSSE2
	TierSSSE3
	TierSSE42
	TierAVX2
	TierAVX512
	TierNEON
)

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "Scalar"
	case TierSSE2:
		return "SSE2"
	case TierSSSE3:
		return "SSSE3"
	case TierSSE42:
		return "SSE4.2"
	case TierAVX2:
		return "AVX2"
	case TierAVX512:
		return "AVX512"
	case TierNEON:
		return "NEON"
	default:
		return "Scalar"
	}
}

// scanFunc is the shape every tier implements: count the leading
// whitespace bytes of data, never reading past len(data).
type scanFunc func(data []byte) int

var (
	detectOnce  sync.Once
	detectedTier Tier
	detectedScan scanFunc
)

// detect runs the CPU capability probe exactly once per process. Later
// calls reuse the cached result, satisfying spec.md §5's requirement that
// "any thread-safe one-shot discipline suffices."
func detect() {
	detectOnce.Do(func() {
		detectedTier, detectedScan = selectTier()
	})
}

// Dispatcher routes SkipWhitespace calls to the tier selected at
// construction. The selection is fixed for the Dispatcher's lifetime.
type Dispatcher struct {
	tier Tier
	scan scanFunc
}

// New probes CPU features (once per process) and returns a Dispatcher
// bound to the best available tier.
func New() *Dispatcher {
	detect()
	return &Dispatcher{tier: detectedTier, scan: detectedScan}
}

// SkipWhitespace returns the number of leading whitespace bytes in data.
// It never reads past len(data) and stops at the first non-whitespace
// byte even if more whitespace follows later in data.
func (d *Dispatcher) SkipWhitespace(data []byte) int {
	return d.scan(data)
}

// LevelName returns the human-readable tag for the tier this Dispatcher
// selected ("AVX512", "AVX2", "SSE4.2", "SSSE3", "SSE2", "NEON", or
// "Scalar").
func (d *Dispatcher) LevelName() string {
	return d.tier.String()
}

// SkipWhitespaceScalar is exported for tests and benchmarks that need to
// compare every tier against the reference scalar implementation
// (spec.md §8 invariant 5).
func SkipWhitespaceScalar(data []byte) int {
	return skipWhitespaceScalar(data)
}

func skipWhitespaceScalar(data []byte) int {
	for i, b := range data {
		if !classify.IsWhitespace(b) {
			return i
		}
	}
	return len(data)
}
