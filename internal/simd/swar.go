package simd

import (
	"encoding/binary"
	"math/bits"

	"github.com/destrex271/DB25-sql-tokenizer/internal/classify"
)

// Each tier's whitespace scan is built on this word-parallel (SWAR —
// "SIMD within a register") core: it classifies eight bytes per uint64
// load instead of one byte per iteration. True vector instructions are
// not reachable from portable Go without hand-written assembly per
// architecture (see DESIGN.md); this gets the same "process several bytes
// per step" shape as the real SIMD tiers while staying pure Go. A tier's
// lane width (8/16/32/64 bytes) only changes how many words are read
// together per outer-loop step — the underlying byte classification, and
// therefore the result, is identical across all of them.

const wordSize = 8

// broadcast repeats b into every byte of a uint64.
func broadcast(b byte) uint64 {
	v := uint64(b)
	return v | v<<8 | v<<16 | v<<24 | v<<32 | v<<40 | v<<48 | v<<56
}

var (
	wsSpace   = broadcast(' ')
	wsTab     = broadcast('\t')
	wsNewline = broadcast('\n')
	wsCR      = broadcast('\r')
)

// hasZeroByte returns, for each byte lane of v, 0x80 if that lane is zero
// and 0x00 otherwise. Adding 0x7F to the low seven bits of a lane sets its
// high bit unless those bits are all zero, and never carries into the next
// lane, so each lane's result is exact; folding it with an XOR against a
// broadcast target turns it into "which lanes hold target".
func hasZeroByte(v uint64) uint64 {
	const low7 = 0x7F7F7F7F7F7F7F7F
	return ^(((v & low7) + low7) | v | low7)
}

// nonWhitespaceMask returns, per byte lane of v, 0x80 if that lane is NOT
// one of ' ', '\t', '\n', '\r', else 0x00.
func nonWhitespaceMask(v uint64) uint64 {
	isWS := hasZeroByte(v^wsSpace) | hasZeroByte(v^wsTab) | hasZeroByte(v^wsNewline) | hasZeroByte(v^wsCR)
	return isWS ^ 0x8080808080808080
}

// skipWhitespaceWords is the shared word-at-a-time engine every tier
// delegates to. lanesPerStep controls how many 8-byte words are read
// together before checking for a non-whitespace byte; it does not change
// the result, only the batch size of the inner loop (see comment above).
func skipWhitespaceWords(data []byte, lanesPerStep int) int {
	n := len(data)
	chunk := wordSize * lanesPerStep
	i := 0

	for i+chunk <= n {
		stop := -1
		for lane := 0; lane < lanesPerStep; lane++ {
			off := i + lane*wordSize
			word := binary.LittleEndian.Uint64(data[off : off+wordSize])
			mask := nonWhitespaceMask(word)
			if mask != 0 {
				stop = off + bits.TrailingZeros64(mask)/8
				break
			}
		}
		if stop >= 0 {
			return stop
		}
		i += chunk
	}

	// Remaining bytes that don't fill a full word: scalar fallback, as
	// required by spec.md §4.3 ("the tail is handled by the scalar
	// fallback").
	for ; i < n; i++ {
		if !classify.IsWhitespace(data[i]) {
			return i
		}
	}
	return n
}
