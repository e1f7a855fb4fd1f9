// Package sqltoken is a high-performance, zero-allocation SQL tokenizer
// for Go.
//
// Design goals:
//   - Zero heap allocations for lexeme values (every Token.Value borrows
//     a slice of the caller's input)
//   - O(1) byte classification via a 256-entry lookup table
//   - O(1) amortized keyword recognition via length-bucketed tables
//   - SIMD-tiered whitespace scanning with a process-wide one-shot CPU
//     capability probe
//   - No downstream parsing, AST construction, or dialect awareness —
//     this package stops at the token stream
//
// Usage:
//
//	toks := sqltoken.Tokenize([]byte("SELECT id FROM users WHERE id = 1"))
//	l := sqltoken.New(src)
//	for _, t := range l.Tokenize() { ... }
package sqltoken

import (
	"github.com/destrex271/DB25-sql-tokenizer/internal/keyword"
	"github.com/destrex271/DB25-sql-tokenizer/lexer"
)

// Re-export core types so callers only import this package.
type (
	Token     = lexer.Token
	Kind      = lexer.Kind
	KeywordID = keyword.ID
)

// Kind values.
const (
	Unknown    = lexer.Unknown
	Keyword    = lexer.Keyword
	Identifier = lexer.Identifier
	Number     = lexer.Number
	String     = lexer.String
	Operator   = lexer.Operator
	Delimiter  = lexer.Delimiter
	Whitespace = lexer.Whitespace
	Comment    = lexer.Comment
	EndOfFile  = lexer.EndOfFile
)

// Lexer is a reusable tokenizer over a borrowed input buffer.
type Lexer = lexer.Lexer

// New creates a Lexer over src. src must outlive the Lexer and every
// Token it produces.
func New(src []byte) *Lexer {
	return lexer.New(src)
}

// NewString creates a Lexer over s without copying.
func NewString(s string) *Lexer {
	return lexer.NewString(s)
}

// Tokenize lexes src in one call and returns the filtered token stream
// (no Whitespace or EndOfFile tokens), per §4.6.
func Tokenize(src []byte) []Token {
	return lexer.New(src).Tokenize()
}

// TokenizeString is the string-input counterpart of Tokenize.
func TokenizeString(src string) []Token {
	return lexer.NewString(src).Tokenize()
}

// SIMDLevel reports the whitespace-scanning tier a fresh Lexer would
// select on the current process ("AVX512", "AVX2", "SSE4.2", "SSSE3",
// "SSE2", "NEON", or "Scalar").
func SIMDLevel() string {
	return lexer.New(nil).SIMDLevel()
}
