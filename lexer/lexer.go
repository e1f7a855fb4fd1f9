package lexer

import (
	"unsafe"

	"github.com/destrex271/DB25-sql-tokenizer/internal/classify"
	"github.com/destrex271/DB25-sql-tokenizer/internal/keyword"
	"github.com/destrex271/DB25-sql-tokenizer/internal/simd"
)

// Lexer drives the position state over a borrowed input buffer and emits
// one token per call to next, which Tokenize drives. Beyond the output
// slice Tokenize builds, it performs no per-token heap allocation: every
// Token.Value it returns is a sub-slice of the buffer passed to New or
// NewString, per spec.md §5's "Memory" note.
type Lexer struct {
	src    []byte
	pos    int
	line   int
	column int

	dispatcher *simd.Dispatcher
}

// New creates a Lexer over src. src must not be mutated or freed for as
// long as the Lexer, or any Token it produced, is still in use.
func New(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, column: 1, dispatcher: simd.New()}
}

// NewString creates a Lexer over s without copying, using an unsafe
// string-to-[]byte conversion. This is safe only because the lexer never
// writes through the returned slice, matching the borrow the teacher's
// lexer.NewString documents for the same trick.
func NewString(s string) *Lexer {
	b := unsafe.Slice(unsafe.StringData(s), len(s))
	return New(b)
}

// SIMDLevel identifies the whitespace-scanning tier this Lexer's
// dispatcher selected (spec.md §6, "simd_level").
func (l *Lexer) SIMDLevel() string {
	return l.dispatcher.LevelName()
}

// Tokenize is the token stream assembler (C6): it drives the loop
// described in spec.md §4.6, skipping whitespace via the SIMD dispatcher
// between every token and filtering Whitespace and EndOfFile out of the
// result. Capacity is pre-reserved proportional to input length, per
// spec.md §4.6's "len/8" micro-optimization.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, len(l.src)/8)
	for {
		if l.pos < len(l.src) {
			if skip := l.dispatcher.SkipWhitespace(l.src[l.pos:]); skip > 0 {
				l.advance(skip)
			}
		}
		if l.pos >= len(l.src) {
			break
		}
		tok := l.next()
		if tok.Kind != Whitespace {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// advance walks count bytes forward from the current position, updating
// line/column byte-by-byte. The SIMD scanner reports only a count; the
// walk to turn that into (line, column) must not be skipped or the
// position invariant (spec.md §8.3) breaks (spec.md §9, "Line/column
// tracking across SIMD skips").
func (l *Lexer) advance(count int) {
	for i := 0; i < count; i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

// next is the scalar lexer core (C5): it emits exactly one token,
// dispatching on the first byte's class per spec.md §4.5.
func (l *Lexer) next() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: EndOfFile, Line: l.line, Column: l.column}
	}

	start := l.pos
	startLine := l.line
	startColumn := l.column
	c := l.src[l.pos]

	switch {
	case classify.IsIdentStart(c):
		return l.scanIdentifierOrKeyword(start, startLine, startColumn)
	case classify.IsDigit(c):
		return l.scanNumber(start, startLine, startColumn)
	case classify.IsQuote(c):
		return l.scanString(start, startLine, startColumn, c)
	case c == '-' && l.peekIs(1, '-'):
		return l.scanLineComment(start, startLine, startColumn)
	case c == '/' && l.peekIs(1, '*'):
		return l.scanBlockComment(start, startLine, startColumn)
	default:
		return l.scanOperatorOrDelimiter(start, startLine, startColumn)
	}
}

// peekIs reports whether the byte at l.pos+offset exists and equals b.
func (l *Lexer) peekIs(offset int, b byte) bool {
	i := l.pos + offset
	return i < len(l.src) && l.src[i] == b
}

// step consumes exactly one byte, advancing position and column (never
// called on '\n' directly — every scanner here that can cross a newline
// tracks line/column explicitly instead).
func (l *Lexer) step() {
	l.pos++
	l.column++
}

// §4.5.1 Identifiers and keywords.
func (l *Lexer) scanIdentifierOrKeyword(start, line, column int) Token {
	l.step()
	for l.pos < len(l.src) && classify.IsIdentCont(l.src[l.pos]) {
		l.step()
	}
	value := l.src[start:l.pos]
	id := keyword.Lookup(value)
	kind := Identifier
	if id != keyword.Unknown {
		kind = Keyword
	}
	return Token{Kind: kind, Value: value, KeywordID: id, Line: line, Column: column}
}

// §4.5.2 Numbers: digits, at most one decimal point, at most one exponent
// marker optionally followed by a single sign. No validation that digits
// actually follow the exponent or sign — greedy consumption only, per
// spec.md's explicit non-requirement.
func (l *Lexer) scanNumber(start, line, column int) Token {
	hasDot := false
	hasExp := false

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case classify.IsDigit(c):
			l.step()
		case c == '.' && !hasDot && !hasExp:
			hasDot = true
			l.step()
		case (c == 'e' || c == 'E') && !hasExp:
			hasExp = true
			l.step()
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.step()
			}
		default:
			value := l.src[start:l.pos]
			return Token{Kind: Number, Value: value, Line: line, Column: column}
		}
	}
	value := l.src[start:l.pos]
	return Token{Kind: Number, Value: value, Line: line, Column: column}
}

// §4.5.3 String literals. A byte equal to the opening quote terminates
// the string unless the next byte is also that quote (a doubled,
// escaped quote), in which case both are consumed. Unterminated strings
// run to end-of-input with no error, per spec.md §7.
func (l *Lexer) scanString(start, line, column int, quote byte) Token {
	l.step() // opening quote
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == quote:
			l.step()
			if l.pos < len(l.src) && l.src[l.pos] == quote {
				l.step() // escaped quote: consume the pair, keep scanning
				continue
			}
			value := l.src[start:l.pos]
			return Token{Kind: String, Value: value, Line: line, Column: column}
		case c == '\n':
			l.pos++
			l.line++
			l.column = 1
		default:
			l.step()
		}
	}
	// Unterminated: runs to end-of-input.
	value := l.src[start:l.pos]
	return Token{Kind: String, Value: value, Line: line, Column: column}
}

// §4.5.4 Line comments: "--" up to and including the next '\n', or to
// end-of-input.
func (l *Lexer) scanLineComment(start, line, column int) Token {
	l.step()
	l.step()
	for l.pos < len(l.src) {
		if l.src[l.pos] == '\n' {
			l.pos++
			l.line++
			l.column = 1
			break
		}
		l.step()
	}
	value := l.src[start:l.pos]
	return Token{Kind: Comment, Value: value, Line: line, Column: column}
}

// §4.5.5 Block comments: "/*" ... "*/" inclusive, or to end-of-input.
// Nesting is not supported.
func (l *Lexer) scanBlockComment(start, line, column int) Token {
	l.step()
	l.step()
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekIs(1, '/') {
			l.step()
			l.step()
			break
		}
		if l.src[l.pos] == '\n' {
			l.pos++
			l.line++
			l.column = 1
			continue
		}
		l.step()
	}
	value := l.src[start:l.pos]
	return Token{Kind: Comment, Value: value, Line: line, Column: column}
}

// extensionPairs is the fixed two-byte operator extension table from
// spec.md §4.5.6. Deliberately NOT a 16x16 matrix over a restricted
// index space (spec.md §9 suggests one, but with only ten pairs a plain
// map is clearer and just as O(1)); keyed by first<<8|second.
var extensionPairs = map[uint16]struct{}{
	uint16('<')<<8 | uint16('='): {}, // <=
	uint16('<')<<8 | uint16('>'): {}, // <>
	uint16('<')<<8 | uint16('<'): {}, // <<
	uint16('>')<<8 | uint16('='): {}, // >=
	uint16('>')<<8 | uint16('>'): {}, // >>
	uint16('!')<<8 | uint16('='): {}, // !=
	uint16('=')<<8 | uint16('='): {}, // ==
	uint16('|')<<8 | uint16('|'): {}, // ||
	uint16('&')<<8 | uint16('&'): {}, // &&
	uint16(':')<<8 | uint16(':'): {}, // ::
}

// §4.5.6 Operators and delimiters. The first byte's class (via C1)
// decides Operator vs Delimiter; the second byte is consumed as part of
// the same token only if the pair is in extensionPairs. No other
// multi-character operator is recognized: "===" splits as "==" then "=",
// "!==" as "!=" then "=", "<<<" as "<<" then "<" — the first maximal
// match wins and the rest restarts tokenization (spec.md §4.5.6, §9 open
// question: retained as specified, not extended with "->").
func (l *Lexer) scanOperatorOrDelimiter(start, line, column int) Token {
	c := l.src[l.pos]
	kind := Operator
	if classify.IsDelimiter(c) {
		kind = Delimiter
	}
	l.step()

	if l.pos < len(l.src) {
		key := uint16(c)<<8 | uint16(l.src[l.pos])
		if _, ok := extensionPairs[key]; ok {
			l.step()
		}
	}

	value := l.src[start:l.pos]
	return Token{Kind: kind, Value: value, Line: line, Column: column}
}
