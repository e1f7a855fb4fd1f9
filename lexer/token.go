// Package lexer implements the scalar lexer core (C5) and the token
// stream assembler (C6): it drives position/line/column tracking and
// turns a read-only byte buffer into a sequence of tagged tokens, each a
// zero-copy slice into the caller's input.
package lexer

import "github.com/destrex271/DB25-sql-tokenizer/internal/keyword"

// Kind classifies a Token. Whitespace is never included in Tokenize's
// result: whitespace is skipped between tokens rather than emitted (§4.6);
// EndOfFile marks the end of input and is likewise never included in the
// returned sequence.
type Kind uint8

const (
	Unknown Kind = iota
	Keyword
	Identifier
	Number
	String
	Operator
	Delimiter
	Whitespace
	Comment
	EndOfFile
)

var kindNames = [...]string{
	Unknown:    "Unknown",
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Number:     "Number",
	String:     "String",
	Operator:   "Operator",
	Delimiter:  "Delimiter",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	EndOfFile:  "EndOfFile",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is an immutable record describing one lexeme. Value is a slice
// borrowed directly from the buffer passed to New/NewString: it is valid
// for exactly as long as that buffer is not mutated or freed. The
// tokenizer never copies lexeme bytes (spec.md §5, "Memory").
type Token struct {
	Kind      Kind
	Value     []byte
	KeywordID keyword.ID // keyword.Unknown unless Kind == Keyword
	Line      int        // 1-based
	Column    int        // 1-based
}
