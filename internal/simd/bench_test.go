package simd_test

import (
	"strings"
	"testing"

	"github.com/destrex271/DB25-sql-tokenizer/internal/simd"
)

func BenchmarkSkipWhitespaceDispatched(b *testing.B) {
	d := simd.New()
	data := []byte(strings.Repeat(" ", 256) + "x")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.SkipWhitespace(data)
	}
}

func BenchmarkSkipWhitespaceScalar(b *testing.B) {
	data := []byte(strings.Repeat(" ", 256) + "x")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		simd.SkipWhitespaceScalar(data)
	}
}
