package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destrex271/DB25-sql-tokenizer/internal/keyword"
)

func TestLookupCaseInsensitive(t *testing.T) {
	cases := []string{"select", "SELECT", "Select", "sElEcT"}
	for _, c := range cases {
		require.Equalf(t, keyword.SELECT, keyword.Lookup([]byte(c)), "input %q", c)
	}
}

func TestLookupUnknownForNonKeyword(t *testing.T) {
	assert.Equal(t, keyword.Unknown, keyword.Lookup([]byte("users")))
	assert.Equal(t, keyword.Unknown, keyword.Lookup([]byte("x")))
}

func TestLookupEmptyAndOverlong(t *testing.T) {
	assert.Equal(t, keyword.Unknown, keyword.Lookup(nil))
	assert.Equal(t, keyword.Unknown, keyword.Lookup([]byte("")))
	longIdent := make([]byte, 64)
	for i := range longIdent {
		longIdent[i] = 'a'
	}
	assert.Equal(t, keyword.Unknown, keyword.Lookup(longIdent))
}

func TestLookupDeterministic(t *testing.T) {
	a := keyword.Lookup([]byte("Where"))
	b := keyword.Lookup([]byte("WHERE"))
	assert.Equal(t, a, b)
	assert.Equal(t, keyword.WHERE, a)
}

func TestStringRoundTrip(t *testing.T) {
	assert.Equal(t, "SELECT", keyword.SELECT.String())
	assert.Equal(t, "UNKNOWN", keyword.Unknown.String())
}

func TestDataTypeKeywords(t *testing.T) {
	for _, c := range []string{"varchar", "integer", "timestamp", "boolean"} {
		assert.NotEqual(t, keyword.Unknown, keyword.Lookup([]byte(c)), c)
	}
}
