package sqltoken

import "testing"

func TestTokenizeReExportsMatchLexerResults(t *testing.T) {
	toks := Tokenize([]byte("SELECT a FROM b"))
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	if toks[0].Kind != Keyword {
		t.Fatalf("toks[0].Kind = %v, want Keyword", toks[0].Kind)
	}
	if string(toks[0].Value) != "SELECT" {
		t.Fatalf("toks[0].Value = %q, want SELECT", toks[0].Value)
	}
}

func TestTokenizeStringMatchesTokenize(t *testing.T) {
	a := Tokenize([]byte("a = 1"))
	b := TokenizeString("a = 1")
	if len(a) != len(b) {
		t.Fatalf("len mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if string(a[i].Value) != string(b[i].Value) || a[i].Kind != b[i].Kind {
			t.Fatalf("token %d mismatch: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSIMDLevelNonEmpty(t *testing.T) {
	if SIMDLevel() == "" {
		t.Fatal("SIMDLevel() returned empty string")
	}
}

func TestNewAndLexerTokenize(t *testing.T) {
	l := New([]byte("DROP TABLE t"))
	toks := l.Tokenize()
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
}
