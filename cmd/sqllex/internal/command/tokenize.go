package command

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/destrex271/DB25-sql-tokenizer/lexer"
	sqltoken "github.com/destrex271/DB25-sql-tokenizer/sqltoken"
)

func newTokenizeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [glob ...]",
		Short: "Tokenize one or more SQL files and print the resulting token stream",
		Long: `Tokenize reads each file matched by the given glob patterns (doublestar
syntax, so "**/*.sql" is supported) and prints its token stream.

With no arguments, tokenize reads SQL text from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTokenizeStream(app, cmd.InOrStdin(), cmd.OutOrStdout(), "<stdin>")
			}

			paths, err := expandGlobs(app.FS, args)
			if err != nil {
				return fmt.Errorf("expand globs: %w", err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files matched: %v", args)
			}

			for _, path := range paths {
				if err := runTokenizeFile(app, cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

// expandGlobs resolves doublestar patterns against app's filesystem and
// returns the matching paths, sorted and de-duplicated.
func expandGlobs(fs afero.Fs, patterns []string) ([]string, error) {
	iofs := afero.NewIOFS(fs)
	seen := map[string]bool{}
	var out []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
		matches, err := doublestar.Glob(iofs, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func runTokenizeFile(app *App, w io.Writer, path string) error {
	f, err := app.FS.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return runTokenizeStream(app, f, w, path)
}

func runTokenizeStream(app *App, r io.Reader, w io.Writer, label string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", label, err)
	}

	toks := sqltoken.Tokenize(src)
	slog.Debug("tokenized", "source", label, "tokens", len(toks))
	warnOverlongIdentifiers(label, toks, app.Cfg.MaxKeywordLen)

	switch app.Cfg.Format {
	case "json":
		return writeTokensJSON(w, label, toks)
	default:
		return writeTokensText(w, label, toks)
	}
}

// warnOverlongIdentifiers logs identifier tokens longer than maxLen. At
// the default of 32 this is the point past which the dictionary
// (internal/keyword) gives up on keyword lookup outright; other values
// change only which identifiers are logged, not keyword lookup.
func warnOverlongIdentifiers(label string, toks []lexer.Token, maxLen int) {
	if maxLen <= 0 {
		return
	}
	for _, t := range toks {
		if t.Kind == lexer.Identifier && len(t.Value) > maxLen {
			slog.Warn("identifier exceeds keyword-lookup length cap",
				"source", label, "line", t.Line, "column", t.Column, "length", len(t.Value))
		}
	}
}

func writeTokensText(w io.Writer, label string, toks []lexer.Token) error {
	fmt.Fprintf(w, "# %s\n", label)
	for _, t := range toks {
		if t.Kind == lexer.Keyword {
			fmt.Fprintf(w, "%d:%d\t%s\t%s\t%s\n", t.Line, t.Column, t.Kind, t.Value, t.KeywordID)
			continue
		}
		fmt.Fprintf(w, "%d:%d\t%s\t%s\n", t.Line, t.Column, t.Kind, t.Value)
	}
	return nil
}

// tokenJSON is the wire shape printed by --format json. Value is a
// string (not raw bytes) so the output round-trips through JSON cleanly
// even though Token.Value itself is a []byte under the hood.
type tokenJSON struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Keyword string `json:"keyword,omitempty"`
}

func writeTokensJSON(w io.Writer, label string, toks []lexer.Token) error {
	out := make([]tokenJSON, len(toks))
	for i, t := range toks {
		tj := tokenJSON{Line: t.Line, Column: t.Column, Kind: t.Kind.String(), Value: string(t.Value)}
		if t.Kind == lexer.Keyword {
			tj.Keyword = t.KeywordID.String()
		}
		out[i] = tj
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Source string      `json:"source"`
		Tokens []tokenJSON `json:"tokens"`
	}{Source: label, Tokens: out})
}
