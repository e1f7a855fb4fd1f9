package command

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestBenchCommandReportsThroughput(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, afero.WriteFile(app.FS, "q.sql", []byte("SELECT a FROM b WHERE a = 1"), 0o644))

	cmd := newBenchCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"q.sql", "--iterations", "5"})
	require.NoError(t, cmd.Execute())

	got := out.String()
	require.Contains(t, got, "file: q.sql")
	require.Contains(t, got, "iterations: 5")
	require.Contains(t, got, "simd_level:")
}

func TestBenchCommandMissingFile(t *testing.T) {
	app := newTestApp(t)
	cmd := newBenchCommand(app)
	cmd.SetArgs([]string{"missing.sql"})
	require.Error(t, cmd.Execute())
}
