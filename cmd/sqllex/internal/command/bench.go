package command

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/destrex271/DB25-sql-tokenizer/lexer"
)

func newBenchCommand(app *App) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Measure tokenization throughput for a SQL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.FS.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			src, err := io.ReadAll(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			level := lexer.NewString("").SIMDLevel()

			start := time.Now()
			var total int
			for i := 0; i < iterations; i++ {
				l := lexer.New(src)
				total += len(l.Tokenize())
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "file: %s\nbytes: %d\nsimd_level: %s\niterations: %d\ntokens_per_iteration: %d\nelapsed: %s\nbytes_per_sec: %.0f\n",
				args[0], len(src), level, iterations, total/maxInt(iterations, 1), elapsed,
				float64(len(src)*iterations)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of times to tokenize the input")
	return cmd
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
