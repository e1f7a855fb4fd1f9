// Package command implements sqllex's cobra command tree.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/destrex271/DB25-sql-tokenizer/cmd/sqllex/internal/config"
)

// App bundles the state shared across sqllex's subcommands.
type App struct {
	FS  afero.Fs
	Cfg config.Config
	vp  *viper.Viper
}

// NewRootCommand builds the root "sqllex" command and wires its
// subcommands under app.
func NewRootCommand() *cobra.Command {
	app := &App{FS: afero.NewOsFs()}

	root := &cobra.Command{
		Use:           "sqllex",
		Short:         "Tokenize SQL text using a zero-allocation scanner",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, vp, err := config.Load(cmd.Flags(), []string{".", "$HOME/.sqllex"})
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			app.Cfg = cfg
			app.vp = vp

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			})))

			config.Watch(vp, func(updated config.Config) {
				app.Cfg = updated
				slog.Info("config reloaded", "format", updated.Format, "log_level", updated.LogLevel)
			})
			return nil
		},
	}

	root.PersistentFlags().String("format", config.Default().Format, "output format: text or json")
	root.PersistentFlags().String("log-level", config.Default().LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().Int("max-keyword-len", config.Default().MaxKeywordLen, "identifier length above which tokenize logs a warning")

	root.AddCommand(newTokenizeCommand(app))
	root.AddCommand(newBenchCommand(app))

	return root
}
