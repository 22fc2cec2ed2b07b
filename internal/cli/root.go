package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/faizmokh/amigos/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	a := &app{}
	return newRootCommand(ctx, a)
}

func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amigos",
		Short: "Keep track of your friends, the things worth remembering about them, and plans you make together.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return runList(ctx, a, cmd)
			}

			store, err := a.open(ctx)
			if err != nil {
				return err
			}
			m := ui.NewModel(ctx, store, a.logger())
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.flags.DataDir, "data-dir", "", "Directory holding amigos data (default: $AMIGOS_HOME or ~/.amigos)")
	flags.StringVar(&a.flags.Storage, "storage", "", "Storage backend: markdown|sqlite")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(
		newAddCommand(ctx, a),
		newListCommand(ctx, a),
		newFindCommand(ctx, a),
		newViewCommand(ctx, a),
		newAddLogCommand(ctx, a),
		newAddEventCommand(ctx, a),
		newEventsCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	a := &app{}
	cmd := newRootCommand(ctx, a)
	err := cmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when RunE fails.
	return errors.Join(err, a.close())
}

// Main is a helper used by cmd/amigos/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
