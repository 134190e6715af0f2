package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/sublsync/cmd/sublsync"
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := sublsync.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Close()

	if err != nil {
		if !sublsync.RenderStructuredError(rootCmd, err) {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}

		if verbosity, _ := rootCmd.PersistentFlags().GetCount("verbose"); verbosity >= 3 {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, errors.Verbose(err))
		}

		os.Exit(1)
	}
}
