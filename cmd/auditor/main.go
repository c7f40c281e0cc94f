// Command auditor grades MLB home-plate umpires' ball/strike calls and serves the results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/umpire-auditor/internal/config"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp(os.Stdout, os.Stderr)).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// app carries what the commands share so tests can swap the clock and outputs.
type app struct {
	out        io.Writer
	logOut     io.Writer
	now        func() time.Time
	loadConfig func() (config.Config, error)
}

func newApp(out, logOut io.Writer) *app {
	return &app{
		out:        out,
		logOut:     logOut,
		now:        time.Now,
		loadConfig: config.Load,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "auditor",
		Short:         "Grade home-plate umpire ball/strike calls",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			return os.Setenv("AUDITOR_CONFIG", configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides AUDITOR_CONFIG)")

	root.AddCommand(newRunCmd(a), newGameCmd(a), newServeCmd(a))
	return root
}
