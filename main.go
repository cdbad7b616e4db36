package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/driftfield/internal/config"
	"github.com/olivier-w/driftfield/internal/server"
	"github.com/olivier-w/driftfield/internal/ui"
	"github.com/olivier-w/driftfield/internal/window"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "driftfield",
		Short:         "A drifting particle field with a hero panel, in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runTerminal(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "window",
			Short: "Open the particle field in a desktop window",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return window.Run(ctx, cfg)
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve SVG snapshots of the field over HTTP",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return server.New(cfg).Run(ctx)
			},
		},
		newBenchCmd(&configPath),
	)
	return root
}

func runTerminal(cfg config.Config) error {
	if cfg.Terminal.LogFile != "" {
		f, err := tea.LogToFile(cfg.Terminal.LogFile, "driftfield")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model, err := ui.New(cfg, time.Now())
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
