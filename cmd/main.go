package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wgomg/ordertrigger/internal/automation"
	"github.com/wgomg/ordertrigger/internal/config"
	"github.com/wgomg/ordertrigger/internal/server"
	"github.com/wgomg/ordertrigger/internal/ui"
	"github.com/wgomg/ordertrigger/internal/utils"
	"github.com/wgomg/ordertrigger/internal/webhook"
)

const version = "0.1.0"

type app struct {
	cfg    *config.Config
	logger *utils.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		log := utils.NewLogger("error", false)
		log.Fatal("ordertrigger: ", err)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	var sheetID, webhookURL string

	cmd := &cobra.Command{
		Use:           "ordertrigger",
		Short:         "Trigger the order automation webhook for a spreadsheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if cmd.Flags().Changed("sheet") {
				cfg.Sheet.ID = sheetID
			}
			if cmd.Flags().Changed("webhook-url") {
				cfg.Webhook.URL = webhookURL
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			a.cfg = cfg
			a.logger = utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)
			a.logger.Debug(nil, "Environment: %s, log level: %s", cfg.App.Env, cfg.App.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&sheetID, "sheet", "", "active spreadsheet id (overrides SHEET_ID)")
	cmd.PersistentFlags().StringVar(&webhookURL, "webhook-url", "", "order automation webhook (overrides WEBHOOK_URL)")

	cmd.AddCommand(addOpenCommand(a))
	cmd.AddCommand(addProcessCommand(a))
	cmd.AddCommand(addServeCommand(a))
	cmd.AddCommand(addVersionCommand())

	return cmd
}

func (a *app) newInvoker(notifier ui.Notifier) (*automation.Invoker, error) {
	client, err := webhook.NewClient(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}

	return automation.NewInvoker(client, automation.StaticSheet(a.cfg.Sheet.ID), notifier, a.logger), nil
}

func addOpenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the spreadsheet menu and pick actions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

			inv, err := a.newInvoker(console)
			if err != nil {
				return err
			}

			automation.OnOpen(console, inv)
			if err := console.Loop(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func addProcessCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Run \"" + automation.ProcessItemName + "\" once",
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

			inv, err := a.newInvoker(console)
			if err != nil {
				return err
			}

			outcome := inv.Trigger(cmd.Context())
			if outcome.AlertErr != nil {
				return outcome.AlertErr
			}
			if outcome.Failed() {
				return fmt.Errorf("automation failed: %w", outcome.Err)
			}
			return nil
		},
	}
}

func addServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local webhook receiver for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Receiver.Port = port
			}

			return server.Run(cmd.Context(), a.cfg, a.logger, server.NewAckProcessor(a.logger))
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides RECEIVER_PORT)")
	return cmd
}

func addVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
