package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sandevgo/tarictl/pkg/log"
	"github.com/sandevgo/tarictl/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the operator console",
	Long:  `Opens the chain database, wires the backend services and starts the interactive console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stopSignals()

		// The console cancels this context when the operator quits.
		ctx, stop := context.WithCancel(ctx)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting tarictl")

		services := NewServices(ctx, stop)

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("tarictl has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
