package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/tarictl/internal/config"
	"github.com/sandevgo/tarictl/internal/node"
	"github.com/sandevgo/tarictl/pkg/env"
	"github.com/sandevgo/tarictl/pkg/log"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a node identity and write the runtime .env",
	Long:  `Generates a fresh node identity and persists it, together with the current configuration, to the runtime directory's .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		appCfg := config.NewAppConfig(ctx)
		if appCfg.PublicKey != "" {
			logger.Info().Msg("an identity is already configured, leaving it untouched")
			return nil
		}

		identity, err := node.NewIdentity("", "", appCfg.PublicAddress)
		if err != nil {
			return err
		}
		appCfg.PublicKey = identity.PublicKey.Hex()
		appCfg.NodeID = identity.NodeID

		content, err := env.Marshal(appCfg)
		if err != nil {
			return err
		}
		envPath := filepath.Join(runtimePath, ".env")
		if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", envPath, err)
		}

		fmt.Println(identity)
		fmt.Printf("Emoji ID: %s\n", identity.PublicKey.Emoji())
		logger.Info().Str("path", envPath).Msg("wrote node identity")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
