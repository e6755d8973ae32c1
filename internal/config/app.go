package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tarictl/pkg/log"
)

type AppConfig struct {
	RuntimePath  string `env:"TARICTL_RUNTIME_PATH" envDefault:".tarictl"`
	DatabaseFile string `env:"TARICTL_DB_FILE" envDefault:"chain.db"`
	Prompt       string `env:"TARICTL_PROMPT" envDefault:">> "`

	// TaskWorkers sizes the detached-task executor pool.
	TaskWorkers int `env:"TARICTL_TASK_WORKERS" envDefault:"4"`

	// Node identity. An empty public key makes the node generate an
	// ephemeral one at startup; `tarictl init` persists a stable identity.
	PublicKey     string `env:"TARICTL_PUBLIC_KEY"`
	NodeID        string `env:"TARICTL_NODE_ID"`
	PublicAddress string `env:"TARICTL_PUBLIC_ADDRESS" envDefault:"/ip4/127.0.0.1/tcp/18189"`

	MiningEnabled bool `env:"TARICTL_MINING_ENABLED" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if !filepath.IsAbs(c.RuntimePath) {
		home, _ := os.UserHomeDir()
		c.RuntimePath = filepath.Join(home, c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, c.DatabaseFile)
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "command_history")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
