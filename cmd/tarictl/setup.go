package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tarictl/internal/config"
	"github.com/sandevgo/tarictl/internal/console"
	"github.com/sandevgo/tarictl/internal/core"
	"github.com/sandevgo/tarictl/internal/node"
	"github.com/sandevgo/tarictl/internal/storage/sqlite"
	"github.com/sandevgo/tarictl/internal/transport/cli"
	"github.com/sandevgo/tarictl/pkg/log"
	"github.com/sandevgo/tarictl/pkg/srv"
	"github.com/sandevgo/tarictl/pkg/task"
)

// devBalance funds the stand-alone wallet so balance and send commands have
// something to work with.
var devBalance = core.Balance{Available: 10_000_000}

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, chainStore, peerStore, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// 3. Identity
	identity, err := node.NewIdentity(appCfg.PublicKey, appCfg.NodeID, appCfg.PublicAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build node identity")
	}
	if appCfg.PublicKey == "" {
		logger.Info().Str("node_id", identity.NodeID).Msg("no configured identity, generated an ephemeral one; run `tarictl init` to persist one")
	}

	// 4. Backend bundle
	wallet := node.NewWallet(devBalance)
	chain := node.NewChain(chainStore)
	directory := node.NewDirectory(peerStore)
	registry := node.NewRegistry()

	// 5. Session flags and the detached-task executor
	shutdownFlag := core.NewFlag(false)
	miningFlag := core.NewFlag(appCfg.MiningEnabled)
	runner := task.NewRunner(appCfg.TaskWorkers)

	// 6. Console parser
	parser := console.NewParser(console.Deps{
		Identity:    identity,
		Peers:       directory,
		Connections: registry,
		Wallet:      wallet,
		Node:        chain,
		Transaction: wallet,
		Shutdown:    shutdownFlag,
		Mining:      miningFlag,
		Runner:      runner,
		Out:         os.Stdout,
		Logger:      *logger,
	})

	// 7. Transport
	operatorConsole, err := cli.NewConsole(appCfg, parser, shutdownFlag, stop)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize console")
	}
	services = append(services, operatorConsole)

	// Shutdown order: stop input, drain detached work, close the database.
	services = append(services, srv.NewCleanup(func() error {
		runner.Close()
		return nil
	}))
	services = append(services, srv.NewCleanup(db.Close))

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, *sqlite.ChainStore, *sqlite.PeerStore, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, nil, err
	}

	chainStore := sqlite.NewChainStore(db)
	if err := chainStore.EnsureGenesis(ctx); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	return db, chainStore, sqlite.NewPeerStore(db), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
