// Package cli hosts the operator console: a readline loop that feeds raw
// lines into the console parser. Line editing, history, and completion
// rendering live here, outside the console core.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tarictl/internal/config"
	"github.com/sandevgo/tarictl/internal/console"
	"github.com/sandevgo/tarictl/internal/core"
	"github.com/sandevgo/tarictl/pkg/log"
)

type Console struct {
	cfg      *config.AppConfig
	parser   *console.Parser
	shutdown *core.Flag
	stop     context.CancelFunc
	rl       *readline.Instance
}

func NewConsole(cfg *config.AppConfig, parser *console.Parser, shutdown *core.Flag, stop context.CancelFunc) (*Console, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.GetHistoryPath(),
		AutoComplete:    &vocabularyCompleter{completer: parser.Completer()},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Console{
		cfg:      cfg,
		parser:   parser,
		shutdown: shutdown,
		stop:     stop,
		rl:       rl,
	}, nil
}

func (c *Console) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("operator console started, press tab for available commands")

	// New input stops once the shutdown flag is observed; detached work
	// already in flight is drained by the task runner's cleanup.
	defer c.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c.parser.HandleCommand(ctx, line)

		if c.shutdown.Load() {
			return nil
		}
	}
}

func (c *Console) Shutdown(ctx context.Context) error {
	if c.rl != nil {
		return c.rl.Close()
	}
	return nil
}

// vocabularyCompleter adapts the console's prefix completer onto readline's
// AutoCompleter contract.
type vocabularyCompleter struct {
	completer *console.Completer
}

func (v *vocabularyCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	candidates := v.completer.Complete(prefix)

	newLine := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]))
	}
	return newLine, pos
}
