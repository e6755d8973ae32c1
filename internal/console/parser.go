package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sandevgo/tarictl/internal/core"
)

// feePerGram is the flat fee attached to every send-tari transaction.
const feePerGram = core.MicroTari(25)

const sendMessage = "coinbase reward from mining"

// TaskRunner executes a detached unit of work. The submitter never observes
// the unit's completion, result, or error.
type TaskRunner interface {
	Submit(fn func())
}

// Deps is the capability bundle a Parser is built from. Every handle refers
// to an out-of-core actor; the console creates none of them.
type Deps struct {
	Identity    core.NodeIdentity
	Peers       core.PeerDirectory
	Connections core.ConnectionRegistry
	Wallet      core.OutputManagerService
	Node        core.NodeService
	Transaction core.TransactionService
	Shutdown    *core.Flag
	Mining      *core.Flag
	Runner      TaskRunner
	Hinter      Hinter
	Out         io.Writer
	Logger      zerolog.Logger
}

// Parser turns one line of operator input into a command dispatch. A single
// caller drives HandleCommand; handlers that need a backend submit a
// detached task and return immediately.
type Parser struct {
	identity  core.NodeIdentity
	peers     core.PeerDirectory
	conns     core.ConnectionRegistry
	wallet    core.OutputManagerService
	node      core.NodeService
	txService core.TransactionService
	shutdown  *core.Flag
	mining    *core.Flag
	runner    TaskRunner
	completer *Completer
	hinter    Hinter
	out       io.Writer
	log       zerolog.Logger
}

func NewParser(deps Deps) *Parser {
	if deps.Hinter == nil {
		deps.Hinter = NopHinter()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	return &Parser{
		identity:  deps.Identity,
		peers:     deps.Peers,
		conns:     deps.Connections,
		wallet:    deps.Wallet,
		node:      deps.Node,
		txService: deps.Transaction,
		shutdown:  deps.Shutdown,
		mining:    deps.Mining,
		runner:    deps.Runner,
		completer: NewCompleter(),
		hinter:    deps.Hinter,
		out:       deps.Out,
		log:       deps.Logger,
	}
}

// Completer exposes the vocabulary completer for the hosting loop.
func (p *Parser) Completer() *Completer {
	return p.completer
}

// Hint delegates to the injected history hinter.
func (p *Parser) Hint(line string) (string, bool) {
	return p.hinter.Hint(line)
}

// HandleCommand parses one raw line and dispatches it to exactly one
// handler. On a parse failure it prints a hint and returns with no other
// side effects. It returns as soon as the handler returns control.
func (p *Parser) HandleCommand(ctx context.Context, line string) {
	fields := strings.Fields(line)
	token := ""
	if len(fields) > 0 {
		token = fields[0]
	}
	cmd, err := ParseCommand(token)
	if err != nil {
		fmt.Fprintf(p.out, "%s is not a valid command, please enter a valid command\n", line)
		fmt.Fprintln(p.out, "Enter help or press tab for available commands")
		return
	}
	p.processCommand(ctx, cmd, fields[1:])
}

func (p *Parser) processCommand(ctx context.Context, cmd Command, args []string) {
	switch cmd {
	case Help:
		p.printHelp(args)
	case GetBalance:
		p.processGetBalance(ctx)
	case SendTari:
		p.processSendTari(ctx, args)
	case GetChainMetadata:
		p.processGetChainMetadata(ctx)
	case ListPeers:
		p.processListPeers(ctx)
	case ListConnections:
		p.processListConnections(ctx)
	case ListHeaders:
		p.processListHeaders(ctx, args)
	case ToggleMining:
		p.processToggleMining()
	case Whoami:
		p.processWhoami()
	case Quit, Exit:
		fmt.Fprintln(p.out, "Shutting down...")
		p.log.Info().Msg("termination signal received from operator, shutting node down")
		p.shutdown.Store(true)
	}
}

func (p *Parser) printHelp(args []string) {
	topic := ""
	if len(args) > 0 {
		topic = args[0]
	}
	helpFor, err := ParseCommand(topic)
	if err != nil {
		helpFor = Help
	}
	switch helpFor {
	case Help:
		fmt.Fprintln(p.out, "Available commands are: ")
		fmt.Fprintln(p.out, strings.Join(Tokens(), ", "))
	case GetBalance:
		fmt.Fprintln(p.out, "Gets your balance")
	case SendTari:
		fmt.Fprintln(p.out, "Sends an amount of Tari to a public key, call this command via:")
		fmt.Fprintln(p.out, sendTariUsage)
	case GetChainMetadata:
		fmt.Fprintln(p.out, "Gets your base node chain metadata")
	case ListPeers:
		fmt.Fprintln(p.out, "Lists the peers that this node knows about")
	case ListConnections:
		fmt.Fprintln(p.out, "Lists the peer connections currently held by this node")
	case ListHeaders:
		fmt.Fprintln(p.out, "Lists the last headers of the current chain")
	case ToggleMining:
		fmt.Fprintln(p.out, "Enable or disable the miner on this node, calling this command will toggle the state")
	case Whoami:
		fmt.Fprintln(p.out, "Display identity information about this node, including: public key, node ID and the public address")
	case Quit, Exit:
		fmt.Fprintln(p.out, "Exits the base node")
	}
}

func (p *Parser) processGetBalance(ctx context.Context) {
	handler := p.wallet
	out, log := p.out, p.log
	// The unit runs to completion even if the session context is cancelled.
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		balance, err := handler.GetBalance(ctx)
		if err != nil {
			fmt.Fprintln(out, "Something went wrong")
			log.Warn().Err(err).Msg("error communicating with wallet")
			return
		}
		fmt.Fprintf(out, "Balances:\n%s\n", balance)
	})
}

func (p *Parser) processGetChainMetadata(ctx context.Context) {
	handler := p.node
	out, log := p.out, p.log
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		meta, err := handler.GetMetadata(ctx)
		if err != nil {
			fmt.Fprintf(out, "Failed to retrieve chain metadata: %v\n", err)
			log.Warn().Err(err).Msg("error communicating with base node")
			return
		}
		fmt.Fprintf(out, "Current chain metadata is:\n%s\n", meta)
	})
}

func (p *Parser) processListPeers(ctx context.Context) {
	directory := p.peers
	out, log := p.out, p.log
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		peers, err := directory.Peers(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not read peers")
			return
		}
		var sb strings.Builder
		for _, peer := range peers {
			sb.WriteString("\n")
			sb.WriteString(peer.String())
		}
		fmt.Fprintln(out, sb.String())
		fmt.Fprintf(out, "%d peer(s) known by this node\n", len(peers))
	})
}

func (p *Parser) processListConnections(ctx context.Context) {
	registry := p.conns
	out, log := p.out, p.log
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		conns, err := registry.ActiveConnections(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not list connections")
			return
		}
		if len(conns) == 0 {
			fmt.Fprintln(out, "No active peer connections.")
			return
		}
		var sb strings.Builder
		for _, conn := range conns {
			sb.WriteString("\n")
			sb.WriteString(conn.String())
		}
		fmt.Fprintln(out, sb.String())
		fmt.Fprintf(out, "%d active connection(s)\n", len(conns))
	})
}

func (p *Parser) processListHeaders(ctx context.Context, args []string) {
	// Absence or an unparsable count falls back to 1.
	count := uint64(1)
	if len(args) > 0 {
		if n, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			count = n
		}
	}
	handler := p.node
	out, log := p.out, p.log
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		// A metadata failure is reported but not fatal: the height falls
		// back to 0 and the header query still runs.
		maxHeight := uint64(0)
		meta, err := handler.GetMetadata(ctx)
		switch {
		case err != nil:
			fmt.Fprintf(out, "Failed to retrieve chain height: %v\n", err)
			log.Warn().Err(err).Msg("error communicating with base node")
		case meta.Height != nil:
			maxHeight = *meta.Height
		}

		capacity := count
		if capacity > maxHeight+1 {
			capacity = maxHeight + 1
		}
		heights := make([]uint64, 0, capacity)
		for h := maxHeight; uint64(len(heights)) < count; h-- {
			heights = append(heights, h)
			if h == 0 {
				break
			}
		}

		headers, err := handler.GetHeaders(ctx, heights)
		if err != nil {
			fmt.Fprintf(out, "Failed to retrieve headers: %v\n", err)
			log.Warn().Err(err).Msg("error communicating with base node")
			return
		}
		var sb strings.Builder
		for _, header := range headers {
			sb.WriteString("\n\n")
			sb.WriteString(header.String())
		}
		fmt.Fprintln(out, sb.String())
	})
}

func (p *Parser) processToggleMining() {
	newState := p.mining.Toggle()
	p.log.Debug().Bool("enabled", newState).Msg("mining state switched")
}

func (p *Parser) processWhoami() {
	fmt.Fprintln(p.out, p.identity)
}

const sendTariUsage = "send-tari [amount of tari to send] [public key to send to]"

func (p *Parser) processSendTari(ctx context.Context, args []string) {
	// The full command is exactly three tokens: command, amount, destination.
	if len(args) != 2 {
		fmt.Fprintln(p.out, "Command entered incorrectly, please use the following format: ")
		fmt.Fprintln(p.out, sendTariUsage)
		return
	}
	rawAmount, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(p.out, "please enter a valid amount of tari")
		return
	}
	amount := core.MicroTari(rawAmount)
	dest, err := core.PublicKeyFromString(args[1])
	if err != nil {
		fmt.Fprintln(p.out, "please enter a valid destination public key")
		return
	}

	handler := p.txService
	out, log := p.out, p.log
	ctx = context.WithoutCancel(ctx)
	p.runner.Submit(func() {
		if _, err := handler.SendTransaction(ctx, dest, amount, feePerGram, sendMessage); err != nil {
			fmt.Fprintln(out, "Something went wrong sending funds")
			fmt.Fprintf(out, "%v\n", err)
			log.Warn().Err(err).Msg("error communicating with wallet")
			return
		}
		fmt.Fprintf(out, "Send %s Tari to %s\n", amount, dest)
	})
}
