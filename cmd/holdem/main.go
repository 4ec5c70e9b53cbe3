package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/holdem-showdown/internal/report"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Plain    bool             `help:"Disable colored output"`
	Eval     EvalCmd          `cmd:"" help:"Rank seven card hands"`
	Compare  CompareCmd       `cmd:"" help:"Compare two hands"`
	Showdown ShowdownCmd      `cmd:"" help:"Settle an all-in showdown into main and side pots"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate hands across many tables"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em hand evaluator and side pot engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	styles := report.DefaultStyles()
	if cli.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		styles = report.PlainStyles()
	}

	err := ctx.Run(report.New(os.Stdout, styles))
	ctx.FatalIfErrorf(err)
}

// setupSignalHandler returns a context that is cancelled on interrupt.
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
