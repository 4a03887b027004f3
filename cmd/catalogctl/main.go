package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"partscatalog/internal/apiclient"
	"partscatalog/internal/config"
)

const usage = `usage: catalogctl <command> [flags]

storefront:
  browse [-q text] [-brand name] [-category name] [-manufacturer name]
  show <id>
  categories
  order -item <productId>[:qty] [-item ...] [-email e]

admin:
  login [-email e] [-password p]
  products      list | create [flags] | edit <id> [flags] | delete [-yes] <id>
  brands        list | create [flags] | edit <id> [flags] | delete [-yes] <id>
  manufacturers list | create [flags] | edit <id> [flags] | delete [-yes] <id>
  orders
`

type app struct {
	client *apiclient.Client
	cfg    config.ClientConfig
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if apiclient.IsRetryable(err) {
			fmt.Fprintln(os.Stderr, "(network problem; try again)")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	if err := config.LoadEnvFile(); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	a := &app{
		client: apiclient.NewFromConfig(cfg),
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "browse":
		return a.browse(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "categories":
		return a.categories(ctx)
	case "order":
		return a.order(ctx, rest)
	case "orders":
		return a.orders(ctx)
	case "login":
		return a.login(ctx, rest)
	case "products", "brands", "manufacturers":
		return a.manage(ctx, cmd, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	}
	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("unknown command %q", cmd)
}
