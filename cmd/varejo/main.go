// Command varejo is the console for the retail store database.
//
// Usage:
//
//	varejo [-config varejo.toml] [command]
//
// Commands:
//
//	run                     interactive menu (default)
//	migrate up|down|version manage the schema
//	seed <file.yaml>        load fixtures from a YAML document
//	fake [-seed n] [-load] <rows>
//	                        generate fake fixtures, printed as YAML or loaded
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	"github.com/hlubek/gestao-varejo/config"
	"github.com/hlubek/gestao-varejo/console"
	"github.com/hlubek/gestao-varejo/fixtures"
	"github.com/hlubek/gestao-varejo/logger"
	"github.com/hlubek/gestao-varejo/store"
)

var errUsage = errors.New("invalid usage")

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the configuration file (default: ./varejo.toml)")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, flag.Args(), os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			printUsage()
			os.Exit(2)
		}
		log.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: varejo [-config file] [command]

Commands:
  run                      interactive menu (default)
  migrate up|down|version  manage the schema
  seed <file.yaml>         load fixtures from a YAML document
  fake [-seed n] [-load] <rows>
                           generate fake fixtures, printed as YAML or loaded

Flags:
`)
	flag.PrintDefaults()
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, args []string, in io.Reader, out io.Writer) error {
	command := "run"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	log.Info("varejo started",
		zap.String("command", command),
		zap.String("backend", cfg.Store.Backend),
		zap.String("env", cfg.App.Env),
	)

	switch command {
	case "run":
		return withBackend(ctx, cfg, log, func(b *store.Backend) error {
			prompt := console.NewPrompter(in, out)
			app := console.NewApp(prompt, bindEntities(b, prompt).handlers, b.Reports(), log)
			return app.Run(ctx)
		})

	case "migrate":
		if len(args) != 1 {
			return fmt.Errorf("%w: migrate needs one of up, down or version", errUsage)
		}
		return withBackend(ctx, cfg, log, func(b *store.Backend) error {
			return migrate(ctx, b, args[0], out)
		})

	case "seed":
		if len(args) != 1 {
			return fmt.Errorf("%w: seed needs a fixture file", errUsage)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := fixtures.Parse(f)
		if err != nil {
			return err
		}
		return withBackend(ctx, cfg, log, func(b *store.Backend) error {
			return load(ctx, b, log, doc, out)
		})

	case "fake":
		return fake(ctx, cfg, log, args, out)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func withBackend(ctx context.Context, cfg *config.Config, log *zap.Logger, fn func(b *store.Backend) error) error {
	b, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	log.Info("store opened", zap.String("backend", b.Name()))
	defer func() {
		if err := b.Close(ctx); err != nil {
			log.Warn("closing store", zap.Error(err))
		}
	}()
	return fn(b)
}

func migrate(ctx context.Context, b *store.Backend, direction string, out io.Writer) error {
	switch direction {
	case "up":
		return b.MigrateUp(ctx)
	case "down":
		return b.MigrateDown(ctx)
	case "version":
		version, dirty, err := b.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			fmt.Fprintln(out, "No migrations applied")
			return nil
		}
		fmt.Fprintf(out, "Version %d", version)
		if dirty {
			fmt.Fprint(out, " (dirty)")
		}
		fmt.Fprintln(out)
		return nil
	default:
		return fmt.Errorf("%w: unknown migrate direction %q", errUsage, direction)
	}
}

func load(ctx context.Context, b *store.Backend, log *zap.Logger, doc fixtures.Document, out io.Writer) error {
	loader := fixtures.NewLoader(log, bindEntities(b, nil).tables...)
	counts, err := loader.Load(ctx, doc)
	if err != nil {
		return err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(out, "Loaded %d rows into %d tables\n", total, len(counts))
	return nil
}

func fake(ctx context.Context, cfg *config.Config, log *zap.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Uint64("seed", 0, "random seed, 0 picks one")
	loadIt := fs.Bool("load", false, "load the rows instead of printing them")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: fake needs a row count", errUsage)
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || n < 1 {
		return fmt.Errorf("%w: invalid row count %q", errUsage, fs.Arg(0))
	}

	doc, err := fixtures.Fake(*seed, n)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if !*loadIt {
		return doc.Encode(out)
	}
	return withBackend(ctx, cfg, log, func(b *store.Backend) error {
		return load(ctx, b, log, doc, out)
	})
}
