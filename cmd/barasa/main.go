// Command barasa generates Barasa, the Indonesian SentiWordNet, from
// SentiWordNet and WordNet Bahasa.
//
//	barasa -g [-v | -q] [-config barasa.yaml] [-db barasa.db]
//
// Run without arguments it prints its usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/neocl/barasa"
	"github.com/neocl/barasa/internal/config"
	"github.com/neocl/barasa/internal/logging"
	"github.com/neocl/barasa/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	gen, verbose, quiet bool

	configFile, envFile string
	senti, wordnet      string
	output, db          string
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("barasa", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&o.gen, "g", false, "shorthand for -gen")
	fs.BoolVar(&o.gen, "gen", false, "generate Barasa")
	fs.BoolVar(&o.verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&o.verbose, "verbose", false, "log debug detail (excludes -quiet)")
	fs.BoolVar(&o.quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&o.quiet, "quiet", false, "log warnings and errors only (excludes -verbose)")

	fs.StringVar(&o.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&o.envFile, "env", ".env", "dotenv file with BARASA_* overrides")
	fs.StringVar(&o.senti, "sentiwordnet", "", "SentiWordNet file (default "+barasa.DefaultSentiWordNetFile+")")
	fs.StringVar(&o.wordnet, "wordnet", "", "WordNet Bahasa file (default "+barasa.DefaultWordNetBahasaFile+")")
	fs.StringVar(&o.output, "output", "", "Barasa output file (default "+barasa.DefaultBarasaFile+")")
	fs.StringVar(&o.db, "db", "", "also export the records to this SQLite database")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Toolkit for creating Barasa.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Usage: barasa [-g] [-v | -q] [flags]")
		fs.PrintDefaults()
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet(&o, stderr)

	if len(args) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if o.verbose && o.quiet {
		fmt.Fprintln(stderr, "barasa: -verbose and -quiet are mutually exclusive")
		fs.Usage()
		return 2
	}
	if !o.gen {
		return 0
	}

	cfg, err := config.Load(o.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "barasa: %v\n", err)
		return 1
	}
	if err := cfg.ApplyEnv(o.envFile); err != nil {
		fmt.Fprintf(stderr, "barasa: %v\n", err)
		return 1
	}
	o.override(cfg)

	log, err := logging.New(stderr, logging.Level(o.verbose, o.quiet), cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "barasa: log file: %v\n", err)
		return 1
	}
	if err := generate(context.Background(), cfg, log); err != nil {
		logError(log, err)
		return 1
	}
	return 0
}

// override applies path flags given on the command line.
func (o *options) override(cfg *config.Config) {
	if o.senti != "" {
		cfg.SentiWordNet = o.senti
	}
	if o.wordnet != "" {
		cfg.WordNetBahasa = o.wordnet
	}
	if o.output != "" {
		cfg.Barasa = o.output
	}
	if o.db != "" {
		cfg.Database = o.db
	}
}

func generate(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	p := cfg.Paths()
	log.Info("generating Barasa",
		"sentiwordnet", p.SentiWordNet, "wordnet_bahasa", p.WordNetBahasa, "output", p.Barasa)

	records, stats, err := barasa.Generate(p)
	if err != nil {
		return err
	}
	log.Debug("join done", "rows", stats.Rows, "matched", stats.Matched, "skipped", stats.Skipped)
	log.Info("wrote Barasa", "output", p.Barasa, "records", len(records))

	if cfg.Database == "" {
		return nil
	}
	s, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Replace(ctx, records); err != nil {
		return fmt.Errorf("export to %s: %w", cfg.Database, err)
	}
	log.Info("exported records", "database", cfg.Database, "records", len(records))
	return nil
}

func logError(log *slog.Logger, err error) {
	var (
		le *barasa.LineError
		fe *barasa.FileError
	)
	switch {
	case errors.As(err, &le):
		log.Error("malformed line", "file", le.Path, "line", le.Line, "fields", le.Got, "want", le.Want)
	case errors.As(err, &fe):
		log.Error("file error", "op", fe.Op, "file", fe.Path, "err", fe.Err)
	default:
		log.Error("generation failed", "err", err)
	}
}
