package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/viant/tagmerge/config"
	"github.com/viant/tagmerge/merger"
	"github.com/viant/tagmerge/source"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tagmerge", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tagmerge [options] [--] <file>...\n\n")
		fmt.Fprintf(stderr, "Merge '<identifier> <tag>' files into one table keyed by identifier\n")
		fmt.Fprintf(stderr, "Use -- before file names starting with '-'\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}
	debug := flags.Bool("debug", false, "Display debug logs")
	prettyLogs := flags.Bool("prettyLogs", false, "Display pretty logs")
	configFilename := flags.String("config", "", "Config filename")
	format := flags.String("format", "", "Output format: tsv or json")
	output := flags.String("out", "", "Output URL, stdout when empty")
	digest := flags.Bool("digest", false, "Log a digest of the output")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}

	var logWriter io.Writer = stderr
	if *prettyLogs {
		logWriter = zerolog.ConsoleWriter{Out: stderr}
	}
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(logWriter).Level(level).With().Timestamp().Logger()

	cfg, err := config.Load(*configFilename)
	if err != nil {
		log.Error().Err(err).Msg("Invalid config")
		return 1
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *output != "" {
		cfg.Output = *output
	}
	if err = cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid config")
		return 1
	}

	srv := source.New(nil, log)
	table := merger.NewTable()
	if err = srv.LoadAll(ctx, table, flags.Args()...); err != nil {
		log.Error().Err(err).Msg("Failed to merge sources")
		return 1
	}

	data, err := encode(table, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode table")
		return 1
	}
	if *digest {
		log.Info().
			Str("digest", fmt.Sprintf("%016x", merger.Digest(data))).
			Int("columns", len(table.Columns)).
			Int("rows", len(table.IDs())).
			Msg("Merged table")
	}

	if cfg.Output != "" {
		if err = srv.Store(ctx, cfg.Output, data); err != nil {
			log.Error().Err(err).Msg("Failed to store output")
			return 1
		}
		return 0
	}
	if _, err = stdout.Write(data); err != nil {
		log.Error().Err(err).Msg("Failed to write output")
		return 1
	}
	return 0
}

func encode(table *merger.Table, cfg *config.Config) ([]byte, error) {
	if cfg.Format == config.FormatJSON {
		return table.EncodeJSON(cfg.Options()...)
	}
	buf := &bytes.Buffer{}
	if err := merger.Encode(buf, table.Render(cfg.Options()...)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
