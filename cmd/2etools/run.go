package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/antzucaro/matchr"
	"github.com/spf13/cobra"

	"github.com/leolwelter/2eTools-scraper/internal/config"
	"github.com/leolwelter/2eTools-scraper/internal/database"
	"github.com/leolwelter/2eTools-scraper/internal/enrich"
	"github.com/leolwelter/2eTools-scraper/internal/fetch"
	"github.com/leolwelter/2eTools-scraper/internal/log"
	"github.com/leolwelter/2eTools-scraper/internal/model"
	"github.com/leolwelter/2eTools-scraper/internal/pipeline"
	"github.com/leolwelter/2eTools-scraper/internal/report"
)

// ErrUnsupportedKind is returned for kinds that parse but have no extractor.
var ErrUnsupportedKind = errors.New("unsupported kind")

// Index page cache names.
const (
	traitIndexName   = "traits"
	familyRosterName = "families"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <kind> [cache-only] [output-file]",
		Short: "Scrape one kind of record and replace its collection",
		Long: `Run retrieves every detail page of a kind, assembles one record per page
and replaces the kind's collection with the result.

Kinds: creature, trait, ancestry. The kinds spell and weapon are recognised
but not supported yet.

Pages are read from the cache when present and fetched otherwise. With
cache-only no request is sent; uncached pages are skipped without shifting
the ids of the others. Records go to the SQLite database unless an output
file is given, in which case they are written as JSON lines.

Examples:
  # Scrape creatures into the database
  2etools run creature

  # Rebuild traits from the cache only
  2etools run trait cache-only

  # Write ancestries to a file and a Markdown report
  2etools run ancestry --output ancestries.jsonl --report report.md`,
		Args: cobra.RangeArgs(1, 3),
		RunE: runRunCmd,
	}

	cmd.Flags().Bool("cache-only", false,
		"Never fetch; uncached pages are skipped")
	cmd.Flags().StringP("output", "o", "",
		"Write records to this JSON lines file instead of the database")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .2etools in current or home directory)")
	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")
	cmd.Flags().String("cache-dir", "",
		"Page cache directory (default: XDG cache directory)")
	cmd.Flags().StringP("report", "r", "",
		"Write a Markdown run report to this file")
	cmd.Flags().Int("concurrency", 0,
		"Pages fetched at once (default from configuration)")

	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScrape(ctx, cfg, logger, cmd.OutOrStdout())
}

func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// parseArgs reads the positional arguments. The second argument is either
// the cache-only marker or the output file.
func parseArgs(args []string) (kind model.Kind, cacheOnly bool, output string, err error) {
	kind, err = model.ParseKind(args[0])
	if err != nil {
		if guess, ok := suggestKind(args[0]); ok {
			return "", false, "", fmt.Errorf("unknown kind %q (did you mean %q?)", args[0], guess)
		}
		names := make([]string, 0, len(model.Kinds()))
		for _, k := range model.Kinds() {
			names = append(names, string(k))
		}
		return "", false, "", fmt.Errorf("unknown kind %q (want one of %s)", args[0], strings.Join(names, ", "))
	}
	if !kind.Supported() {
		return "", false, "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	rest := args[1:]
	if len(rest) > 0 && isCacheOnly(rest[0]) {
		cacheOnly = true
		rest = rest[1:]
	}
	switch len(rest) {
	case 0:
	case 1:
		output = rest[0]
	default:
		return "", false, "", fmt.Errorf("unexpected argument %q", rest[1])
	}
	return kind, cacheOnly, output, nil
}

// minKindSimilarity is the Jaro-Winkler score a mistyped kind needs to be
// suggested.
const minKindSimilarity = 0.85

// suggestKind returns the supported kind closest to arg.
func suggestKind(arg string) (model.Kind, bool) {
	var best model.Kind
	var bestScore float64
	for _, k := range model.Kinds() {
		if !k.Supported() {
			continue
		}
		score := matchr.JaroWinkler(strings.ToLower(arg), string(k), false)
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	return best, bestScore >= minKindSimilarity
}

func isCacheOnly(arg string) bool {
	switch strings.ToLower(arg) {
	case "cache-only", "cache_only":
		return true
	default:
		return false
	}
}

// buildConfig layers the configuration: defaults, configuration file,
// environment, then flags and arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	kind, cacheOnly, output, err := parseArgs(args)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig()
	cfg.Kind = kind
	cfg.Verbose = getVerboseFlag(cmd)

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	explicitConfigPath := cfg.ConfigFilePath != ""
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := cfg.Apply(cf); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.ApplyEnv()

	flagCacheOnly, err := cmd.Flags().GetBool("cache-only")
	if err != nil {
		return nil, err
	}
	cfg.CacheOnly = cacheOnly || flagCacheOnly

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = output
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("db") {
		if cfg.DBDir, err = cmd.Flags().GetString("db"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("cache-dir") {
		if cfg.CacheDir, err = cmd.Flags().GetString("cache-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runScrape retrieves, assembles, enriches and stores one kind, then prints
// the run summary to out.
func runScrape(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	summary := report.NewSummary(cfg.Kind)
	summary.Collection = cfg.Kind.Collection()
	summary.CacheOnly = cfg.CacheOnly

	sink, closeSink, err := openSink(cfg, summary, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	logger.Info("starting run",
		"run_id", summary.RunID,
		"kind", cfg.Kind,
		"cache_only", cfg.CacheOnly,
		"destination", summary.Destination,
	)

	fetcher := fetch.NewFromConfig(cfg, fetch.WithLogger(logger))
	pages, err := fetcher.Pages(ctx, cfg.Kind, cfg.CacheOnly)
	if err != nil {
		return fmt.Errorf("failed to retrieve pages: %w", err)
	}

	docs, err := scrape(ctx, cfg, fetcher, pages, summary, logger)
	if err != nil {
		return err
	}

	if err := writeCollection(ctx, sink, docs, summary); err != nil {
		return err
	}
	logger.Info("collection written",
		"collection", summary.Collection,
		"records", len(docs),
	)

	summary.Finish()
	return writeReports(cfg, summary, out)
}

// openSink returns the database store, or a file sink when an output file
// is configured.
func openSink(cfg *config.Config, summary *report.Summary, logger *slog.Logger) (database.Sink, func(), error) {
	if cfg.OutputFile != "" {
		sink := database.NewFileSink(cfg.OutputFile)
		summary.Destination = sink.Path()
		return sink, func() {}, nil
	}

	opts := database.DefaultOptions()
	opts.RunID = summary.RunID
	opts.Logger = logger
	store, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	summary.Destination = store.Path()
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}, nil
}

// writeCollection hands docs to sink. A database sink also records in the
// summary how the collection changed.
func writeCollection(ctx context.Context, sink database.Sink, docs []model.Document, summary *report.Summary) error {
	store, isStore := sink.(*database.Store)
	var before map[int]string
	if isStore {
		var err error
		if before, err = store.Snapshot(ctx, summary.Collection); err != nil {
			return err
		}
	}

	if err := sink.Write(ctx, docs, summary.Collection, model.IndexField); err != nil {
		return fmt.Errorf("failed to write %s: %w", summary.Collection, err)
	}

	if isStore {
		after, err := store.Snapshot(ctx, summary.Collection)
		if err != nil {
			return err
		}
		changes := database.CompareDigests(before, after)
		summary.Changes = &changes
	}
	return nil
}

// scrape assembles the records of cfg.Kind and converts them to documents.
func scrape(ctx context.Context, cfg *config.Config, fetcher *fetch.Fetcher, pages []fetch.Page, summary *report.Summary, logger *slog.Logger) ([]model.Document, error) {
	opt := pipeline.WithLogger(logger)

	switch cfg.Kind {
	case model.KindCreature:
		creatures, err := process(ctx, pipeline.NewCreatureAssembler(opt), pages, summary, logger)
		if err != nil {
			return nil, err
		}
		enrichFamilies(ctx, cfg, fetcher, creatures, summary, logger)
		return model.ToDocuments(creatures)

	case model.KindTrait:
		traits, err := process(ctx, pipeline.NewTraitAssembler(opt), pages, summary, logger)
		if err != nil {
			return nil, err
		}
		enrichTraitGroups(ctx, cfg, fetcher, traits, summary, logger)
		return model.ToDocuments(traits)

	case model.KindAncestry:
		src, _ := cfg.Source()
		ancestries, err := process(ctx, pipeline.NewAncestryAssembler(src.PageURL, opt), pages, summary, logger)
		if err != nil {
			return nil, err
		}
		return model.ToDocuments(ancestries)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, cfg.Kind)
	}
}

func process[R model.Record](ctx context.Context, assemble pipeline.Assembler[R], pages []fetch.Page, summary *report.Summary, logger *slog.Logger) ([]R, error) {
	bp := pipeline.NewBatchProcessor(assemble, pipeline.WithLogger(logger))
	result, err := bp.ProcessBatch(ctx, fetch.Bodies(pages))
	if err != nil {
		return nil, err
	}
	report.Record(summary, len(pages), result)
	return result.Records, nil
}

// enrichTraitGroups fills trait groups from the trait index. Traits keep an
// empty group list when the index is unavailable.
func enrichTraitGroups(ctx context.Context, cfg *config.Config, fetcher *fetch.Fetcher, traits []*model.Trait, summary *report.Summary, logger *slog.Logger) {
	index, err := fetcher.Index(ctx, traitIndexName, cfg.TraitIndexURL)
	if err == nil {
		err = enrich.TraitGroups(index, traits)
	}
	if err != nil {
		logger.Warn("trait groups not filled", "error", err)
		summary.Warn(fmt.Sprintf("trait groups not filled: %v", log.Redact(err.Error())))
	}
}

// enrichFamilies fills creature families from the family roster. Creatures
// keep the default family when the roster is unavailable.
func enrichFamilies(ctx context.Context, cfg *config.Config, fetcher *fetch.Fetcher, creatures []*model.Creature, summary *report.Summary, logger *slog.Logger) {
	roster, err := fetcher.Index(ctx, familyRosterName, cfg.FamilyRosterURL)
	var table map[string]string
	if err == nil {
		table, err = enrich.Families(roster)
	}
	if err != nil {
		logger.Warn("creature families not filled", "error", err)
		summary.Warn(fmt.Sprintf("creature families not filled: %v", log.Redact(err.Error())))
		return
	}
	enrich.ApplyFamilies(creatures, table)
}

// writeReports prints the text summary to out and, when configured, writes
// the Markdown report file.
func writeReports(cfg *config.Config, summary *report.Summary, out io.Writer) error {
	writers := []report.Writer{report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))}

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close() //nolint:errcheck // write errors are reported by Write
		writers = append(writers, report.NewMarkdownWriter(f))
	}

	if _, err := report.NewMultiWriter(writers...).Write(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
