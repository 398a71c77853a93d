package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/langsalary/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/logger"
	"github.com/fr4nk3nst1ner/langsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/langsalary/internal/stats"
	"github.com/fr4nk3nst1ner/langsalary/internal/ui"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 langsalary Usage Examples 📋")
	fmt.Println("\n1. Survey the default languages on both boards (needs SJ_KEY in the environment or .env):")
	fmt.Println("   langsalary")

	fmt.Println("\n2. Only query hh.ru, no SuperJob key required:")
	fmt.Println("   langsalary -source hh")

	fmt.Println("\n3. Compare a handful of languages on SuperJob without the banner:")
	fmt.Println("   langsalary -source superjob -keywords \"Go,Rust,Python\" -silence")

	fmt.Println("\n4. Plain numbers, no progress bar, verbose logs:")
	fmt.Println("   langsalary -plain -no-progress -debug")
	os.Exit(0)
}

// runOptions are the CLI switches that shape a run
type runOptions struct {
	Source   string // "", "hh" or "superjob"
	Plain    bool
	Progress bool
}

// board pairs a source with its aggregation settings
type board struct {
	title string
	src   scraper.Source
	opts  []stats.Option
}

func main() {
	source := flag.String("source", "", "Board to query (hh, superjob). If not specified, queries both.")
	keywords := flag.String("keywords", "", "Comma separated languages, overrides KEYWORDS")
	debug := flag.Bool("debug", false, "Enable debug logging")
	plain := flag.Bool("plain", false, "Print raw numbers without separators or colors")
	noProgress := flag.Bool("no-progress", false, "Hide the progress bar")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(os.Stderr, *silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("config load error")
	}

	level := cfg.Log.Level
	if *debug {
		level = "debug"
	}
	logger.Init(level, cfg.Log.Pretty)

	if *source != "" && !utils.IsValidSource(*source) {
		logger.L().Fatal().Str("source", *source).Msg("invalid source, must be one of: hh, superjob")
	}
	if *keywords != "" {
		cfg.Keywords = utils.SplitKeywords(*keywords)
	}

	opts := runOptions{
		Source:   strings.ToLower(*source),
		Plain:    *plain,
		Progress: !*noProgress && !*debug,
	}

	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		logger.L().Fatal().Err(err).Msg("run failed")
	}
}

// run collects every selected board before printing anything, so a failure
// on any board leaves stdout empty.
func run(ctx context.Context, cfg config.Config, opts runOptions, stdout io.Writer) error {
	needHeadHunter := opts.Source == "" || opts.Source == utils.SourceHeadHunter
	needSuperJob := opts.Source == "" || opts.Source == utils.SourceSuperJob
	if err := cfg.Validate(needHeadHunter, needSuperJob); err != nil {
		return err
	}

	httpClient := client.CreateHTTPClient(cfg.HTTP.ProxyURL, cfg.HTTP.Timeout)
	boards, err := buildBoards(cfg, opts.Source, httpClient)
	if err != nil {
		return err
	}

	reports := make([]stats.Report, 0, len(boards))
	for _, b := range boards {
		aggOpts := b.opts
		var bar *pb.ProgressBar
		if opts.Progress {
			bar = pb.Full.New(len(cfg.Keywords)).SetWriter(os.Stderr).Set("prefix", b.title+" ")
			bar.Start()
			aggOpts = append(aggOpts, stats.WithProgress(func(string) { bar.Increment() }))
		}

		logger.L().Info().Str("source", b.src.Name()).Int("keywords", len(cfg.Keywords)).Msg("collecting")
		report, err := stats.NewAggregator(b.src, aggOpts...).Collect(ctx, cfg.Keywords)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	tableOpts := ui.TableOptions{Humanize: !opts.Plain, Colorize: !opts.Plain}
	for i, b := range boards {
		table, err := ui.RenderTable(b.title, reports[i], tableOpts)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, table)
	}
	return nil
}

// buildBoards returns the selected boards, SuperJob first
func buildBoards(cfg config.Config, source string, httpClient *http.Client) ([]board, error) {
	var boards []board

	if source == "" || source == utils.SourceSuperJob {
		sj, err := scraper.NewSuperJob(httpClient, scraper.SuperJobOptions{
			BaseURL: cfg.SuperJob.BaseURL,
			Key:     cfg.SuperJob.Key,
			Town:    cfg.SuperJob.Town,
			Period:  cfg.Period,
		})
		if err != nil {
			return nil, err
		}
		boards = append(boards, board{
			title: fmt.Sprintf("SuperJob %s", cfg.SuperJob.Town),
			src:   sj,
		})
	}

	if source == "" || source == utils.SourceHeadHunter {
		hh := scraper.NewHeadHunter(httpClient, scraper.HeadHunterOptions{
			BaseURL:   cfg.HeadHunter.BaseURL,
			Area:      cfg.HeadHunter.Area,
			Period:    cfg.Period,
			UserAgent: cfg.HeadHunter.UserAgent,
		})
		boards = append(boards, board{
			title: fmt.Sprintf("HeadHunter area %d", cfg.HeadHunter.Area),
			src:   hh,
			opts:  []stats.Option{stats.WithCurrency(cfg.HeadHunter.Currency)},
		})
	}

	return boards, nil
}
