package stats

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fr4nk3nst1ner/langsalary/internal/logger"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/salary"
	"github.com/fr4nk3nst1ner/langsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

// Report is the per-keyword summary in keyword order
type Report []models.LanguageStat

// Get returns the statistic for keyword, if the keyword made it into the report.
func (r Report) Get(keyword string) (models.LanguageStat, bool) {
	for _, s := range r {
		if s.Keyword == keyword {
			return s, true
		}
	}
	return models.LanguageStat{}, false
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithCurrency restricts averaging to listings with a salary in code.
// An empty code disables the currency filter.
func WithCurrency(code string) Option {
	return func(a *Aggregator) { a.currency = code }
}

// WithProgress registers a callback invoked after each keyword is collected
func WithProgress(fn func(keyword string)) Option {
	return func(a *Aggregator) { a.progress = fn }
}

// WithLogger replaces the global logger
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) { a.log = &l }
}

// Aggregator folds every page of a source into salary statistics
type Aggregator struct {
	src      scraper.Source
	currency string
	progress func(keyword string)
	log      *zerolog.Logger
}

// NewAggregator creates an aggregator over src
func NewAggregator(src scraper.Source, opts ...Option) *Aggregator {
	a := &Aggregator{src: src, log: logger.L()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// tally accumulates one keyword across pages
type tally struct {
	keyword   string
	found     int
	seenFound bool
	processed int
	sum       int64
}

// Collect walks every page of every keyword, in order, and returns the
// statistics of the keywords that had at least one usable salary. Any error
// aborts the whole collection.
func (a *Aggregator) Collect(ctx context.Context, keywords []string) (Report, error) {
	seen := make(map[string]struct{}, len(keywords))
	tallies := make([]tally, 0, len(keywords))

	for _, keyword := range keywords {
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}

		t, err := a.collectKeyword(ctx, keyword)
		if err != nil {
			return nil, fmt.Errorf("%s: collect %q: %w", a.src.Name(), keyword, err)
		}
		tallies = append(tallies, t)

		a.log.Info().
			Str("source", a.src.Name()).
			Str("keyword", keyword).
			Int("found", t.found).
			Int("processed", t.processed).
			Msg("keyword collected")

		if a.progress != nil {
			a.progress(keyword)
		}
	}

	return summarize(tallies), nil
}

func (a *Aggregator) collectKeyword(ctx context.Context, keyword string) (tally, error) {
	t := tally{keyword: keyword}

	err := a.src.Walk(ctx, keyword, func(p *models.Page) error {
		if !t.seenFound {
			t.found = p.Found
			t.seenFound = true
		}

		for _, l := range p.Listings {
			if !a.eligible(l) {
				continue
			}
			estimate, ok := salary.Estimate(l.From, l.To)
			if !ok {
				continue
			}
			t.processed++
			t.sum += int64(estimate)

			a.log.Debug().
				Str("keyword", keyword).
				Str("title", utils.Truncate(l.Title, 60)).
				Str("summary", utils.Truncate(l.Summary, 80)).
				Int("estimate", estimate).
				Msg("listing estimated")
		}
		return nil
	})

	return t, err
}

func (a *Aggregator) eligible(l models.Listing) bool {
	if a.currency == "" {
		return true
	}
	return l.HasSalary && l.Currency == a.currency
}

// summarize drops keywords without a usable estimate and averages the rest.
func summarize(tallies []tally) Report {
	report := make(Report, 0, len(tallies))
	for _, t := range tallies {
		if t.processed == 0 {
			continue
		}
		report = append(report, models.LanguageStat{
			Keyword:   t.keyword,
			Found:     t.found,
			Processed: t.processed,
			Average:   int(t.sum / int64(t.processed)),
		})
	}
	return report
}
