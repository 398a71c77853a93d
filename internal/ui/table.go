package ui

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/stats"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

// TableHeader is the first row of every report table
var TableHeader = []string{"Language", "Found", "Processed", "Average salary"}

// TableOptions controls number formatting in RenderTable
type TableOptions struct {
	Humanize bool // thousands separators
	Colorize bool // tint the average column
}

// RenderTable renders report as a boxed table, one row per keyword in report order.
func RenderTable(title string, report stats.Report, opts TableOptions) (string, error) {
	data := pterm.TableData{TableHeader}
	for _, s := range report {
		data = append(data, []string{
			s.Keyword,
			formatCount(s.Found, opts.Humanize),
			formatCount(s.Processed, opts.Humanize),
			formatAverage(s.Average, opts),
		})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return "", fmt.Errorf("render %s table: %w", title, err)
	}

	if title == "" {
		return table, nil
	}
	return pterm.Bold.Sprint(title) + "\n" + table, nil
}

func formatCount(n int, human bool) string {
	if human {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}

func formatAverage(amount int, opts TableOptions) string {
	if opts.Colorize {
		return ColorizeSalary(amount, opts.Humanize)
	}
	if opts.Humanize {
		return utils.FormatRubles(amount)
	}
	return strconv.Itoa(amount)
}
