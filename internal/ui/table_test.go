package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/stats"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

// linesContaining counts output lines that mention s
func linesContaining(out, s string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, s) {
			n++
		}
	}
	return n
}

func TestRenderTable_RowsInReportOrder(t *testing.T) {
	report := stats.Report{
		{Keyword: "Python", Found: 1500, Processed: 300, Average: 180000},
		{Keyword: "Go", Found: 420, Processed: 90, Average: 250000},
	}

	out, err := RenderTable("HeadHunter Moscow", report, TableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "HeadHunter Moscow\n") {
		t.Errorf("expected title first, got %q", out)
	}
	for _, h := range TableHeader {
		if !strings.Contains(out, h) {
			t.Errorf("missing header %q in %q", h, out)
		}
	}

	py := strings.Index(out, "Python")
	golang := strings.Index(out, "Go ")
	if py < 0 || golang < 0 || py > golang {
		t.Errorf("rows out of order: %q", out)
	}
	for _, v := range []string{"1500", "300", "180000", "420", "90", "250000"} {
		if !strings.Contains(out, v) {
			t.Errorf("missing value %s in %q", v, out)
		}
	}
}

func TestRenderTable_Humanize(t *testing.T) {
	report := stats.Report{{Keyword: "Java", Found: 12345, Processed: 1000, Average: 215000}}

	out, err := RenderTable("", report, TableOptions{Humanize: true, Colorize: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range []string{"12,345", "1,000", "215,000 ₽"} {
		if !strings.Contains(out, v) {
			t.Errorf("missing %q in %q", v, out)
		}
	}
}

func TestRenderTable_EmptyReportHasOnlyHeader(t *testing.T) {
	out, err := RenderTable("SuperJob", nil, TableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linesContaining(out, "Language") != 1 {
		t.Errorf("expected header row once, got %q", out)
	}
	if linesContaining(out, "Python") != 0 {
		t.Errorf("unexpected data row in %q", out)
	}
}

func TestColorizeSalary_PlainWhenColorDisabled(t *testing.T) {
	cases := map[int]string{
		350000: "350000",
		99000:  "99000",
	}
	for amount, want := range cases {
		if got := ColorizeSalary(amount, false); got != want {
			t.Errorf("ColorizeSalary(%d)=%q, want %q", amount, got, want)
		}
	}
	if got := ColorizeSalary(120000, true); got != "120,000 ₽" {
		t.Errorf("ColorizeSalary humanized=%q", got)
	}
}
