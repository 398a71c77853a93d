package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/logger"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	logger.SetOutput(&bytes.Buffer{})
	logger.Init("error", false)
	os.Exit(m.Run())
}

// hhHandler serves two keywords: "Shell" only has listings without a usable
// salary, "Go" mixes eligible and ineligible listings across three pages.
func hhHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("text") {
		case "Shell":
			fmt.Fprint(w, `{"items":[
				{"name":"Admin","salary":null},
				{"name":"DevOps","salary":{"from":null,"to":null,"currency":"RUR"}},
				{"name":"Remote","salary":{"from":3000,"to":null,"currency":"USD"}}
			],"found":55,"pages":1}`)
		case "Go":
			var items string
			switch q.Get("page") {
			case "0":
				items = `[{"name":"Go dev","salary":{"from":100000,"to":200000,"currency":"RUR"}},
					{"name":"Go lead","salary":{"from":5000,"to":7000,"currency":"EUR"}}]`
			case "1":
				items = `[{"name":"Go junior","salary":{"from":100000,"to":null,"currency":"RUR"}},
					{"name":"Go secret","salary":null}]`
			case "2":
				items = `[{"name":"Go senior","salary":{"from":null,"to":100000,"currency":"RUR"}}]`
			default:
				t.Errorf("unexpected page %s", q.Get("page"))
				items = `[]`
			}
			fmt.Fprintf(w, `{"items":%s,"found":321,"pages":3}`, items)
		default:
			t.Errorf("unexpected keyword %q", q.Get("text"))
			w.WriteHeader(http.StatusBadRequest)
		}
	}
}

func testConfig(hhURL, sjURL string) config.Config {
	return config.Config{
		HeadHunter: config.HeadHunterConfig{BaseURL: hhURL, Area: 1, Currency: "RUR", UserAgent: "test"},
		SuperJob:   config.SuperJobConfig{BaseURL: sjURL, Key: "test-key", Town: "Москва"},
		HTTP:       config.HTTPConfig{Timeout: 5 * time.Second},
		Keywords:   []string{"Shell", "Go"},
		Period:     30,
	}
}

func dataRows(out string, keywords ...string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		for _, kw := range keywords {
			if strings.Contains(line, kw+" ") {
				n++
			}
		}
	}
	return n
}

func TestRun_HeadHunterEndToEnd(t *testing.T) {
	hh := httptest.NewServer(hhHandler(t))
	defer hh.Close()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(hh.URL, ""), runOptions{Source: "hh", Plain: true}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if dataRows(got, "Shell", "Go") != 1 {
		t.Fatalf("expected exactly one data row, got %q", got)
	}
	if strings.Contains(got, "Shell") {
		t.Fatalf("keyword without salaries must be dropped: %q", got)
	}
	// 150000, 80000, 120000 -> 116666; found is the board's own figure
	for _, want := range []string{"321", "3", "116666"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestRun_BothBoardsSuperJobFirst(t *testing.T) {
	hh := httptest.NewServer(hhHandler(t))
	defer hh.Close()

	sj := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-App-Id") != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		q := r.URL.Query()
		if q.Get("keyword") == "Go" && q.Get("page") == "0" {
			fmt.Fprint(w, `{"objects":[{"profession":"Go","payment_from":200000,"payment_to":300000}],"total":12}`)
			return
		}
		fmt.Fprint(w, `{"objects":[],"total":0}`)
	}))
	defer sj.Close()

	var out bytes.Buffer
	if err := run(context.Background(), testConfig(hh.URL, sj.URL), runOptions{Plain: true}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	sjAt := strings.Index(got, "SuperJob")
	hhAt := strings.Index(got, "HeadHunter")
	if sjAt < 0 || hhAt < 0 || sjAt > hhAt {
		t.Fatalf("expected SuperJob table before HeadHunter table, got %q", got)
	}
	if !strings.Contains(got[sjAt:hhAt], "250000") {
		t.Fatalf("expected SuperJob average 250000, got %q", got)
	}
}

func TestRun_MissingCredentialFailsBeforeRequests(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(server.URL, server.URL)
	cfg.SuperJob.Key = ""

	var out bytes.Buffer
	err := run(context.Background(), cfg, runOptions{}, &out)
	if !errors.Is(err, config.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if calls != 0 || out.Len() != 0 {
		t.Fatalf("expected no requests and no output, got calls=%d out=%q", calls, out.String())
	}
}

func TestRun_HTTPErrorLeavesNoPartialReport(t *testing.T) {
	hh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer hh.Close()

	sj := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "0" {
			fmt.Fprint(w, `{"objects":[{"profession":"Go","payment_from":100000}],"total":1}`)
			return
		}
		fmt.Fprint(w, `{"objects":[],"total":1}`)
	}))
	defer sj.Close()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(hh.URL, sj.URL), runOptions{Plain: true}, &out)

	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 StatusError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}
