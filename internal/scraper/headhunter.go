package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/logger"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

const headHunterVacanciesPath = "/vacancies"

// HeadHunterResponse is the envelope of GET /vacancies. Pointers mark the
// fields that must be present.
type HeadHunterResponse struct {
	Items *[]HeadHunterVacancy `json:"items"`
	Found *int                 `json:"found"`
	Pages *int                 `json:"pages"`
	Page  int                  `json:"page"`
}

// HeadHunterVacancy represents a vacancy from the hh.ru search
type HeadHunterVacancy struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Salary  *HeadHunterSalary `json:"salary"`
	Snippet struct {
		Requirement    string `json:"requirement"`
		Responsibility string `json:"responsibility"`
	} `json:"snippet"`
}

// HeadHunterSalary is the salary fork; either bound may be null
type HeadHunterSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    bool   `json:"gross"`
}

// HeadHunterOptions configures the hh.ru adapter
type HeadHunterOptions struct {
	BaseURL   string
	Area      int
	Period    int
	UserAgent string
}

// HeadHunter searches api.hh.ru
type HeadHunter struct {
	httpClient *http.Client
	opts       HeadHunterOptions
}

// Check interface implementation at compile-time
var _ Source = (*HeadHunter)(nil)

// NewHeadHunter creates the hh.ru adapter
func NewHeadHunter(httpClient *http.Client, opts HeadHunterOptions) *HeadHunter {
	return &HeadHunter{httpClient: httpClient, opts: opts}
}

// Name returns the board name
func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

// Walk processes every page and stops after the page whose index reaches
// pages-1. With pages=0 the first (empty) page is still processed once.
func (h *HeadHunter) Walk(ctx context.Context, keyword string, fn PageFunc) error {
	for page := 0; ; page++ {
		p, totalPages, err := h.fetchPage(ctx, keyword, page)
		if err != nil {
			return err
		}

		logger.L().Debug().
			Str("source", h.Name()).
			Str("keyword", keyword).
			Int("page", page).
			Int("pages", totalPages).
			Int("items", len(p.Listings)).
			Msg("page fetched")

		if err := fn(p); err != nil {
			return err
		}

		if page >= totalPages-1 {
			return nil
		}
	}
}

func (h *HeadHunter) fetchPage(ctx context.Context, keyword string, page int) (*models.Page, int, error) {
	params := url.Values{}
	params.Set("area", strconv.Itoa(h.opts.Area))
	params.Set("period", strconv.Itoa(h.opts.Period))
	params.Set("text", keyword)
	params.Set("page", strconv.Itoa(page))

	headers := http.Header{}
	if h.opts.UserAgent != "" {
		headers.Set("User-Agent", h.opts.UserAgent)
		headers.Set("HH-User-Agent", h.opts.UserAgent)
	}

	var resp HeadHunterResponse
	if err := client.GetJSON(ctx, h.httpClient, h.opts.BaseURL+headHunterVacanciesPath, params, headers, &resp); err != nil {
		return nil, 0, fmt.Errorf("hh.ru %q page %d: %w", keyword, page, err)
	}

	switch {
	case resp.Items == nil:
		return nil, 0, fmt.Errorf("hh.ru %q page %d: %w: missing %q", keyword, page, models.ErrMalformedResponse, "items")
	case resp.Found == nil:
		return nil, 0, fmt.Errorf("hh.ru %q page %d: %w: missing %q", keyword, page, models.ErrMalformedResponse, "found")
	case resp.Pages == nil:
		return nil, 0, fmt.Errorf("hh.ru %q page %d: %w: missing %q", keyword, page, models.ErrMalformedResponse, "pages")
	}

	listings := make([]models.Listing, 0, len(*resp.Items))
	for _, v := range *resp.Items {
		listings = append(listings, v.toListing())
	}

	return &models.Page{
		Index:    page,
		Listings: listings,
		Found:    *resp.Found,
	}, *resp.Pages, nil
}

func (v HeadHunterVacancy) toListing() models.Listing {
	l := models.Listing{
		Title:   utils.PlainText(v.Name),
		Summary: utils.PlainText(v.Snippet.Requirement),
	}
	if v.Salary != nil {
		l.HasSalary = true
		l.From = v.Salary.From
		l.To = v.Salary.To
		l.Currency = v.Salary.Currency
	}
	return l
}
