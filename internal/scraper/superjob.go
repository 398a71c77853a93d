package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/langsalary/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/logger"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

const (
	superJobVacanciesPath = "/vacancies/"
	superJobKeyHeader     = "X-Api-App-Id"
)

// SuperJobResponse is the envelope of GET /vacancies/
type SuperJobResponse struct {
	Objects *[]SuperJobVacancy `json:"objects"`
	Total   *int               `json:"total"`
	More    bool               `json:"more"`
}

// SuperJobVacancy represents a vacancy from the SuperJob search. Unspecified
// payment bounds come back as 0.
type SuperJobVacancy struct {
	ID              int    `json:"id"`
	Profession      string `json:"profession"`
	FirmName        string `json:"firm_name"`
	PaymentFrom     int    `json:"payment_from"`
	PaymentTo       int    `json:"payment_to"`
	VacancyRichText string `json:"vacancyRichText"`
}

// SuperJobOptions configures the SuperJob adapter
type SuperJobOptions struct {
	BaseURL string
	Key     string
	Town    string
	Period  int
}

// SuperJob searches api.superjob.ru
type SuperJob struct {
	httpClient *http.Client
	opts       SuperJobOptions
}

// Check interface implementation at compile-time
var _ Source = (*SuperJob)(nil)

// NewSuperJob creates the SuperJob adapter. It fails without an application key.
func NewSuperJob(httpClient *http.Client, opts SuperJobOptions) (*SuperJob, error) {
	if opts.Key == "" {
		return nil, fmt.Errorf("superjob: %w: SJ_KEY is empty", config.ErrMissingCredential)
	}
	return &SuperJob{httpClient: httpClient, opts: opts}, nil
}

// Name returns the board name
func (s *SuperJob) Name() string {
	return "SuperJob"
}

// Walk stops at the first page without objects; that page is never handed to fn.
func (s *SuperJob) Walk(ctx context.Context, keyword string, fn PageFunc) error {
	for page := 0; ; page++ {
		p, err := s.fetchPage(ctx, keyword, page)
		if err != nil {
			return err
		}

		logger.L().Debug().
			Str("source", s.Name()).
			Str("keyword", keyword).
			Int("page", page).
			Int("items", len(p.Listings)).
			Msg("page fetched")

		if len(p.Listings) == 0 {
			return nil
		}

		if err := fn(p); err != nil {
			return err
		}
	}
}

func (s *SuperJob) fetchPage(ctx context.Context, keyword string, page int) (*models.Page, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("period", strconv.Itoa(s.opts.Period))
	params.Set("town", s.opts.Town)
	params.Set("page", strconv.Itoa(page))

	headers := http.Header{}
	headers.Set(superJobKeyHeader, s.opts.Key)

	var resp SuperJobResponse
	if err := client.GetJSON(ctx, s.httpClient, s.opts.BaseURL+superJobVacanciesPath, params, headers, &resp); err != nil {
		return nil, fmt.Errorf("superjob %q page %d: %w", keyword, page, err)
	}

	switch {
	case resp.Objects == nil:
		return nil, fmt.Errorf("superjob %q page %d: %w: missing %q", keyword, page, models.ErrMalformedResponse, "objects")
	case resp.Total == nil:
		return nil, fmt.Errorf("superjob %q page %d: %w: missing %q", keyword, page, models.ErrMalformedResponse, "total")
	}

	listings := make([]models.Listing, 0, len(*resp.Objects))
	for _, v := range *resp.Objects {
		listings = append(listings, v.toListing())
	}

	return &models.Page{
		Index:    page,
		Listings: listings,
		Found:    *resp.Total,
	}, nil
}

func (v SuperJobVacancy) toListing() models.Listing {
	l := models.Listing{
		Title:     utils.PlainText(v.Profession),
		Summary:   utils.PlainText(v.VacancyRichText),
		HasSalary: v.PaymentFrom != 0 || v.PaymentTo != 0,
	}
	if v.PaymentFrom != 0 {
		from := v.PaymentFrom
		l.From = &from
	}
	if v.PaymentTo != 0 {
		to := v.PaymentTo
		l.To = &to
	}
	return l
}
