package models

import "errors"

// ErrMalformedResponse is returned when a job board answers with an envelope
// that lacks a required field.
var ErrMalformedResponse = errors.New("malformed api response")

// Listing is a single vacancy as seen by the aggregator. Bounds are nil when
// the board did not specify them.
type Listing struct {
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	HasSalary bool   `json:"has_salary"`
	From      *int   `json:"from,omitempty"`
	To        *int   `json:"to,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// Page is one response envelope from a vacancy search.
type Page struct {
	Index    int       `json:"index"`
	Listings []Listing `json:"listings"`
	// Found is the board's own total for the search, not a local count.
	Found int `json:"found"`
}

// LanguageStat holds the summary for one keyword
type LanguageStat struct {
	Keyword   string `json:"keyword"`
	Found     int    `json:"vacancies_found"`
	Processed int    `json:"vacancies_processed"`
	Average   int    `json:"average_salary"`
}
