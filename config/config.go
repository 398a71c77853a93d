package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

// ErrMissingCredential is returned when the SuperJob application key is not set.
var ErrMissingCredential = errors.New("missing credential")

// DefaultKeywords are the languages surveyed when KEYWORDS is not set.
var DefaultKeywords = []string{
	"Python", "Java", "Swift", "TypeScript", "Scala", "Shell",
	"Go", "C", "C#", "C++", "Ruby", "JavaScript",
}

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example .env:
//
//	SJ_KEY=v3.r.123456.abcdef
//	KEYWORDS=Go,Python,Rust
//	HH_AREA=1
//	SJ_TOWN=Москва
//	LOG_LEVEL=debug
type Config struct {
	HeadHunter HeadHunterConfig
	SuperJob   SuperJobConfig
	HTTP       HTTPConfig
	Log        LogConfig

	// Keywords drive one aggregation run each, in this order.
	Keywords []string
	// Period is the recency window in days sent to both boards.
	Period int
}

// HeadHunterConfig holds api.hh.ru settings.
type HeadHunterConfig struct {
	BaseURL   string
	Area      int    // region code, 1 is Moscow
	Currency  string // only salaries in this currency are averaged
	UserAgent string
}

// SuperJobConfig holds api.superjob.ru settings.
type SuperJobConfig struct {
	BaseURL string
	Key     string // X-Api-App-Id
	Town    string
}

// HTTPConfig holds transport settings shared by both boards.
type HTTPConfig struct {
	Timeout  time.Duration
	ProxyURL string
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from the environment.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env (if present). Variables already exported win over it.
//  3. Environment variables.
//
// Load does not validate; call Validate once the selected sources are known.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("HH_BASE_URL", "https://api.hh.ru")
	v.SetDefault("HH_AREA", 1)
	v.SetDefault("HH_CURRENCY", "RUR")
	v.SetDefault("HH_USER_AGENT", "langsalary/1.0 (langsalary@example.com)")
	v.SetDefault("SJ_BASE_URL", "https://api.superjob.ru/2.0")
	v.SetDefault("SJ_KEY", "")
	v.SetDefault("SJ_TOWN", "Москва")
	v.SetDefault("SEARCH_PERIOD", 30)
	v.SetDefault("KEYWORDS", strings.Join(DefaultKeywords, ","))
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("PROXY_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", true)
	v.AutomaticEnv()

	cfg := Config{
		HeadHunter: HeadHunterConfig{
			BaseURL:   strings.TrimRight(v.GetString("HH_BASE_URL"), "/"),
			Area:      v.GetInt("HH_AREA"),
			Currency:  v.GetString("HH_CURRENCY"),
			UserAgent: v.GetString("HH_USER_AGENT"),
		},
		SuperJob: SuperJobConfig{
			BaseURL: strings.TrimRight(v.GetString("SJ_BASE_URL"), "/"),
			Key:     strings.TrimSpace(v.GetString("SJ_KEY")),
			Town:    v.GetString("SJ_TOWN"),
		},
		HTTP: HTTPConfig{
			Timeout:  v.GetDuration("HTTP_TIMEOUT"),
			ProxyURL: v.GetString("PROXY_URL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		Keywords: utils.SplitKeywords(v.GetString("KEYWORDS")),
		Period:   v.GetInt("SEARCH_PERIOD"),
	}

	return cfg, nil
}

// Validate reports every missing or invalid setting at once. Board settings
// are only required for the boards that are going to be queried.
func (c Config) Validate(requireHeadHunter, requireSuperJob bool) error {
	var problems []string

	if requireSuperJob && c.SuperJob.Key == "" {
		problems = append(problems, "SJ_KEY")
	}
	if len(c.Keywords) == 0 {
		problems = append(problems, "KEYWORDS")
	}
	if c.Period <= 0 {
		problems = append(problems, "SEARCH_PERIOD")
	}
	if requireHeadHunter && c.HeadHunter.BaseURL == "" {
		problems = append(problems, "HH_BASE_URL")
	}
	if requireSuperJob && c.SuperJob.BaseURL == "" {
		problems = append(problems, "SJ_BASE_URL")
	}
	if c.HTTP.Timeout <= 0 {
		problems = append(problems, "HTTP_TIMEOUT")
	}

	if len(problems) == 0 {
		return nil
	}
	if requireSuperJob && c.SuperJob.Key == "" {
		return fmt.Errorf("%w: missing or invalid environment variables: %v", ErrMissingCredential, problems)
	}
	return fmt.Errorf("missing or invalid environment variables: %v", problems)
}
