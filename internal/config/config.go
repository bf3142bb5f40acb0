// Package config reads the dashboard configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Ledger API
	LedgerAPIURL  string
	LedgerTimeout time.Duration

	// Derived views
	FeedLimit             int
	CategoryLabelMinShare decimal.Decimal

	// HTTP server
	APIURL           string // External URL of the dashboard API, used for links
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool

	// problems collects values that could not be parsed
	problems []string
}

// Load reads a .env file if one exists and then the environment.
//
// Unparseable values fall back to their default and are reported by Validate.
func Load() *Config {
	// Load .env file for local development, it does not exist in production
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() *Config {
	c := &Config{}

	c.LedgerAPIURL = strings.TrimRight(getEnv("LEDGER_API_URL", "http://localhost:8080/api/v1.0"), "/")
	c.LedgerTimeout = c.getEnvDuration("LEDGER_TIMEOUT", 60*time.Second)
	c.FeedLimit = c.getEnvInt("FEED_LIMIT", 5)
	c.CategoryLabelMinShare = c.getEnvDecimal("CATEGORY_LABEL_MIN_SHARE", decimal.NewFromInt(5))
	c.Port = getEnv("PORT", "8081")
	c.APIURL = strings.TrimRight(getEnv("API_URL", "http://localhost:"+c.Port), "/")
	c.CORSAllowOrigins = strings.Fields(getEnv("CORS_ALLOW_ORIGINS", ""))
	c.EnablePprof = c.getEnvBool("ENABLE_PPROF", false)

	return c
}

// Validate returns all problems of the configuration as one error.
func (c *Config) Validate() error {
	problems := append([]string{}, c.problems...)

	if u, err := url.Parse(c.LedgerAPIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid LEDGER_API_URL '%s': %v", c.LedgerAPIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid LEDGER_API_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if u, err := url.Parse(c.APIURL); err != nil || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if c.LedgerTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid LEDGER_TIMEOUT %s: must be positive", c.LedgerTimeout))
	}

	if c.FeedLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid FEED_LIMIT %d: must be at least 1", c.FeedLimit))
	}

	if c.CategoryLabelMinShare.IsNegative() || c.CategoryLabelMinShare.GreaterThan(decimal.NewFromInt(100)) {
		problems = append(problems, fmt.Sprintf("invalid CATEGORY_LABEL_MIN_SHARE %s: must be between 0 and 100", c.CategoryLabelMinShare))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid PORT '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT %d: must be between 1 and 65535", port))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}

	return nil
}

// Address returns the listen address of the HTTP server.
func (c *Config) Address() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}

	return fallback
}

func (c *Config) getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid %s '%s': must be an integer", key, value))
		return fallback
	}

	return i
}

func (c *Config) getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid %s '%s': must be a duration like 30s", key, value))
		return fallback
	}

	return d
}

func (c *Config) getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid %s '%s': must be true or false", key, value))
		return fallback
	}

	return b
}

func (c *Config) getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid %s '%s': must be a number", key, value))
		return fallback
	}

	return d
}
