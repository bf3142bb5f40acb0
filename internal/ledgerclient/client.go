// Package ledgerclient talks to the external ledger API.
//
// Every response passes through the normalizer, so callers always receive
// canonical records regardless of the envelope the ledger used.
package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/equitrack/dashboard/internal/metrics"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/equitrack/dashboard/pkg/normalize"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrUnauthorized  = errors.New("the ledger rejected the credentials of the session")
	ErrInvalidAmount = errors.New("the amount must be greater than zero")
	ErrDecode        = errors.New("the ledger response could not be decoded")
)

// publicPaths are sent without credentials.
var publicPaths = []string{"/login", "/register", "/status", "/activate", "/health"}

// maxErrorBody limits how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response of the ledger API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ledger responded with %d: %s", e.Status, e.Message)
}

// Unwrap makes 401 responses match ErrUnauthorized.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return nil
}

// Client is a client for the ledger API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	normalizer *normalize.Normalizer
	logger     zerolog.Logger
}

// New returns a Client for the API at baseURL, e.g.
// "http://localhost:8080/api/v1.0".
//
// Timeouts are configured on the http.Client.
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		normalizer: normalize.New(logger),
		logger:     logger.With().Str("component", "ledgerclient").Logger(),
	}
}

// escape escapes an ID for use as path segment.
func escape(id ledger.ID) string {
	return url.PathEscape(string(id))
}

// isPublic reports whether a path is sent without credentials.
func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}

// do sends a request and returns the body of a successful response.
//
// endpoint is the route template used as metric label, path the actual path.
func (c *Client) do(ctx context.Context, s session.Session, method, endpoint, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if !isPublic(path) {
		if s.Token == "" {
			return nil, session.ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.LedgerRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.LedgerRequestDuration.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, b)}

		c.logger.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg(apiErr.Message)
		return nil, apiErr
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	return b, nil
}

// errorMessage reads the message of an error response. The ledger sends
// either {"message": "..."} or {"error": "..."}.
func errorMessage(status int, body []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}

		if e.Error != "" {
			return e.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		return text
	}

	return http.StatusText(status)
}

// Health checks that the ledger is reachable.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, session.Session{}, http.MethodGet, "/health", "/health", nil)
	return err
}

// Dashboard returns the summary the ledger computes for the dashboard.
func (c *Client) Dashboard(ctx context.Context, s session.Session) (ledger.Summary, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/dashboard", "/dashboard", nil)
	if err != nil {
		return ledger.Summary{}, err
	}

	var summary ledger.Summary
	if err := json.Unmarshal(normalize.Unwrap(b), &summary); err != nil {
		c.logger.Warn().Err(err).Msg("dashboard summary could not be decoded, using empty summary")
		return ledger.Summary{
			RecentTransactions: []ledger.Transaction{},
			Recent5Expenses:    []ledger.Transaction{},
			Recent5Incomes:     []ledger.Transaction{},
		}, nil
	}

	return summary, nil
}

// Transactions returns all incomes or all expenses.
func (c *Client) Transactions(ctx context.Context, s session.Session, kind ledger.Kind) ([]ledger.Transaction, error) {
	endpoint := "/" + kind.Collection() + "/all"

	b, err := c.do(ctx, s, http.MethodGet, endpoint, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.Transactions(b, kind), nil
}

// Categories returns the categories of a kind.
func (c *Client) Categories(ctx context.Context, s session.Session, kind ledger.Kind) ([]ledger.Category, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/categories/{type}", "/categories/"+string(kind), nil)
	if err != nil {
		return nil, err
	}

	categories := c.normalizer.Categories(b)
	for i := range categories {
		if categories[i].Type == "" {
			categories[i].Type = kind
		}
	}

	return categories, nil
}

// ActiveWallets returns the active wallets of the session's profile.
func (c *Client) ActiveWallets(ctx context.Context, s session.Session) ([]ledger.Wallet, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/wallets/profile/{id}/active", "/wallets/profile/"+escape(s.ProfileID)+"/active", nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.Wallets(b), nil
}

// TotalBalance returns the total balance the ledger reports for the
// session's profile.
func (c *Client) TotalBalance(ctx context.Context, s session.Session) (decimal.Decimal, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/wallets/profile/{id}/total-balance", "/wallets/profile/"+escape(s.ProfileID)+"/total-balance", nil)
	if err != nil {
		return decimal.Zero, err
	}

	var total ledger.TotalBalance
	if err := json.Unmarshal(normalize.Unwrap(b), &total); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return total.TotalBalance, nil
}

// Deposit adds money to a wallet and returns the updated wallet.
func (c *Client) Deposit(ctx context.Context, s session.Session, walletID ledger.ID, amount decimal.Decimal) (ledger.Wallet, error) {
	return c.mutate(ctx, s, "deposit", walletID, amount)
}

// Withdraw takes money from a wallet and returns the updated wallet.
func (c *Client) Withdraw(ctx context.Context, s session.Session, walletID ledger.ID, amount decimal.Decimal) (ledger.Wallet, error) {
	return c.mutate(ctx, s, "withdraw", walletID, amount)
}

func (c *Client) mutate(ctx context.Context, s session.Session, operation string, walletID ledger.ID, amount decimal.Decimal) (ledger.Wallet, error) {
	if !amount.IsPositive() {
		return ledger.Wallet{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	payload := struct {
		Amount decimal.Decimal `json:"amount"`
	}{amount}

	b, err := c.do(ctx, s, http.MethodPost, "/wallets/{id}/"+operation, "/wallets/"+escape(walletID)+"/"+operation, payload)
	if err != nil {
		return ledger.Wallet{}, err
	}

	var wallet ledger.Wallet
	if err := json.Unmarshal(normalize.Unwrap(b), &wallet); err != nil {
		return ledger.Wallet{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return wallet, nil
}

// Budgets returns the budgets of the session's profile.
func (c *Client) Budgets(ctx context.Context, s session.Session) ([]ledger.Budget, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/budgets/profile/{id}", "/budgets/profile/"+escape(s.ProfileID), nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.Budgets(b), nil
}

// Activities returns the wallet activity of the session's profile.
func (c *Client) Activities(ctx context.Context, s session.Session) ([]ledger.Activity, error) {
	b, err := c.do(ctx, s, http.MethodGet, "/transactions/profile/{id}", "/transactions/profile/"+escape(s.ProfileID), nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.Activities(b), nil
}
