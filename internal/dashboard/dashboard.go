// Package dashboard composes the views of the dashboard from the ledger.
//
// Every view fetches its sections concurrently and re-derives all
// aggregates from the fetched records. A section that fails to load is
// rendered empty and reported in the view's Errors, only rejected
// credentials and cancellation fail the whole view.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/equitrack/dashboard/internal/ledgerclient"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Ledger is the part of the ledger API the views are built from.
//
// It is implemented by *ledgerclient.Client.
type Ledger interface {
	Health(ctx context.Context) error
	Dashboard(ctx context.Context, s session.Session) (ledger.Summary, error)
	Transactions(ctx context.Context, s session.Session, kind ledger.Kind) ([]ledger.Transaction, error)
	Categories(ctx context.Context, s session.Session, kind ledger.Kind) ([]ledger.Category, error)
	ActiveWallets(ctx context.Context, s session.Session) ([]ledger.Wallet, error)
	TotalBalance(ctx context.Context, s session.Session) (decimal.Decimal, error)
	Deposit(ctx context.Context, s session.Session, walletID ledger.ID, amount decimal.Decimal) (ledger.Wallet, error)
	Withdraw(ctx context.Context, s session.Session, walletID ledger.ID, amount decimal.Decimal) (ledger.Wallet, error)
	Budgets(ctx context.Context, s session.Session) ([]ledger.Budget, error)
	Activities(ctx context.Context, s session.Session) ([]ledger.Activity, error)
}

var _ Ledger = (*ledgerclient.Client)(nil)

// Service builds dashboard views.
type Service struct {
	ledger    Ledger
	logger    zerolog.Logger
	feedLimit int
	minShare  decimal.Decimal
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithFeedLimit sets the number of entries of activity feeds.
func WithFeedLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.feedLimit = limit
		}
	}
}

// WithMinLabelShare sets the share in percent from which category slices
// are labelled.
func WithMinLabelShare(share decimal.Decimal) Option {
	return func(s *Service) {
		s.minShare = share
	}
}

// WithClock sets the clock budget periods are determined with.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New returns a Service reading from l.
func New(l Ledger, logger zerolog.Logger, options ...Option) *Service {
	s := &Service{
		ledger:    l,
		logger:    logger.With().Str("component", "dashboard").Logger(),
		feedLimit: aggregate.DefaultFeedLimit,
		minShare:  aggregate.DefaultMinLabelShare,
		now:       time.Now,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Health checks that the ledger is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.ledger.Health(ctx)
}

// fatal reports whether an error fails a whole view instead of one section.
func fatal(err error) bool {
	return errors.Is(err, ledgerclient.ErrUnauthorized) ||
		errors.Is(err, session.ErrNoToken) ||
		errors.Is(err, session.ErrNoProfileID) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// fetcher runs the section fetches of one view concurrently.
type fetcher struct {
	group  *errgroup.Group
	ctx    context.Context
	logger zerolog.Logger

	mu     sync.Mutex
	errors []string
}

func (s *Service) fetcher(ctx context.Context, view string) *fetcher {
	group, ctx := errgroup.WithContext(ctx)
	return &fetcher{
		group:  group,
		ctx:    ctx,
		logger: s.logger.With().Str("view", view).Logger(),
	}
}

// fetch runs fn in its own goroutine. If it fails with a non-fatal error,
// the section is recorded as failed and the other sections continue.
func (f *fetcher) fetch(section string, fn func(ctx context.Context) error) {
	f.group.Go(func() error {
		err := fn(f.ctx)
		if err == nil {
			return nil
		}

		if fatal(err) {
			return err
		}

		f.logger.Warn().Err(err).Str("section", section).Msg("section could not be loaded")

		f.mu.Lock()
		f.errors = append(f.errors, fmt.Sprintf("%s: %s", section, err))
		f.mu.Unlock()

		return nil
	})
}

// wait waits for all fetches and returns the errors of failed sections in
// a stable order.
func (f *fetcher) wait() ([]string, error) {
	if err := f.group.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(f.errors)
	if f.errors == nil {
		f.errors = []string{}
	}

	return f.errors, nil
}
