// Package normalize coerces the response shapes of the ledger API into
// canonical record slices.
//
// An endpoint may answer with a bare array, with {"data": [...]} or with
// {"<collection>": [...]}. The shapes are tried in the order of Strategies.
// A body no strategy can read is not an error: it yields an empty slice and
// a warning, so one malformed response renders as "no data".
package normalize

import (
	"bytes"
	"encoding/json"

	"github.com/equitrack/dashboard/internal/metrics"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/rs/zerolog"
)

// Shape is a response body split into its top level form.
// Exactly one of Array and Object is set for valid JSON arrays and objects.
type Shape struct {
	Array  json.RawMessage
	Object map[string]json.RawMessage
}

// ParseShape reads the top level form of a body.
func ParseShape(body []byte) Shape {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Shape{}
	}

	switch body[0] {
	case '[':
		if json.Valid(body) {
			return Shape{Array: body}
		}
	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(body, &object); err == nil {
			return Shape{Object: object}
		}
	}

	return Shape{}
}

// field returns the member of an object if it is an array.
func (s Shape) field(name string) (json.RawMessage, bool) {
	raw, ok := s.Object[name]
	if !ok {
		return nil, false
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	return raw, true
}

// Strategy reads records from one response shape.
type Strategy struct {
	Name    string
	Match   func(s Shape, collection string) bool
	Extract func(s Shape, collection string) json.RawMessage
}

// Strategies is the ordered table of supported response shapes.
var Strategies = []Strategy{
	{
		Name: "data",
		Match: func(s Shape, _ string) bool {
			_, ok := s.field("data")
			return ok
		},
		Extract: func(s Shape, _ string) json.RawMessage {
			raw, _ := s.field("data")
			return raw
		},
	},
	{
		Name: "collection",
		Match: func(s Shape, collection string) bool {
			_, ok := s.field(collection)
			return ok
		},
		Extract: func(s Shape, collection string) json.RawMessage {
			raw, _ := s.field(collection)
			return raw
		},
	},
	{
		Name: "bare",
		Match: func(s Shape, _ string) bool {
			return s.Array != nil
		},
		Extract: func(s Shape, _ string) json.RawMessage {
			return s.Array
		},
	},
}

// Normalizer extracts records from ledger responses and logs what it had
// to drop.
type Normalizer struct {
	logger     zerolog.Logger
	strategies []Strategy
}

// New returns a Normalizer using the default strategy table.
func New(logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		logger:     logger.With().Str("component", "normalize").Logger(),
		strategies: Strategies,
	}
}

// WithStrategies returns a copy of the Normalizer using a different table.
func (n *Normalizer) WithStrategies(strategies []Strategy) *Normalizer {
	c := *n
	c.strategies = strategies
	return &c
}

// Extract returns the raw records of a body and the name of the strategy
// that matched. If no strategy matches, it returns nil and "none".
func (n *Normalizer) Extract(body []byte, collection string) ([]json.RawMessage, string) {
	shape := ParseShape(body)

	for _, strategy := range n.strategies {
		if !strategy.Match(shape, collection) {
			continue
		}

		var records []json.RawMessage
		if err := json.Unmarshal(strategy.Extract(shape, collection), &records); err != nil {
			continue
		}

		return records, strategy.Name
	}

	return nil, "none"
}

// Records decodes all records of a collection from a response body.
//
// The result is never nil. Records that fail to decode are skipped.
func Records[T any](n *Normalizer, body []byte, collection string) []T {
	raw, strategy := n.Extract(body, collection)
	metrics.NormalizedResponses.WithLabelValues(collection, strategy).Inc()

	if raw == nil {
		n.logger.Warn().
			Str("collection", collection).
			Int("bytes", len(body)).
			Msg("response shape not recognized, treating as empty")
		return []T{}
	}

	result := make([]T, 0, len(raw))
	for i, r := range raw {
		var record T
		if err := json.Unmarshal(r, &record); err != nil {
			metrics.DroppedRecords.WithLabelValues(collection).Inc()
			n.logger.Warn().Err(err).Str("collection", collection).Int("index", i).Msg("dropping record")
			continue
		}
		result = append(result, record)
	}

	n.logger.Debug().
		Str("collection", collection).
		Str("strategy", strategy).
		Int("records", len(result)).
		Msg("normalized response")

	return result
}

// Transactions decodes incomes or expenses. Records that do not carry a
// type get the kind of the collection.
func (n *Normalizer) Transactions(body []byte, kind ledger.Kind) []ledger.Transaction {
	transactions := Records[ledger.Transaction](n, body, kind.Collection())

	for i := range transactions {
		if transactions[i].Type == "" {
			transactions[i].Type = kind
		}

		if transactions[i].InvalidAmount {
			n.logger.Warn().
				Str("collection", kind.Collection()).
				Str("id", transactions[i].ID.String()).
				Msg("non-numeric or negative amount counted as zero")
		}
	}

	return transactions
}

// Categories decodes categories.
func (n *Normalizer) Categories(body []byte) []ledger.Category {
	return Records[ledger.Category](n, body, "categories")
}

// Wallets decodes wallets.
func (n *Normalizer) Wallets(body []byte) []ledger.Wallet {
	return Records[ledger.Wallet](n, body, "wallets")
}

// Budgets decodes budgets.
func (n *Normalizer) Budgets(body []byte) []ledger.Budget {
	return Records[ledger.Budget](n, body, "budgets")
}

// Activities decodes wallet activity records.
func (n *Normalizer) Activities(body []byte) []ledger.Activity {
	return Records[ledger.Activity](n, body, "transactions")
}

// Unwrap returns the object a single record endpoint answered with. A
// {"data": {...}} envelope is removed, any other body is returned as is.
func Unwrap(body []byte) []byte {
	shape := ParseShape(body)

	raw := bytes.TrimSpace(shape.Object["data"])
	if len(raw) > 0 && raw[0] == '{' {
		return raw
	}

	return body
}
