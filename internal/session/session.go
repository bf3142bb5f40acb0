// Package session carries the identity of the signed in user.
//
// A Session is passed explicitly to every call that talks to the ledger.
package session

import (
	"errors"
	"strings"

	"github.com/equitrack/dashboard/pkg/ledger"
)

var (
	ErrNoToken     = errors.New("the request is not authenticated, a bearer token is required")
	ErrNoProfileID = errors.New("the profile ID must be set")
)

// Session is an authenticated user of the ledger API.
type Session struct {
	ProfileID ledger.ID
	Token     string
}

// New creates a session from a bearer token and a profile ID.
func New(profileID, token string) Session {
	return Session{
		ProfileID: ledger.ID(strings.TrimSpace(profileID)),
		Token:     strings.TrimSpace(token),
	}
}

// FromAuthorization reads the token of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func FromAuthorization(header, profileID string) Session {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		token = ""
	}

	return New(profileID, token)
}

// Validate checks that the session can be used for requests.
func (s Session) Validate() error {
	if s.Token == "" {
		return ErrNoToken
	}

	if s.ProfileID == "" {
		return ErrNoProfileID
	}

	return nil
}
