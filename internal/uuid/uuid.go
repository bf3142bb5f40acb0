// Package uuid wraps google/uuid for use in gin URI bindings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that can be bound from URI parameters.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse parses a UUID in any of the forms google/uuid accepts.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that URI
// parameters bind to UUID. An empty parameter binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
