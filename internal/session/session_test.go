package session_test

import (
	"testing"

	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/stretchr/testify/assert"
)

func TestFromAuthorization(t *testing.T) {
	tests := []struct {
		header string
		token  string
	}{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		s := session.FromAuthorization(tt.header, "7")
		assert.Equal(t, tt.token, s.Token, tt.header)
		assert.Equal(t, ledger.ID("7"), s.ProfileID)
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, session.New("7", "abc").Validate())
	assert.ErrorIs(t, session.New("7", "").Validate(), session.ErrNoToken)
	assert.ErrorIs(t, session.New(" ", "abc").Validate(), session.ErrNoProfileID)
}
