package test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/equitrack/dashboard/internal/ledgerclient"
	"github.com/equitrack/dashboard/internal/sandbox"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Profile is the profile the demo ledger is seeded for.
const Profile = "42"

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Ledger starts a sandbox ledger seeded with the demo fixture for Profile
// and returns a client for it.
func Ledger(t *testing.T, envelope sandbox.Envelope, now time.Time) (*ledgerclient.Client, sandbox.Fixture) {
	gin.SetMode(gin.TestMode)

	db, err := sandbox.Open(TmpFile(t), zerolog.Nop())
	require.Nil(t, err)

	fixture := sandbox.DemoFixture(Profile, now)
	require.Nil(t, sandbox.Seed(db, fixture))

	server := httptest.NewServer(sandbox.NewServer(db, envelope).Router())
	t.Cleanup(func() {
		server.Close()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return ledgerclient.New(server.URL+sandbox.BasePath, server.Client(), zerolog.Nop()), fixture
}

// Session returns the request headers of a session for Profile.
func Session() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + Profile,
		"X-Profile-ID":  Profile,
	}
}
