package sandbox_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/equitrack/dashboard/internal/sandbox"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const profile = "42"

type TestSuiteStandard struct {
	suite.Suite
	db      *gorm.DB
	fixture sandbox.Fixture
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	db, err := sandbox.Open(":memory:", zerolog.Nop())
	suite.Require().Nil(err, "Database connection failed")
	suite.db = db

	suite.fixture = sandbox.DemoFixture(profile, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(sandbox.Seed(db, suite.fixture))
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *TestSuiteStandard) request(envelope sandbox.Envelope, method, path, token, body string) *httptest.ResponseRecorder {
	r := sandbox.NewServer(suite.db, envelope).Router()

	req := httptest.NewRequest(method, sandbox.BasePath+path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *TestSuiteStandard) wallet(walletType string) sandbox.Wallet {
	for _, w := range suite.fixture.Wallets {
		if w.WalletType == walletType {
			return w
		}
	}

	suite.FailNow("no wallet of type " + walletType)
	return sandbox.Wallet{}
}

func (suite *TestSuiteStandard) TestHealthIsPublic() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TestSuiteStandard) TestUnauthorized() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/incomes/all", "", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "bearer token")
}

func (suite *TestSuiteStandard) TestForeignProfile() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/wallets/profile/7/active", profile, "")
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TestSuiteStandard) TestEnvelopes() {
	tests := []struct {
		envelope sandbox.Envelope
		decode   func([]byte) ([]json.RawMessage, error)
	}{
		{sandbox.EnvelopeBare, func(b []byte) (r []json.RawMessage, err error) {
			err = json.Unmarshal(b, &r)
			return
		}},
		{sandbox.EnvelopeData, func(b []byte) ([]json.RawMessage, error) {
			var r struct{ Data []json.RawMessage }
			err := json.Unmarshal(b, &r)
			return r.Data, err
		}},
		{sandbox.EnvelopeEntity, func(b []byte) ([]json.RawMessage, error) {
			var r struct {
				Incomes []json.RawMessage `json:"incomes"`
			}
			err := json.Unmarshal(b, &r)
			return r.Incomes, err
		}},
	}

	for _, tt := range tests {
		w := suite.request(tt.envelope, http.MethodGet, "/incomes/all", profile, "")
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		records, err := tt.decode(w.Body.Bytes())
		suite.Require().Nil(err)
		suite.Len(records, 3, tt.envelope)
	}
}

func (suite *TestSuiteStandard) TestTransactionPayload() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/expenses/all", profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var expenses []map[string]any
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &expenses))
	suite.Require().Len(expenses, 5)

	// Newest first
	suite.Equal("2025-03-01", expenses[0]["date"])
	suite.Equal("expense", expenses[0]["type"])
	suite.NotEmpty(expenses[0]["categoryName"])
	suite.NotNil(expenses[0]["categoryId"])
}

func (suite *TestSuiteStandard) TestCategories() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/categories/expense", profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var categories []map[string]any
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &categories))
	suite.Len(categories, 3)

	w = suite.request(sandbox.EnvelopeBare, http.MethodGet, "/categories/transfer", profile, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TestSuiteStandard) TestActiveWalletsAndTotal() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/wallets/profile/"+profile+"/active", profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var wallets []map[string]any
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &wallets))
	suite.Len(wallets, 2, "inactive wallets are not listed")

	w = suite.request(sandbox.EnvelopeBare, http.MethodGet, "/wallets/profile/"+profile+"/total-balance", profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var total struct {
		TotalBalance decimal.Decimal `json:"totalBalance"`
	}
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &total))
	suite.True(decimal.RequireFromString("25850.75").Equal(total.TotalBalance), total.TotalBalance.String())
}

func (suite *TestSuiteStandard) TestDeposit() {
	cash := suite.wallet("Cash")

	w := suite.request(sandbox.EnvelopeBare, http.MethodPost, "/wallets/"+cash.ID.String()+"/deposit", profile, `{"amount": 250.5}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var wallet struct {
		Balance decimal.Decimal `json:"balance"`
	}
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &wallet))
	suite.True(decimal.RequireFromString("1750.5").Equal(wallet.Balance), wallet.Balance.String())

	var activities []sandbox.WalletActivity
	suite.Require().Nil(suite.db.Where("wallet_id = ? AND type = ?", cash.ID, sandbox.ActivityDeposit).Find(&activities).Error)
	suite.Len(activities, 1)
}

func (suite *TestSuiteStandard) TestWithdrawErrors() {
	cash := suite.wallet("Cash")
	inactive := suite.wallet("Old Savings")

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"Insufficient funds", "/wallets/" + cash.ID.String() + "/withdraw", `{"amount": 1500.01}`, http.StatusBadRequest},
		{"Zero amount", "/wallets/" + cash.ID.String() + "/withdraw", `{"amount": 0}`, http.StatusBadRequest},
		{"Inactive wallet", "/wallets/" + inactive.ID.String() + "/withdraw", `{"amount": 1}`, http.StatusBadRequest},
		{"Unknown wallet", "/wallets/" + uuid.NewString() + "/withdraw", `{"amount": 1}`, http.StatusNotFound},
		{"Invalid ID", "/wallets/cash/withdraw", `{"amount": 1}`, http.StatusBadRequest},
		{"Invalid body", "/wallets/" + cash.ID.String() + "/withdraw", `{"amount": "lots"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			w := suite.request(sandbox.EnvelopeBare, http.MethodPost, tt.path, profile, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	// Nothing was withdrawn
	var wallet sandbox.Wallet
	suite.Require().Nil(suite.db.First(&wallet, "id = ?", cash.ID).Error)
	suite.True(decimal.NewFromInt(1500).Equal(wallet.Balance), wallet.Balance.String())
}

func (suite *TestSuiteStandard) TestMutateWithdrawAll() {
	cash := suite.wallet("Cash")

	wallet, err := sandbox.Mutate(suite.db, profile, cash.ID, sandbox.ActivityWithdraw, decimal.NewFromInt(1500))
	suite.Require().Nil(err)
	suite.True(wallet.Balance.IsZero())

	_, err = sandbox.Mutate(suite.db, profile, cash.ID, sandbox.ActivityWithdraw, decimal.NewFromInt(1))
	suite.True(errors.Is(err, sandbox.ErrInsufficientFunds), err)

	_, err = sandbox.Mutate(suite.db, "7", cash.ID, sandbox.ActivityDeposit, decimal.NewFromInt(1))
	suite.True(errors.Is(err, sandbox.ErrResourceNotFound), "wallets of other profiles are not found")
}

func (suite *TestSuiteStandard) TestBudgets() {
	w := suite.request(sandbox.EnvelopeData, http.MethodGet, "/budgets/profile/"+profile, profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data []map[string]any `json:"data"`
	}
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data, 3)
	suite.Equal("MONTHLY", response.Data[0]["period"])
	suite.NotNil(response.Data[0]["category"])
}

func (suite *TestSuiteStandard) TestActivities() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/transactions/profile/"+profile, profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var activities []map[string]any
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &activities))
	suite.Require().Len(activities, 2)
	suite.Equal(sandbox.ActivityWithdraw, activities[0]["type"], "newest first")
	suite.Equal("2025-03-01T02:00:00", activities[0]["createdAt"])
	suite.NotNil(activities[0]["wallet"])
}

func (suite *TestSuiteStandard) TestDashboard() {
	w := suite.request(sandbox.EnvelopeBare, http.MethodGet, "/dashboard", profile, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var dashboard struct {
		TotalBalance       decimal.Decimal   `json:"totalBalance"`
		TotalIncome        decimal.Decimal   `json:"totalIncome"`
		TotalExpense       decimal.Decimal   `json:"totalExpense"`
		RecentTransactions []json.RawMessage `json:"recentTransactions"`
		Recent5Expenses    []json.RawMessage `json:"recent5Expenses"`
		Recent5Incomes     []json.RawMessage `json:"recent5Incomes"`
	}
	suite.Require().Nil(json.Unmarshal(w.Body.Bytes(), &dashboard))

	suite.True(decimal.RequireFromString("25850.75").Equal(dashboard.TotalBalance))
	suite.True(decimal.NewFromInt(68500).Equal(dashboard.TotalIncome))
	suite.True(decimal.RequireFromString("28705.65").Equal(dashboard.TotalExpense), dashboard.TotalExpense.String())
	suite.Len(dashboard.RecentTransactions, 5)
	suite.Len(dashboard.Recent5Expenses, 5)
	suite.Len(dashboard.Recent5Incomes, 3)
}

func (suite *TestSuiteStandard) TestSeedDuplicateCategory() {
	err := sandbox.Seed(suite.db, sandbox.Fixture{
		ProfileID:  profile,
		Categories: []sandbox.Category{{Name: "Rent", Type: "expense"}},
	})
	suite.True(errors.Is(err, sandbox.ErrCategoryNameNotUnique), err)
}

func TestParseEnvelope(t *testing.T) {
	assert.Equal(t, sandbox.EnvelopeData, sandbox.ParseEnvelope("DATA"))
	assert.Equal(t, sandbox.EnvelopeEntity, sandbox.ParseEnvelope("entity"))
	assert.Equal(t, sandbox.EnvelopeBare, sandbox.ParseEnvelope("wrapped"))
	assert.Equal(t, sandbox.EnvelopeBare, sandbox.ParseEnvelope(""))
}

func TestOpenInvalidDSN(t *testing.T) {
	_, err := sandbox.Open("file:/nonexistent/directory/ledger.db?mode=ro", zerolog.Nop())
	require.NotNil(t, err)
}
