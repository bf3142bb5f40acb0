// Package sandbox is a self-contained stand-in for the external ledger API.
//
// It serves the same routes and payloads as the real ledger from a SQLite
// database, so the dashboard can be developed and tested without the
// production backend. The bearer token doubles as the profile ID.
package sandbox

import (
	"errors"
	"net/http"
	"strings"
	"time"

	ez_uuid "github.com/equitrack/dashboard/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BasePath is the path prefix of all ledger routes.
const BasePath = "/api/v1.0"

// Envelope selects how list responses are wrapped.
type Envelope string

const (
	EnvelopeBare   Envelope = "bare"   // [...]
	EnvelopeData   Envelope = "data"   // {"data": [...]}
	EnvelopeEntity Envelope = "entity" // {"<collection>": [...]}
)

// ParseEnvelope parses an envelope name, falling back to EnvelopeBare.
func ParseEnvelope(s string) Envelope {
	switch e := Envelope(strings.ToLower(strings.TrimSpace(s))); e {
	case EnvelopeData, EnvelopeEntity:
		return e
	}

	return EnvelopeBare
}

const contextProfileID = "profileID"

// Server serves the ledger API.
type Server struct {
	db       *gorm.DB
	envelope Envelope
}

// NewServer returns a Server reading from db.
func NewServer(db *gorm.DB, envelope Envelope) *Server {
	return &Server{db: db, envelope: envelope}
}

// Register registers all ledger routes with the group.
func (s *Server) Register(r *gin.RouterGroup) {
	r.GET("/health", s.GetHealth)

	authenticated := r.Group("", authenticate)
	{
		authenticated.GET("/dashboard", s.GetDashboard)
		authenticated.GET("/incomes/all", s.GetTransactions("income"))
		authenticated.GET("/expenses/all", s.GetTransactions("expense"))
		authenticated.GET("/categories/:type", s.GetCategories)
		authenticated.GET("/wallets/profile/:profile/active", ownProfile, s.GetActiveWallets)
		authenticated.GET("/wallets/profile/:profile/total-balance", ownProfile, s.GetTotalBalance)
		authenticated.POST("/wallets/:id/deposit", s.PostMutation(ActivityDeposit))
		authenticated.POST("/wallets/:id/withdraw", s.PostMutation(ActivityWithdraw))
		authenticated.GET("/budgets/profile/:profile", ownProfile, s.GetBudgets)
		authenticated.GET("/transactions/profile/:profile", ownProfile, s.GetActivities)
	}
}

// Router returns a gin engine serving the ledger API under BasePath.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true

	s.Register(r.Group(BasePath))
	return r
}

// authenticate reads the profile ID from the bearer token.
func authenticate(c *gin.Context) {
	scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		abort(c, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	c.Set(contextProfileID, token)
}

// ownProfile rejects requests for profiles other than the authenticated one.
func ownProfile(c *gin.Context) {
	if c.Param("profile") != c.GetString(contextProfileID) {
		abort(c, http.StatusForbidden, ErrForbidden)
	}
}

func abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGeneral):
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// list writes records wrapped in the configured envelope.
func (s *Server) list(c *gin.Context, collection string, records any) {
	switch s.envelope {
	case EnvelopeData:
		c.JSON(http.StatusOK, gin.H{"data": records})
	case EnvelopeEntity:
		c.JSON(http.StatusOK, gin.H{collection: records})
	default:
		c.JSON(http.StatusOK, records)
	}
}

func (s *Server) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// GetTransactions lists all incomes or expenses of the profile.
func (s *Server) GetTransactions(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := s.transactions(c.GetString(contextProfileID), kind)
		if err != nil {
			abort(c, status(err), err)
			return
		}

		s.list(c, kind+"s", transactionResponses(transactions))
	}
}

// transactions returns the incomes or expenses of a profile, newest first.
func (s *Server) transactions(profileID, kind string) ([]Transaction, error) {
	var transactions []Transaction

	err := s.db.Preload("Category").
		Where(&Transaction{ProfileID: profileID, Type: kind}).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error

	return transactions, err
}

// GetCategories lists the categories of one type.
func (s *Server) GetCategories(c *gin.Context) {
	kind := strings.ToLower(c.Param("type"))
	if kind != "income" && kind != "expense" {
		abort(c, http.StatusBadRequest, ErrInvalidTransactionKind)
		return
	}

	var categories []Category
	err := s.db.Where(&Category{ProfileID: c.GetString(contextProfileID), Type: kind}).Order("name").Find(&categories).Error
	if err != nil {
		abort(c, status(err), err)
		return
	}

	result := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, newCategoryResponse(category))
	}

	s.list(c, "categories", result)
}

func (s *Server) activeWallets(profileID string) ([]Wallet, error) {
	var wallets []Wallet
	err := s.db.Where("profile_id = ? AND active = ?", profileID, true).Order("created_at, rowid").Find(&wallets).Error
	return wallets, err
}

// GetActiveWallets lists the active wallets of the profile.
func (s *Server) GetActiveWallets(c *gin.Context) {
	wallets, err := s.activeWallets(c.GetString(contextProfileID))
	if err != nil {
		abort(c, status(err), err)
		return
	}

	result := make([]walletResponse, 0, len(wallets))
	for _, w := range wallets {
		result = append(result, newWalletResponse(w))
	}

	s.list(c, "wallets", result)
}

// GetTotalBalance returns the sum of all active wallets.
func (s *Server) GetTotalBalance(c *gin.Context) {
	wallets, err := s.activeWallets(c.GetString(contextProfileID))
	if err != nil {
		abort(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalBalance": sumBalances(wallets)})
}

func sumBalances(wallets []Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}

	return total
}

type mutationRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type uriID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"`
}

// PostMutation deposits into or withdraws from a wallet.
func (s *Server) PostMutation(activity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri uriID
		if err := c.ShouldBindUri(&uri); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}

		var body mutationRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}

		wallet, err := Mutate(s.db, c.GetString(contextProfileID), uri.ID.UUID, activity, body.Amount)
		if err != nil {
			abort(c, status(err), err)
			return
		}

		c.JSON(http.StatusOK, newWalletResponse(wallet))
	}
}

// GetBudgets lists the budgets of the profile.
func (s *Server) GetBudgets(c *gin.Context) {
	var budgets []Budget
	err := s.db.Preload("Category").Where(&Budget{ProfileID: c.GetString(contextProfileID)}).Order("created_at, rowid").Find(&budgets).Error
	if err != nil {
		abort(c, status(err), err)
		return
	}

	result := make([]budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, newBudgetResponse(b))
	}

	s.list(c, "budgets", result)
}

// GetActivities lists the wallet activity of the profile, newest first.
func (s *Server) GetActivities(c *gin.Context) {
	var activities []WalletActivity
	err := s.db.Preload("Wallet").Where(&WalletActivity{ProfileID: c.GetString(contextProfileID)}).Order("created_at DESC").Find(&activities).Error
	if err != nil {
		abort(c, status(err), err)
		return
	}

	result := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, newActivityResponse(a))
	}

	s.list(c, "transactions", result)
}

// GetDashboard returns the totals and the most recent incomes and expenses.
func (s *Server) GetDashboard(c *gin.Context) {
	profileID := c.GetString(contextProfileID)

	wallets, err := s.activeWallets(profileID)
	if err != nil {
		abort(c, status(err), err)
		return
	}

	incomes, err := s.transactions(profileID, "income")
	if err != nil {
		abort(c, status(err), err)
		return
	}

	expenses, err := s.transactions(profileID, "expense")
	if err != nil {
		abort(c, status(err), err)
		return
	}

	recent := append(append([]Transaction{}, incomes...), expenses...)
	sortByDateDesc(recent)

	c.JSON(http.StatusOK, dashboardResponse{
		TotalBalance:       sumBalances(wallets),
		TotalIncome:        sumAmounts(incomes),
		TotalExpense:       sumAmounts(expenses),
		RecentTransactions: transactionResponses(first(recent, recentLimit)),
		Recent5Expenses:    transactionResponses(first(expenses, recentLimit)),
		Recent5Incomes:     transactionResponses(first(incomes, recentLimit)),
	})
}

const recentLimit = 5

func first(transactions []Transaction, n int) []Transaction {
	if len(transactions) > n {
		return transactions[:n]
	}

	return transactions
}

func sumAmounts(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}

	return total
}

// dateLayout is the format of calendar dates on the wire.
const dateLayout = time.DateOnly
