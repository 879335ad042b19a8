package controllers

import (
	"context"
	"testing"

	"github.com/alex-pricope/simple-survey-system/aggregate"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/auth"
	"github.com/alex-pricope/simple-survey-system/ledger"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/payments"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/alex-pricope/simple-survey-system/storage/storagetest"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	cents    int64
	currency string
	err      error
}

func (p *fakeProvider) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if amountCents <= 0 {
		return "", payments.ErrInvalidAmount
	}
	p.cents = amountCents
	p.currency = currency
	return "pi_secret_test", nil
}

type harness struct {
	router   *gin.Engine
	tokens   *auth.TokenService
	stores   *storage.Stores
	db       *storagetest.DB
	provider *fakeProvider
}

// setupTestServer wires every controller against in-memory stores.
func setupTestServer(t *testing.T, opts ...ledger.Option) *harness {
	t.Helper()
	logging.Log = logrus.New()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("controller-test-secret")
	require.NoError(t, err)
	stores, db := storagetest.NewStores()
	provider := &fakeProvider{}
	gate := transport.NewGate(tokens, stores.Users)

	r := gin.New()
	NewTokenController(tokens).RegisterRoutes(r)
	NewUserController(stores.Users, gate).RegisterRoutes(r)
	NewSurveyController(stores.Surveys, stores.Users, aggregate.NewEngine(stores.Surveys), gate).RegisterRoutes(r)
	NewVotingController(ledger.New(stores.Surveys, stores.Votes, opts...), stores.Votes, stores.Surveys, gate).RegisterRoutes(r)
	NewReportController(stores.Reports, stores.Surveys, gate).RegisterRoutes(r)
	NewCommentController(stores.Comments, stores.Surveys, gate).RegisterRoutes(r)
	NewFeedbackController(stores.Feedback, stores.Surveys, gate).RegisterRoutes(r)
	NewPaymentController(provider, stores.Users, "usd", gate).RegisterRoutes(r)

	return &harness{router: r, tokens: tokens, stores: stores, db: db, provider: provider}
}

func (h *harness) token(t *testing.T, email string) string {
	t.Helper()
	token, err := h.tokens.Issue(email, "")
	require.NoError(t, err)
	return token
}

func (h *harness) seedUser(t *testing.T, email string, role storage.Role) *storage.User {
	t.Helper()
	user, _, err := h.stores.Users.Create(context.TODO(), &storage.User{Email: email, Role: role})
	require.NoError(t, err)
	return user
}

func (h *harness) seedSurvey(t *testing.T, author string, title string) *storage.Survey {
	t.Helper()
	survey := &storage.Survey{AuthorEmail: author, Title: title, Status: storage.StatusPublish, Timestamp: "2024-01-01"}
	require.NoError(t, h.stores.Surveys.Create(context.TODO(), survey))
	return survey
}
