package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/simple-survey-system/api/controllers/testing"
	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentIntent(t *testing.T) {
	t.Run("Happy path - price converted to cents", func(t *testing.T) {
		h := setupTestServer(t)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/create_payment_intent", models.PaymentIntentRequest{Price: 9.99}, testutils.Bearer(h.token(t, "a@example.com")))
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "pi_secret_test", testutils.Decode[models.PaymentIntentResponse](res).ClientSecret)
		assert.Equal(t, int64(999), h.provider.cents)
		assert.Equal(t, "usd", h.provider.currency)
	})

	t.Run("Unhappy path - non-positive price", func(t *testing.T) {
		h := setupTestServer(t)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/create_payment_intent", models.PaymentIntentRequest{Price: 0}, testutils.Bearer(h.token(t, "a@example.com")))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - provider failure", func(t *testing.T) {
		h := setupTestServer(t)
		h.provider.err = errors.New("card network down")

		res := testutils.PerformRequest(h.router, http.MethodPost, "/create_payment_intent", models.PaymentIntentRequest{Price: 5}, testutils.Bearer(h.token(t, "a@example.com")))
		assert.Equal(t, http.StatusInternalServerError, res.Code)
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("Happy path - promotes to pro-user", func(t *testing.T) {
		h := setupTestServer(t)
		h.seedUser(t, "a@example.com", storage.RoleUnset)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/payment",
			models.PaymentConfirmRequest{Email: "a@example.com", TransactionID: "pi_1", Price: 9.99}, testutils.Bearer(h.token(t, "a@example.com")))
		require.Equal(t, http.StatusOK, res.Code)

		stored, err := h.stores.Users.GetByEmail(context.TODO(), "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.RoleProUser, stored.Role)

		check := testutils.PerformRequest(h.router, http.MethodGet, "/user/proUser/a@example.com", nil, nil)
		assert.JSONEq(t, `{"proUser":true}`, check.Body.String())
	})

	t.Run("Happy path - email taken from the token", func(t *testing.T) {
		h := setupTestServer(t)
		h.seedUser(t, "a@example.com", storage.RoleUnset)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/payment", models.PaymentConfirmRequest{TransactionID: "pi_2"}, testutils.Bearer(h.token(t, "a@example.com")))
		require.Equal(t, http.StatusOK, res.Code)

		stored, err := h.stores.Users.GetByEmail(context.TODO(), "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.RoleProUser, stored.Role)
	})

	t.Run("Unhappy path - cannot promote another user", func(t *testing.T) {
		h := setupTestServer(t)
		h.seedUser(t, "victim@example.com", storage.RoleUnset)
		h.seedUser(t, "mallory@example.com", storage.RoleUnset)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/payment",
			models.PaymentConfirmRequest{Email: "victim@example.com", TransactionID: "pi_3"}, testutils.Bearer(h.token(t, "mallory@example.com")))
		assert.Equal(t, http.StatusForbidden, res.Code)

		victim, err := h.stores.Users.GetByEmail(context.TODO(), "victim@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.RoleUnset, victim.Role)

		mallory, err := h.stores.Users.GetByEmail(context.TODO(), "mallory@example.com")
		require.NoError(t, err)
		assert.Equal(t, storage.RoleUnset, mallory.Role)
	})

	t.Run("Unhappy path - unknown user", func(t *testing.T) {
		h := setupTestServer(t)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/payment", models.PaymentConfirmRequest{Email: "ghost@example.com"}, testutils.Bearer(h.token(t, "ghost@example.com")))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
