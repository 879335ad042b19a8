package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	testutils "github.com/alex-pricope/simple-survey-system/api/controllers/testing"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/auth"
	"github.com/alex-pricope/simple-survey-system/docs"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/payments"
	"github.com/alex-pricope/simple-survey-system/storage/storagetest"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRoutes(t *testing.T) {
	logging.Log = logrus.New()
	s := NewServer(&Config{AuthConfig: AuthConfig{TokenSecret: "s3cret"}, PaymentConfig: PaymentConfig{Currency: "usd"}})
	tokens, err := auth.NewTokenService(s.config.TokenSecret)
	require.NoError(t, err)
	stores, _ := storagetest.NewStores()

	r := transport.NewRouter(gin.TestMode)
	for _, c := range s.controllers(stores, tokens, payments.NewStripeProvider("sk_test_unused")) {
		c.RegisterRoutes(r)
	}

	t.Run("Happy path - public routes answer", func(t *testing.T) {
		res := testutils.PerformRequest(r, http.MethodGet, "/", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)
		res = testutils.PerformRequest(r, http.MethodGet, "/survey", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("Unhappy path - gated routes need a token", func(t *testing.T) {
		for _, route := range [][2]string{
			{http.MethodPost, "/user"},
			{http.MethodGet, "/users"},
			{http.MethodPut, "/updateUserRole"},
			{http.MethodPost, "/survey"},
			{http.MethodPatch, "/statusUpdate/x"},
			{http.MethodPost, "/voting"},
			{http.MethodGet, "/report"},
			{http.MethodPost, "/comment"},
			{http.MethodPost, "/feedback"},
			{http.MethodPost, "/create_payment_intent"},
			{http.MethodPost, "/payment"},
		} {
			res := testutils.PerformRequest(r, route[0], route[1], nil, nil)
			assert.Equal(t, http.StatusUnauthorized, res.Code, "%s %s", route[0], route[1])
		}
	})

	t.Run("Unhappy path - unknown route", func(t *testing.T) {
		res := testutils.PerformRequest(r, http.MethodGet, "/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Happy path - preflight", func(t *testing.T) {
		res := testutils.PerformRequest(r, http.MethodOptions, "/survey", nil, nil)
		assert.Equal(t, http.StatusNoContent, res.Code)
		assert.Contains(t, res.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("Happy path - swagger document matches the registered routes", func(t *testing.T) {
		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

		registered := map[string]bool{}
		for _, route := range r.Routes() {
			if strings.Contains(route.Path, "*") {
				continue
			}
			key := strings.ToLower(route.Method) + " " + swaggerPath(route.Path)
			registered[key] = true
			_, documented := doc.Paths[swaggerPath(route.Path)][strings.ToLower(route.Method)]
			assert.True(t, documented, "route %s %s is missing from docs", route.Method, route.Path)
		}

		for path, methods := range doc.Paths {
			for method := range methods {
				assert.True(t, registered[method+" "+path], "docs describe %s %s but no handler serves it", method, path)
			}
		}
	})
}

// swaggerPath turns gin's /survey/:id into /survey/{id}.
func swaggerPath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "{" + part[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}
