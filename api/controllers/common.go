package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/auth"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

// respondStoreError maps a storage failure on a single-resource route.
func respondStoreError(g *gin.Context, prefix string, action string, err error) {
	if errors.Is(err, storage.ErrItemNotFound) {
		logging.Log.Warnf("%s: %s: not found", prefix, action)
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}
	logging.Log.Errorf("%s: failed to %s: %v", prefix, action, err)
	g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
}

// mustClaims is used behind the auth middleware, so a miss is a wiring error.
func mustClaims(g *gin.Context) (*auth.Claims, bool) {
	claims, ok := transport.ClaimsFrom(g)
	if !ok {
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized access"})
	}
	return claims, ok
}
