package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/payments"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	provider payments.Provider
	users    storage.UserStorage
	currency string
	gate     *transport.Gate
}

func NewPaymentController(provider payments.Provider, users storage.UserStorage, currency string, gate *transport.Gate) *PaymentController {
	return &PaymentController{
		provider: provider,
		users:    users,
		currency: currency,
		gate:     gate,
	}
}

func (c *PaymentController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/create_payment_intent", c.gate.Authenticated, c.createIntent)
	engine.POST("/payment", c.gate.Authenticated, c.confirm)
}

// @Security BearerToken
// @Summary Create a payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body models.PaymentIntentRequest true "Price in the configured currency"
// @Success 200 {object} models.PaymentIntentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /create_payment_intent [post]
func (c *PaymentController) createIntent(g *gin.Context) {
	var req models.PaymentIntentRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	cents, err := payments.ToCents(req.Price)
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	secret, err := c.provider.CreatePaymentIntent(g.Request.Context(), cents, c.currency)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidAmount) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("PAYMENT: failed to create intent for %d cents: %v", cents, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("PAYMENT: created intent for %d cents", cents)
	g.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// @Security BearerToken
// @Summary Confirm a payment
// @Description Promotes the token holder to pro-user. A posted email must match the token.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body models.PaymentConfirmRequest true "Payment"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /payment [post]
func (c *PaymentController) confirm(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.PaymentConfirmRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Email != "" && req.Email != claims.Email {
		logging.Log.Warnf("PAYMENT: %s tried to confirm a payment for %s", claims.Email, req.Email)
		g.JSON(http.StatusForbidden, models.ErrorResponse{Error: "payment can only promote the paying user"})
		return
	}

	if err := c.users.UpdateRoleByEmail(g.Request.Context(), claims.Email, storage.RoleProUser); err != nil {
		respondStoreError(g, "PAYMENT", "promote "+claims.Email, err)
		return
	}

	logging.Log.Infof("PAYMENT: %s promoted to pro-user (transaction '%s')", claims.Email, req.TransactionID)
	g.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": string(storage.RoleProUser)})
}
