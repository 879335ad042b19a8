package controllers

import (
	"net/http"

	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/gin-gonic/gin"
)

type TokenIssuer interface {
	Issue(email string, role string) (string, error)
}

type TokenController struct {
	tokens TokenIssuer
}

func NewTokenController(tokens TokenIssuer) *TokenController {
	return &TokenController{tokens: tokens}
}

func (c *TokenController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", c.health)
	engine.POST("/token", c.issue)
}

// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func (c *TokenController) health(g *gin.Context) {
	g.JSON(http.StatusOK, models.MessageResponse{Message: "Survey server is running"})
}

// @Summary Issue an access token
// @Description Signs a token valid for 20 hours. The role is carried as a hint only and never used for access checks.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "Token request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /token [post]
func (c *TokenController) issue(g *gin.Context) {
	var req models.TokenRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Email == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing email"})
		return
	}

	token, err := c.tokens.Issue(req.Email, req.Role)
	if err != nil {
		logging.Log.Errorf("AUTH: failed to issue token for %s: %v", req.Email, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("AUTH: issued token for %s", req.Email)
	g.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
