package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/ledger"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

type VotingController struct {
	ledger  *ledger.Ledger
	votes   storage.VoteStorage
	surveys storage.SurveyStorage
	gate    *transport.Gate
}

func NewVotingController(l *ledger.Ledger, votes storage.VoteStorage, surveys storage.SurveyStorage, gate *transport.Gate) *VotingController {
	return &VotingController{
		ledger:  l,
		votes:   votes,
		surveys: surveys,
		gate:    gate,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/voting", c.gate.Authenticated, c.cast)
	engine.GET("/voting", c.listBySurvey)
	engine.GET("/voting/:email", c.gate.Authenticated, c.listByVoter)
}

// @Security BearerToken
// @Summary Cast a vote
// @Description The voter is taken from the token. The survey counter and the ledger entry are written independently.
// @Tags voting
// @Accept json
// @Produce json
// @Param request body models.CastVoteRequest true "Vote"
// @Success 200 {object} models.CastVoteResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /voting [post]
func (c *VotingController) cast(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Voting == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing voting"})
		return
	}

	receipt, err := c.ledger.Cast(g.Request.Context(), ledger.Ballot{
		SurveyID:   req.SurveyID,
		VoterEmail: claims.Email,
		Choice:     *req.Voting,
	})
	switch {
	case errors.Is(err, ledger.ErrAlreadyVoted):
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, ledger.ErrMissingVoter):
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		logging.Log.Errorf("VOTE: failed to cast vote on %s: %v", req.SurveyID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if !receipt.SurveyUpdated && req.SurveyID != "" {
		logging.Log.Warnf("VOTE: survey %s not found, vote recorded without a counter update", req.SurveyID)
	}

	g.JSON(http.StatusOK, models.CastVoteResponse{
		Result: receipt.Record,
		SurveyUpdate: models.SurveyUpdateResult{
			Matched: receipt.SurveyUpdated,
			Survey:  receipt.Survey,
		},
	})
}

// @Summary List votes with their surveys
// @Tags voting
// @Produce json
// @Param survey_id query string false "Survey ID, all votes when empty"
// @Success 200 {object} models.VotingListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /voting [get]
func (c *VotingController) listBySurvey(g *gin.Context) {
	surveyID := g.Query("survey_id")
	joined, ok := listJoined(g, "VOTE", c.surveys, func(ctx context.Context) ([]*storage.VoteRecord, error) {
		return c.votes.GetBySurvey(ctx, surveyID)
	})
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.VotingListResponse{Voting: joined.Records, Survey: joined.Surveys})
}

// @Security BearerToken
// @Summary List votes of a voter with their surveys
// @Tags voting
// @Produce json
// @Param email path string true "Voter email"
// @Success 200 {object} models.VotingListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /voting/{email} [get]
func (c *VotingController) listByVoter(g *gin.Context) {
	email := g.Param("email")
	joined, ok := listJoined(g, "VOTE", c.surveys, func(ctx context.Context) ([]*storage.VoteRecord, error) {
		return c.votes.GetByVoter(ctx, email)
	})
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.VotingListResponse{Voting: joined.Records, Survey: joined.Surveys})
}
