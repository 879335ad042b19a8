package controllers

import (
	"context"
	"net/http"

	"github.com/alex-pricope/simple-survey-system/aggregate"
	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

// listJoined loads child records with list and resolves their surveys. It
// writes the error response itself and returns ok=false on failure.
func listJoined[T aggregate.SurveyRef](g *gin.Context, prefix string, surveys storage.SurveyStorage, list func(context.Context) ([]T, error)) (*aggregate.Joined[T], bool) {
	records, err := list(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("%s: failed to list records: %v", prefix, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	joined, err := aggregate.Join(g.Request.Context(), surveys, records)
	if err != nil {
		logging.Log.Errorf("%s: failed to resolve surveys: %v", prefix, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return joined, true
}

type ReportController struct {
	reports storage.ReportStorage
	surveys storage.SurveyStorage
	gate    *transport.Gate
}

func NewReportController(reports storage.ReportStorage, surveys storage.SurveyStorage, gate *transport.Gate) *ReportController {
	return &ReportController{reports: reports, surveys: surveys, gate: gate}
}

func (c *ReportController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/report", c.gate.Authenticated)
	group.POST("", c.create)
	group.GET("", c.list)
}

// @Security BearerToken
// @Summary Report a survey
// @Tags reports
// @Accept json
// @Produce json
// @Param request body models.ReportCreateRequest true "Report"
// @Success 201 {object} storage.Report
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /report [post]
func (c *ReportController) create(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.ReportCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.SurveyID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing survey_id"})
		return
	}

	report := &storage.Report{SurveyID: req.SurveyID, ReporterEmail: claims.Email, Message: req.Message}
	if err := c.reports.Create(g.Request.Context(), report); err != nil {
		logging.Log.Errorf("REPORT: failed to store report on %s: %v", req.SurveyID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("REPORT: %s reported survey %s", report.ReporterEmail, report.SurveyID)
	g.JSON(http.StatusCreated, report)
}

// @Security BearerToken
// @Summary List reports with their surveys
// @Tags reports
// @Produce json
// @Param email query string false "Reporter email"
// @Success 200 {object} models.ReportListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /report [get]
func (c *ReportController) list(g *gin.Context) {
	email := g.Query("email")
	joined, ok := listJoined(g, "REPORT", c.surveys, func(ctx context.Context) ([]*storage.Report, error) {
		return c.reports.GetAll(ctx, email)
	})
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.ReportListResponse{Report: joined.Records, Survey: joined.Surveys})
}

type CommentController struct {
	comments storage.CommentStorage
	surveys  storage.SurveyStorage
	gate     *transport.Gate
}

func NewCommentController(comments storage.CommentStorage, surveys storage.SurveyStorage, gate *transport.Gate) *CommentController {
	return &CommentController{comments: comments, surveys: surveys, gate: gate}
}

func (c *CommentController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/comment", c.gate.Authenticated)
	group.POST("", c.create)
	group.GET("", c.list)
}

// @Security BearerToken
// @Summary Comment on a survey
// @Tags comments
// @Accept json
// @Produce json
// @Param request body models.CommentCreateRequest true "Comment"
// @Success 201 {object} storage.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /comment [post]
func (c *CommentController) create(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.CommentCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.SurveyID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing survey_id"})
		return
	}

	comment := &storage.Comment{SurveyID: req.SurveyID, CommentEmail: claims.Email, Comment: req.Comment}
	if err := c.comments.Create(g.Request.Context(), comment); err != nil {
		logging.Log.Errorf("COMMENT: failed to store comment on %s: %v", req.SurveyID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("COMMENT: %s commented on survey %s", comment.CommentEmail, comment.SurveyID)
	g.JSON(http.StatusCreated, comment)
}

// @Security BearerToken
// @Summary List comments with their surveys
// @Tags comments
// @Produce json
// @Param email query string false "Commenter email"
// @Success 200 {object} models.CommentListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /comment [get]
func (c *CommentController) list(g *gin.Context) {
	email := g.Query("email")
	joined, ok := listJoined(g, "COMMENT", c.surveys, func(ctx context.Context) ([]*storage.Comment, error) {
		return c.comments.GetAll(ctx, email)
	})
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.CommentListResponse{Comment: joined.Records, Survey: joined.Surveys})
}

type FeedbackController struct {
	feedback storage.FeedbackStorage
	surveys  storage.SurveyStorage
	gate     *transport.Gate
}

func NewFeedbackController(feedback storage.FeedbackStorage, surveys storage.SurveyStorage, gate *transport.Gate) *FeedbackController {
	return &FeedbackController{feedback: feedback, surveys: surveys, gate: gate}
}

func (c *FeedbackController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/feedback", c.gate.Authenticated, c.create)
	engine.GET("/feedback", c.list)
}

// @Security BearerToken
// @Summary Send feedback to a survey author
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackCreateRequest true "Feedback"
// @Success 201 {object} storage.Feedback
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /feedback [post]
func (c *FeedbackController) create(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.FeedbackCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.SurveyID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing survey_id"})
		return
	}

	feedback := &storage.Feedback{
		SurveyID:    req.SurveyID,
		SurveyEmail: req.SurveyEmail,
		AdminEmail:  claims.Email,
		Message:     req.Message,
	}
	if err := c.feedback.Create(g.Request.Context(), feedback); err != nil {
		logging.Log.Errorf("FEEDBACK: failed to store feedback on %s: %v", req.SurveyID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("FEEDBACK: %s sent feedback on survey %s", feedback.AdminEmail, feedback.SurveyID)
	g.JSON(http.StatusCreated, feedback)
}

// @Summary List feedback with their surveys
// @Tags feedback
// @Produce json
// @Param email query string false "Survey author email"
// @Success 200 {object} models.FeedbackListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /feedback [get]
func (c *FeedbackController) list(g *gin.Context) {
	email := g.Query("email")
	joined, ok := listJoined(g, "FEEDBACK", c.surveys, func(ctx context.Context) ([]*storage.Feedback, error) {
		return c.feedback.GetAll(ctx, email)
	})
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.FeedbackListResponse{Feedback: joined.Records, Survey: joined.Surveys})
}
