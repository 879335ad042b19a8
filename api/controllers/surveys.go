package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/alex-pricope/simple-survey-system/aggregate"
	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	surveys storage.SurveyStorage
	users   storage.UserStorage
	engine  *aggregate.Engine
	gate    *transport.Gate
	now     func() time.Time
}

func NewSurveyController(surveys storage.SurveyStorage, users storage.UserStorage, engine *aggregate.Engine, gate *transport.Gate) *SurveyController {
	return &SurveyController{
		surveys: surveys,
		users:   users,
		engine:  engine,
		gate:    gate,
		now:     time.Now,
	}
}

func (c *SurveyController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/survey", c.list)
	engine.POST("/survey", c.gate.Authenticated, c.create)
	engine.GET("/survey/:id", c.get)
	engine.PATCH("/survey/:id", c.gate.Authenticated, c.update)
	engine.DELETE("/survey/:id", c.gate.Authenticated, c.delete)
	engine.PATCH("/statusUpdate/:id", c.gate.Authenticated, c.unpublish)
}

// @Summary List surveys with rankings
// @Description result honours the email filter; mostVoted and recent always rank every survey.
// @Tags surveys
// @Produce json
// @Param email query string false "Author email"
// @Success 200 {object} models.SurveyListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /survey [get]
func (c *SurveyController) list(g *gin.Context) {
	listing, err := c.engine.ListSurveys(g.Request.Context(), g.Query("email"))
	if err != nil {
		logging.Log.Errorf("SURVEY: failed to list surveys: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.SurveyListResponse{
		Result:    listing.Result,
		MostVoted: listing.MostVoted,
		Recent:    listing.Recent,
	})
}

// @Security BearerToken
// @Summary Create a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Param request body models.SurveyCreateRequest true "Survey"
// @Success 201 {object} storage.Survey
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /survey [post]
func (c *SurveyController) create(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.SurveyCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Title == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing title"})
		return
	}

	survey := &storage.Survey{
		AuthorEmail: claims.Email,
		Title:       req.Title,
		Category:    req.Category,
		Question:    req.Question,
		Description: req.Description,
		Date:        req.Date,
		Status:      storage.StatusPublish,
		Timestamp:   c.now().UTC().Format(time.DateOnly),
	}
	if err := c.surveys.Create(g.Request.Context(), survey); err != nil {
		logging.Log.Errorf("SURVEY: failed to create survey '%s': %v", req.Title, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("SURVEY: %s created survey %s", survey.AuthorEmail, survey.ID)
	g.JSON(http.StatusCreated, survey)
}

// @Summary Get a survey
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} storage.Survey
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /survey/{id} [get]
func (c *SurveyController) get(g *gin.Context) {
	id := g.Param("id")
	survey, err := c.surveys.Get(g.Request.Context(), id)
	if err != nil {
		respondStoreError(g, "SURVEY", "get "+id, err)
		return
	}
	g.JSON(http.StatusOK, survey)
}

// @Security BearerToken
// @Summary Edit a survey
// @Description Only title, category, question, date and desc change. Allowed for the author or an admin.
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body models.SurveyUpdateRequest true "Fields"
// @Success 200 {object} storage.Survey
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /survey/{id} [patch]
func (c *SurveyController) update(g *gin.Context) {
	id := g.Param("id")
	var req models.SurveyUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if !c.authorize(g, id) {
		return
	}

	if err := c.surveys.UpdateFields(g.Request.Context(), id, req.Fields()); err != nil {
		respondStoreError(g, "SURVEY", "update "+id, err)
		return
	}

	updated, err := c.surveys.Get(g.Request.Context(), id)
	if err != nil {
		respondStoreError(g, "SURVEY", "reload "+id, err)
		return
	}

	logging.Log.Infof("SURVEY: updated %s", id)
	g.JSON(http.StatusOK, updated)
}

// @Security BearerToken
// @Summary Delete a survey
// @Description Allowed for the author or an admin.
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /survey/{id} [delete]
func (c *SurveyController) delete(g *gin.Context) {
	id := g.Param("id")
	if !c.authorize(g, id) {
		return
	}

	if err := c.surveys.Delete(g.Request.Context(), id); err != nil {
		respondStoreError(g, "SURVEY", "delete "+id, err)
		return
	}

	logging.Log.Infof("SURVEY: deleted %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

// @Security BearerToken
// @Summary Unpublish a survey
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /statusUpdate/{id} [patch]
func (c *SurveyController) unpublish(g *gin.Context) {
	id := g.Param("id")
	if err := c.surveys.SetStatus(g.Request.Context(), id, storage.StatusUnpublished); err != nil {
		respondStoreError(g, "SURVEY", "unpublish "+id, err)
		return
	}

	logging.Log.Infof("SURVEY: unpublished %s", id)
	g.JSON(http.StatusOK, gin.H{"_id": id, "status": string(storage.StatusUnpublished)})
}

// authorize lets the survey author or a stored admin through and writes the
// error response otherwise.
func (c *SurveyController) authorize(g *gin.Context, id string) bool {
	claims, ok := mustClaims(g)
	if !ok {
		return false
	}

	survey, err := c.surveys.Get(g.Request.Context(), id)
	if err != nil {
		respondStoreError(g, "SURVEY", "get "+id, err)
		return false
	}
	if survey.AuthorEmail == claims.Email {
		return true
	}

	user, err := c.users.GetByEmail(g.Request.Context(), claims.Email)
	if err != nil && !errors.Is(err, storage.ErrItemNotFound) {
		logging.Log.Errorf("SURVEY: failed to look up %s: %v", claims.Email, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return false
	}
	if user != nil && user.Role == storage.RoleAdmin {
		return true
	}

	logging.Log.Warnf("SURVEY: %s may not modify survey %s", claims.Email, id)
	g.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden access"})
	return false
}
