package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	users storage.UserStorage
	gate  *transport.Gate
}

func NewUserController(users storage.UserStorage, gate *transport.Gate) *UserController {
	return &UserController{users: users, gate: gate}
}

func (c *UserController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/user", c.gate.Authenticated, c.create)
	engine.GET("/users", c.gate.Authenticated, c.gate.Admin, c.list)
	engine.DELETE("/user/:id", c.gate.Authenticated, c.gate.Admin, c.delete)
	engine.PUT("/updateUserRole", c.gate.Authenticated, c.gate.Admin, c.updateRole)

	engine.GET("/user/admin/:email", c.isAdmin)
	engine.GET("/user/surveyor/:email", c.isSurveyor)
	engine.GET("/user/proUser/:email", c.isProUser)
}

// @Security BearerToken
// @Summary Register a user
// @Description Inserts the user unless the email is already known, in which case the stored user is returned.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UserCreateRequest true "User"
// @Success 200 {object} models.UserCreateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user [post]
func (c *UserController) create(g *gin.Context) {
	claims, ok := mustClaims(g)
	if !ok {
		return
	}

	var req models.UserCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Email == "" {
		req.Email = claims.Email
	}

	stored, created, err := c.users.Create(g.Request.Context(), &storage.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		logging.Log.Errorf("USER: failed to create %s: %v", req.Email, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	res := models.UserCreateResponse{User: models.TransformUserFromStorage(stored)}
	if created {
		res.InsertedID = stored.ID
		logging.Log.Infof("USER: created %s", stored.Email)
	} else {
		logging.Log.Debugf("USER: %s already exists", stored.Email)
	}
	g.JSON(http.StatusOK, res)
}

// @Security BearerToken
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "Filter by role"
// @Success 200 {array} models.UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
func (c *UserController) list(g *gin.Context) {
	role := storage.Role(g.Query("role"))
	if !storage.ValidRoles[role] {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid role"})
		return
	}

	users, err := c.users.GetAll(g.Request.Context(), role)
	if err != nil {
		logging.Log.Errorf("USER: failed to list users: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("USER: listed %d users", len(users))
	g.JSON(http.StatusOK, models.TransformUsersFromStorage(users))
}

// @Security BearerToken
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/{id} [delete]
func (c *UserController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.users.Delete(g.Request.Context(), id); err != nil {
		respondStoreError(g, "USER", "delete "+id, err)
		return
	}

	logging.Log.Infof("USER: deleted %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

// @Security BearerToken
// @Summary Change the role of a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UpdateRoleRequest true "Role update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /updateUserRole [put]
func (c *UserController) updateRole(g *gin.Context) {
	var req models.UpdateRoleRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, missing _id"})
		return
	}

	role := storage.Role(req.Role)
	if !storage.ValidRoles[role] {
		logging.Log.Warnf("USER: attempted to set invalid role '%s' on %s", req.Role, req.ID)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid role"})
		return
	}

	if err := c.users.UpdateRole(g.Request.Context(), req.ID, role); err != nil {
		respondStoreError(g, "USER", "update role of "+req.ID, err)
		return
	}

	logging.Log.Infof("USER: set role of %s to '%s'", req.ID, role)
	g.JSON(http.StatusOK, gin.H{"_id": req.ID, "role": req.Role})
}

// hasRole reports false for unknown emails. Any other store failure is
// returned to the caller.
func (c *UserController) hasRole(g *gin.Context, role storage.Role) (bool, error) {
	user, err := c.users.GetByEmail(g.Request.Context(), g.Param("email"))
	if errors.Is(err, storage.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

func (c *UserController) roleCheck(g *gin.Context, role storage.Role, respond func(bool) interface{}) {
	ok, err := c.hasRole(g, role)
	if err != nil {
		logging.Log.Errorf("USER: failed role check '%s' for %s: %v", role, g.Param("email"), err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, respond(ok))
}

// @Summary Check whether an email belongs to an admin
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.AdminCheckResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/admin/{email} [get]
func (c *UserController) isAdmin(g *gin.Context) {
	c.roleCheck(g, storage.RoleAdmin, func(ok bool) interface{} {
		return models.AdminCheckResponse{Admin: ok}
	})
}

// @Summary Check whether an email belongs to a surveyor
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.SurveyorCheckResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/surveyor/{email} [get]
func (c *UserController) isSurveyor(g *gin.Context) {
	c.roleCheck(g, storage.RoleSurveyor, func(ok bool) interface{} {
		return models.SurveyorCheckResponse{Surveyor: ok}
	})
}

// @Summary Check whether an email belongs to a pro user
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.ProUserCheckResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/proUser/{email} [get]
func (c *UserController) isProUser(g *gin.Context) {
	c.roleCheck(g, storage.RoleProUser, func(ok bool) interface{} {
		return models.ProUserCheckResponse{ProUser: ok}
	})
}
