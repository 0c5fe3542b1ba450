package user

import (
	"errors"
	"net/http"

	"fitconnect/internal/api"
	"fitconnect/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func publicUsers(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// Register godoc
// @Summary      Register new user
// @Description  Creates a trainer or client account and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      user.RegisterRequest  true  "Registration data"
// @Success      201      {object}  user.LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, accessToken, refreshToken, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.Public(),
	})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      user.LoginRequest  true  "Credentials"
// @Success      200      {object}  user.LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.Public(),
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      user.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  user.LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if !api.BindJSON(c, &req) {
		return
	}

	accessToken, u, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		User:        u.Public(),
	})
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  user.User
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Height (cm) and weight (kg) recompute the BMI.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      user.UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  user.User
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

// UpdateGoals godoc
// @Summary      Replace own fitness goals
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      user.UpdateGoalsRequest  true  "Goals"
// @Success      200      {object}  user.User
// @Failure      400      {object}  api.ErrorResponse
// @Router       /goals [put]
func (h *Handler) UpdateGoals(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateGoalsRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.service.UpdateGoals(c.Request.Context(), userID, req.Goals)
	if err != nil {
		h.respondError(c, err, "Failed to update goals")
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

// ListTrainers godoc
// @Summary      Browse trainers
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        search     query  string  false  "Matches name, bio or expertise"
// @Param        expertise  query  string  false  "Exact area of expertise"
// @Success      200  {object}  map[string]interface{}
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	var query TrainerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	trainers, err := h.service.ListTrainers(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	expertise, err := h.service.Expertise(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainers":  publicUsers(trainers),
		"expertise": expertise,
	})
}

// GetTrainer godoc
// @Summary      Trainer detail
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trainer ID"
// @Success      200  {object}  user.User
// @Failure      404  {object}  api.ErrorResponse
// @Router       /trainers/{id} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	u, err := h.service.GetTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch trainer")
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

// ListClients godoc
// @Summary      My clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  user.User
// @Router       /clients [get]
func (h *Handler) ListClients(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	clients, err := h.service.ListClients(c.Request.Context(), trainerID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, publicUsers(clients))
}

// GetClient godoc
// @Summary      Client detail
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  user.User
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /clients/{id} [get]
func (h *Handler) GetClient(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	u, err := h.service.GetClient(c.Request.Context(), trainerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch client")
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
	case errors.Is(err, ErrNotYourClient):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotAClient), errors.Is(err, ErrNotATrainer):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
