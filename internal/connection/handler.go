package connection

import (
	"errors"
	"net/http"

	"fitconnect/internal/api"
	"fitconnect/internal/auth"
	"fitconnect/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Connect godoc
// @Summary      Connect with a trainer
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trainer ID"
// @Success      201  {object}  connection.Connection
// @Failure      404  {object}  api.ErrorResponse
// @Router       /trainers/{id}/connect [post]
func (h *Handler) Connect(c *gin.Context) {
	clientID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	conn, err := h.service.Connect(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to connect"})
		return
	}

	c.JSON(http.StatusCreated, conn)
}

// List godoc
// @Summary      My trainer connections
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  connection.ConnectionWithTrainer
// @Router       /connections [get]
func (h *Handler) List(c *gin.Context) {
	clientID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	conns, err := h.service.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch connections"})
		return
	}

	c.JSON(http.StatusOK, conns)
}
