package course

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
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      course.CreateCourseRequest  true  "Course payload"
// @Success      201      {object}  course.Course
// @Failure      400      {object}  api.ErrorResponse
// @Router       /courses [post]
func (h *Handler) Create(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateCourseRequest
	if !api.BindJSON(c, &req) {
		return
	}

	course, err := h.service.Create(c.Request.Context(), trainerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

// ListMine godoc
// @Summary      Courses I teach
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   course.Course
// @Router       /courses [get]
func (h *Handler) ListMine(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	h.listByTrainer(c, trainerID)
}

// ListForTrainer godoc
// @Summary      A trainer's courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trainer ID"
// @Success      200  {array}   course.Course
// @Router       /trainers/{id}/courses [get]
func (h *Handler) ListForTrainer(c *gin.Context) {
	h.listByTrainer(c, c.Param("id"))
}

func (h *Handler) listByTrainer(c *gin.Context, trainerID string) {
	courses, err := h.service.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Get godoc
// @Summary      Course details
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  course.Course
// @Failure      404  {object}  api.ErrorResponse
// @Router       /courses/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	course, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// Enroll godoc
// @Summary      Enroll in a course
// @Description  Only clients connected to the course's trainer may enroll.
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  course.Course
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /courses/{id}/enroll [post]
func (h *Handler) Enroll(c *gin.Context) {
	clientID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	course, err := h.service.Enroll(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to enroll")
		return
	}
	c.JSON(http.StatusOK, course)
}

// MyCourses godoc
// @Summary      Courses I am enrolled in
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   course.Course
// @Router       /my-courses [get]
func (h *Handler) MyCourses(c *gin.Context) {
	clientID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	courses, err := h.service.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Course not found"})
	case errors.Is(err, ErrNotConnected):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
