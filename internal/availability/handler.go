package availability

import (
	"errors"
	"net/http"
	"strconv"

	"fitconnect/internal/api"
	"fitconnect/internal/auth"
	"fitconnect/internal/schedule"

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

// @Summary      Get my weekly availability
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} availability.DaySchedule
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) GetMine(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	h.respondWeek(c, trainerID)
}

// @Summary      Get a trainer's weekly availability
// @Tags         availability,trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trainer ID"
// @Success      200 {array} availability.DaySchedule
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{id}/availability [get]
func (h *Handler) GetForTrainer(c *gin.Context) {
	h.respondWeek(c, c.Param("id"))
}

func (h *Handler) respondWeek(c *gin.Context, trainerID string) {
	week, err := h.service.WeeklySchedule(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, week)
}

// @Summary      Add an availability slot
// @Description  Trainer-only: add a recurring weekly time slot
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body availability.AddSlotRequest true "Slot payload"
// @Success      201 {object} availability.Availability
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability/slots [post]
func (h *Handler) AddSlot(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req AddSlotRequest
	if !api.BindJSON(c, &req) {
		return
	}

	day, err := schedule.ParseWeekday(req.DayOfWeek)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot := schedule.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}
	record, err := h.service.AddSlot(c.Request.Context(), trainerID, day, slot)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotOverlap):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, schedule.ErrEndBeforeStart), errors.Is(err, schedule.ErrInvalidClock):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to add time slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// @Summary      Remove an availability slot
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        day path string true "Day of week"
// @Param        index path int true "Slot index within the day"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability/slots/{day}/{index} [delete]
func (h *Handler) RemoveSlot(c *gin.Context) {
	trainerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	day, err := schedule.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot index"})
		return
	}

	if err := h.service.RemoveSlot(c.Request.Context(), trainerID, day, index); err != nil {
		switch {
		case errors.Is(err, ErrAvailabilityMissing), errors.Is(err, ErrSlotIndexOutOfRange):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to remove time slot"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot removed"})
}
