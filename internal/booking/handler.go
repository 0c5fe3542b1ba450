package booking

import (
	"context"
	"errors"
	"net/http"

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

// BookableSlots godoc
// @Summary      Bookable slots for a date
// @Description  The trainer's availability for the weekday of date, minus confirmed bookings.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Trainer ID"
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  booking.BookableSlots
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /trainers/{id}/slots [get]
func (h *Handler) BookableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	slots, err := h.service.BookableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.respondError(c, err, "Failed to fetch slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Book godoc
// @Summary      Book a session
// @Description  Books one of the trainer's slots. The slot is re-checked at commit.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      booking.CreateBookingRequest  true  "Booking payload"
// @Success      201      {object}  booking.Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Book(c *gin.Context) {
	clientID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	b, err := h.service.Book(c.Request.Context(), clientID, req)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// Cancel godoc
// @Summary      Cancel booking
// @Description  Either the client or the trainer of the booking may cancel it.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  booking.Booking
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /bookings/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.service.Cancel)
}

// Confirm godoc
// @Summary      Confirm a pending booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  booking.Booking
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /bookings/{id}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.service.Confirm)
}

// Reject godoc
// @Summary      Reject a pending booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  booking.Booking
// @Router       /bookings/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	h.changeStatus(c, h.service.Reject)
}

// Complete godoc
// @Summary      Mark a booking completed
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  booking.Booking
// @Router       /bookings/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	h.changeStatus(c, h.service.Complete)
}

func (h *Handler) changeStatus(c *gin.Context, change func(ctx context.Context, userID, bookingID string) (*Booking, error)) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	b, err := change(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// MyBookings godoc
// @Summary      My bookings
// @Description  Trainers see sessions booked with them, clients see their own.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        view  query     string  false  "all, pending, upcoming, past, cancelled, rejected"
// @Success      200   {object}  booking.BookingList
// @Failure      400   {object}  api.ErrorResponse
// @Router       /my-bookings [get]
func (h *Handler) MyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	view, ok := ParseView(c.Query("view"))
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown view"})
		return
	}

	var (
		list *BookingList
		err  error
	)
	if role == auth.RoleTrainer {
		list, err = h.service.ListForTrainer(c.Request.Context(), userID, view)
	} else {
		list, err = h.service.ListForClient(c.Request.Context(), userID, view)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotConnected):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrDateOutOfRange),
		errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidClock),
		errors.Is(err, schedule.ErrEndBeforeStart):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
