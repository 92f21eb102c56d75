package handler

import (
	"fmt"
	"net/http"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	svc *services.BookingService
	log logrus.FieldLogger
}

func NewBookingHandler(svc *services.BookingService, log logrus.FieldLogger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

// Price is accepted for client compatibility and ignored; the venue's price wins.
type createBookingRequest struct {
	VenueID  string   `json:"venueId" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Time     string   `json:"time" binding:"required"`
	Duration string   `json:"duration"`
	Price    *float64 `json:"price,omitempty"`
}

type bookingResponse struct {
	Message      string          `json:"message"`
	Booking      *domain.Booking `json:"booking"`
	RewardPoints int             `json:"rewardPoints,omitempty"`
}

type userBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	query.BookingPartition
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.CreateBooking(c.Request.Context(), identity(c), services.CreateBookingRequest{
		VenueID:  req.VenueID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		Message:      fmt.Sprintf("Booking created successfully. You earned %d reward points!", res.Reward.Points),
		Booking:      res.Booking,
		RewardPoints: res.Reward.Points,
	})
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	res, err := h.svc.ListBookingsForUser(c.Request.Context(), identity(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	bookings := res.Bookings
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, userBookingsResponse{Bookings: bookings, BookingPartition: res.BookingPartition})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.svc.CancelBooking(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponse{Message: "Booking cancelled successfully", Booking: booking})
}
