package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bookwise/models"
	"bookwise/services/booking"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves slot discovery, bookings and provider calendars.
type BookingHandler struct {
	Booking booking.BookingService
	Now     func() time.Time
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Booking: svc, Now: time.Now}
}

// ProviderSlotsHandler returns a provider with its currently bookable slots.
func (h *BookingHandler) ProviderSlotsHandler(c *gin.Context) {
	details, err := h.Booking.ProviderSlotDetails(c.Request.Context(), c.Param("id"), h.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// CreateBookingHandler books one entry for the authenticated user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	b, err := h.Booking.Book(c.Request.Context(), c.GetString(utils.CtxPrincipalID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler pages through the authenticated user's bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.Booking.ListUserBookings(c.Request.Context(), c.GetString(utils.CtxPrincipalID), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PublishSlotsHandler adds free entries to the authenticated provider's day.
func (h *BookingHandler) PublishSlotsHandler(c *gin.Context) {
	var req models.PublishSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	entries, err := h.Booking.PublishSlots(c.Request.Context(), c.GetString(utils.CtxPrincipalID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"date": req.Date, "entries": entries})
}

// CalendarHandler lists every day the authenticated provider has published.
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	days, err := h.Booking.ProviderCalendar(c.Request.Context(), c.GetString(utils.CtxPrincipalID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
