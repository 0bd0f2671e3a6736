package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayease/booking-api/internal/api/metrics"
	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingHandler handles booking creation, lookup and deletion.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type bookRoomRequest struct {
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type bookingResponse struct {
	ID        string `json:"id"`
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	UserEmail string `json:"user_email"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

func toBookingResponse(v *ports.BookingView) bookingResponse {
	return bookingResponse{
		ID:        v.ID,
		HotelID:   v.HotelID,
		HotelName: v.HotelName,
		UserEmail: v.UserEmail,
		CheckIn:   v.CheckIn.Format(dateLayout),
		CheckOut:  v.CheckOut.Format(dateLayout),
	}
}

// Book reserves a room. The booking owner is the token subject, never a
// client-supplied email.
//
// @Summary      Book a room
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string           true  "Hotel id"
// @Param        body     body      bookRoomRequest  true  "Stay dates (YYYY-MM-DD)"
// @Success      201      {object}  bookingResponse
// @Failure      401      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /api/bookings/{hotelId} [post]
func (h *BookingHandler) Book(c echo.Context) error {
	email, err := requesterEmail(c)
	if err != nil {
		return err
	}

	var req bookRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in must be a date in YYYY-MM-DD format")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be a date in YYYY-MM-DD format")
	}

	view, err := h.bookings.Book(c.Request().Context(), ports.BookRoomInput{
		HotelID:   c.Param("hotelId"),
		UserEmail: email,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomUnavailable):
			metrics.BookingRejectionsTotal.WithLabelValues("room_unavailable").Inc()
		case errors.Is(err, domain.ErrHotelNotFound):
			metrics.BookingRejectionsTotal.WithLabelValues("hotel_not_found").Inc()
		case errors.Is(err, domain.ErrInvalidDateRange):
			metrics.BookingRejectionsTotal.WithLabelValues("invalid_date_range").Inc()
		}
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(view))
}

// Get returns a booking by id. Any valid token may read any booking.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200 {object}  bookingResponse
// @Failure      401 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	view, err := h.bookings.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(view))
}

// Delete cancels a booking. HOTEL_MANAGER only.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      401 {object}  map[string]string
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.bookings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
