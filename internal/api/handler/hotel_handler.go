package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayease/booking-api/internal/core/ports"
)

// HotelHandler handles hotel inventory CRUD.
type HotelHandler struct {
	hotels ports.HotelService
}

func NewHotelHandler(hotels ports.HotelService) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

type createHotelRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
	TotalRooms  int    `json:"total_rooms" validate:"required,gt=0"`
}

type updateHotelRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	TotalRooms  *int    `json:"total_rooms,omitempty" validate:"omitempty,gt=0"`
}

type hotelResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	AvailableRooms int      `json:"available_rooms"`
	BookingIDs     []string `json:"booking_ids"`
}

func toHotelResponse(v *ports.HotelView) hotelResponse {
	return hotelResponse{
		ID:             v.ID,
		Name:           v.Name,
		Location:       v.Location,
		Description:    v.Description,
		AvailableRooms: v.AvailableRooms,
		BookingIDs:     v.BookingIDs,
	}
}

// List returns all hotels. Public.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}  hotelResponse
// @Router       /api/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	views, err := h.hotels.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]hotelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toHotelResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single hotel. Public.
//
// @Summary      Get a hotel by id
// @Tags         hotels
// @Produce      json
// @Param        id  path      string  true  "Hotel id"
// @Success      200 {object}  hotelResponse
// @Failure      404 {object}  map[string]string
// @Router       /api/hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	view, err := h.hotels.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponse(view))
}

// Create registers a new hotel. ADMIN only.
//
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHotelRequest  true  "Hotel details"
// @Success      201   {object}  hotelResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req createHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.hotels.Create(c.Request().Context(), ports.CreateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		TotalRooms:  req.TotalRooms,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toHotelResponse(view))
}

// Update applies a partial update to a hotel. HOTEL_MANAGER only.
//
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Hotel id"
// @Param        body  body      updateHotelRequest  true  "Fields to update"
// @Success      200   {object}  hotelResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/hotels/{id} [put]
func (h *HotelHandler) Update(c echo.Context) error {
	var req updateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.hotels.Update(c.Request().Context(), c.Param("id"), ports.UpdateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		TotalRooms:  req.TotalRooms,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHotelResponse(view))
}

// Delete removes a hotel and all its bookings. ADMIN only.
//
// @Summary      Delete a hotel and cascade its bookings
// @Tags         hotels
// @Security     BearerAuth
// @Param        id  path  string  true  "Hotel id"
// @Success      204
// @Failure      401 {object}  map[string]string
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	if err := h.hotels.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
