package handlers

import (
	"net/http"

	"food-ordering-api/apperrors"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	svc *services.HotelService
}

func NewHotelHandler(svc *services.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

// Create handles POST /hotels (admin/manager only)
func (h *HotelHandler) Create(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.CreateHotelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	hotel, err := h.svc.Create(log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel_item": hotel})
}

// List handles GET /hotels (any authenticated user). Filters hotel_id,
// hotel_name and area are mutually exclusive; reading a hotel bumps its
// view count.
func (h *HotelHandler) List(c *gin.Context) {
	log := middleware.Logger(c)

	hotels, err := h.svc.List(log, services.HotelFilter{
		ID:   c.Query("hotel_id"),
		Name: c.Query("hotel_name"),
		Area: c.Query("area"),
	})
	if err != nil {
		respondError(c, log, err)
		return
	}

	views := make([]HotelView, len(hotels))
	for i, hotel := range hotels {
		views[i] = toHotelView(hotel)
	}
	c.JSON(http.StatusOK, gin.H{"hotel_items": views})
}

type updateHotelRequest struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AddressID uint   `json:"address_id"`
}

// Update handles PATCH /hotels (admin/manager only)
func (h *HotelHandler) Update(c *gin.Context) {
	log := middleware.Logger(c)

	var req updateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, log, err)
		return
	}
	if req.ID == 0 {
		respondError(c, log, apperrors.New(apperrors.HotelIDRequired))
		return
	}

	hotel, err := h.svc.Update(log, req.ID, services.UpdateHotelInput{
		Name:      req.Name,
		AddressID: req.AddressID,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel_item": hotel})
}

// Deactivate handles DELETE /hotels?hotel_id=N (admin/manager only).
// Soft delete: the hotel and all its food items go Inactive.
func (h *HotelHandler) Deactivate(c *gin.Context) {
	log := middleware.Logger(c)

	raw := c.Query("hotel_id")
	if raw == "" {
		respondError(c, log, apperrors.New(apperrors.HotelIDRequired))
		return
	}
	id, err := parseID(raw)
	if err != nil {
		respondError(c, log, apperrors.New(apperrors.InvalidHotelFieldOrValue))
		return
	}

	if err := h.svc.Deactivate(log, id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deactivated"})
}
