package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/apperrors"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	svc *services.AddressService
}

func NewAddressHandler(svc *services.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

// Create handles POST /address (admin/manager only)
func (h *AddressHandler) Create(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.CreateAddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	address, err := h.svc.Create(c.Request.Context(), log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address_item": address})
}

// List handles GET /address (any authenticated user)
func (h *AddressHandler) List(c *gin.Context) {
	log := middleware.Logger(c)

	var id *uint
	if raw := c.Query("address_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, log, apperrors.New(apperrors.BadRequest))
			return
		}
		v := uint(parsed)
		id = &v
	}

	addresses, err := h.svc.List(log, id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address_items": addresses})
}

type updateAddressRequest struct {
	AddressID uint   `json:"address_id" binding:"required"`
	Area      string `json:"area"`
	Street    string `json:"street"`
}

// Update handles PATCH /address (admin/manager only)
func (h *AddressHandler) Update(c *gin.Context) {
	log := middleware.Logger(c)

	var req updateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, log, err)
		return
	}

	address, err := h.svc.Update(log, req.AddressID, services.UpdateAddressInput{
		Area:   req.Area,
		Street: req.Street,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address_item": address})
}
