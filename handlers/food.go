package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	svc *services.FoodService
}

func NewFoodHandler(svc *services.FoodService) *FoodHandler {
	return &FoodHandler{svc: svc}
}

// Create handles POST /foods (admin/manager only)
func (h *FoodHandler) Create(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.CreateFoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	food, err := h.svc.Create(log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_item": food})
}

// List handles GET /foods (any authenticated user). Filters food_id,
// hotel_id and category_id may appear in any combination and are ANDed.
func (h *FoodHandler) List(c *gin.Context) {
	log := middleware.Logger(c)

	foods, err := h.svc.List(log, services.FoodFilter{
		FoodID:     c.Query("food_id"),
		HotelID:    c.Query("hotel_id"),
		CategoryID: c.Query("category_id"),
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_items": toFoodViews(foods)})
}
