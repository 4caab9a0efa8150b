package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	svc *services.CartService
}

func NewCartHandler(svc *services.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddItem handles POST /cart. The item goes into the caller's own cart,
// created on first use.
func (h *CartHandler) AddItem(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.AddCartItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	item, err := h.svc.AddItem(log, middleware.GetUserID(c), in)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_item": item})
}

// UpdateItem handles PATCH /cart — changes a cart item's quantity.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.UpdateCartItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	item, err := h.svc.UpdateItem(log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_item": item})
}

// Get handles GET /cart — returns the caller's cart with items.
func (h *CartHandler) Get(c *gin.Context) {
	log := middleware.Logger(c)

	cart, err := h.svc.Get(log, middleware.GetUserID(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}
