package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the wired handler set for route registration.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Address *handlers.AddressHandler
	Hotel   *handlers.HotelHandler
	Food    *handlers.FoodHandler
	Cart    *handlers.CartHandler
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	adminOrManager := middleware.RoleRequired(models.RoleAdmin, models.RoleManager)

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)
	r.POST("/auth/refresh", h.Auth.Refresh)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", h.Auth.Profile)

		auth.GET("/address", h.Address.List)
		auth.GET("/hotels", h.Hotel.List)
		auth.GET("/foods", h.Food.List)
		auth.GET("/cart", h.Cart.Get)
	}

	// ── Admin/manager routes ───────────────────────────────────────
	managed := r.Group("/")
	managed.Use(middleware.AuthRequired(), adminOrManager)
	{
		managed.POST("/address", h.Address.Create)
		managed.PATCH("/address", h.Address.Update)

		managed.POST("/hotels", h.Hotel.Create)
		managed.PATCH("/hotels", h.Hotel.Update)
		managed.DELETE("/hotels", h.Hotel.Deactivate)

		managed.POST("/foods", h.Food.Create)

		// Cart mutations stay admin/manager-gated; customers cannot
		// mutate their own carts under the current policy.
		managed.POST("/cart", h.Cart.AddItem)
		managed.PATCH("/cart", h.Cart.UpdateItem)
	}
}
