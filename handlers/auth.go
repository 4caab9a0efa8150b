package handlers

import (
	"net/http"

	"food-ordering-api/apperrors"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	user, err := h.svc.Register(log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Login handles POST /auth/login — verifies credentials and issues an
// access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	log := middleware.Logger(c)

	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, log, err)
		return
	}

	user, err := h.svc.Login(log, in)
	if err != nil {
		respondError(c, log, err)
		return
	}

	tokens, err := middleware.GenerateTokenPair(user)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh handles POST /auth/refresh — exchanges a valid refresh token
// for a new access/refresh pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	log := middleware.Logger(c)

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, log, err)
		return
	}

	claims, err := middleware.ParseToken(req.Refresh)
	if err != nil || claims.TokenType != "refresh" {
		respondError(c, log, apperrors.New(apperrors.UnauthorizedError))
		return
	}

	user, err := h.svc.GetUser(claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	tokens, err := middleware.GenerateTokenPair(user)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": tokens.Access, "refresh": tokens.Refresh})
}

// Profile handles GET /auth/profile — returns the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	log := middleware.Logger(c)

	user, err := h.svc.GetUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
