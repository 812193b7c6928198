package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// AuthHandler handles sign in and sign out
type AuthHandler struct {
	BaseHandler
	auth storefront.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(auth storefront.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignIn verifies credentials and returns the user id
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), req.ToInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SignOut ends the provider session
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.auth.SignOut(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
