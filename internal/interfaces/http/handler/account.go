package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// AccountHandler serves the customer profile
type AccountHandler struct {
	BaseHandler
	accounts storefront.AccountService
}

// NewAccountHandler creates an AccountHandler
func NewAccountHandler(accounts storefront.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// GetProfile returns the profile of the X-User-ID user
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}
