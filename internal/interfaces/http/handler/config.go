package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/infrastructure/config"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// ConfigHandler serves the browser-safe provider configuration
type ConfigHandler struct {
	BaseHandler
	client config.ClientConfig
}

// NewConfigHandler creates a ConfigHandler. client must come from
// config.LoadClientConfig or config.ClientConfigOf.
func NewConfigHandler(client config.ClientConfig) *ConfigHandler {
	return &ConfigHandler{client: client}
}

// GetClientConfig returns the mode and its public settings
func (h *ConfigHandler) GetClientConfig(c *gin.Context) {
	h.Success(c, dto.ClientConfigResponse{
		Mode:   h.client.Mode(),
		Config: h.client,
	})
}
