// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/your-org/market-store-gateway/internal/pkg/upstream"
)

// respondOK writes the success envelope the storefront expects
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope the storefront expects
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"message": message,
		},
	})
}

// respondUpstreamError translates an upstream failure, preserving its status
// code when one is known.
func respondUpstreamError(c *gin.Context, err error, fallbackStatus int) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		respondError(c, apiErr.StatusCode, apiErr.Message)
		return
	}
	respondError(c, fallbackStatus, err.Error())
}
