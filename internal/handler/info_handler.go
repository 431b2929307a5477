package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Info describes the service and its main endpoints
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LocalMaps API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health":        "/api/health",
			"search":        "/api/search",
			"place_details": "/api/place/{place_id}",
			"auth":          "/api/auth",
			"metrics":       "/metrics",
		},
	})
}
