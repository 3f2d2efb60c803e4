package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the reported service version.
const Version = "2.0.0"

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Organisation API",
		"version": Version,
	})
}
