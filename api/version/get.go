package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Version information
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version info"
// @Router       /api/v1/version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Course Finder API",
			"version":     "1.0.0",
			"description": "A course discovery service backed by an external recommendation engine",
			"status":      "running",
		})
	}
}
