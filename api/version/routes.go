package version

import (
	"github.com/gin-gonic/gin"

	"github.com/coursehound/course-api/api/types"
)

// RegisterRoutes registers version routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/version", Get())
}
