package home

import (
	"github.com/gin-gonic/gin"

	"github.com/coursehound/course-api/api/types"
)

// RegisterRoutes registers the search page route
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/", Get(deps))
}
