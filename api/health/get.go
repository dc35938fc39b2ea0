package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coursehound/course-api/api/types"
	"github.com/coursehound/course-api/internal/services/recommender"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service health and the resolved recommend endpoint
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service health"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.CourseClient != nil {
			response["recommender"] = getRecommenderStatus(deps)
		} else {
			response["recommender"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getRecommenderStatus reports how the recommend backend is wired. The
// backend is not probed here; a health check must stay cheap.
func getRecommenderStatus(deps *types.Dependencies) gin.H {
	status := gin.H{"status": "configured"}
	if client, ok := deps.CourseClient.(*recommender.Client); ok {
		status["endpoint"] = client.Endpoint()
	}
	return status
}
