package search

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursehound/course-api/api/types"
	"github.com/coursehound/course-api/internal/view"
)

// maxTopN caps the page size a caller can request.
const maxTopN = 50

// Get handles course search requests
// @Summary      Search for courses
// @Description  Search for course recommendations by query string
// @Tags         search
// @Produce      json
// @Param        q query string true "Search query"
// @Param        top_n query int false "Maximum number of results"
// @Success      200 {object} types.CourseSearchResponse "Course search results"
// @Failure      400 {object} types.ErrorResponse "Bad request - empty query"
// @Failure      502 {object} types.ErrorResponse "Bad gateway - recommend backend unavailable"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout - search request timed out"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			recordSearch(deps, "invalid", started)
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: view.MsgEmptyQuery,
			})
			return
		}

		topN := deps.TopN
		if topN <= 0 {
			topN = 4
		}
		if raw := c.Query("top_n"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxTopN {
				topN = n
			}
		}

		if deps.CourseClient == nil {
			recordSearch(deps, "error", started)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search service not available",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), deps.Timeout())
		defer cancel()

		upstreamStarted := time.Now()
		courses, err := deps.CourseClient.Recommend(ctx, query, topN)
		recordUpstream(deps, err, upstreamStarted)
		if err != nil {
			// Detail goes to the log only; the caller gets the fixed message.
			deps.Log().Error("recommend backend request failed",
				zap.String("query", query),
				zap.Error(err),
			)
			recordSearch(deps, "error", started)

			status := http.StatusBadGateway
			if ctx.Err() == context.DeadlineExceeded {
				status = http.StatusGatewayTimeout
			}
			c.JSON(status, types.ErrorResponse{
				Status:  types.StatusError,
				Message: view.MsgBackendFailure,
			})
			return
		}

		results := types.FromRecommenderList(courses)
		recordSearch(deps, "ok", started)

		c.JSON(http.StatusOK, types.CourseSearchResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search results retrieved successfully",
			},
			Results: results,
			Query:   query,
			Count:   len(results),
		})
	}
}

func recordSearch(deps *types.Dependencies, status string, started time.Time) {
	if deps == nil || deps.Metrics == nil {
		return
	}
	deps.Metrics.RecordSearch("api", status, time.Since(started))
}

func recordUpstream(deps *types.Dependencies, err error, started time.Time) {
	if deps == nil || deps.Metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	deps.Metrics.RecordUpstream(status, time.Since(started))
}
