package home

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursehound/course-api/api/types"
	"github.com/coursehound/course-api/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Get renders the course search page. A request without a q parameter is
// the idle page; a request with one runs a search and renders its outcome.
// @Summary      Course search page
// @Description  Server-rendered search page; submit the form with a q parameter to search
// @Tags         pages
// @Produce      html
// @Param        q query string false "Search query"
// @Success      200 {string} string "Rendered search page"
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := buildModel(c.Request.Context(), deps, c.Request.URL.Query().Has("q"), c.Query("q"))

		if deps != nil && deps.Metrics != nil {
			deps.Metrics.RecordPage(model.State.String())
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := pageTemplate.ExecuteTemplate(c.Writer, "index.html.tmpl", model); err != nil {
			deps.Log().Error("rendering search page failed", zap.Error(err))
		}
	}
}

// buildModel maps one request onto a view model. Each request owns its
// model, so a later submission can never clobber an earlier one's state.
func buildModel(ctx context.Context, deps *types.Dependencies, submitted bool, rawQuery string) view.Model {
	if !submitted {
		return view.Idle()
	}

	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return view.Failed(rawQuery, view.MsgEmptyQuery)
	}

	if deps == nil || deps.CourseClient == nil {
		return view.Failed(query, view.MsgBackendFailure)
	}

	topN := deps.TopN
	if topN <= 0 {
		topN = 4
	}

	started := time.Now()
	reqCtx, cancel := context.WithTimeout(ctx, deps.Timeout())
	defer cancel()

	courses, err := deps.CourseClient.Recommend(reqCtx, query, topN)
	if deps.Metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		deps.Metrics.RecordUpstream(status, time.Since(started))
		deps.Metrics.RecordSearch("page", status, time.Since(started))
	}
	if err != nil {
		deps.Log().Error("recommend backend request failed",
			zap.String("query", query),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return view.Failed(query, view.MsgBackendFailure)
	}

	return view.Loaded(query, courses)
}
