package types

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/coursehound/course-api/internal/metrics"
	"github.com/coursehound/course-api/internal/services/recommender"
)

// CourseSearcher is the recommend backend surface handlers depend on.
type CourseSearcher interface {
	Recommend(ctx context.Context, query string, topN int) ([]recommender.Course, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	CourseClient CourseSearcher
	Logger       *zap.Logger
	Metrics      *metrics.Metrics

	// TopN is the fixed page size sent to the backend; it is configured
	// at startup and not user-adjustable beyond clamping.
	TopN int

	// SearchTimeout bounds one search request end to end, including the
	// backend call.
	SearchTimeout time.Duration
}

// Timeout returns the configured search timeout, falling back to 30
// seconds when none is set.
func (d *Dependencies) Timeout() time.Duration {
	if d == nil || d.SearchTimeout <= 0 {
		return 30 * time.Second
	}
	return d.SearchTimeout
}

// Log returns the configured logger, or a no-op logger when none is set.
func (d *Dependencies) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
