package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehound/course-api/internal/services/recommender"
)

func f64(v float64) *float64 { return &v }

func TestFromRecommender(t *testing.T) {
	tests := []struct {
		name     string
		input    *recommender.Course
		expected *Course
	}{
		{
			name: "all fields",
			input: &recommender.Course{
				Title:       "Intro to ML",
				Description: "A description",
				Headline:    "A headline",
				URL:         "https://example.com/ml",
				Rating:      f64(4.5),
				Score:       f64(0.9231),
			},
			expected: &Course{
				Title:  "Intro to ML",
				Blurb:  "A description",
				URL:    "https://example.com/ml",
				Rating: f64(4.5),
				Score:  f64(0.9231),
			},
		},
		{
			name:     "headline fallback",
			input:    &recommender.Course{Title: "A", Headline: "the headline"},
			expected: &Course{Title: "A", Blurb: "the headline"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromRecommender(tt.input))
		})
	}
}

func TestFromRecommenderList(t *testing.T) {
	courses := []recommender.Course{
		{Title: "A"},
		{Title: "B", Score: f64(0.5)},
	}

	result := FromRecommenderList(courses)

	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Title)
	assert.Equal(t, "B", result[1].Title)
	require.NotNil(t, result[1].Score)
	assert.Equal(t, 0.5, *result[1].Score)
}

func TestDependenciesTimeout(t *testing.T) {
	var nilDeps *Dependencies
	assert.Equal(t, 30*time.Second, nilDeps.Timeout())
	assert.Equal(t, 30*time.Second, (&Dependencies{}).Timeout())
	assert.Equal(t, 10*time.Second, (&Dependencies{SearchTimeout: 10 * time.Second}).Timeout())
}

func TestFromRecommenderListEmpty(t *testing.T) {
	result := FromRecommenderList(nil)

	require.NotNil(t, result)
	assert.Len(t, result, 0)
}
