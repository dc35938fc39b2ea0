package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehound/course-api/internal/services/recommender"
)

func f64(v float64) *float64 { return &v }

func TestIdleShowsSampleCards(t *testing.T) {
	m := Idle()

	assert.Equal(t, StateIdle, m.State)
	require.Len(t, m.Cards, 2)
	assert.Equal(t, "Algorithms and Data Structures", m.Cards[0].Title)
	assert.Equal(t, "Competitive Programming", m.Cards[1].Title)
	assert.True(t, m.Cards[0].Sample)
	assert.True(t, m.Cards[1].Sample)
}

func TestLoadedWithResults(t *testing.T) {
	courses := []recommender.Course{
		{Title: "Intro to ML", Rating: f64(4.5), Score: f64(0.9231), URL: "https://example.com/ml"},
	}

	m := Loaded("machine learning", courses)

	assert.Equal(t, StateSuccess, m.State)
	assert.Equal(t, "machine learning", m.Query)
	require.Len(t, m.Cards, 1)

	card := m.Cards[0]
	assert.Equal(t, "Intro to ML", card.Title)
	assert.Equal(t, "4.5", card.Rating)
	assert.Equal(t, "0.923", card.Score)
	assert.Equal(t, "https://example.com/ml", card.URL)
	assert.False(t, card.Sample)
}

func TestLoadedWithZeroResultsFallsBackToSamples(t *testing.T) {
	m := Loaded("nothing matches this", nil)

	assert.Equal(t, StateSuccess, m.State)
	require.Len(t, m.Cards, 2)
	assert.Equal(t, "Algorithms and Data Structures", m.Cards[0].Title)
	assert.Equal(t, "Competitive Programming", m.Cards[1].Title)
}

func TestLoadedAbsentFields(t *testing.T) {
	m := Loaded("q", []recommender.Course{{Title: "Bare"}})

	require.Len(t, m.Cards, 1)
	card := m.Cards[0]
	assert.Equal(t, "#", card.URL)
	assert.Equal(t, "N/A", card.Rating)
	assert.Equal(t, "—", card.Score)
	assert.Equal(t, "", card.Blurb)
}

func TestLoadedBlurbPrefersDescription(t *testing.T) {
	m := Loaded("q", []recommender.Course{
		{Title: "A", Description: "full description", Headline: "short headline"},
		{Title: "B", Headline: "short headline"},
	})

	require.Len(t, m.Cards, 2)
	assert.Equal(t, "full description", m.Cards[0].Blurb)
	assert.Equal(t, "short headline", m.Cards[1].Blurb)
}

func TestFailed(t *testing.T) {
	m := Failed("query", MsgBackendFailure)

	assert.Equal(t, StateError, m.State)
	assert.Equal(t, "Could not fetch results from backend. Check backend is running.", m.Message)
	assert.Empty(t, m.Cards)
}

func TestLoading(t *testing.T) {
	m := Loading("query")

	assert.Equal(t, StateLoading, m.State)
	assert.Empty(t, m.Cards)
	assert.Empty(t, m.Message)
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		expected string
	}{
		{"three decimals", f64(0.9231), "0.923"},
		{"longer fraction", f64(0.123456), "0.123"},
		{"whole number", f64(1), "1.000"},
		{"absent", nil, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatScore(tt.score))
		})
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		name     string
		rating   *float64
		expected string
	}{
		{"one decimal", f64(4.5), "4.5"},
		{"whole number", f64(4), "4"},
		{"absent", nil, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRating(tt.rating))
		})
	}
}
