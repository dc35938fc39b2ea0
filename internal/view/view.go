package view

import (
	"fmt"
	"strconv"

	"github.com/coursehound/course-api/internal/services/recommender"
)

// User-facing messages. Upstream error detail is logged, never shown.
const (
	MsgEmptyQuery     = "Type a course name to search"
	MsgBackendFailure = "Could not fetch results from backend. Check backend is running."
)

// State identifies what the search page is showing.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Card is one rendered course card. Display strings are derived here so
// the template stays logic-free.
type Card struct {
	Title  string
	Blurb  string
	URL    string
	Rating string
	Score  string
	Sample bool
}

// Model is everything the search page template needs. Handlers build one
// per request; there is no shared mutable search state.
type Model struct {
	State   State
	Query   string
	Message string
	Cards   []Card
}

// IsLoading reports whether the page should show the searching indicator.
func (m Model) IsLoading() bool { return m.State == StateLoading }

// IsError reports whether the page should show the error box.
func (m Model) IsError() bool { return m.State == StateError }

// Idle is the page before any search has been submitted.
func Idle() Model {
	return Model{State: StateIdle, Cards: SampleCards()}
}

// Loading is the page while a search is outstanding.
func Loading(query string) Model {
	return Model{State: StateLoading, Query: query}
}

// Loaded is the page after a successful search. A search that matched
// nothing falls back to the sample cards, same as the idle page.
func Loaded(query string, courses []recommender.Course) Model {
	if len(courses) == 0 {
		return Model{State: StateSuccess, Query: query, Cards: SampleCards()}
	}

	cards := make([]Card, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, newCard(c))
	}
	return Model{State: StateSuccess, Query: query, Cards: cards}
}

// Failed is the page after a search attempt that could not complete.
func Failed(query, message string) Model {
	return Model{State: StateError, Query: query, Message: message}
}

// SampleCards returns the two fixed placeholder cards shown before any
// search has produced results.
func SampleCards() []Card {
	return []Card{
		{
			Title:  "Algorithms and Data Structures",
			Blurb:  "Sorting, graphs, dynamic programming and the analysis behind them.",
			URL:    "#",
			Rating: "4.7",
			Score:  "—",
			Sample: true,
		},
		{
			Title:  "Competitive Programming",
			Blurb:  "Contest problem solving from first principles to advanced techniques.",
			URL:    "#",
			Rating: "4.6",
			Score:  "—",
			Sample: true,
		},
	}
}

func newCard(c recommender.Course) Card {
	return Card{
		Title:  c.Title,
		Blurb:  c.Blurb(),
		URL:    cardURL(c.URL),
		Rating: formatRating(c.Rating),
		Score:  formatScore(c.Score),
	}
}

func cardURL(u string) string {
	if u == "" {
		return "#"
	}
	return u
}

func formatRating(r *float64) string {
	if r == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

// formatScore renders a similarity score to three decimal places, or an
// em-dash when the backend sent none.
func formatScore(s *float64) string {
	if s == nil {
		return "—"
	}
	return fmt.Sprintf("%.3f", *s)
}
