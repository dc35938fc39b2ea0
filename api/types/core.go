package types

// Core data types used across API responses

// Course represents a recommended course with essential fields. Rating and
// Score stay numeric here; display formatting is the page's concern.
type Course struct {
	Title  string   `json:"title"`
	Blurb  string   `json:"blurb,omitempty"` // Description, falling back to headline
	URL    string   `json:"url,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
	Score  *float64 `json:"score,omitempty"`
}
