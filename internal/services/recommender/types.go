package recommender

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Course is one recommended course record returned by the backend. Every
// field is optional: the backend detects CSV columns at load time, so any
// of them can be absent from a given deployment's responses.
type Course struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Headline    string   `json:"headline,omitempty"`
	URL         string   `json:"url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// Blurb returns the display text for a course: the description when
// present, otherwise the headline, otherwise empty.
func (c Course) Blurb() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Headline
}

// PayloadShape identifies which of the backend's response layouts a body
// matched.
type PayloadShape int

const (
	// ShapeWrapped is an object exposing a "results" array.
	ShapeWrapped PayloadShape = iota
	// ShapeBare is a top-level array of course records.
	ShapeBare
	// ShapeUnrecognized is valid JSON in neither layout; it degrades to an
	// empty course list and callers are expected to log it.
	ShapeUnrecognized
)

func (s PayloadShape) String() string {
	switch s {
	case ShapeWrapped:
		return "wrapped"
	case ShapeBare:
		return "bare"
	default:
		return "unrecognized"
	}
}

// DecodePayload normalizes a recommend response body. The backend returns
// either {"results": [...]} or a bare array of the same item shape; both
// are treated identically. Any other valid JSON, scalars and mistyped
// results fields included, degrades to an empty list with
// ShapeUnrecognized rather than an error. Only bodies that are not valid
// JSON at all are an error.
func DecodePayload(body []byte) ([]Course, PayloadShape, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var courses []Course
		if err := json.Unmarshal(body, &courses); err != nil {
			return nil, ShapeBare, fmt.Errorf("decoding bare result list: %w", err)
		}
		return courses, ShapeBare, nil
	}

	var wrapper struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		if !json.Valid(body) {
			return nil, ShapeUnrecognized, fmt.Errorf("decoding response: %w", err)
		}
		// Valid JSON that is not an object, e.g. a number or string.
		return []Course{}, ShapeUnrecognized, nil
	}

	// An absent results key leaves the raw message empty; a null or
	// mistyped one fails to decode as a list. All of these degrade.
	var courses []Course
	if err := json.Unmarshal(wrapper.Results, &courses); err != nil || courses == nil {
		return []Course{}, ShapeUnrecognized, nil
	}
	return courses, ShapeWrapped, nil
}
