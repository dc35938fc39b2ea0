package types

import (
	"github.com/coursehound/course-api/internal/services/recommender"
)

// FromRecommender transforms a backend course record to our simplified
// Course type.
func FromRecommender(c *recommender.Course) *Course {
	if c == nil {
		return nil
	}

	return &Course{
		Title:  c.Title,
		Blurb:  c.Blurb(),
		URL:    c.URL,
		Rating: c.Rating,
		Score:  c.Score,
	}
}

// FromRecommenderList transforms a list of backend course records.
func FromRecommenderList(courses []recommender.Course) []Course {
	result := make([]Course, 0, len(courses))
	for i := range courses {
		if transformed := FromRecommender(&courses[i]); transformed != nil {
			result = append(result, *transformed)
		}
	}
	return result
}
