package recommender

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{}, nil)

	if client.endpoint != "/recommend" {
		t.Errorf("Expected default endpoint /recommend, got %s", client.endpoint)
	}
	if client.userAgent != "CourseFinder/1.0" {
		t.Errorf("Expected default userAgent CourseFinder/1.0, got %s", client.userAgent)
	}
	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %v", client.httpClient.Timeout)
	}
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"absent base", "", "/recommend"},
		{"bare host", "http://localhost:5000", "http://localhost:5000/recommend"},
		{"bare host with trailing slash", "http://localhost:5000/", "http://localhost:5000/recommend"},
		{"host with path", "http://backend.internal/api", "http://backend.internal/api/recommend"},
		{"host already ending in recommend", "http://localhost:5000/recommend", "http://localhost:5000/recommend"},
		{"exactly the relative path", "/recommend", "/recommend"},
		{"recommend embedded in path", "http://host/recommend/v2", "http://host/recommend/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEndpoint(tt.base); got != tt.expected {
				t.Errorf("ResolveEndpoint(%q) = %q, want %q", tt.base, got, tt.expected)
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend" {
			t.Errorf("Expected path /recommend, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "machine learning" {
			t.Errorf("Expected q 'machine learning', got %q", got)
		}
		if got := r.URL.Query().Get("top_n"); got != "4" {
			t.Errorf("Expected top_n 4, got %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Missing User-Agent header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": "machine learning",
			"results": [
				{"title": "Intro to ML", "rating": 4.5, "score": 0.9231, "url": "https://example.com/ml"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 10 * time.Second}, nil)

	courses, err := client.Recommend(context.Background(), "machine learning", 4)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}
	if courses[0].Title != "Intro to ML" {
		t.Errorf("Expected title 'Intro to ML', got %s", courses[0].Title)
	}
	if courses[0].Rating == nil || *courses[0].Rating != 4.5 {
		t.Errorf("Expected rating 4.5, got %v", courses[0].Rating)
	}
	if courses[0].Score == nil || *courses[0].Score != 0.9231 {
		t.Errorf("Expected score 0.9231, got %v", courses[0].Score)
	}
}

func TestRecommendBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title": "Competitive Programming"}]`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	courses, err := client.Recommend(context.Background(), "programming", 4)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}
	if courses[0].Title != "Competitive Programming" {
		t.Errorf("Expected title 'Competitive Programming', got %s", courses[0].Title)
	}
}

func TestRecommendUnrecognizedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "nothing to see here"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	courses, err := client.Recommend(context.Background(), "anything", 4)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("Expected empty course list, got %d courses", len(courses))
	}
}

func TestRecommendEmptyQuery(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:5000"}, nil)

	if _, err := client.Recommend(context.Background(), "   ", 4); err == nil {
		t.Error("Expected error for whitespace-only query, got nil")
	}
}

func TestRecommendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	_, err := client.Recommend(context.Background(), "test", 4)
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status code 500, got %d", statusErr.StatusCode)
	}
}

func TestRecommendMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	if _, err := client.Recommend(context.Background(), "test", 4); err == nil {
		t.Error("Expected error for malformed body, got nil")
	}
}

func TestRecommendDefaultTopN(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("top_n"); got != "4" {
			t.Errorf("Expected default top_n 4, got %q", got)
		}
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	if _, err := client.Recommend(context.Background(), "test", 0); err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
}
