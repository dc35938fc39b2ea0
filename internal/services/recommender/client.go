package recommender

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// recommendPath is the route the backend serves recommendations on.
const recommendPath = "/recommend"

// StatusError reports a non-2xx response from the recommend backend.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Config holds configuration for the recommend backend client
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client handles communication with the course recommendation backend
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a new recommend backend client. The base URL is
// resolved once here so the rest of the client only ever sees the final
// endpoint.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "CourseFinder/1.0"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   ResolveEndpoint(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}
}

// Endpoint returns the resolved recommend endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ResolveEndpoint derives the recommend endpoint from a configured base
// address. An empty base yields the relative path /recommend, for
// deployments behind a reverse proxy exposing that path. A base already
// containing /recommend is left unchanged; otherwise /recommend is
// appended, so a bare host and a host with a path behave the same.
func ResolveEndpoint(base string) string {
	if base == "" {
		return recommendPath
	}
	if strings.Contains(base, recommendPath) {
		return base
	}
	return strings.TrimRight(base, "/") + recommendPath
}

// Recommend requests up to topN course recommendations for the query.
// The request URL is <endpoint>?q=<encoded query>&top_n=<topN>.
func (c *Client) Recommend(ctx context.Context, query string, topN int) ([]Course, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if topN <= 0 {
		topN = 4
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("top_n", strconv.Itoa(topN))

	requestURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	courses, shape, err := DecodePayload(body)
	if err != nil {
		return nil, err
	}
	if shape == ShapeUnrecognized {
		c.logger.Warn("unrecognized response shape from recommend backend",
			zap.String("query", query),
			zap.Int("body_bytes", len(body)),
		)
	}

	return courses, nil
}
