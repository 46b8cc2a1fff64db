// Package counselor is the HTTP client for the external analysis service.
package counselor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-counsel/internal/domain"
	"career-counsel/internal/metrics"
)

const (
	submitSchoolPath = "/api/school-students"
	statusPath       = "/api/status/"

	// Upper bound on bodies read from the service.
	maxResponseBytes = 4 << 20
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("counselor API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client talks to the analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ domain.CounselorClient = (*Client)(nil)

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SubmitSchoolAssessment posts a finished school questionnaire.
func (c *Client) SubmitSchoolAssessment(ctx context.Context, payload *domain.SchoolSubmission) (*domain.SubmissionResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	resp, err := c.doRequest(ctx, "submit_school", http.MethodPost, submitSchoolPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result domain.SubmissionResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission response: %w", err)
	}
	return &result, nil
}

// GetStatus fetches the status document for sessionID.
func (c *Client) GetStatus(ctx context.Context, sessionID string) (*domain.ResultsResponse, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	resp, err := c.doRequest(ctx, "get_status", http.MethodGet, statusPath+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, err
	}

	result, err := domain.DecodeResultsResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal status response: %w", err)
	}
	return result, nil
}

func (c *Client) doRequest(ctx context.Context, operation, method, path string, body io.Reader) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	return respBody, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
