package mcp

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

	"github.com/claude/runstrong/internal/models"
)

// HTTPClient implements DataSource by calling the RunStrong REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but data lives on
// the server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The API
// key is only needed for the catalog mutation operations.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, payload, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("httpclient: %s (status %d): %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("httpclient: %s failed (status %d)", path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("httpclient: decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) GenerateWorkout(ctx context.Context, in models.GenerateWorkoutInput) (*models.WorkoutWithExercises, error) {
	var workout models.WorkoutWithExercises
	if err := c.do(ctx, http.MethodPost, "/api/v1/workouts/generate", nil, in, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *HTTPClient) UserWorkouts(ctx context.Context, userID string) ([]models.WorkoutWithExercises, error) {
	params := url.Values{"user_id": {userID}}
	var workouts []models.WorkoutWithExercises
	if err := c.do(ctx, http.MethodGet, "/api/v1/workouts", params, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *HTTPClient) CompleteWorkout(ctx context.Context, workoutID int) (*models.Workout, error) {
	var workout models.Workout
	path := fmt.Sprintf("/api/v1/workouts/%d/complete", workoutID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *HTTPClient) Exercises(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.do(ctx, http.MethodGet, "/api/v1/exercises", nil, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *HTTPClient) CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := c.do(ctx, http.MethodPost, "/api/v1/exercises", nil, in, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (c *HTTPClient) Seed(ctx context.Context) (*models.SeedResult, error) {
	var result models.SeedResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/seed", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
