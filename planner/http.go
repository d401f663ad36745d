// File: planner/http.go
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campwise/models"
)

// HTTPBackend implements Backend against the campwise REST API.
type HTTPBackend struct {
	BaseURL string
	Token   string // bearer token from the auth collaborator
	Client  *http.Client
}

// NewHTTPBackend builds a backend for the given API base URL.
func NewHTTPBackend(baseURL, token string) *HTTPBackend {
	return &HTTPBackend{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *HTTPBackend) GetDay(ctx context.Context, dayID string) (*models.CampDay, error) {
	var out struct {
		Day models.CampDay `json:"day"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/days/"+dayID, nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Day, nil
}

func (b *HTTPBackend) UpdateDay(ctx context.Context, dayID string, patch models.DayPatch, version string) (*models.CampDay, error) {
	var out struct {
		Day models.CampDay `json:"day"`
	}
	if err := b.do(ctx, http.MethodPatch, "/api/days/"+dayID, patch, version, &out); err != nil {
		return nil, err
	}
	return &out.Day, nil
}

func (b *HTTPBackend) ListEntries(ctx context.Context, dayID string) ([]models.ScheduleEntry, error) {
	var out struct {
		Entries []models.ScheduleEntry `json:"entries"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/days/"+dayID+"/entries", nil, "", &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func (b *HTTPBackend) CreateEntry(ctx context.Context, dayID string, req models.CreateEntryRequest) (*models.ScheduleEntry, error) {
	var out struct {
		Entry models.ScheduleEntry `json:"entry"`
	}
	if err := b.do(ctx, http.MethodPost, "/api/days/"+dayID+"/entries", req, "", &out); err != nil {
		return nil, err
	}
	return &out.Entry, nil
}

func (b *HTTPBackend) UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error) {
	var out struct {
		Entry models.ScheduleEntry `json:"entry"`
	}
	if err := b.do(ctx, http.MethodPatch, "/api/entries/"+entryID, patch, "", &out); err != nil {
		return nil, err
	}
	return &out.Entry, nil
}

func (b *HTTPBackend) DeleteEntry(ctx context.Context, entryID string) error {
	return b.do(ctx, http.MethodDelete, "/api/entries/"+entryID, nil, "", nil)
}

func (b *HTTPBackend) CreateActivity(ctx context.Context, groupID string, req models.CreateActivityRequest) (*models.Activity, error) {
	var out struct {
		Activity models.Activity `json:"activity"`
	}
	if err := b.do(ctx, http.MethodPost, "/api/groups/"+groupID+"/activities", req, "", &out); err != nil {
		return nil, err
	}
	return &out.Activity, nil
}

func (b *HTTPBackend) GetActivitySummary(ctx context.Context, activityID string) (*models.ActivitySummary, error) {
	var out struct {
		Activity models.ActivitySummary `json:"activity"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/activities/"+activityID, nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Activity, nil
}

func (b *HTTPBackend) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	var out struct {
		Task models.Task `json:"task"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/tasks/"+taskID, nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (b *HTTPBackend) UpdateTask(ctx context.Context, taskID string, patch models.TaskPatch, version string) (*models.Task, error) {
	var out struct {
		Task models.Task `json:"task"`
	}
	if err := b.do(ctx, http.MethodPatch, "/api/tasks/"+taskID, patch, version, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

// do performs one JSON round trip. A non-empty version is sent as If-Match;
// a 409 response maps to ErrVersionConflict.
func (b *HTTPBackend) do(ctx context.Context, method, path string, body interface{}, version string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.Token != "" {
		req.Header.Set("Authorization", "Bearer "+b.Token)
	}
	if version != "" {
		req.Header.Set("If-Match", version)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return ErrVersionConflict
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
