// File: planner/http_test.go
package planner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campwise/models"
)

type recordedRequest struct {
	method  string
	path    string
	ifMatch string
	auth    string
}

// newRecordingServer captures every request and replies with a body that
// satisfies any of the backend's response envelopes.
func newRecordingServer() (*httptest.Server, func() []recordedRequest) {
	var mu sync.Mutex
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		reqs = append(reqs, recordedRequest{
			method:  r.Method,
			path:    r.URL.Path,
			ifMatch: r.Header.Get("If-Match"),
			auth:    r.Header.Get("Authorization"),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"day":   {"id": "day-1", "version": "v2"},
			"entry": {"id": "entry-1", "start": "09:00", "end": "10:00"},
			"task":  {"id": "task-1", "version": "v2"}
		}`)
	}))
	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]recordedRequest, len(reqs))
		copy(out, reqs)
		return out
	}
}

func TestHTTPBackendSendsIfMatchOnVersionedWrites(t *testing.T) {
	srv, recorded := newRecordingServer()
	defer srv.Close()
	backend := NewHTTPBackend(srv.URL, "tok-123")

	day, err := backend.UpdateDay(context.Background(), "day-1", models.DayPatch{}, "v1")
	require.NoError(t, err)
	assert.Equal(t, "v2", day.Version)

	task, err := backend.UpdateTask(context.Background(), "task-1", models.TaskPatch{}, "v1")
	require.NoError(t, err)
	assert.Equal(t, "v2", task.Version)

	// Entry patches are last-write-wins: no precondition travels with them.
	_, err = backend.UpdateEntry(context.Background(), "entry-1", models.EntryPatch{})
	require.NoError(t, err)

	reqs := recorded()
	require.Len(t, reqs, 3)

	assert.Equal(t, http.MethodPatch, reqs[0].method)
	assert.Equal(t, "/api/days/day-1", reqs[0].path)
	assert.Equal(t, "v1", reqs[0].ifMatch)

	assert.Equal(t, "/api/tasks/task-1", reqs[1].path)
	assert.Equal(t, "v1", reqs[1].ifMatch)

	assert.Equal(t, "/api/entries/entry-1", reqs[2].path)
	assert.Empty(t, reqs[2].ifMatch)

	for _, r := range reqs {
		assert.Equal(t, "Bearer tok-123", r.auth)
	}
}

func TestHTTPBackendStatusMapping(t *testing.T) {
	cases := []struct {
		status       int
		wantConflict bool
	}{
		{http.StatusConflict, true},
		{http.StatusNotFound, false},
		{http.StatusUnprocessableEntity, false},
		{http.StatusInternalServerError, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				fmt.Fprint(w, `{"error": "nope"}`)
			}))
			defer srv.Close()
			backend := NewHTTPBackend(srv.URL, "")

			_, err := backend.UpdateDay(context.Background(), "day-1", models.DayPatch{}, "stale")
			require.Error(t, err)
			if c.wantConflict {
				assert.ErrorIs(t, err, ErrVersionConflict)
			} else {
				assert.NotErrorIs(t, err, ErrVersionConflict)
				assert.Contains(t, err.Error(), fmt.Sprint(c.status))
			}

			_, err = backend.UpdateTask(context.Background(), "task-1", models.TaskPatch{}, "stale")
			require.Error(t, err)
			assert.Equal(t, c.wantConflict, errors.Is(err, ErrVersionConflict))
		})
	}
}
