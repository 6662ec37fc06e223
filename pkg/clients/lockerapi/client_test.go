package lockerapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zap.NewNop())
}

func TestListLockers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/lockers", r.URL.Path)
		io.WriteString(w, `[
			{"id": 1, "area": "gym", "type": "small"},
			{"id": 2, "area": "pool", "type": "large", "userId": 9, "endDate": "2026-04-01"}
		]`)
	})

	lockers, err := client.ListLockers(context.Background())
	require.NoError(t, err)
	require.Len(t, lockers, 2)

	assert.Equal(t, int64(1), lockers[0].ID)
	assert.Nil(t, lockers[0].UserID)
	assert.Nil(t, lockers[0].EndDate)

	require.NotNil(t, lockers[1].UserID)
	assert.Equal(t, int64(9), *lockers[1].UserID)
	require.NotNil(t, lockers[1].EndDate)
	assert.Equal(t, "2026-04-01", lockers[1].EndDate.String())
}

func TestListLockersRejectsMalformedEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id": 1, "area": "gym"}]`)
	})

	_, err := client.ListLockers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed locker")
}

func TestNon200IsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, "locker already assigned")
	})

	err := client.CreateAssignment(context.Background(), 1, 9)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "locker already assigned", apiErr.Body)
}

func TestCreateLocker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/lockers", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"area": "gym", "type": "small"}, req)

		io.WriteString(w, `{"id": 5, "area": "gym", "type": "small"}`)
	})

	locker, err := client.CreateLocker(context.Background(), "gym", "small")
	require.NoError(t, err)
	assert.Equal(t, int64(5), locker.ID)
	assert.False(t, locker.Assigned())
}

func TestCreatePerson(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/people", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Sam", req["name"])
		assert.Equal(t, "R2", req["rota"])

		io.WriteString(w, `{
			"id": 42, "name": "Sam", "startDate": "2026-01-05", "endDate": "2026-06-30",
			"email": "sam@example.org", "rota": "R2"
		}`)
	})

	draft := PersonDraft{Name: "Sam", Email: "sam@example.org", Rota: "R2"}
	var err error
	draft.StartDate, err = model.ParseDate("2026-01-05")
	require.NoError(t, err)
	draft.EndDate, err = model.ParseDate("2026-06-30")
	require.NoError(t, err)

	person, err := client.CreatePerson(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(42), person.ID)
	assert.Equal(t, "Sam", person.Name)
}

func TestCreateAssignmentWireFormat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/assign", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"locker_id": 1, "person_id": 9}`, string(body))

		io.WriteString(w, `{"ok": true}`)
	})

	require.NoError(t, client.CreateAssignment(context.Background(), 1, 9))
}
