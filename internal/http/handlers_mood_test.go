package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

func TestMoodHandlers_Entries(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodGet, "/api/mood/entries?days=5", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	entries, ok := body["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 5)

	latest := entries[4].(map[string]any)
	assert.Equal(t, "Feeling optimistic today!", latest["notes"])
}

func TestMoodHandlers_Entries_BadDays(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodGet, "/api/mood/entries?days=soon", "", cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoodHandlers_SaveEntry(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodPost, "/api/mood/entries",
		`{"date":"2026-08-30","mood":4,"energy":3,"sleep":8,"stress":2,"notes":"solid day"}`, cookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, float64(4), body["mood"])
	assert.Equal(t, "solid day", body["notes"])
	assert.NotZero(t, body["id"])
	assert.NotEmpty(t, body["createdAt"])
}

func TestMoodHandlers_SaveEntry_OutOfRange(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodPost, "/api/mood/entries",
		`{"mood":6,"energy":3,"sleep":8,"stress":2}`, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "mood", body["field"])
}
