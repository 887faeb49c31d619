package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

func TestAnalyticsHandlers_MoodAnalytics(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleCounselor)

	rec := env.do(t, http.MethodGet, "/api/mood/analytics?timeframe=week", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, 3.2, body["averageMood"])
	assert.Equal(t, "+15%", body["improvementTrend"])
}

func TestAnalyticsHandlers_MoodAnalytics_BadTimeframe(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/mood/analytics?timeframe=eon", "", cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandlers_Platform(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/analytics/platform", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, float64(1247), body["totalUsers"])
	assert.Len(t, body["topStressors"], 5)
}

func TestAnalyticsHandlers_Platform_Query(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/analytics/platform?query=wellnessMetrics.engagementRate", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"result":76}`, rec.Body.String())
}

func TestAnalyticsHandlers_Platform_BadQuery(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/analytics/platform?query=totalUsers%5B", "", cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandlers_Counselor(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleCounselor)

	rec := env.do(t, http.MethodGet, "/api/analytics/counselor", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Len(t, body["assignedStudents"], 3)
	assert.Len(t, body["recentAlerts"], 2)
	stats := body["weeklyStats"].(map[string]any)
	assert.Equal(t, float64(89), stats["totalCheckIns"])
}
