package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

func TestSurveyHandlers_Questions(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodGet, "/api/survey/questions", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	questions, ok := body["questions"].([]any)
	require.True(t, ok)
	require.Len(t, questions, 4)

	first := questions[0].(map[string]any)
	assert.Equal(t, "scale", first["type"])
}

func TestSurveyHandlers_Submit(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodPost, "/api/survey/responses",
		`{"responses":{"1":4,"3":"Often"}}`, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, true, body["submitted"])
	assert.NotEmpty(t, body["message"])
}

func TestSurveyHandlers_Submit_Empty(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodPost, "/api/survey/responses", `{"responses":{}}`, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
