package httpx

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func sessionCookieFrom(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("no session_id cookie set")
	return nil
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"student@example.com","password":"demo","role":"student"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec.Body.String())
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", user["name"])
	assert.Equal(t, "student@example.com", user["email"])
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "/api/placeholder/150/150", user["avatar"])
	assert.Contains(t, body["token"], "mock-jwt-token-")

	cookie := sessionCookieFrom(t, rec.Result().Cookies())
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The cookie resolves to a live session
	sess, err := env.Auth.GetSession(t.Context(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleStudent, sess.Role)
}

func TestAuthHandlers_Login_EmptyFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"","password":"","role":"student"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "invalid_credentials", body["error"])
	assert.Equal(t, "Email and password are required", body["message"])
}

func TestAuthHandlers_Login_WrongRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"student@example.com","password":"demo","role":"admin"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "invalid_credentials", body["error"])
	assert.Equal(t, "Invalid credentials or role", body["message"])
}

func TestAuthHandlers_Login_UnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"pw","role":"student"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlers_Signup_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"New Student","email":"new@example.com","password":"secret1","confirm_password":"secret1"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec.Body.String())
	user := body["user"].(map[string]any)
	assert.Equal(t, "New Student", user["name"])
	assert.Equal(t, "student", user["role"])
	sessionCookieFrom(t, rec.Result().Cookies())

	// The new account can log back in
	rec = env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"new@example.com","password":"secret1","role":"student"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandlers_Signup_ShortPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"A","email":"a@example.com","password":"123"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "Password must be at least 6 characters", body["message"])
	assert.Equal(t, "password", body["field"])
}

func TestAuthHandlers_Signup_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"","email":"","password":""}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "All fields are required", body["message"])
}

func TestAuthHandlers_Signup_PasswordMismatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup",
		`{"name":"A","email":"a@example.com","password":"secret1","confirm_password":"secret2"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, "Passwords do not match", body["message"])
}

func TestAuthHandlers_Logout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleStudent)

	rec := env.do(t, http.MethodPost, "/api/auth/logout", "", cookie)

	require.Equal(t, http.StatusOK, rec.Code)

	// Session is gone and the cookie is cleared
	_, err := env.Auth.GetSession(t.Context(), cookie.Value)
	require.Error(t, err)
	cleared := sessionCookieFrom(t, rec.Result().Cookies())
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestAuthHandlers_Status(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.String())
	assert.Equal(t, false, body["authenticated"])

	cookie := env.seedSession(t, domainauth.RoleCounselor)
	rec = env.do(t, http.MethodGet, "/api/auth/status", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec.Body.String())
	assert.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "counselor", user["role"])
}
