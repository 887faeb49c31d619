package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

func sessionWithRole(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{ID: "sess-1", UserID: 1, Role: role}
}

func TestEvaluateRoute_PublicRoutes(t *testing.T) {
	for _, path := range []string{"/login", "/signup"} {
		assert.Equal(t, RouteDecision{Action: RouteAllow}, EvaluateRoute(nil, path), path)
		assert.Equal(t, RouteDecision{Action: RouteAllow},
			EvaluateRoute(sessionWithRole(domainauth.RoleAdmin), path), path)
	}
}

func TestEvaluateRoute_UnauthenticatedRedirectsToLogin(t *testing.T) {
	for _, path := range []string{"/", "/dashboard", "/chat", "/users", "/no-such-page"} {
		got := EvaluateRoute(nil, path)
		assert.Equal(t, RouteRedirect, got.Action, path)
		assert.Equal(t, "/login", got.RedirectTo, path)
	}
}

func TestEvaluateRoute_AuthenticatedRoutes(t *testing.T) {
	cases := []struct {
		path string
		role domainauth.Role
		want RouteDecision
	}{
		{"/dashboard", domainauth.RoleStudent, RouteDecision{Action: RouteAllow}},
		{"/chat", domainauth.RoleCounselor, RouteDecision{Action: RouteAllow}},
		{"/chat", domainauth.RoleAdmin, RouteDecision{Action: RouteAllow}},

		{"/wellness", domainauth.RoleStudent, RouteDecision{Action: RouteAllow}},
		{"/mood", domainauth.RoleStudent, RouteDecision{Action: RouteAllow}},
		{"/mood", domainauth.RoleCounselor, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}},

		{"/students", domainauth.RoleCounselor, RouteDecision{Action: RouteAllow}},
		{"/students", domainauth.RoleAdmin, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}},

		{"/analytics", domainauth.RoleCounselor, RouteDecision{Action: RouteAllow}},
		{"/analytics", domainauth.RoleAdmin, RouteDecision{Action: RouteAllow}},
		{"/analytics", domainauth.RoleStudent, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}},

		{"/users", domainauth.RoleAdmin, RouteDecision{Action: RouteAllow}},
		{"/users", domainauth.RoleStudent, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}},
		{"/settings", domainauth.RoleAdmin, RouteDecision{Action: RouteAllow}},
	}

	for _, tc := range cases {
		got := EvaluateRoute(sessionWithRole(tc.role), tc.path)
		assert.Equal(t, tc.want, got, "%s as %s", tc.path, tc.role)
	}
}

func TestEvaluateRoute_RootAliasesToHome(t *testing.T) {
	got := EvaluateRoute(sessionWithRole(domainauth.RoleStudent), "/")
	assert.Equal(t, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}, got)
}

func TestEvaluateRoute_UnknownPathRedirectsHome(t *testing.T) {
	got := EvaluateRoute(sessionWithRole(domainauth.RoleAdmin), "/reports/quarterly")
	assert.Equal(t, RouteDecision{Action: RouteRedirect, RedirectTo: "/dashboard"}, got)
}

func TestEvaluateRoute_NormalizesPaths(t *testing.T) {
	sess := sessionWithRole(domainauth.RoleStudent)

	assert.Equal(t, RouteAllow, EvaluateRoute(sess, "/dashboard/").Action)
	assert.Equal(t, RouteAllow, EvaluateRoute(sess, "dashboard").Action)
	assert.Equal(t, "/dashboard", EvaluateRoute(sess, "").RedirectTo)
}

func TestEvaluateRoute_Idempotent(t *testing.T) {
	sess := sessionWithRole(domainauth.RoleCounselor)

	first := EvaluateRoute(sess, "/mood")
	second := EvaluateRoute(sess, "/mood")
	assert.Equal(t, first, second)
}
