package httpx

import (
	"strings"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

// RouteAction is the outcome of a route authorization check.
type RouteAction string

const (
	// RouteAllow lets the navigation proceed.
	RouteAllow RouteAction = "allow"
	// RouteRedirect sends the client to RedirectTo instead.
	RouteRedirect RouteAction = "redirect"
)

// RouteDecision tells the SPA whether a client-side navigation is permitted
// and, if not, where to send the user instead.
type RouteDecision struct {
	Action     RouteAction `json:"action"`
	RedirectTo string      `json:"redirectTo,omitempty"`
}

const (
	loginPath = "/login"
	homePath  = "/dashboard"
)

// publicRoutes need no session.
var publicRoutes = map[string]struct{}{
	"/login":  {},
	"/signup": {},
}

// protectedRoutes maps each app route to the roles that may open it.
// A nil slice admits any authenticated user.
var protectedRoutes = map[string][]domainauth.Role{
	"/dashboard": nil,
	"/chat":      nil,
	"/wellness":  {domainauth.RoleStudent},
	"/mood":      {domainauth.RoleStudent},
	"/students":  {domainauth.RoleCounselor},
	"/analytics": {domainauth.RoleCounselor, domainauth.RoleAdmin},
	"/users":     {domainauth.RoleAdmin},
	"/settings":  {domainauth.RoleAdmin},
}

// EvaluateRoute decides whether a session may open an app route. It is a pure
// function of its inputs so the same navigation always resolves the same way.
//
// Unknown paths redirect to the role home rather than surfacing a 404; the SPA
// has no error page and treats every bad link as "go home".
func EvaluateRoute(session *domainauth.Session, path string) RouteDecision {
	path = normalizeRoutePath(path)

	if _, ok := publicRoutes[path]; ok {
		return RouteDecision{Action: RouteAllow}
	}

	if session == nil {
		return RouteDecision{Action: RouteRedirect, RedirectTo: loginPath}
	}

	home := roleHome(session.Role)

	if path == "/" {
		return RouteDecision{Action: RouteRedirect, RedirectTo: home}
	}

	roles, known := protectedRoutes[path]
	if !known {
		return RouteDecision{Action: RouteRedirect, RedirectTo: home}
	}

	if roles == nil {
		return RouteDecision{Action: RouteAllow}
	}
	for _, role := range roles {
		if session.Role == role {
			return RouteDecision{Action: RouteAllow}
		}
	}
	return RouteDecision{Action: RouteRedirect, RedirectTo: home}
}

// roleHome returns the landing route for a role. Every role currently lands
// on the dashboard; the indirection exists so per-role homes stay a one-line
// change.
func roleHome(domainauth.Role) string {
	return homePath
}

// normalizeRoutePath trims trailing slashes and defaults empty input to "/".
func normalizeRoutePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
