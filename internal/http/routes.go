package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
	"github.com/campuswell/cw-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Chat      *service.ChatService
	Mood      *service.MoodService
	Analytics *service.AnalyticsService
	Survey    *service.SurveyService

	CookieDomain string
	SSOEnabled   bool
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	registerAuthRoutes(mux, authHandlers, services.SSOEnabled)
	registerRouteGuardRoutes(mux, services.Auth)
	registerChatRoutes(mux, &ChatHandlers{Svc: services.Chat}, services.Auth)
	registerMoodRoutes(mux, &MoodHandlers{Svc: services.Mood}, services.Auth)
	registerAnalyticsRoutes(mux, &AnalyticsHandlers{Svc: services.Analytics}, services.Auth)
	registerSurveyRoutes(mux, &SurveyHandlers{Svc: services.Survey}, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, ssoEnabled bool) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)

	if ssoEnabled {
		mux.HandleFunc("GET /auth/login", h.SSOLogin)
		mux.HandleFunc("GET /auth/callback", h.SSOCallback)
	}
}

func registerRouteGuardRoutes(mux *http.ServeMux, auth AuthServiceInterface) {
	h := &RouteHandlers{}
	mux.Handle("GET /api/routes/decision", OptionalAuth(auth)(http.HandlerFunc(h.Decision)))
}

func registerChatRoutes(mux *http.ServeMux, h *ChatHandlers, auth AuthServiceInterface) {
	requireAuth := RequireAuth(auth)
	mux.Handle("POST /api/chat/messages", requireAuth(http.HandlerFunc(h.SendMessage)))
	mux.Handle("GET /api/chat/history", requireAuth(http.HandlerFunc(h.History)))
	mux.Handle("GET /api/chat/starters", requireAuth(http.HandlerFunc(h.Starters)))
}

func registerMoodRoutes(mux *http.ServeMux, h *MoodHandlers, auth AuthServiceInterface) {
	student := RequireRole(auth, domainauth.RoleStudent)
	mux.Handle("GET /api/mood/entries", student(http.HandlerFunc(h.Entries)))
	mux.Handle("POST /api/mood/entries", student(http.HandlerFunc(h.SaveEntry)))
}

func registerAnalyticsRoutes(mux *http.ServeMux, h *AnalyticsHandlers, auth AuthServiceInterface) {
	staff := RequireRole(auth, domainauth.RoleCounselor, domainauth.RoleAdmin)
	admin := RequireRole(auth, domainauth.RoleAdmin)
	counselor := RequireRole(auth, domainauth.RoleCounselor)

	mux.Handle("GET /api/mood/analytics", staff(http.HandlerFunc(h.MoodAnalytics)))
	mux.Handle("GET /api/analytics/platform", admin(http.HandlerFunc(h.Platform)))
	mux.Handle("GET /api/analytics/counselor", counselor(http.HandlerFunc(h.Counselor)))
}

func registerSurveyRoutes(mux *http.ServeMux, h *SurveyHandlers, auth AuthServiceInterface) {
	requireAuth := RequireAuth(auth)
	mux.Handle("GET /api/survey/questions", requireAuth(http.HandlerFunc(h.Questions)))
	mux.Handle("POST /api/survey/responses", requireAuth(http.HandlerFunc(h.Submit)))
}
