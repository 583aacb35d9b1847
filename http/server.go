package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pokerclub/auth"
	"pokerclub/club"
	"pokerclub/ws"
)

type Server struct {
	router   *mux.Router
	handlers *Handlers
}

func NewServer(authService *auth.Service, schedule *club.Schedule, rsvps *club.RSVPs, admin *club.Admin, members *club.Members, hub *ws.Hub) *Server {
	router := mux.NewRouter()
	handlers := NewHandlers(authService, schedule, rsvps, admin, members, hub)

	server := &Server{
		router:   router,
		handlers: handlers,
	}

	server.setupRoutes(authService)
	return server
}

func (s *Server) setupRoutes(authService *auth.Service) {
	// Apply global middleware
	s.router.Use(LoggingMiddleware)
	s.router.Use(SecurityHeadersMiddleware)
	s.router.Use(CORSMiddleware)

	// CSRF note: SameSite=Lax on the session cookie prevents cross-site POST
	// requests from including the cookie, providing CSRF protection for all
	// state-changing endpoints without needing a token-based scheme.

	// Rate limiters for auth endpoints
	loginLimiter := NewRateLimiter(5.0/60.0, 5)
	registerLimiter := NewRateLimiter(3.0/60.0, 3)

	// Auth routes (public) with rate limiting
	s.router.Handle("/api/auth/register", registerLimiter.Middleware(http.HandlerFunc(s.handlers.Register))).Methods("POST")
	s.router.Handle("/api/auth/login", loginLimiter.Middleware(http.HandlerFunc(s.handlers.Login))).Methods("POST")

	// Protected routes
	protected := s.router.PathPrefix("/api").Subrouter()
	protected.Use(AuthMiddleware(authService))

	protected.HandleFunc("/auth/logout", s.handlers.Logout).Methods("POST")
	protected.HandleFunc("/auth/me", s.handlers.Me).Methods("GET")
	protected.HandleFunc("/auth/password", s.handlers.ChangePassword).Methods("PUT")
	protected.HandleFunc("/auth/nickname", s.handlers.UpdateNickname).Methods("PUT")

	protected.HandleFunc("/tournaments", s.handlers.ListTournaments).Methods("GET")
	protected.HandleFunc("/tournaments/mine", s.handlers.MyTournaments).Methods("GET")
	protected.HandleFunc("/tournaments/{tournamentId}", s.handlers.TournamentDetail).Methods("GET")
	protected.HandleFunc("/cashgames", s.handlers.ListCashGames).Methods("GET")
	protected.HandleFunc("/members", s.handlers.SearchMembers).Methods("GET")

	// Joining games requires an approved account; browsing does not
	protected.Handle("/tournaments/{tournamentId}/rsvp", ApprovedMiddleware(http.HandlerFunc(s.handlers.ToggleTournamentRSVP))).Methods("POST")
	protected.Handle("/cashgames/{cashGameId}/waitlist", ApprovedMiddleware(http.HandlerFunc(s.handlers.ToggleCashGameWaitlist))).Methods("POST")

	// Admin routes
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware)

	admin.HandleFunc("/users", s.handlers.AdminListUsers).Methods("GET")
	admin.HandleFunc("/users/{userId}/approve", s.handlers.AdminApproveUser).Methods("POST")
	admin.HandleFunc("/users/{userId}/reject", s.handlers.AdminRejectUser).Methods("POST")
	admin.HandleFunc("/tournaments", s.handlers.AdminCreateTournament).Methods("POST")
	admin.HandleFunc("/tournaments/{tournamentId}", s.handlers.AdminUpdateTournament).Methods("PUT")
	admin.HandleFunc("/tournaments/{tournamentId}", s.handlers.AdminDeleteTournament).Methods("DELETE")
	admin.HandleFunc("/tournaments/{tournamentId}/rsvps", s.handlers.AdminTournamentRSVPs).Methods("GET")
	admin.HandleFunc("/tournaments/{tournamentId}/rsvps/{userId}", s.handlers.AdminRemoveTournamentRSVP).Methods("DELETE")
	admin.HandleFunc("/cashgames/{cashGameId}", s.handlers.AdminUpdateCashGame).Methods("PUT")
	admin.HandleFunc("/cashgames/{cashGameId}/rsvps", s.handlers.AdminCashGameRSVPs).Methods("GET")
	admin.HandleFunc("/cashgames/{cashGameId}/rsvps/{userId}", s.handlers.AdminRemoveCashGameRSVP).Methods("DELETE")

	// WebSocket route (protected)
	wsRouter := s.router.PathPrefix("/ws").Subrouter()
	wsRouter.Use(AuthMiddleware(authService))
	wsRouter.HandleFunc("/feed", s.handlers.HandleFeed)

	// Catch-all for unmatched API routes — return JSON 404 instead of empty body
	s.router.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
}

// Router exposes the configured handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) GetHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
