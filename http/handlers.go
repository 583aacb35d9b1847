package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"pokerclub/auth"
	"pokerclub/club"
	"pokerclub/store"
	"pokerclub/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Only allow same origin
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

type Handlers struct {
	authService *auth.Service
	schedule    *club.Schedule
	rsvps       *club.RSVPs
	admin       *club.Admin
	members     *club.Members
	hub         *ws.Hub
}

func NewHandlers(authService *auth.Service, schedule *club.Schedule, rsvps *club.RSVPs, admin *club.Admin, members *club.Members, hub *ws.Hub) *Handlers {
	return &Handlers{
		authService: authService,
		schedule:    schedule,
		rsvps:       rsvps,
		admin:       admin,
		members:     members,
		hub:         hub,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// userView is what goes over the wire for a user. The stored record carries
// the plaintext password; that never leaves the server.
type userView struct {
	ID        string       `json:"id"`
	FullName  string       `json:"full_name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Nickname  string       `json:"nickname"`
	Status    store.Status `json:"status"`
	CreatedAt string       `json:"created_at"`
}

func viewOf(u *store.User) userView {
	return userView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Nickname:  u.Nickname,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// Auth handlers

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.authService.Register(req); err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken),
			errors.Is(err, auth.ErrMissingFields),
			errors.Is(err, auth.ErrInvalidEmail):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("Register error: %v", err)
			http.Error(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventUsersUpdated})
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Your registration request has been submitted. You will be notified once approved.",
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Please enter both email and password", http.StatusBadRequest)
		return
	}

	user, sessionID, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, auth.ErrAccountPending), errors.Is(err, auth.ErrAccountRejected):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Printf("Login error: %v", err)
			http.Error(w, "Login failed", http.StatusInternalServerError)
		}
		return
	}

	h.authService.GetSessionManager().SetSessionCookie(w, sessionID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    viewOf(user),
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sm := h.authService.GetSessionManager()
	sessionID := sm.SessionFromRequest(r)
	h.authService.Logout(sessionID)
	sm.ClearSessionCookie(w)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me re-reads the caller's canonical record, keeping the screen in sync
// after profile edits or admin status changes.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	refreshed, err := h.authService.RefreshUser(user.ID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(refreshed))
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var req struct {
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.authService.ChangePassword(user.ID, req.NewPassword, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch), errors.Is(err, auth.ErrPasswordTooShort):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ChangePassword error: %v", err)
			http.Error(w, "Password change failed", http.StatusInternalServerError)
		}
		return
	}

	// Password change forces logout everywhere, including this session.
	h.authService.GetSessionManager().ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed, please log in again"})
}

func (h *Handlers) UpdateNickname(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.authService.UpdateNickname(user.ID, req.Nickname)
	if err != nil {
		if errors.Is(err, auth.ErrMissingFields) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("UpdateNickname error: %v", err)
		http.Error(w, "Nickname update failed", http.StatusInternalServerError)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventUsersUpdated})
	writeJSON(w, http.StatusOK, viewOf(updated))
}

// Schedule handlers

func (h *Handlers) ListTournaments(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.schedule.ListTournaments(user.ID))
}

func (h *Handlers) MyTournaments(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.schedule.MyTournaments(user.ID))
}

func (h *Handlers) TournamentDetail(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	vars := mux.Vars(r)

	detail, err := h.schedule.TournamentDetail(vars["tournamentId"], user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handlers) ListCashGames(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.schedule.ListCashGames(user.ID))
}

// RSVP handlers

func (h *Handlers) ToggleTournamentRSVP(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	vars := mux.Vars(r)
	tournamentID := vars["tournamentId"]

	if _, err := h.schedule.TournamentDetail(tournamentID, user.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	joined := h.rsvps.ToggleTournament(user.ID, tournamentID)
	h.hub.Broadcast(ws.Event{
		Type:    ws.EventRSVPsUpdated,
		Payload: map[string]string{"tournament_id": tournamentID},
	})
	writeJSON(w, http.StatusOK, map[string]bool{"joined": joined})
}

func (h *Handlers) ToggleCashGameWaitlist(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	vars := mux.Vars(r)
	cashGameID := vars["cashGameId"]

	if _, err := h.schedule.CashGame(cashGameID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	joined := h.rsvps.ToggleCashGame(user.ID, cashGameID)
	h.hub.Broadcast(ws.Event{
		Type:    ws.EventCashGameRSVPsUpdated,
		Payload: map[string]string{"cash_game_id": cashGameID},
	})
	writeJSON(w, http.StatusOK, map[string]bool{"joined": joined})
}

// Members directory

func (h *Handlers) SearchMembers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.members.Search(query))
}

// WebSocket feed

func (h *Handlers) HandleFeed(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	h.hub.HandleConnection(conn, user.ID)
}
