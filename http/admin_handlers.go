package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"pokerclub/club"
	"pokerclub/store"
	"pokerclub/ws"
)

// Admin handlers. Routing guarantees the caller is an admin, so none of
// these re-check the user's status.

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	status := store.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = store.StatusPending
	}
	if !status.Valid() {
		http.Error(w, club.ErrInvalidStatus.Error(), http.StatusBadRequest)
		return
	}

	users := h.admin.ListUsers(status)
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) AdminApproveUser(w http.ResponseWriter, r *http.Request) {
	h.setUserStatus(w, r, store.StatusApproved)
}

func (h *Handlers) AdminRejectUser(w http.ResponseWriter, r *http.Request) {
	h.setUserStatus(w, r, store.StatusRejected)
}

func (h *Handlers) setUserStatus(w http.ResponseWriter, r *http.Request, status store.Status) {
	vars := mux.Vars(r)

	updated, err := h.admin.SetUserStatus(vars["userId"], status)
	if err != nil {
		if errors.Is(err, club.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventUsersUpdated})
	writeJSON(w, http.StatusOK, viewOf(updated))
}

func (h *Handlers) AdminCreateTournament(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var req club.TournamentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.admin.CreateTournament(user.ID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventTournamentsUpdated})
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) AdminUpdateTournament(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req club.TournamentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.admin.UpdateTournament(vars["tournamentId"], req)
	if err != nil {
		if errors.Is(err, club.ErrTournamentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventTournamentsUpdated})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) AdminDeleteTournament(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tournamentID := vars["tournamentId"]

	if err := h.admin.DeleteTournament(tournamentID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventTournamentsUpdated})
	h.hub.Broadcast(ws.Event{
		Type:    ws.EventRSVPsUpdated,
		Payload: map[string]string{"tournament_id": tournamentID},
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tournament deleted"})
}

func (h *Handlers) AdminTournamentRSVPs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entries, err := h.admin.TournamentRSVPList(vars["tournamentId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handlers) AdminRemoveTournamentRSVP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tournamentID := vars["tournamentId"]

	if _, err := h.admin.TournamentRSVPList(tournamentID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.rsvps.RemoveTournamentRSVP(vars["userId"], tournamentID)
	h.hub.Broadcast(ws.Event{
		Type:    ws.EventRSVPsUpdated,
		Payload: map[string]string{"tournament_id": tournamentID},
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "RSVP removed"})
}

func (h *Handlers) AdminUpdateCashGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req club.CashGameInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.admin.UpdateCashGame(vars["cashGameId"], req)
	if err != nil {
		if errors.Is(err, club.ErrCashGameNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventCashGamesUpdated})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) AdminCashGameRSVPs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entries, err := h.admin.CashGameRSVPList(vars["cashGameId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handlers) AdminRemoveCashGameRSVP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cashGameID := vars["cashGameId"]

	if _, err := h.admin.CashGameRSVPList(cashGameID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.rsvps.RemoveCashGameRSVP(vars["userId"], cashGameID)
	h.hub.Broadcast(ws.Event{
		Type:    ws.EventCashGameRSVPsUpdated,
		Payload: map[string]string{"cash_game_id": cashGameID},
	})
	h.hub.Broadcast(ws.Event{Type: ws.EventCashGamesUpdated})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Waitlist entry removed"})
}
