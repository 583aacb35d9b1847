package club

import (
	"log"

	"pokerclub/store"
)

// RSVPs implements the toggle shared by tournaments and cash games: load the
// whole collection, remove the matching entry if present, otherwise append a
// new one, and write the whole collection back. Capacity is never checked
// here — "tournament full" is a view-layer gate, and two near-simultaneous
// toggles can both land.
type RSVPs struct {
	store store.Store
}

func NewRSVPs(st store.Store) *RSVPs {
	return &RSVPs{store: st}
}

// ToggleTournament flips the user's RSVP for a tournament and reports the
// resulting state (true = now attending).
func (r *RSVPs) ToggleTournament(userID, tournamentID string) bool {
	rsvps := r.store.GetRSVPs()

	for i, existing := range rsvps {
		if existing.UserID == userID && existing.TournamentID == tournamentID {
			rsvps = append(rsvps[:i], rsvps[i+1:]...)
			r.store.SaveRSVPs(rsvps)
			log.Printf("Cancelled tournament RSVP: user=%s tournament=%s", userID, tournamentID)
			return false
		}
	}

	rsvps = append(rsvps, store.RSVP{
		ID:           store.NewID(),
		UserID:       userID,
		TournamentID: tournamentID,
		Timestamp:    store.Now(),
	})
	r.store.SaveRSVPs(rsvps)
	log.Printf("Created tournament RSVP: user=%s tournament=%s", userID, tournamentID)
	return true
}

// ToggleCashGame flips the user's waitlist entry for a cash game.
func (r *RSVPs) ToggleCashGame(userID, cashGameID string) bool {
	rsvps := r.store.GetCashGameRSVPs()

	for i, existing := range rsvps {
		if existing.UserID == userID && existing.CashGameID == cashGameID {
			rsvps = append(rsvps[:i], rsvps[i+1:]...)
			r.store.SaveCashGameRSVPs(rsvps)
			log.Printf("Removed from cash game waitlist: user=%s game=%s", userID, cashGameID)
			return false
		}
	}

	rsvps = append(rsvps, store.CashGameRSVP{
		ID:         store.NewID(),
		UserID:     userID,
		CashGameID: cashGameID,
		Timestamp:  store.Now(),
	})
	r.store.SaveCashGameRSVPs(rsvps)
	log.Printf("Added to cash game waitlist: user=%s game=%s", userID, cashGameID)
	return true
}

// RemoveTournamentRSVP drops another user's RSVP (admin un-RSVP).
func (r *RSVPs) RemoveTournamentRSVP(userID, tournamentID string) {
	rsvps := r.store.GetRSVPs()

	kept := rsvps[:0]
	for _, existing := range rsvps {
		if existing.UserID == userID && existing.TournamentID == tournamentID {
			continue
		}
		kept = append(kept, existing)
	}
	r.store.SaveRSVPs(kept)
	log.Printf("Admin removed tournament RSVP: user=%s tournament=%s", userID, tournamentID)
}

// RemoveCashGameRSVP drops another user's waitlist entry and frees a seat on
// the game, capped at total_seats.
func (r *RSVPs) RemoveCashGameRSVP(userID, cashGameID string) {
	rsvps := r.store.GetCashGameRSVPs()

	kept := rsvps[:0]
	removed := false
	for _, existing := range rsvps {
		if existing.UserID == userID && existing.CashGameID == cashGameID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	r.store.SaveCashGameRSVPs(kept)

	if !removed {
		return
	}

	games := r.store.GetCashGames()
	for i := range games {
		if games[i].ID == cashGameID {
			if games[i].SeatsOpen < games[i].TotalSeats {
				games[i].SeatsOpen++
			}
			games[i].UpdatedAt = store.Now()
			break
		}
	}
	r.store.SaveCashGames(games)
	log.Printf("Admin removed cash game waitlist entry: user=%s game=%s", userID, cashGameID)
}
