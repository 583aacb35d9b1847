package ws

// Event types broadcast on the feed. Clients treat each as "reload that
// list"; payloads carry just enough to know whether the event is relevant.
const (
	EventUsersUpdated         = "users_updated"
	EventTournamentsUpdated   = "tournaments_updated"
	EventRSVPsUpdated         = "rsvps_updated"
	EventCashGamesUpdated     = "cash_games_updated"
	EventCashGameRSVPsUpdated = "cash_game_rsvps_updated"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}
