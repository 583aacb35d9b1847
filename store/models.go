package store

import (
	"strconv"
	"time"
)

// Status is a membership state. Users register as pending and move to
// approved or rejected through admin action only.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusAdmin    Status = "admin"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusAdmin:
		return true
	}
	return false
}

// CanPlay reports whether a user with this status may RSVP and join waitlists.
func (s Status) CanPlay() bool {
	return s == StatusApproved || s == StatusAdmin
}

// User is a club member record. Password is stored in plaintext; the stored
// data has always been plaintext and login compares it directly.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Nickname  string `json:"nickname"`
	Password  string `json:"password"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
}

type Tournament struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DateTime         string `json:"date_time"`
	Location         string `json:"location"`
	BuyIn            string `json:"buy_in"`
	BlindStructure   string `json:"blind_structure"`
	LevelTimes       string `json:"level_times,omitempty"`
	MaxPlayers       int    `json:"max_players"`
	CreatedBy        string `json:"created_by"`
	CreatedAt        string `json:"created_at"`
	GameType         string `json:"game_type,omitempty"`
	LateRegistration string `json:"late_registration,omitempty"`
	StartingChips    string `json:"starting_chips,omitempty"`
	AddOn            string `json:"add_on,omitempty"`
}

// RSVP links a user to a tournament. At most one per (user, tournament) is
// expected, but nothing enforces that atomically.
type RSVP struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TournamentID string `json:"tournament_id"`
	Timestamp    string `json:"timestamp"`
}

const (
	GameHoldem = "holdem"
	GamePLO    = "plo"
)

type CashGame struct {
	ID            string `json:"id"`
	GameType      string `json:"game_type"`
	Stakes        string `json:"stakes"`
	TablesRunning int    `json:"tables_running"`
	SeatsOpen     int    `json:"seats_open"`
	TotalSeats    int    `json:"total_seats"`
	UpdatedAt     string `json:"updated_at"`
}

// CashGameRSVP is a waitlist entry. It records interest, it does not reserve
// a seat.
type CashGameRSVP struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	CashGameID string `json:"cash_game_id"`
	Timestamp  string `json:"timestamp"`
}

// NewID returns a timestamp-derived identifier, the same scheme the existing
// stored data uses.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// Now returns the current time in the format timestamps are stored in.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
