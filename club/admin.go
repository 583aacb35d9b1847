package club

import (
	"errors"
	"log"

	"pokerclub/store"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrMaxPlayersTooLow = errors.New("max players must be at least 2")
	ErrTablesNegative   = errors.New("tables running cannot be negative")
	ErrSeatsNegative    = errors.New("seats open cannot be negative")
	ErrTotalSeatsTooLow = errors.New("total seats must be at least 1")
	ErrSeatsExceedTotal = errors.New("seats open cannot exceed total seats")
)

// Admin carries the management operations: member approval, tournament CRUD,
// and cash-game state edits. Every operation is the same whole-collection
// read-modify-write the member paths use; the only extra rigor is form
// validation and the RSVP cascade on tournament deletes.
type Admin struct {
	store store.Store
}

func NewAdmin(st store.Store) *Admin {
	return &Admin{store: st}
}

// ListUsers filters members by status. Admin accounts never show up in the
// approval queues.
func (a *Admin) ListUsers(status store.Status) []store.User {
	users := a.store.GetUsers()

	filtered := make([]store.User, 0)
	for _, u := range users {
		if u.Status == status && u.Status != store.StatusAdmin {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// SetUserStatus moves a member to approved or rejected. Other transitions
// are not reachable from the admin surface.
func (a *Admin) SetUserStatus(userID string, status store.Status) (*store.User, error) {
	if status != store.StatusApproved && status != store.StatusRejected {
		return nil, ErrInvalidStatus
	}

	users := a.store.GetUsers()
	var updated *store.User
	for i := range users {
		if users[i].ID == userID {
			users[i].Status = status
			updated = &users[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	a.store.SaveUsers(users)
	log.Printf("User %s set to %s", userID, status)
	return updated, nil
}

type TournamentInput struct {
	Name             string `json:"name"`
	DateTime         string `json:"date_time"`
	Location         string `json:"location"`
	BuyIn            string `json:"buy_in"`
	BlindStructure   string `json:"blind_structure"`
	LevelTimes       string `json:"level_times"`
	MaxPlayers       int    `json:"max_players"`
	GameType         string `json:"game_type"`
	LateRegistration string `json:"late_registration"`
	StartingChips    string `json:"starting_chips"`
	AddOn            string `json:"add_on"`
}

func (in TournamentInput) validate() error {
	if in.Name == "" || in.DateTime == "" || in.Location == "" || in.BuyIn == "" || in.BlindStructure == "" {
		return ErrMissingFields
	}
	if in.MaxPlayers < 2 {
		return ErrMaxPlayersTooLow
	}
	return nil
}

func (a *Admin) CreateTournament(createdBy string, in TournamentInput) (*store.Tournament, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	t := store.Tournament{
		ID:               store.NewID(),
		Name:             in.Name,
		DateTime:         in.DateTime,
		Location:         in.Location,
		BuyIn:            in.BuyIn,
		BlindStructure:   in.BlindStructure,
		LevelTimes:       NormalizeLevelTimes(in.LevelTimes, in.BlindStructure),
		MaxPlayers:       in.MaxPlayers,
		CreatedBy:        createdBy,
		CreatedAt:        store.Now(),
		GameType:         in.GameType,
		LateRegistration: in.LateRegistration,
		StartingChips:    in.StartingChips,
		AddOn:            in.AddOn,
	}

	tournaments := a.store.GetTournaments()
	tournaments = append(tournaments, t)
	a.store.SaveTournaments(tournaments)
	log.Printf("Tournament created: %s (%s)", t.Name, t.ID)
	return &t, nil
}

func (a *Admin) UpdateTournament(tournamentID string, in TournamentInput) (*store.Tournament, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tournaments := a.store.GetTournaments()
	var updated *store.Tournament
	for i := range tournaments {
		if tournaments[i].ID != tournamentID {
			continue
		}
		tournaments[i].Name = in.Name
		tournaments[i].DateTime = in.DateTime
		tournaments[i].Location = in.Location
		tournaments[i].BuyIn = in.BuyIn
		tournaments[i].BlindStructure = in.BlindStructure
		tournaments[i].LevelTimes = NormalizeLevelTimes(in.LevelTimes, in.BlindStructure)
		tournaments[i].MaxPlayers = in.MaxPlayers
		tournaments[i].GameType = in.GameType
		tournaments[i].LateRegistration = in.LateRegistration
		tournaments[i].StartingChips = in.StartingChips
		tournaments[i].AddOn = in.AddOn
		updated = &tournaments[i]
		break
	}
	if updated == nil {
		return nil, ErrTournamentNotFound
	}

	a.store.SaveTournaments(tournaments)
	log.Printf("Tournament updated: %s", tournamentID)
	return updated, nil
}

// DeleteTournament removes the tournament and cascades by dropping every
// RSVP that references it. Referential integrity is maintained by hand; the
// store knows nothing about relations.
func (a *Admin) DeleteTournament(tournamentID string) error {
	tournaments := a.store.GetTournaments()

	kept := tournaments[:0]
	found := false
	for _, t := range tournaments {
		if t.ID == tournamentID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTournamentNotFound
	}
	a.store.SaveTournaments(kept)

	rsvps := a.store.GetRSVPs()
	keptRSVPs := rsvps[:0]
	for _, r := range rsvps {
		if r.TournamentID == tournamentID {
			continue
		}
		keptRSVPs = append(keptRSVPs, r)
	}
	a.store.SaveRSVPs(keptRSVPs)

	log.Printf("Tournament deleted with RSVP cascade: %s", tournamentID)
	return nil
}

type CashGameInput struct {
	Stakes        string `json:"stakes"`
	TablesRunning int    `json:"tables_running"`
	SeatsOpen     int    `json:"seats_open"`
	TotalSeats    int    `json:"total_seats"`
}

func (in CashGameInput) validate() error {
	if in.Stakes == "" {
		return ErrMissingFields
	}
	if in.TablesRunning < 0 {
		return ErrTablesNegative
	}
	if in.SeatsOpen < 0 {
		return ErrSeatsNegative
	}
	if in.TotalSeats < 1 {
		return ErrTotalSeatsTooLow
	}
	if in.SeatsOpen > in.TotalSeats {
		return ErrSeatsExceedTotal
	}
	return nil
}

// UpdateCashGame applies the admin edit form. This is the only place the
// 0 <= seats_open <= total_seats invariant is checked.
func (a *Admin) UpdateCashGame(cashGameID string, in CashGameInput) (*store.CashGame, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	games := a.store.GetCashGames()
	var updated *store.CashGame
	for i := range games {
		if games[i].ID != cashGameID {
			continue
		}
		games[i].Stakes = in.Stakes
		games[i].TablesRunning = in.TablesRunning
		games[i].SeatsOpen = in.SeatsOpen
		games[i].TotalSeats = in.TotalSeats
		games[i].UpdatedAt = store.Now()
		updated = &games[i]
		break
	}
	if updated == nil {
		return nil, ErrCashGameNotFound
	}

	a.store.SaveCashGames(games)
	log.Printf("Cash game updated: %s", cashGameID)
	return updated, nil
}

type RSVPEntry struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Nickname  string `json:"nickname"`
	Timestamp string `json:"timestamp"`
}

// TournamentRSVPList joins a tournament's RSVPs with user records for the
// admin viewer.
func (a *Admin) TournamentRSVPList(tournamentID string) ([]RSVPEntry, error) {
	tournaments := a.store.GetTournaments()
	exists := false
	for _, t := range tournaments {
		if t.ID == tournamentID {
			exists = true
			break
		}
	}
	if !exists {
		return nil, ErrTournamentNotFound
	}

	entries := []RSVPEntry{}
	users := usersByID(a.store.GetUsers())
	for _, r := range a.store.GetRSVPs() {
		if r.TournamentID != tournamentID {
			continue
		}
		entries = append(entries, entryFor(users, r.UserID, r.Timestamp))
	}
	return entries, nil
}

// CashGameRSVPList joins a cash game's waitlist with user records.
func (a *Admin) CashGameRSVPList(cashGameID string) ([]RSVPEntry, error) {
	games := a.store.GetCashGames()
	exists := false
	for _, g := range games {
		if g.ID == cashGameID {
			exists = true
			break
		}
	}
	if !exists {
		return nil, ErrCashGameNotFound
	}

	entries := []RSVPEntry{}
	users := usersByID(a.store.GetUsers())
	for _, r := range a.store.GetCashGameRSVPs() {
		if r.CashGameID != cashGameID {
			continue
		}
		entries = append(entries, entryFor(users, r.UserID, r.Timestamp))
	}
	return entries, nil
}

func usersByID(users []store.User) map[string]store.User {
	byID := make(map[string]store.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}

func entryFor(users map[string]store.User, userID, timestamp string) RSVPEntry {
	entry := RSVPEntry{UserID: userID, Timestamp: timestamp}
	if u, ok := users[userID]; ok {
		entry.FullName = u.FullName
		entry.Nickname = u.Nickname
	}
	return entry
}
