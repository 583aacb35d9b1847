package club

import (
	"errors"
	"sort"
	"time"

	"pokerclub/store"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrCashGameNotFound   = errors.New("cash game not found")
)

// Schedule assembles the member-facing views: date-sorted tournament lists
// with RSVP counts, detail pages with attendee names, and the cash-game
// board with waitlist counts. It derives everything in memory from whole
// collections; nothing here writes.
type Schedule struct {
	store store.Store
}

func NewSchedule(st store.Store) *Schedule {
	return &Schedule{store: st}
}

type TournamentSummary struct {
	store.Tournament
	RSVPCount int  `json:"rsvp_count"`
	Joined    bool `json:"joined"`
	Full      bool `json:"full"`
}

type Attendee struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
}

type TournamentDetail struct {
	TournamentSummary
	Levels    []BlindLevel `json:"levels,omitempty"`
	Attendees []Attendee   `json:"attendees"`
}

type CashGameSummary struct {
	store.CashGame
	WaitlistCount int  `json:"waitlist_count"`
	Joined        bool `json:"joined"`
}

// ListTournaments returns all tournaments sorted by date, with counts and
// flags computed for the viewing user. Full is advisory only; the write path
// does not enforce capacity.
func (s *Schedule) ListTournaments(userID string) []TournamentSummary {
	tournaments := s.store.GetTournaments()
	rsvps := s.store.GetRSVPs()

	sortTournaments(tournaments)

	summaries := make([]TournamentSummary, 0, len(tournaments))
	for _, t := range tournaments {
		summaries = append(summaries, summarize(t, rsvps, userID))
	}
	return summaries
}

// MyTournaments returns only the tournaments the user has RSVP'd to.
func (s *Schedule) MyTournaments(userID string) []TournamentSummary {
	all := s.ListTournaments(userID)

	mine := make([]TournamentSummary, 0)
	for _, t := range all {
		if t.Joined {
			mine = append(mine, t)
		}
	}
	return mine
}

// TournamentDetail builds the detail view: summary plus attendee names and
// the parsed blind levels. A structure that fails to parse just renders as
// raw text, so parse errors are dropped here.
func (s *Schedule) TournamentDetail(tournamentID, userID string) (*TournamentDetail, error) {
	tournaments := s.store.GetTournaments()
	var found *store.Tournament
	for i := range tournaments {
		if tournaments[i].ID == tournamentID {
			found = &tournaments[i]
			break
		}
	}
	if found == nil {
		return nil, ErrTournamentNotFound
	}

	rsvps := s.store.GetRSVPs()
	users := s.store.GetUsers()

	detail := &TournamentDetail{
		TournamentSummary: summarize(*found, rsvps, userID),
		Attendees:         []Attendee{},
	}

	if levels, err := ParseBlindStructure(found.BlindStructure); err == nil {
		detail.Levels = levels
	}

	byID := make(map[string]store.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, r := range rsvps {
		if r.TournamentID != tournamentID {
			continue
		}
		if u, ok := byID[r.UserID]; ok {
			detail.Attendees = append(detail.Attendees, Attendee{
				UserID:   u.ID,
				FullName: u.FullName,
				Nickname: u.Nickname,
			})
		}
	}

	return detail, nil
}

// CashGame looks up a single cash game.
func (s *Schedule) CashGame(cashGameID string) (*store.CashGame, error) {
	games := s.store.GetCashGames()
	for i := range games {
		if games[i].ID == cashGameID {
			return &games[i], nil
		}
	}
	return nil, ErrCashGameNotFound
}

// ListCashGames returns the cash-game board with waitlist counts.
func (s *Schedule) ListCashGames(userID string) []CashGameSummary {
	games := s.store.GetCashGames()
	rsvps := s.store.GetCashGameRSVPs()

	summaries := make([]CashGameSummary, 0, len(games))
	for _, g := range games {
		summary := CashGameSummary{CashGame: g}
		for _, r := range rsvps {
			if r.CashGameID == g.ID {
				summary.WaitlistCount++
				if r.UserID == userID {
					summary.Joined = true
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func summarize(t store.Tournament, rsvps []store.RSVP, userID string) TournamentSummary {
	summary := TournamentSummary{Tournament: t}
	for _, r := range rsvps {
		if r.TournamentID == t.ID {
			summary.RSVPCount++
			if r.UserID == userID {
				summary.Joined = true
			}
		}
	}
	summary.Full = t.MaxPlayers > 0 && summary.RSVPCount >= t.MaxPlayers
	return summary
}

// sortTournaments orders by date_time ascending. Unparseable dates sort by
// the raw string so the order is at least stable.
func sortTournaments(tournaments []store.Tournament) {
	sort.SliceStable(tournaments, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339, tournaments[i].DateTime)
		tj, errj := time.Parse(time.RFC3339, tournaments[j].DateTime)
		if erri != nil || errj != nil {
			return tournaments[i].DateTime < tournaments[j].DateTime
		}
		return ti.Before(tj)
	})
}
