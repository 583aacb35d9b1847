package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// Record keys. Each key holds one JSON-serialized whole collection (or a
// single value for the current-user pointer). Callers never see the keys.
const (
	usersKey         = "pokerclub:users"
	tournamentsKey   = "pokerclub:tournaments"
	rsvpsKey         = "pokerclub:rsvps"
	cashGamesKey     = "pokerclub:cash_games"
	cashGameRSVPsKey = "pokerclub:cash_game_rsvps"
	currentUserKey   = "pokerclub:current_user"
)

// Store is the persistence service. Reads swallow failures and return empty
// collections; saves overwrite the whole stored value and swallow failures.
// Callers cannot distinguish "no data" from "read failed", and two
// overlapping read-modify-write flows resolve last-write-wins at whole
// collection granularity.
type Store interface {
	GetUsers() []User
	SaveUsers(users []User)
	GetTournaments() []Tournament
	SaveTournaments(tournaments []Tournament)
	GetRSVPs() []RSVP
	SaveRSVPs(rsvps []RSVP)
	GetCashGames() []CashGame
	SaveCashGames(games []CashGame)
	GetCashGameRSVPs() []CashGameRSVP
	SaveCashGameRSVPs(rsvps []CashGameRSVP)
	GetCurrentUser() *User
	SetCurrentUser(user *User)
	ClearCurrentUser()
	InitializeDefaultData()
	Close() error
}

type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// load reads and decodes one record into dest. Absent records and failures of
// any kind leave dest untouched.
func (s *SQLiteStore) load(key string, dest interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw []byte
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		log.Printf("Error reading %s: %v", key, err)
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("Error decoding %s: %v", key, err)
	}
}

// save serializes v and overwrites the record. Failures are logged and
// otherwise ignored.
func (s *SQLiteStore) save(key string, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding %s: %v", key, err)
		return
	}
	_, err = s.db.Exec(
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, raw,
	)
	if err != nil {
		log.Printf("Error saving %s: %v", key, err)
	}
}

func (s *SQLiteStore) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		log.Printf("Error removing %s: %v", key, err)
	}
}

func (s *SQLiteStore) GetUsers() []User {
	users := []User{}
	s.load(usersKey, &users)
	return users
}

func (s *SQLiteStore) SaveUsers(users []User) {
	s.save(usersKey, users)
	log.Printf("Users saved: %d", len(users))
}

func (s *SQLiteStore) GetTournaments() []Tournament {
	tournaments := []Tournament{}
	s.load(tournamentsKey, &tournaments)
	return tournaments
}

func (s *SQLiteStore) SaveTournaments(tournaments []Tournament) {
	s.save(tournamentsKey, tournaments)
}

func (s *SQLiteStore) GetRSVPs() []RSVP {
	rsvps := []RSVP{}
	s.load(rsvpsKey, &rsvps)
	return rsvps
}

func (s *SQLiteStore) SaveRSVPs(rsvps []RSVP) {
	s.save(rsvpsKey, rsvps)
}

func (s *SQLiteStore) GetCashGames() []CashGame {
	games := []CashGame{}
	s.load(cashGamesKey, &games)
	return games
}

func (s *SQLiteStore) SaveCashGames(games []CashGame) {
	s.save(cashGamesKey, games)
}

func (s *SQLiteStore) GetCashGameRSVPs() []CashGameRSVP {
	rsvps := []CashGameRSVP{}
	s.load(cashGameRSVPsKey, &rsvps)
	return rsvps
}

func (s *SQLiteStore) SaveCashGameRSVPs(rsvps []CashGameRSVP) {
	s.save(cashGameRSVPsKey, rsvps)
}

func (s *SQLiteStore) GetCurrentUser() *User {
	var user *User
	s.load(currentUserKey, &user)
	return user
}

func (s *SQLiteStore) SetCurrentUser(user *User) {
	if user == nil {
		s.ClearCurrentUser()
		return
	}
	s.save(currentUserKey, user)
	log.Printf("Current user set: %s", user.Email)
}

func (s *SQLiteStore) ClearCurrentUser() {
	s.remove(currentUserKey)
	log.Println("Current user cleared")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
