package store

import (
	"log"
	"time"
)

// InitializeDefaultData seeds demo records so a fresh install has something
// to show. Each block runs only while its collection is empty, so reseeding
// never touches live data.
func (s *SQLiteStore) InitializeDefaultData() {
	if users := s.GetUsers(); len(users) == 0 {
		defaultUsers := []User{
			{
				ID:        "1",
				FullName:  "Admin User",
				Email:     "admin@pokerplace.com",
				Phone:     "555-0100",
				Nickname:  "Admin",
				Password:  "admin123",
				Status:    StatusAdmin,
				CreatedAt: Now(),
			},
			{
				ID:        "2",
				FullName:  "John Doe",
				Email:     "john@example.com",
				Phone:     "555-0101",
				Nickname:  "JohnnyPoker",
				Password:  "password123",
				Status:    StatusApproved,
				CreatedAt: Now(),
			},
		}
		s.SaveUsers(defaultUsers)
		log.Println("Default users created")
	}

	if tournaments := s.GetTournaments(); len(tournaments) == 0 {
		defaultTournaments := []Tournament{
			{
				ID:               "1",
				Name:             "Friday Night Poker",
				DateTime:         time.Now().UTC().Add(2 * 24 * time.Hour).Format(time.RFC3339),
				Location:         "Downtown Poker Club",
				BuyIn:            "$50",
				BlindStructure:   "25/50, 50/100, 100/200, 200/400, 400/800",
				MaxPlayers:       10,
				CreatedBy:        "1",
				CreatedAt:        Now(),
				GameType:         "Hold'em",
				LateRegistration: "End of Level 3",
				StartingChips:    "10,000",
				AddOn:            "None",
			},
			{
				ID:               "2",
				Name:             "Weekend Championship",
				DateTime:         time.Now().UTC().Add(5 * 24 * time.Hour).Format(time.RFC3339),
				Location:         "Main Street Casino",
				BuyIn:            "$100",
				BlindStructure:   "50/100, 100/200, 200/400, 400/800, 800/1600",
				MaxPlayers:       20,
				CreatedBy:        "1",
				CreatedAt:        Now(),
				GameType:         "Hold'em",
				LateRegistration: "End of Level 5",
				StartingChips:    "20,000",
				AddOn:            "$50 for 10,000 chips",
			},
		}
		s.SaveTournaments(defaultTournaments)
		log.Println("Default tournaments created")
	}

	if games := s.GetCashGames(); len(games) == 0 {
		defaultCashGames := []CashGame{
			{
				ID:            "1",
				GameType:      GameHoldem,
				Stakes:        "$1/$2",
				TablesRunning: 2,
				SeatsOpen:     3,
				TotalSeats:    18,
				UpdatedAt:     Now(),
			},
			{
				ID:            "2",
				GameType:      GamePLO,
				Stakes:        "$2/$5",
				TablesRunning: 1,
				SeatsOpen:     0,
				TotalSeats:    9,
				UpdatedAt:     Now(),
			},
		}
		s.SaveCashGames(defaultCashGames)
		log.Println("Default cash games created")
	}
}
