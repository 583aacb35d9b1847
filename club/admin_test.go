package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerclub/store"
)

func validTournamentInput() TournamentInput {
	return TournamentInput{
		Name:           "Friday Night Poker",
		DateTime:       "2026-09-04T19:00:00Z",
		Location:       "Downtown Poker Club",
		BuyIn:          "$50",
		BlindStructure: "25/50, 50/100, 100/200",
		MaxPlayers:     10,
	}
}

func TestListUsersFiltersByStatusAndHidesAdmins(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	st.SaveUsers([]store.User{
		{ID: "1", Email: "admin@example.com", Status: store.StatusAdmin},
		{ID: "2", Email: "pending@example.com", Status: store.StatusPending},
		{ID: "3", Email: "approved@example.com", Status: store.StatusApproved},
		{ID: "4", Email: "rejected@example.com", Status: store.StatusRejected},
	})

	pending := admin.ListUsers(store.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].ID)

	approved := admin.ListUsers(store.StatusApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "3", approved[0].ID)

	assert.Empty(t, admin.ListUsers(store.StatusAdmin))
}

func TestSetUserStatus(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	st.SaveUsers([]store.User{{ID: "1", Email: "a@example.com", Status: store.StatusPending}})

	updated, err := admin.SetUserStatus("1", store.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, store.StatusApproved, updated.Status)

	stored := st.GetUsers()
	require.Len(t, stored, 1)
	assert.Equal(t, store.StatusApproved, stored[0].Status)
}

func TestSetUserStatusRejectsInvalidTransitions(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	st.SaveUsers([]store.User{{ID: "1", Email: "a@example.com", Status: store.StatusApproved}})

	_, err := admin.SetUserStatus("1", store.StatusAdmin)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = admin.SetUserStatus("1", store.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = admin.SetUserStatus("999", store.StatusApproved)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateTournament(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	created, err := admin.CreateTournament("admin1", validTournamentInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "admin1", created.CreatedBy)
	assert.NotEmpty(t, created.CreatedAt)

	stored := st.GetTournaments()
	require.Len(t, stored, 1)
	assert.Equal(t, "Friday Night Poker", stored[0].Name)
}

func TestCreateTournamentValidation(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	in := validTournamentInput()
	in.Name = ""
	_, err := admin.CreateTournament("admin1", in)
	assert.ErrorIs(t, err, ErrMissingFields)

	in = validTournamentInput()
	in.MaxPlayers = 1
	_, err = admin.CreateTournament("admin1", in)
	assert.ErrorIs(t, err, ErrMaxPlayersTooLow)

	assert.Empty(t, st.GetTournaments())
}

func TestCreateTournamentFansOutLevelTime(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	in := validTournamentInput()
	in.LevelTimes = "20 min"

	created, err := admin.CreateTournament("admin1", in)
	require.NoError(t, err)
	assert.Equal(t, "20 min, 20 min, 20 min", created.LevelTimes)
}

func TestUpdateTournament(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	created, err := admin.CreateTournament("admin1", validTournamentInput())
	require.NoError(t, err)

	in := validTournamentInput()
	in.Name = "Renamed"
	in.MaxPlayers = 20

	updated, err := admin.UpdateTournament(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 20, updated.MaxPlayers)
	assert.Equal(t, "admin1", updated.CreatedBy)

	_, err = admin.UpdateTournament("missing", validTournamentInput())
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestDeleteTournamentCascadesRSVPs(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)
	rsvps := NewRSVPs(st)

	first, err := admin.CreateTournament("admin1", validTournamentInput())
	require.NoError(t, err)
	in := validTournamentInput()
	in.Name = "Other"
	second, err := admin.CreateTournament("admin1", in)
	require.NoError(t, err)

	rsvps.ToggleTournament("u1", first.ID)
	rsvps.ToggleTournament("u2", first.ID)
	rsvps.ToggleTournament("u1", second.ID)

	require.NoError(t, admin.DeleteTournament(first.ID))

	stored := st.GetTournaments()
	require.Len(t, stored, 1)
	assert.Equal(t, second.ID, stored[0].ID)

	remaining := st.GetRSVPs()
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].TournamentID)

	assert.ErrorIs(t, admin.DeleteTournament(first.ID), ErrTournamentNotFound)
}

func TestUpdateCashGame(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", TablesRunning: 1, SeatsOpen: 2, TotalSeats: 9},
	})

	updated, err := admin.UpdateCashGame("g1", CashGameInput{
		Stakes:        "$2/$5",
		TablesRunning: 2,
		SeatsOpen:     5,
		TotalSeats:    18,
	})
	require.NoError(t, err)
	assert.Equal(t, "$2/$5", updated.Stakes)
	assert.Equal(t, 5, updated.SeatsOpen)
	assert.NotEmpty(t, updated.UpdatedAt)
	assert.Equal(t, store.GameHoldem, updated.GameType)
}

func TestUpdateCashGameValidation(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)

	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", TotalSeats: 9},
	})

	cases := []struct {
		in  CashGameInput
		err error
	}{
		{CashGameInput{Stakes: "", TotalSeats: 9}, ErrMissingFields},
		{CashGameInput{Stakes: "$1/$2", TablesRunning: -1, TotalSeats: 9}, ErrTablesNegative},
		{CashGameInput{Stakes: "$1/$2", SeatsOpen: -1, TotalSeats: 9}, ErrSeatsNegative},
		{CashGameInput{Stakes: "$1/$2", TotalSeats: 0}, ErrTotalSeatsTooLow},
		{CashGameInput{Stakes: "$1/$2", SeatsOpen: 10, TotalSeats: 9}, ErrSeatsExceedTotal},
	}
	for _, c := range cases {
		_, err := admin.UpdateCashGame("g1", c.in)
		assert.ErrorIs(t, err, c.err)
	}

	_, err := admin.UpdateCashGame("missing", CashGameInput{Stakes: "$1/$2", TotalSeats: 9})
	assert.ErrorIs(t, err, ErrCashGameNotFound)
}

func TestTournamentRSVPList(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)
	rsvps := NewRSVPs(st)

	st.SaveUsers([]store.User{
		{ID: "u1", FullName: "Alice Ace", Nickname: "AceHigh", Status: store.StatusApproved},
	})
	created, err := admin.CreateTournament("admin1", validTournamentInput())
	require.NoError(t, err)

	rsvps.ToggleTournament("u1", created.ID)

	entries, err := admin.TournamentRSVPList(created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, "Alice Ace", entries[0].FullName)
	assert.Equal(t, "AceHigh", entries[0].Nickname)

	_, err = admin.TournamentRSVPList("missing")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestCashGameRSVPList(t *testing.T) {
	st := newTestStore(t)
	admin := NewAdmin(st)
	rsvps := NewRSVPs(st)

	st.SaveUsers([]store.User{
		{ID: "u1", FullName: "Alice Ace", Nickname: "AceHigh", Status: store.StatusApproved},
	})
	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", TotalSeats: 9},
	})

	rsvps.ToggleCashGame("u1", "g1")

	entries, err := admin.CashGameRSVPList("g1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "AceHigh", entries[0].Nickname)

	_, err = admin.CashGameRSVPList("missing")
	assert.ErrorIs(t, err, ErrCashGameNotFound)
}
