package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerclub/store"
)

func TestToggleTournamentRSVP(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	joined := rsvps.ToggleTournament("u1", "t1")
	assert.True(t, joined)

	stored := st.GetRSVPs()
	require.Len(t, stored, 1)
	assert.Equal(t, "u1", stored[0].UserID)
	assert.Equal(t, "t1", stored[0].TournamentID)
	assert.NotEmpty(t, stored[0].ID)
	assert.NotEmpty(t, stored[0].Timestamp)

	joined = rsvps.ToggleTournament("u1", "t1")
	assert.False(t, joined)
	assert.Empty(t, st.GetRSVPs())
}

func TestToggleTournamentLeavesOtherEntriesAlone(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	rsvps.ToggleTournament("u1", "t1")
	rsvps.ToggleTournament("u2", "t1")
	rsvps.ToggleTournament("u1", "t2")

	rsvps.ToggleTournament("u1", "t1")

	stored := st.GetRSVPs()
	require.Len(t, stored, 2)
	for _, r := range stored {
		assert.False(t, r.UserID == "u1" && r.TournamentID == "t1")
	}
}

func TestToggleCashGameWaitlist(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	assert.True(t, rsvps.ToggleCashGame("u1", "g1"))
	require.Len(t, st.GetCashGameRSVPs(), 1)

	assert.False(t, rsvps.ToggleCashGame("u1", "g1"))
	assert.Empty(t, st.GetCashGameRSVPs())
}

func TestRemoveTournamentRSVP(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	rsvps.ToggleTournament("u1", "t1")
	rsvps.ToggleTournament("u2", "t1")

	rsvps.RemoveTournamentRSVP("u1", "t1")

	stored := st.GetRSVPs()
	require.Len(t, stored, 1)
	assert.Equal(t, "u2", stored[0].UserID)
}

func TestRemoveCashGameRSVPFreesSeat(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", SeatsOpen: 3, TotalSeats: 9},
	})
	rsvps.ToggleCashGame("u1", "g1")

	rsvps.RemoveCashGameRSVP("u1", "g1")

	assert.Empty(t, st.GetCashGameRSVPs())
	games := st.GetCashGames()
	require.Len(t, games, 1)
	assert.Equal(t, 4, games[0].SeatsOpen)
	assert.NotEmpty(t, games[0].UpdatedAt)
}

func TestRemoveCashGameRSVPSeatCapAtTotal(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", SeatsOpen: 9, TotalSeats: 9},
	})
	rsvps.ToggleCashGame("u1", "g1")

	rsvps.RemoveCashGameRSVP("u1", "g1")

	games := st.GetCashGames()
	require.Len(t, games, 1)
	assert.Equal(t, 9, games[0].SeatsOpen)
}

func TestRemoveCashGameRSVPNoEntryNoSeatChange(t *testing.T) {
	st := newTestStore(t)
	rsvps := NewRSVPs(st)

	st.SaveCashGames([]store.CashGame{
		{ID: "g1", GameType: store.GameHoldem, Stakes: "$1/$2", SeatsOpen: 3, TotalSeats: 9},
	})

	rsvps.RemoveCashGameRSVP("u1", "g1")

	games := st.GetCashGames()
	require.Len(t, games, 1)
	assert.Equal(t, 3, games[0].SeatsOpen)
}
