package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerclub/store"
)

func seedMembers(st store.Store) {
	st.SaveUsers([]store.User{
		{ID: "1", FullName: "Alice Ace", Nickname: "AceHigh", Status: store.StatusApproved},
		{ID: "2", FullName: "Bob Bluff", Nickname: "BigBob", Status: store.StatusApproved},
		{ID: "3", FullName: "Carol Caller", Nickname: "CallingCarol", Status: store.StatusPending},
		{ID: "4", FullName: "Dana Dealer", Nickname: "TheDealer", Status: store.StatusAdmin},
	})
}

func TestSearchEmptyQueryListsPlayableMembers(t *testing.T) {
	st := newTestStore(t)
	members := NewMembers(st)
	seedMembers(st)

	got := members.Search("")
	require.Len(t, got, 3)
	// Sorted by nickname; pending accounts excluded
	assert.Equal(t, "AceHigh", got[0].Nickname)
	assert.Equal(t, "BigBob", got[1].Nickname)
	assert.Equal(t, "TheDealer", got[2].Nickname)
}

func TestSearchMatchesNicknameOrName(t *testing.T) {
	st := newTestStore(t)
	members := NewMembers(st)
	seedMembers(st)

	got := members.Search("acehigh")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = members.Search("bluff")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSearchExcludesNonPlayable(t *testing.T) {
	st := newTestStore(t)
	members := NewMembers(st)
	seedMembers(st)

	assert.Empty(t, members.Search("carol"))
}

func TestSearchNoMatch(t *testing.T) {
	st := newTestStore(t)
	members := NewMembers(st)
	seedMembers(st)

	assert.Empty(t, members.Search("zzzzqqqq"))
}
