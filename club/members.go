package club

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"pokerclub/store"
)

type Member struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
}

// Members is the club directory: every playable account, searchable by
// nickname or name. Fuzzy matching forgives the usual typos in poker
// nicknames.
type Members struct {
	store store.Store
}

func NewMembers(st store.Store) *Members {
	return &Members{store: st}
}

// Search returns playable members whose nickname or full name fuzzy-matches
// the query. An empty query lists everyone, sorted by nickname.
func (m *Members) Search(query string) []Member {
	users := m.store.GetUsers()

	matches := make([]Member, 0)
	for _, u := range users {
		if !u.Status.CanPlay() {
			continue
		}
		if query != "" &&
			!fuzzy.MatchNormalizedFold(query, u.Nickname) &&
			!fuzzy.MatchNormalizedFold(query, u.FullName) {
			continue
		}
		matches = append(matches, Member{
			ID:       u.ID,
			FullName: u.FullName,
			Nickname: u.Nickname,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Nickname < matches[j].Nickname
	})
	return matches
}
