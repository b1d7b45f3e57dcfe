package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"
)

// LobbiesByCompany groups lobbies by company, keeping insertion order inside each group.
func (m *Memory) LobbiesByCompany(_ context.Context, order query.GroupOrder) ([]entities.CompanySummary, error) {
	m.mu.RLock()
	recs := make([]*record, 0, len(m.lobbies))
	for _, rec := range m.lobbies {
		recs = append(recs, rec)
	}
	m.mu.RUnlock()

	slices.SortFunc(recs, func(a, b *record) int { return cmp.Compare(a.seq, b.seq) })

	index := make(map[string]int)
	ungrouped := -1
	groups := make([]entities.CompanySummary, 0)
	for _, rec := range recs {
		i, ok := ungrouped, ungrouped >= 0
		if rec.lobby.Company != nil {
			i, ok = index[*rec.lobby.Company]
		}
		if !ok {
			i = len(groups)
			if rec.lobby.Company != nil {
				index[*rec.lobby.Company] = i
			} else {
				ungrouped = i
			}
			var company *string
			if rec.lobby.Company != nil {
				c := *rec.lobby.Company
				company = &c
			}
			groups = append(groups, entities.CompanySummary{Company: company, Lobbies: []entities.LobbyRef{}})
		}
		groups[i].Lobbies = append(groups[i].Lobbies, entities.LobbyRef{ID: rec.lobby.ID, Name: rec.lobby.Name})
		groups[i].Count++
	}

	slices.SortStableFunc(groups, func(a, b entities.CompanySummary) int {
		var c int
		if order.Key == query.GroupByCount {
			c = cmp.Compare(a.Count, b.Count)
		}
		if c == 0 {
			c = compareCompany(a.Company, b.Company)
		}
		if order.Direction == query.Descending {
			return -c
		}
		return c
	})
	return groups, nil
}
