package postgres

import (
	"context"
	"fmt"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"
)

const groupByCompanyQuery = `
SELECT company, COUNT(*) AS cnt, array_agg(id::text ORDER BY seq), array_agg(lobby_name ORDER BY seq)
FROM lobbies
GROUP BY company `

// LobbiesByCompany groups lobbies by company, keeping insertion order inside each group.
func (p *Postgres) LobbiesByCompany(ctx context.Context, order query.GroupOrder) ([]entities.CompanySummary, error) {
	rows, err := p.db.Query(ctx, groupByCompanyQuery+buildGroupOrder(order))
	if err != nil {
		p.log.Errorw("failed to group lobbies", "error", err)
		return nil, storeErr("group lobbies", err)
	}
	defer rows.Close()

	res := make([]entities.CompanySummary, 0)
	for rows.Next() {
		var (
			s     entities.CompanySummary
			cnt   int64
			ids   []string
			names []string
		)
		if err := rows.Scan(&s.Company, &cnt, &ids, &names); err != nil {
			return nil, fmt.Errorf("scan lobby group: %w", err)
		}
		s.Count = int(cnt)
		s.Lobbies = make([]entities.LobbyRef, 0, len(ids))
		for i := range ids {
			s.Lobbies = append(s.Lobbies, entities.LobbyRef{ID: ids[i], Name: names[i]})
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate lobby groups", err)
	}

	return res, nil
}
