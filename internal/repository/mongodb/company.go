package mongodb

import (
	"context"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"
)

// LobbiesByCompany groups lobbies by company in a single aggregation.
func (m *Mongo) LobbiesByCompany(ctx context.Context, order query.GroupOrder) ([]entities.CompanySummary, error) {
	cur, err := m.lobbies.Aggregate(ctx, groupPipeline(order))
	if err != nil {
		m.log.Errorw("failed to aggregate lobbies", "error", err)
		return nil, storeErr("aggregate lobbies", err)
	}

	docs := make([]companyGroupDocument, 0)
	if err := cur.All(ctx, &docs); err != nil {
		m.log.Errorw("failed to decode lobby groups", "error", err)
		return nil, storeErr("decode lobby groups", err)
	}

	res := make([]entities.CompanySummary, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toEntity())
	}
	return res, nil
}
