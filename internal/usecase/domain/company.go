package domain

import (
	"context"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"
)

// LobbiesByCompany summarises lobbies per company.
func (u *Usecase) LobbiesByCompany(ctx context.Context, sortBy, sortOrder string) ([]entities.CompanySummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.LobbiesByCompany(ctx, query.BuildGroupOrder(sortBy, sortOrder))
}
