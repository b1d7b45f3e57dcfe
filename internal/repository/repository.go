// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/config"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository/memory"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository/mongodb"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	LobbyInterface
	RosterInterface
	CompanyInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMongo:
		return mongodb.New(ctx, log, cfg), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
