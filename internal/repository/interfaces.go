// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// LobbyInterface exposes lobby CRUD operations.
type LobbyInterface interface {
	GetLobby(ctx context.Context, id string) (*entities.Lobby, error)
	ListLobbies(ctx context.Context, filter query.Filter, order query.Order) ([]entities.Lobby, error)
	CreateLobby(ctx context.Context, lobby entities.Lobby) (*entities.Lobby, error)
	DeleteLobby(ctx context.Context, id string) error
}

// RosterInterface exposes atomic membership mutations. Each call is a single store operation.
type RosterInterface interface {
	AddMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error)
	RemoveMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error)
}

// CompanyInterface exposes company aggregation.
type CompanyInterface interface {
	LobbiesByCompany(ctx context.Context, order query.GroupOrder) ([]entities.CompanySummary, error)
}
