package usecase

import (
	"context"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
)

// LobbyUsecaseInterface abstracts lobby CRUD for the delivery layer.
type LobbyUsecaseInterface interface {
	Lobby(ctx context.Context, id string) (*entities.Lobby, error)
	ListLobbies(ctx context.Context, params map[string]string) ([]entities.Lobby, error)
	CreateLobby(ctx context.Context, lobby entities.Lobby) (*entities.Lobby, error)
	DeleteLobby(ctx context.Context, id string) error
}

// RosterUsecaseInterface abstracts membership operations.
type RosterUsecaseInterface interface {
	AddMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error)
	RemoveMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error)
}

// CompanyUsecaseInterface abstracts company aggregation.
type CompanyUsecaseInterface interface {
	LobbiesByCompany(ctx context.Context, sortBy, sortOrder string) ([]entities.CompanySummary, error)
}
