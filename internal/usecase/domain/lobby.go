// Package domain contains application services orchestrating lobby logic.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"github.com/samber/lo"
)

// Query parameters that steer ordering rather than filtering.
const (
	SortByParam    = "sortby"
	SortOrderParam = "sortorder"
)

// Lobby returns lobby by id.
func (u *Usecase) Lobby(ctx context.Context, id string) (*entities.Lobby, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: lobby id is required", entities.ErrInvalidIdentifier)
	}
	return u.repo.GetLobby(ctx, id)
}

// ListLobbies filters and orders lobbies by raw query parameters.
func (u *Usecase) ListLobbies(ctx context.Context, params map[string]string) ([]entities.Lobby, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter, err := query.BuildFilter(params)
	if err != nil {
		return nil, err
	}
	order := query.BuildOrder(params[SortByParam], params[SortOrderParam])

	return u.repo.ListLobbies(ctx, filter, order)
}

// CreateLobby validates and stores a new lobby.
func (u *Usecase) CreateLobby(ctx context.Context, lobby entities.Lobby) (*entities.Lobby, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.validate.Struct(lobby); err != nil {
		u.log.Errorw("failed to create lobby: missing lobby name")
		return nil, fmt.Errorf("%w: lobby must have a non-empty lobby name", entities.ErrInvalidArgument)
	}

	lobby.ID = ""
	lobby.MemberIDs = lo.Uniq(lo.Compact(lobby.MemberIDs))
	if lobby.Company != nil && strings.TrimSpace(*lobby.Company) == "" {
		lobby.Company = nil
	}

	created, err := u.repo.CreateLobby(ctx, lobby)
	if err != nil {
		return nil, err
	}
	u.log.Infow("lobby create", "lobby_id", created.ID)
	return created, nil
}

// DeleteLobby removes a lobby by id.
func (u *Usecase) DeleteLobby(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: lobby id is required", entities.ErrInvalidIdentifier)
	}
	return u.repo.DeleteLobby(ctx, id)
}
