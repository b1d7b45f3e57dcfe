package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	lobbyColumns     = "id::text, lobby_name, member_ids, company"
	selectLobbyQuery = "SELECT " + lobbyColumns + " FROM lobbies WHERE id=$1"
	listLobbiesQuery = "SELECT " + lobbyColumns + " FROM lobbies"
	insertLobbyQuery = "INSERT INTO lobbies(id, lobby_name, member_ids, company) VALUES ($1,$2,$3,$4)"
	deleteLobbyQuery = "DELETE FROM lobbies WHERE id=$1"
)

// GetLobby fetches a lobby by id.
func (p *Postgres) GetLobby(ctx context.Context, id string) (*entities.Lobby, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var l entities.Lobby
	if err := p.db.QueryRow(ctx, selectLobbyQuery, key).Scan(&l.ID, &l.Name, &l.MemberIDs, &l.Company); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLobbyNotFound
		}
		p.log.Errorw("failed to get lobby", "error", err, "lobby_id", id)
		return nil, storeErr("get lobby", err)
	}
	return &l, nil
}

// ListLobbies returns lobbies matching filter in the requested order.
func (p *Postgres) ListLobbies(ctx context.Context, filter query.Filter, order query.Order) ([]entities.Lobby, error) {
	whereClause, args := buildLobbyFilter(filter)

	var b strings.Builder
	b.WriteString(listLobbiesQuery)
	if whereClause != "" {
		b.WriteByte(' ')
		b.WriteString(whereClause)
	}
	b.WriteByte(' ')
	b.WriteString(buildLobbyOrder(order))

	rows, err := p.db.Query(ctx, b.String(), args...)
	if err != nil {
		p.log.Errorw("failed to list lobbies", "error", err)
		return nil, storeErr("list lobbies", err)
	}
	defer rows.Close()

	lobbies := make([]entities.Lobby, 0)
	for rows.Next() {
		var l entities.Lobby
		if err := rows.Scan(&l.ID, &l.Name, &l.MemberIDs, &l.Company); err != nil {
			return nil, fmt.Errorf("scan lobby: %w", err)
		}
		lobbies = append(lobbies, l)
	}
	if err := rows.Err(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "2201B" {
			return nil, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, pgErr.Message)
		}
		return nil, storeErr("iterate lobbies", err)
	}

	return lobbies, nil
}

// CreateLobby inserts a lobby under a fresh uuid.
func (p *Postgres) CreateLobby(ctx context.Context, lobby entities.Lobby) (*entities.Lobby, error) {
	lobby.ID = uuid.NewString()
	if lobby.MemberIDs == nil {
		lobby.MemberIDs = []string{}
	}

	if _, err := p.db.Exec(ctx, insertLobbyQuery, lobby.ID, lobby.Name, lobby.MemberIDs, lobby.Company); err != nil {
		p.log.Errorw("failed to insert lobby", "error", err, "lobby_name", lobby.Name)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, fmt.Errorf("%w: lobby must have a non-empty lobby name", entities.ErrInvalidArgument)
		}
		return nil, storeErr("insert lobby", err)
	}

	p.log.Infow("lobby created", "lobby_id", lobby.ID, "members", len(lobby.MemberIDs))
	return &lobby, nil
}

// DeleteLobby removes exactly one lobby in a single statement.
func (p *Postgres) DeleteLobby(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := p.db.Exec(ctx, deleteLobbyQuery, key)
	if err != nil {
		p.log.Errorw("failed to delete lobby", "error", err, "lobby_id", id)
		return storeErr("delete lobby", err)
	}
	if tag.RowsAffected() != 1 {
		return entities.ErrLobbyNotFound
	}

	p.log.Infow("lobby deleted", "lobby_id", key)
	return nil
}
