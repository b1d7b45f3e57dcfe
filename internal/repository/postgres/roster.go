package postgres

import (
	"context"
	"errors"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"

	"github.com/jackc/pgx/v5"
)

// Both updates are single statements. Under READ COMMITTED a concurrent writer blocks on the row
// lock and then re-evaluates the WHERE clause against the committed roster, so no add is lost.
const (
	addMemberQuery = `
UPDATE lobbies
SET member_ids = array_append(member_ids, $2)
WHERE id = $1 AND NOT ($2 = ANY(member_ids))
RETURNING member_ids`
	removeMemberQuery = `
UPDATE lobbies
SET member_ids = array_remove(member_ids, $2)
WHERE id = $1 AND $2 = ANY(member_ids)
RETURNING member_ids`
	selectMembersQuery = `SELECT member_ids FROM lobbies WHERE id = $1`
)

// AddMember appends memberID unless it is already on the roster.
func (p *Postgres) AddMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	res, err := p.updateRoster(ctx, addMemberQuery, lobbyID, memberID)
	if err != nil {
		return res, err
	}
	if res.Changed {
		p.log.Infow("member added", "lobby_id", res.LobbyID, "member_id", memberID)
	}
	return res, nil
}

// RemoveMember drops memberID from the roster if present.
func (p *Postgres) RemoveMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	res, err := p.updateRoster(ctx, removeMemberQuery, lobbyID, memberID)
	if err != nil {
		return res, err
	}
	if res.Changed {
		p.log.Infow("member removed", "lobby_id", res.LobbyID, "member_id", memberID)
	}
	return res, nil
}

// updateRoster runs a conditional update. When it matches no row the call was either a no-op
// or the lobby does not exist, which the follow-up read tells apart.
func (p *Postgres) updateRoster(ctx context.Context, stmt, lobbyID, memberID string) (entities.Roster, error) {
	key, err := parseID(lobbyID)
	if err != nil {
		return entities.Roster{}, err
	}

	res := entities.Roster{LobbyID: key}
	err = p.db.QueryRow(ctx, stmt, key, memberID).Scan(&res.MemberIDs)
	if err == nil {
		res.Changed = true
		return res, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.log.Errorw("failed to update roster", "error", err, "lobby_id", lobbyID)
		return entities.Roster{}, storeErr("update roster", err)
	}

	if err := p.db.QueryRow(ctx, selectMembersQuery, key).Scan(&res.MemberIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Roster{}, entities.ErrLobbyNotFound
		}
		return entities.Roster{}, storeErr("read roster", err)
	}
	return res, nil
}
