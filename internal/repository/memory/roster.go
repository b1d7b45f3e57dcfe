package memory

import (
	"context"
	"slices"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"

	"github.com/samber/lo"
)

// AddMember appends memberID to the roster unless already present.
func (m *Memory) AddMember(_ context.Context, lobbyID, memberID string) (entities.Roster, error) {
	key, err := parseID(lobbyID)
	if err != nil {
		return entities.Roster{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.lobbies[key]
	if !ok {
		return entities.Roster{}, entities.ErrLobbyNotFound
	}

	changed := !rec.lobby.HasMember(memberID)
	if changed {
		rec.lobby.MemberIDs = append(rec.lobby.MemberIDs, memberID)
		m.log.Infow("member added", "lobby_id", key, "member_id", memberID)
	}
	return entities.Roster{LobbyID: key, MemberIDs: slices.Clone(rec.lobby.MemberIDs), Changed: changed}, nil
}

// RemoveMember drops memberID from the roster if present.
func (m *Memory) RemoveMember(_ context.Context, lobbyID, memberID string) (entities.Roster, error) {
	key, err := parseID(lobbyID)
	if err != nil {
		return entities.Roster{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.lobbies[key]
	if !ok {
		return entities.Roster{}, entities.ErrLobbyNotFound
	}

	changed := rec.lobby.HasMember(memberID)
	if changed {
		rec.lobby.MemberIDs = lo.Without(rec.lobby.MemberIDs, memberID)
		m.log.Infow("member removed", "lobby_id", key, "member_id", memberID)
	}
	return entities.Roster{LobbyID: key, MemberIDs: slices.Clone(rec.lobby.MemberIDs), Changed: changed}, nil
}
