package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"github.com/google/uuid"
)

// GetLobby returns a lobby by id.
func (m *Memory) GetLobby(_ context.Context, id string) (*entities.Lobby, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.lobbies[key]
	if !ok {
		return nil, entities.ErrLobbyNotFound
	}
	l := clone(rec.lobby)
	return &l, nil
}

// ListLobbies returns lobbies matching filter in the requested order.
func (m *Memory) ListLobbies(_ context.Context, filter query.Filter, order query.Order) ([]entities.Lobby, error) {
	m.mu.RLock()
	matched := make([]*record, 0, len(m.lobbies))
	for _, rec := range m.lobbies {
		if filter.Matches(rec.lobby) {
			matched = append(matched, &record{seq: rec.seq, lobby: clone(rec.lobby)})
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *record) int {
		c := compareField(a, b, order.Field)
		if c == 0 {
			c = cmp.Compare(a.seq, b.seq)
		}
		if order.Direction == query.Descending {
			return -c
		}
		return c
	})

	res := make([]entities.Lobby, 0, len(matched))
	for _, rec := range matched {
		res = append(res, rec.lobby)
	}
	return res, nil
}

// CreateLobby stores a lobby under a fresh id.
func (m *Memory) CreateLobby(_ context.Context, lobby entities.Lobby) (*entities.Lobby, error) {
	lobby = clone(lobby)
	lobby.ID = uuid.NewString()

	m.mu.Lock()
	m.seq++
	m.lobbies[lobby.ID] = &record{seq: m.seq, lobby: lobby}
	m.mu.Unlock()

	m.log.Infow("lobby created", "lobby_id", lobby.ID, "members", len(lobby.MemberIDs))
	created := clone(lobby)
	return &created, nil
}

// DeleteLobby removes a lobby by id.
func (m *Memory) DeleteLobby(_ context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lobbies[key]; !ok {
		return entities.ErrLobbyNotFound
	}
	delete(m.lobbies, key)
	m.log.Infow("lobby deleted", "lobby_id", key)
	return nil
}

func compareField(a, b *record, field query.Field) int {
	switch field {
	case query.FieldCompany:
		return compareCompany(a.lobby.Company, b.lobby.Company)
	case query.FieldID:
		return cmp.Compare(a.seq, b.seq)
	default:
		return cmp.Compare(a.lobby.Name, b.lobby.Name)
	}
}

// compareCompany orders ungrouped before any company, as the document store does with null.
func compareCompany(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}
