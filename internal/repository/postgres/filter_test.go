package postgres

import (
	"testing"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"github.com/stretchr/testify/require"
)

func TestBuildLobbyFilter(t *testing.T) {
	where, args := buildLobbyFilter(query.Filter{})
	require.Empty(t, where)
	require.Empty(t, args)

	f, err := query.BuildFilter(map[string]string{"company": "acme", "lobbyName": "chan'; DROP TABLE lobbies;--"})
	require.NoError(t, err)

	where, args = buildLobbyFilter(f)
	require.Equal(t, "WHERE lobby_name ~* $1 AND company = $2", where)
	require.Equal(t, []any{"chan'; DROP TABLE lobbies;--", "acme"}, args)
}

func TestBuildLobbyOrder(t *testing.T) {
	require.Equal(t, `ORDER BY lobby_name COLLATE "C" ASC, seq ASC`, buildLobbyOrder(query.BuildOrder("", "")))
	require.Equal(t, `ORDER BY company COLLATE "C" DESC NULLS LAST, seq DESC`, buildLobbyOrder(query.BuildOrder("company", "desc")))
	require.Equal(t, "ORDER BY seq DESC", buildLobbyOrder(query.BuildOrder("id", "desc")))
	require.Equal(t, `ORDER BY lobby_name COLLATE "C" ASC, seq ASC`, buildLobbyOrder(query.BuildOrder("1; DROP TABLE lobbies", "")))
}

func TestBuildGroupOrder(t *testing.T) {
	require.Equal(t, `ORDER BY company COLLATE "C" ASC NULLS FIRST`, buildGroupOrder(query.BuildGroupOrder("company", "")))
	require.Equal(t, `ORDER BY cnt DESC, company COLLATE "C" DESC NULLS LAST`, buildGroupOrder(query.BuildGroupOrder("count", "desc")))
}

func TestParseID(t *testing.T) {
	_, err := parseID("bad")
	require.ErrorIs(t, err, entities.ErrInvalidIdentifier)

	id, err := parseID("7F8B1C52-6A56-4F0E-8F56-3A2A1F1F8D11")
	require.NoError(t, err)
	require.Equal(t, "7f8b1c52-6a56-4f0e-8f56-3a2a1f1f8d11", id)
}
