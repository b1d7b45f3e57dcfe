// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	oapi "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"

	"github.com/samber/lo"
)

// FromOAPINewLobby builds an entities.Lobby from the create request body.
func FromOAPINewLobby(src oapi.NewLobby) entities.Lobby {
	return entities.Lobby{
		Name:      lo.FromPtr(src.LobbyName),
		MemberIDs: src.MemberIDs,
		Company:   src.Company,
	}
}

// ToOAPILobby maps entities.Lobby to transport model.
func ToOAPILobby(l entities.Lobby) oapi.Lobby {
	return oapi.Lobby{
		Id:        l.ID,
		LobbyName: l.Name,
		MemberIDs: nonNil(l.MemberIDs),
		Company:   l.Company,
	}
}

// ToOAPILobbies maps a lobby list, never returning nil so it encodes as [].
func ToOAPILobbies(ls []entities.Lobby) []oapi.Lobby {
	return lo.Map(ls, func(l entities.Lobby, _ int) oapi.Lobby {
		return ToOAPILobby(l)
	})
}

// ToOAPIRoster maps a roster mutation outcome.
func ToOAPIRoster(r entities.Roster) oapi.Roster {
	return oapi.Roster{
		Id:        r.LobbyID,
		MemberIDs: nonNil(r.MemberIDs),
	}
}

// ToOAPICompanySummaries maps company groups.
func ToOAPICompanySummaries(groups []entities.CompanySummary) []oapi.CompanySummary {
	return lo.Map(groups, func(g entities.CompanySummary, _ int) oapi.CompanySummary {
		return oapi.CompanySummary{
			Company: g.Company,
			Count:   g.Count,
			Lobbies: lo.Map(g.Lobbies, func(r entities.LobbyRef, _ int) oapi.LobbyRef {
				return oapi.LobbyRef{Id: r.ID, Name: r.Name}
			}),
		}
	})
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
