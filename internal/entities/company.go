// Package entities contains core business entities.
package entities

// LobbyRef is a compact lobby projection used in summaries.
type LobbyRef struct {
	ID   string
	Name string
}

// CompanySummary groups lobbies sharing a company. Count always equals len(Lobbies).
type CompanySummary struct {
	Company *string
	Count   int
	Lobbies []LobbyRef
}
