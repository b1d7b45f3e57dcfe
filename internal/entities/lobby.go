// Package entities contains core business entities.
package entities

// Lobby is a named group holding an ordered roster of member ids.
type Lobby struct {
	ID        string
	Name      string `validate:"required"`
	MemberIDs []string
	// Company is nil for ungrouped lobbies.
	Company *string
}

// HasMember reports whether memberID is on the roster.
func (l Lobby) HasMember(memberID string) bool {
	for _, m := range l.MemberIDs {
		if m == memberID {
			return true
		}
	}
	return false
}

// Roster is the outcome of a membership mutation.
type Roster struct {
	LobbyID   string
	MemberIDs []string
	// Changed is false when the mutation was a no-op.
	Changed bool
}
