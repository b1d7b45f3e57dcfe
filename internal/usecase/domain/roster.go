package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
)

// AddMember puts memberID on the lobby roster. Adding an existing member is a no-op.
func (u *Usecase) AddMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkRosterArgs(lobbyID, memberID); err != nil {
		return entities.Roster{}, err
	}
	return u.repo.AddMember(ctx, lobbyID, strings.TrimSpace(memberID))
}

// RemoveMember takes memberID off the lobby roster. Removing an absent member is a no-op.
func (u *Usecase) RemoveMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := checkRosterArgs(lobbyID, memberID); err != nil {
		return entities.Roster{}, err
	}
	return u.repo.RemoveMember(ctx, lobbyID, strings.TrimSpace(memberID))
}

func checkRosterArgs(lobbyID, memberID string) error {
	if lobbyID == "" {
		return fmt.Errorf("%w: lobby id is required", entities.ErrInvalidIdentifier)
	}
	if strings.TrimSpace(memberID) == "" {
		return fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return nil
}
