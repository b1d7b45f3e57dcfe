package mongodb

import (
	"context"
	"errors"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddMember adds memberID with $addToSet. The pre-image tells whether the call changed anything.
func (m *Mongo) AddMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	before, err := m.updateRoster(ctx, lobbyID, bson.D{{Key: "$addToSet", Value: bson.D{{Key: fieldMemberIDs, Value: memberID}}}})
	if err != nil {
		return entities.Roster{}, err
	}

	res := entities.Roster{LobbyID: lobbyID, MemberIDs: before.MemberIDs}
	if !before.HasMember(memberID) {
		res.MemberIDs = append(res.MemberIDs, memberID)
		res.Changed = true
		m.log.Infow("member added", "lobby_id", lobbyID, "member_id", memberID)
	}
	return res, nil
}

// RemoveMember pulls memberID from the roster.
func (m *Mongo) RemoveMember(ctx context.Context, lobbyID, memberID string) (entities.Roster, error) {
	before, err := m.updateRoster(ctx, lobbyID, bson.D{{Key: "$pull", Value: bson.D{{Key: fieldMemberIDs, Value: memberID}}}})
	if err != nil {
		return entities.Roster{}, err
	}

	res := entities.Roster{LobbyID: lobbyID, MemberIDs: before.MemberIDs}
	if before.HasMember(memberID) {
		res.MemberIDs = lo.Without(before.MemberIDs, memberID)
		res.Changed = true
		m.log.Infow("member removed", "lobby_id", lobbyID, "member_id", memberID)
	}
	return res, nil
}

// updateRoster applies update atomically and returns the lobby as it was before.
func (m *Mongo) updateRoster(ctx context.Context, lobbyID string, update bson.D) (entities.Lobby, error) {
	oid, err := objectID(lobbyID)
	if err != nil {
		return entities.Lobby{}, err
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.D{{Key: fieldMemberIDs, Value: 1}})

	var doc lobbyDocument
	err = m.lobbies.FindOneAndUpdate(ctx, bson.D{{Key: fieldID, Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Lobby{}, entities.ErrLobbyNotFound
		}
		m.log.Errorw("failed to update roster", "error", err, "lobby_id", lobbyID)
		return entities.Lobby{}, storeErr("update roster", err)
	}
	return doc.toEntity(), nil
}
