package mongodb

import (
	"context"
	"errors"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetLobby fetches a lobby by its object id.
func (m *Mongo) GetLobby(ctx context.Context, id string) (*entities.Lobby, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc lobbyDocument
	if err := m.lobbies.FindOne(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrLobbyNotFound
		}
		m.log.Errorw("failed to get lobby", "error", err, "lobby_id", id)
		return nil, storeErr("get lobby", err)
	}

	l := doc.toEntity()
	return &l, nil
}

// ListLobbies runs find/sort in the server and returns every match.
func (m *Mongo) ListLobbies(ctx context.Context, filter query.Filter, order query.Order) ([]entities.Lobby, error) {
	cur, err := m.lobbies.Find(ctx, filterDocument(filter), options.Find().SetSort(sortDocument(order)))
	if err != nil {
		m.log.Errorw("failed to list lobbies", "error", err)
		return nil, storeErr("list lobbies", err)
	}

	docs := make([]lobbyDocument, 0)
	if err := cur.All(ctx, &docs); err != nil {
		m.log.Errorw("failed to decode lobbies", "error", err)
		return nil, storeErr("decode lobbies", err)
	}

	res := make([]entities.Lobby, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toEntity())
	}
	return res, nil
}

// CreateLobby inserts a lobby; the server assigns its id.
func (m *Mongo) CreateLobby(ctx context.Context, lobby entities.Lobby) (*entities.Lobby, error) {
	doc := fromEntity(lobby)
	doc.ID = primitive.NewObjectID()

	if _, err := m.lobbies.InsertOne(ctx, doc); err != nil {
		m.log.Errorw("failed to insert lobby", "error", err, "lobby_name", lobby.Name)
		return nil, storeErr("insert lobby", err)
	}

	m.log.Infow("lobby created", "lobby_id", doc.ID.Hex(), "members", len(doc.MemberIDs))
	l := doc.toEntity()
	return &l, nil
}

// DeleteLobby removes exactly one lobby in a single round trip.
func (m *Mongo) DeleteLobby(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := m.lobbies.DeleteOne(ctx, bson.D{{Key: fieldID, Value: oid}})
	if err != nil {
		m.log.Errorw("failed to delete lobby", "error", err, "lobby_id", id)
		return storeErr("delete lobby", err)
	}
	if res.DeletedCount != 1 {
		return entities.ErrLobbyNotFound
	}

	m.log.Infow("lobby deleted", "lobby_id", id)
	return nil
}
