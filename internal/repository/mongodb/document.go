package mongodb

import (
	"fmt"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	fieldID        = "_id"
	fieldLobbyName = "lobbyName"
	fieldMemberIDs = "memberIDs"
	fieldCompany   = "company"
)

type lobbyDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	LobbyName string             `bson:"lobbyName"`
	MemberIDs []string           `bson:"memberIDs"`
	Company   *string            `bson:"company,omitempty"`
}

type companyGroupDocument struct {
	Company *string `bson:"_id"`
	Count   int     `bson:"count"`
	Lobbies []struct {
		ID   primitive.ObjectID `bson:"id"`
		Name string             `bson:"name"`
	} `bson:"lobbies"`
}

func (d lobbyDocument) toEntity() entities.Lobby {
	members := d.MemberIDs
	if members == nil {
		members = []string{}
	}
	return entities.Lobby{
		ID:        d.ID.Hex(),
		Name:      d.LobbyName,
		MemberIDs: members,
		Company:   d.Company,
	}
}

func fromEntity(l entities.Lobby) lobbyDocument {
	members := l.MemberIDs
	if members == nil {
		members = []string{}
	}
	return lobbyDocument{
		LobbyName: l.Name,
		MemberIDs: members,
		Company:   l.Company,
	}
}

func (d companyGroupDocument) toEntity() entities.CompanySummary {
	refs := make([]entities.LobbyRef, 0, len(d.Lobbies))
	for _, l := range d.Lobbies {
		refs = append(refs, entities.LobbyRef{ID: l.ID.Hex(), Name: l.Name})
	}
	return entities.CompanySummary{Company: d.Company, Count: d.Count, Lobbies: refs}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a legal object id", entities.ErrInvalidIdentifier, id)
	}
	return oid, nil
}

func fieldName(f query.Field) string {
	switch f {
	case query.FieldID:
		return fieldID
	case query.FieldCompany:
		return fieldCompany
	default:
		return fieldLobbyName
	}
}

// filterDocument compiles a filter into a $and of per-field conditions.
func filterDocument(f query.Filter) bson.D {
	if f.IsEmpty() {
		return bson.D{}
	}

	conds := make(bson.A, 0, len(f.Predicates))
	for _, p := range f.Predicates {
		switch p.Op {
		case query.OpMatches:
			conds = append(conds, bson.D{{Key: fieldName(p.Field), Value: primitive.Regex{Pattern: p.Value, Options: "i"}}})
		case query.OpEquals:
			conds = append(conds, bson.D{{Key: fieldName(p.Field), Value: p.Value}})
		}
	}
	return bson.D{{Key: "$and", Value: conds}}
}

func direction(d query.Direction) int {
	if d == query.Descending {
		return -1
	}
	return 1
}

// sortDocument breaks ties on _id in the same direction so that asc and desc are exact reversals.
func sortDocument(o query.Order) bson.D {
	dir := direction(o.Direction)
	field := fieldName(o.Field)
	if field == fieldID {
		return bson.D{{Key: fieldID, Value: dir}}
	}
	return bson.D{{Key: field, Value: dir}, {Key: fieldID, Value: dir}}
}

func groupPipeline(o query.GroupOrder) bson.A {
	dir := direction(o.Direction)
	sort := bson.D{{Key: "_id", Value: dir}}
	if o.Key == query.GroupByCount {
		sort = bson.D{{Key: "count", Value: dir}, {Key: "_id", Value: dir}}
	}

	return bson.A{
		bson.D{{Key: "$sort", Value: bson.D{{Key: fieldID, Value: 1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + fieldCompany},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "lobbies", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "id", Value: "$" + fieldID},
				{Key: "name", Value: "$" + fieldLobbyName},
			}}}},
		}}},
		bson.D{{Key: "$sort", Value: sort}},
	}
}
