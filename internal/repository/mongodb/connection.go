// Package mongodb implements the repository against a MongoDB lobby collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/config"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Mongo wraps a client and the lobby collection.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.MongoConfig
	client  *mongo.Client
	lobbies *mongo.Collection
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects to the server and ensures collection indexes.
func (m *Mongo) OnStart(_ context.Context) error {
	connectCtx, cancel := context.WithTimeout(m.baseCtx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping: %w", err)
	}

	lobbies := client.Database(m.cfg.Database).Collection(m.cfg.Collection)
	_, err = lobbies.Indexes().CreateMany(connectCtx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldLobbyName, Value: 1}}},
		{Keys: bson.D{{Key: fieldCompany, Value: 1}}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("create indexes: %w", err)
	}

	m.client = client
	m.lobbies = lobbies
	m.log.Infow("mongo ready", "database", m.cfg.Database, "collection", m.cfg.Collection)
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}
	return nil
}

func storeErr(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%s: %w: %w", op, entities.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
