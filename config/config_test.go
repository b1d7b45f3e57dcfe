package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, BackendMongo, cfg.Storage.Backend)
	require.Equal(t, "lobbies", cfg.Mongo.Collection)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "0.0.0.0:4567", cfg.ServerAddr())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Storage.Backend)
	require.Equal(t, 9000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{Backend: BackendMongo},
		Mongo:   MongoConfig{URI: "mongodb://localhost:27017", Database: "dev", Collection: "lobbies"},
	}
	require.NoError(t, base.Validate())

	noPort := base
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	unknown := base
	unknown.Storage.Backend = "cassandra"
	require.ErrorContains(t, unknown.Validate(), "cassandra")

	noCollection := base
	noCollection.Mongo.Collection = ""
	require.Error(t, noCollection.Validate())

	pg := base
	pg.Storage.Backend = BackendPostgres
	require.Error(t, pg.Validate())
	pg.Postgres = PostgresConfig{Host: "localhost", User: "postgres", Password: "postgres", DBName: "lobbies_db"}
	require.NoError(t, pg.Validate())
}
