// Package memory implements the repository in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type record struct {
	seq   int64
	lobby entities.Lobby
}

// Memory keeps lobbies in a map guarded by a single lock. Every mutation holds the write lock
// for its whole read-check-write, which is what makes roster updates atomic here.
type Memory struct {
	log     *zap.SugaredLogger
	mu      sync.RWMutex
	seq     int64
	lobbies map[string]*record
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:     log.Named("repo.memory"),
		lobbies: make(map[string]*record),
	}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop drops all lobbies.
func (m *Memory) OnStop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lobbies = make(map[string]*record)
	return nil
}

func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid lobby id", entities.ErrInvalidIdentifier, id)
	}
	return parsed.String(), nil
}

func clone(l entities.Lobby) entities.Lobby {
	l.MemberIDs = slices.Clone(l.MemberIDs)
	if l.MemberIDs == nil {
		l.MemberIDs = []string{}
	}
	if l.Company != nil {
		c := *l.Company
		l.Company = &c
	}
	return l
}
