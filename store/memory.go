package store

import (
	"context"
	"encoding/json"
	"sync"

	"triviaroom/models"
)

// MemoryStore is a mutex-guarded in-memory Store used in tests and for
// local development without Redis. Entities round-trip through JSON so the
// codec behaves identically to the Redis-backed store. TTL is not enforced.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) GetGame(ctx context.Context, id string) (*models.GameRoom, error) {
	var game models.GameRoom
	if err := s.get(gameKey(id), "game", &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *MemoryStore) SaveGame(ctx context.Context, game *models.GameRoom) error {
	return s.set(gameKey(game.ID), game)
}

func (s *MemoryStore) GetPlayer(ctx context.Context, id string) (*models.PlayerSession, error) {
	var player models.PlayerSession
	if err := s.get(playerKey(id), "player", &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *MemoryStore) SavePlayer(ctx context.Context, player *models.PlayerSession) error {
	return s.set(playerKey(player.ID), player)
}

func (s *MemoryStore) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := s.get(teamKey(id), "team", &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *MemoryStore) SaveTeam(ctx context.Context, team *models.Team) error {
	return s.set(teamKey(team.ID), team)
}

func (s *MemoryStore) get(key, kind string, dest any) error {
	s.mu.RLock()
	data, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return models.NotFoundError("%s not found", kind)
	}
	return json.Unmarshal(data, dest)
}

func (s *MemoryStore) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
	return nil
}
