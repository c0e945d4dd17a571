package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"triviaroom/models"
)

// RedisStore stores each entity as a JSON blob with EntityTTL applied on
// every write.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetGame(ctx context.Context, id string) (*models.GameRoom, error) {
	var game models.GameRoom
	if err := s.get(ctx, gameKey(id), "game", &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *RedisStore) SaveGame(ctx context.Context, game *models.GameRoom) error {
	return s.set(ctx, gameKey(game.ID), game)
}

func (s *RedisStore) GetPlayer(ctx context.Context, id string) (*models.PlayerSession, error) {
	var player models.PlayerSession
	if err := s.get(ctx, playerKey(id), "player", &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *RedisStore) SavePlayer(ctx context.Context, player *models.PlayerSession) error {
	return s.set(ctx, playerKey(player.ID), player)
}

func (s *RedisStore) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := s.get(ctx, teamKey(id), "team", &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *RedisStore) SaveTeam(ctx context.Context, team *models.Team) error {
	return s.set(ctx, teamKey(team.ID), team)
}

func (s *RedisStore) get(ctx context.Context, key, kind string, dest any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return models.NotFoundError("%s not found", kind)
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, EntityTTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
