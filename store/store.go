package store

import (
	"context"
	"time"

	"triviaroom/models"
)

// EntityTTL is refreshed on every write. Idle entities are purged by the
// store itself, not by application logic.
const EntityTTL = 3600 * time.Second

// Store persists the three entity kinds independently, keyed by kind:id.
// No cross-key atomicity is assumed.
type Store interface {
	GetGame(ctx context.Context, id string) (*models.GameRoom, error)
	SaveGame(ctx context.Context, game *models.GameRoom) error

	GetPlayer(ctx context.Context, id string) (*models.PlayerSession, error)
	SavePlayer(ctx context.Context, player *models.PlayerSession) error

	GetTeam(ctx context.Context, id string) (*models.Team, error)
	SaveTeam(ctx context.Context, team *models.Team) error
}

func gameKey(id string) string   { return "game:" + id }
func playerKey(id string) string { return "player:" + id }
func teamKey(id string) string   { return "team:" + id }
