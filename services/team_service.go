package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"triviaroom/models"
	"triviaroom/store"
)

// teamColors is the fixed palette assigned round-robin by creation order.
var teamColors = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#FFA07A", // light salmon
	"#98D8C8", // mint
	"#F06292", // pink
	"#AED581", // light green
	"#FFD93D", // yellow
}

type TeamService struct {
	store  store.Store
	locks  *RoomLocks
	logger zerolog.Logger
}

func NewTeamService(st store.Store, locks *RoomLocks, logger zerolog.Logger) *TeamService {
	return &TeamService{
		store:  st,
		locks:  locks,
		logger: logger,
	}
}

type CreateTeamResult struct {
	Team     *models.Team     `json:"team"`
	GameRoom *models.GameRoom `json:"gameRoom"`
}

type JoinTeamResult struct {
	Team   *models.Team          `json:"team"`
	Player *models.PlayerSession `json:"player"`
}

// Create adds a team to a team-mode room. The nth team created gets the
// nth palette color (mod palette size). If playerID is supplied the creator
// becomes sole member and captain.
func (s *TeamService) Create(ctx context.Context, gameID, teamName, playerID string) (*CreateTeamResult, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, models.ValidationError("team name is required")
	}

	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.GameMode != models.ModeTeams {
		return nil, models.InvalidStateError("game is not in team mode")
	}
	if game.Settings.MaxTeams > 0 && len(game.Teams) >= game.Settings.MaxTeams {
		return nil, models.CapacityError("maximum teams reached")
	}

	now := time.Now().UTC()
	team := &models.Team{
		ID:        uuid.NewString(),
		Name:      teamName,
		GameID:    gameID,
		PlayerIDs: []string{},
		CaptainID: playerID,
		Score:     0,
		Color:     teamColors[len(game.Teams)%len(teamColors)],
		CreatedAt: now,
	}
	if playerID != "" {
		team.PlayerIDs = []string{playerID}
	}

	game.Teams = append(game.Teams, team.ID)
	game.UpdatedAt = now

	if err := s.store.SaveTeam(ctx, team); err != nil {
		return nil, err
	}
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", gameID).
		Str("team_id", team.ID).
		Str("team_name", team.Name).
		Str("color", team.Color).
		Msg("team created")

	return &CreateTeamResult{Team: team, GameRoom: game}, nil
}

// Join adds a player to a team. A player can only ever be in one team; the
// first joiner of a captainless team becomes captain.
func (s *TeamService) Join(ctx context.Context, gameID, teamID, playerID string) (*JoinTeamResult, error) {
	if playerID == "" {
		return nil, models.ValidationError("player id is required")
	}

	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if game.GameMode != models.ModeTeams {
		return nil, models.InvalidStateError("game is not in team mode")
	}
	if player.TeamID != "" || team.HasPlayer(playerID) {
		return nil, models.ConflictError("player is already in a team")
	}
	if game.Settings.MaxPlayersPerTeam > 0 && len(team.PlayerIDs) >= game.Settings.MaxPlayersPerTeam {
		return nil, models.CapacityError("team is full")
	}

	team.PlayerIDs = append(team.PlayerIDs, playerID)
	player.TeamID = teamID
	if team.CaptainID == "" {
		team.CaptainID = playerID
	}

	if err := s.store.SaveTeam(ctx, team); err != nil {
		return nil, err
	}
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", gameID).
		Str("team_id", teamID).
		Str("player_id", playerID).
		Msg("player joined team")

	return &JoinTeamResult{Team: team, Player: player}, nil
}

// List returns all teams of a room, skipping expired entries.
func (s *TeamService) List(ctx context.Context, gameID string) ([]*models.Team, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	teams := make([]*models.Team, 0, len(game.Teams))
	for _, id := range game.Teams {
		team, err := s.store.GetTeam(ctx, id)
		if err != nil {
			if models.IsKind(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}
