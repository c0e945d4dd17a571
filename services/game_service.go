package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"triviaroom/data"
	"triviaroom/models"
	"triviaroom/store"
)

// QuestionSource supplies the trivia questions for a new game. Implemented
// by TriviaService; tests substitute a stub.
type QuestionSource interface {
	Questions(ctx context.Context, settings models.QuizSettings) ([]models.Question, error)
}

type GameService struct {
	store  store.Store
	source QuestionSource
	locks  *RoomLocks
	logger zerolog.Logger
}

func NewGameService(st store.Store, source QuestionSource, locks *RoomLocks, logger zerolog.Logger) *GameService {
	return &GameService{
		store:  st,
		source: source,
		locks:  locks,
		logger: logger,
	}
}

type CreateGameRequest struct {
	PlayerName string              `json:"playerName"`
	Settings   models.QuizSettings `json:"settings"`
	GameMode   models.GameMode     `json:"gameMode"`
}

type JoinGameRequest struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
}

type CreateGameResult struct {
	GameID        string                `json:"gameId"`
	PlayerID      string                `json:"playerId"`
	GameRoom      *models.GameRoom      `json:"gameRoom"`
	PlayerSession *models.PlayerSession `json:"playerSession"`
}

type JoinGameResult struct {
	PlayerID      string                `json:"playerId"`
	GameRoom      *models.GameRoom      `json:"gameRoom"`
	PlayerSession *models.PlayerSession `json:"playerSession"`
	Teams         []*models.Team        `json:"teams"`
}

type GameDetail struct {
	GameRoom *RoomView               `json:"gameRoom"`
	Players  []*models.PlayerSession `json:"players"`
	Teams    []*models.Team          `json:"teams"`
}

type AdvanceResult struct {
	GameRoom       *models.GameRoom        `json:"gameRoom"`
	Players        []*models.PlayerSession `json:"players"`
	QuestionResult *QuestionResult         `json:"questionResult"`
}

type QuestionResult struct {
	QuestionID    string         `json:"questionId"`
	CorrectAnswer int            `json:"correctAnswer"`
	PlayerResults []PlayerResult `json:"playerResults"`
	TeamResults   []TeamResult   `json:"teamResults,omitempty"`
}

type PlayerResult struct {
	PlayerID    string `json:"playerId"`
	AnswerIndex *int   `json:"answerIndex,omitempty"`
	IsCorrect   bool   `json:"isCorrect"`
	Points      int    `json:"points"`
}

type TeamResult struct {
	TeamID     string `json:"teamId"`
	Points     int    `json:"points"`
	AnsweredBy string `json:"answeredBy,omitempty"`
	IsCorrect  bool   `json:"isCorrect"`
}

// PointsPerCorrectAnswer is the fixed scoring rule: no partial credit, no
// time bonus.
const PointsPerCorrectAnswer = 10

// Create builds a room in the setup phase with its rounds assembled up
// front: a trivia round sized per settings, plus the optional logo and
// sound rounds. The creator becomes host.
func (s *GameService) Create(ctx context.Context, req *CreateGameRequest) (*CreateGameResult, error) {
	playerName := strings.TrimSpace(req.PlayerName)
	if playerName == "" {
		return nil, models.ValidationError("player name is required")
	}

	gameMode := req.GameMode
	if gameMode == "" {
		gameMode = models.ModeIndividual
	}

	rounds := s.buildRounds(ctx, req.Settings)

	gameID := uuid.NewString()
	playerID := uuid.NewString()
	now := time.Now().UTC()

	game := &models.GameRoom{
		ID:              gameID,
		HostID:          playerID,
		Name:            playerName + "'s Quiz",
		Settings:        req.Settings,
		Rounds:          rounds,
		CurrentRound:    0,
		CurrentQuestion: 0,
		Phase:           models.PhaseSetup,
		Players:         []string{playerID},
		Teams:           []string{},
		GameMode:        gameMode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	host := &models.PlayerSession{
		ID:       playerID,
		Name:     playerName,
		GameID:   gameID,
		Answers:  map[string]int{},
		Score:    0,
		IsHost:   true,
		JoinedAt: now,
	}

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := s.store.SavePlayer(ctx, host); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", gameID).
		Str("host_id", playerID).
		Str("mode", string(gameMode)).
		Int("rounds", len(rounds)).
		Msg("game created")

	return &CreateGameResult{
		GameID:        gameID,
		PlayerID:      playerID,
		GameRoom:      game,
		PlayerSession: host,
	}, nil
}

func (s *GameService) buildRounds(ctx context.Context, settings models.QuizSettings) []models.Round {
	var rounds []models.Round

	questions, err := s.source.Questions(ctx, settings)
	if err != nil {
		s.logger.Warn().Err(err).Msg("trivia fetch failed, using built-in questions")
	}
	if len(questions) > 0 {
		difficulty := settings.Difficulty
		if difficulty == "" {
			difficulty = "mixed"
		}
		rounds = append(rounds, models.Round{
			ID:        "trivia",
			Name:      fmt.Sprintf("Trivia Questions (%s)", difficulty),
			Type:      models.QuestionGeneral,
			Questions: questions,
		})
	} else {
		rounds = append(rounds, data.GeneralKnowledgeRound())
	}

	if settings.IncludeLogos {
		rounds = append(rounds, data.LogoRound())
	}
	if settings.IncludeSounds {
		rounds = append(rounds, data.SoundRound())
	}
	return rounds
}

// Join adds a player to a room still in setup. Names are unique per room,
// case-insensitively.
func (s *GameService) Join(ctx context.Context, req *JoinGameRequest) (*JoinGameResult, error) {
	playerName := strings.TrimSpace(req.PlayerName)
	if req.GameID == "" || playerName == "" {
		return nil, models.ValidationError("game id and player name are required")
	}

	unlock := s.locks.Lock(req.GameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if game.Phase != models.PhaseSetup {
		return nil, models.InvalidStateError("game has already started")
	}

	players, err := s.loadPlayers(ctx, game)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, playerName) {
			return nil, models.ConflictError("player name already taken")
		}
	}

	now := time.Now().UTC()
	player := &models.PlayerSession{
		ID:       uuid.NewString(),
		Name:     playerName,
		GameID:   game.ID,
		Answers:  map[string]int{},
		Score:    0,
		IsHost:   false,
		JoinedAt: now,
	}

	game.Players = append(game.Players, player.ID)
	game.UpdatedAt = now

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	teams, err := s.loadTeams(ctx, game)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Str("player_id", player.ID).
		Str("player_name", player.Name).
		Msg("player joined")

	return &JoinGameResult{
		PlayerID:      player.ID,
		GameRoom:      game,
		PlayerSession: player,
		Teams:         teams,
	}, nil
}

// Get returns the room with its players and teams. Correct answers are
// stripped from the rounds unless the requester is the host.
func (s *GameService) Get(ctx context.Context, gameID, requesterID string) (*GameDetail, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	players, err := s.loadPlayers(ctx, game)
	if err != nil {
		return nil, err
	}
	teams, err := s.loadTeams(ctx, game)
	if err != nil {
		return nil, err
	}

	isHost := requesterID != "" && requesterID == game.HostID
	return &GameDetail{
		GameRoom: NewRoomView(game, isHost),
		Players:  players,
		Teams:    teams,
	}, nil
}

// Start moves the room from setup to playing. Host only.
func (s *GameService) Start(ctx context.Context, gameID, playerID string) (*models.GameRoom, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.HostID != playerID {
		return nil, models.ForbiddenError("only the host can start the game")
	}
	if game.Phase != models.PhaseSetup {
		return nil, models.InvalidStateError("game has already started")
	}

	now := time.Now().UTC()
	game.Phase = models.PhasePlaying
	game.CurrentQuestionStartedAt = &now
	game.UpdatedAt = now

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info().Str("game_id", game.ID).Msg("game started")
	return game, nil
}

// SubmitAnswer records a player's answer for a question. Re-submission by
// the same player overwrites; in team mode a second teammate answering the
// same question is rejected without any mutation.
func (s *GameService) SubmitAnswer(ctx context.Context, gameID, playerID, questionID string, answerIndex int) (*models.PlayerSession, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.GameID != gameID {
		return nil, models.NotFoundError("player not found in this game")
	}

	if game.GameMode == models.ModeTeams && player.TeamID != "" {
		if err := s.checkTeamAnswer(ctx, player, questionID); err != nil {
			return nil, err
		}
	}

	if player.Answers == nil {
		player.Answers = map[string]int{}
	}
	player.Answers[questionID] = answerIndex

	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("game_id", gameID).
		Str("player_id", playerID).
		Str("question_id", questionID).
		Int("answer_index", answerIndex).
		Msg("answer recorded")

	return player, nil
}

func (s *GameService) checkTeamAnswer(ctx context.Context, player *models.PlayerSession, questionID string) error {
	team, err := s.store.GetTeam(ctx, player.TeamID)
	if err != nil {
		return err
	}
	for _, memberID := range team.PlayerIDs {
		if memberID == player.ID {
			continue
		}
		member, err := s.store.GetPlayer(ctx, memberID)
		if err != nil {
			continue
		}
		if _, answered := member.Answers[questionID]; answered {
			return models.ConflictError("a team member has already answered")
		}
	}
	return nil
}

// Advance scores the current question for every player (and team in team
// mode), then moves the cursor: next question, next round, or finished.
// Host only.
func (s *GameService) Advance(ctx context.Context, gameID, playerID string) (*AdvanceResult, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.HostID != playerID {
		return nil, models.ForbiddenError("only the host can advance the game")
	}
	// the cursors still point at the last question after the final advance
	if game.Phase == models.PhaseFinished {
		return nil, models.InvalidStateError("game is finished")
	}

	question, ok := game.ActiveQuestion()
	if !ok {
		return nil, models.InvalidStateError("no current question")
	}

	players, err := s.loadPlayers(ctx, game)
	if err != nil {
		return nil, err
	}

	result := &QuestionResult{
		QuestionID:    question.ID,
		CorrectAnswer: question.CorrectAnswer,
	}

	for _, player := range players {
		pr := PlayerResult{PlayerID: player.ID}
		if answer, answered := player.Answers[question.ID]; answered {
			idx := answer
			pr.AnswerIndex = &idx
			pr.IsCorrect = answer == question.CorrectAnswer
		}
		if pr.IsCorrect {
			pr.Points = PointsPerCorrectAnswer
		}
		result.PlayerResults = append(result.PlayerResults, pr)

		player.Score += pr.Points
		if err := s.store.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
	}

	if game.GameMode == models.ModeTeams {
		teamResults, err := s.scoreTeams(ctx, game, question, players)
		if err != nil {
			return nil, err
		}
		result.TeamResults = teamResults
	}

	s.moveCursor(game)

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Str("phase", string(game.Phase)).
		Int("round", game.CurrentRound).
		Int("question", game.CurrentQuestion).
		Msg("game advanced")

	return &AdvanceResult{
		GameRoom:       game,
		Players:        players,
		QuestionResult: result,
	}, nil
}

// scoreTeams produces one result per team. Only one member can have
// answered a given question, so the team's points are that member's points.
func (s *GameService) scoreTeams(ctx context.Context, game *models.GameRoom, question *models.Question, players []*models.PlayerSession) ([]TeamResult, error) {
	byID := make(map[string]*models.PlayerSession, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	var results []TeamResult
	for _, teamID := range game.Teams {
		team, err := s.store.GetTeam(ctx, teamID)
		if err != nil {
			if models.IsKind(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}

		tr := TeamResult{TeamID: team.ID}
		for _, memberID := range team.PlayerIDs {
			member, ok := byID[memberID]
			if !ok {
				continue
			}
			if answer, answered := member.Answers[question.ID]; answered {
				tr.AnsweredBy = member.ID
				tr.IsCorrect = answer == question.CorrectAnswer
				if tr.IsCorrect {
					tr.Points = PointsPerCorrectAnswer
				}
				break
			}
		}

		team.Score += tr.Points
		if err := s.store.SaveTeam(ctx, team); err != nil {
			return nil, err
		}
		results = append(results, tr)
	}
	return results, nil
}

// moveCursor applies the deterministic advance rule. The phase never moves
// backward and the cursors never decrease; finished is terminal.
func (s *GameService) moveCursor(game *models.GameRoom) {
	now := time.Now().UTC()
	round := game.Rounds[game.CurrentRound]

	switch {
	case game.CurrentQuestion+1 < len(round.Questions):
		game.CurrentQuestion++
		game.Phase = models.PhasePlaying
		game.CurrentQuestionStartedAt = &now
	case game.CurrentRound+1 < len(game.Rounds):
		game.CurrentRound++
		game.CurrentQuestion = 0
		game.Phase = models.PhasePlaying
		game.CurrentQuestionStartedAt = &now
	default:
		game.Phase = models.PhaseFinished
	}
	game.UpdatedAt = now
}

// loadPlayers resolves the room's player ids, skipping entries that have
// expired from the store.
func (s *GameService) loadPlayers(ctx context.Context, game *models.GameRoom) ([]*models.PlayerSession, error) {
	players := make([]*models.PlayerSession, 0, len(game.Players))
	for _, id := range game.Players {
		player, err := s.store.GetPlayer(ctx, id)
		if err != nil {
			if models.IsKind(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *GameService) loadTeams(ctx context.Context, game *models.GameRoom) ([]*models.Team, error) {
	if game.GameMode != models.ModeTeams {
		return []*models.Team{}, nil
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
