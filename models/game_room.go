package models

import "time"

type GamePhase string

const (
	PhaseSetup    GamePhase = "setup"
	PhasePlaying  GamePhase = "playing"
	PhaseWaiting  GamePhase = "waiting"
	PhaseResults  GamePhase = "results"
	PhaseFinished GamePhase = "finished"
)

type GameMode string

const (
	ModeIndividual GameMode = "individual"
	ModeTeams      GameMode = "teams"
)

type QuizSettings struct {
	Amount            int    `json:"amount"`
	Category          int    `json:"category,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
	IncludeLogos      bool   `json:"includeLogos"`
	IncludeSounds     bool   `json:"includeSounds"`
	QuestionTimeLimit int    `json:"questionTimeLimit"`
	MaxTeams          int    `json:"maxTeams,omitempty"`
	MaxPlayersPerTeam int    `json:"maxPlayersPerTeam,omitempty"`
}

type GameRoom struct {
	ID                       string       `json:"id"`
	HostID                   string       `json:"hostId"`
	Name                     string       `json:"name"`
	Settings                 QuizSettings `json:"settings"`
	Rounds                   []Round      `json:"rounds"`
	CurrentRound             int          `json:"currentRound"`
	CurrentQuestion          int          `json:"currentQuestion"`
	Phase                    GamePhase    `json:"phase"`
	Players                  []string     `json:"players"`
	Teams                    []string     `json:"teams"`
	GameMode                 GameMode     `json:"gameMode"`
	CreatedAt                time.Time    `json:"createdAt"`
	UpdatedAt                time.Time    `json:"updatedAt"`
	CurrentQuestionStartedAt *time.Time   `json:"currentQuestionStartedAt,omitempty"`
}

// ActiveQuestion returns the question the cursors point at, or false when
// the cursors are out of range (e.g. the game is finished).
func (g *GameRoom) ActiveQuestion() (*Question, bool) {
	if g.CurrentRound < 0 || g.CurrentRound >= len(g.Rounds) {
		return nil, false
	}
	round := &g.Rounds[g.CurrentRound]
	if g.CurrentQuestion < 0 || g.CurrentQuestion >= len(round.Questions) {
		return nil, false
	}
	return &round.Questions[g.CurrentQuestion], true
}
