package services

import (
	"time"

	"triviaroom/models"
)

// View types returned by Get. Correct answer indexes are only present when
// the requester is the host; the stored entity is never mutated.

type RoomView struct {
	ID                       string              `json:"id"`
	HostID                   string              `json:"hostId"`
	Name                     string              `json:"name"`
	Settings                 models.QuizSettings `json:"settings"`
	Rounds                   []RoundView         `json:"rounds"`
	CurrentRound             int                 `json:"currentRound"`
	CurrentQuestion          int                 `json:"currentQuestion"`
	Phase                    models.GamePhase    `json:"phase"`
	Players                  []string            `json:"players"`
	Teams                    []string            `json:"teams"`
	GameMode                 models.GameMode     `json:"gameMode"`
	CreatedAt                time.Time           `json:"createdAt"`
	UpdatedAt                time.Time           `json:"updatedAt"`
	CurrentQuestionStartedAt *time.Time          `json:"currentQuestionStartedAt,omitempty"`
}

type RoundView struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Type      models.QuestionType `json:"type"`
	Questions []QuestionView      `json:"questions"`
}

type QuestionView struct {
	ID            string              `json:"id"`
	Question      string              `json:"question"`
	Options       []string            `json:"options"`
	CorrectAnswer *int                `json:"correctAnswer,omitempty"`
	Type          models.QuestionType `json:"type"`
	Difficulty    string              `json:"difficulty,omitempty"`
	Category      string              `json:"category,omitempty"`
	MediaURL      string              `json:"mediaUrl,omitempty"`
}

func NewRoomView(game *models.GameRoom, includeAnswers bool) *RoomView {
	rounds := make([]RoundView, len(game.Rounds))
	for i, round := range game.Rounds {
		questions := make([]QuestionView, len(round.Questions))
		for j, q := range round.Questions {
			qv := QuestionView{
				ID:         q.ID,
				Question:   q.Question,
				Options:    q.Options,
				Type:       q.Type,
				Difficulty: q.Difficulty,
				Category:   q.Category,
				MediaURL:   q.MediaURL,
			}
			if includeAnswers {
				answer := q.CorrectAnswer
				qv.CorrectAnswer = &answer
			}
			questions[j] = qv
		}
		rounds[i] = RoundView{
			ID:        round.ID,
			Name:      round.Name,
			Type:      round.Type,
			Questions: questions,
		}
	}

	return &RoomView{
		ID:                       game.ID,
		HostID:                   game.HostID,
		Name:                     game.Name,
		Settings:                 game.Settings,
		Rounds:                   rounds,
		CurrentRound:             game.CurrentRound,
		CurrentQuestion:          game.CurrentQuestion,
		Phase:                    game.Phase,
		Players:                  game.Players,
		Teams:                    game.Teams,
		GameMode:                 game.GameMode,
		CreatedAt:                game.CreatedAt,
		UpdatedAt:                game.UpdatedAt,
		CurrentQuestionStartedAt: game.CurrentQuestionStartedAt,
	}
}
