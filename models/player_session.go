package models

import "time"

type PlayerSession struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	GameID   string         `json:"gameId"`
	TeamID   string         `json:"teamId,omitempty"`
	Answers  map[string]int `json:"answers"`
	Score    int            `json:"score"`
	IsHost   bool           `json:"isHost"`
	JoinedAt time.Time      `json:"joinedAt"`
}
