package models

import "time"

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GameID    string    `json:"gameId"`
	PlayerIDs []string  `json:"playerIds"`
	CaptainID string    `json:"captainId"`
	Score     int       `json:"score"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
