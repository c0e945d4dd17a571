package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaroom/services"
)

type GameHandler struct {
	games *services.GameService
}

func NewGameHandler(games *services.GameService) *GameHandler {
	return &GameHandler{games: games}
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.games.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) JoinGame(c *gin.Context) {
	var req services.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.games.Join(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	gameID := c.Param("gameId")
	requesterID := c.Query("playerId")

	detail, err := h.games.Get(c.Request.Context(), gameID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type playerActionRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

func (h *GameHandler) StartGame(c *gin.Context) {
	var req playerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.Start(c.Request.Context(), c.Param("gameId"), req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gameRoom": game})
}

type submitAnswerRequest struct {
	PlayerID    string `json:"playerId" binding:"required"`
	QuestionID  string `json:"questionId" binding:"required"`
	AnswerIndex *int   `json:"answerIndex" binding:"required"`
}

func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.games.SubmitAnswer(c.Request.Context(), c.Param("gameId"), req.PlayerID, req.QuestionID, *req.AnswerIndex)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "playerSession": player})
}

func (h *GameHandler) NextQuestion(c *gin.Context) {
	var req playerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.games.Advance(c.Request.Context(), c.Param("gameId"), req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"gameRoom":       result.GameRoom,
		"players":        result.Players,
		"questionResult": result.QuestionResult,
	})
}
