package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaroom/services"
)

type TeamHandler struct {
	teams *services.TeamService
}

func NewTeamHandler(teams *services.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

type createTeamRequest struct {
	TeamName string `json:"teamName"`
	PlayerID string `json:"playerId"`
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.teams.Create(c.Request.Context(), c.Param("gameId"), req.TeamName, req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

type joinTeamRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

func (h *TeamHandler) JoinTeam(c *gin.Context) {
	var req joinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.teams.Join(c.Request.Context(), c.Param("gameId"), c.Param("teamId"), req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
