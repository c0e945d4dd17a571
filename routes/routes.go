package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaroom/handlers"
)

func SetupRoutes(
	router *gin.Engine,
	gameHandler *handlers.GameHandler,
	teamHandler *handlers.TeamHandler,
	triviaHandler *handlers.TriviaHandler,
) {
	api := router.Group("/api")
	{
		game := api.Group("/game")
		{
			game.POST("/create", gameHandler.CreateGame)
			game.POST("/join", gameHandler.JoinGame)
			game.GET("/:gameId", gameHandler.GetGame)
			game.POST("/:gameId/start", gameHandler.StartGame)
			game.POST("/:gameId/answer", gameHandler.SubmitAnswer)
			game.POST("/:gameId/next", gameHandler.NextQuestion)

			game.POST("/:gameId/team", teamHandler.CreateTeam)
			game.GET("/:gameId/team", teamHandler.ListTeams)
			game.POST("/:gameId/team/:teamId/join", teamHandler.JoinTeam)
		}

		api.GET("/categories", triviaHandler.Categories)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
