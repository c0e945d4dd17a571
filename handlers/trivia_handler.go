package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaroom/services"
)

type TriviaHandler struct {
	trivia *services.TriviaService
}

func NewTriviaHandler(trivia *services.TriviaService) *TriviaHandler {
	return &TriviaHandler{trivia: trivia}
}

// Categories proxies the provider's category list for the setup screen.
func (h *TriviaHandler) Categories(c *gin.Context) {
	categories, err := h.trivia.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "trivia provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"triviaCategories": categories})
}
