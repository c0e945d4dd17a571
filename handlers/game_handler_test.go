package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triviaroom/handlers"
	"triviaroom/middleware"
	"triviaroom/models"
	"triviaroom/routes"
	"triviaroom/services"
	"triviaroom/store"
)

type stubSource struct{}

func (s *stubSource) Questions(ctx context.Context, settings models.QuizSettings) ([]models.Question, error) {
	return []models.Question{
		{
			ID:            "q1",
			Question:      "First question?",
			Options:       []string{"right", "wrong", "wrong", "wrong"},
			CorrectAnswer: 0,
			Type:          models.QuestionGeneral,
		},
		{
			ID:            "q2",
			Question:      "Second question?",
			Options:       []string{"right", "wrong", "wrong", "wrong"},
			CorrectAnswer: 0,
			Type:          models.QuestionGeneral,
		},
	}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	locks := services.NewRoomLocks()
	logger := zerolog.Nop()
	gameService := services.NewGameService(st, &stubSource{}, locks, logger)
	teamService := services.NewTeamService(st, locks, logger)
	triviaService := services.NewTriviaService("http://127.0.0.1:0", logger)

	router := gin.New()
	router.Use(middleware.CORS())
	routes.SetupRoutes(
		router,
		handlers.NewGameHandler(gameService),
		handlers.NewTeamHandler(teamService),
		handlers.NewTriviaHandler(triviaService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createGame(t *testing.T, router *gin.Engine, mode string) (gameID, hostID string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/game/create", gin.H{
		"playerName": "Alice",
		"settings":   gin.H{"amount": 2},
		"gameMode":   mode,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		GameID   string `json:"gameId"`
		PlayerID string `json:"playerId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.GameID, resp.PlayerID
}

func joinGame(t *testing.T, router *gin.Engine, gameID, name string) (playerID string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/game/join", gin.H{
		"gameId":     gameID,
		"playerName": name,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		PlayerID string `json:"playerId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.PlayerID
}

func TestCreateGameRejectsEmptyName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/game/create", gin.H{"playerName": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownGameReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/game/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinDuplicateNameReturns400(t *testing.T) {
	router := newTestRouter(t)
	gameID, _ := createGame(t, router, "individual")

	rec := doJSON(t, router, http.MethodPost, "/api/game/join", gin.H{
		"gameId":     gameID,
		"playerName": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartByNonHostReturns403(t *testing.T) {
	router := newTestRouter(t)
	gameID, _ := createGame(t, router, "individual")
	playerID := joinGame(t, router, gameID, "Bob")

	rec := doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/start", gin.H{"playerId": playerID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJoinAfterStartReturns400(t *testing.T) {
	router := newTestRouter(t)
	gameID, hostID := createGame(t, router, "individual")

	rec := doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/start", gin.H{"playerId": hostID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/game/join", gin.H{
		"gameId":     gameID,
		"playerName": "Bob",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnswerAndAdvanceFlow(t *testing.T) {
	router := newTestRouter(t)
	gameID, hostID := createGame(t, router, "individual")
	playerID := joinGame(t, router, gameID, "Bob")

	rec := doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/start", gin.H{"playerId": hostID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/answer", gin.H{
		"playerId":    playerID,
		"questionId":  "q1",
		"answerIndex": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/next", gin.H{"playerId": hostID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		QuestionResult struct {
			QuestionID    string `json:"questionId"`
			CorrectAnswer int    `json:"correctAnswer"`
			PlayerResults []struct {
				PlayerID  string `json:"playerId"`
				IsCorrect bool   `json:"isCorrect"`
				Points    int    `json:"points"`
			} `json:"playerResults"`
		} `json:"questionResult"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "q1", resp.QuestionResult.QuestionID)
	assert.Equal(t, 0, resp.QuestionResult.CorrectAnswer)

	points := map[string]int{}
	for _, pr := range resp.QuestionResult.PlayerResults {
		points[pr.PlayerID] = pr.Points
	}
	assert.Equal(t, 0, points[hostID])
	assert.Equal(t, 10, points[playerID])
}

func TestAdvanceByNonHostReturns403(t *testing.T) {
	router := newTestRouter(t)
	gameID, hostID := createGame(t, router, "individual")
	playerID := joinGame(t, router, gameID, "Bob")

	rec := doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/start", gin.H{"playerId": hostID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/next", gin.H{"playerId": playerID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetGameHidesAnswersFromNonHost(t *testing.T) {
	router := newTestRouter(t)
	gameID, hostID := createGame(t, router, "individual")
	playerID := joinGame(t, router, gameID, "Bob")

	type getResponse struct {
		GameRoom struct {
			Rounds []struct {
				Questions []map[string]any `json:"questions"`
			} `json:"rounds"`
		} `json:"gameRoom"`
	}

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/game/%s?playerId=%s", gameID, playerID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var asPlayer getResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asPlayer))
	for _, round := range asPlayer.GameRoom.Rounds {
		for _, q := range round.Questions {
			_, present := q["correctAnswer"]
			assert.False(t, present)
		}
	}

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/game/%s?playerId=%s", gameID, hostID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var asHost getResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asHost))
	_, present := asHost.GameRoom.Rounds[0].Questions[0]["correctAnswer"]
	assert.True(t, present)
}

func TestTeamEndpoints(t *testing.T) {
	router := newTestRouter(t)
	gameID, _ := createGame(t, router, "teams")
	playerID := joinGame(t, router, gameID, "Bob")

	rec := doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/team", gin.H{"teamName": "Reds"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created struct {
		Team struct {
			ID    string `json:"id"`
			Color string `json:"color"`
		} `json:"team"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "#FF6B6B", created.Team.Color)

	rec = doJSON(t, router, http.MethodPost, "/api/game/"+gameID+"/team/"+created.Team.ID+"/join", gin.H{"playerId": playerID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var joined struct {
		Team struct {
			CaptainID string   `json:"captainId"`
			PlayerIDs []string `json:"playerIds"`
		} `json:"team"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &joined))
	assert.Equal(t, playerID, joined.Team.CaptainID)
	assert.Equal(t, []string{playerID}, joined.Team.PlayerIDs)

	rec = doJSON(t, router, http.MethodGet, "/api/game/"+gameID+"/team", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Teams []struct {
			Name string `json:"name"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Teams, 1)
	assert.Equal(t, "Reds", list.Teams[0].Name)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
