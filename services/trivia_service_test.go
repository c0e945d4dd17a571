package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triviaroom/models"
)

func TestTriviaQuestionsDecodeAndShuffle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api_token.php":
			io.WriteString(w, `{"response_code":0,"token":"tok123"}`)
		case "/api.php":
			assert.Equal(t, "tok123", r.URL.Query().Get("token"))
			assert.Equal(t, "url3986", r.URL.Query().Get("encode"))
			assert.Equal(t, "multiple", r.URL.Query().Get("type"))
			assert.Equal(t, "2", r.URL.Query().Get("amount"))
			io.WriteString(w, `{"response_code":0,"results":[
				{"type":"multiple","difficulty":"easy","category":"Science%20%26%20Nature",
				 "question":"What%20is%202%2B2%3F","correct_answer":"4",
				 "incorrect_answers":["1","2","3"]},
				{"type":"multiple","difficulty":"hard","category":"History",
				 "question":"Who%3F","correct_answer":"Nobody",
				 "incorrect_answers":["Somebody","Anybody","Everybody"]}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewTriviaService(server.URL, zerolog.Nop())
	questions, err := svc.Questions(context.Background(), models.QuizSettings{Amount: 2})
	require.NoError(t, err)
	require.Len(t, questions, 2)

	first := questions[0]
	assert.Equal(t, "What is 2+2?", first.Question)
	assert.Equal(t, "Science & Nature", first.Category)
	assert.Equal(t, "easy", first.Difficulty)
	assert.Equal(t, models.QuestionGeneral, first.Type)
	require.Len(t, first.Options, 4)
	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, first.Options)
	require.GreaterOrEqual(t, first.CorrectAnswer, 0)
	require.Less(t, first.CorrectAnswer, len(first.Options))
	assert.Equal(t, "4", first.Options[first.CorrectAnswer])

	second := questions[1]
	assert.Equal(t, "Nobody", second.Options[second.CorrectAnswer])
}

func TestTriviaExhaustedTokenResetsAndRetries(t *testing.T) {
	apiCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api_token.php":
			io.WriteString(w, `{"response_code":0,"token":"fresh"}`)
		case "/api.php":
			apiCalls++
			if apiCalls == 1 {
				io.WriteString(w, `{"response_code":4,"results":[]}`)
				return
			}
			io.WriteString(w, `{"response_code":0,"results":[
				{"type":"multiple","difficulty":"easy","category":"General",
				 "question":"Q","correct_answer":"yes","incorrect_answers":["no"]}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewTriviaService(server.URL, zerolog.Nop())
	questions, err := svc.Questions(context.Background(), models.QuizSettings{Amount: 1})
	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 2, apiCalls)
}

func TestTriviaErrorCodeMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api_token.php":
			io.WriteString(w, `{"response_code":0,"token":"tok"}`)
		case "/api.php":
			io.WriteString(w, `{"response_code":1,"results":[]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewTriviaService(server.URL, zerolog.Nop())
	_, err := svc.Questions(context.Background(), models.QuizSettings{Amount: 50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough questions")
}

func TestTriviaProceedsWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api_token.php":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/api.php":
			assert.Empty(t, r.URL.Query().Get("token"))
			io.WriteString(w, `{"response_code":0,"results":[
				{"type":"multiple","difficulty":"easy","category":"General",
				 "question":"Q","correct_answer":"yes","incorrect_answers":["no"]}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	svc := NewTriviaService(server.URL, zerolog.Nop())
	questions, err := svc.Questions(context.Background(), models.QuizSettings{Amount: 1})
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestTriviaCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api_category.php", r.URL.Path)
		io.WriteString(w, `{"trivia_categories":[{"id":9,"name":"General Knowledge"},{"id":23,"name":"History"}]}`)
	}))
	defer server.Close()

	svc := NewTriviaService(server.URL, zerolog.Nop())
	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 9, categories[0].ID)
	assert.Equal(t, "History", categories[1].Name)
}
