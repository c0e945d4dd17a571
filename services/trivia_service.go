package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"triviaroom/models"
)

// TriviaService fetches questions from the Open Trivia DB HTTP API and
// normalizes them into the internal question shape: text decoded, options
// shuffled, correct index tracked post-shuffle.
type TriviaService struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger

	mu    sync.Mutex
	token string
}

func NewTriviaService(baseURL string, logger zerolog.Logger) *TriviaService {
	return &TriviaService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type triviaAPIQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type triviaAPIResponse struct {
	ResponseCode int                 `json:"response_code"`
	Results      []triviaAPIQuestion `json:"results"`
}

type tokenResponse struct {
	ResponseCode int    `json:"response_code"`
	Token        string `json:"token"`
}

type TriviaCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoriesResponse struct {
	TriviaCategories []TriviaCategory `json:"trivia_categories"`
}

// Questions fetches and converts a batch of multiple-choice questions.
// A session token avoids repeats across requests; when the token is
// exhausted (code 4) it is reset and the request retried once.
func (s *TriviaService) Questions(ctx context.Context, settings models.QuizSettings) ([]models.Question, error) {
	return s.questions(ctx, settings, true)
}

func (s *TriviaService) questions(ctx context.Context, settings models.QuizSettings, retryOnExhausted bool) ([]models.Question, error) {
	token := s.sessionToken(ctx)

	params := url.Values{}
	params.Set("amount", strconv.Itoa(settings.Amount))
	// url3986 encoding sidesteps HTML entities in question text
	params.Set("encode", "url3986")
	params.Set("type", "multiple")
	if settings.Category > 0 {
		params.Set("category", strconv.Itoa(settings.Category))
	}
	if settings.Difficulty != "" {
		params.Set("difficulty", settings.Difficulty)
	}
	if token != "" {
		params.Set("token", token)
	}

	var apiResp triviaAPIResponse
	if err := s.getJSON(ctx, s.baseURL+"/api.php?"+params.Encode(), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.ResponseCode != 0 {
		if apiResp.ResponseCode == 4 && retryOnExhausted {
			s.resetSessionToken(ctx)
			return s.questions(ctx, settings, false)
		}
		return nil, fmt.Errorf("trivia api: %s", triviaErrorMessage(apiResp.ResponseCode))
	}

	return convertQuestions(apiResp.Results)
}

// Categories lists the trivia categories offered by the provider.
func (s *TriviaService) Categories(ctx context.Context) ([]TriviaCategory, error) {
	var resp categoriesResponse
	if err := s.getJSON(ctx, s.baseURL+"/api_category.php", &resp); err != nil {
		return nil, err
	}
	return resp.TriviaCategories, nil
}

func (s *TriviaService) sessionToken(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token
	}

	var resp tokenResponse
	if err := s.getJSON(ctx, s.baseURL+"/api_token.php?command=request", &resp); err != nil || resp.ResponseCode != 0 {
		s.logger.Warn().Err(err).Msg("could not get trivia session token, proceeding without it")
		return ""
	}
	s.token = resp.Token
	return s.token
}

func (s *TriviaService) resetSessionToken(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		var resp tokenResponse
		if err := s.getJSON(ctx, s.baseURL+"/api_token.php?command=reset&token="+url.QueryEscape(s.token), &resp); err != nil {
			s.logger.Warn().Err(err).Msg("could not reset trivia session token")
		}
	}
	s.token = ""
}

func (s *TriviaService) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trivia api: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func convertQuestions(apiQuestions []triviaAPIQuestion) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(apiQuestions))
	for i, apiQ := range apiQuestions {
		text, err := url.QueryUnescape(apiQ.Question)
		if err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		correct, err := url.QueryUnescape(apiQ.CorrectAnswer)
		if err != nil {
			return nil, fmt.Errorf("decode answer: %w", err)
		}

		options := make([]string, 0, len(apiQ.IncorrectAnswers)+1)
		options = append(options, correct)
		for _, wrong := range apiQ.IncorrectAnswers {
			decoded, err := url.QueryUnescape(wrong)
			if err != nil {
				return nil, fmt.Errorf("decode answer: %w", err)
			}
			options = append(options, decoded)
		}

		rand.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		correctIndex := 0
		for idx, opt := range options {
			if opt == correct {
				correctIndex = idx
				break
			}
		}

		category, _ := url.QueryUnescape(apiQ.Category)
		questions = append(questions, models.Question{
			ID:            fmt.Sprintf("api_%d_%d", time.Now().UnixMilli(), i),
			Question:      text,
			Options:       options,
			CorrectAnswer: correctIndex,
			Type:          models.QuestionGeneral,
			Difficulty:    apiQ.Difficulty,
			Category:      category,
		})
	}
	return questions, nil
}

func triviaErrorMessage(code int) string {
	switch code {
	case 1:
		return "not enough questions available for your criteria"
	case 2:
		return "invalid parameter in request"
	case 3:
		return "token not found"
	case 4:
		return "token has returned all possible questions"
	case 5:
		return "rate limit exceeded"
	default:
		return fmt.Sprintf("unknown error (code: %d)", code)
	}
}
