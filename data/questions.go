// Package data holds the built-in question rounds: the logo and sound
// rounds appended at game creation, and a general knowledge round used as
// a fallback when the trivia API is unavailable.
package data

import "triviaroom/models"

// GeneralKnowledgeRound is the fallback question set when no questions
// could be fetched from the trivia API.
func GeneralKnowledgeRound() models.Round {
	return models.Round{
		ID:   "1",
		Name: "General Knowledge",
		Type: models.QuestionGeneral,
		Questions: []models.Question{
			{
				ID:            "1",
				Question:      "What is the capital of France?",
				Options:       []string{"London", "Berlin", "Paris", "Madrid"},
				CorrectAnswer: 2,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "2",
				Question:      "Which planet is known as the Red Planet?",
				Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
				CorrectAnswer: 1,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "3",
				Question:      "Who painted the Mona Lisa?",
				Options:       []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
				CorrectAnswer: 2,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "4",
				Question:      "What is the largest ocean on Earth?",
				Options:       []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"},
				CorrectAnswer: 3,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "5",
				Question:      "In which year did World War II end?",
				Options:       []string{"1944", "1945", "1946", "1947"},
				CorrectAnswer: 1,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "6",
				Question:      "What is the chemical symbol for gold?",
				Options:       []string{"Go", "Gd", "Au", "Ag"},
				CorrectAnswer: 2,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "7",
				Question:      "Which country is home to Machu Picchu?",
				Options:       []string{"Bolivia", "Ecuador", "Peru", "Colombia"},
				CorrectAnswer: 2,
				Type:          models.QuestionGeneral,
			},
			{
				ID:            "8",
				Question:      "What is the smallest prime number?",
				Options:       []string{"0", "1", "2", "3"},
				CorrectAnswer: 2,
				Type:          models.QuestionGeneral,
			},
		},
	}
}

// LogoRound is appended when settings.includeLogos is set.
func LogoRound() models.Round {
	return models.Round{
		ID:   "2",
		Name: "Logo Round",
		Type: models.QuestionLogo,
		Questions: []models.Question{
			{
				ID:            "9",
				Question:      "Which company uses this bitten apple logo?",
				Options:       []string{"Microsoft", "Apple", "Google", "Samsung"},
				CorrectAnswer: 1,
				Type:          models.QuestionLogo,
				MediaURL:      "🍎",
			},
			{
				ID:            "10",
				Question:      "Which social media platform uses this blue bird logo?",
				Options:       []string{"Facebook", "Instagram", "Twitter/X", "LinkedIn"},
				CorrectAnswer: 2,
				Type:          models.QuestionLogo,
				MediaURL:      "🐦",
			},
			{
				ID:            "11",
				Question:      "Which fast food chain uses golden arches?",
				Options:       []string{"Burger King", "McDonald's", "KFC", "Subway"},
				CorrectAnswer: 1,
				Type:          models.QuestionLogo,
				MediaURL:      "🍟",
			},
			{
				ID:            "12",
				Question:      "Which streaming service uses this red N logo?",
				Options:       []string{"Hulu", "Netflix", "Amazon Prime", "Disney+"},
				CorrectAnswer: 1,
				Type:          models.QuestionLogo,
				MediaURL:      "🎬",
			},
		},
	}
}

// SoundRound is appended when settings.includeSounds is set.
func SoundRound() models.Round {
	return models.Round{
		ID:   "3",
		Name: "Sound Round",
		Type: models.QuestionSound,
		Questions: []models.Question{
			{
				ID:            "13",
				Question:      "Which instrument makes this sound?",
				Options:       []string{"Piano", "Guitar", "Violin", "Drums"},
				CorrectAnswer: 0,
				Type:          models.QuestionSound,
				MediaURL:      "🎹",
			},
			{
				ID:            "14",
				Question:      "What animal makes this sound?",
				Options:       []string{"Dog", "Cat", "Cow", "Horse"},
				CorrectAnswer: 2,
				Type:          models.QuestionSound,
				MediaURL:      "🐄",
			},
			{
				ID:            "15",
				Question:      "Which vehicle makes this sound?",
				Options:       []string{"Car", "Train", "Airplane", "Motorcycle"},
				CorrectAnswer: 1,
				Type:          models.QuestionSound,
				MediaURL:      "🚂",
			},
		},
	}
}
