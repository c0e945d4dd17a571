package models

type QuestionType string

const (
	QuestionGeneral QuestionType = "general"
	QuestionLogo    QuestionType = "logo"
	QuestionSound   QuestionType = "sound"
)

type Question struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Type          QuestionType `json:"type"`
	Difficulty    string       `json:"difficulty,omitempty"`
	Category      string       `json:"category,omitempty"`
	MediaURL      string       `json:"mediaUrl,omitempty"`
}

type Round struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      QuestionType `json:"type"`
	Questions []Question   `json:"questions"`
}
