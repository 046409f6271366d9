package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gorm.io/datatypes"
)

type AnswerType string

const (
	AnswerMultipleChoice AnswerType = "multiple choice"
	AnswerNumeric        AnswerType = "numeric"
)

type MultipleChoice struct {
	Options      []string
	CorrectIndex int
}

type Numeric struct {
	CorrectValue float64
}

// Question holds exactly one of MultipleChoice or Numeric.
type Question struct {
	Text           string
	MultipleChoice *MultipleChoice
	Numeric        *Numeric
}

func NewMultipleChoiceQuestion(text string, options []string, correctIndex int) Question {
	return Question{Text: text, MultipleChoice: &MultipleChoice{Options: options, CorrectIndex: correctIndex}}
}

func NewNumericQuestion(text string, correct float64) Question {
	return Question{Text: text, Numeric: &Numeric{CorrectValue: correct}}
}

func (q Question) AnswerType() AnswerType {
	if q.MultipleChoice != nil {
		return AnswerMultipleChoice
	}
	return AnswerNumeric
}

// CorrectValue is the expected answer as it appears on the wire.
func (q Question) CorrectValue() float64 {
	if q.MultipleChoice != nil {
		return float64(q.MultipleChoice.CorrectIndex)
	}
	if q.Numeric != nil {
		return q.Numeric.CorrectValue
	}
	return 0
}

func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is empty")
	}
	switch {
	case q.MultipleChoice != nil && q.Numeric != nil:
		return errors.New("question has both answer kinds")
	case q.MultipleChoice != nil:
		mc := q.MultipleChoice
		if len(mc.Options) < 2 {
			return errors.New("multiple choice question needs at least two options")
		}
		if mc.CorrectIndex < 0 || mc.CorrectIndex >= len(mc.Options) {
			return fmt.Errorf("correct index %d out of range", mc.CorrectIndex)
		}
	case q.Numeric != nil:
		if math.IsNaN(q.Numeric.CorrectValue) || math.IsInf(q.Numeric.CorrectValue, 0) {
			return errors.New("numeric answer is not finite")
		}
	default:
		return errors.New("question has no answer")
	}
	return nil
}

type questionWire struct {
	Question   string     `json:"question"`
	AnswerType AnswerType `json:"answerType"`
	Options    []string   `json:"options,omitempty"`
	Answer     float64    `json:"answer"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	w := questionWire{Question: q.Text, AnswerType: q.AnswerType(), Answer: q.CorrectValue()}
	if q.MultipleChoice != nil {
		w.Options = q.MultipleChoice.Options
	}
	return json.Marshal(w)
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*q = Question{Text: w.Question}
	switch w.AnswerType {
	case AnswerMultipleChoice, "multiple_choice", "mcq":
		if w.Answer != math.Trunc(w.Answer) {
			return fmt.Errorf("multiple choice answer %v is not an option index", w.Answer)
		}
		q.MultipleChoice = &MultipleChoice{Options: w.Options, CorrectIndex: int(w.Answer)}
	case AnswerNumeric:
		q.Numeric = &Numeric{CorrectValue: w.Answer}
	default:
		return fmt.Errorf("unknown answer type %q", w.AnswerType)
	}
	return nil
}

// swagger:model Test
type Test struct {
	UUIDBase
	LessonID  string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"lessonId"`
	Questions datatypes.JSON `json:"questions" swaggertype:"array,object"`
}

func (Test) TableName() string {
	return "tests"
}

func (t *Test) DecodeQuestions() ([]Question, error) {
	if len(t.Questions) == 0 {
		return nil, nil
	}
	var qs []Question
	if err := json.Unmarshal(t.Questions, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (t *Test) EncodeQuestions(qs []Question) error {
	data, err := json.Marshal(qs)
	if err != nil {
		return err
	}
	t.Questions = datatypes.JSON(data)
	return nil
}

type SubmittedAnswer struct {
	QuestionIndex int     `json:"questionIndex"`
	Answer        float64 `json:"answer"`
}

type TestSubmission struct {
	Answers []SubmittedAnswer `json:"answers" binding:"required"`
}

type Mismatch struct {
	QuestionIndex  int      `json:"questionIndex"`
	Question       string   `json:"question"`
	SubmittedValue *float64 `json:"submittedValue"`
	CorrectValue   float64  `json:"correctValue"`
}

type TestResult struct {
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectAnswers int        `json:"correctAnswers"`
	Mismatches     []Mismatch `json:"mismatches"`
	Passed         bool       `json:"passed"`
}
