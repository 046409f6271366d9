package model

import (
	"encoding/json"
	"testing"
)

func TestQuestionDecodesAnswerKinds(t *testing.T) {
	raw := `[
		{"question":"2+2?","answerType":"multiple choice","options":["3","4","5"],"answer":1},
		{"question":"3*3?","answerType":"numeric","answer":9}
	]`

	var qs []Question
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].MultipleChoice == nil || qs[0].Numeric != nil {
		t.Fatalf("first question should be multiple choice: %+v", qs[0])
	}
	if qs[0].MultipleChoice.CorrectIndex != 1 || len(qs[0].MultipleChoice.Options) != 3 {
		t.Fatalf("unexpected multiple choice body: %+v", qs[0].MultipleChoice)
	}
	if qs[1].Numeric == nil || qs[1].Numeric.CorrectValue != 9 {
		t.Fatalf("second question should be numeric 9: %+v", qs[1])
	}
}

func TestQuestionRejectsUnknownAnswerType(t *testing.T) {
	var q Question
	if err := json.Unmarshal([]byte(`{"question":"x","answerType":"essay","answer":1}`), &q); err == nil {
		t.Fatalf("expected error for unknown answer type")
	}
	if err := json.Unmarshal([]byte(`{"question":"x","answerType":"multiple choice","options":["a","b"],"answer":0.5}`), &q); err == nil {
		t.Fatalf("expected error for fractional option index")
	}
}

func TestQuestionValidate(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		ok   bool
	}{
		{"valid mc", NewMultipleChoiceQuestion("q", []string{"a", "b"}, 1), true},
		{"index out of range", NewMultipleChoiceQuestion("q", []string{"a", "b"}, 2), false},
		{"one option", NewMultipleChoiceQuestion("q", []string{"a"}, 0), false},
		{"valid numeric", NewNumericQuestion("q", 3.5), true},
		{"empty text", NewNumericQuestion("", 1), false},
		{"no answer", Question{Text: "q"}, false},
	}
	for _, tc := range cases {
		err := tc.q.Validate()
		if (err == nil) != tc.ok {
			t.Fatalf("%s: got err=%v want ok=%v", tc.name, err, tc.ok)
		}
	}
}

func TestLessonStatusAdvanceNeverRegresses(t *testing.T) {
	if got := LessonCompleted.Advance(LessonStarted); got != LessonCompleted {
		t.Fatalf("completed regressed to %s", got)
	}
	if got := LessonNotStarted.Advance(LessonStarted); got != LessonStarted {
		t.Fatalf("not started should advance, got %s", got)
	}
	if got := LessonStarted.Advance(LessonCompleted); got != LessonCompleted {
		t.Fatalf("started should complete, got %s", got)
	}
}

func TestTestQuestionsRoundTripThroughColumn(t *testing.T) {
	tt := &Test{LessonID: "l1"}
	in := []Question{NewMultipleChoiceQuestion("a?", []string{"x", "y"}, 0), NewNumericQuestion("b?", 2)}
	if err := tt.EncodeQuestions(in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := tt.DecodeQuestions()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[1].Numeric == nil || out[0].MultipleChoice == nil {
		t.Fatalf("unexpected decoded questions: %+v", out)
	}
}
