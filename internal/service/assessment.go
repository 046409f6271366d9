package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/util"
	"math"
)

// Score 对提交的答案评分。未作答的题目计为错误，并以空的 submittedValue 出现在 mismatches 中。
func Score(questions []model.Question, answers []model.SubmittedAnswer) (*model.TestResult, error) {
	n := len(questions)
	if n == 0 {
		return nil, util.ErrEmptyTest
	}
	if len(answers) == 0 {
		return nil, util.ErrEmptySubmission
	}

	submitted := make(map[int]float64, len(answers))
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= n {
			return nil, util.NewValidationError("question index %d out of range [0,%d)", a.QuestionIndex, n).
				WithDetails(map[string]interface{}{"questionIndex": a.QuestionIndex})
		}
		if _, dup := submitted[a.QuestionIndex]; dup {
			return nil, util.NewValidationError("question %d answered more than once", a.QuestionIndex)
		}
		if math.IsNaN(a.Answer) || math.IsInf(a.Answer, 0) {
			return nil, util.NewValidationError("answer to question %d is not a number", a.QuestionIndex)
		}
		if mc := questions[a.QuestionIndex].MultipleChoice; mc != nil {
			// 先在浮点域比较，避免超大值转 int 溢出
			if a.Answer != math.Trunc(a.Answer) || a.Answer < 0 || a.Answer >= float64(len(mc.Options)) {
				return nil, util.NewValidationError("answer to question %d must be an option index", a.QuestionIndex).
					WithDetails(map[string]interface{}{"questionIndex": a.QuestionIndex, "options": len(mc.Options)})
			}
		}
		submitted[a.QuestionIndex] = a.Answer
	}

	result := &model.TestResult{TotalQuestions: n, Mismatches: []model.Mismatch{}}
	for i, q := range questions {
		value, ok := submitted[i]
		if ok && isCorrect(q, value) {
			result.CorrectAnswers++
			continue
		}
		m := model.Mismatch{QuestionIndex: i, Question: q.Text, CorrectValue: q.CorrectValue()}
		if ok {
			v := value
			m.SubmittedValue = &v
		}
		result.Mismatches = append(result.Mismatches, m)
	}

	result.Score = util.Percent(result.CorrectAnswers, n)
	result.Passed = result.Score >= util.PassingScore
	return result, nil
}

func isCorrect(q model.Question, value float64) bool {
	switch {
	case q.MultipleChoice != nil:
		return int(value) == q.MultipleChoice.CorrectIndex
	case q.Numeric != nil:
		return value == q.Numeric.CorrectValue
	}
	return false
}
