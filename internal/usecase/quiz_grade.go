package usecase

import (
	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
)

// AutoGradeQuiz scores the multiple-choice subset of a student's answers
// against the assignment's question bank. Written questions contribute to
// neither the numerator nor the denominator and never appear in
// GradedAnswers; answers whose question id has no match are skipped.
//
// EarnedPoints is rescaled to the assignment's declared TotalPoints, which
// may differ from the raw sum of question points. Both stages are returned.
func AutoGradeQuiz(assignment *domain.Assignment, answers []domain.StudentAnswer) domain.QuizGradeResult {
	questions := make(map[string]domain.Question, len(assignment.Questions))
	for _, q := range assignment.Questions {
		questions[q.ID] = q
	}

	var result domain.QuizGradeResult
	for _, ans := range answers {
		q, ok := questions[ans.QuestionID]
		if !ok || q.Type != domain.QuestionMultipleChoice || q.CorrectOption == nil {
			continue
		}

		points := q.Points
		if points == 0 {
			points = 1
		}
		result.TotalQuestionPoints += points

		// Strict equality on the stored option index, no coercion. A blank
		// answer is always incorrect.
		correct := ans.Answer != nil && *ans.Answer == *q.CorrectOption
		earned := 0.0
		if correct {
			earned = points
			result.EarnedQuestionPoints += points
		}

		result.GradedAnswers = append(result.GradedAnswers, domain.GradedAnswer{
			QuestionID:    q.ID,
			StudentAnswer: ans.Answer,
			CorrectAnswer: *q.CorrectOption,
			IsCorrect:     correct,
			Points:        points,
			EarnedPoints:  earned,
		})
	}

	if result.TotalQuestionPoints > 0 {
		result.Percentage = result.EarnedQuestionPoints / result.TotalQuestionPoints * 100
		result.EarnedPoints = result.EarnedQuestionPoints / result.TotalQuestionPoints * assignment.TotalPoints
	}

	return result
}

var letterGradeScale = []struct {
	min    float64
	letter string
}{
	{97, "A+"},
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{60, "D"},
}

// LetterGradeFor maps a percentage to its letter grade. Buckets are
// "percentage >= lower bound", evaluated top-down, first match wins.
// Anything below 60 is an F.
func LetterGradeFor(percentage float64) string {
	for _, g := range letterGradeScale {
		if percentage >= g.min {
			return g.letter
		}
	}
	return "F"
}
