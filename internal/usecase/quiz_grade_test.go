package usecase

import (
	"testing"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func quizAssignment() *domain.Assignment {
	return &domain.Assignment{
		ID:          "a1",
		TotalPoints: 50,
		QuizSettings: domain.QuizSettings{
			AutoGrade: true,
		},
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionMultipleChoice, Options: []string{"a", "b", "c"}, CorrectOption: intPtr(1), Points: 2},
			{ID: "q2", Type: domain.QuestionMultipleChoice, Options: []string{"x", "y"}, CorrectOption: intPtr(0), Points: 3},
			{ID: "q3", Type: domain.QuestionWritten, ExpectedAnswer: "essay", Points: 10},
		},
	}
}

func TestAutoGradeQuiz_AllCorrect(t *testing.T) {
	result := AutoGradeQuiz(quizAssignment(), []domain.StudentAnswer{
		{QuestionID: "q1", Answer: intPtr(1)},
		{QuestionID: "q2", Answer: intPtr(0)},
	})

	assert.Equal(t, 5.0, result.TotalQuestionPoints)
	assert.Equal(t, 5.0, result.EarnedQuestionPoints)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, 50.0, result.EarnedPoints, "earned points rescale to the assignment total")
	assert.Len(t, result.GradedAnswers, 2)
}

func TestAutoGradeQuiz_PartialCredit(t *testing.T) {
	result := AutoGradeQuiz(quizAssignment(), []domain.StudentAnswer{
		{QuestionID: "q1", Answer: intPtr(1)}, // 2 points
		{QuestionID: "q2", Answer: intPtr(1)}, // wrong
	})

	assert.Equal(t, 5.0, result.TotalQuestionPoints)
	assert.Equal(t, 2.0, result.EarnedQuestionPoints)
	assert.Equal(t, 40.0, result.Percentage)
	assert.Equal(t, 20.0, result.EarnedPoints)

	assert.True(t, result.GradedAnswers[0].IsCorrect)
	assert.False(t, result.GradedAnswers[1].IsCorrect)
	assert.Equal(t, 0.0, result.GradedAnswers[1].EarnedPoints)
}

func TestAutoGradeQuiz_WrittenQuestionsExcluded(t *testing.T) {
	result := AutoGradeQuiz(quizAssignment(), []domain.StudentAnswer{
		{QuestionID: "q1", Answer: intPtr(1)},
		{QuestionID: "q3", TextAnswer: "long essay answer"},
	})

	// The written question's 10 points appear nowhere.
	assert.Equal(t, 2.0, result.TotalQuestionPoints)
	assert.Equal(t, 2.0, result.EarnedQuestionPoints)
	assert.Len(t, result.GradedAnswers, 1)
	assert.Equal(t, "q1", result.GradedAnswers[0].QuestionID)
}

func TestAutoGradeQuiz_BlankAnswerIncorrect(t *testing.T) {
	result := AutoGradeQuiz(quizAssignment(), []domain.StudentAnswer{
		{QuestionID: "q1", Answer: nil},
	})

	assert.Equal(t, 2.0, result.TotalQuestionPoints)
	assert.Equal(t, 0.0, result.EarnedQuestionPoints)
	assert.False(t, result.GradedAnswers[0].IsCorrect)
	assert.Nil(t, result.GradedAnswers[0].StudentAnswer)
}

func TestAutoGradeQuiz_UnknownQuestionSkipped(t *testing.T) {
	result := AutoGradeQuiz(quizAssignment(), []domain.StudentAnswer{
		{QuestionID: "nope", Answer: intPtr(0)},
		{QuestionID: "q2", Answer: intPtr(0)},
	})

	assert.Equal(t, 3.0, result.TotalQuestionPoints)
	assert.Equal(t, 3.0, result.EarnedQuestionPoints)
	assert.Len(t, result.GradedAnswers, 1)
}

func TestAutoGradeQuiz_PointsDefaultToOne(t *testing.T) {
	assignment := &domain.Assignment{
		TotalPoints: 10,
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionMultipleChoice, CorrectOption: intPtr(0)},
			{ID: "q2", Type: domain.QuestionMultipleChoice, CorrectOption: intPtr(0)},
		},
	}

	result := AutoGradeQuiz(assignment, []domain.StudentAnswer{
		{QuestionID: "q1", Answer: intPtr(0)},
		{QuestionID: "q2", Answer: intPtr(1)},
	})

	assert.Equal(t, 2.0, result.TotalQuestionPoints)
	assert.Equal(t, 1.0, result.EarnedQuestionPoints)
	assert.Equal(t, 50.0, result.Percentage)
	assert.Equal(t, 5.0, result.EarnedPoints)
}

func TestAutoGradeQuiz_NoGradableQuestions(t *testing.T) {
	assignment := &domain.Assignment{
		TotalPoints: 100,
		Questions: []domain.Question{
			{ID: "w1", Type: domain.QuestionWritten, Points: 5},
		},
	}

	result := AutoGradeQuiz(assignment, []domain.StudentAnswer{
		{QuestionID: "w1", TextAnswer: "text"},
	})

	assert.Equal(t, 0.0, result.TotalQuestionPoints)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Equal(t, 0.0, result.EarnedPoints)
	assert.Empty(t, result.GradedAnswers)
}

func TestLetterGradeFor(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{97, "A+"},
		{96.9, "A"},
		{93, "A"},
		{92.999, "A-"},
		{90, "A-"},
		{89.9, "B+"},
		{87, "B+"},
		{83, "B"},
		{80, "B-"},
		{77, "C+"},
		{73, "C"},
		{70, "C-"},
		{67, "D+"},
		{60, "D"},
		{59.9, "F"},
		{0, "F"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, LetterGradeFor(c.percentage), "percentage %v", c.percentage)
	}
}
