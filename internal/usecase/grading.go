package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/pkg/utils"

	"github.com/sirupsen/logrus"
)

type submissionUsecase struct {
	assignmentRepo domain.AssignmentRepository
	submissionRepo domain.SubmissionRepository
	enrollmentRepo domain.EnrollmentRepository
	userRepo       domain.UserRepository
}

func NewSubmissionUsecase(
	ar domain.AssignmentRepository,
	sr domain.SubmissionRepository,
	er domain.EnrollmentRepository,
	ur domain.UserRepository,
) domain.SubmissionUsecase {
	return &submissionUsecase{
		assignmentRepo: ar,
		submissionRepo: sr,
		enrollmentRepo: er,
		userRepo:       ur,
	}
}

// ========== SUBMIT / RESUBMIT ==========

func (uc *submissionUsecase) Submit(ctx context.Context, submission *domain.Submission, answers []domain.StudentAnswer) (*domain.Submission, error) {
	assignment, err := uc.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors.New("assignment not found")
	}

	enrollment, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, submission.UserID, assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, errors.New("not enrolled in this course")
	}

	// At most one submission per (assignment, student) pair
	existing, err := uc.submissionRepo.GetByAssignmentAndUser(ctx, submission.AssignmentID, submission.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("assignment already submitted, use resubmit")
	}

	now := time.Now()
	submission.CourseID = assignment.CourseID
	submission.QuizAnswers = snapshotAnswers(assignment, answers)
	submission.Status = domain.StatusSubmitted
	submission.ResubmissionCount = 0
	submission.SubmittedAt = now
	submission.UpdatedAt = now

	if assignment.QuizSettings.AutoGrade && len(answers) > 0 {
		applyAutoGrade(assignment, submission, answers)
	}

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if submission.Grade != nil {
		uc.notifyGraded(ctx, submission, assignment)
	}

	return submission, nil
}

func (uc *submissionUsecase) Resubmit(ctx context.Context, assignmentID string, userID uint, text string, attachments []string, answers []domain.StudentAnswer) (*domain.Submission, error) {
	existing, err := uc.submissionRepo.GetByAssignmentAndUser(ctx, assignmentID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("no submission to resubmit")
	}

	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors.New("assignment not found")
	}

	now := time.Now()

	// Append-only snapshot of the prior content
	existing.History = append(existing.History, domain.SubmissionRevision{
		SubmissionText: existing.SubmissionText,
		Attachments:    existing.Attachments,
		UpdatedAt:      now,
		UpdatedByID:    userID,
	})

	existing.SubmissionText = text
	existing.Attachments = attachments
	existing.ResubmissionCount++
	existing.Status = domain.StatusResubmitted
	existing.UpdatedAt = now

	if len(answers) > 0 {
		existing.QuizAnswers = snapshotAnswers(assignment, answers)
		if assignment.QuizSettings.AutoGrade {
			applyAutoGrade(assignment, existing, answers)
		}
	}

	if err := uc.submissionRepo.Replace(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// ========== GRADING ==========

func (uc *submissionUsecase) GradeSubmission(ctx context.Context, submissionID string, points float64, feedback string, gradedByID uint) (*domain.Submission, error) {
	submission, err := uc.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, errors.New("submission not found")
	}

	assignment, err := uc.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors.New("assignment not found")
	}

	percentage := 0.0
	if assignment.TotalPoints > 0 {
		percentage = points / assignment.TotalPoints * 100
	}

	submission.Grade = &domain.Grade{
		Points:      points,
		Percentage:  percentage,
		LetterGrade: LetterGradeFor(percentage),
		Feedback:    feedback,
		GradedAt:    time.Now(),
		GradedByID:  gradedByID,
	}
	submission.Status = domain.StatusGraded
	submission.UpdatedAt = time.Now()

	if err := uc.submissionRepo.Replace(ctx, submission); err != nil {
		return nil, err
	}

	uc.notifyGraded(ctx, submission, assignment)

	return submission, nil
}

func (uc *submissionUsecase) ReturnSubmission(ctx context.Context, submissionID string, gradedByID uint) error {
	submission, err := uc.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return errors.New("submission not found")
	}

	submission.Status = domain.StatusReturned
	submission.UpdatedAt = time.Now()
	return uc.submissionRepo.Replace(ctx, submission)
}

// ========== QUERIES ==========

func (uc *submissionUsecase) GetSubmission(ctx context.Context, submissionID string) (*domain.Submission, error) {
	return uc.submissionRepo.GetByID(ctx, submissionID)
}

func (uc *submissionUsecase) GetStudentSubmission(ctx context.Context, assignmentID string, userID uint) (*domain.Submission, error) {
	return uc.submissionRepo.GetByAssignmentAndUser(ctx, assignmentID, userID)
}

func (uc *submissionUsecase) GetAssignmentSubmissions(ctx context.Context, assignmentID string) ([]domain.Submission, error) {
	return uc.submissionRepo.GetByAssignmentID(ctx, assignmentID)
}

// ========== HELPERS ==========

// snapshotAnswers copies the question metadata onto each answer so that
// later edits to the question bank do not change what the student saw.
// Answers whose question id has no match are dropped.
func snapshotAnswers(assignment *domain.Assignment, answers []domain.StudentAnswer) []domain.QuizAnswer {
	questions := make(map[string]domain.Question, len(assignment.Questions))
	for _, q := range assignment.Questions {
		questions[q.ID] = q
	}

	var result []domain.QuizAnswer
	for _, ans := range answers {
		q, ok := questions[ans.QuestionID]
		if !ok {
			continue
		}
		result = append(result, domain.QuizAnswer{
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			Type:           q.Type,
			Options:        q.Options,
			CorrectOption:  q.CorrectOption,
			ExpectedAnswer: q.ExpectedAnswer,
			Points:         q.Points,
			Explanation:    q.Explanation,
			Difficulty:     q.Difficulty,
			Tags:           q.Tags,
			Answer:         ans.Answer,
			TextAnswer:     ans.TextAnswer,
		})
	}
	return result
}

// applyAutoGrade scores the MCQ subset and writes the outcome onto the
// submission: per-answer correctness plus the derived grade. The letter
// grade is always computed from the percentage, never set directly.
func applyAutoGrade(assignment *domain.Assignment, submission *domain.Submission, answers []domain.StudentAnswer) {
	result := AutoGradeQuiz(assignment, answers)
	if result.TotalQuestionPoints == 0 {
		// No MCQ answers to score, leave the submission for manual grading.
		return
	}

	graded := make(map[string]domain.GradedAnswer, len(result.GradedAnswers))
	for _, g := range result.GradedAnswers {
		graded[g.QuestionID] = g
	}

	for i := range submission.QuizAnswers {
		if g, ok := graded[submission.QuizAnswers[i].QuestionID]; ok {
			isCorrect := g.IsCorrect
			earned := g.EarnedPoints
			submission.QuizAnswers[i].IsCorrect = &isCorrect
			submission.QuizAnswers[i].EarnedPoints = &earned
		}
	}

	submission.Grade = &domain.Grade{
		Points:      result.EarnedPoints,
		Percentage:  result.Percentage,
		LetterGrade: LetterGradeFor(result.Percentage),
		GradedAt:    time.Now(),
		GradedByID:  0, // auto-graded
	}
	submission.Status = domain.StatusGraded
}

func (uc *submissionUsecase) notifyGraded(ctx context.Context, submission *domain.Submission, assignment *domain.Assignment) {
	user, err := uc.userRepo.GetByID(ctx, submission.UserID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", submission.UserID).Warn("failed to load user for grade notification")
		return
	}
	go utils.SendGradeEmail(user.Email, user.Name, assignment.Title, submission.Grade.Percentage, submission.Grade.LetterGrade)
}
