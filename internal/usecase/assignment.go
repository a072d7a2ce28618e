package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/google/uuid"
)

type assignmentUsecase struct {
	assignmentRepo domain.AssignmentRepository
	courseRepo     domain.CourseRepository
}

func NewAssignmentUsecase(
	ar domain.AssignmentRepository,
	cr domain.CourseRepository,
) domain.AssignmentUsecase {
	return &assignmentUsecase{
		assignmentRepo: ar,
		courseRepo:     cr,
	}
}

func (uc *assignmentUsecase) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	// Verify course exists
	_, err := uc.courseRepo.GetByID(ctx, assignment.CourseID)
	if err != nil {
		return errors.New("course not found")
	}

	if err := validateQuestions(assignment.Questions); err != nil {
		return err
	}
	for i := range assignment.Questions {
		if assignment.Questions[i].ID == "" {
			assignment.Questions[i].ID = uuid.NewString()
		}
	}

	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	return uc.assignmentRepo.Create(ctx, assignment)
}

func (uc *assignmentUsecase) UpdateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	existing, err := uc.assignmentRepo.GetByID(ctx, assignment.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("assignment not found")
	}

	existing.Title = assignment.Title
	existing.Description = assignment.Description
	if assignment.TotalPoints > 0 {
		existing.TotalPoints = assignment.TotalPoints
	}
	existing.DueDate = assignment.DueDate
	existing.QuizSettings = assignment.QuizSettings
	existing.UpdatedAt = time.Now()

	return uc.assignmentRepo.Update(ctx, existing)
}

func (uc *assignmentUsecase) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return uc.assignmentRepo.Delete(ctx, assignmentID)
}

func (uc *assignmentUsecase) GetAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors.New("assignment not found")
	}
	return assignment, nil
}

func (uc *assignmentUsecase) GetCourseAssignments(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
	return uc.assignmentRepo.GetByCourseID(ctx, courseID)
}

func (uc *assignmentUsecase) AddQuestion(ctx context.Context, assignmentID string, question *domain.Question) error {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return errors.New("assignment not found")
	}

	if err := validateQuestions([]domain.Question{*question}); err != nil {
		return err
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}

	assignment.Questions = append(assignment.Questions, *question)
	assignment.UpdatedAt = time.Now()
	return uc.assignmentRepo.Update(ctx, assignment)
}

func (uc *assignmentUsecase) RemoveQuestion(ctx context.Context, assignmentID, questionID string) error {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return errors.New("assignment not found")
	}

	kept := assignment.Questions[:0]
	found := false
	for _, q := range assignment.Questions {
		if q.ID == questionID {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return errors.New("question not found")
	}

	assignment.Questions = kept
	assignment.UpdatedAt = time.Now()
	return uc.assignmentRepo.Update(ctx, assignment)
}

// validateQuestions enforces the question bank invariants: MCQ questions
// need at least two options and a correct option index inside the list,
// points may not be negative.
func validateQuestions(questions []domain.Question) error {
	for _, q := range questions {
		if q.Points < 0 {
			return errors.New("question points cannot be negative")
		}
		switch q.Type {
		case domain.QuestionMultipleChoice:
			if len(q.Options) < 2 {
				return errors.New("multiple-choice question needs at least two options")
			}
			if q.CorrectOption == nil || *q.CorrectOption < 0 || *q.CorrectOption >= len(q.Options) {
				return errors.New("correct option index out of range")
			}
		case domain.QuestionWritten:
			// expected answer is free text, nothing to check
		default:
			return errors.New("unknown question type")
		}
	}
	return nil
}
