package usecase

import (
	"context"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
)

type dashboardUsecase struct {
	userRepo       domain.UserRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.ProgressRepository
	submissionRepo domain.SubmissionRepository
	assignmentRepo domain.AssignmentRepository
	certRepo       domain.CertificateRepository
}

func NewDashboardUsecase(
	ur domain.UserRepository,
	er domain.EnrollmentRepository,
	pr domain.ProgressRepository,
	sr domain.SubmissionRepository,
	ar domain.AssignmentRepository,
	certr domain.CertificateRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		userRepo:       ur,
		enrollmentRepo: er,
		progressRepo:   pr,
		submissionRepo: sr,
		assignmentRepo: ar,
		certRepo:       certr,
	}
}

func (uc *dashboardUsecase) GetStudentDashboard(ctx context.Context, userID uint) (*domain.StudentDashboardData, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	enrollments, err := uc.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completedCount := 0
	inProgressCount := 0
	progressSum := 0
	var ongoing []domain.EnrollmentWithProgress

	for _, e := range enrollments {
		progressSum += e.Progress

		if e.IsFinished {
			completedCount++
			continue
		}
		inProgressCount++

		item := domain.EnrollmentWithProgress{Enrollment: e}
		progress, _ := uc.progressRepo.GetByUserAndCourse(ctx, userID, e.CourseID)
		if progress != nil {
			item.TotalLectures = progress.TotalLecturesCount
			item.CompletedLectures = progress.CompletedLecturesCount
		}
		ongoing = append(ongoing, item)
	}

	averageProgress := 0.0
	if len(enrollments) > 0 {
		averageProgress = float64(progressSum) / float64(len(enrollments))
	}

	certCount, _ := uc.certRepo.CountByUserID(ctx, userID)

	recentGrades := uc.recentGrades(ctx, userID, 5)

	return &domain.StudentDashboardData{
		User:               user,
		TotalEnrollments:   len(enrollments),
		CompletedCourses:   completedCount,
		InProgressCourses:  inProgressCount,
		AverageProgress:    averageProgress,
		TotalCertificates:  int(certCount),
		RecentGrades:       recentGrades,
		OngoingEnrollments: ongoing,
	}, nil
}

func (uc *dashboardUsecase) recentGrades(ctx context.Context, userID uint, limit int) []domain.RecentGrade {
	submissions, err := uc.submissionRepo.GetRecentGradedByUserID(ctx, userID, limit)
	if err != nil {
		return nil
	}

	var grades []domain.RecentGrade
	for _, s := range submissions {
		if s.Grade == nil {
			continue
		}
		grade := domain.RecentGrade{
			AssignmentID: s.AssignmentID,
			Percentage:   s.Grade.Percentage,
			LetterGrade:  s.Grade.LetterGrade,
			GradedAt:     s.Grade.GradedAt,
		}
		if assignment, _ := uc.assignmentRepo.GetByID(ctx, s.AssignmentID); assignment != nil {
			grade.AssignmentTitle = assignment.Title
		}
		grades = append(grades, grade)
	}
	return grades
}
