package usecase

import (
	"context"
	"errors"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
)

type attendanceUsecase struct {
	attendanceRepo domain.AttendanceRepository
	courseRepo     domain.CourseRepository
	enrollmentRepo domain.EnrollmentRepository
}

func NewAttendanceUsecase(
	ar domain.AttendanceRepository,
	cr domain.CourseRepository,
	er domain.EnrollmentRepository,
) domain.AttendanceUsecase {
	return &attendanceUsecase{
		attendanceRepo: ar,
		courseRepo:     cr,
		enrollmentRepo: er,
	}
}

// ========== SESSIONS ==========

func (uc *attendanceUsecase) CreateSession(ctx context.Context, session *domain.AttendanceSession) error {
	// Verify course exists
	_, err := uc.courseRepo.GetByID(ctx, session.CourseID)
	if err != nil {
		return errors.New("course not found")
	}

	return uc.attendanceRepo.CreateSession(ctx, session)
}

func (uc *attendanceUsecase) GetCourseSessions(ctx context.Context, courseID uint) ([]domain.AttendanceSession, error) {
	return uc.attendanceRepo.GetSessionsByCourseID(ctx, courseID)
}

// ========== MARKING ==========

func (uc *attendanceUsecase) MarkAttendance(ctx context.Context, sessionID, userID uint, status domain.AttendanceStatus, note string, markedByID uint) error {
	session, err := uc.attendanceRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return errors.New("session not found")
	}

	// Validate status
	validStatuses := map[domain.AttendanceStatus]bool{
		domain.AttendancePresent: true,
		domain.AttendanceAbsent:  true,
		domain.AttendanceLate:    true,
		domain.AttendanceExcused: true,
	}
	if !validStatuses[status] {
		return errors.New("invalid attendance status")
	}

	// Student must be enrolled in the session's course
	enrollment, _ := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, session.CourseID)
	if enrollment == nil {
		return errors.New("student not enrolled in this course")
	}

	existing, err := uc.attendanceRepo.GetRecord(ctx, sessionID, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Status = status
		existing.Note = note
		existing.MarkedByID = markedByID
		return uc.attendanceRepo.UpdateRecord(ctx, existing)
	}

	record := &domain.AttendanceRecord{
		SessionID:  sessionID,
		UserID:     userID,
		Status:     status,
		Note:       note,
		MarkedByID: markedByID,
	}
	return uc.attendanceRepo.CreateRecord(ctx, record)
}

func (uc *attendanceUsecase) GetSessionRecords(ctx context.Context, sessionID uint) ([]domain.AttendanceRecord, error) {
	return uc.attendanceRepo.GetRecordsBySessionID(ctx, sessionID)
}

// ========== SUMMARY ==========

// GetStudentSummary aggregates a student's marks across all sessions of a
// course. Present and late both count toward the attendance rate.
func (uc *attendanceUsecase) GetStudentSummary(ctx context.Context, userID, courseID uint) (*domain.AttendanceSummary, error) {
	total, err := uc.attendanceRepo.CountSessionsByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	records, err := uc.attendanceRepo.GetRecordsByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	summary := &domain.AttendanceSummary{TotalSessions: int(total)}
	for _, r := range records {
		switch r.Status {
		case domain.AttendancePresent:
			summary.Present++
		case domain.AttendanceAbsent:
			summary.Absent++
		case domain.AttendanceLate:
			summary.Late++
		case domain.AttendanceExcused:
			summary.Excused++
		}
	}

	if summary.TotalSessions > 0 {
		summary.AttendanceRate = float64(summary.Present+summary.Late) / float64(summary.TotalSessions) * 100
	}

	return summary, nil
}
