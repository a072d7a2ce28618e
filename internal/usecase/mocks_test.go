package usecase

import (
	"context"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdateVerified(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockEnrollmentRepo struct{ mock.Mock }

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *mockEnrollmentRepo) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *mockEnrollmentRepo) Delete(ctx context.Context, userID, courseID uint) error {
	return m.Called(ctx, userID, courseID).Error(0)
}

func (m *mockEnrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	enrollment, _ := args.Get(0).(*domain.Enrollment)
	return enrollment, args.Error(1)
}

func (m *mockEnrollmentRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	enrollments, _ := args.Get(0).([]domain.Enrollment)
	return enrollments, args.Error(1)
}

func (m *mockEnrollmentRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Enrollment, error) {
	args := m.Called(ctx, courseID)
	enrollments, _ := args.Get(0).([]domain.Enrollment)
	return enrollments, args.Error(1)
}

func (m *mockEnrollmentRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

type mockModuleRepo struct{ mock.Mock }

func (m *mockModuleRepo) Create(ctx context.Context, module *domain.Module) error {
	return m.Called(ctx, module).Error(0)
}

func (m *mockModuleRepo) GetByID(ctx context.Context, moduleID string) (*domain.Module, error) {
	args := m.Called(ctx, moduleID)
	module, _ := args.Get(0).(*domain.Module)
	return module, args.Error(1)
}

func (m *mockModuleRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Module, error) {
	args := m.Called(ctx, courseID)
	modules, _ := args.Get(0).([]domain.Module)
	return modules, args.Error(1)
}

func (m *mockModuleRepo) Update(ctx context.Context, module *domain.Module) error {
	return m.Called(ctx, module).Error(0)
}

func (m *mockModuleRepo) Delete(ctx context.Context, moduleID string) error {
	return m.Called(ctx, moduleID).Error(0)
}

func (m *mockModuleRepo) DeleteByCourseID(ctx context.Context, courseID uint) error {
	return m.Called(ctx, courseID).Error(0)
}

type mockProgressRepo struct{ mock.Mock }

func (m *mockProgressRepo) Create(ctx context.Context, progress *domain.CourseProgress) error {
	return m.Called(ctx, progress).Error(0)
}

func (m *mockProgressRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.CourseProgress, error) {
	args := m.Called(ctx, userID, courseID)
	progress, _ := args.Get(0).(*domain.CourseProgress)
	return progress, args.Error(1)
}

func (m *mockProgressRepo) Replace(ctx context.Context, progress *domain.CourseProgress) error {
	return m.Called(ctx, progress).Error(0)
}

func (m *mockProgressRepo) Delete(ctx context.Context, userID, courseID uint) error {
	return m.Called(ctx, userID, courseID).Error(0)
}

type mockCertRepo struct{ mock.Mock }

func (m *mockCertRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	return m.Called(ctx, cert).Error(0)
}

func (m *mockCertRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	certs, _ := args.Get(0).([]domain.Certificate)
	return certs, args.Error(1)
}

func (m *mockCertRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Certificate, error) {
	args := m.Called(ctx, userID, courseID)
	cert, _ := args.Get(0).(*domain.Certificate)
	return cert, args.Error(1)
}

func (m *mockCertRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockAssignmentRepo struct{ mock.Mock }

func (m *mockAssignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	args := m.Called(ctx, assignmentID)
	assignment, _ := args.Get(0).(*domain.Assignment)
	return assignment, args.Error(1)
}

func (m *mockAssignmentRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
	args := m.Called(ctx, courseID)
	assignments, _ := args.Get(0).([]domain.Assignment)
	return assignments, args.Error(1)
}

func (m *mockAssignmentRepo) Update(ctx context.Context, assignment *domain.Assignment) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *mockAssignmentRepo) Delete(ctx context.Context, assignmentID string) error {
	return m.Called(ctx, assignmentID).Error(0)
}

type mockSubmissionRepo struct{ mock.Mock }

func (m *mockSubmissionRepo) Create(ctx context.Context, submission *domain.Submission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *mockSubmissionRepo) GetByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID)
	submission, _ := args.Get(0).(*domain.Submission)
	return submission, args.Error(1)
}

func (m *mockSubmissionRepo) GetByAssignmentAndUser(ctx context.Context, assignmentID string, userID uint) (*domain.Submission, error) {
	args := m.Called(ctx, assignmentID, userID)
	submission, _ := args.Get(0).(*domain.Submission)
	return submission, args.Error(1)
}

func (m *mockSubmissionRepo) GetByAssignmentID(ctx context.Context, assignmentID string) ([]domain.Submission, error) {
	args := m.Called(ctx, assignmentID)
	submissions, _ := args.Get(0).([]domain.Submission)
	return submissions, args.Error(1)
}

func (m *mockSubmissionRepo) GetRecentGradedByUserID(ctx context.Context, userID uint, limit int) ([]domain.Submission, error) {
	args := m.Called(ctx, userID, limit)
	submissions, _ := args.Get(0).([]domain.Submission)
	return submissions, args.Error(1)
}

func (m *mockSubmissionRepo) Replace(ctx context.Context, submission *domain.Submission) error {
	return m.Called(ctx, submission).Error(0)
}

type mockAttendanceRepo struct{ mock.Mock }

func (m *mockAttendanceRepo) CreateSession(ctx context.Context, session *domain.AttendanceSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockAttendanceRepo) GetSessionByID(ctx context.Context, id uint) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.AttendanceSession)
	return session, args.Error(1)
}

func (m *mockAttendanceRepo) GetSessionsByCourseID(ctx context.Context, courseID uint) ([]domain.AttendanceSession, error) {
	args := m.Called(ctx, courseID)
	sessions, _ := args.Get(0).([]domain.AttendanceSession)
	return sessions, args.Error(1)
}

func (m *mockAttendanceRepo) CountSessionsByCourseID(ctx context.Context, courseID uint) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAttendanceRepo) CreateRecord(ctx context.Context, record *domain.AttendanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockAttendanceRepo) UpdateRecord(ctx context.Context, record *domain.AttendanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockAttendanceRepo) GetRecord(ctx context.Context, sessionID, userID uint) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, sessionID, userID)
	record, _ := args.Get(0).(*domain.AttendanceRecord)
	return record, args.Error(1)
}

func (m *mockAttendanceRepo) GetRecordsBySessionID(ctx context.Context, sessionID uint) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, sessionID)
	records, _ := args.Get(0).([]domain.AttendanceRecord)
	return records, args.Error(1)
}

func (m *mockAttendanceRepo) GetRecordsByUserAndCourse(ctx context.Context, userID, courseID uint) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, courseID)
	records, _ := args.Get(0).([]domain.AttendanceRecord)
	return records, args.Error(1)
}

type mockCourseRepo struct{ mock.Mock }

func (m *mockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseRepo) Update(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepo) GetPublished(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
