package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"gorm.io/gorm"
)

// ========== USER REPOSITORY ==========

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("user not found")
	}
	return &user, err
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("user not found")
	}
	return &user, err
}

func (r *userRepo) GetByIDs(ctx context.Context, ids []uint) ([]domain.User, error) {
	var users []domain.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) UpdateVerified(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{"is_verified": true, "verification_code": ""}).Error
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, userID uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("last_login_at", now).Error
}

func (r *userRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// ========== COURSE REPOSITORY ==========

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepo{db}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) Update(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Course{}, id).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("course not found")
	}
	return &course, err
}

func (r *courseRepo) GetPublished(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).Where("is_published = ?", true).Preload("Instructor").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).Where("instructor_id = ?", instructorID).Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Course{}).Count(&count).Error
	return count, err
}

// ========== ENROLLMENT REPOSITORY ==========

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepo{db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, userID, courseID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&domain.Enrollment{}).Error
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &enrollment, err
}

func (r *enrollmentRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Preload("Course").Preload("Course.Instructor").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Preload("User").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

// ========== ATTENDANCE REPOSITORY ==========

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepository {
	return &attendanceRepo{db}
}

func (r *attendanceRepo) CreateSession(ctx context.Context, session *domain.AttendanceSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *attendanceRepo) GetSessionByID(ctx context.Context, id uint) (*domain.AttendanceSession, error) {
	var session domain.AttendanceSession
	err := r.db.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("session not found")
	}
	return &session, err
}

func (r *attendanceRepo) GetSessionsByCourseID(ctx context.Context, courseID uint) ([]domain.AttendanceSession, error) {
	var sessions []domain.AttendanceSession
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *attendanceRepo) CountSessionsByCourseID(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AttendanceSession{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *attendanceRepo) CreateRecord(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) UpdateRecord(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepo) GetRecord(ctx context.Context, sessionID, userID uint) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	err := r.db.WithContext(ctx).Where("session_id = ? AND user_id = ?", sessionID, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepo) GetRecordsBySessionID(ctx context.Context, sessionID uint) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Preload("User").Find(&records).Error
	return records, err
}

func (r *attendanceRepo) GetRecordsByUserAndCourse(ctx context.Context, userID, courseID uint) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN attendance_sessions ON attendance_sessions.id = attendance_records.session_id").
		Where("attendance_records.user_id = ? AND attendance_sessions.course_id = ?", userID, courseID).
		Find(&records).Error
	return records, err
}

// ========== CERTIFICATE REPOSITORY ==========

type certRepo struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) domain.CertificateRepository {
	return &certRepo{db}
}

func (r *certRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *certRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Course").
		Order("issue_date DESC").
		Find(&certs).Error
	return certs, err
}

func (r *certRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := r.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cert, err
}

func (r *certRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Certificate{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
