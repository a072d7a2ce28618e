package usecase

import (
	"context"
	"testing"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMarkAttendance_UpsertsRecord(t *testing.T) {
	ar := new(mockAttendanceRepo)
	er := new(mockEnrollmentRepo)
	uc := NewAttendanceUsecase(ar, nil, er)

	session := &domain.AttendanceSession{ID: 5, CourseID: 10}
	ar.On("GetSessionByID", mock.Anything, uint(5)).Return(session, nil)
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(&domain.Enrollment{UserID: 1, CourseID: 10}, nil)
	ar.On("GetRecord", mock.Anything, uint(5), uint(1)).Return(nil, nil)
	ar.On("CreateRecord", mock.Anything, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)

	err := uc.MarkAttendance(context.Background(), 5, 1, domain.AttendanceLate, "traffic", 99)
	assert.NoError(t, err)
	ar.AssertCalled(t, "CreateRecord", mock.Anything, mock.AnythingOfType("*domain.AttendanceRecord"))

	// Marking again updates the existing row instead of inserting
	existing := &domain.AttendanceRecord{SessionID: 5, UserID: 1, Status: domain.AttendanceLate}
	ar.ExpectedCalls = nil
	ar.On("GetSessionByID", mock.Anything, uint(5)).Return(session, nil)
	ar.On("GetRecord", mock.Anything, uint(5), uint(1)).Return(existing, nil)
	ar.On("UpdateRecord", mock.Anything, existing).Return(nil)

	err = uc.MarkAttendance(context.Background(), 5, 1, domain.AttendancePresent, "", 99)
	assert.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, existing.Status)
}

func TestMarkAttendance_InvalidStatus(t *testing.T) {
	ar := new(mockAttendanceRepo)
	uc := NewAttendanceUsecase(ar, nil, new(mockEnrollmentRepo))

	ar.On("GetSessionByID", mock.Anything, uint(5)).Return(&domain.AttendanceSession{ID: 5, CourseID: 10}, nil)

	err := uc.MarkAttendance(context.Background(), 5, 1, "vacationing", "", 99)
	assert.EqualError(t, err, "invalid attendance status")
}

func TestGetStudentSummary(t *testing.T) {
	ar := new(mockAttendanceRepo)
	uc := NewAttendanceUsecase(ar, nil, new(mockEnrollmentRepo))

	ar.On("CountSessionsByCourseID", mock.Anything, uint(10)).Return(int64(8), nil)
	ar.On("GetRecordsByUserAndCourse", mock.Anything, uint(1), uint(10)).Return([]domain.AttendanceRecord{
		{Status: domain.AttendancePresent},
		{Status: domain.AttendancePresent},
		{Status: domain.AttendancePresent},
		{Status: domain.AttendanceLate},
		{Status: domain.AttendanceAbsent},
		{Status: domain.AttendanceExcused},
	}, nil)

	summary, err := uc.GetStudentSummary(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, 8, summary.TotalSessions)
	assert.Equal(t, 3, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Excused)
	assert.Equal(t, 50.0, summary.AttendanceRate)
}

func TestGetStudentSummary_NoSessions(t *testing.T) {
	ar := new(mockAttendanceRepo)
	uc := NewAttendanceUsecase(ar, nil, new(mockEnrollmentRepo))

	ar.On("CountSessionsByCourseID", mock.Anything, uint(10)).Return(int64(0), nil)
	ar.On("GetRecordsByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)

	summary, err := uc.GetStudentSummary(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.AttendanceRate)
}
