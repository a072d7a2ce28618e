package usecase

import (
	"context"
	"testing"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProgressFixture() (*mockModuleRepo, *mockProgressRepo, *mockEnrollmentRepo, *mockCertRepo, domain.ProgressUsecase) {
	mr := new(mockModuleRepo)
	pr := new(mockProgressRepo)
	er := new(mockEnrollmentRepo)
	cr := new(mockCertRepo)

	ur := new(mockUserRepo)
	ur.On("GetByID", mock.Anything, mock.AnythingOfType("uint")).Return(&domain.User{ID: 1, Name: "Student", Email: "student@example.com"}, nil).Maybe()
	cor := new(mockCourseRepo)
	cor.On("GetByID", mock.Anything, mock.AnythingOfType("uint")).Return(&domain.Course{ID: 10, Title: "Go Basics"}, nil).Maybe()

	return mr, pr, er, cr, NewProgressUsecase(mr, pr, er, cr, ur, cor)
}

func TestGetProgress_SeedsOnFirstAccess(t *testing.T) {
	mr, pr, er, _, uc := newProgressFixture()

	modules := courseModules()
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(&domain.Enrollment{UserID: 1, CourseID: 10}, nil)
	pr.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	mr.On("GetByCourseID", mock.Anything, uint(10)).Return(modules, nil)
	pr.On("Create", mock.Anything, mock.AnythingOfType("*domain.CourseProgress")).Return(nil)

	progress, err := uc.GetProgress(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Len(t, progress.Modules, 2)
	assert.Equal(t, 3, progress.TotalLecturesCount)
	assert.Equal(t, 0, progress.ProgressPercentage)
	pr.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.CourseProgress"))
}

func TestGetProgress_ReturnsExistingRecord(t *testing.T) {
	_, pr, er, _, uc := newProgressFixture()

	existing := &domain.CourseProgress{UserID: 1, CourseID: 10, ProgressPercentage: 40}
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(&domain.Enrollment{UserID: 1, CourseID: 10}, nil)
	pr.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(existing, nil)

	progress, err := uc.GetProgress(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Same(t, existing, progress)
	pr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetProgress_RequiresEnrollment(t *testing.T) {
	_, _, er, _, uc := newProgressFixture()

	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)

	_, err := uc.GetProgress(context.Background(), 1, 10)
	assert.EqualError(t, err, "not enrolled in this course")
}

func TestToggleLecture_CompletesCourseAndIssuesCertificate(t *testing.T) {
	mr, pr, er, cr, uc := newProgressFixture()

	modules := []domain.Module{
		{ID: "m1", Lectures: []domain.Lecture{{ID: "l1"}}},
	}
	enrollment := &domain.Enrollment{UserID: 1, CourseID: 10}

	mr.On("GetByCourseID", mock.Anything, uint(10)).Return(modules, nil)
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(enrollment, nil)
	pr.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	pr.On("Create", mock.Anything, mock.AnythingOfType("*domain.CourseProgress")).Return(nil)
	pr.On("Replace", mock.Anything, mock.AnythingOfType("*domain.CourseProgress")).Return(nil)
	cr.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	cr.On("Create", mock.Anything, mock.AnythingOfType("*domain.Certificate")).Return(nil)
	er.On("Update", mock.Anything, enrollment).Return(nil)

	completed, progress, err := uc.ToggleLecture(context.Background(), 1, 10, "m1", "l1")

	assert.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 100, progress.ProgressPercentage)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletedAt)
	assert.True(t, progress.Modules["m1"].Completed)

	assert.Equal(t, 100, enrollment.Progress)
	assert.True(t, enrollment.IsFinished)
	cr.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Certificate"))
}

func TestToggleLecture_TogglesOff(t *testing.T) {
	mr, pr, er, _, uc := newProgressFixture()

	modules := []domain.Module{
		{ID: "m1", Lectures: []domain.Lecture{{ID: "l1"}, {ID: "l2"}}},
	}
	existing := NewCourseProgress(1, 10, modules)
	mp := existing.Modules["m1"]
	mp.Lectures["l1"] = domain.LectureProgress{Completed: true}
	existing.Modules["m1"] = mp
	enrollment := &domain.Enrollment{UserID: 1, CourseID: 10, Progress: 50}

	mr.On("GetByCourseID", mock.Anything, uint(10)).Return(modules, nil)
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(enrollment, nil)
	pr.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(existing, nil)
	pr.On("Replace", mock.Anything, existing).Return(nil)
	er.On("Update", mock.Anything, enrollment).Return(nil)

	completed, progress, err := uc.ToggleLecture(context.Background(), 1, 10, "m1", "l1")

	assert.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 0, progress.ProgressPercentage)
	assert.Nil(t, progress.Modules["m1"].Lectures["l1"].CompletedAt)
	assert.Equal(t, 0, enrollment.Progress)
}

func TestToggleLecture_UnknownModule(t *testing.T) {
	mr, _, _, _, uc := newProgressFixture()

	mr.On("GetByCourseID", mock.Anything, uint(10)).Return(courseModules(), nil)

	_, _, err := uc.ToggleLecture(context.Background(), 1, 10, "missing", "l1")
	assert.EqualError(t, err, "module not found in course")
}

func TestToggleLecture_UnknownLecture(t *testing.T) {
	mr, _, _, _, uc := newProgressFixture()

	mr.On("GetByCourseID", mock.Anything, uint(10)).Return(courseModules(), nil)

	_, _, err := uc.ToggleLecture(context.Background(), 1, 10, "m1", "missing")
	assert.EqualError(t, err, "lecture not found in module")
}

func TestResetProgress(t *testing.T) {
	_, pr, er, _, uc := newProgressFixture()

	enrollment := &domain.Enrollment{UserID: 1, CourseID: 10, Progress: 80, IsFinished: true}
	pr.On("Delete", mock.Anything, uint(1), uint(10)).Return(nil)
	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(enrollment, nil)
	er.On("Update", mock.Anything, enrollment).Return(nil)

	err := uc.ResetProgress(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.IsFinished)
}
