package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCourseFixture() (*mockCourseRepo, *mockModuleRepo, *mockEnrollmentRepo, *mockProgressRepo, domain.CourseUsecase) {
	cr := new(mockCourseRepo)
	mr := new(mockModuleRepo)
	er := new(mockEnrollmentRepo)
	pr := new(mockProgressRepo)
	return cr, mr, er, pr, NewCourseUsecase(cr, mr, er, pr)
}

func TestEnrollStudent_AlreadyEnrolled(t *testing.T) {
	_, _, er, _, uc := newCourseFixture()

	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(&domain.Enrollment{UserID: 1, CourseID: 10}, nil)

	err := uc.EnrollStudent(context.Background(), 1, 10)
	assert.EqualError(t, err, "already enrolled in this course")
}

func TestEnrollStudent_PropagatesLookupError(t *testing.T) {
	cr, _, er, _, uc := newCourseFixture()

	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, errors.New("connection reset"))

	err := uc.EnrollStudent(context.Background(), 1, 10)
	assert.EqualError(t, err, "connection reset")
	cr.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEnrollStudent_RequiresPublishedCourse(t *testing.T) {
	cr, _, er, _, uc := newCourseFixture()

	er.On("GetByUserAndCourse", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	cr.On("GetByID", mock.Anything, uint(10)).Return(&domain.Course{ID: 10, IsPublished: false}, nil)

	err := uc.EnrollStudent(context.Background(), 1, 10)
	assert.EqualError(t, err, "course is not published")
}

func TestDeleteCourse_BlockedByEnrollments(t *testing.T) {
	cr, mr, er, _, uc := newCourseFixture()

	er.On("GetByCourseID", mock.Anything, uint(10)).Return([]domain.Enrollment{{UserID: 1, CourseID: 10}}, nil)

	err := uc.DeleteCourse(context.Background(), 10)
	assert.EqualError(t, err, "cannot delete course with existing enrollments")
	mr.AssertNotCalled(t, "DeleteByCourseID", mock.Anything, mock.Anything)
	cr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCourse_PropagatesEnrollmentLookupError(t *testing.T) {
	cr, _, er, _, uc := newCourseFixture()

	er.On("GetByCourseID", mock.Anything, uint(10)).Return(nil, errors.New("connection reset"))

	err := uc.DeleteCourse(context.Background(), 10)
	assert.EqualError(t, err, "connection reset")
	cr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetCourseDetails_PropagatesCountError(t *testing.T) {
	cr, mr, er, _, uc := newCourseFixture()

	cr.On("GetByID", mock.Anything, uint(10)).Return(&domain.Course{ID: 10}, nil)
	mr.On("GetByCourseID", mock.Anything, uint(10)).Return([]domain.Module{}, nil)
	er.On("CountByCourseID", mock.Anything, uint(10)).Return(int64(0), errors.New("connection reset"))

	_, err := uc.GetCourseDetails(context.Background(), 10, nil)
	assert.EqualError(t, err, "connection reset")
}

func TestGetModule(t *testing.T) {
	_, mr, _, _, uc := newCourseFixture()

	mr.On("GetByID", mock.Anything, "m1").Return(&domain.Module{ID: "m1", CourseID: 10}, nil)

	module, err := uc.GetModule(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, uint(10), module.CourseID)
}

func TestGetModule_NotFound(t *testing.T) {
	_, mr, _, _, uc := newCourseFixture()

	mr.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.GetModule(context.Background(), "missing")
	assert.EqualError(t, err, "module not found")
}
