package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/google/uuid"
)

type courseUsecase struct {
	courseRepo     domain.CourseRepository
	moduleRepo     domain.ModuleRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.ProgressRepository
}

func NewCourseUsecase(
	cr domain.CourseRepository,
	mr domain.ModuleRepository,
	er domain.EnrollmentRepository,
	pr domain.ProgressRepository,
) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo:     cr,
		moduleRepo:     mr,
		enrollmentRepo: er,
		progressRepo:   pr,
	}
}

// ========== COURSE CRUD ==========

func (uc *courseUsecase) CreateCourse(ctx context.Context, course *domain.Course) error {
	return uc.courseRepo.Create(ctx, course)
}

func (uc *courseUsecase) UpdateCourse(ctx context.Context, course *domain.Course) error {
	existing, err := uc.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		return err
	}

	// Update only allowed fields
	existing.Title = course.Title
	existing.Description = course.Description
	if course.Thumbnail != "" {
		existing.Thumbnail = course.Thumbnail
	}

	return uc.courseRepo.Update(ctx, existing)
}

func (uc *courseUsecase) DeleteCourse(ctx context.Context, id uint) error {
	// Check if course has enrollments
	enrollments, err := uc.enrollmentRepo.GetByCourseID(ctx, id)
	if err != nil {
		return err
	}
	if len(enrollments) > 0 {
		return errors.New("cannot delete course with existing enrollments")
	}

	// Delete all modules (MongoDB)
	if err := uc.moduleRepo.DeleteByCourseID(ctx, id); err != nil {
		return err
	}

	return uc.courseRepo.Delete(ctx, id)
}

func (uc *courseUsecase) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	// Return only published courses (for student browse)
	// Instructors should use GetInstructorCourses to see all their courses
	return uc.courseRepo.GetPublished(ctx)
}

func (uc *courseUsecase) GetInstructorCourses(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	return uc.courseRepo.GetByInstructorID(ctx, instructorID)
}

func (uc *courseUsecase) GetCourseDetails(ctx context.Context, courseID uint, userID *uint) (*domain.CourseDetail, error) {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	modules, err := uc.moduleRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolledCount, err := uc.enrollmentRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	isEnrolled := false
	if userID != nil {
		enrollment, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, *userID, courseID)
		if err != nil {
			return nil, err
		}
		isEnrolled = enrollment != nil
	}

	return &domain.CourseDetail{
		Course:           *course,
		Modules:          modules,
		EnrolledStudents: int(enrolledCount),
		IsEnrolled:       isEnrolled,
	}, nil
}

func (uc *courseUsecase) PublishCourse(ctx context.Context, courseID, instructorID uint) error {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return errors.New("course not found")
	}

	if course.InstructorID != instructorID {
		return errors.New("unauthorized: course does not belong to instructor")
	}

	course.IsPublished = true
	return uc.courseRepo.Update(ctx, course)
}

func (uc *courseUsecase) UnpublishCourse(ctx context.Context, courseID, instructorID uint) error {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return errors.New("course not found")
	}

	if course.InstructorID != instructorID {
		return errors.New("unauthorized: course does not belong to instructor")
	}

	course.IsPublished = false
	return uc.courseRepo.Update(ctx, course)
}

// ========== MODULE / LECTURE AUTHORING ==========

func (uc *courseUsecase) AddModule(ctx context.Context, module *domain.Module) error {
	// Verify course exists
	_, err := uc.courseRepo.GetByID(ctx, module.CourseID)
	if err != nil {
		return errors.New("course not found")
	}

	for i := range module.Lectures {
		if module.Lectures[i].ID == "" {
			module.Lectures[i].ID = uuid.NewString()
		}
	}
	module.CreatedAt = time.Now()

	return uc.moduleRepo.Create(ctx, module)
}

func (uc *courseUsecase) GetModule(ctx context.Context, moduleID string) (*domain.Module, error) {
	module, err := uc.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.New("module not found")
	}
	return module, nil
}

func (uc *courseUsecase) UpdateModule(ctx context.Context, module *domain.Module) error {
	existing, err := uc.moduleRepo.GetByID(ctx, module.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("module not found")
	}

	existing.Title = module.Title
	existing.Description = module.Description
	existing.Order = module.Order

	return uc.moduleRepo.Update(ctx, existing)
}

func (uc *courseUsecase) DeleteModule(ctx context.Context, moduleID string) error {
	return uc.moduleRepo.Delete(ctx, moduleID)
}

func (uc *courseUsecase) AddLecture(ctx context.Context, moduleID string, lecture *domain.Lecture) error {
	module, err := uc.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return err
	}
	if module == nil {
		return errors.New("module not found")
	}

	if lecture.ID == "" {
		lecture.ID = uuid.NewString()
	}
	if lecture.Order == 0 {
		lecture.Order = len(module.Lectures) + 1
	}

	module.Lectures = append(module.Lectures, *lecture)
	return uc.moduleRepo.Update(ctx, module)
}

func (uc *courseUsecase) RemoveLecture(ctx context.Context, moduleID, lectureID string) error {
	module, err := uc.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return err
	}
	if module == nil {
		return errors.New("module not found")
	}

	kept := module.Lectures[:0]
	found := false
	for _, l := range module.Lectures {
		if l.ID == lectureID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return errors.New("lecture not found")
	}

	module.Lectures = kept
	return uc.moduleRepo.Update(ctx, module)
}

// ========== ENROLLMENT ==========

func (uc *courseUsecase) EnrollStudent(ctx context.Context, userID, courseID uint) error {
	// Check if already enrolled
	existing, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("already enrolled in this course")
	}

	// Verify course exists
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return errors.New("course not found")
	}
	if !course.IsPublished {
		return errors.New("course is not published")
	}

	enrollment := &domain.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: 0,
	}

	return uc.enrollmentRepo.Create(ctx, enrollment)
}

// UnenrollStudent removes the enrollment and drops the progress record.
func (uc *courseUsecase) UnenrollStudent(ctx context.Context, userID, courseID uint) error {
	existing, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("not enrolled in this course")
	}

	if err := uc.progressRepo.Delete(ctx, userID, courseID); err != nil {
		return err
	}

	return uc.enrollmentRepo.Delete(ctx, userID, courseID)
}

func (uc *courseUsecase) GetStudentEnrollments(ctx context.Context, userID uint) ([]domain.EnrollmentWithProgress, error) {
	enrollments, err := uc.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result []domain.EnrollmentWithProgress
	for _, e := range enrollments {
		item := domain.EnrollmentWithProgress{Enrollment: e}

		progress, err := uc.progressRepo.GetByUserAndCourse(ctx, userID, e.CourseID)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			item.TotalLectures = progress.TotalLecturesCount
			item.CompletedLectures = progress.CompletedLecturesCount
		}

		result = append(result, item)
	}

	return result, nil
}

func (uc *courseUsecase) GetCourseStudents(ctx context.Context, courseID uint) ([]domain.User, error) {
	enrollments, err := uc.enrollmentRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var students []domain.User
	for _, e := range enrollments {
		students = append(students, e.User)
	}

	return students, nil
}
