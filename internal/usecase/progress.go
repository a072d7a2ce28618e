package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type progressUsecase struct {
	moduleRepo     domain.ModuleRepository
	progressRepo   domain.ProgressRepository
	enrollmentRepo domain.EnrollmentRepository
	certRepo       domain.CertificateRepository
	userRepo       domain.UserRepository
	courseRepo     domain.CourseRepository
}

func NewProgressUsecase(
	mr domain.ModuleRepository,
	pr domain.ProgressRepository,
	er domain.EnrollmentRepository,
	certr domain.CertificateRepository,
	ur domain.UserRepository,
	cr domain.CourseRepository,
) domain.ProgressUsecase {
	return &progressUsecase{
		moduleRepo:     mr,
		progressRepo:   pr,
		enrollmentRepo: er,
		certRepo:       certr,
		userRepo:       ur,
		courseRepo:     cr,
	}
}

// GetProgress returns the progress record for a (student, course) pair,
// seeding a full mirror of the course tree on first access. Idempotent.
func (uc *progressUsecase) GetProgress(ctx context.Context, userID, courseID uint) (*domain.CourseProgress, error) {
	enrollment, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, errors.New("not enrolled in this course")
	}

	existing, err := uc.progressRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	modules, err := uc.moduleRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	progress := NewCourseProgress(userID, courseID, modules)
	applyStats(progress, ComputeProgressStats(modules, progress))

	if err := uc.progressRepo.Create(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ToggleLecture flips a lecture's completion flag, recomputes the owning
// module's completion over the entries currently present, refreshes the
// cached record stats and persists the record. Returns the lecture's new
// completion state.
func (uc *progressUsecase) ToggleLecture(ctx context.Context, userID, courseID uint, moduleID, lectureID string) (bool, *domain.CourseProgress, error) {
	modules, err := uc.moduleRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return false, nil, err
	}

	var courseModule *domain.Module
	for i := range modules {
		if modules[i].ID == moduleID {
			courseModule = &modules[i]
			break
		}
	}
	if courseModule == nil {
		return false, nil, errors.New("module not found in course")
	}

	lectureExists := false
	for _, l := range courseModule.Lectures {
		if l.ID == lectureID {
			lectureExists = true
			break
		}
	}
	if !lectureExists {
		return false, nil, errors.New("lecture not found in module")
	}

	progress, err := uc.GetProgress(ctx, userID, courseID)
	if err != nil {
		return false, nil, err
	}
	if progress.Modules == nil {
		progress.Modules = make(map[string]domain.ModuleProgress)
	}

	mp, ok := progress.Modules[moduleID]
	if !ok {
		// Lazily created entries mirror the module's full lecture list.
		lectures := make(map[string]domain.LectureProgress, len(courseModule.Lectures))
		for _, l := range courseModule.Lectures {
			lectures[l.ID] = domain.LectureProgress{}
		}
		mp = domain.ModuleProgress{Lectures: lectures}
	}
	if mp.Lectures == nil {
		mp.Lectures = make(map[string]domain.LectureProgress)
	}

	lp := mp.Lectures[lectureID]
	lp.Completed = !lp.Completed
	if lp.Completed {
		now := time.Now()
		lp.CompletedAt = &now
	} else {
		lp.CompletedAt = nil
	}
	mp.Lectures[lectureID] = lp

	// Module completion only considers lecture entries present in the record.
	moduleComplete := len(mp.Lectures) > 0
	for _, l := range mp.Lectures {
		if !l.Completed {
			moduleComplete = false
			break
		}
	}
	if moduleComplete {
		if !mp.Completed || mp.CompletedAt == nil {
			now := time.Now()
			mp.CompletedAt = &now
		}
	} else {
		mp.CompletedAt = nil
	}
	mp.Completed = moduleComplete
	progress.Modules[moduleID] = mp

	applyStats(progress, ComputeProgressStats(modules, progress))

	if err := uc.progressRepo.Replace(ctx, progress); err != nil {
		return false, nil, err
	}

	if err := uc.syncEnrollment(ctx, userID, courseID, progress); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":   userID,
			"course_id": courseID,
		}).Warn("failed to sync enrollment progress")
	}

	return lp.Completed, progress, nil
}

func (uc *progressUsecase) ResetProgress(ctx context.Context, userID, courseID uint) error {
	if err := uc.progressRepo.Delete(ctx, userID, courseID); err != nil {
		return err
	}

	enrollment, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil || enrollment == nil {
		return err
	}
	enrollment.Progress = 0
	enrollment.IsFinished = false
	return uc.enrollmentRepo.Update(ctx, enrollment)
}

// syncEnrollment mirrors the cached percentage onto the enrollment row and
// issues a completion certificate when the course hits 100%.
func (uc *progressUsecase) syncEnrollment(ctx context.Context, userID, courseID uint, progress *domain.CourseProgress) error {
	enrollment, err := uc.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return errors.New("enrollment not found")
	}

	enrollment.Progress = progress.ProgressPercentage

	if progress.Completed && !enrollment.IsFinished {
		enrollment.IsFinished = true

		existing, _ := uc.certRepo.GetByUserAndCourse(ctx, userID, courseID)
		if existing == nil {
			cert := &domain.Certificate{
				UserID:   userID,
				CourseID: courseID,
				Title:    "Course Completion Certificate",
				Serial:   fmt.Sprintf("SHA-%s", uuid.NewString()),
				Status:   "pending",
			}
			if err := uc.certRepo.Create(ctx, cert); err == nil {
				uc.notifyCertificate(ctx, cert)
			}
		}
	}

	return uc.enrollmentRepo.Update(ctx, enrollment)
}

func (uc *progressUsecase) notifyCertificate(ctx context.Context, cert *domain.Certificate) {
	user, err := uc.userRepo.GetByID(ctx, cert.UserID)
	if err != nil || user == nil {
		logrus.WithError(err).WithField("user_id", cert.UserID).Warn("failed to load user for certificate notification")
		return
	}
	course, err := uc.courseRepo.GetByID(ctx, cert.CourseID)
	if err != nil || course == nil {
		logrus.WithError(err).WithField("course_id", cert.CourseID).Warn("failed to load course for certificate notification")
		return
	}
	go utils.SendCertificateEmail(user.Email, user.Name, course.Title, cert.Serial)
}
