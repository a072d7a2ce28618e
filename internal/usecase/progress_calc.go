package usecase

import (
	"math"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
)

// ComputeProgressStats derives the cached progress fields from the course
// structure and the current completion tree. The course is the authoritative
// source for the denominator, so lectures added after a student started count
// against them on the next recompute. Only entries actually present in the
// progress record are scanned for the numerator.
func ComputeProgressStats(modules []domain.Module, progress *domain.CourseProgress) domain.ProgressStats {
	total := 0
	for _, m := range modules {
		total += len(m.Lectures)
	}

	completed := 0
	if progress != nil {
		for _, mp := range progress.Modules {
			for _, lp := range mp.Lectures {
				if lp.Completed {
					completed++
				}
			}
		}
	}

	stats := domain.ProgressStats{
		CompletedLecturesCount: completed,
		TotalLecturesCount:     total,
	}

	if total > 0 {
		stats.ProgressPercentage = int(math.Round(float64(completed) / float64(total) * 100))
		stats.Completed = completed == total
	}

	if stats.Completed {
		if progress != nil && progress.Completed && progress.CompletedAt != nil {
			// Already complete before this recompute, keep the original timestamp.
			stats.CompletedAt = progress.CompletedAt
		} else {
			now := time.Now()
			stats.CompletedAt = &now
		}
	}

	return stats
}

// NewCourseProgress seeds a full completion mirror of the course: every
// module and lecture present, all incomplete, derived fields zeroed.
func NewCourseProgress(userID, courseID uint, modules []domain.Module) *domain.CourseProgress {
	tree := make(map[string]domain.ModuleProgress, len(modules))
	for _, m := range modules {
		lectures := make(map[string]domain.LectureProgress, len(m.Lectures))
		for _, l := range m.Lectures {
			lectures[l.ID] = domain.LectureProgress{}
		}
		tree[m.ID] = domain.ModuleProgress{Lectures: lectures}
	}

	now := time.Now()
	return &domain.CourseProgress{
		UserID:    userID,
		CourseID:  courseID,
		Modules:   tree,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// applyStats overwrites the cached derived fields on the record.
func applyStats(progress *domain.CourseProgress, stats domain.ProgressStats) {
	progress.CompletedLecturesCount = stats.CompletedLecturesCount
	progress.TotalLecturesCount = stats.TotalLecturesCount
	progress.ProgressPercentage = stats.ProgressPercentage
	progress.Completed = stats.Completed
	progress.CompletedAt = stats.CompletedAt
	progress.UpdatedAt = time.Now()
}
