package usecase

import (
	"testing"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func courseModules() []domain.Module {
	return []domain.Module{
		{
			ID: "m1",
			Lectures: []domain.Lecture{
				{ID: "l1"}, {ID: "l2"},
			},
		},
		{
			ID: "m2",
			Lectures: []domain.Lecture{
				{ID: "l3"},
			},
		},
	}
}

func TestComputeProgressStats_EmptyRecord(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(1, 10, modules)

	stats := ComputeProgressStats(modules, progress)

	assert.Equal(t, 3, stats.TotalLecturesCount)
	assert.Equal(t, 0, stats.CompletedLecturesCount)
	assert.Equal(t, 0, stats.ProgressPercentage)
	assert.False(t, stats.Completed)
	assert.Nil(t, stats.CompletedAt)
}

func TestComputeProgressStats_PercentageRounding(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(1, 10, modules)

	mp := progress.Modules["m1"]
	mp.Lectures["l1"] = domain.LectureProgress{Completed: true}
	progress.Modules["m1"] = mp

	// 1/3 rounds to 33
	stats := ComputeProgressStats(modules, progress)
	assert.Equal(t, 1, stats.CompletedLecturesCount)
	assert.Equal(t, 33, stats.ProgressPercentage)

	// 2/3 rounds to 67
	mp.Lectures["l2"] = domain.LectureProgress{Completed: true}
	progress.Modules["m1"] = mp
	stats = ComputeProgressStats(modules, progress)
	assert.Equal(t, 67, stats.ProgressPercentage)
	assert.False(t, stats.Completed)
}

func TestComputeProgressStats_CourseIsDenominator(t *testing.T) {
	modules := courseModules()

	// Record only mirrors one module; the denominator still spans the course.
	progress := &domain.CourseProgress{
		UserID:   1,
		CourseID: 10,
		Modules: map[string]domain.ModuleProgress{
			"m2": {Lectures: map[string]domain.LectureProgress{
				"l3": {Completed: true},
			}},
		},
	}

	stats := ComputeProgressStats(modules, progress)
	assert.Equal(t, 3, stats.TotalLecturesCount)
	assert.Equal(t, 1, stats.CompletedLecturesCount)
	assert.Equal(t, 33, stats.ProgressPercentage)
	assert.False(t, stats.Completed)
}

func TestComputeProgressStats_EmptyCourse(t *testing.T) {
	stats := ComputeProgressStats(nil, &domain.CourseProgress{})

	assert.Equal(t, 0, stats.TotalLecturesCount)
	assert.Equal(t, 0, stats.ProgressPercentage)
	assert.False(t, stats.Completed, "a course with no lectures is never complete")
}

func TestComputeProgressStats_Completion(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(1, 10, modules)

	for mid, mp := range progress.Modules {
		for lid := range mp.Lectures {
			mp.Lectures[lid] = domain.LectureProgress{Completed: true}
		}
		progress.Modules[mid] = mp
	}

	stats := ComputeProgressStats(modules, progress)
	assert.Equal(t, 100, stats.ProgressPercentage)
	assert.True(t, stats.Completed)
	assert.NotNil(t, stats.CompletedAt)
}

func TestComputeProgressStats_PreservesCompletedAt(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(1, 10, modules)

	for mid, mp := range progress.Modules {
		for lid := range mp.Lectures {
			mp.Lectures[lid] = domain.LectureProgress{Completed: true}
		}
		progress.Modules[mid] = mp
	}

	then := time.Now().Add(-24 * time.Hour)
	progress.Completed = true
	progress.CompletedAt = &then

	stats := ComputeProgressStats(modules, progress)
	assert.True(t, stats.Completed)
	assert.Equal(t, &then, stats.CompletedAt, "recompute must not re-stamp an existing completion")
}

func TestNewCourseProgress_FullMirror(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(7, 42, modules)

	assert.Equal(t, uint(7), progress.UserID)
	assert.Equal(t, uint(42), progress.CourseID)
	assert.Len(t, progress.Modules, 2)
	assert.Len(t, progress.Modules["m1"].Lectures, 2)
	assert.Len(t, progress.Modules["m2"].Lectures, 1)

	for _, mp := range progress.Modules {
		assert.False(t, mp.Completed)
		for _, lp := range mp.Lectures {
			assert.False(t, lp.Completed)
			assert.Nil(t, lp.CompletedAt)
		}
	}

	assert.Equal(t, 0, progress.CompletedLecturesCount)
	assert.Equal(t, 0, progress.ProgressPercentage)
	assert.False(t, progress.Completed)
}

func TestApplyStats_OverwritesCachedFields(t *testing.T) {
	modules := courseModules()
	progress := NewCourseProgress(1, 10, modules)

	mp := progress.Modules["m1"]
	mp.Lectures["l1"] = domain.LectureProgress{Completed: true}
	progress.Modules["m1"] = mp

	applyStats(progress, ComputeProgressStats(modules, progress))

	assert.Equal(t, 1, progress.CompletedLecturesCount)
	assert.Equal(t, 3, progress.TotalLecturesCount)
	assert.Equal(t, 33, progress.ProgressPercentage)
}
