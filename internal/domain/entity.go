package domain

import (
	"time"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Password         string     `json:"-" gorm:"not null"`
	Role             Role       `json:"role" gorm:"type:varchar(20);default:'student'"`
	IsVerified       bool       `json:"is_verified" gorm:"default:false"`
	VerificationCode string     `json:"-" gorm:"type:varchar(64)"`
	ProfilePicture   string     `json:"profile_picture"`
	LastLoginAt      *time.Time `json:"last_login_at"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Thumbnail    string    `json:"thumbnail"`
	InstructorID uint      `json:"instructor_id" gorm:"not null"`
	IsPublished  bool      `json:"is_published" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Instructor User `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
}

// Enrollment - one row per (student, course) pair. Progress is a cached
// mirror of the CourseProgress document, refreshed on every recompute.
type Enrollment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index:idx_enroll_user_course,unique"`
	CourseID   uint      `json:"course_id" gorm:"not null;index:idx_enroll_user_course,unique"`
	Progress   int       `json:"progress" gorm:"default:0"` // 0-100%
	IsFinished bool      `json:"is_finished" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// AttendanceSession - a class meeting instructors take attendance for.
type AttendanceSession struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedByID uint      `json:"created_by_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

type AttendanceRecord struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	SessionID  uint             `json:"session_id" gorm:"not null;index:idx_att_session_user,unique"`
	UserID     uint             `json:"user_id" gorm:"not null;index:idx_att_session_user,unique"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(10);not null"`
	Note       string           `json:"note" gorm:"type:text"`
	MarkedByID uint             `json:"marked_by_id" gorm:"not null"`
	CreatedAt  time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	User    User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Session AttendanceSession `json:"session,omitempty" gorm:"foreignKey:SessionID"`
}

// Certificate - issued when a student reaches 100% course progress.
type Certificate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Serial    string    `json:"serial" gorm:"uniqueIndex;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending'"` // pending, approved, rejected
	IssueDate time.Time `json:"issue_date" gorm:"autoCreateTime"`

	// Relations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// ========== MONGODB MODELS ==========

// Lecture - atomic content unit inside a module. Lecture IDs are unique
// within their module.
type Lecture struct {
	ID         string `json:"id" bson:"lecture_id"`
	Title      string `json:"title" bson:"title"`
	ContentURL string `json:"content_url" bson:"content_url"`
	FileID     string `json:"file_id,omitempty" bson:"file_id,omitempty"` // GridFS File ID
	Duration   int    `json:"duration" bson:"duration"`                   // minutes
	Order      int    `json:"order" bson:"order"`
}

// Module - stored in MongoDB since the course structure is dynamic.
// Module IDs are unique within their course.
type Module struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CourseID    uint      `json:"course_id" bson:"course_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Order       int       `json:"order" bson:"order"`
	Lectures    []Lecture `json:"lectures" bson:"lectures"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type LectureProgress struct {
	Completed   bool       `json:"completed" bson:"completed"`
	CompletedAt *time.Time `json:"completed_at" bson:"completed_at"`
}

type ModuleProgress struct {
	Completed   bool                       `json:"completed" bson:"completed"`
	CompletedAt *time.Time                 `json:"completed_at" bson:"completed_at"`
	Lectures    map[string]LectureProgress `json:"lectures_progress" bson:"lectures_progress"`
}

// CourseProgress - per-(student, course) completion tree plus cached stats.
// Created lazily on first read or toggle, deleted on unenroll/reset.
type CourseProgress struct {
	ID                     string                    `json:"id" bson:"_id,omitempty"`
	UserID                 uint                      `json:"user_id" bson:"user_id"`
	CourseID               uint                      `json:"course_id" bson:"course_id"`
	Modules                map[string]ModuleProgress `json:"modules_progress" bson:"modules_progress"`
	CompletedLecturesCount int                       `json:"completed_lectures_count" bson:"completed_lectures_count"`
	TotalLecturesCount     int                       `json:"total_lectures_count" bson:"total_lectures_count"`
	ProgressPercentage     int                       `json:"progress_percentage" bson:"progress_percentage"`
	Completed              bool                      `json:"completed" bson:"completed"`
	CompletedAt            *time.Time                `json:"completed_at" bson:"completed_at"`
	CreatedAt              time.Time                 `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time                 `json:"updated_at" bson:"updated_at"`
}

// ProgressStats - derived fields recomputed from the full tree.
type ProgressStats struct {
	CompletedLecturesCount int        `json:"completed_lectures_count"`
	TotalLecturesCount     int        `json:"total_lectures_count"`
	ProgressPercentage     int        `json:"progress_percentage"`
	Completed              bool       `json:"completed"`
	CompletedAt            *time.Time `json:"completed_at"`
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionWritten        QuestionType = "written"
)

type Question struct {
	ID             string       `json:"id" bson:"question_id"`
	Text           string       `json:"text" bson:"text"`
	Type           QuestionType `json:"type" bson:"type"`
	Options        []string     `json:"options,omitempty" bson:"options,omitempty"`
	CorrectOption  *int         `json:"correct_option,omitempty" bson:"correct_option,omitempty"`
	ExpectedAnswer string       `json:"expected_answer,omitempty" bson:"expected_answer,omitempty"`
	Points         float64      `json:"points" bson:"points"` // default 1
	Explanation    string       `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Tags           []string     `json:"tags,omitempty" bson:"tags,omitempty"`
}

type QuizSettings struct {
	AutoGrade        bool `json:"auto_grade" bson:"auto_grade"`
	TimeLimitMinutes int  `json:"time_limit_minutes" bson:"time_limit_minutes"`
	ShuffleQuestions bool `json:"shuffle_questions" bson:"shuffle_questions"`
}

// Assignment - stored in MongoDB, the question bank has a dynamic shape.
type Assignment struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	CourseID     uint         `json:"course_id" bson:"course_id"`
	ModuleID     string       `json:"module_id,omitempty" bson:"module_id,omitempty"`
	Title        string       `json:"title" bson:"title"`
	Description  string       `json:"description" bson:"description"`
	TotalPoints  float64      `json:"total_points" bson:"total_points"`
	DueDate      *time.Time   `json:"due_date,omitempty" bson:"due_date,omitempty"`
	QuizSettings QuizSettings `json:"quiz_settings" bson:"quiz_settings"`
	Questions    []Question   `json:"questions" bson:"questions"`
	CreatedByID  uint         `json:"created_by_id" bson:"created_by_id"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

type SubmissionStatus string

const (
	StatusSubmitted   SubmissionStatus = "submitted"
	StatusGraded      SubmissionStatus = "graded"
	StatusReturned    SubmissionStatus = "returned"
	StatusResubmitted SubmissionStatus = "resubmitted"
)

// StudentAnswer - raw answer as received from the student. Answer is nil
// when the question was left blank.
type StudentAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     *int   `json:"answer,omitempty"`
	TextAnswer string `json:"text_answer,omitempty"`
}

// QuizAnswer - snapshot of the question at submission time combined with
// the student's answer and, once graded, the outcome.
type QuizAnswer struct {
	QuestionID     string       `json:"question_id" bson:"question_id"`
	QuestionText   string       `json:"question_text" bson:"question_text"`
	Type           QuestionType `json:"type" bson:"type"`
	Options        []string     `json:"options,omitempty" bson:"options,omitempty"`
	CorrectOption  *int         `json:"correct_option,omitempty" bson:"correct_option,omitempty"`
	ExpectedAnswer string       `json:"expected_answer,omitempty" bson:"expected_answer,omitempty"`
	Points         float64      `json:"points" bson:"points"`
	Explanation    string       `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Tags           []string     `json:"tags,omitempty" bson:"tags,omitempty"`
	Answer         *int         `json:"answer,omitempty" bson:"answer,omitempty"`
	TextAnswer     string       `json:"text_answer,omitempty" bson:"text_answer,omitempty"`
	IsCorrect      *bool        `json:"is_correct,omitempty" bson:"is_correct,omitempty"`
	EarnedPoints   *float64     `json:"earned_points,omitempty" bson:"earned_points,omitempty"`
}

// Grade - LetterGrade is always derived from Percentage, never set on its own.
type Grade struct {
	Points      float64   `json:"points" bson:"points"`
	Percentage  float64   `json:"percentage" bson:"percentage"`
	LetterGrade string    `json:"letter_grade" bson:"letter_grade"`
	Feedback    string    `json:"feedback,omitempty" bson:"feedback,omitempty"`
	GradedAt    time.Time `json:"graded_at" bson:"graded_at"`
	GradedByID  uint      `json:"graded_by_id" bson:"graded_by_id"` // 0 when auto-graded
}

type SubmissionRevision struct {
	SubmissionText string    `json:"submission_text" bson:"submission_text"`
	Attachments    []string  `json:"attachments,omitempty" bson:"attachments,omitempty"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
	UpdatedByID    uint      `json:"updated_by_id" bson:"updated_by_id"`
}

// Submission - at most one per (assignment, student); resubmission mutates
// the existing document and appends the prior content to History.
type Submission struct {
	ID                string               `json:"id" bson:"_id,omitempty"`
	AssignmentID      string               `json:"assignment_id" bson:"assignment_id"`
	CourseID          uint                 `json:"course_id" bson:"course_id"`
	UserID            uint                 `json:"user_id" bson:"user_id"`
	SubmissionText    string               `json:"submission_text" bson:"submission_text"`
	Attachments       []string             `json:"attachments,omitempty" bson:"attachments,omitempty"`
	QuizAnswers       []QuizAnswer         `json:"quiz_answers,omitempty" bson:"quiz_answers,omitempty"`
	Grade             *Grade               `json:"grade,omitempty" bson:"grade,omitempty"`
	Status            SubmissionStatus     `json:"status" bson:"status"`
	History           []SubmissionRevision `json:"history,omitempty" bson:"history,omitempty"`
	ResubmissionCount int                  `json:"resubmission_count" bson:"resubmission_count"`
	SubmittedAt       time.Time            `json:"submitted_at" bson:"submitted_at"`
	UpdatedAt         time.Time            `json:"updated_at" bson:"updated_at"`
}

// ========== GRADING DTOs ==========

type GradedAnswer struct {
	QuestionID    string  `json:"question_id"`
	StudentAnswer *int    `json:"student_answer"`
	CorrectAnswer int     `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
	Points        float64 `json:"points"`
	EarnedPoints  float64 `json:"earned_points"`
}

// QuizGradeResult - both the raw question-point totals and the values
// rescaled to the assignment's declared TotalPoints.
type QuizGradeResult struct {
	TotalQuestionPoints  float64        `json:"total_question_points"`
	EarnedQuestionPoints float64        `json:"earned_question_points"`
	Percentage           float64        `json:"percentage"`
	EarnedPoints         float64        `json:"earned_points"` // rescaled to assignment TotalPoints
	GradedAnswers        []GradedAnswer `json:"graded_answers"`
}

// ========== RESPONSE DTOs ==========

// CourseDetail - course with its modules and enrollment context
type CourseDetail struct {
	Course
	Modules          []Module `json:"modules"`
	EnrolledStudents int      `json:"enrolled_students"`
	IsEnrolled       bool     `json:"is_enrolled"` // for the requesting student
}

// EnrollmentWithProgress - enrollment with cached progress detail
type EnrollmentWithProgress struct {
	Enrollment
	TotalLectures     int `json:"total_lectures"`
	CompletedLectures int `json:"completed_lectures"`
}

type RecentGrade struct {
	AssignmentID    string    `json:"assignment_id"`
	AssignmentTitle string    `json:"assignment_title"`
	Percentage      float64   `json:"percentage"`
	LetterGrade     string    `json:"letter_grade"`
	GradedAt        time.Time `json:"graded_at"`
}

type AttendanceSummary struct {
	TotalSessions  int     `json:"total_sessions"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	Excused        int     `json:"excused"`
	AttendanceRate float64 `json:"attendance_rate"` // present+late over total, 0-100
}

// StudentDashboardData - aggregate payload for the student dashboard
type StudentDashboardData struct {
	User               *User                    `json:"user"`
	TotalEnrollments   int                      `json:"total_enrollments"`
	CompletedCourses   int                      `json:"completed_courses"`
	InProgressCourses  int                      `json:"in_progress_courses"`
	AverageProgress    float64                  `json:"average_progress"`
	TotalCertificates  int                      `json:"total_certificates"`
	RecentGrades       []RecentGrade            `json:"recent_grades"`
	OngoingEnrollments []EnrollmentWithProgress `json:"ongoing_enrollments"`
}
