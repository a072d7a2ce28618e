package domain

import "context"

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdateVerified(ctx context.Context, email string) error
	UpdateLastLogin(ctx context.Context, userID uint) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Course, error)
	GetPublished(ctx context.Context) ([]Course, error)
	GetByInstructorID(ctx context.Context, instructorID uint) ([]Course, error)
	Count(ctx context.Context) (int64, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	Update(ctx context.Context, enrollment *Enrollment) error
	Delete(ctx context.Context, userID, courseID uint) error
	GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*Enrollment, error)
	GetByUserID(ctx context.Context, userID uint) ([]Enrollment, error)
	GetByCourseID(ctx context.Context, courseID uint) ([]Enrollment, error)
	CountByCourseID(ctx context.Context, courseID uint) (int64, error)
}

type AttendanceRepository interface {
	CreateSession(ctx context.Context, session *AttendanceSession) error
	GetSessionByID(ctx context.Context, id uint) (*AttendanceSession, error)
	GetSessionsByCourseID(ctx context.Context, courseID uint) ([]AttendanceSession, error)
	CountSessionsByCourseID(ctx context.Context, courseID uint) (int64, error)
	CreateRecord(ctx context.Context, record *AttendanceRecord) error
	UpdateRecord(ctx context.Context, record *AttendanceRecord) error
	GetRecord(ctx context.Context, sessionID, userID uint) (*AttendanceRecord, error)
	GetRecordsBySessionID(ctx context.Context, sessionID uint) ([]AttendanceRecord, error)
	GetRecordsByUserAndCourse(ctx context.Context, userID, courseID uint) ([]AttendanceRecord, error)
}

type CertificateRepository interface {
	Create(ctx context.Context, cert *Certificate) error
	GetByUserID(ctx context.Context, userID uint) ([]Certificate, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*Certificate, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type ModuleRepository interface { // MongoDB
	Create(ctx context.Context, module *Module) error
	GetByID(ctx context.Context, moduleID string) (*Module, error)
	GetByCourseID(ctx context.Context, courseID uint) ([]Module, error)
	Update(ctx context.Context, module *Module) error
	Delete(ctx context.Context, moduleID string) error
	DeleteByCourseID(ctx context.Context, courseID uint) error
}

type ProgressRepository interface { // MongoDB
	Create(ctx context.Context, progress *CourseProgress) error
	GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*CourseProgress, error)
	Replace(ctx context.Context, progress *CourseProgress) error
	Delete(ctx context.Context, userID, courseID uint) error
}

type AssignmentRepository interface { // MongoDB
	Create(ctx context.Context, assignment *Assignment) error
	GetByID(ctx context.Context, assignmentID string) (*Assignment, error)
	GetByCourseID(ctx context.Context, courseID uint) ([]Assignment, error)
	Update(ctx context.Context, assignment *Assignment) error
	Delete(ctx context.Context, assignmentID string) error
}

type SubmissionRepository interface { // MongoDB
	Create(ctx context.Context, submission *Submission) error
	GetByID(ctx context.Context, submissionID string) (*Submission, error)
	GetByAssignmentAndUser(ctx context.Context, assignmentID string, userID uint) (*Submission, error)
	GetByAssignmentID(ctx context.Context, assignmentID string) ([]Submission, error)
	GetRecentGradedByUserID(ctx context.Context, userID uint, limit int) ([]Submission, error)
	Replace(ctx context.Context, submission *Submission) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User) error
	Login(ctx context.Context, email, password string) (string, error)
	UpdateUser(ctx context.Context, user *User) error
	VerifyEmail(ctx context.Context, email string, code string) error
	ForgotPassword(ctx context.Context, email string) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
}

type CourseUsecase interface {
	CreateCourse(ctx context.Context, course *Course) error
	UpdateCourse(ctx context.Context, course *Course) error
	DeleteCourse(ctx context.Context, id uint) error
	GetAllCourses(ctx context.Context) ([]Course, error)
	GetInstructorCourses(ctx context.Context, instructorID uint) ([]Course, error)
	GetCourseDetails(ctx context.Context, courseID uint, userID *uint) (*CourseDetail, error)
	PublishCourse(ctx context.Context, courseID, instructorID uint) error
	UnpublishCourse(ctx context.Context, courseID, instructorID uint) error
	AddModule(ctx context.Context, module *Module) error
	GetModule(ctx context.Context, moduleID string) (*Module, error)
	UpdateModule(ctx context.Context, module *Module) error
	DeleteModule(ctx context.Context, moduleID string) error
	AddLecture(ctx context.Context, moduleID string, lecture *Lecture) error
	RemoveLecture(ctx context.Context, moduleID, lectureID string) error
	EnrollStudent(ctx context.Context, userID, courseID uint) error
	UnenrollStudent(ctx context.Context, userID, courseID uint) error
	GetStudentEnrollments(ctx context.Context, userID uint) ([]EnrollmentWithProgress, error)
	GetCourseStudents(ctx context.Context, courseID uint) ([]User, error)
}

type ProgressUsecase interface {
	GetProgress(ctx context.Context, userID, courseID uint) (*CourseProgress, error)
	ToggleLecture(ctx context.Context, userID, courseID uint, moduleID, lectureID string) (bool, *CourseProgress, error)
	ResetProgress(ctx context.Context, userID, courseID uint) error
}

type AssignmentUsecase interface {
	CreateAssignment(ctx context.Context, assignment *Assignment) error
	UpdateAssignment(ctx context.Context, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, assignmentID string) error
	GetAssignment(ctx context.Context, assignmentID string) (*Assignment, error)
	GetCourseAssignments(ctx context.Context, courseID uint) ([]Assignment, error)
	AddQuestion(ctx context.Context, assignmentID string, question *Question) error
	RemoveQuestion(ctx context.Context, assignmentID, questionID string) error
}

type SubmissionUsecase interface {
	Submit(ctx context.Context, submission *Submission, answers []StudentAnswer) (*Submission, error)
	Resubmit(ctx context.Context, assignmentID string, userID uint, text string, attachments []string, answers []StudentAnswer) (*Submission, error)
	GradeSubmission(ctx context.Context, submissionID string, points float64, feedback string, gradedByID uint) (*Submission, error)
	ReturnSubmission(ctx context.Context, submissionID string, gradedByID uint) error
	GetSubmission(ctx context.Context, submissionID string) (*Submission, error)
	GetStudentSubmission(ctx context.Context, assignmentID string, userID uint) (*Submission, error)
	GetAssignmentSubmissions(ctx context.Context, assignmentID string) ([]Submission, error)
}

type AttendanceUsecase interface {
	CreateSession(ctx context.Context, session *AttendanceSession) error
	GetCourseSessions(ctx context.Context, courseID uint) ([]AttendanceSession, error)
	MarkAttendance(ctx context.Context, sessionID, userID uint, status AttendanceStatus, note string, markedByID uint) error
	GetSessionRecords(ctx context.Context, sessionID uint) ([]AttendanceRecord, error)
	GetStudentSummary(ctx context.Context, userID, courseID uint) (*AttendanceSummary, error)
}

type CertificateUsecase interface {
	GetUserCertificates(ctx context.Context, userID uint) ([]Certificate, error)
}

type DashboardUsecase interface {
	GetStudentDashboard(ctx context.Context, userID uint) (*StudentDashboardData, error)
}
