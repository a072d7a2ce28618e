package http

import (
	"github.com/gin-gonic/gin"
)

func InitRouter(handler *Handler, fileHandler *FileHandler) *gin.Engine {
	r := gin.Default()

	// Serve static files from the "uploads" directory
	r.Static("/uploads", "./uploads")

	// Public Routes
	api := r.Group("/api/v1")
	{
		api.POST("/register", handler.Register)
		api.POST("/login", handler.Login)
		api.POST("/verify-email", handler.VerifyEmail)
		api.POST("/forgot-password", handler.ForgotPassword)
		api.GET("/courses", handler.GetAllCourses)
	}

	// Protected Routes (any authenticated user)
	protected := api.Group("/")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/profile", handler.GetProfile)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.GET("/dashboard", handler.GetStudentDashboard)
		protected.GET("/certificates", handler.GetUserCertificates)

		protected.GET("/courses/:id", handler.GetCourseDetail)
		protected.GET("/courses/:id/assignments", handler.GetCourseAssignments)
		protected.GET("/assignments/:id", handler.GetAssignment)

		protected.POST("/files", fileHandler.UploadFile)
		protected.GET("/files/:id", fileHandler.StreamFile)
		protected.GET("/files/:id/info", fileHandler.GetFileInfo)
		protected.DELETE("/files/:id", fileHandler.DeleteFile)
	}

	// Student routes
	student := api.Group("/")
	student.Use(AuthMiddleware("student"))
	{
		student.POST("/courses/:id/enroll", handler.EnrollCourse)
		student.DELETE("/courses/:id/enroll", handler.UnenrollCourse)
		student.GET("/enrollments", handler.GetMyEnrollments)

		student.GET("/courses/:id/progress", handler.GetCourseProgress)
		student.POST("/courses/:id/progress/toggle", handler.ToggleLecture)

		student.POST("/assignments/:id/submit", handler.SubmitAssignment)
		student.PUT("/assignments/:id/submit", handler.ResubmitAssignment)
		student.GET("/assignments/:id/submission", handler.GetMySubmission)

		student.GET("/courses/:id/attendance", handler.GetMyAttendanceSummary)
	}

	// Instructor & Admin Only
	instructor := api.Group("/instructor")
	instructor.Use(AuthMiddleware("instructor", "admin"))
	{
		instructor.GET("/courses", handler.GetInstructorCourses)
		instructor.POST("/courses", handler.CreateCourse)
		instructor.PUT("/courses/:id", handler.UpdateCourse)
		instructor.DELETE("/courses/:id", handler.DeleteCourse)
		instructor.PATCH("/courses/:id/publish", handler.PublishCourse)
		instructor.PATCH("/courses/:id/unpublish", handler.UnpublishCourse)
		instructor.GET("/courses/:id/students", handler.GetCourseStudents)

		instructor.POST("/modules", handler.AddModule)
		instructor.PUT("/modules/:id", handler.UpdateModule)
		instructor.DELETE("/modules/:id", handler.DeleteModule)
		instructor.POST("/modules/:id/lectures", handler.AddLecture)
		instructor.DELETE("/modules/:id/lectures/:lectureId", handler.RemoveLecture)

		instructor.POST("/assignments", handler.CreateAssignment)
		instructor.PUT("/assignments/:id", handler.UpdateAssignment)
		instructor.DELETE("/assignments/:id", handler.DeleteAssignment)
		instructor.POST("/assignments/:id/questions", handler.AddQuestion)
		instructor.DELETE("/assignments/:id/questions/:questionId", handler.RemoveQuestion)

		instructor.GET("/assignments/:id/submissions", handler.GetAssignmentSubmissions)
		instructor.POST("/submissions/:id/grade", handler.GradeSubmission)
		instructor.POST("/submissions/:id/return", handler.ReturnSubmission)

		instructor.POST("/attendance/sessions", handler.CreateAttendanceSession)
		instructor.GET("/courses/:id/attendance/sessions", handler.GetCourseSessions)
		instructor.POST("/attendance/sessions/:id/mark", handler.MarkAttendance)
		instructor.GET("/attendance/sessions/:id/records", handler.GetSessionRecords)
	}

	// Admin Only
	admin := api.Group("/admin")
	admin.Use(AuthMiddleware("admin"))
	{
		admin.DELETE("/courses/:id/progress/:userId", handler.ResetProgress)
	}

	return r
}
