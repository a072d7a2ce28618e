package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	AuthUsecase       domain.AuthUsecase
	CourseUsecase     domain.CourseUsecase
	ProgressUsecase   domain.ProgressUsecase
	AssignmentUsecase domain.AssignmentUsecase
	SubmissionUsecase domain.SubmissionUsecase
	AttendanceUsecase domain.AttendanceUsecase
	CertUsecase       domain.CertificateUsecase
	DashboardUsecase  domain.DashboardUsecase
}

func NewHandler(
	au domain.AuthUsecase,
	cu domain.CourseUsecase,
	pu domain.ProgressUsecase,
	asu domain.AssignmentUsecase,
	su domain.SubmissionUsecase,
	atu domain.AttendanceUsecase,
	certu domain.CertificateUsecase,
	du domain.DashboardUsecase,
) *Handler {
	return &Handler{
		AuthUsecase:       au,
		CourseUsecase:     cu,
		ProgressUsecase:   pu,
		AssignmentUsecase: asu,
		SubmissionUsecase: su,
		AttendanceUsecase: atu,
		CertUsecase:       certu,
		DashboardUsecase:  du,
	}
}

// ========== UTILITY FUNCTIONS ==========

func formatValidationErrors(err error) gin.H {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		errors := make(map[string]string)
		for _, f := range ve {
			errors[f.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", f.Field(), f.Tag())
		}
		return gin.H{"error": "Validation failed", "details": errors}
	}
	return gin.H{"error": "Invalid request: " + err.Error()}
}

func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("user ID not found in token")
	}
	return userID.(uint), nil
}

func getUserRole(c *gin.Context) (string, error) {
	role, exists := c.Get("role")
	if !exists {
		return "", errors.New("role not found in token")
	}
	return role.(string), nil
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(v), nil
}

func parseUintForm(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.PostForm(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(v), nil
}

// ========== AUTH HANDLERS ==========

func (h *Handler) Register(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if user.Role == "" {
		user.Role = domain.RoleStudent
	}

	if err := h.AuthUsecase.Register(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	token, err := h.AuthUsecase.Login(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if err := h.AuthUsecase.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	h.AuthUsecase.ForgotPassword(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a password reset link has been sent."})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.AuthUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var user domain.User
	user.ID = userID
	user.Name = c.PostForm("name")
	user.Password = c.PostForm("password")

	filePath, err := utils.HandleUpload(c, "profile_picture")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}
	if filePath != "" {
		user.ProfilePicture = filePath
	}

	if err := h.AuthUsecase.UpdateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ========== DASHBOARD HANDLERS ==========

func (h *Handler) GetStudentDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	data, err := h.DashboardUsecase.GetStudentDashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// ========== COURSE HANDLERS ==========

func (h *Handler) CreateCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var course domain.Course
	course.Title = c.PostForm("title")
	course.Description = c.PostForm("description")
	course.InstructorID = userID

	if course.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	filePath, err := utils.HandleUpload(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload thumbnail: " + err.Error()})
		return
	}
	course.Thumbnail = filePath

	if err := h.CourseUsecase.CreateCourse(c.Request.Context(), &course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, course)
}

// verifyCourseOwnership loads the course and checks the caller owns it,
// with an admin override.
func (h *Handler) verifyCourseOwnership(c *gin.Context, courseID uint) (*domain.CourseDetail, bool) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}

	existing, err := h.CourseUsecase.GetCourseDetails(c.Request.Context(), courseID, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return nil, false
	}

	if existing.InstructorID != userID {
		role, _ := getUserRole(c)
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own courses"})
			return nil, false
		}
	}

	return existing, true
}

// verifyModuleOwnership resolves the module to its course and applies
// the same ownership check as verifyCourseOwnership.
func (h *Handler) verifyModuleOwnership(c *gin.Context, moduleID string) bool {
	module, err := h.CourseUsecase.GetModule(c.Request.Context(), moduleID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return false
	}

	_, ok := h.verifyCourseOwnership(c, module.CourseID)
	return ok
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	existing, ok := h.verifyCourseOwnership(c, courseID)
	if !ok {
		return
	}

	var course domain.Course
	course.ID = courseID
	course.Title = c.PostForm("title")
	course.Description = c.PostForm("description")
	course.InstructorID = existing.InstructorID

	if course.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	filePath, err := utils.HandleUpload(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload thumbnail: " + err.Error()})
		return
	}
	if filePath != "" {
		course.Thumbnail = filePath
	}

	if err := h.CourseUsecase.UpdateCourse(c.Request.Context(), &course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course updated successfully", "course": course})
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if _, ok := h.verifyCourseOwnership(c, courseID); !ok {
		return
	}

	if err := h.CourseUsecase.DeleteCourse(c.Request.Context(), courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

func (h *Handler) PublishCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if err := h.CourseUsecase.PublishCourse(c.Request.Context(), courseID, userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course published successfully"})
}

func (h *Handler) UnpublishCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if err := h.CourseUsecase.UnpublishCourse(c.Request.Context(), courseID, userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course unpublished successfully"})
}

func (h *Handler) GetAllCourses(c *gin.Context) {
	courses, err := h.CourseUsecase.GetAllCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *Handler) GetInstructorCourses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courses, err := h.CourseUsecase.GetInstructorCourses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *Handler) GetCourseDetail(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var userIDPtr *uint
	if userID, err := getUserID(c); err == nil {
		userIDPtr = &userID
	}

	detail, err := h.CourseUsecase.GetCourseDetails(c.Request.Context(), id, userIDPtr)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) GetCourseStudents(c *gin.Context) {
	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	students, err := h.CourseUsecase.GetCourseStudents(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students": students,
		"count":    len(students),
	})
}

// ========== ENROLLMENT HANDLERS ==========

func (h *Handler) EnrollCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if err := h.CourseUsecase.EnrollStudent(c.Request.Context(), userID, courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully enrolled in course"})
}

func (h *Handler) UnenrollCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if err := h.CourseUsecase.UnenrollStudent(c.Request.Context(), userID, courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully unenrolled from course"})
}

func (h *Handler) GetMyEnrollments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	enrollments, err := h.CourseUsecase.GetStudentEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

// ========== MODULE HANDLERS ==========

func (h *Handler) AddModule(c *gin.Context) {
	var module domain.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if module.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if _, ok := h.verifyCourseOwnership(c, module.CourseID); !ok {
		return
	}

	if err := h.CourseUsecase.AddModule(c.Request.Context(), &module); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, module)
}

func (h *Handler) UpdateModule(c *gin.Context) {
	moduleID := c.Param("id")
	if moduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module ID is required"})
		return
	}

	if !h.verifyModuleOwnership(c, moduleID) {
		return
	}

	var module domain.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}
	module.ID = moduleID

	if err := h.CourseUsecase.UpdateModule(c.Request.Context(), &module); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Module updated successfully", "module": module})
}

func (h *Handler) DeleteModule(c *gin.Context) {
	moduleID := c.Param("id")
	if moduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module ID is required"})
		return
	}

	if !h.verifyModuleOwnership(c, moduleID) {
		return
	}

	if err := h.CourseUsecase.DeleteModule(c.Request.Context(), moduleID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Module deleted successfully"})
}

func (h *Handler) AddLecture(c *gin.Context) {
	moduleID := c.Param("id")
	if moduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module ID is required"})
		return
	}

	if !h.verifyModuleOwnership(c, moduleID) {
		return
	}

	var lecture domain.Lecture
	if err := c.ShouldBindJSON(&lecture); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if lecture.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if err := h.CourseUsecase.AddLecture(c.Request.Context(), moduleID, &lecture); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, lecture)
}

func (h *Handler) RemoveLecture(c *gin.Context) {
	moduleID := c.Param("id")
	lectureID := c.Param("lectureId")
	if moduleID == "" || lectureID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module ID and lecture ID are required"})
		return
	}

	if !h.verifyModuleOwnership(c, moduleID) {
		return
	}

	if err := h.CourseUsecase.RemoveLecture(c.Request.Context(), moduleID, lectureID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lecture removed successfully"})
}

// ========== PROGRESS HANDLERS ==========

func (h *Handler) GetCourseProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	progress, err := h.ProgressUsecase.GetProgress(c.Request.Context(), userID, courseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *Handler) ToggleLecture(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var req struct {
		ModuleID  string `json:"module_id" binding:"required"`
		LectureID string `json:"lecture_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	completed, progress, err := h.ProgressUsecase.ToggleLecture(c.Request.Context(), userID, courseID, req.ModuleID, req.LectureID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completed": completed,
		"progress":  progress,
	})
}

func (h *Handler) ResetProgress(c *gin.Context) {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if err := h.ProgressUsecase.ResetProgress(c.Request.Context(), userID, courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress reset successfully"})
}

// ========== CERTIFICATE HANDLERS ==========

func (h *Handler) GetUserCertificates(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	certs, err := h.CertUsecase.GetUserCertificates(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": certs,
		"count":        len(certs),
	})
}
