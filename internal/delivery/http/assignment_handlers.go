package http

import (
	"net/http"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"github.com/gin-gonic/gin"
)

// ========== ASSIGNMENT HANDLERS ==========

// verifyAssignmentOwnership resolves the assignment to its course and
// applies the same ownership check as verifyCourseOwnership.
func (h *Handler) verifyAssignmentOwnership(c *gin.Context, assignmentID string) bool {
	assignment, err := h.AssignmentUsecase.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return false
	}

	_, ok := h.verifyCourseOwnership(c, assignment.CourseID)
	return ok
}

// verifySubmissionOwnership checks the caller owns the course the
// submission belongs to.
func (h *Handler) verifySubmissionOwnership(c *gin.Context, submissionID string) bool {
	submission, err := h.SubmissionUsecase.GetSubmission(c.Request.Context(), submissionID)
	if err != nil || submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return false
	}

	_, ok := h.verifyCourseOwnership(c, submission.CourseID)
	return ok
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var assignment domain.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if assignment.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if _, ok := h.verifyCourseOwnership(c, assignment.CourseID); !ok {
		return
	}

	assignment.CreatedByID = userID

	if err := h.AssignmentUsecase.CreateAssignment(c.Request.Context(), &assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	if !h.verifyAssignmentOwnership(c, assignmentID) {
		return
	}

	var assignment domain.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}
	assignment.ID = assignmentID

	if err := h.AssignmentUsecase.UpdateAssignment(c.Request.Context(), &assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment updated successfully", "assignment": assignment})
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	if !h.verifyAssignmentOwnership(c, assignmentID) {
		return
	}

	if err := h.AssignmentUsecase.DeleteAssignment(c.Request.Context(), assignmentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}

func (h *Handler) GetAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	assignment, err := h.AssignmentUsecase.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	// Students must not see the answer key
	if role, _ := getUserRole(c); role == string(domain.RoleStudent) {
		for i := range assignment.Questions {
			assignment.Questions[i].CorrectOption = nil
			assignment.Questions[i].ExpectedAnswer = ""
			assignment.Questions[i].Explanation = ""
		}
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) GetCourseAssignments(c *gin.Context) {
	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	assignments, err := h.AssignmentUsecase.GetCourseAssignments(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func (h *Handler) AddQuestion(c *gin.Context) {
	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	if !h.verifyAssignmentOwnership(c, assignmentID) {
		return
	}

	var question domain.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if err := h.AssignmentUsecase.AddQuestion(c.Request.Context(), assignmentID, &question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *Handler) RemoveQuestion(c *gin.Context) {
	assignmentID := c.Param("id")
	questionID := c.Param("questionId")
	if assignmentID == "" || questionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID and question ID are required"})
		return
	}

	if !h.verifyAssignmentOwnership(c, assignmentID) {
		return
	}

	if err := h.AssignmentUsecase.RemoveQuestion(c.Request.Context(), assignmentID, questionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question removed successfully"})
}

// ========== SUBMISSION HANDLERS ==========

func (h *Handler) SubmitAssignment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	var req struct {
		SubmissionText string                 `json:"submission_text"`
		Attachments    []string               `json:"attachments"`
		Answers        []domain.StudentAnswer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	submission := &domain.Submission{
		AssignmentID:   assignmentID,
		UserID:         userID,
		SubmissionText: req.SubmissionText,
		Attachments:    req.Attachments,
	}

	result, err := h.SubmissionUsecase.Submit(c.Request.Context(), submission, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) ResubmitAssignment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	var req struct {
		SubmissionText string                 `json:"submission_text"`
		Attachments    []string               `json:"attachments"`
		Answers        []domain.StudentAnswer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	result, err := h.SubmissionUsecase.Resubmit(c.Request.Context(), assignmentID, userID, req.SubmissionText, req.Attachments, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetMySubmission(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	submission, err := h.SubmissionUsecase.GetStudentSubmission(c.Request.Context(), assignmentID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *Handler) GetAssignmentSubmissions(c *gin.Context) {
	assignmentID := c.Param("id")
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment ID is required"})
		return
	}

	if !h.verifyAssignmentOwnership(c, assignmentID) {
		return
	}

	submissions, err := h.SubmissionUsecase.GetAssignmentSubmissions(c.Request.Context(), assignmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"count":       len(submissions),
	})
}

func (h *Handler) GradeSubmission(c *gin.Context) {
	graderID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	submissionID := c.Param("id")
	if submissionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission ID is required"})
		return
	}

	if !h.verifySubmissionOwnership(c, submissionID) {
		return
	}

	var req struct {
		Points   *float64 `json:"points" binding:"required"`
		Feedback string   `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	submission, err := h.SubmissionUsecase.GradeSubmission(c.Request.Context(), submissionID, *req.Points, req.Feedback, graderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission graded successfully", "submission": submission})
}

func (h *Handler) ReturnSubmission(c *gin.Context) {
	graderID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	submissionID := c.Param("id")
	if submissionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission ID is required"})
		return
	}

	if !h.verifySubmissionOwnership(c, submissionID) {
		return
	}

	if err := h.SubmissionUsecase.ReturnSubmission(c.Request.Context(), submissionID, graderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission returned to student"})
}

// ========== ATTENDANCE HANDLERS ==========

func (h *Handler) CreateAttendanceSession(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var session domain.AttendanceSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if session.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if _, ok := h.verifyCourseOwnership(c, session.CourseID); !ok {
		return
	}

	session.CreatedByID = userID

	if err := h.AttendanceUsecase.CreateSession(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *Handler) GetCourseSessions(c *gin.Context) {
	courseID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	sessions, err := h.AttendanceUsecase.GetCourseSessions(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *Handler) MarkAttendance(c *gin.Context) {
	markedByID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var req struct {
		Records []struct {
			UserID uint   `json:"user_id" binding:"required"`
			Status string `json:"status" binding:"required"`
			Note   string `json:"note"`
		} `json:"records" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	marked := 0
	for _, r := range req.Records {
		err := h.AttendanceUsecase.MarkAttendance(c.Request.Context(), sessionID, r.UserID,
			domain.AttendanceStatus(r.Status), r.Note, markedByID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "marked": marked})
			return
		}
		marked++
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance marked successfully", "marked": marked})
}

func (h *Handler) GetSessionRecords(c *gin.Context) {
	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	records, err := h.AttendanceUsecase.GetSessionRecords(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}

func (h *Handler) GetMyAttendanceSummary(c *gin.Context) {
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

	summary, err := h.AttendanceUsecase.GetStudentSummary(c.Request.Context(), userID, courseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
