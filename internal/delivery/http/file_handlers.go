package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FileHandler serves lecture content and submission attachments from GridFS.
type FileHandler struct {
	files         repository.FileRepository
	courseUsecase domain.CourseUsecase
}

func NewFileHandler(files repository.FileRepository, cu domain.CourseUsecase) *FileHandler {
	return &FileHandler{files: files, courseUsecase: cu}
}

// UploadFile stores a file in GridFS. The kind form field says whether it
// is lecture content or a submission attachment.
func (h *FileHandler) UploadFile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	kind := c.PostForm("kind")
	if kind == "" {
		kind = repository.FileKindAttachment
	}
	if kind != repository.FileKindLecture && kind != repository.FileKindAttachment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'lecture' or 'attachment'"})
		return
	}

	// Lecture content can only be uploaded by staff
	if kind == repository.FileKindLecture {
		role, _ := getUserRole(c)
		if role != string(domain.RoleInstructor) && role != string(domain.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only instructors can upload lecture content"})
			return
		}
	}

	var courseID uint
	if v, err := parseUintForm(c, "course_id"); err == nil {
		courseID = v
	}

	metadata := repository.FileMetadata{
		UploadedBy:   userID,
		Kind:         kind,
		CourseID:     courseID,
		ModuleID:     c.PostForm("module_id"),
		AssignmentID: c.PostForm("assignment_id"),
	}

	fileInfo, err := h.files.Upload(c.Request.Context(), file, header, metadata)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file": gin.H{
			"id":           fileInfo.ID,
			"filename":     fileInfo.Filename,
			"content_type": fileInfo.ContentType,
			"size":         fileInfo.Size,
			"upload_date":  fileInfo.UploadDate,
		},
	})
}

// StreamFile streams a file, verifying course enrollment for lecture
// content tied to a course.
func (h *FileHandler) StreamFile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File ID is required"})
		return
	}

	fileInfo, err := h.files.GetFileInfo(c.Request.Context(), fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if fileInfo.Metadata.CourseID > 0 {
		role, _ := getUserRole(c)
		if role != string(domain.RoleInstructor) && role != string(domain.RoleAdmin) {
			detail, err := h.courseUsecase.GetCourseDetails(c.Request.Context(), fileInfo.Metadata.CourseID, &userID)
			if err != nil || !detail.IsEnrolled {
				c.JSON(http.StatusForbidden, gin.H{"error": "You must be enrolled in this course"})
				return
			}
		}
	}

	stream, _, err := h.files.Download(c.Request.Context(), fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", fileInfo.ContentType)
	c.Header("Content-Length", fmt.Sprintf("%d", fileInfo.Size))

	if fileInfo.ContentType == "application/pdf" || fileInfo.ContentType == "video/mp4" {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", fileInfo.Metadata.OriginalName))
	} else {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileInfo.Metadata.OriginalName))
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Headers already sent, nothing to return to the client
		logrus.WithError(err).WithField("file_id", fileID).Error("failed streaming file")
	}
}

func (h *FileHandler) GetFileInfo(c *gin.Context) {
	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File ID is required"})
		return
	}

	fileInfo, err := h.files.GetFileInfo(c.Request.Context(), fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            fileInfo.ID,
		"filename":      fileInfo.Filename,
		"original_name": fileInfo.Metadata.OriginalName,
		"content_type":  fileInfo.ContentType,
		"size":          fileInfo.Size,
		"upload_date":   fileInfo.UploadDate,
		"kind":          fileInfo.Metadata.Kind,
	})
}

func (h *FileHandler) DeleteFile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File ID is required"})
		return
	}

	fileInfo, err := h.files.GetFileInfo(c.Request.Context(), fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	// Owner or admin only
	if fileInfo.Metadata.UploadedBy != userID {
		role, _ := getUserRole(c)
		if role != string(domain.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own files"})
			return
		}
	}

	if err := h.files.Delete(c.Request.Context(), fileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
