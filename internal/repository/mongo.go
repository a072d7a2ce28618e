package repository

import (
	"context"
	"errors"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ========== MODULE REPOSITORY ==========

type moduleRepo struct {
	db *mongo.Database
}

func NewModuleRepository(db *mongo.Database) domain.ModuleRepository {
	return &moduleRepo{db}
}

func (r *moduleRepo) Create(ctx context.Context, module *domain.Module) error {
	res, err := r.db.Collection("modules").InsertOne(ctx, module)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		module.ID = oid.Hex()
	}
	return nil
}

func (r *moduleRepo) GetByID(ctx context.Context, moduleID string) (*domain.Module, error) {
	objID, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return nil, errors.New("invalid module id")
	}

	var module domain.Module
	err = r.db.Collection("modules").FindOne(ctx, bson.M{"_id": objID}).Decode(&module)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Module, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.db.Collection("modules").Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []domain.Module
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepo) Update(ctx context.Context, module *domain.Module) error {
	objID, err := primitive.ObjectIDFromHex(module.ID)
	if err != nil {
		return errors.New("invalid module id")
	}

	update := bson.M{"$set": bson.M{
		"title":       module.Title,
		"description": module.Description,
		"order":       module.Order,
		"lectures":    module.Lectures,
	}}
	_, err = r.db.Collection("modules").UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}

func (r *moduleRepo) Delete(ctx context.Context, moduleID string) error {
	objID, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return errors.New("invalid module id")
	}
	_, err = r.db.Collection("modules").DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (r *moduleRepo) DeleteByCourseID(ctx context.Context, courseID uint) error {
	_, err := r.db.Collection("modules").DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}

// ========== PROGRESS REPOSITORY ==========

type progressRepo struct {
	db *mongo.Database
}

func NewProgressRepository(db *mongo.Database) domain.ProgressRepository {
	return &progressRepo{db}
}

func (r *progressRepo) Create(ctx context.Context, progress *domain.CourseProgress) error {
	res, err := r.db.Collection("course_progress").InsertOne(ctx, progress)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		progress.ID = oid.Hex()
	}
	return nil
}

func (r *progressRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.CourseProgress, error) {
	filter := bson.M{"user_id": userID, "course_id": courseID}

	var progress domain.CourseProgress
	err := r.db.Collection("course_progress").FindOne(ctx, filter).Decode(&progress)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Replace overwrites the whole document in one write, keeping the
// read-modify-write cycle a single atomic persist per record.
func (r *progressRepo) Replace(ctx context.Context, progress *domain.CourseProgress) error {
	filter := bson.M{"user_id": progress.UserID, "course_id": progress.CourseID}

	update := bson.M{"$set": bson.M{
		"modules_progress":         progress.Modules,
		"completed_lectures_count": progress.CompletedLecturesCount,
		"total_lectures_count":     progress.TotalLecturesCount,
		"progress_percentage":      progress.ProgressPercentage,
		"completed":                progress.Completed,
		"completed_at":             progress.CompletedAt,
		"updated_at":               progress.UpdatedAt,
	}}
	_, err := r.db.Collection("course_progress").UpdateOne(ctx, filter, update)
	return err
}

func (r *progressRepo) Delete(ctx context.Context, userID, courseID uint) error {
	_, err := r.db.Collection("course_progress").DeleteOne(ctx, bson.M{"user_id": userID, "course_id": courseID})
	return err
}

// ========== ASSIGNMENT REPOSITORY ==========

type assignmentRepo struct {
	db *mongo.Database
}

func NewAssignmentRepository(db *mongo.Database) domain.AssignmentRepository {
	return &assignmentRepo{db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) error {
	res, err := r.db.Collection("assignments").InsertOne(ctx, assignment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		assignment.ID = oid.Hex()
	}
	return nil
}

func (r *assignmentRepo) GetByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	objID, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return nil, errors.New("invalid assignment id")
	}

	var assignment domain.Assignment
	err = r.db.Collection("assignments").FindOne(ctx, bson.M{"_id": objID}).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection("assignments").Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []domain.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *domain.Assignment) error {
	objID, err := primitive.ObjectIDFromHex(assignment.ID)
	if err != nil {
		return errors.New("invalid assignment id")
	}

	update := bson.M{"$set": bson.M{
		"title":         assignment.Title,
		"description":   assignment.Description,
		"total_points":  assignment.TotalPoints,
		"due_date":      assignment.DueDate,
		"quiz_settings": assignment.QuizSettings,
		"questions":     assignment.Questions,
		"updated_at":    assignment.UpdatedAt,
	}}
	_, err = r.db.Collection("assignments").UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}

func (r *assignmentRepo) Delete(ctx context.Context, assignmentID string) error {
	objID, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return errors.New("invalid assignment id")
	}
	_, err = r.db.Collection("assignments").DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// ========== SUBMISSION REPOSITORY ==========

type submissionRepo struct {
	db *mongo.Database
}

func NewSubmissionRepository(db *mongo.Database) domain.SubmissionRepository {
	return &submissionRepo{db}
}

func (r *submissionRepo) Create(ctx context.Context, submission *domain.Submission) error {
	res, err := r.db.Collection("submissions").InsertOne(ctx, submission)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		submission.ID = oid.Hex()
	}
	return nil
}

func (r *submissionRepo) GetByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	objID, err := primitive.ObjectIDFromHex(submissionID)
	if err != nil {
		return nil, errors.New("invalid submission id")
	}

	var submission domain.Submission
	err = r.db.Collection("submissions").FindOne(ctx, bson.M{"_id": objID}).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) GetByAssignmentAndUser(ctx context.Context, assignmentID string, userID uint) (*domain.Submission, error) {
	filter := bson.M{"assignment_id": assignmentID, "user_id": userID}

	var submission domain.Submission
	err := r.db.Collection("submissions").FindOne(ctx, filter).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) GetByAssignmentID(ctx context.Context, assignmentID string) ([]domain.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.db.Collection("submissions").Find(ctx, bson.M{"assignment_id": assignmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []domain.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepo) GetRecentGradedByUserID(ctx context.Context, userID uint, limit int) ([]domain.Submission, error) {
	filter := bson.M{"user_id": userID, "grade": bson.M{"$ne": nil}}
	opts := options.Find().
		SetSort(bson.D{{Key: "grade.graded_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection("submissions").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []domain.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepo) Replace(ctx context.Context, submission *domain.Submission) error {
	objID, err := primitive.ObjectIDFromHex(submission.ID)
	if err != nil {
		return errors.New("invalid submission id")
	}

	update := bson.M{"$set": bson.M{
		"submission_text":    submission.SubmissionText,
		"attachments":        submission.Attachments,
		"quiz_answers":       submission.QuizAnswers,
		"grade":              submission.Grade,
		"status":             submission.Status,
		"history":            submission.History,
		"resubmission_count": submission.ResubmissionCount,
		"updated_at":         submission.UpdatedAt,
	}}
	_, err = r.db.Collection("submissions").UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}
