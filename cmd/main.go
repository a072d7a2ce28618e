package main

import (
	"context"
	"os"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/config"
	httpDelivery "github.com/Cedric-Kasera/api.stickrhiveacademy/internal/delivery/http"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/repository"
	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	config.InitLogger()

	db := config.ConnectDB()
	postgres := db.PG
	mongo := db.Mongo

	if err := config.AutoMigrate(postgres); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	// Repositories
	userRepo := repository.NewUserRepository(postgres)
	courseRepo := repository.NewCourseRepository(postgres)
	enrollmentRepo := repository.NewEnrollmentRepository(postgres)
	attendanceRepo := repository.NewAttendanceRepository(postgres)
	certRepo := repository.NewCertificateRepository(postgres)
	moduleRepo := repository.NewModuleRepository(mongo)
	progressRepo := repository.NewProgressRepository(mongo)
	assignmentRepo := repository.NewAssignmentRepository(mongo)
	submissionRepo := repository.NewSubmissionRepository(mongo)
	fileRepo, err := repository.NewFileRepository(mongo)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize file storage")
	}

	// Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, moduleRepo, enrollmentRepo, progressRepo)
	progressUsecase := usecase.NewProgressUsecase(moduleRepo, progressRepo, enrollmentRepo, certRepo, userRepo, courseRepo)
	assignmentUsecase := usecase.NewAssignmentUsecase(assignmentRepo, courseRepo)
	submissionUsecase := usecase.NewSubmissionUsecase(assignmentRepo, submissionRepo, enrollmentRepo, userRepo)
	attendanceUsecase := usecase.NewAttendanceUsecase(attendanceRepo, courseRepo, enrollmentRepo)
	certUsecase := usecase.NewCertificateUsecase(certRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(userRepo, enrollmentRepo, progressRepo, submissionRepo, assignmentRepo, certRepo)

	seedUsers(authUsecase)

	// Handlers
	apiHandler := httpDelivery.NewHandler(
		authUsecase,
		courseUsecase,
		progressUsecase,
		assignmentUsecase,
		submissionUsecase,
		attendanceUsecase,
		certUsecase,
		dashboardUsecase,
	)
	fileHandler := httpDelivery.NewFileHandler(fileRepo, courseUsecase)

	router := httpDelivery.InitRouter(apiHandler, fileHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("server starting")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

func seedUsers(authUsecase domain.AuthUsecase) {
	if os.Getenv("SEED_DEMO_USERS") != "true" {
		return
	}

	demo := []*domain.User{
		{
			Name:     "Demo Student",
			Email:    "student@stickrhive.academy",
			Password: "password123",
			Role:     domain.RoleStudent,
		},
		{
			Name:     "Demo Instructor",
			Email:    "instructor@stickrhive.academy",
			Password: "password123",
			Role:     domain.RoleInstructor,
		},
	}

	for _, u := range demo {
		err := authUsecase.Register(context.Background(), u)
		if err != nil && err.Error() != "email already exists" {
			logrus.WithError(err).WithField("email", u.Email).Warn("failed to seed user")
		}
	}
}
