package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	PG    *gorm.DB
	Mongo *mongo.Database
}

func ConnectDB() *Database {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using system environment variables")
	}

	// 1. PostgreSQL connection
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	pgDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	// 2. MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoURI := os.Getenv("MONGO_URI")
	clientOptions := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}

	mongoDB := mongoClient.Database(os.Getenv("MONGO_DB_NAME"))

	logrus.Info("connected to PostgreSQL and MongoDB")

	return &Database{
		PG:    pgDB,
		Mongo: mongoDB,
	}
}

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Enrollment{},
		&domain.AttendanceSession{},
		&domain.AttendanceRecord{},
		&domain.Certificate{},
	)
	if err != nil {
		return err
	}
	logrus.Info("database migration completed")
	return nil
}
