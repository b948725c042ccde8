package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"civictrack/backend/internal/api/handler"
	"civictrack/backend/internal/complaint"
	"civictrack/backend/internal/models"
	"civictrack/backend/internal/similarity"
	"civictrack/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL (потрібне розширення PostGIS для радіусних запитів)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: "",
		DB:       0,
	})

	// Перевірка з'єднання Redis
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Міграції (Створення таблиць)
	err = db.AutoMigrate(
		&models.Complaint{},
	)
	if err != nil {
		// Якщо міграція не спрацювала, зупиняємо додаток
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting CivicTrack Backend...")

	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Ініціалізація сервісів
	complaints := complaint.NewService(s)
	matcher := similarity.NewService(s)

	// 3. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(complaints, matcher, s)

	// Роути
	api := r.Group("/api/complaints")
	{
		api.POST("", h.CreateComplaint)          // Подання нової скарги
		api.GET("", h.GetComplaints)             // Список для громадянина (?lat=&lon=)
		api.GET("/admin-view", h.GetAdminView)   // Список за адмін-пріоритетом
		api.POST("/find-similar", h.FindSimilar) // Пошук дублікатів перед поданням

		api.PATCH("/:id/upvote", h.UpvoteComplaint)
		api.POST("/:id/feedback", h.AddFeedback)
		api.PATCH("/:id/assign", h.AssignEmployee)
		api.PATCH("/:id/resolve", h.ResolveComplaint)
		api.PATCH("/:id/status", h.UpdateStatus)
	}

	r.GET("/ws/events", h.ServeEventFeed) // Стрічка подій для адмін-панелі

	// Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
