package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"civictrack/backend/internal/config"
	"civictrack/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EventChannel - канал Redis Pub/Sub для подій життєвого циклу скарг.
const EventChannel = "complaint_events"

var (
	// ErrNotFound means the complaint identifier does not exist.
	ErrNotFound = errors.New("complaint not found")
	// ErrVersionConflict means a concurrent update won the race; the
	// caller saw a stale version of the row.
	ErrVersionConflict = errors.New("complaint was modified concurrently")
)

type Storage interface {
	SaveComplaint(complaint *models.Complaint) error
	FindComplaintByID(id string) (*models.Complaint, error)
	GetAllComplaints() ([]models.Complaint, error)
	FindSimilarWithinRadius(lat, lon float64, category string) ([]models.Complaint, error)
	UpdateComplaintFields(id string, version int, fields map[string]interface{}) error

	PublishEvent(event models.ComplaintEvent) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveComplaint зберігає нову скаргу в PostgreSQL.
// Статус за замовчуванням - "active", як і кількість голосів 1
// (виставляється хуком BeforeCreate).
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusActive
	}

	result := s.DB.Create(complaint)

	if result.Error != nil {
		log.Printf("ERROR: Failed to save complaint (category %s): %v", complaint.Category, result.Error)
		return result.Error
	}

	return nil
}

// FindComplaintByID повертає скаргу за її ID або ErrNotFound.
func (s *Service) FindComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint

	err := s.DB.Where("id = ?", id).First(&complaint).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to find complaint %s: %v", id, err)
		return nil, err
	}

	return &complaint, nil
}

// GetAllComplaints повертає всі скарги без певного порядку.
// Ранжування виконується в пам'яті сервісом скарг.
func (s *Service) GetAllComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint

	if err := s.DB.Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to retrieve complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

// FindSimilarWithinRadius повертає активні скарги тієї ж категорії в
// радіусі 500 метрів від точки. Відстань рахує геопросторовий індекс
// PostGIS, а не застосунок.
func (s *Service) FindSimilarWithinRadius(lat, lon float64, category string) ([]models.Complaint, error) {
	rawSQL := `
        SELECT *
        FROM complaints
        WHERE ST_DWithin(
                  ST_MakePoint(longitude, latitude)::geography,
                  ST_MakePoint(?, ?)::geography,
                  ?)
          AND category = ?
          AND status = 'active'
    `

	var complaints []models.Complaint

	err := s.DB.Raw(rawSQL, lon, lat, config.SimilarityRadiusM, category).Scan(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed radius query for category %s: %v", category, err)
		return nil, err
	}

	return complaints, nil
}

// UpdateComplaintFields виконує частковий запис колонок з перевіркою
// оптимістичної версії. Якщо рядок під цією версією вже не існує -
// хтось оновив його паралельно, і виклик повертає ErrVersionConflict.
func (s *Service) UpdateComplaintFields(id string, version int, fields map[string]interface{}) error {
	fields["version"] = gorm.Expr("version + 1")

	result := s.DB.Model(&models.Complaint{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)

	if result.Error != nil {
		log.Printf("ERROR: Failed to update complaint %s: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// PublishEvent публікує подію життєвого циклу в Redis Pub/Sub.
// Адмін CLI працює без Redis, тому nil-клієнт просто пропускає подію.
func (s *Service) PublishEvent(event models.ComplaintEvent) error {
	if s.Redis == nil {
		return nil
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, EventChannel, string(eventBytes)).Err(); err != nil {
		return err
	}

	return nil
}

// SubscribeEvents підписується на канал подій для трансляції
// адмін-панелям через WebSocket.
func (s *Service) SubscribeEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, EventChannel)
}
