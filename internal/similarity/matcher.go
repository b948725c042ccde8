// Package similarity detects likely-duplicate complaints before a new
// one is filed, so redundant reports can be upvoted instead of refiled.
package similarity

import (
	"civictrack/backend/internal/config"
	"civictrack/backend/internal/models"
	"civictrack/backend/internal/storage"

	"github.com/xrash/smetrics"
)

// Service runs the two-stage duplicate filter: a cheap geospatial and
// category pre-filter in the store, then pairwise text comparison of
// the survivors.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new similarity matcher.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// FindSimilar returns active same-category complaints within 500 m of
// the candidate whose descriptions read like the candidate's.
// A candidate without coordinates or category cannot be matched; the
// store is not queried and the result is empty.
func (s *Service) FindSimilar(candidate models.Complaint) ([]models.Complaint, error) {
	if candidate.Latitude == nil || candidate.Longitude == nil || candidate.Category == "" {
		return []models.Complaint{}, nil
	}

	nearby, err := s.Storage.FindSimilarWithinRadius(*candidate.Latitude, *candidate.Longitude, candidate.Category)
	if err != nil {
		return nil, err
	}

	// Зберігаємо порядок, у якому записи повернуло сховище.
	matches := []models.Complaint{}
	for _, existing := range nearby {
		score := smetrics.JaroWinkler(candidate.Description, existing.Description, 0.7, 4)
		if score > config.SimilarityThreshold {
			matches = append(matches, existing)
		}
	}

	return matches, nil
}
