package similarity_test

import (
	"civictrack/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) FindComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) GetAllComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) FindSimilarWithinRadius(lat, lon float64, category string) ([]models.Complaint, error) {
	args := m.Called(lat, lon, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) UpdateComplaintFields(id string, version int, fields map[string]interface{}) error {
	args := m.Called(id, version, fields)
	return args.Error(0)
}

func (m *MockStorage) PublishEvent(event models.ComplaintEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
