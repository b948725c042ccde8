package handler

import (
	"civictrack/backend/internal/complaint"
	"civictrack/backend/internal/similarity"
	"civictrack/backend/internal/storage"
)

// Handler містить посилання на сервіси скарг
type Handler struct {
	Complaints *complaint.Service
	Matcher    *similarity.Service
	Storage    *storage.Service
}

func NewHandler(complaints *complaint.Service, matcher *similarity.Service, s *storage.Service) *Handler {
	return &Handler{
		Complaints: complaints,
		Matcher:    matcher,
		Storage:    s,
	}
}
