package handler

import (
	"errors"
	"net/http"
	"strconv"

	"civictrack/backend/internal/complaint"
	"civictrack/backend/internal/models"
	"civictrack/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// respondError переводить помилки сервісного шару у HTTP-відповіді.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
	case errors.Is(err, storage.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Complaint was modified concurrently, retry"})
	case errors.Is(err, complaint.ErrUnknownStatus), errors.Is(err, complaint.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// CreateComplaint приймає нову скаргу від порталу громадян.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var payload models.Complaint
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint payload"})
		return
	}

	created, err := h.Complaints.Create(&payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetComplaints повертає скарги, ранжовані для координати глядача.
func (h *Handler) GetComplaints(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	scored, err := h.Complaints.GetSortedComplaints(lat, lon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scored)
}

// GetAdminView повертає скарги, ранжовані за адміністративним
// пріоритетом.
func (h *Handler) GetAdminView(c *gin.Context) {
	scored, err := h.Complaints.GetAdminSortedComplaints()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scored)
}

// FindSimilar перевіряє чернетку скарги на ймовірні дублікати перед
// поданням.
func (h *Handler) FindSimilar(c *gin.Context) {
	var payload models.Complaint
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint payload"})
		return
	}

	matches, err := h.Matcher.FindSimilar(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// UpvoteComplaint додає голос до скарги.
func (h *Handler) UpvoteComplaint(c *gin.Context) {
	updated, err := h.Complaints.Upvote(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AddFeedback зберігає оцінку громадянина після вирішення.
func (h *Handler) AddFeedback(c *gin.Context) {
	var payload models.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback payload"})
		return
	}

	updated, err := h.Complaints.AddFeedback(c.Param("id"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AssignEmployee призначає працівника на скаргу.
func (h *Handler) AssignEmployee(c *gin.Context) {
	var payload models.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee payload"})
		return
	}

	updated, err := h.Complaints.AssignEmployee(c.Param("id"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ResolveComplaint закриває скаргу з фотопідтвердженням.
func (h *Handler) ResolveComplaint(c *gin.Context) {
	var payload models.ResolveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resolve payload"})
		return
	}

	updated, err := h.Complaints.Resolve(c.Param("id"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateStatus змінює статус скарги (наприклад, повторне відкриття).
func (h *Handler) UpdateStatus(c *gin.Context) {
	var payload models.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
		return
	}

	updated, err := h.Complaints.UpdateStatus(c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
