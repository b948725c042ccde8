// Package complaint provides the core logic for handling citizen
// complaints: creation, ranked listings, and the triage mutations
// performed by administrators.
package complaint

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"civictrack/backend/internal/models"
	"civictrack/backend/internal/scoring"
	"civictrack/backend/internal/storage"

	"github.com/lib/pq"
)

var (
	// ErrUnknownStatus means the caller supplied a status string that
	// is not part of the lifecycle.
	ErrUnknownStatus = errors.New("unknown complaint status")
	// ErrInvalidTransition means the requested status change is not in
	// the transition table.
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Create files a new complaint. Identifier, creation timestamp and the
// initial upvote are assigned server-side; whatever the client sent in
// those fields is discarded.
func (s *Service) Create(complaint *models.Complaint) (*models.Complaint, error) {
	complaint.ID = ""
	complaint.CreatedAt = time.Time{}
	complaint.ResolvedAt = nil
	complaint.Upvotes = 0
	complaint.Version = 0
	complaint.StatusHistory = nil

	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return nil, err
	}

	s.publish(complaint, "created")
	return complaint, nil
}

// GetSortedComplaints returns every complaint scored for the given
// viewer location and sorted by citizen relevance, best first.
// Ties keep the order the store returned.
func (s *Service) GetSortedComplaints(viewerLat, viewerLon float64) ([]models.ScoredComplaint, error) {
	return s.rankedListing(viewerLat, viewerLon, func(a, b models.ScoredComplaint) bool {
		return a.CitizenScore > b.CitizenScore
	})
}

// GetAdminSortedComplaints returns every complaint sorted by admin
// priority. Administrators have no single location, so the proximity
// component is disabled via the zero viewer coordinate.
func (s *Service) GetAdminSortedComplaints() ([]models.ScoredComplaint, error) {
	return s.rankedListing(0, 0, func(a, b models.ScoredComplaint) bool {
		return a.AdminScore > b.AdminScore
	})
}

func (s *Service) rankedListing(viewerLat, viewerLon float64, less func(a, b models.ScoredComplaint) bool) ([]models.ScoredComplaint, error) {
	complaints, err := s.Storage.GetAllComplaints()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	scored := make([]models.ScoredComplaint, 0, len(complaints))
	for _, c := range complaints {
		scored = append(scored, scoring.Score(c, viewerLat, viewerLon, now))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return less(scored[i], scored[j])
	})
	return scored, nil
}

// Upvote adds one vote to the complaint and returns the updated row.
func (s *Service) Upvote(id string) (*models.Complaint, error) {
	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"upvotes": complaint.Upvotes + 1,
	}
	if err := s.Storage.UpdateComplaintFields(id, complaint.Version, fields); err != nil {
		return nil, err
	}

	updated, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}
	s.publish(updated, "upvoted")
	return updated, nil
}

// AddFeedback records the reporter's satisfaction answers.
func (s *Service) AddFeedback(id string, feedback models.FeedbackRequest) (*models.Complaint, error) {
	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"satisfied_with_work":  feedback.SatisfiedWithWork,
		"satisfied_with_speed": feedback.SatisfiedWithSpeed,
	}
	if err := s.Storage.UpdateComplaintFields(id, complaint.Version, fields); err != nil {
		return nil, err
	}

	updated, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}
	s.publish(updated, "feedback")
	return updated, nil
}

// AssignEmployee puts a municipal employee on the complaint and moves
// it to In Progress. Re-assigning a complaint already In Progress only
// swaps the employee.
func (s *Service) AssignEmployee(id string, employee models.EmployeeRequest) (*models.Complaint, error) {
	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"assigned_employee_name":    employee.Name,
		"assigned_employee_contact": employee.Contact,
	}
	if complaint.Status != models.StatusInProgress {
		if !complaint.Status.CanTransition(models.StatusInProgress) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, models.StatusInProgress)
		}
		fields["status"] = models.StatusInProgress
		fields["status_history"] = historyWith(complaint, models.StatusInProgress)
	}

	if err := s.Storage.UpdateComplaintFields(id, complaint.Version, fields); err != nil {
		return nil, err
	}

	updated, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}
	s.publish(updated, "assigned")
	return updated, nil
}

// Resolve closes the complaint with photographic proof of the work.
// The resolution timestamp is stamped the first time only; a complaint
// resolved again after reopening keeps its original timestamp.
func (s *Service) Resolve(id string, resolve models.ResolveRequest) (*models.Complaint, error) {
	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}

	if !complaint.Status.CanTransition(models.StatusResolved) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, models.StatusResolved)
	}

	fields := map[string]interface{}{
		"resolved_image_url": resolve.ResolvedImageURL,
		"status":             models.StatusResolved,
		"status_history":     historyWith(complaint, models.StatusResolved),
	}
	if complaint.ResolvedAt == nil {
		fields["resolved_at"] = time.Now()
	}

	if err := s.Storage.UpdateComplaintFields(id, complaint.Version, fields); err != nil {
		return nil, err
	}

	updated, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}
	s.publish(updated, "resolved")
	return updated, nil
}

// UpdateStatus applies a caller-requested status change, checked
// against the transition table.
func (s *Service) UpdateStatus(id string, statusValue string) (*models.Complaint, error) {
	next, ok := models.ParseStatus(statusValue)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, statusValue)
	}

	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}

	if !complaint.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, next)
	}

	fields := map[string]interface{}{
		"status":         next,
		"status_history": historyWith(complaint, next),
	}
	if err := s.Storage.UpdateComplaintFields(id, complaint.Version, fields); err != nil {
		return nil, err
	}

	updated, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return nil, err
	}
	s.publish(updated, "status")
	return updated, nil
}

// historyWith будує новий запис історії "з->до", не змінюючи слайс
// оригінальної скарги.
func historyWith(complaint *models.Complaint, next models.Status) pq.StringArray {
	history := make(pq.StringArray, 0, len(complaint.StatusHistory)+1)
	history = append(history, complaint.StatusHistory...)
	history = append(history, fmt.Sprintf("%s->%s", complaint.Status, next))
	return history
}

// publish надсилає подію в Redis. Помилка публікації не зриває саму
// мутацію - стрічка подій є допоміжною.
func (s *Service) publish(complaint *models.Complaint, eventType string) {
	event := models.ComplaintEvent{
		ComplaintID: complaint.ID,
		Type:        eventType,
		Status:      complaint.Status,
		Category:    complaint.Category,
		OccurredAt:  time.Now(),
	}
	if err := s.Storage.PublishEvent(event); err != nil {
		log.Printf("ERROR: Failed to publish %s event for complaint %s: %v", eventType, complaint.ID, err)
	}
}
