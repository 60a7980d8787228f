package interview

import (
	"time"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// InterviewResponse represents an interview in API responses
type InterviewResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	HasResume   bool      `json:"has_resume"`
	HasAudio    bool      `json:"has_audio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListInterviewsResponse is a paginated interview listing
type ListInterviewsResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// RecordingListResponse lists the stored recording object keys for an
// interview
type RecordingListResponse struct {
	ObjectKeys []string `json:"object_keys"`
}

// FromEntity converts an interview entity to its API representation
func FromEntity(e *entities.Interview) InterviewResponse {
	return InterviewResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		HasResume:   e.ResumeText != "",
		HasAudio:    e.AudioObjectKey != "",
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
