package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interview represents one practice interview session owned by a candidate
type Interview struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null;index"`
	Description    string    `json:"description,omitempty" gorm:"type:text"`
	ResumeText     string    `json:"resume_text,omitempty" gorm:"type:text"`
	AudioObjectKey string    `json:"audio_object_key,omitempty" gorm:"type:varchar(512)"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Interview) TableName() string {
	return "interviews"
}

// NewInterview creates a new interview entity
func NewInterview(title string) *Interview {
	return &Interview{
		ID:    uuid.New(),
		Title: title,
	}
}

// SessionReport stores the full analysis output for one processed session.
// The individual reports are kept as jsonb so the API can return them
// without re-running the pipeline.
type SessionReport struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;index"`

	Relevance datatypes.JSON `json:"relevance,omitempty" gorm:"type:jsonb"`
	Speech    datatypes.JSON `json:"speech,omitempty" gorm:"type:jsonb"`
	Prosody   datatypes.JSON `json:"prosody,omitempty" gorm:"type:jsonb"`
	Feedback  datatypes.JSON `json:"feedback,omitempty" gorm:"type:jsonb"`
	Metrics   datatypes.JSON `json:"metrics,omitempty" gorm:"type:jsonb"`

	FinalScore float64        `json:"final_score"`
	Components datatypes.JSON `json:"components,omitempty" gorm:"type:jsonb"`

	// ProsodyError carries the feature-extraction failure message when the
	// stability analysis was unavailable; the rest of the report is still
	// valid in that case.
	ProsodyError string `json:"prosody_error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SessionReport) TableName() string {
	return "session_reports"
}

// NewSessionReport creates a new session report entity
func NewSessionReport(interviewID uuid.UUID) *SessionReport {
	return &SessionReport{
		ID:          uuid.New(),
		InterviewID: interviewID,
	}
}
