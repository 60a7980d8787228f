package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Word represents a single word with time info
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment represents a contiguous speech segment with word-level timestamps.
// Segments are ordered by Start; word spans are non-decreasing within a
// segment and non-overlapping.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words"`
}

// Transcript is the stored transcript model
type Transcript struct {
	ID              uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID     uuid.UUID                                  `json:"interview_id" gorm:"type:uuid;not null;index"`
	FullText        string                                     `json:"full_text" gorm:"type:text"`
	Segments        []Segment                                  `json:"segments,omitempty" gorm:"type:jsonb;serializer:json"`
	Language        string                                     `json:"language,omitempty" gorm:"type:varchar(20)"`
	ConfidenceScore float64                                    `json:"confidence_score,omitempty"`
	ModelUsed       string                                     `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	RawData         datatypes.JSONType[map[string]interface{}] `json:"raw_data,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(interviewID uuid.UUID) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		InterviewID: interviewID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// Duration returns the span from the first segment's start to the last
// segment's end, or 0 when there are no segments.
func (t *Transcript) Duration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].End - t.Segments[0].Start
}

// WordCount returns the total word count across all segments
func (t *Transcript) WordCount() int {
	total := 0
	for _, seg := range t.Segments {
		total += len(seg.Words)
	}
	return total
}
