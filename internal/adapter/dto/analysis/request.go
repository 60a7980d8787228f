package analysis

import (
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// WordDTO is a single transcribed word with its time span
type WordDTO struct {
	Word  string  `json:"word" validate:"required"`
	Start float64 `json:"start" validate:"gte=0"`
	End   float64 `json:"end" validate:"gtefield=Start"`
}

// SegmentDTO is a contiguous speech segment with word-level timestamps
type SegmentDTO struct {
	Start float64   `json:"start" validate:"gte=0"`
	End   float64   `json:"end" validate:"gtefield=Start"`
	Text  string    `json:"text"`
	Words []WordDTO `json:"words" validate:"dive"`
}

// TranscriptDTO carries the transcript payload shared by the analysis endpoints
type TranscriptDTO struct {
	FullText string       `json:"full_text"`
	Segments []SegmentDTO `json:"segments" validate:"required,min=1,dive"`
}

// SessionMetricsDTO is the flat metric record consumed by scoring endpoints
type SessionMetricsDTO struct {
	OverallRelevance               float64 `json:"overall_relevance" validate:"gte=0,lte=1"`
	OverallEmotionalStabilityScore float64 `json:"overall_emotional_stability_score" validate:"gte=0,lte=1"`
	SpeakingRateWPM                float64 `json:"speaking_rate_wpm" validate:"gte=0"`
	FillerWordsCount               int     `json:"filler_words_count" validate:"gte=0"`
	DurationSeconds                float64 `json:"duration_seconds" validate:"gte=0"`
}

// RelevanceRequest asks for relevance/drift/redundancy analysis of a
// transcript against a resume
type RelevanceRequest struct {
	Transcript TranscriptDTO `json:"transcript" validate:"required"`
	ResumeText string        `json:"resume_text" validate:"required"`
}

// SpeechRequest asks for speech pattern analysis of a transcript
type SpeechRequest struct {
	Transcript TranscriptDTO `json:"transcript" validate:"required"`
}

// ProsodyRequest asks for prosody stability analysis of raw samples
type ProsodyRequest struct {
	Samples    []float64    `json:"samples" validate:"required,min=1"`
	SampleRate int          `json:"sample_rate" validate:"required,gt=0"`
	Segments   []SegmentDTO `json:"segments" validate:"required,min=1,dive"`
}

// ScoreRequest asks for a weighted session score
type ScoreRequest struct {
	Metrics SessionMetricsDTO `json:"metrics" validate:"required"`
}

// CompareRequest asks for a trend between the current and an optional
// previous session
type CompareRequest struct {
	Current  SessionMetricsDTO  `json:"current" validate:"required"`
	Previous *SessionMetricsDTO `json:"previous,omitempty"`
}

// FeedbackRequest asks for feedback synthesis from session metrics
type FeedbackRequest struct {
	SpeechMetrics  SpeechMetricsDTO `json:"speech_metrics" validate:"required"`
	SemanticScore  float64          `json:"semantic_score" validate:"gte=0,lte=1"`
	StabilityScore float64          `json:"stability_score" validate:"gte=0,lte=1"`
}

// SpeechMetricsDTO mirrors the speech analyzer output for feedback requests
type SpeechMetricsDTO struct {
	SpeakingRateWPM float64             `json:"speaking_rate_wpm" validate:"gte=0"`
	PauseAnalysis   PauseAnalysisDTO    `json:"pause_analysis"`
	FillerWords     FillerWordReportDTO `json:"filler_words"`
}

// PauseAnalysisDTO mirrors the pause report for feedback requests
type PauseAnalysisDTO struct {
	Count         int     `json:"count" validate:"gte=0"`
	TotalDuration float64 `json:"total_duration" validate:"gte=0"`
}

// FillerWordReportDTO mirrors the filler report for feedback requests
type FillerWordReportDTO struct {
	TotalCount int            `json:"total_count" validate:"gte=0"`
	Breakdown  map[string]int `json:"breakdown"`
}

// ToSegments converts segment DTOs into domain segments
func ToSegments(dtos []SegmentDTO) []entities.Segment {
	segments := make([]entities.Segment, 0, len(dtos))
	for _, s := range dtos {
		words := make([]entities.Word, 0, len(s.Words))
		for _, w := range s.Words {
			words = append(words, entities.Word{
				Word:  w.Word,
				Start: w.Start,
				End:   w.End,
			})
		}
		segments = append(segments, entities.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
			Words: words,
		})
	}
	return segments
}

// ToSessionMetrics converts a metrics DTO into the domain record
func ToSessionMetrics(dto SessionMetricsDTO) entities.SessionMetrics {
	return entities.SessionMetrics{
		OverallRelevance:               dto.OverallRelevance,
		OverallEmotionalStabilityScore: dto.OverallEmotionalStabilityScore,
		SpeakingRateWPM:                dto.SpeakingRateWPM,
		FillerWordsCount:               dto.FillerWordsCount,
		DurationSeconds:                dto.DurationSeconds,
	}
}

// ToSpeechMetrics converts a speech metrics DTO into the domain record
func ToSpeechMetrics(dto SpeechMetricsDTO) entities.SpeechMetrics {
	return entities.SpeechMetrics{
		SpeakingRateWPM: dto.SpeakingRateWPM,
		PauseAnalysis: entities.PauseAnalysis{
			Count:         dto.PauseAnalysis.Count,
			TotalDuration: dto.PauseAnalysis.TotalDuration,
		},
		FillerWords: entities.FillerWordReport{
			TotalCount: dto.FillerWords.TotalCount,
			Breakdown:  dto.FillerWords.Breakdown,
		},
	}
}
