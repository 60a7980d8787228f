package entities

// Chunk is a time-windowed aggregation of transcript segments, the atomic
// unit of relevance, drift and redundancy analysis. Chunks are created once
// per analysis run and never mutated after being returned; their index is
// their chronological position.
type Chunk struct {
	Timestamp string  `json:"timestamp"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Text      string  `json:"text"`

	// Populated during relevance analysis.
	RelevanceScore       float64 `json:"relevance_score"`
	MatchedResumeSection string  `json:"matched_resume_section"`
	// CoherenceWithPrev is 1.0 for the first chunk by convention (no prior
	// context, defined as maximally coherent, not measured).
	CoherenceWithPrev float64 `json:"coherence_with_prev"`
	// MaxRedundancyScore is 0.0 for the first chunk by convention.
	MaxRedundancyScore float64 `json:"max_redundancy_score"`
}

// RedundancyAlert flags a chunk whose similarity to an earlier chunk crossed
// the redundancy threshold.
type RedundancyAlert struct {
	ChunkIndex int    `json:"chunk_index"`
	Timestamp  string `json:"timestamp"`
	Message    string `json:"message"`
}

// RelevanceReport is the output of the relevance/drift/redundancy analyzer
type RelevanceReport struct {
	OverallRelevance   float64           `json:"overall_relevance"`
	ChunkAnalysis      []Chunk           `json:"chunk_analysis"`
	RedundancyAlerts   []RedundancyAlert `json:"redundancy_alerts"`
	TopicDriftTimeline []float64         `json:"topic_drift_timeline"`
}

// Pause is a silent gap between adjacent words
type Pause struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// PauseAnalysis aggregates detected pauses
type PauseAnalysis struct {
	Count         int     `json:"count"`
	TotalDuration float64 `json:"total_duration"`
	Details       []Pause `json:"details"`
}

// FillerWordReport counts hesitation markers per term
type FillerWordReport struct {
	TotalCount int            `json:"total_count"`
	Breakdown  map[string]int `json:"breakdown"`
}

// SpeechMetrics is the output of the speech pattern analyzer
type SpeechMetrics struct {
	SpeakingRateWPM float64          `json:"speaking_rate_wpm"`
	PauseAnalysis   PauseAnalysis    `json:"pause_analysis"`
	FillerWords     FillerWordReport `json:"filler_words"`
}

// SegmentProsody holds per-segment vocal stability scores
type SegmentProsody struct {
	Timestamp       string  `json:"timestamp"`
	Text            string  `json:"text"`
	PitchStability  float64 `json:"pitch_stability"`
	EnergyStability float64 `json:"energy_stability"`
	EmotionalState  string  `json:"emotional_state"`
}

// ProsodyAverages summarize the per-segment stability series
type ProsodyAverages struct {
	AveragePitchStability  float64 `json:"average_pitch_stability"`
	AverageEnergyStability float64 `json:"average_energy_stability"`
}

// ProsodyReport is the output of the prosody stability analyzer
type ProsodyReport struct {
	OverallEmotionalStabilityScore float64          `json:"overall_emotional_stability_score"`
	SegmentAnalysis                []SegmentProsody `json:"segment_analysis"`
	Metrics                        ProsodyAverages  `json:"metrics"`
}

// SessionMetrics is the flat record consumed by the session scorer.
// Immutable once computed.
type SessionMetrics struct {
	OverallRelevance               float64 `json:"overall_relevance"`
	OverallEmotionalStabilityScore float64 `json:"overall_emotional_stability_score"`
	SpeakingRateWPM                float64 `json:"speaking_rate_wpm"`
	FillerWordsCount               int     `json:"filler_words_count"`
	DurationSeconds                float64 `json:"duration_seconds"`
}

// ComponentScores reports each scoring component on a 0-100 scale
type ComponentScores struct {
	Relevance float64 `json:"relevance"`
	Stability float64 `json:"stability"`
	Pace      float64 `json:"pace"`
	Clarity   float64 `json:"clarity"`
}

// ScoreBreakdown is the weighted 0-100 session score plus its components.
// Produced fresh per session, never mutated.
type ScoreBreakdown struct {
	FinalScore float64         `json:"final_score"`
	Components ComponentScores `json:"components"`
}

// Session comparison trends
const (
	TrendBaseline  = "baseline"
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStagnant  = "stagnant"
)

// SessionComparison diffs two scored sessions
type SessionComparison struct {
	CurrentScore       float64          `json:"current_score"`
	PreviousScore      *float64         `json:"previous_score,omitempty"`
	Trend              string           `json:"trend"`
	Delta              float64          `json:"delta"`
	Message            string           `json:"message"`
	ComponentBreakdown *ComponentScores `json:"component_breakdown,omitempty"`
}

// Improvement priorities
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
)

// Improvement is a single prioritized issue in a feedback report
type Improvement struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// FeedbackReport is the human-readable synthesis of all session metrics
type FeedbackReport struct {
	Summary      string        `json:"summary"`
	Strengths    []string      `json:"strengths"`
	Improvements []Improvement `json:"improvements"`
	Grade        string        `json:"grade"`
}
