package entities

import "errors"

// Domain errors
var (
	// Input validation errors
	ErrEmptyTranscript  = errors.New("transcript is empty or malformed")
	ErrEmptyResume      = errors.New("resume text contains no sections")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Collaborator errors
	ErrModelNotReady = errors.New("model not ready")

	// Feature extraction errors
	ErrFeatureExtraction = errors.New("audio feature extraction failed")
	ErrEmptyAudio        = errors.New("audio is empty or unreadable")

	// Interview errors
	ErrInterviewNotFound = errors.New("interview not found")
	ErrNoAudioAttached   = errors.New("interview has no audio recording attached")
	ErrNoResumeAttached  = errors.New("interview has no resume attached")
	ErrReportNotFound    = errors.New("session report not found")
)
