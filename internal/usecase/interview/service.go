// Package interview orchestrates the full analysis pipeline over stored
// interview recordings.
package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/internal/infrastructure/audio"
	"github.com/interview-coach-team/interview-analyzer/internal/infrastructure/resume"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/prosody"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/scoring"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/semantic"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/speech"
)

// neutralStability stands in for the prosody score when feature
// extraction is unavailable.
const neutralStability = 0.5

// InterviewRepository persists interview records
type InterviewRepository interface {
	Create(ctx context.Context, interview *entities.Interview) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entities.Interview, error)
	Update(ctx context.Context, interview *entities.Interview) error
}

// ReportRepository persists session reports
type ReportRepository interface {
	Create(ctx context.Context, report *entities.SessionReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.SessionReport, error)
	FindByInterviewID(ctx context.Context, interviewID uuid.UUID) ([]*entities.SessionReport, error)
	FindLatestByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.SessionReport, error)
}

// TranscriptRepository persists transcripts
type TranscriptRepository interface {
	CreateTranscript(ctx context.Context, transcript *entities.Transcript) error
	GetTranscriptByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.Transcript, error)
}

// AudioStorage archives and retrieves interview recordings
type AudioStorage interface {
	UploadAudio(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	DownloadAudio(ctx context.Context, objectName string) (io.ReadCloser, error)
	ListRecordings(ctx context.Context, prefix string) ([]string, error)
}

// Transcriber converts a recording into an AssemblyAI transcript
type Transcriber interface {
	Ready() bool
	Transcribe(ctx context.Context, audio io.Reader) (*aai.Transcript, error)
}

// ProcessResult bundles everything one pipeline run produced
type ProcessResult struct {
	ReportID   uuid.UUID                  `json:"report_id"`
	Transcript *entities.Transcript       `json:"transcript"`
	Relevance  *entities.RelevanceReport  `json:"relevance"`
	Speech     *entities.SpeechMetrics    `json:"speech"`
	Prosody    *entities.ProsodyReport    `json:"prosody,omitempty"`
	Score      entities.ScoreBreakdown    `json:"score"`
	Feedback   *entities.FeedbackReport   `json:"feedback"`
	Comparison entities.SessionComparison `json:"comparison"`
	// ProsodyError is set when stability extraction failed and the
	// neutral score was used instead.
	ProsodyError string `json:"prosody_error,omitempty"`
}

// Service runs interview CRUD and the end-to-end analysis pipeline
type Service struct {
	interviewRepo  InterviewRepository
	reportRepo     ReportRepository
	transcriptRepo TranscriptRepository
	storage        AudioStorage
	transcriber    Transcriber
	semanticSvc    *semantic.Service
	speechSvc      *speech.Service
	prosodySvc     *prosody.Service
	scorer         *scoring.Scorer
	synthesizer    *scoring.Synthesizer
	logger         *zap.Logger
}

// NewService creates a new interview service
func NewService(
	interviewRepo InterviewRepository,
	reportRepo ReportRepository,
	transcriptRepo TranscriptRepository,
	storage AudioStorage,
	transcriber Transcriber,
	semanticSvc *semantic.Service,
	speechSvc *speech.Service,
	prosodySvc *prosody.Service,
	scorer *scoring.Scorer,
	synthesizer *scoring.Synthesizer,
	logger *zap.Logger,
) *Service {
	return &Service{
		interviewRepo:  interviewRepo,
		reportRepo:     reportRepo,
		transcriptRepo: transcriptRepo,
		storage:        storage,
		transcriber:    transcriber,
		semanticSvc:    semanticSvc,
		speechSvc:      speechSvc,
		prosodySvc:     prosodySvc,
		scorer:         scorer,
		synthesizer:    synthesizer,
		logger:         logger,
	}
}

// Create creates a new interview record
func (s *Service) Create(ctx context.Context, title, description, resumeText string) (*entities.Interview, error) {
	interview := entities.NewInterview(title)
	interview.Description = description
	interview.ResumeText = strings.TrimSpace(resumeText)

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, err
	}

	s.logger.Info("✅ Interview created",
		zap.String("interview_id", interview.ID.String()),
		zap.String("title", interview.Title),
	)
	return interview, nil
}

// Get retrieves an interview by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	return s.interviewRepo.FindByID(ctx, id)
}

// List lists interviews, newest first
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*entities.Interview, error) {
	return s.interviewRepo.FindAll(ctx, pageSize, (page-1)*pageSize)
}

// Reports lists all session reports for an interview
func (s *Service) Reports(ctx context.Context, interviewID uuid.UUID) ([]*entities.SessionReport, error) {
	if _, err := s.interviewRepo.FindByID(ctx, interviewID); err != nil {
		return nil, err
	}
	return s.reportRepo.FindByInterviewID(ctx, interviewID)
}

// AttachAudio archives a recording for an interview and remembers its
// object key.
func (s *Service) AttachAudio(ctx context.Context, id uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*entities.Interview, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("recordings/%s/%d%s", id.String(), time.Now().Unix(), path.Ext(filename))
	if err := s.storage.UploadAudio(ctx, objectKey, reader, size, contentType); err != nil {
		return nil, apperrors.ErrStorageFailed("upload", err)
	}

	interview.AudioObjectKey = objectKey
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, err
	}

	s.logger.Info("✅ Recording archived",
		zap.String("interview_id", id.String()),
		zap.String("object_key", objectKey),
	)
	return interview, nil
}

// Recordings lists the object keys of every recording uploaded for an
// interview, including ones older than the currently attached key.
func (s *Service) Recordings(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := s.interviewRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	keys, err := s.storage.ListRecordings(ctx, fmt.Sprintf("recordings/%s/", id.String()))
	if err != nil {
		return nil, apperrors.ErrStorageFailed("list", err)
	}
	return keys, nil
}

// AttachResume extracts resume text from an upload and stores it on the
// interview.
func (s *Service) AttachResume(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*entities.Interview, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := resume.ExtractText(data, contentType)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, entities.ErrEmptyResume
	}

	interview.ResumeText = text
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, err
	}

	return interview, nil
}

// Process runs the full pipeline over the interview's stored recording
// and resume, persists the transcript and session report, and returns
// the combined result.
func (s *Service) Process(ctx context.Context, id uuid.UUID) (*ProcessResult, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interview.AudioObjectKey == "" {
		return nil, entities.ErrNoAudioAttached
	}
	if strings.TrimSpace(interview.ResumeText) == "" {
		return nil, entities.ErrNoResumeAttached
	}
	if !s.transcriber.Ready() {
		return nil, entities.ErrModelNotReady
	}

	s.logger.Info("🎬 Processing interview session",
		zap.String("interview_id", id.String()),
		zap.String("object_key", interview.AudioObjectKey),
	)

	object, err := s.storage.DownloadAudio(ctx, interview.AudioObjectKey)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("download", err)
	}
	audioBytes, err := io.ReadAll(object)
	object.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio object: %w", err)
	}

	// Decode first so an unusable recording fails before the paid
	// transcription call. A decode failure only disables prosody.
	samples, sampleRate, decodeErr := audio.DecodeWAV(bytes.NewReader(audioBytes))

	raw, err := s.transcriber.Transcribe(ctx, bytes.NewReader(audioBytes))
	if err != nil {
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	transcript := s.mapTranscript(interview.ID, raw)
	if len(transcript.Segments) == 0 {
		return nil, entities.ErrEmptyTranscript
	}
	s.logger.Info("✅ Transcript ready",
		zap.Int("segments", len(transcript.Segments)),
		zap.Int("word_count", transcript.WordCount()),
	)
	if err := s.transcriptRepo.CreateTranscript(ctx, transcript); err != nil {
		s.logger.Warn("⚠️ Failed to store transcript", zap.Error(err))
	}

	relevance, err := s.semanticSvc.AnalyzeRelevance(ctx, transcript.Segments, interview.ResumeText)
	if err != nil {
		return nil, err
	}

	speechMetrics := s.speechSvc.Analyze(transcript.Segments)

	result := &ProcessResult{
		Transcript: transcript,
		Relevance:  relevance,
		Speech:     speechMetrics,
	}

	stabilityScore := neutralStability
	if decodeErr != nil {
		result.ProsodyError = decodeErr.Error()
		s.logger.Warn("⚠️ Prosody analysis unavailable", zap.Error(decodeErr))
	} else {
		prosodyReport, prosodyErr := s.prosodySvc.Analyze(samples, sampleRate, transcript.Segments)
		if prosodyErr != nil {
			result.ProsodyError = prosodyErr.Error()
			s.logger.Warn("⚠️ Prosody analysis failed", zap.Error(prosodyErr))
		} else {
			result.Prosody = prosodyReport
			stabilityScore = prosodyReport.OverallEmotionalStabilityScore
		}
	}

	metrics := entities.SessionMetrics{
		OverallRelevance:               relevance.OverallRelevance,
		OverallEmotionalStabilityScore: stabilityScore,
		SpeakingRateWPM:                speechMetrics.SpeakingRateWPM,
		FillerWordsCount:               speechMetrics.FillerWords.TotalCount,
		DurationSeconds:                transcript.Duration(),
	}

	result.Score = s.scorer.Score(metrics)
	result.Feedback = s.synthesizer.Generate(speechMetrics, relevance.OverallRelevance, stabilityScore)

	previous, err := s.previousMetrics(ctx, interview.ID)
	if err != nil {
		s.logger.Warn("⚠️ Failed to load previous session", zap.Error(err))
	}
	result.Comparison = s.scorer.Compare(metrics, previous)

	report, err := s.buildReport(interview.ID, result, metrics)
	if err != nil {
		return nil, apperrors.ErrReportGenerationFailed(err)
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	result.ReportID = report.ID

	s.logger.Info("✅ Session report generated",
		zap.String("interview_id", id.String()),
		zap.String("report_id", report.ID.String()),
		zap.Float64("final_score", result.Score.FinalScore),
		zap.String("grade", result.Feedback.Grade),
	)
	return result, nil
}

// previousMetrics reconstructs the scorer input of the most recent
// stored session, or nil when this is the first run.
func (s *Service) previousMetrics(ctx context.Context, interviewID uuid.UUID) (*entities.SessionMetrics, error) {
	last, err := s.reportRepo.FindLatestByInterviewID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if last == nil || len(last.Metrics) == 0 {
		return nil, nil
	}

	var metrics entities.SessionMetrics
	if err := json.Unmarshal(last.Metrics, &metrics); err != nil {
		return nil, fmt.Errorf("failed to decode stored metrics: %w", err)
	}
	return &metrics, nil
}

func (s *Service) buildReport(interviewID uuid.UUID, result *ProcessResult, metrics entities.SessionMetrics) (*entities.SessionReport, error) {
	report := entities.NewSessionReport(interviewID)
	report.FinalScore = result.Score.FinalScore
	report.ProsodyError = result.ProsodyError

	var err error
	if report.Relevance, err = json.Marshal(result.Relevance); err != nil {
		return nil, fmt.Errorf("failed to encode relevance report: %w", err)
	}
	if report.Speech, err = json.Marshal(result.Speech); err != nil {
		return nil, fmt.Errorf("failed to encode speech metrics: %w", err)
	}
	if result.Prosody != nil {
		if report.Prosody, err = json.Marshal(result.Prosody); err != nil {
			return nil, fmt.Errorf("failed to encode prosody report: %w", err)
		}
	}
	if report.Feedback, err = json.Marshal(result.Feedback); err != nil {
		return nil, fmt.Errorf("failed to encode feedback report: %w", err)
	}
	if report.Metrics, err = json.Marshal(metrics); err != nil {
		return nil, fmt.Errorf("failed to encode session metrics: %w", err)
	}
	if report.Components, err = json.Marshal(result.Score.Components); err != nil {
		return nil, fmt.Errorf("failed to encode component scores: %w", err)
	}

	return report, nil
}

// mapTranscript converts an AssemblyAI transcript into the domain
// shape. Utterances become segments; without them the whole transcript
// is one segment.
func (s *Service) mapTranscript(interviewID uuid.UUID, raw *aai.Transcript) *entities.Transcript {
	transcript := entities.NewTranscript(interviewID)
	transcript.ModelUsed = "assemblyai"
	if raw.Text != nil {
		transcript.FullText = *raw.Text
	}
	if raw.LanguageCode != "" {
		transcript.Language = string(raw.LanguageCode)
	}
	if raw.Confidence != nil {
		transcript.ConfidenceScore = *raw.Confidence
	}

	words := make([]entities.Word, 0, len(raw.Words))
	for _, w := range raw.Words {
		if w.Text == nil || w.Start == nil || w.End == nil {
			continue
		}
		words = append(words, entities.Word{
			Word:  *w.Text,
			Start: float64(*w.Start) / 1000.0, // ms to seconds
			End:   float64(*w.End) / 1000.0,
		})
	}

	if len(raw.Utterances) > 0 {
		wordIdx := 0
		for _, utt := range raw.Utterances {
			segment := entities.Segment{}
			if utt.Text != nil {
				segment.Text = *utt.Text
			}
			if utt.Start != nil {
				segment.Start = float64(*utt.Start) / 1000.0
			}
			if utt.End != nil {
				segment.End = float64(*utt.End) / 1000.0
			}
			// Words are globally ordered, assign by time span
			for wordIdx < len(words) && words[wordIdx].Start < segment.End {
				segment.Words = append(segment.Words, words[wordIdx])
				wordIdx++
			}
			transcript.Segments = append(transcript.Segments, segment)
		}
	} else if len(words) > 0 {
		transcript.Segments = []entities.Segment{{
			Start: words[0].Start,
			End:   words[len(words)-1].End,
			Text:  transcript.FullText,
			Words: words,
		}}
	}

	return transcript
}
