package speech

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// fillerVocabulary is the fixed set of hesitation markers counted as a
// clarity signal. Multi-word entries only match when the transcription
// emits them as a single token.
var fillerVocabulary = map[string]struct{}{
	"um": {}, "uh": {}, "er": {}, "ah": {},
	"like": {}, "you know": {}, "i mean": {}, "sort of": {},
}

// Service computes speaking rate, pause statistics and filler-word counts
// from word-level timestamps. No embeddings are involved.
type Service struct {
	cfg    *config.AnalysisConfig
	logger *zap.Logger
}

// NewService constructs a speech pattern analyzer
func NewService(cfg *config.AnalysisConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Analyze runs all speech pattern metrics over the transcript segments
func (s *Service) Analyze(segments []entities.Segment) *entities.SpeechMetrics {
	metrics := &entities.SpeechMetrics{
		SpeakingRateWPM: s.SpeakingRate(segments),
		PauseAnalysis:   s.DetectPauses(segments),
		FillerWords:     s.CountFillerWords(segments),
	}
	if s.logger != nil {
		s.logger.Info("speech analysis complete",
			zap.Float64("wpm", metrics.SpeakingRateWPM),
			zap.Int("pauses", metrics.PauseAnalysis.Count),
			zap.Int("fillers", metrics.FillerWords.TotalCount),
		)
	}
	return metrics
}

// SpeakingRate computes words per minute across the full transcript span.
// Returns 0.0 when there are no segments or the total duration is not
// positive.
func (s *Service) SpeakingRate(segments []entities.Segment) float64 {
	if len(segments) == 0 {
		return 0.0
	}

	duration := segments[len(segments)-1].End - segments[0].Start
	if duration <= 0 {
		return 0.0
	}

	totalWords := 0
	for _, seg := range segments {
		totalWords += len(seg.Words)
	}

	return round2(float64(totalWords) / duration * 60)
}

// DetectPauses flattens all words in order and records every gap between
// adjacent words longer than the configured minimum pause duration.
func (s *Service) DetectPauses(segments []entities.Segment) entities.PauseAnalysis {
	var words []entities.Word
	for _, seg := range segments {
		words = append(words, seg.Words...)
	}

	analysis := entities.PauseAnalysis{Details: []entities.Pause{}}
	if len(words) == 0 {
		return analysis
	}

	var total float64
	for i := 0; i < len(words)-1; i++ {
		gap := words[i+1].Start - words[i].End
		if gap > s.cfg.MinPauseDuration {
			analysis.Details = append(analysis.Details, entities.Pause{
				Start:    words[i].End,
				End:      words[i+1].Start,
				Duration: round2(gap),
			})
			total += gap
		}
	}
	analysis.Count = len(analysis.Details)
	analysis.TotalDuration = round2(total)
	return analysis
}

// CountFillerWords counts occurrences of the filler vocabulary,
// case-insensitively and with surrounding punctuation stripped.
func (s *Service) CountFillerWords(segments []entities.Segment) entities.FillerWordReport {
	report := entities.FillerWordReport{Breakdown: map[string]int{}}
	for _, seg := range segments {
		for _, w := range seg.Words {
			word := strings.Trim(strings.ToLower(strings.TrimSpace(w.Word)), ".,?!")
			if _, ok := fillerVocabulary[word]; ok {
				report.Breakdown[word]++
				report.TotalCount++
			}
		}
	}
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
