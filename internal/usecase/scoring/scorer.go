package scoring

import (
	"math"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// Scorer rolls session metrics into a single weighted 0-100 score. The
// weights come from AnalysisConfig and are validated to sum to 1.0 at load.
type Scorer struct {
	cfg *config.AnalysisConfig
}

// NewScorer constructs a session scorer
func NewScorer(cfg *config.AnalysisConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score normalizes relevance, stability, pace and clarity and combines them
// into the final score. Each component is also reported individually on a
// 0-100 scale, rounded to 1 decimal.
func (s *Scorer) Score(metrics entities.SessionMetrics) entities.ScoreBreakdown {
	relevance := metrics.OverallRelevance
	stability := metrics.OverallEmotionalStabilityScore
	pace := s.scorePace(metrics.SpeakingRateWPM)
	clarity := s.scoreClarity(metrics.FillerWordsCount, metrics.DurationSeconds)

	final := (relevance*s.cfg.WeightRelevance +
		stability*s.cfg.WeightStability +
		pace*s.cfg.WeightPace +
		clarity*s.cfg.WeightClarity) * 100

	return entities.ScoreBreakdown{
		FinalScore: round1(final),
		Components: entities.ComponentScores{
			Relevance: round1(relevance * 100),
			Stability: round1(stability * 100),
			Pace:      round1(pace * 100),
			Clarity:   round1(clarity * 100),
		},
	}
}

// scorePace is a plateau function: 1.0 inside the ideal WPM band, then a
// linear falloff per WPM of distance from the nearest boundary, floored at
// 0. A WPM of exactly 0 scores 0 regardless of the distance formula.
func (s *Scorer) scorePace(wpm float64) float64 {
	if wpm == 0 {
		return 0.0
	}
	if wpm >= s.cfg.IdealWPMMin && wpm <= s.cfg.IdealWPMMax {
		return 1.0
	}

	var distance float64
	if wpm < s.cfg.IdealWPMMin {
		distance = s.cfg.IdealWPMMin - wpm
	} else {
		distance = wpm - s.cfg.IdealWPMMax
	}
	return math.Max(0.0, 1.0-distance*s.cfg.PacePenaltyPerWPM)
}

// scoreClarity maps fillers-per-minute onto [0,1]: 1.0 at or below the
// ideal rate, 0.0 at or above the max rate, linear in between. A duration
// of 0 or less forces the rate to 0 to avoid division by zero.
func (s *Scorer) scoreClarity(fillerCount int, durationSeconds float64) float64 {
	var fillersPerMin float64
	if durationSeconds > 0 {
		fillersPerMin = float64(fillerCount) / (durationSeconds / 60.0)
	}

	switch {
	case fillersPerMin <= s.cfg.IdealFillersPerMin:
		return 1.0
	case fillersPerMin >= s.cfg.MaxFillersPerMin:
		return 0.0
	default:
		return 1.0 - (fillersPerMin-s.cfg.IdealFillersPerMin)/(s.cfg.MaxFillersPerMin-s.cfg.IdealFillersPerMin)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
