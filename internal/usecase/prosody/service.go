package prosody

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// epsilon prevents division by zero when a segment's mean is near 0
const epsilon = 1e-6

// Emotional state labels
const (
	StateStable   = "Stable"
	StateVariable = "Variable"
)

// Service measures vocal stability by aligning audio-derived pitch and
// energy series to transcript segment boundaries. Any extraction failure is
// returned as a single error, which callers treat as "feature unavailable"
// rather than a fatal pipeline error.
type Service struct {
	cfg    *config.AnalysisConfig
	logger *zap.Logger
}

// NewService constructs a prosody stability analyzer
func NewService(cfg *config.AnalysisConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Analyze extracts energy and pitch series over the whole audio and scores
// stability per transcript segment. All numeric outputs are rounded to 2
// decimals.
func (s *Service) Analyze(samples []float64, sampleRate int, segments []entities.Segment) (*entities.ProsodyReport, error) {
	if len(samples) == 0 || sampleRate <= 0 {
		return nil, entities.ErrEmptyAudio
	}

	energy := RMSEnergy(samples, s.cfg.FrameLength, s.cfg.HopLength)
	pitch := PitchTrack(samples, sampleRate, s.cfg.FrameLength, s.cfg.HopLength, s.cfg.PitchMinHz, s.cfg.PitchMaxHz)
	frameTime := float64(s.cfg.HopLength) / float64(sampleRate)

	var segmentAnalysis []entities.SegmentProsody
	var pitchScores, energyScores []float64

	for _, seg := range segments {
		startFrame := int(seg.Start / frameTime)
		endFrame := int(seg.End / frameTime)

		// Segments whose frame range exceeds the available series are
		// skipped, not scored.
		if startFrame >= len(energy) || endFrame > len(energy) {
			continue
		}

		segPitch := pitch[startFrame:endFrame]
		segEnergy := energy[startFrame:endFrame]

		// Pitch only matters where the speaker is actually voicing; with no
		// voiced frames the score defaults to neutral rather than undefined.
		var voiced []float64
		for _, p := range segPitch {
			if p > 0 {
				voiced = append(voiced, p)
			}
		}
		pitchStability := 0.5
		if len(voiced) > 0 {
			pitchStability = stability(voiced)
		}

		energyStability := 0.5
		if len(segEnergy) > 0 {
			energyStability = stability(segEnergy)
		}

		state := StateVariable
		if pitchStability > s.cfg.StabilityThreshold && energyStability > s.cfg.StabilityThreshold {
			state = StateStable
		}

		pitchScores = append(pitchScores, pitchStability)
		energyScores = append(energyScores, energyStability)
		segmentAnalysis = append(segmentAnalysis, entities.SegmentProsody{
			Timestamp:       timestampLabel(seg.Start, seg.End),
			Text:            seg.Text,
			PitchStability:  round2(pitchStability),
			EnergyStability: round2(energyStability),
			EmotionalState:  state,
		})
	}

	report := &entities.ProsodyReport{SegmentAnalysis: segmentAnalysis}
	if len(pitchScores) > 0 {
		avgPitch := mean(pitchScores)
		avgEnergy := mean(energyScores)
		report.OverallEmotionalStabilityScore = round2((avgPitch + avgEnergy) / 2)
		report.Metrics = entities.ProsodyAverages{
			AveragePitchStability:  round2(avgPitch),
			AverageEnergyStability: round2(avgEnergy),
		}
	}

	if s.logger != nil {
		s.logger.Info("prosody analysis complete",
			zap.Int("segments_scored", len(segmentAnalysis)),
			zap.Float64("overall_stability", report.OverallEmotionalStabilityScore),
		)
	}
	return report, nil
}

// stability is a normalized inverse coefficient of variation, clamped to
// [0,1]: 1 − min(std/(mean+ε), 1).
func stability(values []float64) float64 {
	m := mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	std := math.Sqrt(variance / float64(len(values)))
	return 1.0 - math.Min(std/(m+epsilon), 1.0)
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func timestampLabel(start, end float64) string {
	return fmt.Sprintf("%.1fs - %.1fs", start, end)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
