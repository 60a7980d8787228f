package scoring

import "github.com/interview-coach-team/interview-analyzer/internal/domain/entities"

// trendThreshold is the score delta beyond which a change counts as a real
// trend rather than noise.
const trendThreshold = 5.0

// Trend messages, fixed per bucket
const (
	msgBaseline  = "First session recorded. Baseline established."
	msgImproving = "Great job! This is a significant improvement."
	msgDeclining = "Performance dropped compared to last time. Check your stability."
	msgStagnant  = "Consistent performance. Try to focus on clarity to break through."
)

// Compare scores the current session against an optional previous one. With
// no previous session the result is a baseline with delta 0.
func (s *Scorer) Compare(current entities.SessionMetrics, previous *entities.SessionMetrics) entities.SessionComparison {
	currentResult := s.Score(current)

	if previous == nil {
		return entities.SessionComparison{
			CurrentScore: currentResult.FinalScore,
			Trend:        entities.TrendBaseline,
			Delta:        0,
			Message:      msgBaseline,
		}
	}

	previousResult := s.Score(*previous)
	delta := currentResult.FinalScore - previousResult.FinalScore

	trend := entities.TrendStagnant
	message := msgStagnant
	switch {
	case delta > trendThreshold:
		trend = entities.TrendImproving
		message = msgImproving
	case delta < -trendThreshold:
		trend = entities.TrendDeclining
		message = msgDeclining
	}

	previousScore := previousResult.FinalScore
	components := currentResult.Components
	return entities.SessionComparison{
		CurrentScore:       currentResult.FinalScore,
		PreviousScore:      &previousScore,
		Trend:              trend,
		Delta:              round1(delta),
		Message:            message,
		ComponentBreakdown: &components,
	}
}
