package scoring

import (
	"fmt"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// Feedback thresholds. Each metric family contributes at most one issue or
// one strength, never both.
const (
	paceFastWPM      = 160.0
	paceVeryFastWPM  = 180.0
	paceSlowWPM      = 110.0
	fillerIssueCount = 8
	fillerGoodCount  = 3
	relevanceLow     = 0.6
	relevanceHigh    = 0.85
	stabilityLow     = 0.6
	stabilityHigh    = 0.8
)

// Summary messages, selected by issue count
const (
	summaryOutstanding = "Outstanding interview! You checked all the boxes for a strong performance."
	summaryFundamental = "There are several areas to work on. Focus on slowing down and staying on topic first."
	summaryEncouraging = "Good effort. With a few tweaks to your delivery, this could be a great answer."
)

// Synthesizer turns raw numeric metrics into templated, prioritized,
// human-readable feedback and a letter grade.
type Synthesizer struct {
	cfg *config.AnalysisConfig
}

// NewSynthesizer constructs a feedback synthesizer
func NewSynthesizer(cfg *config.AnalysisConfig) *Synthesizer {
	return &Synthesizer{cfg: cfg}
}

// Generate evaluates one rule per metric family and assembles the report
func (s *Synthesizer) Generate(speech *entities.SpeechMetrics, semanticScore, stabilityScore float64) *entities.FeedbackReport {
	strengths := []string{}
	improvements := []entities.Improvement{}

	// Pace
	wpm := speech.SpeakingRateWPM
	switch {
	case wpm > paceFastWPM:
		priority := entities.PriorityMedium
		if wpm > paceVeryFastWPM {
			priority = entities.PriorityHigh
		}
		improvements = append(improvements, entities.Improvement{
			Type:       "pace",
			Title:      "Slow Down",
			Message:    fmt.Sprintf("Your speaking rate is %d words per minute. This is faster than the ideal 120-160 range.", int(wpm)),
			Suggestion: "Take a breath between sentences. Rushing can make you seem nervous.",
			Priority:   priority,
		})
	case wpm < paceSlowWPM:
		improvements = append(improvements, entities.Improvement{
			Type:       "pace",
			Title:      "Pick Up the Pace",
			Message:    fmt.Sprintf("At %d words per minute, your delivery might feel hesitant or low-energy.", int(wpm)),
			Suggestion: "Try to practice speaking with a bit more urgency to show enthusiasm.",
			Priority:   entities.PriorityMedium,
		})
	default:
		strengths = append(strengths, "Perfect speaking pace (120-160 WPM). You sounded natural and controlled.")
	}

	// Clarity
	fillers := speech.FillerWords.TotalCount
	if fillers > fillerIssueCount {
		improvements = append(improvements, entities.Improvement{
			Type:       "clarity",
			Title:      "Reduce Filler Words",
			Message:    fmt.Sprintf("You used '%s' %d times. These can distract the interviewer.", mostFrequentFiller(speech.FillerWords.Breakdown), fillers),
			Suggestion: "Pause silently instead of saying 'um' or 'uh' while thinking.",
			Priority:   entities.PriorityHigh,
		})
	} else if fillers < fillerGoodCount {
		strengths = append(strengths, "Excellent clarity with very few filler words.")
	}

	// Relevance
	if semanticScore < relevanceLow {
		improvements = append(improvements, entities.Improvement{
			Type:       "relevance",
			Title:      "Stay On Topic",
			Message:    fmt.Sprintf("Your answer drifted away from your resume experience (%d%% match).", int(semanticScore*100)),
			Suggestion: "Connect your answer explicitly back to the skills listed on your resume.",
			Priority:   entities.PriorityCritical,
		})
	} else if semanticScore > relevanceHigh {
		strengths = append(strengths, "High relevance! Your answer was directly aligned with your resume experience.")
	}

	// Confidence
	if stabilityScore < stabilityLow {
		improvements = append(improvements, entities.Improvement{
			Type:       "confidence",
			Title:      "Work on Confidence",
			Message:    "Your voice variance suggests nervousness or hesitation.",
			Suggestion: "Practice speaking with a steady, consistent volume. Record yourself reading a book aloud.",
			Priority:   entities.PriorityHigh,
		})
	} else if stabilityScore > stabilityHigh {
		strengths = append(strengths, "You sounded very confident and emotionally stable.")
	}

	summary := summaryEncouraging
	switch {
	case len(improvements) == 0:
		summary = summaryOutstanding
	case len(improvements) > 3:
		summary = summaryFundamental
	}

	return &entities.FeedbackReport{
		Summary:      summary,
		Strengths:    strengths,
		Improvements: improvements,
		Grade:        grade(len(strengths), len(improvements)),
	}
}

// mostFrequentFiller picks the highest-count term; ties resolve to the
// lexicographically smallest so the output is deterministic.
func mostFrequentFiller(breakdown map[string]int) string {
	best := "fillers"
	bestCount := -1
	for term, count := range breakdown {
		if count > bestCount || (count == bestCount && term < best) {
			best = term
			bestCount = count
		}
	}
	return best
}

// grade converts the strength/issue balance into a letter grade
func grade(numStrengths, numIssues int) string {
	score := float64(numStrengths) - float64(numIssues)*1.5
	switch {
	case score >= 3:
		return "A"
	case score >= 1:
		return "B"
	case score >= -1:
		return "C"
	default:
		return "D"
	}
}
