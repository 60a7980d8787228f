package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

func speechMetrics(wpm float64, fillers map[string]int) *entities.SpeechMetrics {
	total := 0
	for _, n := range fillers {
		total += n
	}
	return &entities.SpeechMetrics{
		SpeakingRateWPM: wpm,
		FillerWords: entities.FillerWordReport{
			TotalCount: total,
			Breakdown:  fillers,
		},
	}
}

func findImprovement(report *entities.FeedbackReport, typ string) *entities.Improvement {
	for i := range report.Improvements {
		if report.Improvements[i].Type == typ {
			return &report.Improvements[i]
		}
	}
	return nil
}

func TestGenerate_StrongSession(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	report := syn.Generate(speechMetrics(140, map[string]int{"um": 1}), 0.9, 0.85)

	require.Empty(t, report.Improvements)
	require.Len(t, report.Strengths, 4)
	require.Equal(t, "A", report.Grade)
	require.Equal(t, "Outstanding interview! You checked all the boxes for a strong performance.", report.Summary)
}

func TestGenerate_WeakSession(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	report := syn.Generate(speechMetrics(190, map[string]int{"um": 6, "uh": 3}), 0.5, 0.5)

	require.Len(t, report.Improvements, 4)
	require.Empty(t, report.Strengths)
	require.Equal(t, "D", report.Grade)
	require.Equal(t, "There are several areas to work on. Focus on slowing down and staying on topic first.", report.Summary)

	pace := findImprovement(report, "pace")
	require.NotNil(t, pace)
	require.Equal(t, entities.PriorityHigh, pace.Priority)
	require.Equal(t, "Slow Down", pace.Title)

	clarity := findImprovement(report, "clarity")
	require.NotNil(t, clarity)
	require.Contains(t, clarity.Message, "'um' 9 times")

	relevance := findImprovement(report, "relevance")
	require.NotNil(t, relevance)
	require.Equal(t, entities.PriorityCritical, relevance.Priority)
	require.Contains(t, relevance.Message, "50% match")
}

func TestGenerate_ModeratelyFastPaceIsMediumPriority(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	report := syn.Generate(speechMetrics(170, nil), 0.7, 0.7)

	pace := findImprovement(report, "pace")
	require.NotNil(t, pace)
	require.Equal(t, entities.PriorityMedium, pace.Priority)
}

func TestGenerate_SlowPace(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	report := syn.Generate(speechMetrics(100, nil), 0.7, 0.7)

	pace := findImprovement(report, "pace")
	require.NotNil(t, pace)
	require.Equal(t, "Pick Up the Pace", pace.Title)
	require.Equal(t, entities.PriorityMedium, pace.Priority)
}

func TestGenerate_MiddleBand(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	// Pace in band (strength), everything else inside the neutral bands.
	// No improvements means the congratulatory summary, whatever the grade.
	report := syn.Generate(speechMetrics(140, map[string]int{"um": 5}), 0.7, 0.7)

	require.Len(t, report.Strengths, 1)
	require.Empty(t, report.Improvements)
	require.Equal(t, "B", report.Grade)
	require.Equal(t, "Outstanding interview! You checked all the boxes for a strong performance.", report.Summary)
}

func TestGenerate_FewIssuesGetTheEncouragingSummary(t *testing.T) {
	syn := NewSynthesizer(testAnalysisConfig())

	// One issue (slow pace), everything else neutral
	report := syn.Generate(speechMetrics(100, map[string]int{"um": 5}), 0.7, 0.7)

	require.Len(t, report.Improvements, 1)
	require.Equal(t, "Good effort. With a few tweaks to your delivery, this could be a great answer.", report.Summary)
}

func TestGrade(t *testing.T) {
	require.Equal(t, "A", grade(3, 0))
	require.Equal(t, "B", grade(4, 2))
	require.Equal(t, "C", grade(2, 2))
	require.Equal(t, "D", grade(0, 2))
}

func TestMostFrequentFiller_DeterministicTieBreak(t *testing.T) {
	require.Equal(t, "ah", mostFrequentFiller(map[string]int{"um": 2, "ah": 2, "er": 1}))
	require.Equal(t, "fillers", mostFrequentFiller(nil))
}
