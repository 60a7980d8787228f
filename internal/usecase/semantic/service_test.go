package semantic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// fakeEmbedder produces deterministic bag-of-words vectors, so identical
// texts are exactly cosine 1.0 and disjoint texts exactly 0.0.
type fakeEmbedder struct {
	vocab map[string]int
	calls int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vocab: map[string]int{}}
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	f.calls++
	const dim = 64
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vec := make([]float64, dim)
		for _, word := range strings.Fields(strings.ToLower(text)) {
			idx, ok := f.vocab[word]
			if !ok {
				idx = len(f.vocab) % dim
				f.vocab[word] = idx
			}
			vec[idx]++
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func testAnalysisConfig() *config.AnalysisConfig {
	return &config.AnalysisConfig{
		ChunkDuration:       30,
		SnippetLength:       100,
		RedundancyThreshold: 0.85,
	}
}

func TestAnalyzeRelevance_RepeatedPointTriggersAlert(t *testing.T) {
	svc := NewService(newFakeEmbedder(), testAnalysisConfig(), zap.NewNop())

	segments := []entities.Segment{
		{Start: 0, End: 10, Text: "I built Go microservices"},
		{Start: 35, End: 45, Text: "I built Go microservices"},
	}
	resume := "I built Go microservices\n\nhobbies knitting pottery gardening"

	report, err := svc.AnalyzeRelevance(context.Background(), segments, resume)
	require.NoError(t, err)

	require.Len(t, report.ChunkAnalysis, 2)
	require.Equal(t, 1.0, report.ChunkAnalysis[0].RelevanceScore)
	require.Equal(t, "I built Go microservices...", report.ChunkAnalysis[0].MatchedResumeSection)

	// First chunk conventions
	require.Equal(t, 1.0, report.ChunkAnalysis[0].CoherenceWithPrev)
	require.Equal(t, 0.0, report.ChunkAnalysis[0].MaxRedundancyScore)

	// Verbatim repeat of the first chunk
	require.Equal(t, 1.0, report.ChunkAnalysis[1].MaxRedundancyScore)
	require.Len(t, report.RedundancyAlerts, 1)
	require.Equal(t, 1, report.RedundancyAlerts[0].ChunkIndex)
	require.Equal(t, RedundancyMessage, report.RedundancyAlerts[0].Message)

	require.Equal(t, []float64{1.0}, report.TopicDriftTimeline)
	require.Equal(t, 1.0, report.OverallRelevance)
}

func TestAnalyzeRelevance_EmbedsEachCollectionOnce(t *testing.T) {
	embedder := newFakeEmbedder()
	svc := NewService(embedder, testAnalysisConfig(), zap.NewNop())

	segments := []entities.Segment{
		{Start: 0, End: 10, Text: "distributed systems"},
		{Start: 40, End: 50, Text: "database tuning"},
		{Start: 75, End: 85, Text: "team leadership"},
	}

	_, err := svc.AnalyzeRelevance(context.Background(), segments, "backend engineer\n\nled a team")
	require.NoError(t, err)
	require.Equal(t, 2, embedder.calls)
}

func TestAnalyzeRelevance_InsufficientData(t *testing.T) {
	svc := NewService(newFakeEmbedder(), testAnalysisConfig(), zap.NewNop())

	_, err := svc.AnalyzeRelevance(context.Background(), nil, "resume text")
	require.ErrorIs(t, err, entities.ErrInsufficientData)

	segments := []entities.Segment{{Start: 0, End: 5, Text: "hello"}}
	_, err = svc.AnalyzeRelevance(context.Background(), segments, "   ")
	require.ErrorIs(t, err, entities.ErrInsufficientData)
}

func TestSnippet(t *testing.T) {
	require.Equal(t, "abc...", snippet("abc", 10))
	require.Equal(t, "abcde...", snippet("abcdefgh", 5))
}
