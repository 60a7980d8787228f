package semantic

import (
	"context"
	"math"

	"go.uber.org/zap"

	apperrors "github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// RedundancyMessage is attached to every redundancy alert
const RedundancyMessage = "Candidate repeated a previously discussed point."

// Service computes relevance, topic drift and redundancy for a transcript
// against a resume. All scores are rounded to 2 decimal places before being
// placed in the report.
type Service struct {
	embedder Embedder
	cfg      *config.AnalysisConfig
	logger   *zap.Logger
}

// NewService constructs a semantic analysis service
func NewService(embedder Embedder, cfg *config.AnalysisConfig, logger *zap.Logger) *Service {
	return &Service{embedder: embedder, cfg: cfg, logger: logger}
}

// AnalyzeRelevance chunks the transcript, sections the resume and builds the
// full relevance report. Returns entities.ErrInsufficientData when either
// side produces nothing to compare; no partial report is produced.
func (s *Service) AnalyzeRelevance(ctx context.Context, segments []entities.Segment, resumeText string) (*entities.RelevanceReport, error) {
	chunks := ChunkSegments(segments, s.cfg.ChunkDuration)
	sections := SplitResumeSections(resumeText)

	if len(chunks) == 0 || len(sections) == 0 {
		return nil, entities.ErrInsufficientData
	}

	chunkTexts := make([]string, len(chunks))
	for i, c := range chunks {
		chunkTexts[i] = c.Text
	}

	// One embedding pass per collection; the chunk vectors are reused for
	// relevance, drift and redundancy.
	chunkVecs, err := s.embedder.Embed(ctx, chunkTexts)
	if err != nil {
		return nil, apperrors.ErrEmbeddingFailed(err)
	}
	sectionVecs, err := s.embedder.Embed(ctx, sections)
	if err != nil {
		return nil, apperrors.ErrEmbeddingFailed(err)
	}

	// Relevance: each chunk against every resume section.
	relevance := CosineMatrix(chunkVecs, sectionVecs)
	var relevanceSum float64
	for i := range chunks {
		best := argmax(relevance[i])
		score := round2(relevance[i][best])
		chunks[i].RelevanceScore = score
		chunks[i].MatchedResumeSection = snippet(sections[best], s.cfg.SnippetLength)
		relevanceSum += score
	}

	// Topic drift: each chunk against its immediate predecessor. The first
	// chunk has no prior context and is defined as maximally coherent.
	driftTimeline := make([]float64, 0, len(chunks)-1)
	chunks[0].CoherenceWithPrev = 1.0
	for i := 1; i < len(chunks); i++ {
		sim := round2(Cosine(chunkVecs[i], chunkVecs[i-1]))
		chunks[i].CoherenceWithPrev = sim
		driftTimeline = append(driftTimeline, sim)
	}

	// Redundancy: each chunk against all earlier chunks. The first chunk has
	// nothing to repeat and is defined as 0.0.
	alerts := []entities.RedundancyAlert{}
	chunks[0].MaxRedundancyScore = 0.0
	for i := 1; i < len(chunks); i++ {
		maxSim := 0.0
		for j := 0; j < i; j++ {
			if sim := Cosine(chunkVecs[i], chunkVecs[j]); sim > maxSim {
				maxSim = sim
			}
		}
		score := round2(maxSim)
		chunks[i].MaxRedundancyScore = score
		if score > s.cfg.RedundancyThreshold {
			alerts = append(alerts, entities.RedundancyAlert{
				ChunkIndex: i,
				Timestamp:  chunks[i].Timestamp,
				Message:    RedundancyMessage,
			})
		}
	}

	if s.logger != nil {
		s.logger.Info("semantic analysis complete",
			zap.Int("chunks", len(chunks)),
			zap.Int("resume_sections", len(sections)),
			zap.Int("redundancy_alerts", len(alerts)),
		)
	}

	return &entities.RelevanceReport{
		OverallRelevance:   round2(relevanceSum / float64(len(chunks))),
		ChunkAnalysis:      chunks,
		RedundancyAlerts:   alerts,
		TopicDriftTimeline: driftTimeline,
	}, nil
}

// argmax returns the index of the first maximum. Ties between resume
// sections are not semantically distinguished, so first-wins is deliberate.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// snippet truncates a section to maxLen runes. The ellipsis marker is
// appended regardless of whether truncation occurred.
func snippet(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return string(runes) + "..."
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
