package handler

import (
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"

	"github.com/interview-coach-team/interview-analyzer/errors"
	analysisdto "github.com/interview-coach-team/interview-analyzer/internal/adapter/dto/analysis"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/prosody"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/scoring"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/semantic"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/speech"
)

// Analysis exposes the stateless analysis endpoints
type Analysis struct {
	semanticSvc *semantic.Service
	speechSvc   *speech.Service
	prosodySvc  *prosody.Service
	scorer      *scoring.Scorer
	synthesizer *scoring.Synthesizer
	logger      *zap.Logger
}

// NewAnalysis creates a new analysis handler
func NewAnalysis(
	semanticSvc *semantic.Service,
	speechSvc *speech.Service,
	prosodySvc *prosody.Service,
	scorer *scoring.Scorer,
	synthesizer *scoring.Synthesizer,
	logger *zap.Logger,
) *Analysis {
	return &Analysis{
		semanticSvc: semanticSvc,
		speechSvc:   speechSvc,
		prosodySvc:  prosodySvc,
		scorer:      scorer,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Relevance handles POST /v1/analysis/relevance
func (h *Analysis) Relevance(c echo.Context) error {
	var req analysisdto.RelevanceRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	report, err := h.semanticSvc.AnalyzeRelevance(
		c.Request().Context(),
		analysisdto.ToSegments(req.Transcript.Segments),
		req.ResumeText,
	)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, report)
}

// Speech handles POST /v1/analysis/speech
func (h *Analysis) Speech(c echo.Context) error {
	var req analysisdto.SpeechRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	metrics := h.speechSvc.Analyze(analysisdto.ToSegments(req.Transcript.Segments))
	return HandleSuccess(h.logger, c, metrics)
}

// Prosody handles POST /v1/analysis/prosody
func (h *Analysis) Prosody(c echo.Context) error {
	var req analysisdto.ProsodyRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	report, err := h.prosodySvc.Analyze(req.Samples, req.SampleRate, analysisdto.ToSegments(req.Segments))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, report)
}

// Score handles POST /v1/analysis/score
func (h *Analysis) Score(c echo.Context) error {
	var req analysisdto.ScoreRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	breakdown := h.scorer.Score(analysisdto.ToSessionMetrics(req.Metrics))
	return HandleSuccess(h.logger, c, breakdown)
}

// Compare handles POST /v1/analysis/compare
func (h *Analysis) Compare(c echo.Context) error {
	var req analysisdto.CompareRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	current := analysisdto.ToSessionMetrics(req.Current)
	if req.Previous == nil {
		comparison := h.scorer.Compare(current, nil)
		return HandleSuccess(h.logger, c, comparison)
	}

	previous := analysisdto.ToSessionMetrics(*req.Previous)
	comparison := h.scorer.Compare(current, &previous)
	return HandleSuccess(h.logger, c, comparison)
}

// Feedback handles POST /v1/analysis/feedback
func (h *Analysis) Feedback(c echo.Context) error {
	var req analysisdto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	speechMetrics := analysisdto.ToSpeechMetrics(req.SpeechMetrics)
	report := h.synthesizer.Generate(&speechMetrics, req.SemanticScore, req.StabilityScore)
	return HandleSuccess(h.logger, c, report)
}
