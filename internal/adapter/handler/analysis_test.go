package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/internal/usecase/scoring"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/speech"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
	pkgvalidator "github.com/interview-coach-team/interview-analyzer/pkg/validator"
)

func analysisTestConfig() *config.AnalysisConfig {
	return &config.AnalysisConfig{
		ChunkDuration:       30,
		SnippetLength:       100,
		RedundancyThreshold: 0.85,
		MinPauseDuration:    0.5,
		WeightRelevance:     0.40,
		WeightStability:     0.30,
		WeightPace:          0.15,
		WeightClarity:       0.15,
		IdealWPMMin:         120,
		IdealWPMMax:         160,
		PacePenaltyPerWPM:   0.02,
		IdealFillersPerMin:  2,
		MaxFillersPerMin:    10,
	}
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestAnalysisHandler() *Analysis {
	cfg := analysisTestConfig()
	return NewAnalysis(
		nil,
		speech.NewService(cfg, zap.NewNop()),
		nil,
		scoring.NewScorer(cfg),
		scoring.NewSynthesizer(cfg),
		zap.NewNop(),
	)
}

func TestScoreEndpoint(t *testing.T) {
	body := `{"metrics":{
		"overall_relevance": 0.8,
		"overall_emotional_stability_score": 0.6,
		"speaking_rate_wpm": 140,
		"filler_words_count": 2,
		"duration_seconds": 60
	}}`
	c, rec := newTestContext(t, body)

	require.NoError(t, newTestAnalysisHandler().Score(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			FinalScore float64 `json:"final_score"`
			Components struct {
				Pace float64 `json:"pace"`
			} `json:"components"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 80.0, resp.Data.FinalScore)
	require.Equal(t, 100.0, resp.Data.Components.Pace)
}

func TestScoreEndpoint_RejectsOutOfRangeMetrics(t *testing.T) {
	body := `{"metrics":{"overall_relevance": 1.8}}`
	c, rec := newTestContext(t, body)

	require.NoError(t, newTestAnalysisHandler().Score(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpeechEndpoint(t *testing.T) {
	body := `{"transcript":{"segments":[
		{"start": 0, "end": 6, "text": "um so this is my answer", "words": [
			{"word": "um", "start": 0.0, "end": 0.5},
			{"word": "so", "start": 1.0, "end": 1.5},
			{"word": "this", "start": 2.0, "end": 2.5},
			{"word": "is", "start": 3.0, "end": 3.5},
			{"word": "my", "start": 4.0, "end": 4.5},
			{"word": "answer", "start": 5.0, "end": 5.5}
		]}
	]}}`
	c, rec := newTestContext(t, body)

	require.NoError(t, newTestAnalysisHandler().Speech(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			SpeakingRateWPM float64 `json:"speaking_rate_wpm"`
			FillerWords     struct {
				TotalCount int `json:"total_count"`
			} `json:"filler_words"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 60.0, resp.Data.SpeakingRateWPM)
	require.Equal(t, 1, resp.Data.FillerWords.TotalCount)
}

func TestSpeechEndpoint_MissingSegments(t *testing.T) {
	c, rec := newTestContext(t, `{"transcript":{"segments":[]}}`)

	require.NoError(t, newTestAnalysisHandler().Speech(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
