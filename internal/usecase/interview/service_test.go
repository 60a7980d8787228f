package interview

import (
	"bytes"
	"context"
	"encoding/binary"
	stderrors "errors"
	"io"
	"math"
	"sort"
	"strings"
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/prosody"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/scoring"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/semantic"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/speech"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

type fakeInterviewRepo struct {
	items map[uuid.UUID]*entities.Interview
}

func (r *fakeInterviewRepo) Create(_ context.Context, i *entities.Interview) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeInterviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Interview, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, entities.ErrInterviewNotFound
	}
	return i, nil
}

func (r *fakeInterviewRepo) FindAll(_ context.Context, limit, offset int) ([]*entities.Interview, error) {
	var out []*entities.Interview
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInterviewRepo) Update(_ context.Context, i *entities.Interview) error {
	r.items[i.ID] = i
	return nil
}

type fakeReportRepo struct {
	reports []*entities.SessionReport
}

func (r *fakeReportRepo) Create(_ context.Context, report *entities.SessionReport) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.SessionReport, error) {
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, entities.ErrReportNotFound
}

func (r *fakeReportRepo) FindByInterviewID(_ context.Context, interviewID uuid.UUID) ([]*entities.SessionReport, error) {
	var out []*entities.SessionReport
	for _, rep := range r.reports {
		if rep.InterviewID == interviewID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindLatestByInterviewID(_ context.Context, interviewID uuid.UUID) (*entities.SessionReport, error) {
	var latest *entities.SessionReport
	for _, rep := range r.reports {
		if rep.InterviewID == interviewID {
			latest = rep
		}
	}
	return latest, nil
}

type fakeTranscriptRepo struct {
	transcripts []*entities.Transcript
}

func (r *fakeTranscriptRepo) CreateTranscript(_ context.Context, t *entities.Transcript) error {
	r.transcripts = append(r.transcripts, t)
	return nil
}

func (r *fakeTranscriptRepo) GetTranscriptByInterviewID(_ context.Context, interviewID uuid.UUID) (*entities.Transcript, error) {
	for _, t := range r.transcripts {
		if t.InterviewID == interviewID {
			return t, nil
		}
	}
	return nil, nil
}

var errFakeObjectMissing = stderrors.New("object does not exist")

type fakeStorage struct {
	objects map[string][]byte
}

func (s *fakeStorage) UploadAudio(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	return nil
}

func (s *fakeStorage) DownloadAudio(_ context.Context, objectName string) (io.ReadCloser, error) {
	data, ok := s.objects[objectName]
	if !ok {
		return nil, errFakeObjectMissing
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) ListRecordings(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for name := range s.objects {
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

type fakeTranscriber struct {
	transcript aai.Transcript
}

func (f *fakeTranscriber) Ready() bool { return true }

func (f *fakeTranscriber) Transcribe(_ context.Context, _ io.Reader) (*aai.Transcript, error) {
	t := f.transcript
	return &t, nil
}

// bagEmbedder gives deterministic word-count vectors
type bagEmbedder struct {
	vocab map[string]int
}

func (f *bagEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if f.vocab == nil {
		f.vocab = map[string]int{}
	}
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

func pipelineConfig() *config.AnalysisConfig {
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
		FrameLength:         2048,
		HopLength:           512,
		PitchMinHz:          50,
		PitchMaxHz:          500,
		StabilityThreshold:  0.7,
	}
}

func sineWAV(t *testing.T, seconds int) []byte {
	t.Helper()
	const sampleRate = 8000
	n := sampleRate * seconds

	var data bytes.Buffer
	for i := 0; i < n; i++ {
		v := int16(10000 * math.Sin(2*math.Pi*200*float64(i)/sampleRate))
		require.NoError(t, binary.Write(&data, binary.LittleEndian, v))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())
	return buf.Bytes()
}

func fixtureTranscript() aai.Transcript {
	word := func(text string, startMS, endMS int64) aai.TranscriptWord {
		return aai.TranscriptWord{Text: aai.String(text), Start: aai.Int64(startMS), End: aai.Int64(endMS)}
	}
	return aai.Transcript{
		Text: aai.String("I build Go services. I like testing services."),
		Words: []aai.TranscriptWord{
			word("I", 0, 400),
			word("build", 500, 900),
			word("Go", 1000, 1400),
			word("services.", 1500, 1900),
			word("I", 3500, 3900),
			word("like", 4000, 4400),
			word("testing", 4500, 4900),
			word("services.", 5000, 5400),
		},
		Utterances: []aai.TranscriptUtterance{
			{
				Text:  aai.String("I build Go services."),
				Start: aai.Int64(0),
				End:   aai.Int64(1900),
			},
			{
				Text:  aai.String("I like testing services."),
				Start: aai.Int64(3500),
				End:   aai.Int64(5400),
			},
		},
	}
}

func newPipeline(t *testing.T) (*Service, *fakeInterviewRepo, *fakeReportRepo, *fakeStorage) {
	t.Helper()
	cfg := pipelineConfig()
	logger := zap.NewNop()

	interviewRepo := &fakeInterviewRepo{items: map[uuid.UUID]*entities.Interview{}}
	reportRepo := &fakeReportRepo{}
	transcriptRepo := &fakeTranscriptRepo{}
	store := &fakeStorage{objects: map[string][]byte{}}
	transcriber := &fakeTranscriber{transcript: fixtureTranscript()}

	svc := NewService(
		interviewRepo,
		reportRepo,
		transcriptRepo,
		store,
		transcriber,
		semantic.NewService(&bagEmbedder{}, cfg, logger),
		speech.NewService(cfg, logger),
		prosody.NewService(cfg, logger),
		scoring.NewScorer(cfg),
		scoring.NewSynthesizer(cfg),
		logger,
	)
	return svc, interviewRepo, reportRepo, store
}

func TestProcess_EndToEnd(t *testing.T) {
	svc, _, reportRepo, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Backend practice", "", "I build Go services\n\nEducation in history")
	require.NoError(t, err)

	store.objects["recordings/test.wav"] = sineWAV(t, 7)
	created.AudioObjectKey = "recordings/test.wav"

	result, err := svc.Process(ctx, created.ID)
	require.NoError(t, err)

	// Transcript mapped from utterances, word times in seconds
	require.Len(t, result.Transcript.Segments, 2)
	require.Equal(t, "I build Go services.", result.Transcript.Segments[0].Text)
	require.Len(t, result.Transcript.Segments[0].Words, 4)
	require.InDelta(t, 0.4, result.Transcript.Segments[0].Words[0].End, 1e-9)
	require.InDelta(t, 3.5, result.Transcript.Segments[1].Start, 1e-9)

	require.NotNil(t, result.Relevance)
	require.NotNil(t, result.Speech)
	require.NotNil(t, result.Prosody)
	require.Empty(t, result.ProsodyError)
	require.NotNil(t, result.Feedback)
	require.Greater(t, result.Score.FinalScore, 0.0)

	// First session is the baseline
	require.Equal(t, entities.TrendBaseline, result.Comparison.Trend)

	require.Len(t, reportRepo.reports, 1)
	require.Equal(t, result.ReportID, reportRepo.reports[0].ID)
	require.Equal(t, result.Score.FinalScore, reportRepo.reports[0].FinalScore)
	require.NotEmpty(t, reportRepo.reports[0].Metrics)
}

func TestProcess_SecondRunComparesAgainstFirst(t *testing.T) {
	svc, _, reportRepo, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Backend practice", "", "I build Go services\n\nEducation in history")
	require.NoError(t, err)
	store.objects["recordings/test.wav"] = sineWAV(t, 7)
	created.AudioObjectKey = "recordings/test.wav"

	_, err = svc.Process(ctx, created.ID)
	require.NoError(t, err)

	result, err := svc.Process(ctx, created.ID)
	require.NoError(t, err)

	// Identical input cannot move the score
	require.Equal(t, entities.TrendStagnant, result.Comparison.Trend)
	require.NotNil(t, result.Comparison.PreviousScore)
	require.Equal(t, 0.0, result.Comparison.Delta)
	require.Len(t, reportRepo.reports, 2)
}

func TestProcess_CorruptAudioStillProducesReport(t *testing.T) {
	svc, _, _, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "I build Go services")
	require.NoError(t, err)
	store.objects["recordings/bad.bin"] = []byte("definitely not audio data")
	created.AudioObjectKey = "recordings/bad.bin"

	result, err := svc.Process(ctx, created.ID)
	require.NoError(t, err)

	require.Nil(t, result.Prosody)
	require.NotEmpty(t, result.ProsodyError)
	// Neutral stability keeps the rest of the score meaningful
	require.Greater(t, result.Score.FinalScore, 0.0)
}

func TestProcess_MissingPrerequisites(t *testing.T) {
	svc, _, _, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "")
	require.NoError(t, err)

	_, err = svc.Process(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrNoAudioAttached)

	store.objects["recordings/a.wav"] = sineWAV(t, 1)
	created.AudioObjectKey = "recordings/a.wav"
	_, err = svc.Process(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrNoResumeAttached)
}

func TestAttachAudio(t *testing.T) {
	svc, repo, _, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "resume")
	require.NoError(t, err)

	updated, err := svc.AttachAudio(ctx, created.ID, "answer.wav", "audio/wav", bytes.NewReader(sineWAV(t, 1)), 0)
	require.NoError(t, err)
	require.NotEmpty(t, updated.AudioObjectKey)
	require.Contains(t, store.objects, updated.AudioObjectKey)
	require.Equal(t, updated.AudioObjectKey, repo.items[created.ID].AudioObjectKey)
}

func TestRecordings_ListsEveryUploadForTheInterview(t *testing.T) {
	svc, _, _, store := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "resume")
	require.NoError(t, err)
	other, err := svc.Create(ctx, "Other", "", "resume")
	require.NoError(t, err)

	first, err := svc.AttachAudio(ctx, created.ID, "take1.wav", "audio/wav", bytes.NewReader(sineWAV(t, 1)), 0)
	require.NoError(t, err)
	store.objects["recordings/"+created.ID.String()+"/0older.wav"] = sineWAV(t, 1)
	store.objects["recordings/"+other.ID.String()+"/1.wav"] = sineWAV(t, 1)

	keys, err := svc.Recordings(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	require.Contains(t, keys, first.AudioObjectKey)
	require.NotContains(t, keys, "recordings/"+other.ID.String()+"/1.wav")

	_, err = svc.Recordings(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrInterviewNotFound)
}

func TestProcess_MissingObjectSurfacesAsStorageError(t *testing.T) {
	svc, _, _, _ := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "resume")
	require.NoError(t, err)
	created.AudioObjectKey = "recordings/gone.wav"

	_, err = svc.Process(ctx, created.ID)
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrorCode_INTEGRATION_STORAGE_FAILED, appErr.Code)
	require.ErrorIs(t, err, errFakeObjectMissing)
}

func TestAttachResume_PlainText(t *testing.T) {
	svc, repo, _, _ := newPipeline(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Practice", "", "")
	require.NoError(t, err)

	_, err = svc.AttachResume(ctx, created.ID, []byte("  Go engineer with 5 years experience  "), "text/plain")
	require.NoError(t, err)
	require.Equal(t, "Go engineer with 5 years experience", repo.items[created.ID].ResumeText)

	_, err = svc.AttachResume(ctx, created.ID, []byte("   "), "text/plain")
	require.ErrorIs(t, err, entities.ErrEmptyResume)
}
