package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/cenkalti/backoff/v4"

	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// ErrTranscriberNotConfigured is returned when no API key was provided
var ErrTranscriberNotConfigured = errors.New("transcription service not configured")

// TranscriptionClient wraps the official AssemblyAI SDK for synchronous
// audio transcription with word-level timestamps.
type TranscriptionClient struct {
	apiKey string
	client *aai.Client
}

// NewTranscriptionClient creates a transcription client using the provided
// config. If cfg is nil, falls back to environment variables.
func NewTranscriptionClient(cfg *config.AssemblyAIConfig) *TranscriptionClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &TranscriptionClient{
		apiKey: apiKey,
		client: aai.NewClient(apiKey),
	}
}

// Ready reports whether the client was configured with an API key
func (c *TranscriptionClient) Ready() bool {
	return c.apiKey != ""
}

// Transcribe uploads the audio stream and blocks until the transcript is
// complete. Speaker labels are requested so utterance boundaries are
// available for segment construction.
func (c *TranscriptionClient) Transcribe(ctx context.Context, audio io.Reader) (*aai.Transcript, error) {
	if !c.Ready() {
		return nil, ErrTranscriberNotConfigured
	}

	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}

	// Uploads hit transient 5xx responses under load, retry with backoff.
	// Each attempt needs a fresh reader over the buffered audio.
	var uploadURL string
	uploadFn := func() error {
		var err error
		uploadURL, err = c.client.Upload(ctx, bytes.NewReader(data))
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
		Punctuate:     aai.Bool(true),
		FormatText:    aai.Bool(true),
	}
	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown transcription error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("transcription failed: %s", msg)
	}
	return &transcript, nil
}
