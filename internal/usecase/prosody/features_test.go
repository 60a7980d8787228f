package prosody

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sine(freq float64, sampleRate, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return samples
}

func TestRMSEnergy(t *testing.T) {
	samples := make([]float64, 4096)
	for i := range samples {
		samples[i] = 0.25
	}

	series := RMSEnergy(samples, 2048, 512)

	require.Len(t, series, 8)
	for _, v := range series {
		require.InDelta(t, 0.25, v, 1e-9)
	}
}

func TestRMSEnergy_ShortFinalWindow(t *testing.T) {
	samples := make([]float64, 600)
	series := RMSEnergy(samples, 2048, 512)
	// Frames start at 0 and 512; the second window is 88 samples long.
	require.Len(t, series, 2)
}

func TestPitchTrack_SineWave(t *testing.T) {
	const sampleRate = 8000
	samples := sine(200, sampleRate, 16000)

	series := PitchTrack(samples, sampleRate, 2048, 512, 50, 500)

	require.NotEmpty(t, series)
	voiced := 0
	for _, f0 := range series {
		if f0 == 0 {
			continue
		}
		voiced++
		require.InDelta(t, 200.0, f0, 5.0)
	}
	require.Greater(t, voiced, len(series)/2)
}

func TestPitchTrack_Silence(t *testing.T) {
	samples := make([]float64, 8000)
	series := PitchTrack(samples, 8000, 2048, 512, 50, 500)
	for _, f0 := range series {
		require.Equal(t, 0.0, f0)
	}
}
