package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 30.0, cfg.Analysis.ChunkDuration)
	require.Equal(t, 0.85, cfg.Analysis.RedundancyThreshold)
	require.Equal(t, 120.0, cfg.Analysis.IdealWPMMin)
	require.Equal(t, 160.0, cfg.Analysis.IdealWPMMax)
	require.Equal(t, 2048, cfg.Analysis.FrameLength)
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Analysis.WeightPace = 0.5
	err = cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "weights must sum to 1.0")
}

func TestValidate_PitchRangeOrdering(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Analysis.PitchMaxHz = 40 // below PitchMinHz
	require.Error(t, cfg.Validate())
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "cache.internal"
	cfg.Redis.Port = "6380"
	require.Equal(t, "cache.internal:6380", cfg.GetRedisAddr())
}
