package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, StrictConfig().Validate())
	require.NoError(t, RelaxedConfig().Validate())
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.DateToleranceDays)
	assert.Equal(t, 0.05, cfg.AmountTolerancePercent)
	assert.Equal(t, 0.35, cfg.Weights.Party)
	assert.Equal(t, 0.25, cfg.Weights.Description)
	assert.Equal(t, 0.25, cfg.Weights.Amount)
	assert.Equal(t, 0.15, cfg.Weights.Date)
	assert.Equal(t, 0.85, cfg.HighConfidence)
	assert.Equal(t, 0.65, cfg.MediumConfidence)
	assert.Equal(t, 0.45, cfg.LowConfidence)
	assert.Equal(t, 5, cfg.MaxMatches)
	assert.Equal(t, 3, cfg.MinDescriptionLength)
	assert.Equal(t, 0.6, cfg.SimilarityThreshold)
}

func TestConfigValidate_WeightSum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Party = 0.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestConfigValidate_WeightOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Party = -0.1
	cfg.Weights.Description = 0.7

	require.Error(t, cfg.Validate())
}

func TestConfigValidate_NegativeTolerances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DateToleranceDays = -1
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.AmountTolerancePercent = -0.05
	require.Error(t, cfg.Validate())
}

func TestConfigValidate_ThresholdOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MediumConfidence = 0.9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly ordered")

	cfg = DefaultConfig()
	cfg.LowConfidence = cfg.MediumConfidence
	require.Error(t, cfg.Validate())
}

func TestConfigValidate_ThresholdBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HighConfidence = 1.5
	require.Error(t, cfg.Validate())
}

func TestConfigValidate_MaxMatches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMatches = 0
	require.Error(t, cfg.Validate())
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Date = 0.5

	engine, err := NewEngine(cfg)
	require.Error(t, err)
	assert.Nil(t, engine)
}
