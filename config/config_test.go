package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_DEBUG", "")
	t.Setenv("ANALYZER_EVAL_DATE", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.EvalDate.IsZero())
}

func TestLoad_EvalDateOverride(t *testing.T) {
	t.Setenv("ANALYZER_EVAL_DATE", "2026-06-01")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, timeutil.Date(2026, 6, 1), cfg.EvalDate)
}

func TestLoad_RejectsMalformedEvalDate(t *testing.T) {
	t.Setenv("ANALYZER_EVAL_DATE", "01.06.2026")

	_, err := Load()

	assert.Error(t, err)
}
