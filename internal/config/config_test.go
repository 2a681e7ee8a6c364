package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_AllKeys(t *testing.T) {
	path := writeConfig(t, `{
		"auto_farming": true,
		"auto_reff": false,
		"auto_spin": true,
		"auto_task": false,
		"auto_campaign": true,
		"auto_achievements": false,
		"delay_iteration": 3600,
		"delay_change_account": 15
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Farming)
	assert.False(t, cfg.Referral)
	assert.True(t, cfg.Spin)
	assert.False(t, cfg.Task)
	assert.True(t, cfg.Campaign)
	assert.False(t, cfg.Achievements)
	assert.Equal(t, 3600, cfg.DelayIteration)
	assert.Equal(t, 15, cfg.DelayChangeAccount)

	assert.Equal(t, DefaultDelayAction, cfg.DelayAction)
	assert.Equal(t, DefaultSpinRetry, cfg.SpinRetryLimit)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultQueryFile, cfg.QueryFile)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, "", cfg.ActivityLog)
}

func TestLoad_MissingKeysAreFatal(t *testing.T) {
	path := writeConfig(t, `{
		"auto_farming": true,
		"auto_spin": true,
		"auto_task": true,
		"auto_campaign": true,
		"auto_achievements": true,
		"delay_iteration": 10
	}`)

	cfg, err := Load(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKeys))
	assert.Contains(t, err.Error(), "auto_reff")
	assert.Contains(t, err.Error(), "delay_change_account")
	assert.NotContains(t, err.Error(), "auto_farming")
}

func TestLoad_OptionalOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"auto_farming": false,
		"auto_reff": false,
		"auto_spin": false,
		"auto_task": false,
		"auto_campaign": false,
		"auto_achievements": false,
		"delay_iteration": 0,
		"delay_change_account": 0,
		"delay_action": 1,
		"spin_retry_limit": 7,
		"base_url": "http://127.0.0.1:8080/v1/",
		"log_level": "debug"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DelayAction)
	assert.Equal(t, 7, cfg.SpinRetryLimit)
	assert.Equal(t, "http://127.0.0.1:8080/v1", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `{
		"auto_farming": false,
		"auto_reff": false,
		"auto_spin": false,
		"auto_task": false,
		"auto_campaign": false,
		"auto_achievements": false,
		"delay_iteration": 60,
		"delay_change_account": 5
	}`)
	t.Setenv("REWARDSHQ_AUTO_SPIN", "true")
	t.Setenv("REWARDSHQ_DELAY_ITERATION", "120")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Spin)
	assert.Equal(t, 120, cfg.DelayIteration)
}

func TestLoad_Validation(t *testing.T) {
	path := writeConfig(t, `{
		"auto_farming": false,
		"auto_reff": false,
		"auto_spin": false,
		"auto_task": false,
		"auto_campaign": false,
		"auto_achievements": false,
		"delay_iteration": -1,
		"delay_change_account": 5
	}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay_iteration")

	path = writeConfig(t, `{
		"auto_farming": false,
		"auto_reff": false,
		"auto_spin": false,
		"auto_task": false,
		"auto_campaign": false,
		"auto_achievements": false,
		"delay_iteration": 1,
		"delay_change_account": 5,
		"log_level": "verbose"
	}`)
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestLoad_CreatesTemplateWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefaultCreated))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Spin)
	assert.Equal(t, 3600, cfg.DelayIteration)
	assert.Equal(t, 10, cfg.DelayChangeAccount)
}
