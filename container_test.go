package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rewardshq/internal/activitylog"
	"rewardshq/internal/rewards"
	"rewardshq/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, activityLog string) Options {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	queryPath := filepath.Join(dir, "query.txt")

	cfg := `{
		"auto_farming": false,
		"auto_reff": false,
		"auto_spin": false,
		"auto_task": false,
		"auto_campaign": false,
		"auto_achievements": false,
		"delay_iteration": 1,
		"delay_change_account": 1,
		"log_file": "",
		"base_url": "http://127.0.0.1:1",
		"activity_log": "` + activityLog + `"
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0644))
	require.NoError(t, os.WriteFile(queryPath, []byte("q0\nq1\n"), 0644))

	return Options{ConfigPath: configPath, QueryPath: queryPath}
}

func TestBuildContainer_ResolvesApp(t *testing.T) {
	opts := writeFixtures(t, "")
	container, err := BuildContainer(opts)
	require.NoError(t, err)

	err = container.Invoke(func(app *App, cfg *types.Config, queries []string, recorder rewards.Recorder) {
		assert.NotNil(t, app)
		assert.Equal(t, opts.QueryPath, cfg.QueryFile)
		assert.Equal(t, []string{"q0", "q1"}, queries)
		assert.IsType(t, rewards.NopRecorder{}, recorder)
	})
	require.NoError(t, err)
}

func TestBuildContainer_ActivityLogRecorder(t *testing.T) {
	dbPath := filepath.ToSlash(filepath.Join(t.TempDir(), "activity.db"))
	container, err := BuildContainer(writeFixtures(t, dbPath))
	require.NoError(t, err)

	err = container.Invoke(func(app *App, recorder rewards.Recorder) {
		assert.IsType(t, &activitylog.Store{}, recorder)
		app.Quit()
	})
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	container, err := BuildContainer(writeFixtures(t, ""))
	require.NoError(t, err)

	err = container.Invoke(func(app *App) {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		assert.NoError(t, app.Run(ctx))
		// 重复退出不会阻塞
		app.Quit()
	})
	require.NoError(t, err)
}
