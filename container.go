package main

import (
	"fmt"
	"time"

	"rewardshq/internal/accounts"
	"rewardshq/internal/activitylog"
	"rewardshq/internal/api"
	"rewardshq/internal/auth"
	"rewardshq/internal/config"
	"rewardshq/internal/logger"
	"rewardshq/internal/pacer"
	"rewardshq/internal/rewards"
	"rewardshq/internal/scheduler"
	"rewardshq/pkg/types"

	"go.uber.org/dig"
)

// Options 命令行参数
type Options struct {
	ConfigPath string
	QueryPath  string
}

// ProvideConfig 加载配置并按配置重新初始化日志
func ProvideConfig(opts Options) (*types.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.QueryPath != "" {
		cfg.QueryFile = opts.QueryPath
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, nil
}

// ProvideQueries 读取账号列表
func ProvideQueries(cfg *types.Config) ([]string, error) {
	return accounts.Load(cfg.QueryFile)
}

func ProvideClock() pacer.Clock {
	return pacer.SystemClock()
}

func ProvideAPIClient(cfg *types.Config) (*api.Client, error) {
	return api.NewClient(cfg.BaseURL, cfg.Proxy, time.Duration(cfg.HTTPTimeout)*time.Second)
}

func ProvideAuthenticator(client *api.Client, queries []string) *auth.Authenticator {
	return auth.NewAuthenticator(client, queries)
}

func ProvidePacer(cfg *types.Config, clock pacer.Clock) *pacer.Pacer {
	return pacer.New(time.Duration(cfg.DelayAction)*time.Second, clock)
}

// ProvideRecorder activity_log 为空时不记录
func ProvideRecorder(cfg *types.Config) (rewards.Recorder, error) {
	if cfg.ActivityLog == "" {
		return rewards.NopRecorder{}, nil
	}
	return activitylog.Open(cfg.ActivityLog)
}

func ProvideRewardService(client *api.Client, p *pacer.Pacer, recorder rewards.Recorder, cfg *types.Config) *rewards.Service {
	return rewards.NewService(client, p, recorder, cfg.SpinRetryLimit)
}

func ProvideRunner(cfg *types.Config, authenticator *auth.Authenticator, service *rewards.Service, p *pacer.Pacer) *scheduler.Runner {
	return scheduler.NewRunner(cfg, authenticator, service, p)
}

// BuildContainer 注册所有组件
func BuildContainer(opts Options) (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name string
		fn   interface{}
	}{
		{"options", func() Options { return opts }},
		{"config", ProvideConfig},
		{"queries", ProvideQueries},
		{"clock", ProvideClock},
		{"api client", ProvideAPIClient},
		{"authenticator", ProvideAuthenticator},
		{"pacer", ProvidePacer},
		{"recorder", ProvideRecorder},
		{"reward service", ProvideRewardService},
		{"runner", ProvideRunner},
		{"app", NewApp},
	}

	for _, p := range providers {
		if err := container.Provide(p.fn); err != nil {
			return nil, fmt.Errorf("注册 %s 失败: %w", p.name, err)
		}
	}
	return container, nil
}
