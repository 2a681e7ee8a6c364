package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rewardshq/internal/logger"
	"rewardshq/pkg/types"

	"github.com/spf13/viper"
)

const (
	DefaultConfigFile  = "config.json"
	DefaultQueryFile   = "query.txt"
	DefaultBaseURL     = "https://api-rewardshq.shards.tech/v1"
	DefaultLogLevel    = "info"
	DefaultLogFile     = "logs/rewardshq.log"
	DefaultDelayAction = 5 // 每次领取之间默认间隔 5 秒
	DefaultSpinRetry   = 3
	DefaultHTTPTimeout = 30
	EnvPrefix          = "REWARDSHQ"
)

// RequiredKeys 配置文件中必须出现的键
var RequiredKeys = []string{
	"auto_farming",
	"auto_reff",
	"auto_spin",
	"auto_task",
	"auto_campaign",
	"auto_achievements",
	"delay_iteration",
	"delay_change_account",
}

var (
	// ErrMissingKeys 缺少必需的配置项
	ErrMissingKeys = errors.New("缺少必需的配置项")
	// ErrDefaultCreated 配置文件不存在，已生成模板
	ErrDefaultCreated = errors.New("已生成默认配置文件")
)

// Load 加载配置文件，path 为空时使用当前目录下的 config.json
func Load(path string) (*types.Config, error) {
	configPath := getConfigPath(path)

	v := viper.New()
	v.SetConfigType("json")
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// 设置可选项默认值，必需项不设默认值，否则 IsSet 永远为 true
	v.SetDefault("delay_action", DefaultDelayAction)
	v.SetDefault("spin_retry_limit", DefaultSpinRetry)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("query_file", DefaultQueryFile)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("proxy", "")
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("activity_log", "")

	// 如果配置文件不存在，生成模板后退出，让用户先确认开关
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			return nil, fmt.Errorf("创建默认配置文件失败: %w", err)
		}
		return nil, fmt.Errorf("%w: %s，请检查后重新运行", ErrDefaultCreated, configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var missing []string
	for _, key := range RequiredKeys {
		if !v.IsSet(key) {
			logger.Errorf("缺少配置项: %s，请检查 %s", key, configPath)
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	cfg := &types.Config{
		Features: types.Features{
			Farming:      v.GetBool("auto_farming"),
			Referral:     v.GetBool("auto_reff"),
			Spin:         v.GetBool("auto_spin"),
			Task:         v.GetBool("auto_task"),
			Campaign:     v.GetBool("auto_campaign"),
			Achievements: v.GetBool("auto_achievements"),
		},
		DelayIteration:     v.GetInt("delay_iteration"),
		DelayChangeAccount: v.GetInt("delay_change_account"),
		DelayAction:        v.GetInt("delay_action"),
		SpinRetryLimit:     v.GetInt("spin_retry_limit"),
		LogLevel:           v.GetString("log_level"),
		LogFile:            v.GetString("log_file"),
		QueryFile:          v.GetString("query_file"),
		BaseURL:            strings.TrimRight(v.GetString("base_url"), "/"),
		Proxy:              v.GetString("proxy"),
		HTTPTimeout:        v.GetInt("http_timeout"),
		ActivityLog:        v.GetString("activity_log"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return cfg, nil
}

// validateConfig 验证配置
func validateConfig(config *types.Config) error {
	if config.DelayIteration < 0 {
		return fmt.Errorf("delay_iteration 不能小于 0")
	}
	if config.DelayChangeAccount < 0 {
		return fmt.Errorf("delay_change_account 不能小于 0")
	}
	if config.DelayAction < 0 {
		return fmt.Errorf("delay_action 不能小于 0")
	}
	if config.SpinRetryLimit < 1 {
		return fmt.Errorf("spin_retry_limit 不能小于 1")
	}
	if config.HTTPTimeout < 1 {
		return fmt.Errorf("http_timeout 不能小于 1 秒")
	}
	if config.BaseURL == "" {
		return fmt.Errorf("base_url 不能为空")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return fmt.Errorf("无效的日志级别: %s", config.LogLevel)
	}

	return nil
}

// getConfigPath 获取配置文件路径
func getConfigPath(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(".", DefaultConfigFile)
}

// createDefaultConfig 创建默认配置文件，所有功能默认关闭
func createDefaultConfig(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("json")
	for _, key := range RequiredKeys {
		v.Set(key, false)
	}
	v.Set("delay_iteration", 3600)
	v.Set("delay_change_account", 10)
	v.Set("delay_action", DefaultDelayAction)

	return v.WriteConfigAs(configPath)
}
