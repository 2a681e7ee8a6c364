package main

import (
	"context"
	"io"
	"sync"

	"rewardshq/internal/logger"
	"rewardshq/internal/rewards"
	"rewardshq/internal/scheduler"
	"rewardshq/pkg/types"
)

// App 应用入口，负责启动和退出账号轮询
type App struct {
	config     *types.Config
	runner     *scheduler.Runner
	recorder   rewards.Recorder
	shouldQuit bool
	quitMu     sync.Mutex
}

// NewApp 创建应用
func NewApp(cfg *types.Config, runner *scheduler.Runner, recorder rewards.Recorder) *App {
	return &App{
		config:   cfg,
		runner:   runner,
		recorder: recorder,
	}
}

// Run 启动轮询，阻塞到 ctx 取消后退出
func (a *App) Run(ctx context.Context) error {
	logger.Infof("功能开关: 挖矿=%v 邀请=%v 转盘=%v 任务=%v 活动=%v 成就=%v",
		a.config.Farming, a.config.Referral, a.config.Spin, a.config.Task, a.config.Campaign, a.config.Achievements)

	if err := a.runner.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	a.Quit()
	return nil
}

// Quit 停止轮询并关闭记录库，可重复调用
func (a *App) Quit() {
	a.quitMu.Lock()
	if a.shouldQuit {
		a.quitMu.Unlock()
		logger.Warn("退出程序已被调用，跳过重复退出")
		return
	}
	a.shouldQuit = true
	a.quitMu.Unlock()

	logger.Info("开始退出程序")
	a.runner.Stop()

	// 轮询还没停下时仍可能写记录，不能关闭记录库
	if a.runner.IsRunning() {
		logger.Warn("账号轮询仍在运行，跳过关闭领取记录库")
		return
	}

	if closer, ok := a.recorder.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warnf("关闭领取记录库失败: %v", err)
		}
	}
}
