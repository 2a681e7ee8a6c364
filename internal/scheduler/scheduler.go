package scheduler

import (
	"context"
	"sync"
	"time"

	"rewardshq/internal/auth"
	"rewardshq/internal/logger"
	"rewardshq/internal/pacer"
	"rewardshq/internal/rewards"
	"rewardshq/pkg/types"
)

const separator = "---------------------------------------"

// Runner 账号轮询器，依次登录每个账号并执行开启的功能
type Runner struct {
	config  *types.Config
	auth    *auth.Authenticator
	rewards *rewards.Service
	pacer   *pacer.Pacer

	cancel  context.CancelFunc
	done    chan struct{}
	running bool
	mu      sync.RWMutex
}

// NewRunner 创建轮询器
// p 必须与 service 共用同一个限速器
func NewRunner(cfg *types.Config, authenticator *auth.Authenticator, service *rewards.Service, p *pacer.Pacer) *Runner {
	return &Runner{
		config:  cfg,
		auth:    authenticator,
		rewards: service,
		pacer:   p,
	}
}

// Start 在后台启动轮询
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true
	r.mu.Unlock()

	logger.Info("启动账号轮询")

	go func() {
		defer close(r.done)
		r.Run(ctx)

		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()
	return nil
}

// Stop 停止轮询并等待当前请求结束
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	logger.Info("停止账号轮询")
	cancel()

	// 请求可能卡在网络上，超时后不再等待
	select {
	case <-done:
		logger.Info("账号轮询已完全停止")
	case <-time.After(3 * time.Second):
		logger.Warn("等待账号轮询停止超时，强制继续退出")
	}
}

// IsRunning 检查是否正在运行
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// Run 循环执行 Step，直到 ctx 被取消
func (r *Runner) Run(ctx context.Context) {
	index := 0
	for ctx.Err() == nil {
		index = r.Step(ctx, index)
	}
	logger.Info("账号轮询已退出")
}

// Step 处理第 index 个账号，返回下一个账号的索引
// 一轮结束回到第一个账号时先等待 delay_iteration，之后每次切换账号等待 delay_change_account
func (r *Runner) Step(ctx context.Context, index int) int {
	total := r.auth.Count()
	logger.Infof("Login To User %d/%d", index+1, total)

	session, err := r.auth.Login(ctx, index)
	if err != nil {
		logger.Warnf("账号 %d 登录失败: %v", index+1, err)
	}

	// 每个账号的第一次领取也要等满一个间隔
	r.pacer.Reset()

	r.runFeatures(ctx, session)

	next := index + 1
	if next >= total {
		next = 0
		logger.Infof("Restarting In %d Second", r.config.DelayIteration)
		if err := r.sleep(ctx, r.config.DelayIteration); err != nil {
			return next
		}
	}

	logger.Infof("Moving to the next account in %d Second", r.config.DelayChangeAccount)
	if err := r.sleep(ctx, r.config.DelayChangeAccount); err != nil {
		return next
	}

	logger.Info(separator)
	return next
}

// runFeatures 按固定顺序执行各项功能，单项失败不影响后续功能
func (r *Runner) runFeatures(ctx context.Context, session *auth.Session) {
	features := []struct {
		name    string
		enabled bool
		run     func() error
	}{
		{"Farming", r.config.Farming, func() error {
			_, err := r.rewards.Farming(ctx, session)
			return err
		}},
		{"Reff", r.config.Referral, func() error {
			_, err := r.rewards.Referrals(ctx, session)
			return err
		}},
		{"Spin", r.config.Spin, func() error {
			result, err := r.rewards.Spin(ctx, session)
			session.Log().Infof("转盘结束: %s, 共 %d 次", result.State, result.Spins)
			return err
		}},
		{"Tasks", r.config.Task, func() error {
			ids, err := r.rewards.Tasks(ctx, session)
			session.Log().Infof("尝试领取 %d 个任务", len(ids))
			return err
		}},
		{"Campaign", r.config.Campaign, func() error {
			_, err := r.rewards.Campaigns(ctx, session)
			return err
		}},
		{"Achievements", r.config.Achievements, func() error {
			n, err := r.rewards.Achievements(ctx, session)
			session.Log().Infof("成功领取 %d 个成就", n)
			return err
		}},
	}

	for _, f := range features {
		if ctx.Err() != nil {
			return
		}
		if !f.enabled {
			logger.Infof("%s: Off", f.name)
			continue
		}
		logger.Infof("%s: On", f.name)
		if err := f.run(); err != nil {
			logger.Errorf("%s 执行失败: %v", f.name, err)
		}
	}
}

func (r *Runner) sleep(ctx context.Context, seconds int) error {
	return r.pacer.Sleep(ctx, time.Duration(seconds)*time.Second)
}
