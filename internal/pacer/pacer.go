package pacer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// maxBackoffFactor 退避时间最多为基础间隔的 8 倍
const maxBackoffFactor = 8

// Clock 时间来源，测试中可替换为 FakeClock
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock 返回系统时钟
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Sleep 等待 d，context 取消时提前返回
func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pacer 请求限速器
// 令牌桶容量为 1，每个 interval 产生一个令牌，两次 Wait 返回的时间间隔不小于 interval
type Pacer struct {
	limiter  *rate.Limiter
	limit    rate.Limit
	clock    Clock
	interval time.Duration
}

// New 创建限速器，interval 为 0 时不限速
func New(interval time.Duration, clock Clock) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	p := &Pacer{
		limit:    limit,
		clock:    clock,
		interval: interval,
	}
	p.Reset()
	return p
}

// Reset 清空令牌桶，下一次 Wait 重新等满一个间隔
// 限速之外的等待（切换账号、退避）不能算作领取之间的间隔
func (p *Pacer) Reset() {
	p.limiter = rate.NewLimiter(p.limit, 1)
	p.limiter.ReserveN(p.clock.Now(), 1)
}

// Clock 返回限速器使用的时钟
func (p *Pacer) Clock() Clock {
	return p.clock
}

// Wait 阻塞到下一个令牌可用
func (p *Pacer) Wait(ctx context.Context) error {
	now := p.clock.Now()
	r := p.limiter.ReserveN(now, 1)
	if !r.OK() {
		return fmt.Errorf("限速器无法预留令牌")
	}

	delay := r.DelayFrom(now)
	if delay <= 0 {
		return ctx.Err()
	}
	if err := p.clock.Sleep(ctx, delay); err != nil {
		r.CancelAt(p.clock.Now())
		return err
	}
	return nil
}

// Backoff 第 attempt 次重试前的等待时间，按 2 的幂增长
func (p *Pacer) Backoff(attempt int) time.Duration {
	if p.interval <= 0 || attempt <= 0 {
		return p.interval
	}
	factor := time.Duration(1) << uint(attempt)
	if factor > maxBackoffFactor {
		factor = maxBackoffFactor
	}
	return p.interval * factor
}

// Sleep 通过限速器的时钟等待 d，结束后清空令牌桶
func (p *Pacer) Sleep(ctx context.Context, d time.Duration) error {
	err := p.clock.Sleep(ctx, d)
	p.Reset()
	return err
}
