package rewards

import (
	"context"

	"rewardshq/internal/api"
	"rewardshq/internal/auth"
)

// SpinState 转盘状态
type SpinState string

const (
	SpinCheckBalance SpinState = "CHECK_BALANCE"
	SpinSpinning     SpinState = "SPIN"
	SpinDone         SpinState = "DONE"
	SpinFailed       SpinState = "FAILED"
)

// SpinResult 转盘结果
type SpinResult struct {
	Spins int
	State SpinState
}

// Spin 一直转到次数用完或失败
// 余额数据异常时按指数退避重试，连续失败 spinRetryLimit 次后结束
func (s *Service) Spin(ctx context.Context, session *auth.Session) (SpinResult, error) {
	result := SpinResult{State: SpinCheckBalance}
	if !requireSession(session) {
		result.State = SpinFailed
		return result, nil
	}
	log := session.Log()
	token := session.AccessToken()
	failures := 0

	for {
		switch result.State {
		case SpinCheckBalance:
			resp, err := s.client.SpinBalance(ctx, token)
			if err != nil {
				log.Errorf("获取转盘次数失败: %v", err)
				result.State = SpinFailed
				return result, err
			}

			balance, ok := api.DecodeSpinBalance(resp)
			if !ok {
				failures++
				log.Warnf("转盘次数数据异常，重试 (%d/%d)", failures, s.spinRetryLimit)
				if failures >= s.spinRetryLimit {
					log.Error("转盘次数数据持续异常，停止转盘")
					result.State = SpinFailed
					continue
				}
				if err := s.pacer.Sleep(ctx, s.pacer.Backoff(failures-1)); err != nil {
					return result, err
				}
				continue
			}
			failures = 0

			if balance.NumberSpin <= 0 {
				log.Info("没有剩余转盘次数")
				result.State = SpinDone
				continue
			}
			result.State = SpinSpinning

		case SpinSpinning:
			resp, err := s.client.Spin(ctx, token)
			if err != nil {
				log.Errorf("转盘请求失败: %v", err)
				result.State = SpinFailed
				return result, err
			}

			attempt := result.Spins + 1
			if !resp.OK() {
				message := resp.Message()
				if message == "" {
					message = "Unknown error"
				}
				log.Errorf("第 %d 次转盘失败: %s", attempt, message)
				s.record(session, FeatureSpin, "", "", resp.StatusCode, false)
				result.State = SpinFailed
				continue
			}

			result.Spins = attempt
			s.record(session, FeatureSpin, "", "", resp.StatusCode, true)
			if reward, ok := api.DecodeSpinReward(resp); ok {
				log.Infof("第 %d 次转盘成功! 积分: %d, XP: %d, USDT: %v, 剩余次数: %d",
					attempt, reward.Point, reward.XP, reward.USDT, s.remainingSpins(ctx, session))
			} else {
				log.Warnf("第 %d 次转盘奖励数据异常", attempt)
			}

			result.State = SpinCheckBalance
			if err := s.pacer.Wait(ctx); err != nil {
				return result, err
			}

		default:
			return result, nil
		}
	}
}

// remainingSpins 仅用于展示，读取失败时返回 0
func (s *Service) remainingSpins(ctx context.Context, session *auth.Session) int64 {
	resp, err := s.client.SpinBalance(ctx, session.AccessToken())
	if err != nil {
		session.Log().Debugf("读取剩余转盘次数失败: %v", err)
		return 0
	}
	balance, _ := api.DecodeSpinBalance(resp)
	return balance.NumberSpin
}
