package rewards

import (
	"context"

	"rewardshq/internal/auth"
	"rewardshq/pkg/types"
)

// Farming 开启挖矿并读取当前挖矿状态，读取失败时返回 nil
func (s *Service) Farming(ctx context.Context, session *auth.Session) (*types.FarmingState, error) {
	if !requireSession(session) {
		return nil, nil
	}
	log := session.Log()

	if _, err := s.client.StartFarming(ctx, session.AccessToken()); err != nil {
		log.Errorf("开启挖矿请求失败: %v", err)
		return nil, err
	}

	resp, err := s.client.FarmingState(ctx, session.AccessToken())
	if err != nil {
		log.Errorf("获取挖矿状态失败: %v", err)
		return nil, err
	}

	if !resp.OK() {
		log.Errorf("挖矿失败，状态码: %d", resp.StatusCode)
		s.record(session, FeatureFarming, "", "", resp.StatusCode, false)
		return nil, nil
	}

	log.Info("挖矿请求成功")
	s.record(session, FeatureFarming, "", "", resp.StatusCode, true)
	data, _ := resp.Data()
	return &types.FarmingState{Raw: data}, nil
}
