package rewards

import (
	"context"
	"net/http"

	"rewardshq/internal/api"
	"rewardshq/internal/auth"
)

// Achievements 领取所有成就的每个阶段，只有 201 算成功，返回成功次数
func (s *Service) Achievements(ctx context.Context, session *auth.Session) (int, error) {
	if !requireSession(session) {
		return 0, nil
	}
	log := session.Log()
	token := session.AccessToken()

	resp, err := s.client.Achievements(ctx, token)
	if err != nil {
		log.Errorf("获取成就列表失败: %v", err)
		return 0, err
	}
	if !resp.OK() {
		log.Errorf("获取成就列表失败，状态码: %d", resp.StatusCode)
		return 0, nil
	}

	claimed := 0
	for _, achievement := range api.DecodeAchievements(resp) {
		for _, target := range achievement.Targets {
			claim, err := s.client.ClaimAchievement(ctx, token, achievement.ID, target)
			if err != nil {
				log.Errorf("领取成就 %s 阶段 %s 失败: %v", achievement.Name, target, err)
				return claimed, err
			}

			success := claim.StatusCode == http.StatusCreated
			if success {
				claimed++
				log.Infof("成就领取成功: %s, 阶段: %s", achievement.Name, target)
			} else {
				log.Errorf("成就领取失败: %s, 阶段: %s, 状态码: %d", achievement.Name, target, claim.StatusCode)
			}
			s.record(session, FeatureAchievement, achievement.ID+"/"+target, achievement.Name, claim.StatusCode, success)

			if err := s.pacer.Wait(ctx); err != nil {
				return claimed, err
			}
		}
	}
	return claimed, nil
}
