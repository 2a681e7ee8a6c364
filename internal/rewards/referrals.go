package rewards

import (
	"context"

	"rewardshq/internal/api"
	"rewardshq/internal/auth"
)

const (
	referralPage  = 1
	referralLimit = 10
)

// Referrals 为邀请列表中的每个用户加速，返回加速成功的 ID
func (s *Service) Referrals(ctx context.Context, session *auth.Session) ([]string, error) {
	if !requireSession(session) {
		return nil, nil
	}
	log := session.Log()
	token := session.AccessToken()

	resp, err := s.client.Referrals(ctx, token, referralPage, referralLimit)
	if err != nil {
		log.Errorf("获取邀请列表失败: %v", err)
		return nil, err
	}
	if !resp.OK() {
		log.Errorf("获取邀请列表失败: %s", resp.Message())
		return nil, nil
	}

	var ids []string
	for i, referral := range api.DecodeReferrals(resp) {
		if referral.ID == "" {
			log.Warnf("第 %d 条邀请记录缺少 ID: %s", i+1, resp.Message())
			continue
		}
		ids = append(ids, referral.ID)
		log.Infof("%s %s | ID: %s", referral.FirstName, referral.LastName, referral.ID)
	}

	if err := s.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	var boosted []string
	for _, id := range ids {
		boost, err := s.client.BoostReferral(ctx, token, id)
		if err != nil {
			log.Errorf("加速邀请 %s 失败: %v", id, err)
			continue
		}

		if boost.OK() {
			log.Infof("加速邀请 %s: %s", id, boost.Message())
			boosted = append(boosted, id)
		} else {
			log.Errorf("加速邀请 %s 失败: %s", id, boost.Message())
		}
		s.record(session, FeatureReferral, id, "", boost.StatusCode, boost.OK())
	}
	return boosted, nil
}
