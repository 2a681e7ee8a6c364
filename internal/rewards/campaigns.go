package rewards

import (
	"context"

	"rewardshq/internal/api"
	"rewardshq/internal/auth"
)

const (
	campaignPage  = 1
	campaignLimit = 10
)

// Campaigns 获取活动列表和活动下的任务，逐个完成，返回任务 ID
func (s *Service) Campaigns(ctx context.Context, session *auth.Session) ([]string, error) {
	if !requireSession(session) {
		return nil, nil
	}
	log := session.Log()
	token := session.AccessToken()

	resp, err := s.client.Campaigns(ctx, token, campaignPage, campaignLimit)
	if err != nil {
		log.Errorf("获取活动列表失败: %v", err)
		return nil, err
	}
	if !resp.OK() {
		log.Errorf("获取活动列表失败，状态码: %d", resp.StatusCode)
		return nil, nil
	}

	var campaignIDs []string
	for _, campaign := range api.DecodeCampaigns(resp) {
		if campaign.ID != "" {
			campaignIDs = append(campaignIDs, campaign.ID)
		}
		log.Infof("活动: %s", campaign.Title)
	}
	if len(campaignIDs) == 0 {
		log.Warn("没有找到活动")
		return nil, nil
	}

	if err := s.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err = s.client.UserQuests(ctx, token, campaignIDs)
	if err != nil {
		log.Errorf("获取活动任务失败: %v", err)
		return nil, err
	}
	if !resp.OK() {
		log.Errorf("获取活动任务失败，状态码: %d", resp.StatusCode)
		return nil, nil
	}

	var questIDs []string
	for _, quest := range api.DecodeQuests(resp) {
		if quest.ID != "" {
			questIDs = append(questIDs, quest.ID)
		}
		log.Infof("%s | 状态: %s | ID: %s", quest.Name, quest.Status, quest.ID)
	}

	if err := s.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	for _, id := range questIDs {
		claim, err := s.client.ClaimQuest(ctx, token, id)
		if err != nil {
			log.Errorf("完成活动任务失败: %v", err)
			return questIDs, err
		}

		data, _ := claim.Data()
		title := api.String(data, "Unknown Title", "metadata", "name")
		if claim.OK() {
			log.Infof("已完成活动任务: %s", title)
		} else {
			log.Errorf("活动任务 %s 完成失败，状态码: %d", title, claim.StatusCode)
		}
		s.record(session, FeatureCampaign, id, title, claim.StatusCode, claim.OK())

		if err := s.pacer.Wait(ctx); err != nil {
			return questIDs, err
		}
	}
	return questIDs, nil
}
