package rewards

import (
	"rewardshq/internal/api"
	"rewardshq/internal/auth"
	"rewardshq/internal/logger"
	"rewardshq/internal/pacer"
	"rewardshq/pkg/types"
)

// 领取记录中的功能名
const (
	FeatureFarming     = "farming"
	FeatureSpin        = "spin"
	FeatureTask        = "task"
	FeatureCampaign    = "campaign"
	FeatureReferral    = "referral"
	FeatureAchievement = "achievement"
)

// Recorder 接收每一次领取的结果
type Recorder interface {
	Record(record types.ClaimRecord)
}

// NopRecorder 丢弃所有记录
type NopRecorder struct{}

func (NopRecorder) Record(types.ClaimRecord) {}

// Service 执行各项奖励动作
type Service struct {
	client         *api.Client
	pacer          *pacer.Pacer
	recorder       Recorder
	spinRetryLimit int
}

// NewService 创建奖励服务，recorder 为 nil 时不记录
func NewService(client *api.Client, p *pacer.Pacer, recorder Recorder, spinRetryLimit int) *Service {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if spinRetryLimit < 1 {
		spinRetryLimit = 1
	}
	return &Service{
		client:         client,
		pacer:          p,
		recorder:       recorder,
		spinRetryLimit: spinRetryLimit,
	}
}

// requireSession 会话无效时记录警告并返回 false
func requireSession(session *auth.Session) bool {
	if !session.Valid() {
		logger.Warn("没有可用的 token，请先登录")
		return false
	}
	return true
}

func (s *Service) record(session *auth.Session, feature, itemID, itemName string, statusCode int, success bool) {
	s.recorder.Record(types.ClaimRecord{
		SessionID:  session.ID.String(),
		Account:    session.Index + 1,
		Username:   session.Username,
		Feature:    feature,
		ItemID:     itemID,
		ItemName:   itemName,
		StatusCode: statusCode,
		Success:    success,
		Time:       s.pacer.Clock().Now(),
	})
}
