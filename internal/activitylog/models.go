package activitylog

import (
	"time"

	"gorm.io/gorm"
)

// ClaimLogModel 一次领取动作
type ClaimLogModel struct {
	gorm.Model
	SessionID  string    `gorm:"column:session_id;index"`
	Account    int       `gorm:"column:account;index"`
	Username   string    `gorm:"column:username"`
	Feature    string    `gorm:"column:feature;index"`
	ItemID     string    `gorm:"column:item_id"`
	ItemName   string    `gorm:"column:item_name"`
	StatusCode int       `gorm:"column:status_code"`
	Success    bool      `gorm:"column:success;index"`
	ClaimedAt  time.Time `gorm:"column:claimed_at;index"`
}

func (ClaimLogModel) TableName() string {
	return "claim_logs"
}

// FeatureSummary 按功能汇总的领取次数
type FeatureSummary struct {
	Feature   string
	Attempts  int64
	Successes int64
}
