package types

import "time"

// TaskCategory 任务分类
type TaskCategory string

const (
	TaskCategoryPrimary TaskCategory = "task"
	TaskCategoryBasic   TaskCategory = "basic"
	TaskCategoryPartner TaskCategory = "partner"
)

// Task 可领取的任务
type Task struct {
	ID          string
	Name        string
	IsCompleted bool
	IsCanClaim  bool
}

// Claimable 未完成且允许领取
func (t Task) Claimable() bool {
	return !t.IsCompleted && t.IsCanClaim
}

// Campaign 活动
type Campaign struct {
	ID    string
	Title string
}

// Quest 活动下的用户任务
type Quest struct {
	ID     string
	Name   string
	Status string
}

// Referral 邀请记录
type Referral struct {
	ID        string
	FirstName string
	LastName  string
}

// Achievement 一次性成就，Targets 为连续登录等阶段目标
type Achievement struct {
	ID      string
	Name    string
	Targets []string
}

// SpinBalance 转盘余额
type SpinBalance struct {
	NumberSpin int64
}

// SpinReward 单次转盘奖励
type SpinReward struct {
	Point int64
	XP    int64
	USDT  float64
}

// FarmingState 挖矿状态，Raw 为服务端返回的原始 data
type FarmingState struct {
	Raw []byte
}

// ClaimRecord 一次领取动作的结果
type ClaimRecord struct {
	SessionID  string
	Account    int
	Username   string
	Feature    string
	ItemID     string
	ItemName   string
	StatusCode int
	Success    bool
	Time       time.Time
}
