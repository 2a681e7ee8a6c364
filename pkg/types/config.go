package types

// Features 表示各个奖励功能的开关
type Features struct {
	Farming      bool `json:"auto_farming"`      // 自动挖矿
	Referral     bool `json:"auto_reff"`         // 自动邀请加速
	Spin         bool `json:"auto_spin"`         // 自动转盘
	Task         bool `json:"auto_task"`         // 自动领取任务
	Campaign     bool `json:"auto_campaign"`     // 自动完成活动任务
	Achievements bool `json:"auto_achievements"` // 自动领取成就
}

// Config 表示应用配置
type Config struct {
	Features

	DelayIteration     int `json:"delay_iteration"`      // 一轮账号结束后的等待时间（秒）
	DelayChangeAccount int `json:"delay_change_account"` // 切换账号前的等待时间（秒）
	DelayAction        int `json:"delay_action"`         // 每次领取之间的限速间隔（秒），默认 5
	SpinRetryLimit     int `json:"spin_retry_limit"`     // 转盘余额数据异常时的最大重试次数

	LogLevel    string `json:"log_level"`    // 日志级别：debug, info, warn, error
	LogFile     string `json:"log_file"`     // 日志文件路径，为空时只输出到控制台
	QueryFile   string `json:"query_file"`   // 账号 initData 列表文件
	BaseURL     string `json:"base_url"`     // API 地址
	Proxy       string `json:"proxy"`        // 代理地址
	HTTPTimeout int    `json:"http_timeout"` // 请求超时（秒）
	ActivityLog string `json:"activity_log"` // 领取记录 sqlite 路径，为空时不记录
}
