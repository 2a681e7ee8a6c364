// Package activitylog 把每次领取结果写入 sqlite，供 stats 命令查看
package activitylog

import (
	"fmt"
	"os"
	"path/filepath"

	"rewardshq/internal/logger"
	"rewardshq/pkg/types"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store 领取记录库
type Store struct {
	db *gorm.DB
}

// Open 打开（必要时创建）记录库
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("创建记录库目录失败: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("打开记录库失败: %w", err)
	}

	if err := db.AutoMigrate(&ClaimLogModel{}); err != nil {
		return nil, fmt.Errorf("迁移记录库失败: %w", err)
	}

	logger.Infof("领取记录库: %s", dbPath)
	return &Store{db: db}, nil
}

// Record 写入一条记录，失败只记日志
func (s *Store) Record(record types.ClaimRecord) {
	row := ClaimLogModel{
		SessionID:  record.SessionID,
		Account:    record.Account,
		Username:   record.Username,
		Feature:    record.Feature,
		ItemID:     record.ItemID,
		ItemName:   record.ItemName,
		StatusCode: record.StatusCode,
		Success:    record.Success,
		ClaimedAt:  record.Time,
	}
	if err := s.db.Create(&row).Error; err != nil {
		logger.Warnf("写入领取记录失败: %v", err)
	}
}

// Summary 按功能汇总
func (s *Store) Summary() ([]FeatureSummary, error) {
	var rows []FeatureSummary
	err := s.db.Model(&ClaimLogModel{}).
		Select("feature, COUNT(*) AS attempts, SUM(CASE WHEN success THEN 1 ELSE 0 END) AS successes").
		Group("feature").
		Order("feature").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("汇总领取记录失败: %w", err)
	}
	return rows, nil
}

// Recent 最近的 limit 条记录，按时间倒序
func (s *Store) Recent(limit int) ([]types.ClaimRecord, error) {
	var rows []ClaimLogModel
	if err := s.db.Order("claimed_at DESC, id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("读取领取记录失败: %w", err)
	}

	records := make([]types.ClaimRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, types.ClaimRecord{
			SessionID:  row.SessionID,
			Account:    row.Account,
			Username:   row.Username,
			Feature:    row.Feature,
			ItemID:     row.ItemID,
			ItemName:   row.ItemName,
			StatusCode: row.StatusCode,
			Success:    row.Success,
			Time:       row.ClaimedAt,
		})
	}
	return records, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
