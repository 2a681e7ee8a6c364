// Package singleinstance 防止两个进程同时处理同一个账号文件
package singleinstance

import (
	"errors"
	"path/filepath"

	"rewardshq/internal/logger"

	"github.com/google/uuid"
)

// ErrAlreadyRunning 已有实例持有锁
var ErrAlreadyRunning = errors.New("已有实例在运行")

// Lock 单实例锁
type Lock struct {
	name   string
	handle lockHandle
}

// Acquire 获取以 key（通常是 query 文件路径）命名的锁
func Acquire(key string) (*Lock, error) {
	name := lockName(key)
	handle, err := acquire(name)
	if err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			logger.Info("检测到已有实例在运行")
		}
		return nil, err
	}
	logger.Debugf("单实例锁已获取: %s", name)
	return &Lock{name: name, handle: handle}, nil
}

// Release 释放锁，可重复调用
func (l *Lock) Release() {
	if l == nil || l.handle == nil {
		return
	}
	l.handle.release()
	l.handle = nil
	logger.Debugf("单实例锁已释放: %s", l.name)
}

// lockName 同一个文件无论用相对路径还是绝对路径都得到同一个名字
func lockName(key string) string {
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	return "RewardsHQ_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

type lockHandle interface {
	release()
}
