//go:build !windows

package singleinstance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type fileHandle struct {
	file *os.File
}

func (h fileHandle) release() {
	unix.Flock(int(h.file.Fd()), unix.LOCK_UN)
	h.file.Close()
}

// acquire 在临时目录的锁文件上加 flock
func acquire(name string) (lockHandle, error) {
	path := filepath.Join(os.TempDir(), name+".lock")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("打开锁文件失败: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("加锁失败: %w", err)
	}
	return fileHandle{file: file}, nil
}
