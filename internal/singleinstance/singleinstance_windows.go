//go:build windows

package singleinstance

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type mutexHandle windows.Handle

func (h mutexHandle) release() {
	windows.CloseHandle(windows.Handle(h))
}

// acquire 创建命名互斥体
func acquire(name string) (lockHandle, error) {
	ptr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("创建互斥体名称失败: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, ptr)
	if err != nil {
		if err == windows.ERROR_ALREADY_EXISTS {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("创建互斥体失败: %w", err)
	}
	return mutexHandle(handle), nil
}
