package accounts

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"rewardshq/internal/logger"
)

// ErrNoAccounts 账号列表为空
var ErrNoAccounts = errors.New("账号列表为空")

// Load 读取账号 initData 列表，每行一个账号，空行跳过，保持原有顺序
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开账号文件 %s 失败: %w", path, err)
	}
	defer file.Close()

	var queries []string
	scanner := bufio.NewScanner(file)
	// initData 可能很长，放大单行缓冲区
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取账号文件 %s 失败: %w", path, err)
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAccounts, path)
	}

	logger.Infof("已加载账号: %d", len(queries))
	return queries, nil
}
