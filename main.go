package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewardshq/internal/activitylog"
	"rewardshq/internal/config"
	"rewardshq/internal/logger"
	"rewardshq/internal/singleinstance"
	"rewardshq/pkg/types"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/dig"
)

const banner = `     RewardsHQ Free Bot
     This Bot Created By LIVEXORDS
`

func main() {
	// 先用默认配置初始化日志，读取配置后再按配置重新初始化
	if err := logger.Init(config.DefaultLogLevel, ""); err != nil {
		panic(err)
	}

	app := &cli.App{
		Name:  "rewardshq",
		Usage: "RewardsHQ 多账号自动挖矿、转盘和领取任务",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultConfigFile,
				Usage:   "配置文件路径",
			},
			&cli.StringFlag{
				Name:  "env",
				Value: ".env",
				Usage: "环境变量文件，其中的 REWARDSHQ_* 会覆盖配置文件",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "账号 initData 文件，覆盖配置中的 query_file",
			},
		},
		Before: loadEnv,
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "查看领取记录统计",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "recent",
						Value: 10,
						Usage: "显示最近几条记录",
					},
				},
				Action: statsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("程序退出: %v", err)
		os.Exit(1)
	}
}

// loadEnv 加载 .env，默认文件不存在时忽略
func loadEnv(c *cli.Context) error {
	path := c.String("env")
	if err := godotenv.Load(path); err != nil {
		if c.IsSet("env") {
			return fmt.Errorf("加载环境变量文件 %s 失败: %w", path, err)
		}
		logger.Debugf("未加载环境变量文件 %s: %v", path, err)
		return nil
	}
	logger.Infof("已加载环境变量文件: %s", path)
	return nil
}

func options(c *cli.Context) Options {
	return Options{
		ConfigPath: c.String("config"),
		QueryPath:  c.String("query"),
	}
}

func runAction(c *cli.Context) error {
	fmt.Print(banner)

	container, err := BuildContainer(options(c))
	if err != nil {
		return err
	}

	var lock *singleinstance.Lock
	err = container.Invoke(func(cfg *types.Config) error {
		l, lockErr := singleinstance.Acquire(cfg.QueryFile)
		lock = l
		return lockErr
	})
	if errors.Is(dig.RootCause(err), config.ErrDefaultCreated) {
		logger.Info("请修改配置文件后重新运行")
		return nil
	}
	if err != nil {
		return err
	}
	defer lock.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Infof("收到信号: %v，开始退出程序", sig)
		cancel()
		// 正常退出会先结束进程，走到这里说明退出卡住了
		time.Sleep(5 * time.Second)
		logger.Warn("程序未能正常退出，强制退出")
		os.Exit(1)
	}()

	return container.Invoke(func(app *App) error {
		return app.Run(ctx)
	})
}

func statsAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.ActivityLog == "" {
		return errors.New("配置中未设置 activity_log，没有领取记录")
	}

	store, err := activitylog.Open(cfg.ActivityLog)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Summary()
	if err != nil {
		return err
	}
	fmt.Printf("%-12s %8s %8s\n", "feature", "attempts", "success")
	for _, row := range summary {
		fmt.Printf("%-12s %8d %8d\n", row.Feature, row.Attempts, row.Successes)
	}

	recent, err := store.Recent(c.Int("recent"))
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Println()
	}
	for _, record := range recent {
		status := "FAIL"
		if record.Success {
			status = "OK"
		}
		fmt.Printf("%s  #%d %-10s %-12s %-4s %d %s\n",
			record.Time.Format("2006-01-02 15:04:05"), record.Account, record.Username,
			record.Feature, status, record.StatusCode, record.ItemName)
	}
	return nil
}
