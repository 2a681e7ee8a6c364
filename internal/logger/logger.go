package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
)

// Fields 结构化日志字段
type Fields = logrus.Fields

// fileLogWriter 用于将日志写入文件，写入前移除颜色代码
type fileLogWriter struct {
	out io.Writer
}

func (w *fileLogWriter) Write(p []byte) (n int, err error) {
	cleaned := removeANSICodes(p)
	if _, err := w.out.Write(cleaned); err != nil {
		return 0, err
	}
	return len(p), nil
}

// safeMultiWriter 是一个安全的 MultiWriter，即使某个 writer 失败也继续写入其他 writer
type safeMultiWriter struct {
	writers []io.Writer
}

func (w *safeMultiWriter) Write(p []byte) (n int, err error) {
	for _, writer := range w.writers {
		if writer != nil {
			writer.Write(p)
		}
	}
	return len(p), nil
}

// removeANSICodes 移除 ANSI 颜色代码
func removeANSICodes(data []byte) []byte {
	// ANSI 转义序列格式: \x1b[数字m 或 \x1b[数字;数字m
	result := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '[' {
			i += 2
			for i < len(data) && data[i] != 'm' {
				i++
			}
			if i < len(data) {
				i++ // 跳过 'm'
			}
		} else {
			result = append(result, data[i])
			i++
		}
	}
	return result
}

// Init 初始化日志系统，logFile 为空时只输出到控制台
func Init(logLevel string, logFile string) error {
	l := logrus.New()

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// Windows 控制台需要 colorable 才能显示颜色
	stdout := colorable.NewColorableStdout()

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return err
		}

		// 按大小滚动，保留最近 7 个文件
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    25,
			MaxBackups: 7,
			Compress:   true,
		}

		l.SetOutput(&safeMultiWriter{
			writers: []io.Writer{stdout, &fileLogWriter{out: rotator}},
		})
	} else {
		l.SetOutput(stdout)
	}

	logger = l
	return nil
}

// SetOutput 替换日志输出，测试中用于捕获日志
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// GetLogger 获取日志实例
func GetLogger() *logrus.Logger {
	if logger == nil {
		// 未初始化时只输出到控制台
		Init("info", "")
	}
	return logger
}

// WithFields 返回带字段的日志条目
func WithFields(fields Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

// Debugf 记录格式化 debug 级别日志
func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

// Info 记录 info 级别日志
func Info(args ...interface{}) {
	GetLogger().Info(args...)
}

// Infof 记录格式化 info 级别日志
func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

// Warn 记录 warn 级别日志
func Warn(args ...interface{}) {
	GetLogger().Warn(args...)
}

// Warnf 记录格式化 warn 级别日志
func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

// Error 记录 error 级别日志
func Error(args ...interface{}) {
	GetLogger().Error(args...)
}

// Errorf 记录格式化 error 级别日志
func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}
