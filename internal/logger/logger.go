package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	current  atomic.Pointer[zap.Logger]
	debugLog *os.File
	logPath  string
)

func init() {
	current.Store(zap.NewNop())
}

// Init 初始化客户端日志，写入 ~/.four-landlord/debug.log
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitFile(filepath.Join(homeDir, ".four-landlord"))
}

// InitFile 在指定目录下写 debug.log，超过 10MB 时先归档
func InitFile(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(logDir, "debug.log")
	if info, err := os.Stat(path); err == nil && info.Size() > 10*1024*1024 {
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(path, backupPath)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	Close()
	debugLog = f
	logPath = path
	current.Store(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// InitConsole 服务端日志输出到 stderr
func InitConsole(debug bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	current.Store(l)
	return nil
}

// L 返回底层的结构化日志
func L() *zap.Logger {
	return current.Load().WithOptions(zap.AddCallerSkip(-1))
}

// Close 刷新并关闭日志文件
func Close() {
	_ = current.Load().Sync()
	if debugLog != nil {
		current.Store(zap.NewNop())
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	current.Load().Sugar().Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	current.Load().Sugar().Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r any) {
	current.Load().Error("panic recovered", zap.Any("panic", r), zap.Stack("stack"))
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
