package tui

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogPath is the default path for debug logs.
const DebugLogPath = "widgetkit-debug.log"

var (
	debugMu   sync.Mutex
	debugLog  = zap.NewNop()
	debugFile *os.File
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// An empty path falls back to DebugLogPath.
func InitDebugLogger(enabled bool, path string) error {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !enabled {
		debugLog = zap.NewNop()
		return nil
	}
	if path == "" {
		path = DebugLogPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "event",
		LevelKey:       "level",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.DebugLevel)

	debugFile = f
	debugLog = zap.New(core)
	debugLog.Debug("DEBUG_START",
		zap.String("log_file", path),
		zap.String("time", time.Now().Format(time.RFC3339)),
	)
	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile == nil {
		return
	}
	debugLog.Debug("DEBUG_END", zap.String("time", time.Now().Format(time.RFC3339)))
	_ = debugLog.Sync()
	_ = debugFile.Close()
	debugFile = nil
	debugLog = zap.NewNop()
}

func logger() *zap.Logger {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugLog
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	logger().Debug("KEY_PRESS",
		zap.String("key", msg.String()),
		zap.Int("type", int(msg.Type)),
	)
}

// LogEvent logs a widget event such as a selection change.
func LogEvent(event string, fields ...zap.Field) {
	logger().Debug(event, fields...)
}

// LogError logs an error.
func LogError(context string, err error) {
	logger().Error("ERROR",
		zap.String("context", context),
		zap.Error(err),
	)
}
