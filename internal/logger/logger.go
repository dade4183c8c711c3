package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muliwe/hero-strength/internal/classifier"
)

// Logger writes classification results as JSON lines
type Logger struct {
	mu   sync.Mutex
	file *os.File
	core zapcore.Core
}

// Config holds logger configuration
type Config struct {
	LogDir   string `yaml:"log_dir"`   // Directory for log files
	FileName string `yaml:"file_name"` // Log file name (default: classifications.jsonl)
	Echo     bool   `yaml:"echo"`      // Also mirror entries to EchoTo

	// EchoTo receives mirrored entries. Defaults to stderr so entries never
	// mix with command output on stdout.
	EchoTo io.Writer `yaml:"-"`
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		LogDir:   "logs",
		FileName: "classifications.jsonl",
		Echo:     false,
	}
}

// New creates a new logger instance
func New(cfg Config) (*Logger, error) {
	// Ensure log directory exists
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(cfg.LogDir, cfg.FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	var w io.Writer = file
	if cfg.Echo {
		echo := cfg.EchoTo
		if echo == nil {
			echo = os.Stderr
		}
		w = io.MultiWriter(file, echo)
	}

	return &Logger{
		file: file,
		core: zapcore.NewCore(resultEncoder(), zapcore.AddSync(w), zapcore.InfoLevel),
	}, nil
}

func resultEncoder() zapcore.Encoder {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "logged_at"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.LevelKey = zapcore.OmitKey
	enc.CallerKey = zapcore.OmitKey
	enc.MessageKey = "event"
	return zapcore.NewJSONEncoder(enc)
}

// LogResult logs a classification result with the input source.
// Write failures are returned to the caller.
func (l *Logger) LogResult(result classifier.Result, source string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return os.ErrClosed
	}

	entry := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Now(),
		Message: "classification",
	}
	return l.core.Write(entry, []zapcore.Field{
		zap.String("request_id", result.RequestID),
		zap.Time("timestamp", result.Timestamp),
		zap.String("source", source),
		zap.Float64("value", result.Value),
		zap.String("label", string(result.Label)),
		zap.String("display", result.Display),
	})
}

// Close flushes and closes the logger
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	_ = l.core.Sync()
	err := l.file.Close()
	l.file = nil
	return err
}

// LogPath returns the path to the log file
func (l *Logger) LogPath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}

// NewConsole builds the diagnostic logger used by the CLI
func NewConsole(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
