package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/muliwe/hero-strength/internal/classifier"
	"github.com/muliwe/hero-strength/internal/config"
	"github.com/muliwe/hero-strength/internal/hero"
	"github.com/muliwe/hero-strength/internal/logger"
)

// App wires the classifier to its output, result log and roster renderer
type App struct {
	cfg        config.Config
	classifier *classifier.Classifier
	renderer   *hero.Renderer
	results    *logger.Logger
	log        *zap.Logger
	out        io.Writer
}

// New creates an app from cfg. console may be nil.
func New(cfg config.Config, out io.Writer, console *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if console == nil {
		console = zap.NewNop()
	}

	a := &App{
		cfg:        cfg,
		classifier: classifier.New(classifier.DefaultConfig()),
		log:        console,
		out:        out,
	}

	var recorder hero.Recorder
	if cfg.LogResults {
		l, err := logger.New(cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize result log: %w", err)
		}
		a.results = l
		recorder = l
		console.Debug("result log opened", zap.String("path", l.LogPath()))
	}
	a.renderer = hero.NewRenderer(a.classifier, recorder)

	return a, nil
}

// Close flushes the result log
func (a *App) Close() error {
	if a.results == nil {
		return nil
	}
	return a.results.Close()
}

// ResultLogPath returns the result log path, or "" when logging is off
func (a *App) ResultLogPath() string {
	if a.results == nil {
		return ""
	}
	return a.results.LogPath()
}
