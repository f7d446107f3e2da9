// Package logging provides config-driven categorized zap loggers for the
// collection tour. Each demonstration area logs under its own category.
// The boot category always logs; the others only when debug_mode is on and
// the category is not switched off in config.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"collectiontour/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // CLI startup, config loading
	CategoryTour     Category = "tour"     // Step scheduling
	CategorySequence Category = "sequence" // Vec and cell steps
	CategoryText     Category = "text"     // String steps
	CategoryMapping  Category = "mapping"  // Map steps
	CategoryWordFreq Category = "wordfreq" // Word counting
	CategoryRender   Category = "render"   // Terminal rendering
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{
		CategoryBoot, CategoryTour, CategorySequence, CategoryText,
		CategoryMapping, CategoryWordFreq, CategoryRender,
	}
}

// Manager hands out one named logger per category.
type Manager struct {
	root *zap.Logger
	cfg  config.LoggingConfig

	mu      sync.Mutex
	loggers map[Category]*zap.Logger
}

// New builds the root logger from cfg. Level and encoding follow the zap
// production config; output goes to cfg.File or stderr.
func New(cfg config.LoggingConfig) (*Manager, error) {
	zc := zap.NewProductionConfig()

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	switch cfg.Format {
	case "", "console":
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
		zc.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil

	root, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(root, cfg), nil
}

// NewWithLogger wraps an existing root logger.
func NewWithLogger(root *zap.Logger, cfg config.LoggingConfig) *Manager {
	return &Manager{
		root:    root,
		cfg:     cfg,
		loggers: make(map[Category]*zap.Logger),
	}
}

// Nop returns a Manager whose loggers discard everything.
func Nop() *Manager {
	return NewWithLogger(zap.NewNop(), config.LoggingConfig{})
}

// IsCategoryEnabled returns whether a specific category is enabled.
func (m *Manager) IsCategoryEnabled(category Category) bool {
	if category == CategoryBoot {
		return true
	}
	return m.cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func (m *Manager) Get(category Category) *zap.Logger {
	if !m.IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.loggers[category]; ok {
		return l
	}
	l := m.root.Named(string(category))
	m.loggers[category] = l
	return l
}

// With returns a Manager whose loggers all carry fields.
func (m *Manager) With(fields ...zap.Field) *Manager {
	return NewWithLogger(m.root.With(fields...), m.cfg)
}

// Sync flushes buffered log entries.
func (m *Manager) Sync() error {
	return m.root.Sync()
}
