// Package sessioninfofile maintains a small JSON file describing the
// currently connected project, design and setup, for reference by the
// analysis layer and other tooling. The file is removed on shutdown.
package sessioninfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyInfoFile = "sessionInfoFilePath"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// SessionInfoFile manages the contents of a single session info file.
type SessionInfoFile interface {
	UpdateField(key string, value string) error
}

type module struct {
	infofile     string
	logger       *zap.SugaredLogger
	fileContents map[string]string
	mu           sync.Mutex
}

// Params define values to be used by SessionInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a SessionInfoFile. When no file path is configured the
// returned instance discards updates.
func New(p Params) (SessionInfoFile, error) {
	m := module{
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	if err := p.Config.Get(_configKeyInfoFile).Populate(&m.infofile); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return &m, nil
}

// OnStop removes the info file, if one was written.
func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.infofile == "" || len(m.fileContents) == 0 {
		return nil
	}
	if err := os.Remove(m.infofile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UpdateField records a key/value pair and rewrites the file.
func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.infofile == "" {
		return nil
	}

	m.fileContents[key] = value
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := os.WriteFile(m.infofile, jsonOutput, 0644); err != nil {
		return fmt.Errorf("writing info file: %w", err)
	}
	m.logger.Infow("session info saved", zap.String("file", m.infofile), zap.String(key, value))
	return nil
}
