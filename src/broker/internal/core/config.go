// Package core builds the broker's configuration provider and logger.
package core

import (
	"fmt"
	"os"
	"path/filepath"

	uberconfig "go.uber.org/config"
	"go.uber.org/fx"
)

// ConfigModule provides the configuration dependencies.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

// _configDirEnv overrides the directory the YAML config is loaded from.
const _configDirEnv = "EPR_BROKER_CONFIG_DIR"

// _defaults backs every key so the broker works without any config files.
var _defaults = map[string]interface{}{
	"logging": map[string]interface{}{
		"level":    "info",
		"encoding": "console",
	},
	"session": map[string]interface{}{
		"projectPath":    "",
		"projectName":    "",
		"designName":     "",
		"setupName":      "",
		"connectOnStart": true,
	},
	"sessionInfoFilePath": "",
	"options": map[string]interface{}{
		"saveMeshStats": true,
		"maxMeshPasses": 0,
	},
}

// NewConfig loads YAML configuration. meta.yaml in the config directory
// lists the files to merge, later files overriding earlier ones; every
// file layers on top of the built-in defaults. A missing config directory
// is not an error.
func NewConfig() (uberconfig.Provider, error) {
	options := []uberconfig.YAMLOption{
		uberconfig.Static(_defaults),
		uberconfig.Expand(os.LookupEnv),
	}

	configDir := configDir()
	for _, file := range configFiles(configDir) {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uberconfig.File(fullPath))
		}
	}

	provider, err := uberconfig.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return provider, nil
}

// configFiles reads the file list from meta.yaml, or returns nothing when
// the directory has no meta.yaml.
func configFiles(configDir string) []string {
	metaPath := filepath.Join(configDir, "meta.yaml")
	if _, err := os.Stat(metaPath); err != nil {
		return nil
	}

	metaProvider, err := uberconfig.NewYAML(
		uberconfig.File(metaPath),
		uberconfig.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil
	}

	var files []string
	if err := metaProvider.Get("files").Populate(&files); err != nil {
		return nil
	}
	return files
}

func configDir() string {
	if dir := os.Getenv(_configDirEnv); dir != "" {
		return dir
	}
	return "src/broker/config"
}
