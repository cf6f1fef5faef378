package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func defaultLoggerConfig() zap.Config {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}

// NewLogger builds the process logger. configPath, when set, names a JSON
// encoded zap.Config that replaces the default console logger.
func NewLogger(configPath string) (*zap.Logger, error) {
	config := defaultLoggerConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("log config: %w", err)
		}
		config = zap.Config{}
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("log config %s: %w", configPath, err)
		}
	}
	return config.Build()
}
