package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"tie/config"
	"tie/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("store unreachable"))

	assert.Contains(t, buf.String(), "store unreachable")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "not-a-level", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_ProductionUsesJSON(t *testing.T) {
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	}()

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "tie"

	logger.SetLogLevel(cfg)

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("reservation saved")

	assert.Contains(t, buf.String(), `"app":"tie"`)
	assert.Contains(t, buf.String(), `"message":"reservation saved"`)
}
