package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"boTester/internal/config"
	"boTester/internal/logger"
)

func TestRunSkipsWithoutDatabase(t *testing.T) {
	cfg := &config.Cfg{Migrations: config.Migrations{Path: "file://does-not-exist"}}
	err := Run(cfg, &logger.Zap{Logger: zap.NewNop()})
	assert.NoError(t, err)
}
