package db

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"

	"ukpostcodes/internal/config"
)

func TestNew_RequiresDSN(t *testing.T) {
	_, err := New(&config.Config{}, zerolog.Nop())
	assert.EqualError(t, err, "DB_DSN is required")
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLogLevel("development"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel("production"))
}

func TestZerologWriter(t *testing.T) {
	var buf bytes.Buffer
	w := zerologWriter{log: zerolog.New(&buf)}
	w.Printf("slow query %d ms", 1200)

	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "slow query 1200 ms")
}
