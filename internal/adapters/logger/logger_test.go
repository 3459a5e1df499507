package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("resolving dependency closure")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "resolving dependency closure")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Warn("catalog snapshot is stale")

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(errors.New("ghost-lib missing"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "ghost-lib missing")
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	done := make(chan struct{})
	go func() {
		for range 50 {
			log.Info("worker a")
		}
		close(done)
	}()
	for range 50 {
		log.Info("worker b")
	}
	<-done

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 100, lines)
}
