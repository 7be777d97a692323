package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nestapt/nest_backend/internal/middleware"
)

func TestBaseServiceLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := middleware.ContextWithLogger(context.Background(), logger)

	var s BaseService
	s.LogError(ctx, errors.New("connection pool exhausted"), "Failed to create deal", slog.String("unit_id", "unit-1"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "Failed to create deal")
	assert.Contains(t, out, "connection pool exhausted")
	assert.Contains(t, out, "unit_id=unit-1")
}

func TestBaseServiceGetLoggerUsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := middleware.ContextWithLogger(context.Background(), logger)

	var s BaseService
	s.GetLogger(ctx).Info("request scoped")

	assert.Contains(t, buf.String(), "request scoped")
}
