// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewText_Levels(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewText(&buf, false)
	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "shown", "bytes", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "bytes=3")

	buf.Reset()
	logger = NewText(&buf, true)
	logger.Debug(ctx, "visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWith_Redacted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewText(&buf, false).With("command", "split")
	logger.Warn(context.Background(), "message read", Redacted("message"))

	out := buf.String()
	assert.Contains(t, out, "command=split")
	assert.Contains(t, out, "message="+Placeholder())
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_Default(t *testing.T) {
	assert.NotNil(t, New(nil))
}
