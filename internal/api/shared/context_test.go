package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), traceID)

	// Each call produces a fresh ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceIDAbsent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))
}
