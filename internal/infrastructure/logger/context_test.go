package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := ContextWithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", RequestIDFromContext(ctx))
}

func TestLogger_FromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID interface{}
	}{
		{
			name:   "request ID present",
			ctx:    ContextWithRequestID(context.Background(), "req-9"),
			wantID: "req-9",
		},
		{
			name:   "no request ID",
			ctx:    context.Background(),
			wantID: nil,
		},
		{
			name:   "empty request ID",
			ctx:    ContextWithRequestID(context.Background(), ""),
			wantID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := NewWithOutput(Config{Format: "json"}, &buf)

			base.FromContext(tt.ctx).Info().Msg("scoped")

			result := decodeLine(t, &buf)
			assert.Equal(t, tt.wantID, result["request_id"])
		})
	}
}

func TestLogger_FromContextReturnsSameLoggerWithoutID(t *testing.T) {
	base := Nop()
	assert.Same(t, base, base.FromContext(context.Background()))
}
