package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

func TestInitFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	Init("  ")
	_, ok := Log.(*slog.Logger)
	assert.True(t, ok)
}

func TestWithServiceName(t *testing.T) {
	fields := withServiceName(nil)
	assert.Equal(t, ServiceName, fields["service_name"])

	fields = withServiceName(Fields{"service_name": "other", "path": "/"})
	assert.Equal(t, "other", fields["service_name"])
	assert.Equal(t, "/", fields["path"])
}
