package render

import (
	"log/slog"

	"github.com/gogpu/qrend"
)

// slogger returns the package logger, shared with the root package via
// qrend.SetLogger. All logging in render goes through this function.
func slogger() *slog.Logger { return qrend.Logger() }
