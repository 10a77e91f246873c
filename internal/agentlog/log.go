// Package agentlog builds the agent's zap.Logger, matching the
// zap + zap-logfmt combination grafana-tempo's standalone binaries
// (cmd/tempo-vulture, cmd/tempo-query) use.
package agentlog

import (
	"os"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger whose level is driven by the agent's three-level
// verbose knob (spec.md §6: 0=info, 1=debug, >=2=trace). zap has no
// trace level, so >=2 is mapped onto debug plus caller/stacktrace
// annotation — the closest equivalent zap offers.
func New(verbose int) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	opts := []zap.Option{}
	switch {
	case verbose >= 2:
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	case verbose == 1:
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zaplogfmt.NewEncoder(encoderCfg), os.Stdout, level)
	return zap.New(core, opts...)
}
