package logging

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide logger. Library code should take a named child
// through Named rather than writing to Log directly.
var Log *zap.SugaredLogger
var globalLevel zap.AtomicLevel

func init() {
	globalLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	Log = buildLogger()
}

// Named returns a child of Log scoped to name. Children share the global level.
func Named(name string) *zap.SugaredLogger {
	return Log.Named(name)
}

// SetLogLevel changes the level of Log and every logger derived from it.
// Accepts the zap level names: debug, info, warn, error, dpanic, panic, fatal.
func SetLogLevel(level string) error {
	return globalLevel.UnmarshalText([]byte(level))
}

// Level reports the current global level.
func Level() string {
	return globalLevel.Level().String()
}

func buildLogger() *zap.SugaredLogger {
	underK8s := os.Getenv("KUBERNETES_SERVICE_HOST") != ""

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = globalLevel
	if underK8s {
		cfg.Encoding = "json"
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
