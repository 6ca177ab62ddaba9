package junction

import (
	"log/slog"
	"net/url"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	BridgeLogKind   = slog.StringValue("bridge")
	DispatchLogKind = slog.StringValue("dispatch")
	RouterLogKind   = slog.StringValue("router")

	// MaskedLogValue is a convenience [log/slog.Value] to be used in
	// implementations of [log/slog.LogValuer] to hide sensitive data
	// from log messages.
	MaskedLogValue = slog.StringValue(LogMaskVal)
)

// Mask replaces all values paired to key in vals with [LogMaskVal].
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}

// NewLogLevel translates val into a [log/slog.Level], defaulting to
// [log/slog.LevelInfo] for unknown values.
func NewLogLevel(val string) slog.Level {
	switch val {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
