package session

import "strings"

// Level classifies a log record. The numeric order doubles as the filter
// priority: DEBUG < INFO < WARNING < ERROR.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a level name (case-insensitive) back to a Level.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARNING", "WARN":
		return LevelWarning, true
	case "ERROR":
		return LevelError, true
	}
	return LevelInfo, false
}

// Marker lists checked against raw record text, most severe first. The
// notifier writes stdlib-style "LEVELNAME" tokens, but CRITICAL and Python
// tracebacks show up in its app log too, so those count as errors.
var (
	errorMarkers   = []string{"ERROR", "CRITICAL", "FATAL", "Traceback"}
	warningMarkers = []string{"WARNING", "WARN"}
	infoMarkers    = []string{"INFO"}
	debugMarkers   = []string{"DEBUG"}
)

// Classify derives the severity of a raw log line by fixed marker matching
// in strict priority order. Lines matching nothing default to INFO. The
// classification is pure: the same text always yields the same Level, and it
// is performed once at ingestion, never re-derived.
func Classify(text string) Level {
	for _, m := range errorMarkers {
		if strings.Contains(text, m) {
			return LevelError
		}
	}
	for _, m := range warningMarkers {
		if strings.Contains(text, m) {
			return LevelWarning
		}
	}
	for _, m := range infoMarkers {
		if strings.Contains(text, m) {
			return LevelInfo
		}
	}
	for _, m := range debugMarkers {
		if strings.Contains(text, m) {
			return LevelDebug
		}
	}
	return LevelInfo
}
