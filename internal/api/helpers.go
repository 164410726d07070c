// internal/api/helpers.go
package api

import (
	"regexp"
	"sort"
)

// isValidLogFileID checks stream ids supplied in URLs. Ids come from the
// server's own registry, but the path parameter is still validated before it
// is ever used in lookups or log output.
var logFileIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func isValidLogFileID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	return logFileIDRegex.MatchString(id)
}

// logRegistry maps stream ids to backing file paths. Populated once at
// startup from configuration; read-only afterwards.
var logRegistry map[string]string

// InitLogRegistry installs the stream id → path mapping served by the tail
// endpoints.
func InitLogRegistry(files map[string]string) {
	logRegistry = files
}

// lookupLogFile resolves a stream id to its backing path.
func lookupLogFile(id string) (string, bool) {
	path, ok := logRegistry[id]
	return path, ok
}

// registeredLogIDs returns the configured stream ids in stable order.
func registeredLogIDs() []string {
	ids := make([]string, 0, len(logRegistry))
	for id := range logRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
