package models

// BootstrapCursor is the reserved cursor value meaning "attach at the current
// end of the file without replaying history". A newly opened viewer sends it
// on its first poll so the session starts live instead of downloading the
// whole file.
const BootstrapCursor int64 = -1

// TailResponse carries the bytes appended to a log file since the requested
// cursor, split into newline-stripped lines, plus the metadata a polling
// client needs to resume and to detect rotation.
type TailResponse struct {
	// Newly appended records, record terminators stripped. The last element
	// is an in-progress partial line when EndsWithNewline is false.
	Lines []string `json:"lines"`
	// Position to pass as the cursor on the next poll.
	NextCursor int64 `json:"nextCursor" example:"1050"`
	// Current total size of the backing file in bytes. A size smaller than
	// the client's cursor means the file was truncated or rotated.
	FileSize int64 `json:"fileSize" example:"1050"`
	// False when the last element of Lines is an unterminated record.
	EndsWithNewline bool `json:"endsWithNewline"`
	// Echo of the requested file id. Clients use it to discard responses
	// that arrive after switching to a different stream.
	FileID string `json:"fileId" example:"app"`
}

// LogFileInfo describes one configured log stream.
type LogFileInfo struct {
	ID   string `json:"id" example:"app"`
	Path string `json:"path" example:"/var/log/notifier/app.log"`
	// Size is the current file size in bytes, -1 when the file cannot be
	// statted (e.g. not created yet).
	Size int64 `json:"size" example:"1050"`
}

// LogFileListResponse lists the log streams available for tailing.
type LogFileListResponse struct {
	Files []LogFileInfo `json:"files"`
}
