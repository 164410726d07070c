// internal/api/tail_handlers.go
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/plexnotify/logtail-api-server/internal/models"
	"github.com/plexnotify/logtail-api-server/internal/tailer"
)

// @Summary List log streams
// @Description Returns the log streams available for tailing, with their current sizes.
// @Tags Logs
// @Produce json
// @Success 200 {object} models.LogFileListResponse "Configured log streams"
// @Router /api/v1/logs [get]
func ListLogFilesHandler(c *gin.Context) {
	files := make([]models.LogFileInfo, 0, len(logRegistry))
	for _, id := range registeredLogIDs() {
		path, _ := lookupLogFile(id)
		files = append(files, models.LogFileInfo{
			ID:   id,
			Path: path,
			Size: tailer.Size(path),
		})
	}
	c.JSON(http.StatusOK, models.LogFileListResponse{Files: files})
}

// @Summary Tail a log stream
// @Description Returns the lines appended to a log stream since the given cursor.
// @Description
// @Description **Notes**
// @Description - Omit `cursor` (or pass -1) to attach at the current end of the file without replaying history.
// @Description - The response echoes the stream id so pollers can discard results that arrive after switching streams.
// @Description - A `nextCursor` smaller than the cursor you sent means the file was rotated; restart your view from the response's data.
// @Tags Logs
// @Produce json
// @Param fileID path string true "Log stream id" example="app"
// @Param cursor query integer false "Resume position from the previous poll, or -1 to bootstrap at the end of file" example="1050" default(-1)
// @Success 200 {object} models.TailResponse "Newly appended lines plus resume metadata"
// @Failure 400 {object} models.ErrorResponse "Invalid stream id or cursor"
// @Failure 404 {object} models.ErrorResponse "Unknown stream id"
// @Failure 500 {object} models.ErrorResponse "Backing file unreadable"
// @Router /api/v1/logs/{fileID}/tail [get]
func GetLogTailHandler(c *gin.Context) {
	fileID := c.Param("fileID")
	cursorQuery := c.DefaultQuery("cursor", strconv.FormatInt(models.BootstrapCursor, 10))

	if !isValidLogFileID(fileID) {
		log.Warnf("GetLogTail: invalid log file id '%s'", fileID)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid characters in log file id."})
		return
	}

	cursor, err := strconv.ParseInt(cursorQuery, 10, 64)
	if err != nil || (cursor < 0 && cursor != models.BootstrapCursor) {
		log.Warnf("GetLogTail: invalid cursor '%s' for file '%s'", cursorQuery, fileID)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid 'cursor' parameter. Use a non-negative integer or -1 to attach at the end."})
		return
	}

	path, ok := lookupLogFile(fileID)
	if !ok {
		log.Warnf("GetLogTail: unknown log file id '%s'", fileID)
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Unknown log file id '%s'", fileID)})
		return
	}

	log.Debugf("GetLogTail: reading '%s' (%s) from cursor %d", fileID, path, cursor)

	res, err := tailer.ReadSince(path, cursor)
	if err != nil {
		// Surfaced as a transport failure; pollers keep retrying on their
		// own schedule.
		log.Errorf("GetLogTail: failed to read '%s': %v", fileID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Failed to read log file '%s': %s", fileID, err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, models.TailResponse{
		Lines:           res.Lines,
		NextCursor:      res.NextCursor,
		FileSize:        res.FileSize,
		EndsWithNewline: res.EndsWithNewline,
		FileID:          fileID,
	})
}
