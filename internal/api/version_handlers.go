// internal/api/version_handlers.go
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/mod/semver"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

var (
	serverVersion = "development"
	serverCommit  = "none"
	serverDate    = "unknown"
)

// InitVersion stores build information injected by main at startup.
func InitVersion(version, commit, date string) {
	serverVersion = version
	serverCommit = commit
	serverDate = date
}

// @Summary Get server version
// @Description Returns the API server's version and build information.
// @Tags Version
// @Produce json
// @Success 200 {object} models.VersionResponse "Server version details"
// @Router /api/v1/version [get]
func GetVersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.VersionResponse{
		Version: serverVersion,
		Commit:  serverCommit,
		Date:    serverDate,
	})
}

// @Summary Check version compatibility
// @Description Compares the server version against a client-supplied minimum semantic version.
// @Tags Version
// @Produce json
// @Param min query string true "Minimum required version (semver)" example="v1.0.0"
// @Success 200 {object} models.VersionCheckResponse "Result of the version check"
// @Failure 400 {object} models.ErrorResponse "Invalid version string"
// @Router /api/v1/version/check [get]
func CheckVersionHandler(c *gin.Context) {
	minVersion := canonicalVersion(c.Query("min"))
	if !semver.IsValid(minVersion) {
		log.Warnf("CheckVersion: invalid minimum version '%s'", c.Query("min"))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid 'min' parameter. Provide a semantic version like v1.0.0."})
		return
	}

	current := canonicalVersion(serverVersion)
	if !semver.IsValid(current) {
		// Development builds carry no comparable version; report them as
		// compatible rather than failing every client preflight.
		c.JSON(http.StatusOK, models.VersionCheckResponse{
			Compatible:  true,
			CheckResult: fmt.Sprintf("server runs a non-release build (%s); skipping version comparison", serverVersion),
		})
		return
	}

	compatible := semver.Compare(current, minVersion) >= 0
	result := fmt.Sprintf("server version %s satisfies minimum %s", current, minVersion)
	if !compatible {
		result = fmt.Sprintf("server version %s is older than required minimum %s", current, minVersion)
	}
	c.JSON(http.StatusOK, models.VersionCheckResponse{Compatible: compatible, CheckResult: result})
}

// canonicalVersion normalizes a version string to the "vMAJOR.MINOR.PATCH"
// form golang.org/x/mod/semver expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
