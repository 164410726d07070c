// tests_go/version_suite_test.go
package tests_go

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

// VersionSuite tests the version, health, and metrics endpoints.
type VersionSuite struct {
	BaseSuite
}

// TestVersionSuite runs the VersionSuite.
func TestVersionSuite(t *testing.T) {
	suite.Run(t, new(VersionSuite))
}

// TestVersionInfoEndpoint tests the version information API endpoint.
func (s *VersionSuite) TestVersionInfoEndpoint() {
	s.logTest("Testing version information endpoint")

	versionURL := fmt.Sprintf("%s/api/v1/version", s.cfg.APIURL)
	bodyBytes, statusCode, err := s.doRequest("GET", versionURL, nil, s.cfg.RequestTimeout)
	s.Require().NoError(err, "Failed to execute version request")
	s.Require().Equal(http.StatusOK, statusCode, "Expected status 200 for version endpoint. Body: %s", string(bodyBytes))

	var versionResp models.VersionResponse
	s.Require().NoError(json.Unmarshal(bodyBytes, &versionResp), "Failed to unmarshal version response. Body: %s", string(bodyBytes))
	s.Assert().NotEmpty(versionResp.Version, "Version field is empty in response")

	if !s.T().Failed() {
		s.logSuccess("Retrieved server version: %s (commit %s)", versionResp.Version, versionResp.Commit)
	}
}

// TestCheckVersionEndpoint tests the version compatibility check.
func (s *VersionSuite) TestCheckVersionEndpoint() {
	s.logTest("Testing version check endpoint")

	checkURL := fmt.Sprintf("%s/api/v1/version/check?min=v0.0.1", s.cfg.APIURL)
	bodyBytes, statusCode, err := s.doRequest("GET", checkURL, nil, s.cfg.RequestTimeout)
	s.Require().NoError(err, "Failed to execute version check request")
	s.Require().Equal(http.StatusOK, statusCode, "Expected status 200 for version check. Body: %s", string(bodyBytes))

	var checkResp models.VersionCheckResponse
	s.Require().NoError(json.Unmarshal(bodyBytes, &checkResp), "Failed to unmarshal version check response. Body: %s", string(bodyBytes))
	s.Assert().True(checkResp.Compatible, "Any server version should satisfy v0.0.1. Result: %s", checkResp.CheckResult)

	// A garbage minimum version is rejected.
	badURL := fmt.Sprintf("%s/api/v1/version/check?min=not-a-version", s.cfg.APIURL)
	_, statusCode, err = s.doRequest("GET", badURL, nil, s.cfg.RequestTimeout)
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusBadRequest, statusCode, "Invalid semver must be a 400")

	if !s.T().Failed() {
		s.logSuccess("Version check endpoint behaves correctly")
	}
}

// TestHealthEndpoint tests the public health endpoint.
func (s *VersionSuite) TestHealthEndpoint() {
	s.logTest("Testing health endpoint")

	healthURL := fmt.Sprintf("%s/health", s.cfg.APIURL)
	bodyBytes, statusCode, err := s.doRequest("GET", healthURL, nil, s.cfg.RequestTimeout)
	s.Require().NoError(err, "Failed to execute health request")
	s.Require().Equal(http.StatusOK, statusCode, "Expected status 200 for health endpoint. Body: %s", string(bodyBytes))

	var healthResp models.HealthResponse
	s.Require().NoError(json.Unmarshal(bodyBytes, &healthResp), "Failed to unmarshal health response. Body: %s", string(bodyBytes))
	s.Assert().Equal("healthy", healthResp.Status)
	s.Assert().NotEmpty(healthResp.Uptime)

	if !s.T().Failed() {
		s.logSuccess("Health endpoint reports: %s (up %s)", healthResp.Status, healthResp.Uptime)
	}
}

// TestMetricsEndpoint tests the system metrics endpoint.
func (s *VersionSuite) TestMetricsEndpoint() {
	s.logTest("Testing system metrics endpoint")

	metricsURL := fmt.Sprintf("%s/api/v1/health/metrics", s.cfg.APIURL)
	bodyBytes, statusCode, err := s.doRequest("GET", metricsURL, nil, s.cfg.RequestTimeout)
	s.Require().NoError(err, "Failed to execute metrics request")
	s.Require().Equal(http.StatusOK, statusCode, "Expected status 200 for metrics endpoint. Body: %s", string(bodyBytes))

	var metricsResp models.MetricsResponse
	s.Require().NoError(json.Unmarshal(bodyBytes, &metricsResp), "Failed to unmarshal metrics response. Body: %s", string(bodyBytes))
	s.Assert().Positive(metricsResp.Metrics.CPU.NumCPU, "Expected at least one CPU")
	s.Assert().Positive(metricsResp.Metrics.Mem.TotalMem, "Expected a nonzero total memory")
	s.Assert().NotEmpty(metricsResp.ServerInfo.Uptime)

	if !s.T().Failed() {
		s.logSuccess("Metrics endpoint reports %d CPUs, %.1f%% memory used",
			metricsResp.Metrics.CPU.NumCPU, metricsResp.Metrics.Mem.UsagePercent)
	}
}
