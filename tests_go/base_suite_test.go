// tests_go/base_suite_test.go
package tests_go

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"

	"github.com/plexnotify/logtail-api-server/internal/api"
)

// suiteConfig holds the end-to-end test settings. Values come from the
// environment (optionally via tests_go/.env) so the suites can also be
// pointed at an already-running server.
type suiteConfig struct {
	// APIURL is the base URL of the server under test. Empty means the
	// suite starts its own in-process server.
	APIURL         string
	RequestTimeout time.Duration
}

func loadSuiteConfig() suiteConfig {
	// Best effort; the file is optional.
	_ = godotenv.Load(".env")

	cfg := suiteConfig{
		APIURL:         os.Getenv("LOGTAIL_TEST_API_URL"),
		RequestTimeout: 15 * time.Second,
	}
	if v := os.Getenv("LOGTAIL_TEST_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	return cfg
}

// BaseSuite provides a running server and request helpers for the
// end-to-end suites. Unless LOGTAIL_TEST_API_URL points at an external
// server, it serves real temp-dir log files through the full router.
type BaseSuite struct {
	suite.Suite
	cfg    suiteConfig
	logger *log.Logger

	server *httptest.Server
	logDir string
	// appLog and jobsLog are the backing files for the "app" and "jobs"
	// streams when the suite runs its own server.
	appLog  string
	jobsLog string
}

// SetupSuite starts the in-process server (unless an external one is
// configured) and registers two log streams backed by temp files.
func (s *BaseSuite) SetupSuite() {
	s.cfg = loadSuiteConfig()
	s.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	if s.cfg.APIURL != "" {
		s.logSetup("Using external server at %s", s.cfg.APIURL)
		return
	}

	s.logDir = s.T().TempDir()
	s.appLog = filepath.Join(s.logDir, "app.log")
	s.jobsLog = filepath.Join(s.logDir, "jobs.log")
	s.Require().NoError(os.WriteFile(s.appLog, nil, 0o644))
	s.Require().NoError(os.WriteFile(s.jobsLog, nil, 0o644))

	gin.SetMode(gin.TestMode)
	api.InitLogRegistry(map[string]string{
		"app":  s.appLog,
		"jobs": s.jobsLog,
	})
	api.InitVersion("1.0.0-test", "none", "unknown")
	api.InitHealth()

	router := gin.New()
	api.SetupRoutes(router)
	s.server = httptest.NewServer(router)
	s.cfg.APIURL = s.server.URL
	s.logSetup("Started in-process server at %s (logs in %s)", s.cfg.APIURL, s.logDir)
}

// TearDownSuite stops the in-process server if the suite started one.
func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

// doRequest performs an HTTP request and returns body, status, error.
func (s *BaseSuite) doRequest(method, url string, body io.Reader, timeout time.Duration) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, 0, err
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	return bodyBytes, resp.StatusCode, err
}

// appendToStream appends raw bytes to one of the suite's backing files.
// Callers control the trailing newline; partial-line tests rely on that.
func (s *BaseSuite) appendToStream(path, data string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	s.Require().NoError(err, "SETUP Failed: Could not open %s for append", path)
	defer f.Close()
	_, err = f.WriteString(data)
	s.Require().NoError(err, "SETUP Failed: Could not append to %s", path)
}

// rewriteStream truncates and rewrites a backing file, simulating rotation.
func (s *BaseSuite) rewriteStream(path, data string) {
	s.Require().NoError(os.WriteFile(path, []byte(data), 0o644),
		"SETUP Failed: Could not rewrite %s", path)
}

// requireOwnServer skips tests that manipulate backing files directly
// when the suite targets an external server.
func (s *BaseSuite) requireOwnServer() {
	if s.server == nil {
		s.T().Skip("test requires the in-process server (LOGTAIL_TEST_API_URL is set)")
	}
}

func (s *BaseSuite) randomSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

func (s *BaseSuite) logSetup(format string, args ...interface{}) {
	s.logger.Infof("[SETUP] "+format, args...)
}

func (s *BaseSuite) logTest(format string, args ...interface{}) {
	s.logger.Infof("[TEST] "+format, args...)
}

func (s *BaseSuite) logSuccess(format string, args ...interface{}) {
	s.logger.Infof("[SUCCESS] "+format, args...)
}

// tailURL builds the tail endpoint URL for a stream and cursor.
func (s *BaseSuite) tailURL(fileID string, cursor int64) string {
	return fmt.Sprintf("%s/api/v1/logs/%s/tail?cursor=%d", s.cfg.APIURL, fileID, cursor)
}
