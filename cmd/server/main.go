// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	_ "github.com/plexnotify/logtail-api-server/docs"
	"github.com/plexnotify/logtail-api-server/internal/api"
	"github.com/plexnotify/logtail-api-server/internal/config"
)

// --- Version Info ---
var (
	version = "development"
	commit  = "none"
	date    = "unknown"
)

// --- Swagger annotations ---
// @title Plex Notifier Log Tail API
// @version 1.0
// @description Poll-based log tail API for the Plex notifier. Exposes the notifier's append-only log streams for incremental, cursor-based viewing. Access control is expected to be provided by a reverse proxy in front of this server.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @schemes http https

func main() {
	// --- Define and Parse Command Line Flags ---
	var showVersion bool
	var envFile string
	defaultEnvFile := ".env"

	flag.BoolVar(&showVersion, "version", false, "Print server version and exit")
	flag.BoolVar(&showVersion, "v", false, "Print server version and exit (shorthand)")
	flag.StringVar(&envFile, "env-file", defaultEnvFile, "Path to the .env configuration file")
	flag.Parse()

	if showVersion {
		fmt.Printf("logtail-api-server version: %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	// --- Load configuration First ---
	basicLogger := log.New(os.Stderr)
	basicLogger.Infof("Attempting to load configuration from '%s' and environment variables...", envFile)
	err := config.LoadConfig(envFile)
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if (errors.As(err, &notFound) || os.IsNotExist(err)) && envFile == defaultEnvFile {
			basicLogger.Infof("Default config file '%s' not found. Using environment variables and defaults.", defaultEnvFile)
			viper.Reset()
			if err := config.LoadConfig(""); err != nil {
				basicLogger.Fatalf("Failed to load configuration: %v", err)
			}
		} else {
			basicLogger.Fatalf("Failed to load configuration: %v", err)
		}
	} else {
		basicLogger.Infof("Configuration file '%s' loaded successfully.", envFile)
	}

	// --- Initialize Logger Based on Config ---
	log.SetOutput(os.Stderr)
	log.SetTimeFormat("2006-01-02 15:04:05")
	switch strings.ToLower(config.AppConfig.LogLevel) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn", "warning":
		log.SetLevel(log.WarnLevel)
	default:
		log.Warnf("Invalid LOG_LEVEL '%s', defaulting to 'info'", config.AppConfig.LogLevel)
		log.SetLevel(log.InfoLevel)
	}
	log.Infof("logtail-api-server version %s starting...", version)

	// --- Initialize Log Stream Registry ---
	registry, err := config.AppConfig.LogRegistry()
	if err != nil {
		log.Fatalf("Invalid log stream configuration: %v", err)
	}
	for id, path := range registry {
		log.Infof("Serving log stream '%s' from %s", id, path)
	}
	api.InitLogRegistry(registry)
	api.InitVersion(version, commit, date)
	api.InitHealth()

	// --- Initialize Gin router ---
	if strings.ToLower(config.AppConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	log.Infof("Gin running in '%s' mode", gin.Mode())
	router := gin.Default() // Use Default for logging and recovery middleware

	// Configure trusted proxies
	if config.AppConfig.TrustedProxies == "nil" {
		log.Info("Proxy trust disabled (TRUSTED_PROXIES=nil)")
		_ = router.SetTrustedProxies(nil)
	} else if config.AppConfig.TrustedProxies != "" {
		proxyList := strings.Split(config.AppConfig.TrustedProxies, ",")
		for i, proxy := range proxyList {
			proxyList[i] = strings.TrimSpace(proxy)
		}
		log.Infof("Setting trusted proxies: %v", proxyList)
		if err := router.SetTrustedProxies(proxyList); err != nil {
			log.Warnf("Error setting trusted proxies: %v. Using default.", err)
		}
	} else {
		log.Warn("All proxies are trusted (default). Set TRUSTED_PROXIES=nil or provide a list.")
	}

	// Setup API routes
	api.SetupRoutes(router)

	// Root handler
	router.GET("/", func(c *gin.Context) {
		protocol := "http"
		if config.AppConfig.TLSEnable || c.Request.Header.Get("X-Forwarded-Proto") == "https" {
			protocol = "https"
		}
		baseURL := fmt.Sprintf("%s://%s", protocol, c.Request.Host)

		c.JSON(http.StatusOK, gin.H{
			"message":       fmt.Sprintf("Log Tail API Server (Version: %s) is running (%s).", version, protocol),
			"documentation": fmt.Sprintf("%s/swagger/index.html", baseURL),
			"api_base_path": fmt.Sprintf("%s/api/v1", baseURL),
			"log_streams":   fmt.Sprintf("GET %s/api/v1/logs", baseURL),
			"notes": []string{
				"Cursor-based polling: GET /api/v1/logs/{fileID}/tail?cursor=N.",
				"Pass cursor=-1 (or omit it) to attach at the current end of a stream.",
				"Authentication is expected to be handled by a reverse proxy in front of this server.",
			},
		})
	})

	// --- Prepare Server Configuration ---
	listenAddr := fmt.Sprintf(":%s", config.AppConfig.APIPort)
	serverBaseURL := fmt.Sprintf("http://localhost:%s", config.AppConfig.APIPort)
	if config.AppConfig.TLSEnable {
		serverBaseURL = fmt.Sprintf("https://localhost:%s", config.AppConfig.APIPort)
	}

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	// --- Start Server Goroutine ---
	go func() {
		if config.AppConfig.TLSEnable {
			log.Infof("Starting HTTPS server, accessible locally at %s (and potentially other IPs)", serverBaseURL)
			if config.AppConfig.TLSCertFile == "" || config.AppConfig.TLSKeyFile == "" {
				log.Fatalf("TLS is enabled but TLS_CERT_FILE or TLS_KEY_FILE is not set.")
			}
			if _, err := os.Stat(config.AppConfig.TLSCertFile); os.IsNotExist(err) {
				log.Fatalf("TLS cert file not found: %s", config.AppConfig.TLSCertFile)
			}
			if _, err := os.Stat(config.AppConfig.TLSKeyFile); os.IsNotExist(err) {
				log.Fatalf("TLS key file not found: %s", config.AppConfig.TLSKeyFile)
			}
			if err := srv.ListenAndServeTLS(config.AppConfig.TLSCertFile, config.AppConfig.TLSKeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to start HTTPS server: %v", err)
			}
		} else {
			log.Infof("Starting HTTP server, accessible locally at %s (and potentially other IPs)", serverBaseURL)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to start HTTP server: %v", err)
			}
		}
		log.Info("Server listener stopped.")
	}()

	// --- Graceful Shutdown Handling ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infof("Received signal: %s. Shutting down server...", sig)

	// Give outstanding requests a deadline to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting gracefully.")
}
