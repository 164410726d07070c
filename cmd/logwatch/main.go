// cmd/logwatch/main.go
//
// logwatch is a terminal viewer for the log tail API: it owns one client
// Session, polls the server on the session's fixed cadence, and prints each
// complete record exactly once as it becomes visible.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plexnotify/logtail-api-server/internal/client"
	"github.com/plexnotify/logtail-api-server/internal/session"
)

func main() {
	var (
		serverURL string
		fileID    string
		levelName string
		search    string
		interval  time.Duration
		listFiles bool
	)

	flag.StringVar(&serverURL, "url", "http://localhost:8080", "Base URL of the log tail API server")
	flag.StringVar(&fileID, "file", "app", "Log stream id to tail")
	flag.StringVar(&levelName, "level", "", "Minimum severity to show (debug, info, warning, error); empty shows everything")
	flag.StringVar(&search, "grep", "", "Only show records containing this text (case-insensitive)")
	flag.DurationVar(&interval, "interval", session.DefaultPollInterval, "Poll interval")
	flag.BoolVar(&listFiles, "list", false, "List the server's log streams and exit")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetTimeFormat("15:04:05")

	c := client.New(serverURL)

	if listFiles {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		files, err := c.ListFiles(ctx)
		if err != nil {
			log.Fatalf("Failed to list log streams: %v", err)
		}
		for _, f := range files {
			size := "missing"
			if f.Size >= 0 {
				size = fmt.Sprintf("%d bytes", f.Size)
			}
			fmt.Printf("%-16s %s (%s)\n", f.ID, f.Path, size)
		}
		return
	}

	sess := session.New(c, session.Options{File: fileID, PollInterval: interval})
	if levelName != "" {
		level, ok := session.ParseLevel(levelName)
		if !ok {
			log.Fatalf("Unknown severity '%s'. Use debug, info, warning, or error.", levelName)
		}
		sess.SetSeverityFilter(level)
	}
	if search != "" {
		sess.SetSearchFilter(search)
	}

	log.Infof("Tailing stream '%s' from %s every %s", fileID, serverURL, interval)
	sess.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var lastSeq uint64
	lastStatus := session.StatusStopped
	for {
		select {
		case <-quit:
			sess.Stop()
			snap := sess.Snapshot()
			log.Infof("Stopped. %d records seen (%d warnings, %d errors).",
				snap.Stats.Total, snap.Stats.Warnings, snap.Stats.Errors)
			return
		case <-sess.Updates():
			snap := sess.Snapshot()
			if snap.Status != lastStatus {
				switch snap.Status {
				case session.StatusConnected:
					log.Infof("Connected to stream '%s'", snap.File)
				case session.StatusError:
					log.Warn("Poll failed; retrying on schedule")
				}
				lastStatus = snap.Status
			}
			for _, r := range snap.Visible {
				if r.Seq > lastSeq {
					fmt.Println(r.Text)
					lastSeq = r.Seq
				}
			}
		}
	}
}
