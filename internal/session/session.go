// Package session implements the client-side state machine for tailing a
// remote log stream over the poll-based wire contract: cursor resumption,
// partial-line stitching across poll boundaries, rotation detection, and
// rejection of responses that arrive after the user switched streams or
// stopped polling.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

const (
	// MaxLines bounds the in-memory buffer per session. Oldest records are
	// evicted first; eviction never touches the counters.
	MaxLines = 500

	// DefaultPollInterval is the fixed poll cadence.
	DefaultPollInterval = 2 * time.Second

	// DefaultSearchDebounce is the quiet period applied to free-text filter
	// changes before the visible set is recomputed.
	DefaultSearchDebounce = 150 * time.Millisecond
)

// Fetcher retrieves the tail of a named log stream from a given cursor.
// Implementations must treat the call as read-only and idempotent.
type Fetcher interface {
	Tail(ctx context.Context, fileID string, cursor int64) (models.TailResponse, error)
}

// Status is the user-visible connection state of a session.
type Status int

const (
	// StatusStopped means polling is off; buffer, stats and cursor are kept.
	StatusStopped Status = iota
	// StatusConnected means the last poll succeeded.
	StatusConnected
	// StatusError means the last poll failed at the transport level. Polling
	// continues on schedule; the error is cosmetic, not fatal.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return "paused"
	}
}

// Record is one complete log line retained in the buffer. Seq increases
// monotonically for the lifetime of the session, across resets, so consumers
// can detect records they have not yet rendered.
type Record struct {
	Seq   uint64
	Text  string
	Level Level
}

// Counters accumulates totals over everything ever appended to the buffer,
// independent of filtering and eviction. Reset only on rotation, file switch,
// or manual clear.
type Counters struct {
	Total    int
	Warnings int
	Errors   int
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	File           string
	PollInterval   time.Duration
	SearchDebounce time.Duration
	MaxLines       int
}

// Session owns the tail state for one open viewer. All exported methods are
// safe for concurrent use; internally a single mutex serializes every state
// transition, so response application never interleaves with user commands.
type Session struct {
	fetcher  Fetcher
	interval time.Duration
	debounce time.Duration
	maxLines int

	mu          sync.Mutex
	file        string
	cursor      int64
	pending     string
	buffer      []Record
	seq         uint64
	stats       Counters
	filter      Filter
	visible     []Record
	polling     bool
	status      Status
	autoScroll  bool
	stop        chan struct{}
	searchTimer *time.Timer

	updates chan struct{}
}

// New creates a stopped session attached to the given stream. The first
// Start bootstraps at the stream's current end without replaying history.
func New(fetcher Fetcher, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = DefaultSearchDebounce
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = MaxLines
	}
	return &Session{
		fetcher:    fetcher,
		interval:   opts.PollInterval,
		debounce:   opts.SearchDebounce,
		maxLines:   opts.MaxLines,
		file:       opts.File,
		cursor:     models.BootstrapCursor,
		autoScroll: true,
		updates:    make(chan struct{}, 1),
	}
}

// Updates signals that the snapshot changed. The channel is coalescing:
// consumers that fall behind see at most one pending notification.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

// Start begins polling: an immediate fetch, then one per interval until
// Stop. Calling Start on a polling session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	if s.polling {
		s.mu.Unlock()
		return
	}
	s.polling = true
	stop := make(chan struct{})
	s.stop = stop
	file, cursor := s.file, s.cursor
	s.mu.Unlock()

	go s.fetch(file, cursor)
	go s.schedule(stop)
}

// Stop cancels the poll schedule. The buffer, stats, and cursor survive, so
// a later Start resumes from where the session left off. A fetch already in
// flight is not aborted; its result is discarded on arrival.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.polling {
		return
	}
	s.polling = false
	s.status = StatusStopped
	close(s.stop)
	s.stop = nil
	s.notifyLocked()
}

// SwitchFile retargets the session to a different stream: full reset,
// cursor back to the bootstrap sentinel, and, when polling, an immediate
// out-of-band fetch instead of waiting for the next tick. Responses still in
// flight for the previous stream are rejected by the stale-response guard.
func (s *Session) SwitchFile(fileID string) {
	s.mu.Lock()
	if fileID == s.file {
		s.mu.Unlock()
		return
	}
	s.file = fileID
	s.resetLocked()
	s.cursor = models.BootstrapCursor
	s.refreshLocked()
	polling := s.polling
	file, cursor := s.file, s.cursor
	s.mu.Unlock()

	if polling {
		go s.fetch(file, cursor)
	}
}

// Clear wipes the buffer, stats, and any pending partial line. The cursor
// and polling state are untouched: clearing affects presentation only, not
// the underlying stream position.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.refreshLocked()
}

// SetSeverityFilter hides records below the given level. Takes effect
// immediately.
func (s *Session) SetSeverityFilter(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.MinLevel = level
	s.filter.HasMinLevel = true
	s.refreshLocked()
}

// ClearSeverityFilter removes the minimum-severity filter.
func (s *Session) ClearSeverityFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.HasMinLevel = false
	s.refreshLocked()
}

// SetSearchFilter updates the free-text filter after a short quiet period,
// so per-keystroke calls collapse into a single recomputation. The last
// value supplied wins.
func (s *Session) SetSearchFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searchTimer != nil {
		s.searchTimer.Stop()
	}
	s.searchTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.filter.Search = text
		s.refreshLocked()
	})
}

// SetAutoScroll toggles whether consumers should follow the newest record.
func (s *Session) SetAutoScroll(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoScroll = enabled
	s.notifyLocked()
}

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	File       string
	Cursor     int64
	Polling    bool
	Status     Status
	AutoScroll bool
	Stats      Counters
	BufferLen  int
	Visible    []Record
}

// Snapshot returns a copy of the current state. The Visible slice is owned
// by the caller.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := make([]Record, len(s.visible))
	copy(visible, s.visible)
	return Snapshot{
		File:       s.file,
		Cursor:     s.cursor,
		Polling:    s.polling,
		Status:     s.status,
		AutoScroll: s.autoScroll,
		Stats:      s.stats,
		BufferLen:  len(s.buffer),
		Visible:    visible,
	}
}

// schedule drives the fixed-interval poll loop. Each tick issues at most one
// fetch; a fetch slower than the interval does not delay the next tick.
func (s *Session) schedule(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.polling {
				s.mu.Unlock()
				return
			}
			file, cursor := s.file, s.cursor
			s.mu.Unlock()
			go s.fetch(file, cursor)
		}
	}
}

func (s *Session) fetch(file string, cursor int64) {
	resp, err := s.fetcher.Tail(context.Background(), file, cursor)
	if err != nil {
		s.fetchFailed(file)
		return
	}
	s.apply(resp)
}

// fetchFailed records a transport failure. Session state is untouched and
// the schedule keeps running; the next tick retries unconditionally.
func (s *Session) fetchFailed(file string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.polling || file != s.file {
		return
	}
	s.status = StatusError
	s.notifyLocked()
}

// apply installs a completed fetch. Guard order matters: a response that
// arrives after Stop is never installed, and one addressed to a stream the
// session has since left mutates nothing at all.
func (s *Session) apply(resp models.TailResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.polling {
		return
	}
	if resp.FileID != s.file {
		// Stale response from before a file switch.
		return
	}

	// A shrinking file or regressing cursor means the backing file was
	// truncated or replaced underneath us. Reset before applying the
	// response's data.
	if resp.FileSize < s.cursor || resp.NextCursor < s.cursor {
		s.resetLocked()
	}

	if len(resp.Lines) == 0 && resp.EndsWithNewline && resp.NextCursor == s.cursor {
		// Nothing new. A held-back partial stays held back.
		s.status = StatusConnected
		s.notifyLocked()
		return
	}

	lines := resp.Lines
	if s.pending != "" {
		if len(lines) == 0 {
			lines = []string{s.pending}
		} else {
			lines[0] = s.pending + lines[0]
		}
		s.pending = ""
	}
	if !resp.EndsWithNewline && len(lines) > 0 {
		// The last record is still being written; hold it back until a
		// later poll completes it.
		s.pending = lines[len(lines)-1]
		lines = lines[:len(lines)-1]
	}

	for _, text := range lines {
		s.appendLocked(text)
	}
	if excess := len(s.buffer) - s.maxLines; excess > 0 {
		trimmed := make([]Record, s.maxLines)
		copy(trimmed, s.buffer[excess:])
		s.buffer = trimmed
	}

	s.cursor = resp.NextCursor
	s.status = StatusConnected
	s.refreshLocked()
}

// appendLocked adds one complete record, deriving its severity once and
// bumping the counters exactly once.
func (s *Session) appendLocked(text string) {
	s.seq++
	level := Classify(text)
	s.buffer = append(s.buffer, Record{Seq: s.seq, Text: text, Level: level})
	s.stats.Total++
	switch level {
	case LevelWarning:
		s.stats.Warnings++
	case LevelError:
		s.stats.Errors++
	}
}

// resetLocked clears buffer, stats, and pending partial. The sequence
// counter keeps running so consumers never see a Seq reused.
func (s *Session) resetLocked() {
	s.buffer = nil
	s.stats = Counters{}
	s.pending = ""
}

func (s *Session) refreshLocked() {
	s.visible = s.filter.Apply(s.buffer)
	s.notifyLocked()
}

func (s *Session) notifyLocked() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
