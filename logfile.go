package herald

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogDestination is where a session's log lines go. Use LogfilePath to
// log to a file, LogfileWriter to log to an open stream, or NewLogCache
// to buffer lines until a real destination is known.
type LogDestination interface {
	open(n *Informer) (io.Writer, error)
}

type logfilePath string

// LogfilePath logs to the file at path, truncating it at session start.
func LogfilePath(path string) LogDestination { return logfilePath(path) }

func (p logfilePath) open(*Informer) (io.Writer, error) {
	return os.Create(string(p))
}

type logfileWriter struct{ w io.Writer }

// LogfileWriter logs to an already-open stream. The stream is not closed
// at session end.
func LogfileWriter(w io.Writer) LogDestination { return logfileWriter{w} }

func (l logfileWriter) open(*Informer) (io.Writer, error) { return l.w, nil }

// DefaultLogfile logs to ".<prog_name>.log" in the working directory, or
// ".log" when the session has no program name.
func DefaultLogfile() LogDestination {
	return defaultLogfile{}
}

type defaultLogfile struct{}

func (defaultLogfile) open(n *Informer) (io.Writer, error) {
	name := ".log"
	if n.ProgName != "" {
		name = "." + n.ProgName + ".log"
	}
	return os.Create(name)
}

// LogCache is a deferred logfile: it queues lines in memory and replays
// them into a real destination once one is attached with SetLogfile.
type LogCache struct {
	mu    sync.Mutex
	lines []byte
}

// NewLogCache returns an empty logging cache.
func NewLogCache() *LogCache { return &LogCache{} }

func (c *LogCache) open(*Informer) (io.Writer, error) { return c, nil }

func (c *LogCache) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, p...)
	return len(p), nil
}

// Replay writes the buffered lines to w and empties the cache.
func (c *LogCache) Replay(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := w.Write(c.lines); err != nil {
		return fmt.Errorf("failed to replay log cache: %w", err)
	}
	c.lines = nil
	return nil
}

// Contents returns the buffered log text.
func (c *LogCache) Contents() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.lines)
}

// flushable is satisfied by writers that buffer, such as *os.File (via
// Sync) and bufio.Writer.
type flusher interface{ Flush() error }
type syncer interface{ Sync() error }

func flushWriter(w io.Writer) {
	switch t := w.(type) {
	case flusher:
		_ = t.Flush()
	case syncer:
		_ = t.Sync()
	}
}
