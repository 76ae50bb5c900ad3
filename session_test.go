package herald

import (
	"bytes"
	"strings"
	"testing"
)

// testSession is an isolated session wired to in-memory buffers, with exit
// calls recorded instead of ending the test process.
type testSession struct {
	n      *Informer
	stdout bytes.Buffer
	stderr bytes.Buffer
	log    bytes.Buffer
	exits  []int
}

func newTestSession(t *testing.T, cfg Config) *testSession {
	t.Helper()
	s := &testSession{}
	if cfg.Argv == nil {
		cfg.Argv = []string{"myprog"}
	}
	cfg.Stdout = &s.stdout
	cfg.Stderr = &s.stderr
	if cfg.Logfile == nil {
		cfg.Logfile = LogfileWriter(&s.log)
	}
	cfg.ExitFunc = func(status int) { s.exits = append(s.exits, status) }
	s.n = New(cfg)
	t.Cleanup(s.n.Disconnect)
	return s
}

// logBody returns the captured log with the startup header removed.
func (s *testSession) logBody() string {
	var kept []string
	for _, line := range strings.Split(s.log.String(), "\n") {
		if strings.HasPrefix(line, "Invoked ") || strings.Contains(line, " - version ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

type notification struct {
	title   string
	body    string
	urgency Urgency
}

// notifierRecorder captures desktop notifications for inspection.
type notifierRecorder struct {
	calls []notification
}

func (r *notifierRecorder) Notify(title, body string, urgency Urgency) error {
	r.calls = append(r.calls, notification{title, body, urgency})
	return nil
}
