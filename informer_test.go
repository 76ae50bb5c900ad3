package herald

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionStacking(t *testing.T) {
	base := Active()

	outer := newTestSession(t, Config{ProgName: "outer"})
	if Active() != outer.n {
		t.Fatal("new session did not become active")
	}

	inner := newTestSession(t, Config{ProgName: "inner"})
	if Active() != inner.n {
		t.Fatal("nested session did not become active")
	}

	inner.n.Disconnect()
	if Active() != outer.n {
		t.Fatal("disconnect did not restore the previous session")
	}

	outer.n.Disconnect()
	if Active() != base {
		t.Fatal("disconnect did not restore the base session")
	}
}

func TestDefaultSessionCannotDisconnect(t *testing.T) {
	base := Active()
	base.Disconnect()
	if Active() != base {
		t.Fatal("default session was popped")
	}
}

func TestQuietForcesChattyFlagsOff(t *testing.T) {
	s := newTestSession(t, Config{Quiet: true, Verbose: true, Narrate: true})
	if s.n.Verbose || s.n.Narrate {
		t.Errorf("quiet session kept verbose=%v narrate=%v", s.n.Verbose, s.n.Narrate)
	}
}

func TestProgNameDerivation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"FromArgv", Config{Argv: []string{"/usr/local/bin/frobnicate", "--fast"}}, "frobnicate"},
		{"Explicit", Config{ProgName: "custom", Argv: []string{"/bin/other"}}, "custom"},
		{"Suppressed", Config{NoProgName: true, Argv: []string{"/bin/other"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.cfg)
			if s.n.ProgName != tt.want {
				t.Errorf("ProgName = %q, want %q", s.n.ProgName, tt.want)
			}
		})
	}
}

func TestLogHeader(t *testing.T) {
	s := newTestSession(t, Config{
		ProgName: "myprog",
		Version:  "1.2.3",
		Argv:     []string{"myprog", "--go"},
	})

	log := s.log.String()
	if !strings.Contains(log, "myprog - version 1.2.3\n") {
		t.Errorf("log missing version line: %q", log)
	}
	if !strings.Contains(log, "Invoked as 'myprog --go' on ") {
		t.Errorf("log missing invocation line: %q", log)
	}
}

func TestLogHeaderWithoutVersion(t *testing.T) {
	s := newTestSession(t, Config{ProgName: "myprog"})
	if strings.Contains(s.log.String(), "version") {
		t.Errorf("log has a version line without a version: %q", s.log.String())
	}
}

func TestErrorsAccruedReset(t *testing.T) {
	newTestSession(t, Config{ProgName: "myprog"})

	Error("one.")
	Error("two.")
	if got := ErrorsAccrued(true); got != 2 {
		t.Errorf("ErrorsAccrued(true) = %d, want 2", got)
	}
	if got := ErrorsAccrued(false); got != 0 {
		t.Errorf("count after reset = %d, want 0", got)
	}
}

func TestSuppressOutput(t *testing.T) {
	s := newTestSession(t, Config{NoProgName: true})

	s.n.SuppressOutput(true)
	Display("hidden")
	s.n.SuppressOutput(false)
	Display("shown")

	if got := s.stdout.String(); got != "shown\n" {
		t.Errorf("stdout = %q, want %q", got, "shown\n")
	}
}

func TestExtraAttributes(t *testing.T) {
	s := newTestSession(t, Config{Extra: map[string]any{"pedantic": true}})

	v, ok := s.n.Attr("pedantic")
	if !ok || v != true {
		t.Errorf("Attr(pedantic) = %v, %v", v, ok)
	}
	if _, ok := s.n.Attr("missing"); ok {
		t.Error("Attr reported a missing attribute as present")
	}
}

func TestAttrDrivenGate(t *testing.T) {
	pedantic := &Informant{
		Severity: "warning",
		Output: When(func(n *Informer) bool {
			v, _ := n.Attr("pedantic")
			return v == true
		}),
		Log: Always,
	}

	relaxed := newTestSession(t, Config{NoProgName: true})
	pedantic.Report("trailing whitespace.")
	if relaxed.stdout.Len() != 0 {
		t.Errorf("gate fired without the attribute: %q", relaxed.stdout.String())
	}
	relaxed.n.Disconnect()

	strict := newTestSession(t, Config{NoProgName: true, Extra: map[string]any{"pedantic": true}})
	pedantic.Report("trailing whitespace.")
	if got := strict.stdout.String(); got != "warning: trailing whitespace.\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetLogfileFailureReportsAndDisables(t *testing.T) {
	s := newTestSession(t, Config{ProgName: "myprog"})

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.log")
	s.n.SetLogfile(LogfilePath(missing))

	if s.stderr.Len() == 0 {
		t.Error("open failure was not reported to stderr")
	}

	// Logging is disabled, not crashed.
	before := s.log.Len()
	Log("should go nowhere")
	if s.log.Len() != before {
		t.Error("write reached the detached logfile")
	}
}
