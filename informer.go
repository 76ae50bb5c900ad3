package herald

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the construction-time configuration of a session. The
// zero value gives a session that prints to the standard streams with no
// logfile, deriving the program name from os.Args.
type Config struct {
	// Mute suppresses all output (it is still logged).
	Mute bool `toml:"mute"`
	// Quiet suppresses normal output (it is still logged) and forces
	// Verbose and Narrate off.
	Quiet bool `toml:"quiet"`
	// Verbose shows comments, which are normally only logged.
	Verbose bool `toml:"verbose"`
	// Narrate shows narration, which is normally only logged.
	Narrate bool `toml:"narrate"`
	// ProgName is used in message headers and the default logfile name.
	// Empty derives it from Argv; set NoProgName to suppress it.
	ProgName   string `toml:"prog_name"`
	NoProgName bool   `toml:"no_prog_name"`
	// Colorscheme selects none, light, or dark (the default).
	Colorscheme Scheme `toml:"colorscheme"`
	// NotifyIfNoTTY additionally routes error-class messages to the
	// desktop notifier when stdout is not a terminal.
	NotifyIfNoTTY bool `toml:"notify_if_no_tty"`
	// LogfilePath is a convenience for Logfile: herald.LogfilePath(path).
	LogfilePath string `toml:"logfile"`
	// FlushWrites flushes the stream after every write.
	FlushWrites bool `toml:"flush"`
	// CulpritSep joins culprit entries (default ", ").
	CulpritSep string `toml:"culprit_sep"`

	// Logfile is where log lines go; nil disables logging unless
	// LogfilePath is set.
	Logfile LogDestination `toml:"-"`
	// Argv is the command line, logged at session start (default os.Args).
	Argv []string `toml:"-"`
	// Version is logged at session start when known.
	Version string `toml:"-"`
	// Stdout and Stderr override the output streams, primarily for tests.
	Stdout io.Writer `toml:"-"`
	Stderr io.Writer `toml:"-"`
	// StreamPolicy maps messages to stdout or stderr (default
	// TerminationPolicy).
	StreamPolicy StreamPolicy `toml:"-"`
	// Notifier overrides the desktop-notification sink.
	Notifier Notifier `toml:"-"`
	// TerminationCallback runs exactly once when the session terminates
	// the program.
	TerminationCallback func() `toml:"-"`
	// ExitFunc replaces os.Exit, primarily for tests.
	ExitFunc func(int) `toml:"-"`
	// Extra holds arbitrary attributes readable by informant gates via
	// Attr.
	Extra map[string]any `toml:"-"`
}

// Informer is an output session: it decides where and whether messages
// go. Exactly one session is active at a time; constructing one pushes it
// onto the session stack and Disconnect restores the previous session.
type Informer struct {
	Mute          bool
	Quiet         bool
	Verbose       bool
	Narrate       bool
	ProgName      string
	Argv          []string
	Version       string
	Colorscheme   Scheme
	NotifyIfNoTTY bool
	FlushWrites   bool
	CulpritSep    string
	Extra         map[string]any

	stdout   io.Writer
	stderr   io.Writer
	policy   StreamPolicy
	notifier Notifier

	logfile   io.Writer
	logCloser io.Closer

	errors       int
	prev         *lastRecord
	exit         func(int)
	callback     func()
	callbackDone bool
	progress     *ProgressBar
	inPanic      bool
}

// lastRecord remembers the routing of the most recent non-continuation
// message so continuations can inherit it.
type lastRecord struct {
	informant *Informant
	stops     int
}

// The session stack. The bottom element is the default sentinel session,
// so the stack is never empty and Active never returns nil.
var sessions = []*Informer{newDefaultInformer()}

func newDefaultInformer() *Informer {
	n := &Informer{
		Argv:       os.Args,
		CulpritSep: ", ",
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		policy:     TerminationPolicy,
		notifier:   desktopNotifier{},
		exit:       os.Exit,
	}
	if len(os.Args) > 0 {
		n.ProgName = filepath.Base(os.Args[0])
	}
	return n
}

// Active returns the session currently receiving dispatches.
func Active() *Informer {
	return sessions[len(sessions)-1]
}

// New constructs a session from cfg and makes it active. Disconnect the
// session to restore the previous one:
//
//	inf := herald.New(herald.Config{ProgName: "myprog"})
//	defer inf.Disconnect()
func New(cfg Config) *Informer {
	n := &Informer{
		Mute:          cfg.Mute,
		Quiet:         cfg.Quiet,
		Verbose:       cfg.Verbose,
		Narrate:       cfg.Narrate,
		Version:       cfg.Version,
		Colorscheme:   cfg.Colorscheme,
		NotifyIfNoTTY: cfg.NotifyIfNoTTY,
		FlushWrites:   cfg.FlushWrites,
		CulpritSep:    cfg.CulpritSep,
		Extra:         cfg.Extra,
		stdout:        cfg.Stdout,
		stderr:        cfg.Stderr,
		policy:        cfg.StreamPolicy,
		notifier:      cfg.Notifier,
		exit:          cfg.ExitFunc,
		callback:      cfg.TerminationCallback,
	}

	// Quiet wins over the chattier flags.
	if n.Quiet {
		n.Verbose = false
		n.Narrate = false
	}

	n.Argv = cfg.Argv
	if n.Argv == nil {
		n.Argv = os.Args
	}
	n.ProgName = cfg.ProgName
	if n.ProgName == "" && !cfg.NoProgName && len(n.Argv) > 0 {
		n.ProgName = filepath.Base(n.Argv[0])
	}
	if cfg.NoProgName {
		n.ProgName = ""
	}

	if n.CulpritSep == "" {
		n.CulpritSep = ", "
	}
	if n.stdout == nil {
		n.stdout = os.Stdout
	}
	if n.stderr == nil {
		n.stderr = os.Stderr
	}
	if n.policy == nil {
		n.policy = TerminationPolicy
	}
	if n.notifier == nil {
		n.notifier = desktopNotifier{}
	}
	if n.exit == nil {
		n.exit = os.Exit
	}

	sessions = append(sessions, n)

	dest := cfg.Logfile
	if dest == nil && cfg.LogfilePath != "" {
		dest = LogfilePath(cfg.LogfilePath)
	}
	if dest != nil {
		n.SetLogfile(dest)
	}
	return n
}

// Disconnect deactivates the session, restoring the previous one. The
// logfile is flushed and, if the session opened it, closed. The default
// sentinel session cannot be disconnected.
func (n *Informer) Disconnect() {
	n.FlushLogfile()
	if n.logCloser != nil {
		_ = n.logCloser.Close()
		n.logCloser = nil
	}
	for i := len(sessions) - 1; i > 0; i-- {
		if sessions[i] == n {
			sessions = append(sessions[:i], sessions[i+1:]...)
			break
		}
	}
}

// SetLogfile attaches a log destination. If the session was logging into
// a LogCache, the cached lines are replayed into the new destination;
// otherwise the startup header is written fresh. A destination that
// cannot be opened is reported to stderr and logging is disabled.
func (n *Informer) SetLogfile(dest LogDestination) {
	old := n.logfile
	if n.logCloser != nil {
		_ = n.logCloser.Close()
		n.logCloser = nil
	}
	n.logfile = nil

	if dest == nil {
		return
	}
	w, err := dest.open(n)
	if err != nil {
		fmt.Fprintln(n.stderr, OSError(err))
		return
	}
	n.logfile = w
	if c, ok := w.(io.Closer); ok {
		if _, isCache := w.(*LogCache); !isCache {
			n.logCloser = c
		}
	}

	if cache, ok := old.(*LogCache); ok {
		if err := cache.Replay(w); err != nil {
			fmt.Fprintln(n.stderr, OSError(err))
		}
		return
	}
	n.writeLogHeader()
}

func (n *Informer) writeLogHeader() {
	if n.logfile == nil {
		return
	}
	if n.ProgName != "" && n.Version != "" {
		fmt.Fprintf(n.logfile, "%s - version %s\n", n.ProgName, n.Version)
	}
	now := time.Now().Format("Monday, 2 January 2006 at 3:04:05 PM")
	if len(n.Argv) > 0 {
		fmt.Fprintf(n.logfile, "Invoked as '%s' on %s.\n", strings.Join(n.Argv, " "), now)
	} else {
		fmt.Fprintf(n.logfile, "Invoked on %s.\n", now)
	}
}

// FlushLogfile flushes any buffered log output.
func (n *Informer) FlushLogfile() {
	if n.logfile != nil {
		flushWriter(n.logfile)
	}
}

// SuppressOutput mutes or unmutes the session.
func (n *Informer) SuppressOutput(mute bool) {
	n.Mute = mute
}

// SetStreamPolicy replaces the stream-routing policy.
func (n *Informer) SetStreamPolicy(p StreamPolicy) {
	if p == nil {
		p = TerminationPolicy
	}
	n.policy = p
}

// Attr returns the named extension attribute, with ok reporting whether
// it was set.
func (n *Informer) Attr(name string) (value any, ok bool) {
	value, ok = n.Extra[name]
	return value, ok
}

// ErrorsAccrued returns the number of errors reported since session start
// or the last reset.
func (n *Informer) ErrorsAccrued(reset bool) int {
	count := n.errors
	if reset {
		n.errors = 0
	}
	return count
}

// Done terminates the program normally with exit status 0.
func (n *Informer) Done() {
	n.logTrailer("terminates normally.")
	n.shutdown(0)
}

// Terminate ends the program with exit status 1 if errors accrued and 0
// otherwise.
func (n *Informer) Terminate() {
	status := 0
	if n.errors > 0 {
		status = 1
	}
	n.TerminateWithStatus(status)
}

// TerminateWithStatus ends the program with the given exit status.
// Recommended codes: 0 success, 1 error, 2 invalid invocation, 3 panic.
func (n *Informer) TerminateWithStatus(status int) {
	n.logTrailer(fmt.Sprintf("terminates with status %d.", status))
	n.shutdown(status)
}

// TerminateWithMessage prints the message to stderr and ends the program
// with exit status 1.
func (n *Informer) TerminateWithMessage(msg string) {
	fmt.Fprintln(n.stderr, msg)
	n.logTrailer(fmt.Sprintf("terminates with status '%s'.", msg))
	n.shutdown(1)
}

// TerminateIfErrors ends the program with the given status when any
// errors accrued, and otherwise returns.
func (n *Informer) TerminateIfErrors(status int) {
	if n.errors > 0 {
		n.TerminateWithStatus(status)
	}
}

func (n *Informer) logTrailer(event string) {
	if n.logfile == nil {
		return
	}
	prog := n.ProgName
	if prog == "" {
		prog = "program"
	}
	fmt.Fprintf(n.logfile, "%s: %s\n", prog, event)
}

// shutdown runs the termination callback exactly once, closes the
// logfile, and exits.
func (n *Informer) shutdown(status int) {
	if n.callback != nil && !n.callbackDone {
		n.callbackDone = true
		n.callback()
	}
	n.FlushLogfile()
	if n.logCloser != nil {
		_ = n.logCloser.Close()
		n.logCloser = nil
	}
	n.logfile = nil
	n.exit(status)
}

// Package-level forwards to the active session.

// ErrorsAccrued returns the active session's error count.
func ErrorsAccrued(reset bool) int { return Active().ErrorsAccrued(reset) }

// Done terminates normally through the active session.
func Done() { Active().Done() }

// Terminate ends the program, deriving the exit status from the error
// count.
func Terminate() { Active().Terminate() }

// TerminateWithStatus ends the program with the given status.
func TerminateWithStatus(status int) { Active().TerminateWithStatus(status) }

// TerminateIfErrors ends the program when errors accrued.
func TerminateIfErrors(status int) { Active().TerminateIfErrors(status) }
