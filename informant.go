package herald

// Gate decides whether an informant writes to a particular destination.
// It is either a literal boolean or a predicate evaluated against the
// active session, so message kinds can react to quiet/verbose/mute flags.
type Gate struct {
	literal bool
	fn      func(*Informer) bool
}

// Always and Never are the literal gates.
var (
	Always = Gate{literal: true}
	Never  = Gate{literal: false}
)

// When gates on a predicate of the active session.
func When(fn func(*Informer) bool) Gate {
	return Gate{fn: fn}
}

// Resolve evaluates the gate against a session.
func (g Gate) Resolve(n *Informer) bool {
	if g.fn != nil {
		return g.fn(n)
	}
	return g.literal
}

// Exit describes whether and how an informant ends the program.
type Exit struct {
	terminate bool
	status    int
}

// ExitNever is the zero Exit: the informant does not terminate.
var ExitNever = Exit{}

// ExitStatus terminates the program with the given status.
func ExitStatus(status int) Exit {
	return Exit{terminate: true, status: status}
}

func (e Exit) terminates() bool { return e.terminate }

// Informant is a pre-configured message kind: a severity, routing rules,
// colors, and termination behavior. Informants are factories; the fields
// are exported so callers can derive variants by copying and adjusting.
type Informant struct {
	// Severity labels the message header; empty means no header.
	Severity string
	// IsError counts the message toward the session error count.
	IsError bool
	// Output, Log, and Notify gate the stream write, the logfile copy,
	// and the desktop notification.
	Output Gate
	Log    Gate
	Notify Gate
	// Terminate, when set, ends the program after dispatch.
	Terminate Exit
	// IsContinuation makes the message inherit the routing and colors of
	// the previous non-continuation message.
	IsContinuation bool
	// MessageColor and HeaderColor apply when the destination is a TTY
	// and the session colorscheme is not none.
	MessageColor Color
	HeaderColor  Color
}

// Report composes and dispatches a message through this informant against
// the active session.
func (inf *Informant) Report(args ...any) {
	Active().report(inf, newMessage(args))
}

// The builtin informants. Their gates encode the fixed mapping of message
// kind to the session flags that suppress it.
var (
	// LogOnly messages go only to the logfile.
	LogOnly = &Informant{
		Output: Never,
		Log:    Always,
	}

	// CommentInformant messages are logged, and shown only when verbose.
	CommentInformant = &Informant{
		Output:       When(func(n *Informer) bool { return n.Verbose && !n.Mute }),
		Log:          Always,
		MessageColor: Cyan,
	}

	// CodicilInformant continues the previous message.
	CodicilInformant = &Informant{
		IsContinuation: true,
	}

	// NarrateInformant messages are logged, and shown only when narrating.
	NarrateInformant = &Informant{
		Output:       When(func(n *Informer) bool { return n.Narrate && !n.Mute }),
		Log:          Always,
		MessageColor: Blue,
	}

	// DisplayInformant is the ordinary output kind, suppressed by quiet.
	DisplayInformant = &Informant{
		Output: When(func(n *Informer) bool { return !n.Quiet && !n.Mute }),
		Log:    Always,
	}

	// OutputInformant is essential output, suppressed only by mute.
	OutputInformant = &Informant{
		Output: When(func(n *Informer) bool { return !n.Mute }),
		Log:    Always,
	}

	// NotifyInformant also posts a desktop notification.
	NotifyInformant = &Informant{
		Output: When(func(n *Informer) bool { return !n.Quiet && !n.Mute }),
		Log:    Always,
		Notify: Always,
	}

	// DebugInformant is for temporary debugging output.
	DebugInformant = &Informant{
		Severity:    "DEBUG",
		Output:      Always,
		Log:         Always,
		HeaderColor: Magenta,
	}

	// WarnInformant reports a non-fatal problem, suppressed by quiet.
	WarnInformant = &Informant{
		Severity:    "warning",
		Output:      When(func(n *Informer) bool { return !n.Quiet && !n.Mute }),
		Log:         Always,
		HeaderColor: Yellow,
	}

	// ErrorInformant reports and counts an error.
	ErrorInformant = &Informant{
		Severity:    "error",
		IsError:     true,
		Output:      When(func(n *Informer) bool { return !n.Mute }),
		Log:         Always,
		HeaderColor: Red,
	}

	// FatalInformant reports an error and exits with status 1.
	FatalInformant = &Informant{
		Severity:    "error",
		IsError:     true,
		Output:      When(func(n *Informer) bool { return !n.Mute }),
		Log:         Always,
		Terminate:   ExitStatus(1),
		HeaderColor: Red,
	}

	// PanicInformant reports an internal error and exits with status 3.
	// It ignores mute: invariant violations are always shown.
	PanicInformant = &Informant{
		Severity:    "internal error (please report)",
		IsError:     true,
		Output:      Always,
		Log:         Always,
		Terminate:   ExitStatus(3),
		HeaderColor: Red,
	}
)

// Package-level dispatch functions for the builtin informants.

// Log writes a message only to the logfile.
func Log(args ...any) { LogOnly.Report(args...) }

// Comment prints explanatory detail, shown with --verbose.
func Comment(args ...any) { CommentInformant.Report(args...) }

// Codicil continues the previous message with follow-up lines.
func Codicil(args ...any) { CodicilInformant.Report(args...) }

// Narrate prints progress narration, shown with --narrate.
func Narrate(args ...any) { NarrateInformant.Report(args...) }

// Display prints ordinary output, suppressed by --quiet.
func Display(args ...any) { DisplayInformant.Report(args...) }

// Output prints essential output, suppressed only by mute.
func Output(args ...any) { OutputInformant.Report(args...) }

// Notify prints output and posts a desktop notification.
func Notify(args ...any) { NotifyInformant.Report(args...) }

// Debug prints temporary debugging output.
func Debug(args ...any) { DebugInformant.Report(args...) }

// Warn reports a non-fatal problem.
func Warn(args ...any) { WarnInformant.Report(args...) }

// Error reports and counts an error.
func Error(args ...any) { ErrorInformant.Report(args...) }

// Fatal reports an error and terminates with exit status 1.
func Fatal(args ...any) { FatalInformant.Report(args...) }

// Panic reports an internal error and terminates with exit status 3.
func Panic(args ...any) { PanicInformant.Report(args...) }
