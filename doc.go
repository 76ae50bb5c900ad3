// Package herald provides console message composition and dispatch for
// command-line programs.
//
// Messages are produced through informants: pre-configured message kinds
// such as Display, Warn, Error, and Fatal that combine a severity, routing
// rules, and colors. Informants dispatch against the active session (the
// Informer), which decides where messages go based on quiet/mute/verbose
// flags, the stream policy, and the logfile configuration.
//
// # Sessions
//
// A default session exists before any explicit one, so the package-level
// informant functions work immediately:
//
//	herald.Display("processing", path)
//	herald.Error("file not found.", herald.Culprit("data.in"))
//
// Programs that want a logfile, a program name in headers, or custom
// streams create their own session. Sessions stack: constructing a new one
// makes it active, and Disconnect restores the previous one.
//
//	inf := herald.New(herald.Config{
//		ProgName: "myprog",
//		Logfile:  herald.LogfilePath(".myprog.log"),
//	})
//	defer inf.Disconnect()
//
// # Per-call options
//
// Options are typed values mixed into the argument list. Sep and End
// control joining, Culprit prefixes a context label, WithCodicil appends
// follow-up lines, Template selects a message template, and Wrap enables
// width-aware wrapping:
//
//	herald.Warn("file not found.", herald.Culprit("ghost"))
//	herald.Display("got", n, "rows", herald.Sep(" "), herald.Wrap(70))
//
// # Errors
//
// Err carries the same argument set as an informant call but defers
// composition until the error is reported, terminated, or rendered:
//
//	return herald.NewErr("unknown key.", herald.Culprit(key))
//
// A handler higher up decides whether the error is reported (counted, not
// fatal) or terminates the program.
package herald
