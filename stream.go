package herald

import "io"

// StreamPolicy chooses the destination stream for a message.
type StreamPolicy interface {
	Stream(inf *Informant, stdout, stderr io.Writer) io.Writer
}

// StreamPolicyFunc adapts a function to the StreamPolicy interface.
type StreamPolicyFunc func(inf *Informant, stdout, stderr io.Writer) io.Writer

func (f StreamPolicyFunc) Stream(inf *Informant, stdout, stderr io.Writer) io.Writer {
	return f(inf, stdout, stderr)
}

// TerminationPolicy sends everything to stdout except messages that
// terminate the program, which go to stderr. This is the default.
var TerminationPolicy StreamPolicy = StreamPolicyFunc(
	func(inf *Informant, stdout, stderr io.Writer) io.Writer {
		if inf.Terminate.terminates() {
			return stderr
		}
		return stdout
	})

// HeaderPolicy sends messages that carry a header (a non-empty severity)
// to stderr and all others to stdout.
var HeaderPolicy StreamPolicy = StreamPolicyFunc(
	func(inf *Informant, stdout, stderr io.Writer) io.Writer {
		if inf.Severity != "" {
			return stderr
		}
		return stdout
	})
