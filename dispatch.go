package herald

import (
	"io"
	"strings"

	"github.com/halverde/herald/internal/textwrap"
)

// report is the dispatch pipeline: it resolves routing, composes the
// message, and delivers it to the stream, the logfile, and the notifier.
func (n *Informer) report(inf *Informant, m *Message) {
	act := inf
	stops := 0
	if inf.IsContinuation {
		// Continuations inherit the previous message's routing, colors,
		// and indent; they never re-emit its header.
		if n.prev == nil {
			act = DisplayInformant
		} else {
			act = n.prev.informant
			stops = n.prev.stops
		}
	} else if inf.IsError {
		n.errors++
	}

	writeOut := act.Output.Resolve(n)
	writeLog := act.Log.Resolve(n) && n.logfile != nil
	notify := act.Notify.Resolve(n)
	if n.NotifyIfNoTTY && act.IsError && !isTTY(n.stdout) {
		// Policy: the notification is added; the stream write stands.
		notify = true
	}

	if writeOut || writeLog || notify {
		body, err := m.body()
		if err != nil {
			n.internalError(err)
			return
		}

		culprit := m.culprit
		if !m.culpritSet {
			culprit = GetCulprit()
		}
		culpritText := joinCulprit(culprit, n.CulpritSep)

		header := ""
		if !inf.IsContinuation {
			header = n.renderHeader(act)
		}

		var text string
		if inf.IsContinuation {
			if culpritText != "" {
				body = culpritText + ": " + body
			}
			text = Indent(body, messageStop, 0, stops)
			if m.wrap > 0 {
				text = textwrap.Wrap(text, m.wrap)
			}
		} else {
			text = assemble(header, culpritText, body, m.wrap)
		}
		if lines := m.codicilLines(boolToStops(header != "")); len(lines) > 0 {
			text += "\n" + strings.Join(lines, "\n")
		}
		end := m.endOrDefault()

		if writeOut {
			stream := m.file
			if stream == nil {
				stream = n.policy.Stream(act, n.stdout, n.stderr)
			}
			if n.progress != nil {
				n.progress.interrupt()
			}
			n.write(stream, n.colorize(act, header, text, stream)+end)
			if m.flush || n.FlushWrites {
				flushWriter(stream)
			}
		}
		if writeLog {
			n.write(n.logfile, stripColors(text)+end)
		}
		if notify && n.notifier != nil {
			urgency := UrgencyNormal
			if act.IsError {
				urgency = UrgencyCritical
			}
			if m.urgency != nil {
				urgency = *m.urgency
			}
			_ = n.notifier.Notify(n.ProgName, strings.TrimRight(body, "\n"), urgency)
		}
	}

	if !inf.IsContinuation {
		n.prev = &lastRecord{informant: act, stops: boolToStops(act.Severity != "")}
	}
	if act.Terminate.terminates() {
		n.TerminateWithStatus(act.Terminate.status)
	}
}

func boolToStops(hasHeader bool) int {
	if hasHeader {
		return 1
	}
	return 0
}

// renderHeader builds "<prog> <severity>: ", "<severity>: ", or "".
func (n *Informer) renderHeader(act *Informant) string {
	if act.Severity == "" {
		return ""
	}
	if n.ProgName != "" {
		return n.ProgName + " " + act.Severity + ": "
	}
	return act.Severity + ": "
}

// colorize applies the informant's colors when the destination is a
// terminal and the session has a colorscheme. The header and the rest of
// the text are colored independently.
func (n *Informer) colorize(act *Informant, headerText, text string, stream io.Writer) string {
	if n.Colorscheme.normalize() == SchemeNone || !isTTY(stream) {
		return text
	}
	hd, rest := splitHeader(text, headerText)
	return act.HeaderColor.render(hd, n.Colorscheme) + act.MessageColor.render(rest, n.Colorscheme)
}

// splitHeader separates the header prefix from the assembled text. The
// assembled text begins with the header, possibly with its trailing
// space trimmed.
func splitHeader(text, headerText string) (string, string) {
	if headerText != "" {
		if strings.HasPrefix(text, headerText) {
			return headerText, text[len(headerText):]
		}
		trimmed := strings.TrimRight(headerText, " ")
		if strings.HasPrefix(text, trimmed) {
			return trimmed, text[len(trimmed):]
		}
	}
	return "", text
}

// write delivers text, swallowing failures such as broken pipes: message
// output must never crash the program it serves.
func (n *Informer) write(w io.Writer, text string) {
	defer func() { _ = recover() }()
	_, _ = io.WriteString(w, text)
}

// internalError routes a composition failure through the panic informant
// without recursing should the panic dispatch itself fail.
func (n *Informer) internalError(err error) {
	if n.inPanic {
		n.write(n.stderr, "internal error: "+err.Error()+"\n")
		return
	}
	n.inPanic = true
	defer func() { n.inPanic = false }()
	n.report(PanicInformant, newMessage([]any{err.Error()}))
}
