package herald

// Err is a rich error that carries the full argument set of an informant
// call. Composition is deferred: the raw arguments remain available for
// programmatic inspection until the error is rendered, reported, or
// terminated.
//
//	if !exists {
//		return herald.NewErr("file not found.", herald.Culprit(path))
//	}
//
// A handler decides the error's fate:
//
//	var herr *herald.Err
//	if errors.As(err, &herr) {
//		herr.Terminate()
//	}
type Err struct {
	msg *Message
}

// NewErr builds an error from message arguments, fields, and options.
// WithInformant binds the informant used by Report (default the error
// informant); Template supplies the candidate template chain.
func NewErr(args ...any) *Err {
	return &Err{msg: newMessage(args)}
}

// Error renders the error as "culprit: message", satisfying the error
// interface.
func (e *Err) Error() string {
	return e.Render()
}

// Message composes the message text without the culprit. Overrides such
// as Template are applied for this rendering only.
func (e *Err) Message(overrides ...any) string {
	m := e.msg.merge(newMessage(overrides))
	body, err := m.body()
	if err != nil {
		// A malformed template must not mask the original error.
		return joinPlain(m.Args, m.sepOrDefault())
	}
	return body
}

// Render composes the message with the culprit prefixed.
func (e *Err) Render(overrides ...any) string {
	m := e.msg.merge(newMessage(overrides))
	body, err := m.body()
	if err != nil {
		body = joinPlain(m.Args, m.sepOrDefault())
	}
	culprit := joinCulprit(m.culprit, ", ")
	if culprit == "" {
		return body
	}
	return culprit + ": " + body
}

// Report dispatches the error through its bound informant (default the
// error informant) against the active session.
func (e *Err) Report(overrides ...any) {
	m := e.msg.merge(newMessage(overrides))
	inf := m.informant
	if inf == nil {
		inf = ErrorInformant
	}
	Active().report(inf, m)
}

// Terminate dispatches the error fatally. The bound informant is used
// when it terminates on its own; otherwise the fatal informant is used,
// exiting with status 1.
func (e *Err) Terminate(overrides ...any) {
	m := e.msg.merge(newMessage(overrides))
	inf := m.informant
	if inf == nil || !inf.Terminate.terminates() {
		inf = FatalInformant
	}
	Active().report(inf, m)
}

// Reraise returns a new error of the same shape with the overrides
// merged in: culprits prepend, codicils append, other options replace.
func (e *Err) Reraise(overrides ...any) *Err {
	return &Err{msg: e.msg.merge(newMessage(overrides))}
}

// GetCulprit returns the error's culprit entries with extra prepended.
func (e *Err) GetCulprit(extra ...any) []any {
	out := flattenCulprit(extra)
	return append(out, e.msg.culprit...)
}

// GetCodicil returns the error's codicil lines with extra appended.
func (e *Err) GetCodicil(extra ...any) []any {
	out := append([]any{}, e.msg.codicil...)
	return append(out, extra...)
}

// Attr returns the named field supplied via Fields, with ok reporting
// whether it was set.
func (e *Err) Attr(name string) (value any, ok bool) {
	value, ok = e.msg.Fields[name]
	return value, ok
}

// Args returns the unnamed message arguments as given.
func (e *Err) Args() []any {
	return e.msg.Args
}

func joinPlain(args []any, sep string) string {
	out := ""
	for i, arg := range args {
		if i > 0 {
			out += sep
		}
		out += renderValue(arg)
	}
	return out
}
