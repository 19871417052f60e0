package interfaces

// DiagnosticSink receives non-fatal notes emitted while pages are built, such
// as guessed titles or derived slugs. Implementations must not block and must
// never fail the caller.
type DiagnosticSink interface {
	Warn(topic, message string)
	Debug(topic, message string)
}
