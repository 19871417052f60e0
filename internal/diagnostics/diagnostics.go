// Package diagnostics implements the sink that receives non-fatal notes
// emitted while pages are built.
package diagnostics

import (
	"slices"
	"sync"

	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/pkg/interfaces"
)

// Severity classifies a diagnostic entry.
type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityDebug Severity = "debug"
)

// Entry is a single recorded diagnostic.
type Entry struct {
	Severity Severity
	Topic    string
	Message  string
}

// FromProvider returns a sink that forwards each topic to the module logger
// "wok.<topic>" of the supplied provider. A nil provider drops everything.
func FromProvider(provider interfaces.LoggerProvider) interfaces.DiagnosticSink {
	return &loggerSink{provider: provider, loggers: map[string]interfaces.Logger{}}
}

type loggerSink struct {
	provider interfaces.LoggerProvider
	mu       sync.Mutex
	loggers  map[string]interfaces.Logger
}

func (s *loggerSink) Warn(topic, message string) {
	s.logger(topic).Warn(message, "topic", topic)
}

func (s *loggerSink) Debug(topic, message string) {
	s.logger(topic).Debug(message, "topic", topic)
}

func (s *loggerSink) logger(topic string) interfaces.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logger, ok := s.loggers[topic]; ok {
		return logger
	}
	logger := logging.TopicLogger(s.provider, topic)
	s.loggers[topic] = logger
	return logger
}

// Discard returns a sink that drops every entry.
func Discard() interfaces.DiagnosticSink {
	return discardSink{}
}

type discardSink struct{}

func (discardSink) Warn(string, string)  {}
func (discardSink) Debug(string, string) {}

// Recorder keeps every entry in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ interfaces.DiagnosticSink = (*Recorder)(nil)

func (r *Recorder) Warn(topic, message string) {
	r.add(Entry{Severity: SeverityWarn, Topic: topic, Message: message})
}

func (r *Recorder) Debug(topic, message string) {
	r.add(Entry{Severity: SeverityDebug, Topic: topic, Message: message})
}

func (r *Recorder) add(entry Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

// Entries returns a copy of the recorded entries in emission order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Filter returns recorded entries with the given severity.
func (r *Recorder) Filter(severity Severity) []Entry {
	var out []Entry
	for _, entry := range r.Entries() {
		if entry.Severity == severity {
			out = append(out, entry)
		}
	}
	return out
}

// Reset clears the recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Tee fans every entry out to each non-nil sink.
func Tee(sinks ...interfaces.DiagnosticSink) interfaces.DiagnosticSink {
	kept := make(teeSink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			kept = append(kept, sink)
		}
	}
	return kept
}

type teeSink []interfaces.DiagnosticSink

func (t teeSink) Warn(topic, message string) {
	for _, sink := range t {
		sink.Warn(topic, message)
	}
}

func (t teeSink) Debug(topic, message string) {
	for _, sink := range t {
		sink.Debug(topic, message)
	}
}
