package services

import (
	"sync"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

type mockEngine struct {
	result linkaudit.Result
	calls  int
}

func (m *mockEngine) Scan(src linkaudit.Source, _ linkaudit.Rules) linkaudit.Result {
	m.calls++
	r := m.result
	r.Source = src.Path
	r.Findings = append([]linkaudit.Finding(nil), m.result.Findings...)
	return r
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) { l.add(format) }
func (l *recordingLogger) Info(format string, args ...interface{})    { l.add(format) }
func (l *recordingLogger) Error(format string, args ...interface{})   { l.add(format) }

func (l *recordingLogger) add(format string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, format)
}
