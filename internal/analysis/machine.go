package analysis

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/thywilljoshua/finslides/internal/document"
)

// Machine holds the single analysis State and runs attempts through a
// Pipeline. At most one attempt is in flight; there is no timeout, so an
// unresponsive provider keeps the machine loading until ctx is done.
type Machine struct {
	mu       sync.Mutex
	state    State
	pipeline *Pipeline
	log      *log.Logger
}

func NewMachine(p *Pipeline, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if p == nil {
		p = NewPipeline(nil, "")
	}
	return &Machine{pipeline: p, log: logger}
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) apply(e Event) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Transition(m.state, e)
	return m.state
}

// Select records a newly chosen document.
func (m *Machine) Select(doc *document.Document) State {
	if doc != nil {
		m.log.Debug("document selected", "name", doc.Name, "type", doc.MediaType, "size", doc.Size)
	}
	return m.apply(Selected{Document: doc})
}

// Begin moves to loading and returns the document the attempt must use.
// It reports false, changing nothing, when there is no document or an
// attempt is already running.
func (m *Machine) Begin() (*document.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := Transition(m.state, AnalyzeRequested{})
	if next.View != Loading || m.state.View == Loading {
		return nil, false
	}
	m.state = next
	m.log.Info("analysis started", "document", next.Document.Name, "attempt", next.Attempts)
	return next.Document, true
}

// Finish resolves the attempt in flight to success or error.
func (m *Machine) Finish(result string, err error) State {
	var s State
	if err != nil {
		s = m.apply(Failed{Err: err})
		m.log.Error("analysis failed", "attempt", s.Attempts, "err", err)
		return s
	}
	s = m.apply(Succeeded{Result: result})
	switch {
	case s.View == Error:
		m.log.Error("analysis failed", "attempt", s.Attempts, "err", s.ErrorMessage)
	case s.NoContent():
		m.log.Warn("analysis returned no slides", "attempt", s.Attempts)
	default:
		m.log.Info("analysis finished", "attempt", s.Attempts, "slides", len(s.Slides))
	}
	return s
}

// Run executes the pipeline for doc without touching state; pair with
// Begin and Finish when the caller owns the scheduling.
func (m *Machine) Run(ctx context.Context, doc *document.Document) (string, error) {
	return m.pipeline.Run(ctx, doc)
}

// Analyze runs one full attempt and blocks until it resolves. It returns
// false if the attempt could not start.
func (m *Machine) Analyze(ctx context.Context) (State, bool) {
	doc, ok := m.Begin()
	if !ok {
		m.log.Debug("analyze ignored", "state", m.Snapshot().View)
		return m.Snapshot(), false
	}
	result, err := m.Run(ctx, doc)
	return m.Finish(result, err), true
}

func (m *Machine) Next() State     { return m.apply(NextSlide{}) }
func (m *Machine) Previous() State { return m.apply(PreviousSlide{}) }
