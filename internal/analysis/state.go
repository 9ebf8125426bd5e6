// Package analysis owns the lifecycle of one document analysis:
// idle, loading, then success or error, re-enterable indefinitely.
//
// The transitions are pure functions over State so they can be exercised
// without any rendering layer; Machine wraps them with the encode and
// infer pipeline.
package analysis

import (
	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/document"
	"github.com/thywilljoshua/finslides/internal/slides"
)

// GenericErrorMessage is shown when a failure carries no message of its own.
const GenericErrorMessage = "An unknown error occurred during analysis."

type ViewState int

const (
	Idle ViewState = iota
	Loading
	Success
	Error
)

func (v ViewState) String() string {
	switch v {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

func (v ViewState) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// State is everything the presentation layer may read. Result and Slides are
// set only in Success, ErrorMessage only in Error.
type State struct {
	View         ViewState          `json:"state"`
	Document     *document.Document `json:"document,omitempty"`
	Result       string             `json:"result,omitempty"`
	Slides       []string           `json:"slides,omitempty"`
	Index        int                `json:"index"`
	ErrorMessage string             `json:"error,omitempty"`
	Attempts     int                `json:"attempts"`
}

// Pager exposes the pagination controls for the current slides.
func (s State) Pager() slides.Pager {
	if s.View != Success {
		return slides.Pager{}
	}
	return slides.At(len(s.Slides), s.Index)
}

// CurrentSlide returns the slide to render, if any.
func (s State) CurrentSlide() (string, bool) {
	if s.View != Success || s.Index < 0 || s.Index >= len(s.Slides) {
		return "", false
	}
	return s.Slides[s.Index], true
}

// NoContent is the success variant where the model answered but nothing
// survived parsing.
func (s State) NoContent() bool {
	return s.View == Success && len(s.Slides) == 0
}

// CanAnalyze reports whether an AnalyzeRequested event would start an attempt.
func (s State) CanAnalyze() bool {
	return s.Document != nil && s.View != Loading
}

// Event drives Transition.
type Event interface{ event() }

// Selected replaces the chosen document. Prior results stay until the next attempt.
type Selected struct{ Document *document.Document }

// AnalyzeRequested starts an attempt when a document is present and nothing is in flight.
type AnalyzeRequested struct{}

// Succeeded carries the raw model text of the attempt in flight.
type Succeeded struct{ Result string }

// Failed carries the reason the attempt in flight was abandoned.
type Failed struct{ Err error }

type NextSlide struct{}

type PreviousSlide struct{}

func (Selected) event()         {}
func (AnalyzeRequested) event() {}
func (Succeeded) event()        {}
func (Failed) event()           {}
func (NextSlide) event()        {}
func (PreviousSlide) event()    {}

// Transition returns the state after e. Events that do not apply to the
// current state return s unchanged.
func Transition(s State, e Event) State {
	switch ev := e.(type) {
	case Selected:
		s.Document = ev.Document
		return s

	case AnalyzeRequested:
		if !s.CanAnalyze() {
			return s
		}
		return State{
			View:     Loading,
			Document: s.Document,
			Attempts: s.Attempts + 1,
		}

	case Succeeded:
		if s.View != Loading {
			return s
		}
		if ev.Result == "" {
			return fail(s, &ai.EmptyResponseError{})
		}
		s.View = Success
		s.Result = ev.Result
		s.Slides = slides.Parse(ev.Result)
		s.Index = 0
		return s

	case Failed:
		if s.View != Loading {
			return s
		}
		return fail(s, ev.Err)

	case NextSlide:
		if s.View != Success {
			return s
		}
		s.Index = s.Pager().Next().Index()
		return s

	case PreviousSlide:
		if s.View != Success {
			return s
		}
		s.Index = s.Pager().Previous().Index()
		return s
	}
	return s
}

func fail(s State, err error) State {
	return State{
		View:         Error,
		Document:     s.Document,
		ErrorMessage: ErrorMessage(err),
		Attempts:     s.Attempts,
	}
}

// ErrorMessage derives the user-facing text for a failed attempt.
func ErrorMessage(err error) string {
	if err == nil {
		return GenericErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
