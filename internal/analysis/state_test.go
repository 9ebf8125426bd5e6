package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/document"
)

func testDoc() *document.Document {
	return document.FromBytes("statement.png", "image/png", []byte("png"))
}

func loading(t *testing.T) State {
	t.Helper()
	s := Transition(State{}, Selected{Document: testDoc()})
	s = Transition(s, AnalyzeRequested{})
	assert.Equal(t, Loading, s.View)
	return s
}

func TestTransition(t *testing.T) {
	t.Run("Should ignore analyze without a document", func(t *testing.T) {
		s := Transition(State{}, AnalyzeRequested{})
		assert.Equal(t, State{}, s)
	})

	t.Run("Should ignore analyze while loading", func(t *testing.T) {
		s := loading(t)
		assert.Equal(t, s, Transition(s, AnalyzeRequested{}))
	})

	t.Run("Should produce slides on success", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: "Alpha\n---SLIDE_BREAK---\nBeta\n---SLIDE_BREAK---\nGamma"})
		assert.Equal(t, Success, s.View)
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, s.Slides)
		assert.Equal(t, 0, s.Index)
		assert.Empty(t, s.ErrorMessage)
		slide, ok := s.CurrentSlide()
		assert.True(t, ok)
		assert.Equal(t, "Alpha", slide)
	})

	t.Run("Should treat an empty result as an error", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: ""})
		assert.Equal(t, Error, s.View)
		assert.NotEmpty(t, s.ErrorMessage)
		assert.Empty(t, s.Slides)
	})

	t.Run("Should report no content when only delimiters come back", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: "---SLIDE_BREAK------SLIDE_BREAK---"})
		assert.Equal(t, Success, s.View)
		assert.Empty(t, s.Slides)
		assert.True(t, s.NoContent())
		_, ok := s.CurrentSlide()
		assert.False(t, ok)
		assert.False(t, s.Pager().ShowControls())
	})

	t.Run("Should carry the provider message on failure", func(t *testing.T) {
		err := ai.NewProviderError(ai.ErrTypeNetwork, "connection refused", "gemini")
		s := Transition(loading(t), Failed{Err: err})
		assert.Equal(t, Error, s.View)
		assert.Contains(t, s.ErrorMessage, "connection refused")
	})

	t.Run("Should fall back to the generic message", func(t *testing.T) {
		s := Transition(loading(t), Failed{Err: errors.New("")})
		assert.Equal(t, GenericErrorMessage, s.ErrorMessage)
		s = Transition(loading(t), Failed{})
		assert.Equal(t, GenericErrorMessage, s.ErrorMessage)
	})

	t.Run("Should clear prior results when a new attempt starts", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: "A---SLIDE_BREAK---B"})
		s = Transition(s, NextSlide{})
		assert.Equal(t, 1, s.Index)

		s = Transition(s, AnalyzeRequested{})
		assert.Equal(t, Loading, s.View)
		assert.Empty(t, s.Result)
		assert.Empty(t, s.Slides)
		assert.Equal(t, 0, s.Index)
		assert.Equal(t, 2, s.Attempts)
	})

	t.Run("Should not resurrect prior success data after a failure", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: "A---SLIDE_BREAK---B"})
		s = Transition(s, AnalyzeRequested{})
		s = Transition(s, Failed{Err: errors.New("transport closed")})
		assert.Equal(t, Error, s.View)
		assert.Empty(t, s.Result)
		assert.Empty(t, s.Slides)
		assert.Equal(t, "transport closed", s.ErrorMessage)
	})

	t.Run("Should allow retry from error", func(t *testing.T) {
		s := Transition(loading(t), Failed{Err: errors.New("boom")})
		s = Transition(s, AnalyzeRequested{})
		assert.Equal(t, Loading, s.View)
		assert.Empty(t, s.ErrorMessage)
	})

	t.Run("Should keep results when a new document is selected", func(t *testing.T) {
		s := Transition(loading(t), Succeeded{Result: "A"})
		other := document.FromBytes("other.png", "image/png", []byte("x"))
		s = Transition(s, Selected{Document: other})
		assert.Equal(t, Success, s.View)
		assert.Equal(t, []string{"A"}, s.Slides)
		assert.Same(t, other, s.Document)
	})

	t.Run("Should ignore completions outside loading", func(t *testing.T) {
		s := Transition(State{}, Succeeded{Result: "A"})
		assert.Equal(t, Idle, s.View)
		s = Transition(State{}, Failed{Err: errors.New("late")})
		assert.Equal(t, Idle, s.View)
	})
}

func TestTransitionPagination(t *testing.T) {
	s := Transition(loading(t), Succeeded{Result: "A---SLIDE_BREAK---B---SLIDE_BREAK---C"})

	s = Transition(s, PreviousSlide{})
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.Pager().HasPrevious())

	s = Transition(Transition(s, NextSlide{}), NextSlide{})
	assert.Equal(t, 2, s.Index)
	assert.False(t, s.Pager().HasNext())

	s = Transition(s, NextSlide{})
	assert.Equal(t, 2, s.Index)
	slide, _ := s.CurrentSlide()
	assert.Equal(t, "C", slide)

	t.Run("Should ignore paging outside success", func(t *testing.T) {
		l := loading(t)
		assert.Equal(t, l, Transition(l, NextSlide{}))
		assert.Equal(t, l, Transition(l, PreviousSlide{}))
	})
}

func TestViewStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", ViewState(42).String())
}
