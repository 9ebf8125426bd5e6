// Package ui renders analysis state. It only reads state; every change goes
// through analysis.Machine.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thywilljoshua/finslides/internal/analysis"
	"github.com/thywilljoshua/finslides/internal/slides"
)

var (
	accent = lipgloss.Color("#7C3AED")
	muted  = lipgloss.Color("#64748B")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	slideStyle  = panelStyle.BorderForeground(accent)
	idleStyle   = panelStyle.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#CBD5E1")).Align(lipgloss.Center)
	errorStyle  = panelStyle.BorderForeground(lipgloss.Color("#EF4444")).Align(lipgloss.Center)
	noneStyle   = panelStyle.BorderForeground(lipgloss.Color("#EAB308")).Align(lipgloss.Center)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Render draws the panel for the current view state. loading is the
// indicator drawn in front of the loading message (a spinner frame in the
// TUI, empty in plain output).
func Render(s analysis.State, width int, loading string) string {
	switch s.View {
	case analysis.Loading:
		msg := titleStyle.Render("Analyzing your document...") + "\n" +
			mutedStyle.Render("This may take a moment. We're extracting insights for you.")
		if loading != "" {
			msg = loading + " " + msg
		}
		return sized(idleStyle, width).Render(msg)

	case analysis.Success:
		if s.NoContent() {
			return sized(noneStyle, width).Render(
				titleStyle.Render("No Content") + "\n" +
					"The analysis returned an empty result. Please try a different image.")
		}
		slide, _ := s.CurrentSlide()
		out := RenderSlide(slide, width)
		if c := Controls(s.Pager()); c != "" {
			out += "\n" + lipgloss.PlaceHorizontal(max(width, lipgloss.Width(c)), lipgloss.Center, c)
		}
		return out

	case analysis.Error:
		return sized(errorStyle, width).Render(
			titleStyle.Render("Analysis Failed") + "\n" + s.ErrorMessage)

	default:
		return sized(idleStyle, width).Render(
			titleStyle.Render("Your analysis will appear here") + "\n" +
				mutedStyle.Render("Upload an image of a financial document to get started."))
	}
}

// RenderSlide draws one slide's markdown inside the slide frame.
func RenderSlide(slide string, width int) string {
	return sized(slideStyle, width).Render(strings.TrimSpace(slide))
}

// Controls draws the pager, dimming the direction that is unavailable.
// It is empty when there is at most one slide.
func Controls(p slides.Pager) string {
	if !p.ShowControls() {
		return ""
	}
	prev, next := mutedStyle.Render("‹ prev"), mutedStyle.Render("next ›")
	if p.HasPrevious() {
		prev = activeStyle.Render("‹ prev")
	}
	if p.HasNext() {
		next = activeStyle.Render("next ›")
	}
	return fmt.Sprintf("%s   %s   %s", prev, Position(p), next)
}

// Position is the "Slide N of M" indicator.
func Position(p slides.Pager) string {
	return fmt.Sprintf("Slide %d of %d", p.Index()+1, p.Count())
}

func sized(st lipgloss.Style, width int) lipgloss.Style {
	if width > 4 {
		return st.Width(width - 2)
	}
	return st
}
