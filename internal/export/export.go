// Package export writes a finished deck to disk as one markdown file per
// slide plus an index.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thywilljoshua/finslides/internal/slides"
)

// ErrNoSlides is returned when there is nothing to write.
var ErrNoSlides = errors.New("no slides to export")

type Page struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	File   string `json:"file"`
}

type Result struct {
	Source string `json:"source"`
	Pages  []Page `json:"pages"`
	OutDir string `json:"out_dir"`
}

// Write creates outDir if needed and writes NN-<slug>.md for every slide
// followed by index.md linking them in order.
func Write(outDir, source string, deck []string) (Result, error) {
	if len(deck) == 0 {
		return Result{}, ErrNoSlides
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, err
	}

	res := Result{Source: source, OutDir: outDir}
	for i, content := range deck {
		n := i + 1
		title := slides.Title(content)
		if title == "" {
			title = fmt.Sprintf("Slide %d", n)
		}
		slug := slugify(title)
		if slug == "" {
			slug = "slide"
		}
		p := Page{Number: n, Title: title, Slug: fmt.Sprintf("%02d-%s", n, slug)}
		p.File = filepath.Join(outDir, p.Slug+".md")
		if err := writeSlide(p, content, len(deck)); err != nil {
			return Result{}, err
		}
		res.Pages = append(res.Pages, p)
	}
	if err := writeIndex(outDir, source, res.Pages); err != nil {
		return Result{}, err
	}
	return res, nil
}

func writeSlide(p Page, content string, total int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: \"%s\"\nslide: %d\ntotal: %d\n---\n\n", escapeQuotes(p.Title), p.Number, total)
	b.WriteString(strings.TrimSpace(content))
	b.WriteString("\n")
	return os.WriteFile(p.File, []byte(b.String()), 0o644)
}

func writeIndex(outDir, source string, pages []Page) error {
	var b strings.Builder
	b.WriteString("---\ntitle: \"Executive Summary\"\n")
	if source != "" {
		fmt.Fprintf(&b, "description: \"Generated from %s\"\n", escapeQuotes(source))
	}
	b.WriteString("---\n\n## Slides\n\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "%d. [%s](./%s.md)\n", p.Number, p.Title, p.Slug)
	}
	return os.WriteFile(filepath.Join(outDir, "index.md"), []byte(b.String()), 0o644)
}

func escapeQuotes(s string) string { return strings.ReplaceAll(s, "\"", "\\\"") }
