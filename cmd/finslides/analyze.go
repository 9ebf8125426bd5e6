package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/finslides/internal/analysis"
	"github.com/thywilljoshua/finslides/internal/export"
	"github.com/thywilljoshua/finslides/internal/slides"
	"github.com/thywilljoshua/finslides/internal/ui"
)

var errAnalysisFailed = errors.New("analysis failed")

func analyzeCmd(opts *rootOptions) *cobra.Command {
	var out string
	var format string
	var width int

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze one document and print the generated slides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "markdown":
			default:
				return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown)", format)
			}
			a, err := setup(cmd, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := a.selectDocument(args[0]); err != nil {
				return err
			}

			s, _ := a.machine.Analyze(cmd.Context())
			if err := printState(cmd.OutOrStdout(), s, format, width); err != nil {
				return err
			}
			if s.View == analysis.Error {
				return fmt.Errorf("%w: %s", errAnalysisFailed, s.ErrorMessage)
			}

			if out != "" && len(s.Slides) > 0 {
				res, err := export.Write(out, s.Document.Name, s.Slides)
				if err != nil {
					return fmt.Errorf("export: %w", err)
				}
				a.log.Info("slides exported", "dir", res.OutDir, "files", len(res.Pages))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the slides as markdown files into this directory")
	cmd.Flags().StringVar(&format, "output", "text", "output format: text|json|markdown")
	cmd.Flags().IntVar(&width, "width", 80, "panel width for text output")
	return cmd
}

func printState(w io.Writer, s analysis.State, format string, width int) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err

	case "markdown":
		if s.View != analysis.Success {
			_, err := fmt.Fprintln(w, s.ErrorMessage)
			return err
		}
		_, err := fmt.Fprintln(w, strings.Join(s.Slides, "\n\n---\n\n"))
		return err

	default:
		if s.View != analysis.Success || s.NoContent() {
			_, err := fmt.Fprintln(w, ui.Render(s, width, ""))
			return err
		}
		p := slides.NewPager(len(s.Slides))
		for i, slide := range s.Slides {
			fmt.Fprintln(w, ui.RenderSlide(slide, width))
			if p.ShowControls() {
				fmt.Fprintln(w, ui.Position(slides.At(len(s.Slides), i)))
			}
			fmt.Fprintln(w)
		}
		return nil
	}
}
