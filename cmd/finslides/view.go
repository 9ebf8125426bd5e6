package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/finslides/internal/ui"
)

func viewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view [image]",
		Short: "Open the interactive slide viewer",
		Long: `Open the interactive viewer. Press "o" to open a file, "a" to analyze
the selected file, left/right (or h/l) to move between slides and "q" to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the alternate screen owns the terminal; logging would corrupt it
			a, err := setup(cmd, opts, io.Discard)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := a.selectDocument(args[0]); err != nil {
					return err
				}
			}
			return ui.Run(cmd.Context(), a.machine, a.loadDocument)
		},
	}
}
