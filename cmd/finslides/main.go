package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "finslides",
		Short:         "Turn an image of a financial statement into executive summary slides",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts := &rootOptions{}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	root.PersistentFlags().StringVar(&opts.model, "model", "", "Gemini model identifier (default from config: gemini-flash-latest)")
	root.PersistentFlags().StringSliceVar(&opts.accept, "accept", nil, "accepted media types, e.g. image/*,application/pdf")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(analyzeCmd(opts))
	root.AddCommand(viewCmd(opts))
	return root
}
