package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/analysis"
	"github.com/thywilljoshua/finslides/internal/config"
	"github.com/thywilljoshua/finslides/internal/document"
	"github.com/thywilljoshua/finslides/internal/logger"
)

// rootOptions holds the persistent flags of one root command.
type rootOptions struct {
	configPath string
	model      string
	accept     []string
	logLevel   string
	logJSON    bool
}

type app struct {
	cfg     *config.Config
	log     *log.Logger
	machine *analysis.Machine
}

// setup loads configuration, applies flag overrides and wires the machine.
// Logs go to logOut.
func setup(cmd *cobra.Command, opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.NewLoader().LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	pf := cmd.Flags()
	if pf.Changed("model") {
		cfg.AI.Model = opts.model
	}
	if pf.Changed("accept") {
		cfg.Document.Accept = opts.accept
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if pf.Changed("log-json") {
		cfg.Log.JSON = opts.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Output: logOut,
	})
	inferrer := newInferrer(cmd.Context(), cfg, l)
	return &app{
		cfg:     cfg,
		log:     l,
		machine: analysis.NewMachine(analysis.NewPipeline(inferrer, ""), l),
	}, nil
}

func newInferrer(ctx context.Context, cfg *config.Config, l *log.Logger) ai.Inferrer {
	if cfg.AI.Provider == "off" {
		l.Warn("inference disabled by configuration")
		return ai.Unconfigured{}
	}
	g, err := ai.NewGemini(ctx, ai.GeminiConfig{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
	})
	if err != nil {
		// keep going: every attempt will fail and say why
		l.Warn("gemini unavailable", "err", err)
		return ai.Unconfigured{}
	}
	l.Debug("gemini ready", "model", g.Model())
	return g
}

// selectDocument loads path and hands it to the machine.
func (a *app) selectDocument(path string) error {
	doc, err := a.loadDocument(path)
	if err != nil {
		return err
	}
	a.machine.Select(doc)
	return nil
}

// loadDocument applies the configured accept list and size hint.
func (a *app) loadDocument(path string) (*document.Document, error) {
	doc, err := document.Load(path, a.cfg.Document.Accept)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", path, err)
	}
	if doc.ExceedsHint(a.cfg.Document.MaxSizeMB) {
		a.log.Warn("file is larger than recommended", "name", doc.Name, "size", doc.Size, "max_mb", a.cfg.Document.MaxSizeMB)
	}
	if doc.Pages > 0 {
		a.log.Info("pdf selected", "name", doc.Name, "pages", doc.Pages)
	}
	return doc, nil
}
