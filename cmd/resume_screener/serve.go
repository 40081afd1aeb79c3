package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/server"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that screens uploaded resume batches against a job description, with optional SSE progress streaming.`,
	RunE:  runServe,
}

var (
	serveAddr     string
	serveConfig   string
	serveTaxonomy string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to config.json with scoring weights")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", "", "Path to skills taxonomy JSON (default: built-in taxonomy)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.LoadOrDefault(serveConfig)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	tax := taxonomy.Load(serveTaxonomy)

	srv := server.New(server.Config{
		Addr:      serveAddr,
		Analyzer:  jobdesc.NewAnalyzer(),
		Extractor: extraction.NewExtractor(tax),
		Scorer:    scoring.NewScorer(cfg),
	})
	return srv.Start()
}
