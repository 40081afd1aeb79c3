package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score and rank a batch of resumes against a job description",
	Long: `Parses the job description, extracts a profile from every resume in the
batch, scores each profile with the configured weights, and writes the ranked
results as CSV or JSON.

The job description comes from --jd, --jd-url, or is auto-detected inside the
resume folder by filename. Resumes come from --resumes (a folder of .pdf,
.docx, .txt or .html files) or --jsonl (one JSON object per line).`,
	RunE: runScreen,
}

var (
	screenJD       string
	screenJDURL    string
	screenResumes  string
	screenJSONL    string
	screenTop      int
	screenMinScore float64
	screenFormat   string
	screenOutput   string
	screenConfig   string
	screenTaxonomy string
	screenWorkers  int
	screenVerbose  bool
)

func init() {
	screenCmd.Flags().StringVarP(&screenJD, "jd", "j", "", "Path to job description file (mutually exclusive with --jd-url)")
	screenCmd.Flags().StringVar(&screenJDURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	screenCmd.Flags().StringVarP(&screenResumes, "resumes", "r", "", "Folder containing resume files")
	screenCmd.Flags().StringVar(&screenJSONL, "jsonl", "", "JSONL batch file, one resume object per line")
	screenCmd.Flags().IntVarP(&screenTop, "top", "t", 10, "Number of top candidates to return (0 = all)")
	screenCmd.Flags().Float64Var(&screenMinScore, "min-score", 0, "Minimum total score 0-100 (0 = no filter)")
	screenCmd.Flags().StringVar(&screenFormat, "format", "csv", "Output format: csv or json")
	screenCmd.Flags().StringVarP(&screenOutput, "output", "o", "", "Output file path (default results_<jd>_<timestamp>.<format>, \"-\" for stdout)")
	screenCmd.Flags().StringVar(&screenConfig, "config", "", "Path to config.json with scoring weights (values can be overridden by other flags)")
	screenCmd.Flags().StringVar(&screenTaxonomy, "taxonomy", "", "Path to skills taxonomy JSON (default: built-in taxonomy)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "Parallel scoring workers (0 = number of CPUs)")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print requirement and candidate detail boxes")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if screenJD != "" && screenJDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}
	if screenResumes == "" && screenJSONL == "" {
		return fmt.Errorf("either --resumes or --jsonl must be provided")
	}
	if screenResumes != "" && screenJSONL != "" {
		return fmt.Errorf("--resumes and --jsonl are mutually exclusive; provide only one")
	}

	// Config file first, explicit flags override
	cfg := config.LoadOrDefault(screenConfig)
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = screenMinScore
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Single-folder mode: no explicit JD, look for one next to the resumes
	jdPath := screenJD
	if jdPath == "" && screenJDURL == "" && screenResumes != "" {
		jdPath = ingestion.FindJobDescription(screenResumes)
		if jdPath == "" {
			return fmt.Errorf("no job description found in %s; provide --jd or --jd-url", screenResumes)
		}
		if screenVerbose {
			fmt.Printf("Using job description: %s\n", jdPath)
		}
	}
	if jdPath == "" && screenJDURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided")
	}

	jdText, err := loadJDText(ctx, jdPath, screenJDURL)
	if err != nil {
		return err
	}

	documents, considered, err := loadResumes(jdPath)
	if err != nil {
		return err
	}

	tax := taxonomy.Load(screenTaxonomy)
	components := pipeline.Components{
		Analyzer:  jobdesc.NewAnalyzer(),
		Extractor: extraction.NewExtractor(tax),
		Scorer:    scoring.NewScorer(cfg),
	}

	opts := pipeline.RunOptions{
		JDText:     jdText,
		Documents:  documents,
		Considered: considered,
		TopN:       screenTop,
		MinScore:   cfg.MinScore,
		Workers:    screenWorkers,
	}
	if screenVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			if event.Total > 0 {
				fmt.Printf("  [%d/%d] %s\n", event.Index, event.Total, event.Message)
			}
		}
	}

	result, err := pipeline.Run(ctx, components, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if screenVerbose {
		printer.PrintRequirement(&result.Requirement)
		printer.PrintTopCandidates(result.Ranked)
	}

	if err := writeResult(result, jdPath); err != nil {
		return err
	}

	printer.PrintSummary(result)
	return nil
}

// loadJDText reads the job description from a file or URL.
func loadJDText(ctx context.Context, jdPath, jdURL string) (string, error) {
	if jdURL != "" {
		text, err := ingestion.FetchJobDescription(ctx, jdURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	}
	doc, err := ingestion.ExtractFile(jdPath)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return doc.Text, nil
}

// loadResumes collects the resume batch from the folder or JSONL file,
// excluding the job description when it lives inside the same folder.
// Per-file failures are warnings; the count of files seen is preserved.
func loadResumes(jdPath string) ([]types.ResumeDocument, int, error) {
	if screenJSONL != "" {
		documents, err := ingestion.LoadJSONL(screenJSONL)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load %s: %w", screenJSONL, err)
		}
		return documents, len(documents), nil
	}

	documents, errs := ingestion.LoadDirectory(screenResumes, jdPath)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return documents, len(documents) + len(errs), nil
}

// writeResult writes the ranked output in the requested format.
func writeResult(result *pipeline.Result, jdPath string) error {
	if screenFormat != "csv" && screenFormat != "json" {
		return fmt.Errorf("unsupported format %q: use csv or json", screenFormat)
	}

	out := os.Stdout
	path := screenOutput
	if path != "-" {
		if path == "" {
			path = export.ResultFileName(jdPath, screenFormat, time.Now())
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
		fmt.Printf("Results written to %s\n", path)
	}

	if screenFormat == "json" {
		return export.WriteJSON(out, result)
	}
	return export.WriteCSV(out, result)
}
