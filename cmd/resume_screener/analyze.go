package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse a job description and print the extracted requirement",
	Long: `Parses a single job description and prints the required skills, preferred
skills, minimum experience and keywords it extracted, without scoring any
resumes. Useful for checking what the screener will match against.`,
	RunE: runAnalyze,
}

var (
	analyzeJD    string
	analyzeJDURL string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description file (mutually exclusive with --jd-url)")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJD == "" && analyzeJDURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided")
	}
	if analyzeJD != "" && analyzeJDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	text, err := loadJDText(context.Background(), analyzeJD, analyzeJDURL)
	if err != nil {
		return err
	}

	requirement := jobdesc.NewAnalyzer().Parse(text)
	observability.NewPrinter(os.Stdout).PrintRequirement(&requirement)
	return nil
}
