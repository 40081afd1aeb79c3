// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Deterministic resume screening against a job description",
	Long:  "Resume Screener extracts skills, keywords and experience from a batch of resumes, scores each one against a job description with configurable weights, and ranks the candidates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
