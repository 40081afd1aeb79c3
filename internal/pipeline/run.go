// Package pipeline orchestrates a screening run: analyze the job description
// once, extract and score every resume, then rank, filter, and truncate.
package pipeline

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrNothingToScore reports a batch in which no document survived ingestion.
// It is a distinct terminal condition, not an empty result list.
var ErrNothingToScore = errors.New("no resumes could be processed")

// ProgressEvent represents a progress update during a screening run.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Index   int    `json:"index,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// ProgressCallback is called as the run advances. It may be invoked from
// multiple goroutines during the scoring stage.
type ProgressCallback func(event ProgressEvent)

// Components bundles the three read-only stages a run needs. All of them are
// safe for concurrent use, so one set serves any number of runs.
type Components struct {
	Analyzer  *jobdesc.Analyzer
	Extractor *extraction.Extractor
	Scorer    *scoring.Scorer
}

// RunOptions holds the inputs of one screening run.
type RunOptions struct {
	JDText    string
	Documents []types.ResumeDocument
	// Considered is the number of documents found before ingestion failures;
	// zero means len(Documents).
	Considered int
	TopN       int
	MinScore   float64
	// Workers bounds the parallel extract+score map; zero means GOMAXPROCS.
	Workers    int
	OnProgress ProgressCallback
}

// Result is the outcome of a screening run, including the
// considered/scored/returned counts callers report to users.
type Result struct {
	RunID       uuid.UUID            `json:"run_id"`
	Requirement types.JobRequirement `json:"requirement"`
	Ranked      []types.ScoredResume `json:"ranked"`
	Considered  int                  `json:"considered"`
	Scored      int                  `json:"scored"`
	Returned    int                  `json:"returned"`
}

// Run executes the batch pipeline. Per-resume work is an independent map over
// in-memory values sharing only the read-only taxonomy and weights, so it runs
// on a bounded worker pool; ranking and filtering stay sequential.
func Run(ctx context.Context, c Components, opts RunOptions) (*Result, error) {
	if len(opts.Documents) == 0 {
		return nil, ErrNothingToScore
	}

	emit(opts, ProgressEvent{Stage: "analyze", Message: "parsing job description"})
	requirement := c.Analyzer.Parse(opts.JDText)

	total := len(opts.Documents)
	scored := make([]types.ScoredResume, total)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range opts.Documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			profile := c.Extractor.Profile(doc)
			scored[i] = types.ScoredResume{
				Profile: profile,
				Score:   c.Scorer.Score(profile, requirement),
			}
			emit(opts, ProgressEvent{
				Stage:   "score",
				Message: doc.FileName,
				Index:   int(done.Add(1)),
				Total:   total,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	emit(opts, ProgressEvent{Stage: "rank", Message: "ranking candidates"})
	ranked := ranking.Rank(scored)
	ranked = ranking.FilterByThreshold(ranked, opts.MinScore)
	ranked = ranking.TopN(ranked, opts.TopN)

	considered := opts.Considered
	if considered == 0 {
		considered = total
	}

	return &Result{
		RunID:       uuid.New(),
		Requirement: requirement,
		Ranked:      ranked,
		Considered:  considered,
		Scored:      total,
		Returned:    len(ranked),
	}, nil
}

func emit(opts RunOptions, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
}
