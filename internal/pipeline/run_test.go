package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

func testComponents() Components {
	return Components{
		Analyzer:  jobdesc.NewAnalyzer(),
		Extractor: extraction.NewExtractor(taxonomy.Default()),
		Scorer:    scoring.NewScorer(nil),
	}
}

const testJD = "Required: Java, Docker. Minimum 3 years of experience."

func resumeDoc(name, text string) types.ResumeDocument {
	return types.ResumeDocument{FileName: name, Text: text, Source: "file"}
}

func TestRun_RanksStrongerCandidateFirst(t *testing.T) {
	docs := []types.ResumeDocument{
		resumeDoc("weak.txt", "Hobbyist with some HTML."),
		resumeDoc("strong.txt", "Jane Smith\n5 years of experience with Java and Docker."),
	}

	result, err := Run(context.Background(), testComponents(), RunOptions{
		JDText:    testJD,
		Documents: docs,
	})
	require.NoError(t, err)

	require.Len(t, result.Ranked, 2)
	assert.Equal(t, "strong.txt", result.Ranked[0].Profile.FileName)
	assert.Greater(t, result.Ranked[0].Score.TotalScore, result.Ranked[1].Score.TotalScore)
	assert.Equal(t, 2, result.Considered)
	assert.Equal(t, 2, result.Scored)
	assert.Equal(t, 2, result.Returned)
	assert.NotEqual(t, result.RunID.String(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, result.Requirement.RequiredSkills.Has("java"))
}

func TestRun_EmptyBatchIsNothingToScore(t *testing.T) {
	_, err := Run(context.Background(), testComponents(), RunOptions{JDText: testJD})

	assert.ErrorIs(t, err, ErrNothingToScore)
}

func TestRun_TopNAndMinScore(t *testing.T) {
	docs := make([]types.ResumeDocument, 0, 6)
	for i := 0; i < 5; i++ {
		docs = append(docs, resumeDoc(fmt.Sprintf("dev%d.txt", i),
			"Engineer with 4 years of experience in Java and Docker."))
	}
	docs = append(docs, resumeDoc("unrelated.txt", "Gardener."))

	result, err := Run(context.Background(), testComponents(), RunOptions{
		JDText:    testJD,
		Documents: docs,
		TopN:      3,
		MinScore:  50,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, result.Scored)
	assert.Equal(t, 3, result.Returned)
	require.Len(t, result.Ranked, 3)
	for _, sr := range result.Ranked {
		assert.GreaterOrEqual(t, sr.Score.TotalScore, 50.0)
	}
}

func TestRun_TiedScoresKeepDocumentOrder(t *testing.T) {
	text := "Engineer with 4 years of experience in Java and Docker."
	docs := []types.ResumeDocument{
		resumeDoc("a.txt", text),
		resumeDoc("b.txt", text),
		resumeDoc("c.txt", text),
	}

	result, err := Run(context.Background(), testComponents(), RunOptions{
		JDText:    testJD,
		Documents: docs,
		Workers:   2,
	})
	require.NoError(t, err)

	names := make([]string, len(result.Ranked))
	for i, sr := range result.Ranked {
		names[i] = sr.Profile.FileName
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names,
		"parallel scoring must not reorder tied candidates")
}

func TestRun_ProgressEvents(t *testing.T) {
	docs := []types.ResumeDocument{
		resumeDoc("a.txt", "Java engineer"),
		resumeDoc("b.txt", "Docker engineer"),
	}

	var mu sync.Mutex
	stages := make(map[string]int)
	_, err := Run(context.Background(), testComponents(), RunOptions{
		JDText:    testJD,
		Documents: docs,
		OnProgress: func(event ProgressEvent) {
			mu.Lock()
			stages[event.Stage]++
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stages["analyze"])
	assert.Equal(t, 2, stages["score"], "one score event per document")
	assert.Equal(t, 1, stages["rank"])
}

func TestRun_ConsideredOverridesDocumentCount(t *testing.T) {
	docs := []types.ResumeDocument{resumeDoc("a.txt", "Java engineer")}

	result, err := Run(context.Background(), testComponents(), RunOptions{
		JDText:     testJD,
		Documents:  docs,
		Considered: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Considered, "extraction failures still count as considered")
	assert.Equal(t, 1, result.Scored)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []types.ResumeDocument{resumeDoc("a.txt", "Java engineer")}
	_, err := Run(ctx, testComponents(), RunOptions{JDText: testJD, Documents: docs})

	assert.ErrorIs(t, err, context.Canceled)
}
