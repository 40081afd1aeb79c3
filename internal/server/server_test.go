package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

func newTestServer() *Server {
	return New(Config{
		Addr:      ":0",
		Analyzer:  jobdesc.NewAnalyzer(),
		Extractor: extraction.NewExtractor(taxonomy.Default()),
		Scorer:    scoring.NewScorer(nil),
	})
}

type multipartRequest struct {
	fields map[string]string
	files  map[string][]filePart
}

type filePart struct {
	name    string
	content string
}

func buildMultipart(t *testing.T, req multipartRequest) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range req.fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, parts := range req.files {
		for _, part := range parts {
			fw, err := writer.CreateFormFile(field, part.name)
			require.NoError(t, err)
			_, err = io.WriteString(fw, part.content)
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

const testJDText = "Required: Java, Docker. Minimum 3 years of experience."

func TestHandleScreen_RanksUploads(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"jd": {{name: "jd.txt", content: testJDText}},
			"resumes": {
				{name: "strong.txt", content: "Jane Smith\n5 years of experience with Java and Docker."},
				{name: "weak.txt", content: "Gardener."},
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Ranked []struct {
			Profile struct {
				FileName string `json:"file_name"`
			} `json:"profile"`
		} `json:"ranked"`
		Considered int      `json:"considered"`
		Scored     int      `json:"scored"`
		Warnings   []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Ranked, 2)
	assert.Equal(t, "strong.txt", resp.Ranked[0].Profile.FileName)
	assert.Equal(t, 2, resp.Considered)
	assert.Equal(t, 2, resp.Scored)
	assert.Empty(t, resp.Warnings)
}

func TestHandleScreen_UnreadableFileBecomesWarning(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"jd": {{name: "jd.txt", content: testJDText}},
			"resumes": {
				{name: "ok.txt", content: "Java developer"},
				{name: "bad.xlsx", content: "binary"},
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Scored     int      `json:"scored"`
		Considered int      `json:"considered"`
		Warnings   []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Scored)
	assert.Equal(t, 2, resp.Considered)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "bad.xlsx")
}

func TestHandleScreen_AllFilesUnreadableIs422(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"jd":      {{name: "jd.txt", content: testJDText}},
			"resumes": {{name: "bad.xlsx", content: "binary"}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no resumes could be processed")
}

func TestHandleScreen_MissingJD(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"resumes": {{name: "ok.txt", content: "Java developer"}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "jd file or jd_url")
}

func TestHandleScreen_MissingResumes(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"jd": {{name: "jd.txt", content: testJDText}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resumes file is required")
}

func TestHandleScreen_TopAndMinScoreFields(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		fields: map[string]string{"top": "1", "min_score": "10"},
		files: map[string][]filePart{
			"jd": {{name: "jd.txt", content: testJDText}},
			"resumes": {
				{name: "a.txt", content: "Java and Docker, 4 years of experience"},
				{name: "b.txt", content: "Java and Docker, 4 years of experience"},
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Returned int `json:"returned"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Returned)
}

func TestHandleScreenStream_EmitsSSE(t *testing.T) {
	body, contentType := buildMultipart(t, multipartRequest{
		files: map[string][]filePart{
			"jd":      {{name: "jd.txt", content: testJDText}},
			"resumes": {{name: "ok.txt", content: "Java developer"}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen/stream", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	out := rec.Body.String()
	assert.Contains(t, out, "event: progress")
	assert.Contains(t, out, "event: result")
	assert.Contains(t, out, "event: complete")
}

func TestHandleScreenStream_ParallelScoringKeepsFramesIntact(t *testing.T) {
	resumes := make([]filePart, 40)
	for i := range resumes {
		resumes[i] = filePart{
			name:    fmt.Sprintf("dev%02d.txt", i),
			content: "Engineer with 4 years of experience in Java and Docker.",
		}
	}

	body, contentType := buildMultipart(t, multipartRequest{
		fields: map[string]string{"workers": "16"},
		files: map[string][]filePart{
			"jd":      {{name: "jd.txt", content: testJDText}},
			"resumes": resumes,
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/screen/stream", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	progressFrames := 0
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, "event: ") || strings.HasPrefix(line, "data: "),
			"malformed SSE line: %q", line)
		if line == "event: progress" {
			progressFrames++
		}
	}
	assert.Equal(t, 42, progressFrames, "one analyze, one per resume, one rank")
	assert.Contains(t, rec.Body.String(), "event: complete")
}

func TestSSEWriter_ConcurrentWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, sse.WriteEvent("progress", map[string]int{"index": i}))
		}(i)
	}
	wg.Wait()

	events := 0
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		switch {
		case line == "event: progress":
			events++
		case line == "" || strings.HasPrefix(line, "data: {\"index\":"):
		default:
			t.Fatalf("interleaved SSE output: %q", line)
		}
	}
	assert.Equal(t, 32, events)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
