package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes bounds the in-memory portion of a multipart screening request.
const maxUploadBytes = 64 << 20

// ScreenResponse represents the response for /screen
type ScreenResponse struct {
	*pipeline.Result
	Warnings []string `json:"warnings,omitempty"`
}

// screenRequest holds the decoded inputs of one screening request.
type screenRequest struct {
	jdText    string
	documents []types.ResumeDocument
	warnings  []string
	opts      pipeline.RunOptions
}

// parseScreenRequest decodes a multipart screening request. The job
// description arrives either as a "jd" file part or a "jd_url" field, resumes
// as any number of "resumes" file parts. Files that fail extraction become
// warnings, not request failures.
func (s *Server) parseScreenRequest(r *http.Request) (*screenRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	req := &screenRequest{}

	jdURL := r.FormValue("jd_url")
	jdFiles := r.MultipartForm.File["jd"]
	switch {
	case len(jdFiles) > 0:
		data, err := readPart(jdFiles[0])
		if err != nil {
			return nil, fmt.Errorf("reading job description: %w", err)
		}
		doc, err := ingestion.ExtractBytes(jdFiles[0].Filename, data)
		if err != nil {
			return nil, fmt.Errorf("extracting job description: %w", err)
		}
		req.jdText = doc.Text
	case jdURL != "":
		text, err := ingestion.FetchJobDescription(r.Context(), jdURL)
		if err != nil {
			return nil, fmt.Errorf("fetching job description: %w", err)
		}
		req.jdText = text
	default:
		return nil, errors.New("either a jd file or jd_url is required")
	}

	resumeFiles := r.MultipartForm.File["resumes"]
	if len(resumeFiles) == 0 {
		return nil, errors.New("at least one resumes file is required")
	}

	for _, fh := range resumeFiles {
		data, err := readPart(fh)
		if err != nil {
			req.warnings = append(req.warnings, fmt.Sprintf("%s: %v", fh.Filename, err))
			continue
		}
		doc, err := ingestion.ExtractBytes(fh.Filename, data)
		if err != nil {
			req.warnings = append(req.warnings, fmt.Sprintf("%s: %v", fh.Filename, err))
			continue
		}
		req.documents = append(req.documents, doc)
	}

	req.opts = pipeline.RunOptions{
		JDText:     req.jdText,
		Documents:  req.documents,
		Considered: len(resumeFiles),
		TopN:       formInt(r, "top", 0),
		MinScore:   formFloat(r, "min_score", 0),
		Workers:    formInt(r, "workers", 0),
	}
	return req, nil
}

// handleScreen runs a screening batch and returns the ranked result
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseScreenRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), s.components, req.opts)
	if err != nil {
		if errors.Is(err, pipeline.ErrNothingToScore) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScreenResponse{Result: result, Warnings: req.warnings})
}

// handleScreenStream runs a screening batch and streams progress via SSE
func (s *Server) handleScreenStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseScreenRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	for _, warning := range req.warnings {
		sse.WriteEvent("warning", map[string]string{"warning": warning}) //nolint:errcheck
	}

	req.opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("progress", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	result, err := pipeline.Run(r.Context(), s.components, req.opts)
	if err != nil {
		log.Printf("Screening run failed: %v", err)
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteEvent("result", result); err != nil {
		log.Printf("Error writing SSE result: %v", err)
		return
	}
	sse.WriteComplete(result.RunID.String())
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func formInt(r *http.Request, name string, fallback int) int {
	value := r.FormValue(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func formFloat(r *http.Request, name string, fallback float64) float64 {
	value := r.FormValue(name)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
