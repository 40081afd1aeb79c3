package ingestion

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/types"
)

// jsonlRecord is one line of a JSONL resume dataset. Text fields are combined
// in priority order so structured exports and raw-text dumps both work.
type jsonlRecord struct {
	ResumeID   string `json:"ResumeID"`
	Name       string `json:"Name"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
	Text       string `json:"Text"`
	Experience string `json:"Experience"`
	Skills     string `json:"Skills"`
	Summary    string `json:"Summary"`
	Education  string `json:"Education"`
}

// LoadJSONL reads a batch of resumes from a JSONL file, one JSON object per
// line. Malformed lines are skipped, not fatal: the rest of the batch loads.
func LoadJSONL(path string) ([]types.ResumeDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSONL file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	docs := make([]types.ResumeDocument, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record jsonlRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}

		id := record.ResumeID
		if id == "" {
			id = fmt.Sprintf("RESUME_%d", lineNum)
		}

		docs = append(docs, types.ResumeDocument{
			FileName: id,
			Text:     CleanText(combineTextFields(record)),
			Source:   "jsonl",
		})
	}
	if err := scanner.Err(); err != nil {
		return docs, fmt.Errorf("failed reading JSONL file %s: %w", path, err)
	}
	return docs, nil
}

// combineTextFields merges a record's text-bearing fields for matching.
// Contact fields go first so the extractor sees them in the leading lines,
// where name detection looks.
func combineTextFields(record jsonlRecord) string {
	combined := ""
	for _, part := range []string{record.Name, record.Email, record.Phone,
		record.Text, record.Experience, record.Skills, record.Summary, record.Education} {
		if part != "" {
			if combined != "" {
				combined += "\n"
			}
			combined += part
		}
	}
	return combined
}
