package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/types"
)

// SupportedExtensions lists the document formats the screener can read.
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".html"}

// UnsupportedFormatError is returned for files whose extension the screener
// cannot handle.
type UnsupportedFormatError struct {
	FileName  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s (supported: %s)",
		e.Extension, e.FileName, strings.Join(SupportedExtensions, ", "))
}

// IsSupported reports whether the file's extension is a readable format.
func IsSupported(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ExtractFile reads a document from disk and extracts its text.
func ExtractFile(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ExtractBytes(filepath.Base(path), data)
	if err != nil {
		return types.ResumeDocument{}, err
	}
	doc.FilePath = path
	return doc, nil
}

// ExtractBytes extracts text from an in-memory document, dispatching on the
// file extension. This is what the upload handler feeds directly.
func ExtractBytes(fileName string, data []byte) (types.ResumeDocument, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var text string
	var err error
	switch ext {
	case ".txt":
		text = string(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".html":
		text, err = fetch.ExtractMainText(string(data))
	default:
		return types.ResumeDocument{}, &UnsupportedFormatError{FileName: fileName, Extension: ext}
	}
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to extract text from %s: %w", fileName, err)
	}

	return types.ResumeDocument{
		FileName: fileName,
		Text:     CleanText(text),
		Source:   "file",
	}, nil
}

// extractPDF pulls the plain text stream out of a PDF.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// extractDOCX reads word/document.xml out of the DOCX zip container and strips
// the markup, turning paragraph ends into newlines.
func extractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docXML []byte
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in docx")
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTags.ReplaceAllString(text, " ")
	return text, nil
}
