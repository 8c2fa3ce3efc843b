// Package parser converts uploaded transcript files into plain text. The
// analysis pipeline consumes linear text, so every format is flattened to
// paragraphs separated by blank lines.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Transcript is the flattened content of one uploaded file.
type Transcript struct {
	Title string
	Text  string
}

// Parser converts raw file bytes into a Transcript.
type Parser interface {
	Parse(r io.Reader, filename string) (*Transcript, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// titleFromFilename strips the extension to derive a default title.
func titleFromFilename(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// joinParagraphs assembles non-empty trimmed paragraphs with blank lines.
func joinParagraphs(paragraphs []string) string {
	var kept []string
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
